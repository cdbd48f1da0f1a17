package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DomainEvent holds the schema definition for the DomainEvent entity.
// Events carry the full payload for async jobs (claim-check): the River
// job row stores only the event id.
type DomainEvent struct {
	ent.Schema
}

// Mixin of the DomainEvent.
func (DomainEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the DomainEvent.
func (DomainEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("event_type").
			NotEmpty(),
		field.String("aggregate_type").
			NotEmpty(),
		field.String("aggregate_id").
			NotEmpty(),
		field.Bytes("payload"),
		field.Enum("status").
			Values("PENDING", "PROCESSING", "COMPLETED", "FAILED", "CANCELLED").
			Default("PENDING"),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the DomainEvent.
func (DomainEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("aggregate_type", "aggregate_id"),
		index.Fields("event_type", "status"),
	}
}
