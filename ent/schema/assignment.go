package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment holds the schema definition for the Assignment entity.
// One row records that a user should hold an agent capability via a
// specific directory group. Rows are never hard-deleted: a revoke flips
// active to false and a re-grant reuses the row with the capability's
// current group mapping.
type Assignment struct {
	ent.Schema
}

// Mixin of the Assignment.
func (Assignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("agent_type_id").
			NotEmpty(),
		field.String("organization_id").
			NotEmpty(),
		field.String("group_id").
			Optional(), // Can go stale when the agent type's mapping changes.
		field.Bool("active").
			Default(true),
		field.String("assigned_by").
			NotEmpty(),
		field.Time("assigned_at"),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "agent_type_id", "organization_id").Unique(),
		index.Fields("organization_id", "user_id", "active"),
		index.Fields("organization_id", "agent_type_id", "active"),
		index.Fields("agent_type_id", "active"),
	}
}
