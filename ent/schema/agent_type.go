package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentType holds the schema definition for the AgentType entity.
// An agent type is a named grantable capability backed by exactly one
// directory group. The mapping is mutable: administrators can point the
// capability at a new group, which invalidates every assignment row still
// referencing the old one until reconciliation migrates them.
type AgentType struct {
	ent.Schema
}

// Mixin of the AgentType.
func (AgentType) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the AgentType.
func (AgentType) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.String("group_id").
			Optional(), // Empty means the capability is not yet granted a group.
		field.Bool("active").
			Default(true),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the AgentType.
func (AgentType) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
		index.Fields("group_id"),
	}
}
