package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Users are the subjects of capability grants. The desired capability set
// is not stored here: it is a read-time projection of active assignment
// rows, so there is a single source of truth.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty(),
		field.String("display_name").
			Optional(),
		field.String("organization_id").
			NotEmpty(),
		field.String("directory_object_id").
			Optional(), // External directory identity, when linked.
		field.Bool("active").
			Default(true),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "email").Unique(),
		index.Fields("organization_id", "active"),
	}
}
