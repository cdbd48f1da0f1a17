package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OperationStatus holds the schema definition for the OperationStatus entity.
// Append-only progress feed for long-running reconciliation operations.
// Purely observational: engine correctness never depends on these rows.
type OperationStatus struct {
	ent.Schema
}

// Mixin of the OperationStatus.
func (OperationStatus) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the OperationStatus.
func (OperationStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("operation_id").
			NotEmpty(),
		field.String("phase").
			NotEmpty(), // e.g. "started", "user_processed", "done"
		field.String("detail").
			Optional(),
		field.Bool("terminal").
			Default(false),
		field.Bool("success").
			Optional(), // Meaningful only on terminal rows.
	}
}

// Indexes of the OperationStatus.
func (OperationStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("operation_id"),
	}
}
