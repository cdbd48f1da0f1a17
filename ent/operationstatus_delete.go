// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"dir-steward.io/steward/ent/operationstatus"
	"dir-steward.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// OperationStatusDelete is the builder for deleting a OperationStatus entity.
type OperationStatusDelete struct {
	config
	hooks    []Hook
	mutation *OperationStatusMutation
}

// Where appends a list predicates to the OperationStatusDelete builder.
func (_d *OperationStatusDelete) Where(ps ...predicate.OperationStatus) *OperationStatusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *OperationStatusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OperationStatusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *OperationStatusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(operationstatus.Table, sqlgraph.NewFieldSpec(operationstatus.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// OperationStatusDeleteOne is the builder for deleting a single OperationStatus entity.
type OperationStatusDeleteOne struct {
	_d *OperationStatusDelete
}

// Where appends a list predicates to the OperationStatusDelete builder.
func (_d *OperationStatusDeleteOne) Where(ps ...predicate.OperationStatus) *OperationStatusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *OperationStatusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{operationstatus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *OperationStatusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
