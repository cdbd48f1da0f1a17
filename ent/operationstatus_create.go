// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dir-steward.io/steward/ent/operationstatus"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// OperationStatusCreate is the builder for creating a OperationStatus entity.
type OperationStatusCreate struct {
	config
	mutation *OperationStatusMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *OperationStatusCreate) SetCreatedAt(v time.Time) *OperationStatusCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OperationStatusCreate) SetNillableCreatedAt(v *time.Time) *OperationStatusCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetOperationID sets the "operation_id" field.
func (_c *OperationStatusCreate) SetOperationID(v string) *OperationStatusCreate {
	_c.mutation.SetOperationID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *OperationStatusCreate) SetPhase(v string) *OperationStatusCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *OperationStatusCreate) SetDetail(v string) *OperationStatusCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *OperationStatusCreate) SetNillableDetail(v *string) *OperationStatusCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetTerminal sets the "terminal" field.
func (_c *OperationStatusCreate) SetTerminal(v bool) *OperationStatusCreate {
	_c.mutation.SetTerminal(v)
	return _c
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_c *OperationStatusCreate) SetNillableTerminal(v *bool) *OperationStatusCreate {
	if v != nil {
		_c.SetTerminal(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *OperationStatusCreate) SetSuccess(v bool) *OperationStatusCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *OperationStatusCreate) SetNillableSuccess(v *bool) *OperationStatusCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OperationStatusCreate) SetID(v string) *OperationStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the OperationStatusMutation object of the builder.
func (_c *OperationStatusCreate) Mutation() *OperationStatusMutation {
	return _c.mutation
}

// Save creates the OperationStatus in the database.
func (_c *OperationStatusCreate) Save(ctx context.Context) (*OperationStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OperationStatusCreate) SaveX(ctx context.Context) *OperationStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OperationStatusCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := operationstatus.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Terminal(); !ok {
		v := operationstatus.DefaultTerminal
		_c.mutation.SetTerminal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OperationStatusCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OperationStatus.created_at"`)}
	}
	if _, ok := _c.mutation.OperationID(); !ok {
		return &ValidationError{Name: "operation_id", err: errors.New(`ent: missing required field "OperationStatus.operation_id"`)}
	}
	if v, ok := _c.mutation.OperationID(); ok {
		if err := operationstatus.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "OperationStatus.operation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "OperationStatus.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := operationstatus.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "OperationStatus.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Terminal(); !ok {
		return &ValidationError{Name: "terminal", err: errors.New(`ent: missing required field "OperationStatus.terminal"`)}
	}
	return nil
}

func (_c *OperationStatusCreate) sqlSave(ctx context.Context) (*OperationStatus, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected OperationStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OperationStatusCreate) createSpec() (*OperationStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &OperationStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(operationstatus.Table, sqlgraph.NewFieldSpec(operationstatus.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(operationstatus.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.OperationID(); ok {
		_spec.SetField(operationstatus.FieldOperationID, field.TypeString, value)
		_node.OperationID = value
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(operationstatus.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(operationstatus.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if value, ok := _c.mutation.Terminal(); ok {
		_spec.SetField(operationstatus.FieldTerminal, field.TypeBool, value)
		_node.Terminal = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(operationstatus.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	return _node, _spec
}

// OperationStatusCreateBulk is the builder for creating many OperationStatus entities in bulk.
type OperationStatusCreateBulk struct {
	config
	err      error
	builders []*OperationStatusCreate
}

// Save creates the OperationStatus entities in the database.
func (_c *OperationStatusCreateBulk) Save(ctx context.Context) ([]*OperationStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OperationStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OperationStatusMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OperationStatusCreateBulk) SaveX(ctx context.Context) []*OperationStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OperationStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OperationStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
