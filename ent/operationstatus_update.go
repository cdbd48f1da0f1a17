// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"dir-steward.io/steward/ent/operationstatus"
	"dir-steward.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// OperationStatusUpdate is the builder for updating OperationStatus entities.
type OperationStatusUpdate struct {
	config
	hooks    []Hook
	mutation *OperationStatusMutation
}

// Where appends a list predicates to the OperationStatusUpdate builder.
func (_u *OperationStatusUpdate) Where(ps ...predicate.OperationStatus) *OperationStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOperationID sets the "operation_id" field.
func (_u *OperationStatusUpdate) SetOperationID(v string) *OperationStatusUpdate {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *OperationStatusUpdate) SetNillableOperationID(v *string) *OperationStatusUpdate {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *OperationStatusUpdate) SetPhase(v string) *OperationStatusUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *OperationStatusUpdate) SetNillablePhase(v *string) *OperationStatusUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *OperationStatusUpdate) SetDetail(v string) *OperationStatusUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *OperationStatusUpdate) SetNillableDetail(v *string) *OperationStatusUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *OperationStatusUpdate) ClearDetail() *OperationStatusUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetTerminal sets the "terminal" field.
func (_u *OperationStatusUpdate) SetTerminal(v bool) *OperationStatusUpdate {
	_u.mutation.SetTerminal(v)
	return _u
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_u *OperationStatusUpdate) SetNillableTerminal(v *bool) *OperationStatusUpdate {
	if v != nil {
		_u.SetTerminal(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *OperationStatusUpdate) SetSuccess(v bool) *OperationStatusUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *OperationStatusUpdate) SetNillableSuccess(v *bool) *OperationStatusUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// ClearSuccess clears the value of the "success" field.
func (_u *OperationStatusUpdate) ClearSuccess() *OperationStatusUpdate {
	_u.mutation.ClearSuccess()
	return _u
}

// Mutation returns the OperationStatusMutation object of the builder.
func (_u *OperationStatusUpdate) Mutation() *OperationStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OperationStatusUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OperationStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationStatusUpdate) check() error {
	if v, ok := _u.mutation.OperationID(); ok {
		if err := operationstatus.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "OperationStatus.operation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := operationstatus.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "OperationStatus.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *OperationStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operationstatus.Table, operationstatus.Columns, sqlgraph.NewFieldSpec(operationstatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(operationstatus.FieldOperationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(operationstatus.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(operationstatus.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(operationstatus.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Terminal(); ok {
		_spec.SetField(operationstatus.FieldTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(operationstatus.FieldSuccess, field.TypeBool, value)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(operationstatus.FieldSuccess, field.TypeBool)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operationstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OperationStatusUpdateOne is the builder for updating a single OperationStatus entity.
type OperationStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OperationStatusMutation
}

// SetOperationID sets the "operation_id" field.
func (_u *OperationStatusUpdateOne) SetOperationID(v string) *OperationStatusUpdateOne {
	_u.mutation.SetOperationID(v)
	return _u
}

// SetNillableOperationID sets the "operation_id" field if the given value is not nil.
func (_u *OperationStatusUpdateOne) SetNillableOperationID(v *string) *OperationStatusUpdateOne {
	if v != nil {
		_u.SetOperationID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *OperationStatusUpdateOne) SetPhase(v string) *OperationStatusUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *OperationStatusUpdateOne) SetNillablePhase(v *string) *OperationStatusUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *OperationStatusUpdateOne) SetDetail(v string) *OperationStatusUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *OperationStatusUpdateOne) SetNillableDetail(v *string) *OperationStatusUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *OperationStatusUpdateOne) ClearDetail() *OperationStatusUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetTerminal sets the "terminal" field.
func (_u *OperationStatusUpdateOne) SetTerminal(v bool) *OperationStatusUpdateOne {
	_u.mutation.SetTerminal(v)
	return _u
}

// SetNillableTerminal sets the "terminal" field if the given value is not nil.
func (_u *OperationStatusUpdateOne) SetNillableTerminal(v *bool) *OperationStatusUpdateOne {
	if v != nil {
		_u.SetTerminal(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *OperationStatusUpdateOne) SetSuccess(v bool) *OperationStatusUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *OperationStatusUpdateOne) SetNillableSuccess(v *bool) *OperationStatusUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// ClearSuccess clears the value of the "success" field.
func (_u *OperationStatusUpdateOne) ClearSuccess() *OperationStatusUpdateOne {
	_u.mutation.ClearSuccess()
	return _u
}

// Mutation returns the OperationStatusMutation object of the builder.
func (_u *OperationStatusUpdateOne) Mutation() *OperationStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the OperationStatusUpdate builder.
func (_u *OperationStatusUpdateOne) Where(ps ...predicate.OperationStatus) *OperationStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OperationStatusUpdateOne) Select(field string, fields ...string) *OperationStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OperationStatus entity.
func (_u *OperationStatusUpdateOne) Save(ctx context.Context) (*OperationStatus, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OperationStatusUpdateOne) SaveX(ctx context.Context) *OperationStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OperationStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OperationStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OperationStatusUpdateOne) check() error {
	if v, ok := _u.mutation.OperationID(); ok {
		if err := operationstatus.OperationIDValidator(v); err != nil {
			return &ValidationError{Name: "operation_id", err: fmt.Errorf(`ent: validator failed for field "OperationStatus.operation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phase(); ok {
		if err := operationstatus.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "OperationStatus.phase": %w`, err)}
		}
	}
	return nil
}

func (_u *OperationStatusUpdateOne) sqlSave(ctx context.Context) (_node *OperationStatus, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(operationstatus.Table, operationstatus.Columns, sqlgraph.NewFieldSpec(operationstatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OperationStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, operationstatus.FieldID)
		for _, f := range fields {
			if !operationstatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != operationstatus.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OperationID(); ok {
		_spec.SetField(operationstatus.FieldOperationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(operationstatus.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(operationstatus.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(operationstatus.FieldDetail, field.TypeString)
	}
	if value, ok := _u.mutation.Terminal(); ok {
		_spec.SetField(operationstatus.FieldTerminal, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(operationstatus.FieldSuccess, field.TypeBool, value)
	}
	if _u.mutation.SuccessCleared() {
		_spec.ClearField(operationstatus.FieldSuccess, field.TypeBool)
	}
	_node = &OperationStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{operationstatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
