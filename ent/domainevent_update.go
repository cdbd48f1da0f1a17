// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dir-steward.io/steward/ent/domainevent"
	"dir-steward.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DomainEventUpdate is the builder for updating DomainEvent entities.
type DomainEventUpdate struct {
	config
	hooks    []Hook
	mutation *DomainEventMutation
}

// Where appends a list predicates to the DomainEventUpdate builder.
func (_u *DomainEventUpdate) Where(ps ...predicate.DomainEvent) *DomainEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainEventUpdate) SetUpdatedAt(v time.Time) *DomainEventUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *DomainEventUpdate) SetEventType(v string) *DomainEventUpdate {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableEventType(v *string) *DomainEventUpdate {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetAggregateType sets the "aggregate_type" field.
func (_u *DomainEventUpdate) SetAggregateType(v string) *DomainEventUpdate {
	_u.mutation.SetAggregateType(v)
	return _u
}

// SetNillableAggregateType sets the "aggregate_type" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableAggregateType(v *string) *DomainEventUpdate {
	if v != nil {
		_u.SetAggregateType(*v)
	}
	return _u
}

// SetAggregateID sets the "aggregate_id" field.
func (_u *DomainEventUpdate) SetAggregateID(v string) *DomainEventUpdate {
	_u.mutation.SetAggregateID(v)
	return _u
}

// SetNillableAggregateID sets the "aggregate_id" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableAggregateID(v *string) *DomainEventUpdate {
	if v != nil {
		_u.SetAggregateID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DomainEventUpdate) SetPayload(v []byte) *DomainEventUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DomainEventUpdate) SetStatus(v domainevent.Status) *DomainEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableStatus(v *domainevent.Status) *DomainEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *DomainEventUpdate) SetCreatedBy(v string) *DomainEventUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *DomainEventUpdate) SetNillableCreatedBy(v *string) *DomainEventUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the DomainEventMutation object of the builder.
func (_u *DomainEventUpdate) Mutation() *DomainEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DomainEventUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DomainEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainEventUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainEventUpdate) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := domainevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggregateType(); ok {
		if err := domainevent.AggregateTypeValidator(v); err != nil {
			return &ValidationError{Name: "aggregate_type", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.aggregate_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggregateID(); ok {
		if err := domainevent.AggregateIDValidator(v); err != nil {
			return &ValidationError{Name: "aggregate_id", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.aggregate_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := domainevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := domainevent.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(domainevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AggregateType(); ok {
		_spec.SetField(domainevent.FieldAggregateType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AggregateID(); ok {
		_spec.SetField(domainevent.FieldAggregateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(domainevent.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(domainevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(domainevent.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DomainEventUpdateOne is the builder for updating a single DomainEvent entity.
type DomainEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DomainEventMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DomainEventUpdateOne) SetUpdatedAt(v time.Time) *DomainEventUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEventType sets the "event_type" field.
func (_u *DomainEventUpdateOne) SetEventType(v string) *DomainEventUpdateOne {
	_u.mutation.SetEventType(v)
	return _u
}

// SetNillableEventType sets the "event_type" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableEventType(v *string) *DomainEventUpdateOne {
	if v != nil {
		_u.SetEventType(*v)
	}
	return _u
}

// SetAggregateType sets the "aggregate_type" field.
func (_u *DomainEventUpdateOne) SetAggregateType(v string) *DomainEventUpdateOne {
	_u.mutation.SetAggregateType(v)
	return _u
}

// SetNillableAggregateType sets the "aggregate_type" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableAggregateType(v *string) *DomainEventUpdateOne {
	if v != nil {
		_u.SetAggregateType(*v)
	}
	return _u
}

// SetAggregateID sets the "aggregate_id" field.
func (_u *DomainEventUpdateOne) SetAggregateID(v string) *DomainEventUpdateOne {
	_u.mutation.SetAggregateID(v)
	return _u
}

// SetNillableAggregateID sets the "aggregate_id" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableAggregateID(v *string) *DomainEventUpdateOne {
	if v != nil {
		_u.SetAggregateID(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DomainEventUpdateOne) SetPayload(v []byte) *DomainEventUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DomainEventUpdateOne) SetStatus(v domainevent.Status) *DomainEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableStatus(v *domainevent.Status) *DomainEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *DomainEventUpdateOne) SetCreatedBy(v string) *DomainEventUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *DomainEventUpdateOne) SetNillableCreatedBy(v *string) *DomainEventUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the DomainEventMutation object of the builder.
func (_u *DomainEventUpdateOne) Mutation() *DomainEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DomainEventUpdate builder.
func (_u *DomainEventUpdateOne) Where(ps ...predicate.DomainEvent) *DomainEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DomainEventUpdateOne) Select(field string, fields ...string) *DomainEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DomainEvent entity.
func (_u *DomainEventUpdateOne) Save(ctx context.Context) (*DomainEvent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DomainEventUpdateOne) SaveX(ctx context.Context) *DomainEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DomainEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DomainEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DomainEventUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := domainevent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DomainEventUpdateOne) check() error {
	if v, ok := _u.mutation.EventType(); ok {
		if err := domainevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.event_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggregateType(); ok {
		if err := domainevent.AggregateTypeValidator(v); err != nil {
			return &ValidationError{Name: "aggregate_type", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.aggregate_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AggregateID(); ok {
		if err := domainevent.AggregateIDValidator(v); err != nil {
			return &ValidationError{Name: "aggregate_id", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.aggregate_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := domainevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := domainevent.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "DomainEvent.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *DomainEventUpdateOne) sqlSave(ctx context.Context) (_node *DomainEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(domainevent.Table, domainevent.Columns, sqlgraph.NewFieldSpec(domainevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DomainEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, domainevent.FieldID)
		for _, f := range fields {
			if !domainevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != domainevent.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(domainevent.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EventType(); ok {
		_spec.SetField(domainevent.FieldEventType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AggregateType(); ok {
		_spec.SetField(domainevent.FieldAggregateType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AggregateID(); ok {
		_spec.SetField(domainevent.FieldAggregateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(domainevent.FieldPayload, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(domainevent.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(domainevent.FieldCreatedBy, field.TypeString, value)
	}
	_node = &DomainEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{domainevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
