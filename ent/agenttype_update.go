// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dir-steward.io/steward/ent/agenttype"
	"dir-steward.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AgentTypeUpdate is the builder for updating AgentType entities.
type AgentTypeUpdate struct {
	config
	hooks    []Hook
	mutation *AgentTypeMutation
}

// Where appends a list predicates to the AgentTypeUpdate builder.
func (_u *AgentTypeUpdate) Where(ps ...predicate.AgentType) *AgentTypeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentTypeUpdate) SetUpdatedAt(v time.Time) *AgentTypeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentTypeUpdate) SetName(v string) *AgentTypeUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentTypeUpdate) SetNillableName(v *string) *AgentTypeUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentTypeUpdate) SetDescription(v string) *AgentTypeUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentTypeUpdate) SetNillableDescription(v *string) *AgentTypeUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentTypeUpdate) ClearDescription() *AgentTypeUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *AgentTypeUpdate) SetGroupID(v string) *AgentTypeUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *AgentTypeUpdate) SetNillableGroupID(v *string) *AgentTypeUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *AgentTypeUpdate) ClearGroupID() *AgentTypeUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetActive sets the "active" field.
func (_u *AgentTypeUpdate) SetActive(v bool) *AgentTypeUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AgentTypeUpdate) SetNillableActive(v *bool) *AgentTypeUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AgentTypeUpdate) SetCreatedBy(v string) *AgentTypeUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AgentTypeUpdate) SetNillableCreatedBy(v *string) *AgentTypeUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the AgentTypeMutation object of the builder.
func (_u *AgentTypeUpdate) Mutation() *AgentTypeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentTypeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTypeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentTypeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTypeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentTypeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTypeUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AgentType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := agenttype.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "AgentType.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentTypeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttype.Table, agenttype.Columns, sqlgraph.NewFieldSpec(agenttype.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(agenttype.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(agenttype.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(agenttype.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(agenttype.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentTypeUpdateOne is the builder for updating a single AgentType entity.
type AgentTypeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentTypeMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentTypeUpdateOne) SetUpdatedAt(v time.Time) *AgentTypeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *AgentTypeUpdateOne) SetName(v string) *AgentTypeUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *AgentTypeUpdateOne) SetNillableName(v *string) *AgentTypeUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *AgentTypeUpdateOne) SetDescription(v string) *AgentTypeUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *AgentTypeUpdateOne) SetNillableDescription(v *string) *AgentTypeUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *AgentTypeUpdateOne) ClearDescription() *AgentTypeUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *AgentTypeUpdateOne) SetGroupID(v string) *AgentTypeUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *AgentTypeUpdateOne) SetNillableGroupID(v *string) *AgentTypeUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *AgentTypeUpdateOne) ClearGroupID() *AgentTypeUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetActive sets the "active" field.
func (_u *AgentTypeUpdateOne) SetActive(v bool) *AgentTypeUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AgentTypeUpdateOne) SetNillableActive(v *bool) *AgentTypeUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *AgentTypeUpdateOne) SetCreatedBy(v string) *AgentTypeUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *AgentTypeUpdateOne) SetNillableCreatedBy(v *string) *AgentTypeUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the AgentTypeMutation object of the builder.
func (_u *AgentTypeUpdateOne) Mutation() *AgentTypeMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentTypeUpdate builder.
func (_u *AgentTypeUpdateOne) Where(ps ...predicate.AgentType) *AgentTypeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentTypeUpdateOne) Select(field string, fields ...string) *AgentTypeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentType entity.
func (_u *AgentTypeUpdateOne) Save(ctx context.Context) (*AgentType, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentTypeUpdateOne) SaveX(ctx context.Context) *AgentType {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentTypeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentTypeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentTypeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agenttype.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentTypeUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := agenttype.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "AgentType.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := agenttype.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "AgentType.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentTypeUpdateOne) sqlSave(ctx context.Context) (_node *AgentType, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenttype.Table, agenttype.Columns, sqlgraph.NewFieldSpec(agenttype.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentType.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenttype.FieldID)
		for _, f := range fields {
			if !agenttype.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenttype.FieldID {
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
		_spec.SetField(agenttype.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(agenttype.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(agenttype.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(agenttype.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(agenttype.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(agenttype.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(agenttype.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(agenttype.FieldCreatedBy, field.TypeString, value)
	}
	_node = &AgentType{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenttype.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
