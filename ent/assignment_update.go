// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dir-steward.io/steward/ent/assignment"
	"dir-steward.io/steward/ent/predicate"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentUpdate) SetUpdatedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssignmentUpdate) SetUserID(v string) *AssignmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableUserID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAgentTypeID sets the "agent_type_id" field.
func (_u *AssignmentUpdate) SetAgentTypeID(v string) *AssignmentUpdate {
	_u.mutation.SetAgentTypeID(v)
	return _u
}

// SetNillableAgentTypeID sets the "agent_type_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAgentTypeID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetAgentTypeID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *AssignmentUpdate) SetOrganizationID(v string) *AssignmentUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableOrganizationID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *AssignmentUpdate) SetGroupID(v string) *AssignmentUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableGroupID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *AssignmentUpdate) ClearGroupID() *AssignmentUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetActive sets the "active" field.
func (_u *AssignmentUpdate) SetActive(v bool) *AssignmentUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableActive(v *bool) *AssignmentUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *AssignmentUpdate) SetAssignedBy(v string) *AssignmentUpdate {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAssignedBy(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *AssignmentUpdate) SetAssignedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAssignedAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assignment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentTypeID(); ok {
		if err := assignment.AgentTypeIDValidator(v); err != nil {
			return &ValidationError{Name: "agent_type_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.agent_type_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := assignment.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.organization_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedBy(); ok {
		if err := assignment.AssignedByValidator(v); err != nil {
			return &ValidationError{Name: "assigned_by", err: fmt.Errorf(`ent: validator failed for field "Assignment.assigned_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assignment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentTypeID(); ok {
		_spec.SetField(assignment.FieldAgentTypeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(assignment.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(assignment.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(assignment.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(assignment.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(assignment.FieldAssignedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(assignment.FieldAssignedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssignmentUpdateOne) SetUpdatedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssignmentUpdateOne) SetUserID(v string) *AssignmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableUserID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAgentTypeID sets the "agent_type_id" field.
func (_u *AssignmentUpdateOne) SetAgentTypeID(v string) *AssignmentUpdateOne {
	_u.mutation.SetAgentTypeID(v)
	return _u
}

// SetNillableAgentTypeID sets the "agent_type_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAgentTypeID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAgentTypeID(*v)
	}
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *AssignmentUpdateOne) SetOrganizationID(v string) *AssignmentUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableOrganizationID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *AssignmentUpdateOne) SetGroupID(v string) *AssignmentUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableGroupID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *AssignmentUpdateOne) ClearGroupID() *AssignmentUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetActive sets the "active" field.
func (_u *AssignmentUpdateOne) SetActive(v bool) *AssignmentUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableActive(v *bool) *AssignmentUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetAssignedBy sets the "assigned_by" field.
func (_u *AssignmentUpdateOne) SetAssignedBy(v string) *AssignmentUpdateOne {
	_u.mutation.SetAssignedBy(v)
	return _u
}

// SetNillableAssignedBy sets the "assigned_by" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAssignedBy(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedBy(*v)
	}
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *AssignmentUpdateOne) SetAssignedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAssignedAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := assignment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentTypeID(); ok {
		if err := assignment.AgentTypeIDValidator(v); err != nil {
			return &ValidationError{Name: "agent_type_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.agent_type_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrganizationID(); ok {
		if err := assignment.OrganizationIDValidator(v); err != nil {
			return &ValidationError{Name: "organization_id", err: fmt.Errorf(`ent: validator failed for field "Assignment.organization_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AssignedBy(); ok {
		if err := assignment.AssignedByValidator(v); err != nil {
			return &ValidationError{Name: "assigned_by", err: fmt.Errorf(`ent: validator failed for field "Assignment.assigned_by": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
		_spec.SetField(assignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assignment.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgentTypeID(); ok {
		_spec.SetField(assignment.FieldAgentTypeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(assignment.FieldOrganizationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(assignment.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(assignment.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(assignment.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AssignedBy(); ok {
		_spec.SetField(assignment.FieldAssignedBy, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(assignment.FieldAssignedAt, field.TypeTime, value)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
