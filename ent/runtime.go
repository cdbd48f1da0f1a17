// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"dir-steward.io/steward/ent/agenttype"
	"dir-steward.io/steward/ent/assignment"
	"dir-steward.io/steward/ent/auditlog"
	"dir-steward.io/steward/ent/domainevent"
	"dir-steward.io/steward/ent/operationstatus"
	"dir-steward.io/steward/ent/organization"
	"dir-steward.io/steward/ent/schema"
	"dir-steward.io/steward/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agenttypeMixin := schema.AgentType{}.Mixin()
	agenttypeMixinFields0 := agenttypeMixin[0].Fields()
	_ = agenttypeMixinFields0
	agenttypeFields := schema.AgentType{}.Fields()
	_ = agenttypeFields
	// agenttypeDescCreatedAt is the schema descriptor for created_at field.
	agenttypeDescCreatedAt := agenttypeMixinFields0[0].Descriptor()
	// agenttype.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttype.DefaultCreatedAt = agenttypeDescCreatedAt.Default.(func() time.Time)
	// agenttypeDescUpdatedAt is the schema descriptor for updated_at field.
	agenttypeDescUpdatedAt := agenttypeMixinFields0[1].Descriptor()
	// agenttype.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agenttype.DefaultUpdatedAt = agenttypeDescUpdatedAt.Default.(func() time.Time)
	// agenttype.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agenttype.UpdateDefaultUpdatedAt = agenttypeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// agenttypeDescName is the schema descriptor for name field.
	agenttypeDescName := agenttypeFields[1].Descriptor()
	// agenttype.NameValidator is a validator for the "name" field. It is called by the builders before save.
	agenttype.NameValidator = agenttypeDescName.Validators[0].(func(string) error)
	// agenttypeDescActive is the schema descriptor for active field.
	agenttypeDescActive := agenttypeFields[4].Descriptor()
	// agenttype.DefaultActive holds the default value on creation for the active field.
	agenttype.DefaultActive = agenttypeDescActive.Default.(bool)
	// agenttypeDescCreatedBy is the schema descriptor for created_by field.
	agenttypeDescCreatedBy := agenttypeFields[5].Descriptor()
	// agenttype.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	agenttype.CreatedByValidator = agenttypeDescCreatedBy.Validators[0].(func(string) error)
	assignmentMixin := schema.Assignment{}.Mixin()
	assignmentMixinFields0 := assignmentMixin[0].Fields()
	_ = assignmentMixinFields0
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentMixinFields0[0].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescUpdatedAt is the schema descriptor for updated_at field.
	assignmentDescUpdatedAt := assignmentMixinFields0[1].Descriptor()
	// assignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assignment.DefaultUpdatedAt = assignmentDescUpdatedAt.Default.(func() time.Time)
	// assignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assignment.UpdateDefaultUpdatedAt = assignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assignmentDescUserID is the schema descriptor for user_id field.
	assignmentDescUserID := assignmentFields[1].Descriptor()
	// assignment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assignment.UserIDValidator = assignmentDescUserID.Validators[0].(func(string) error)
	// assignmentDescAgentTypeID is the schema descriptor for agent_type_id field.
	assignmentDescAgentTypeID := assignmentFields[2].Descriptor()
	// assignment.AgentTypeIDValidator is a validator for the "agent_type_id" field. It is called by the builders before save.
	assignment.AgentTypeIDValidator = assignmentDescAgentTypeID.Validators[0].(func(string) error)
	// assignmentDescOrganizationID is the schema descriptor for organization_id field.
	assignmentDescOrganizationID := assignmentFields[3].Descriptor()
	// assignment.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	assignment.OrganizationIDValidator = assignmentDescOrganizationID.Validators[0].(func(string) error)
	// assignmentDescActive is the schema descriptor for active field.
	assignmentDescActive := assignmentFields[5].Descriptor()
	// assignment.DefaultActive holds the default value on creation for the active field.
	assignment.DefaultActive = assignmentDescActive.Default.(bool)
	// assignmentDescAssignedBy is the schema descriptor for assigned_by field.
	assignmentDescAssignedBy := assignmentFields[6].Descriptor()
	// assignment.AssignedByValidator is a validator for the "assigned_by" field. It is called by the builders before save.
	assignment.AssignedByValidator = assignmentDescAssignedBy.Validators[0].(func(string) error)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[1].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = auditlogDescAction.Validators[0].(func(string) error)
	// auditlogDescResourceType is the schema descriptor for resource_type field.
	auditlogDescResourceType := auditlogFields[2].Descriptor()
	// auditlog.ResourceTypeValidator is a validator for the "resource_type" field. It is called by the builders before save.
	auditlog.ResourceTypeValidator = auditlogDescResourceType.Validators[0].(func(string) error)
	// auditlogDescResourceID is the schema descriptor for resource_id field.
	auditlogDescResourceID := auditlogFields[3].Descriptor()
	// auditlog.ResourceIDValidator is a validator for the "resource_id" field. It is called by the builders before save.
	auditlog.ResourceIDValidator = auditlogDescResourceID.Validators[0].(func(string) error)
	// auditlogDescActor is the schema descriptor for actor field.
	auditlogDescActor := auditlogFields[4].Descriptor()
	// auditlog.ActorValidator is a validator for the "actor" field. It is called by the builders before save.
	auditlog.ActorValidator = auditlogDescActor.Validators[0].(func(string) error)
	domaineventMixin := schema.DomainEvent{}.Mixin()
	domaineventMixinFields0 := domaineventMixin[0].Fields()
	_ = domaineventMixinFields0
	domaineventFields := schema.DomainEvent{}.Fields()
	_ = domaineventFields
	// domaineventDescCreatedAt is the schema descriptor for created_at field.
	domaineventDescCreatedAt := domaineventMixinFields0[0].Descriptor()
	// domainevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	domainevent.DefaultCreatedAt = domaineventDescCreatedAt.Default.(func() time.Time)
	// domaineventDescUpdatedAt is the schema descriptor for updated_at field.
	domaineventDescUpdatedAt := domaineventMixinFields0[1].Descriptor()
	// domainevent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	domainevent.DefaultUpdatedAt = domaineventDescUpdatedAt.Default.(func() time.Time)
	// domainevent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	domainevent.UpdateDefaultUpdatedAt = domaineventDescUpdatedAt.UpdateDefault.(func() time.Time)
	// domaineventDescEventType is the schema descriptor for event_type field.
	domaineventDescEventType := domaineventFields[1].Descriptor()
	// domainevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	domainevent.EventTypeValidator = domaineventDescEventType.Validators[0].(func(string) error)
	// domaineventDescAggregateType is the schema descriptor for aggregate_type field.
	domaineventDescAggregateType := domaineventFields[2].Descriptor()
	// domainevent.AggregateTypeValidator is a validator for the "aggregate_type" field. It is called by the builders before save.
	domainevent.AggregateTypeValidator = domaineventDescAggregateType.Validators[0].(func(string) error)
	// domaineventDescAggregateID is the schema descriptor for aggregate_id field.
	domaineventDescAggregateID := domaineventFields[3].Descriptor()
	// domainevent.AggregateIDValidator is a validator for the "aggregate_id" field. It is called by the builders before save.
	domainevent.AggregateIDValidator = domaineventDescAggregateID.Validators[0].(func(string) error)
	// domaineventDescCreatedBy is the schema descriptor for created_by field.
	domaineventDescCreatedBy := domaineventFields[6].Descriptor()
	// domainevent.CreatedByValidator is a validator for the "created_by" field. It is called by the builders before save.
	domainevent.CreatedByValidator = domaineventDescCreatedBy.Validators[0].(func(string) error)
	operationstatusMixin := schema.OperationStatus{}.Mixin()
	operationstatusMixinFields0 := operationstatusMixin[0].Fields()
	_ = operationstatusMixinFields0
	operationstatusFields := schema.OperationStatus{}.Fields()
	_ = operationstatusFields
	// operationstatusDescCreatedAt is the schema descriptor for created_at field.
	operationstatusDescCreatedAt := operationstatusMixinFields0[0].Descriptor()
	// operationstatus.DefaultCreatedAt holds the default value on creation for the created_at field.
	operationstatus.DefaultCreatedAt = operationstatusDescCreatedAt.Default.(func() time.Time)
	// operationstatusDescOperationID is the schema descriptor for operation_id field.
	operationstatusDescOperationID := operationstatusFields[1].Descriptor()
	// operationstatus.OperationIDValidator is a validator for the "operation_id" field. It is called by the builders before save.
	operationstatus.OperationIDValidator = operationstatusDescOperationID.Validators[0].(func(string) error)
	// operationstatusDescPhase is the schema descriptor for phase field.
	operationstatusDescPhase := operationstatusFields[2].Descriptor()
	// operationstatus.PhaseValidator is a validator for the "phase" field. It is called by the builders before save.
	operationstatus.PhaseValidator = operationstatusDescPhase.Validators[0].(func(string) error)
	// operationstatusDescTerminal is the schema descriptor for terminal field.
	operationstatusDescTerminal := operationstatusFields[4].Descriptor()
	// operationstatus.DefaultTerminal holds the default value on creation for the terminal field.
	operationstatus.DefaultTerminal = operationstatusDescTerminal.Default.(bool)
	organizationMixin := schema.Organization{}.Mixin()
	organizationMixinFields0 := organizationMixin[0].Fields()
	_ = organizationMixinFields0
	organizationFields := schema.Organization{}.Fields()
	_ = organizationFields
	// organizationDescCreatedAt is the schema descriptor for created_at field.
	organizationDescCreatedAt := organizationMixinFields0[0].Descriptor()
	// organization.DefaultCreatedAt holds the default value on creation for the created_at field.
	organization.DefaultCreatedAt = organizationDescCreatedAt.Default.(func() time.Time)
	// organizationDescUpdatedAt is the schema descriptor for updated_at field.
	organizationDescUpdatedAt := organizationMixinFields0[1].Descriptor()
	// organization.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	organization.DefaultUpdatedAt = organizationDescUpdatedAt.Default.(func() time.Time)
	// organization.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	organization.UpdateDefaultUpdatedAt = organizationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// organizationDescName is the schema descriptor for name field.
	organizationDescName := organizationFields[1].Descriptor()
	// organization.NameValidator is a validator for the "name" field. It is called by the builders before save.
	organization.NameValidator = organizationDescName.Validators[0].(func(string) error)
	// organizationDescActive is the schema descriptor for active field.
	organizationDescActive := organizationFields[2].Descriptor()
	// organization.DefaultActive holds the default value on creation for the active field.
	organization.DefaultActive = organizationDescActive.Default.(bool)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescOrganizationID is the schema descriptor for organization_id field.
	userDescOrganizationID := userFields[3].Descriptor()
	// user.OrganizationIDValidator is a validator for the "organization_id" field. It is called by the builders before save.
	user.OrganizationIDValidator = userDescOrganizationID.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[5].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
}
