package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/organization"
	"dir-steward.io/steward/internal/domain"
	"dir-steward.io/steward/internal/governance/audit"
	"dir-steward.io/steward/internal/jobs"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/service"
)

// OrgCapabilityInput represents the input for granting or revoking a
// capability across a whole organization.
type OrgCapabilityInput struct {
	OrganizationID string `json:"organization_id"`
	AgentTypeID    string `json:"agent_type_id"`
	Actor          string `json:"actor"`
}

// OrgCapabilityOutput represents the accepted bulk operation.
type OrgCapabilityOutput struct {
	EventID     string `json:"event_id"`
	OperationID string `json:"operation_id"`
	Status      string `json:"status"`
}

// OrgCapabilityUseCase enqueues organization-wide grant and revoke
// operations. Both run asynchronously: the caller gets an operation id to
// poll, the River worker drives the engine.
type OrgCapabilityUseCase struct {
	entClient    *ent.Client
	riverClient  *river.Client[pgx.Tx]
	agentTypeSvc *service.AgentTypeService
	auditLogger  *audit.Logger
}

// NewOrgCapabilityUseCase creates a new OrgCapabilityUseCase.
func NewOrgCapabilityUseCase(
	entClient *ent.Client,
	riverClient *river.Client[pgx.Tx],
	agentTypeSvc *service.AgentTypeService,
) *OrgCapabilityUseCase {
	return &OrgCapabilityUseCase{
		entClient:    entClient,
		riverClient:  riverClient,
		agentTypeSvc: agentTypeSvc,
	}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (uc *OrgCapabilityUseCase) WithAuditLogger(al *audit.Logger) *OrgCapabilityUseCase {
	uc.auditLogger = al
	return uc
}

// GrantToAll enqueues a grant of the capability to every active user in
// the organization.
func (uc *OrgCapabilityUseCase) GrantToAll(ctx context.Context, input OrgCapabilityInput) (*OrgCapabilityOutput, error) {
	capability, err := uc.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	if !capability.Active {
		return nil, apperrors.Conflict(apperrors.CodeCapabilityInUse,
			fmt.Sprintf("agent type %s is disabled", input.AgentTypeID))
	}
	if capability.GroupID == "" {
		return nil, apperrors.Conflict(apperrors.CodeCapabilityUnmapped,
			fmt.Sprintf("agent type %s has no group mapping", input.AgentTypeID))
	}

	operationID := generateID()
	payload := domain.GrantAllPayload{
		AgentTypeID:    input.AgentTypeID,
		OrganizationID: input.OrganizationID,
		Actor:          input.Actor,
		OperationID:    operationID,
	}
	payloadBytes, err := payload.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	eventID, err := createEvent(ctx, uc.entClient, domain.EventGrantAllRequested, input.AgentTypeID, payloadBytes, input.Actor)
	if err != nil {
		return nil, err
	}
	if err := enqueue(ctx, uc.entClient, uc.riverClient, eventID, jobs.CapabilityGrantAllArgs{EventID: eventID}); err != nil {
		return nil, err
	}
	uc.logAccepted(ctx, "grant_all", input, operationID, eventID)
	return &OrgCapabilityOutput{EventID: eventID, OperationID: operationID, Status: "PENDING"}, nil
}

// RevokeFromAll enqueues a revoke of the capability from every holder in
// the organization.
func (uc *OrgCapabilityUseCase) RevokeFromAll(ctx context.Context, input OrgCapabilityInput) (*OrgCapabilityOutput, error) {
	if _, err := uc.validate(ctx, input); err != nil {
		return nil, err
	}

	operationID := generateID()
	payload := domain.RevokeAllPayload{
		AgentTypeID:    input.AgentTypeID,
		OrganizationID: input.OrganizationID,
		Actor:          input.Actor,
		OperationID:    operationID,
	}
	payloadBytes, err := payload.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	eventID, err := createEvent(ctx, uc.entClient, domain.EventRevokeAllRequested, input.AgentTypeID, payloadBytes, input.Actor)
	if err != nil {
		return nil, err
	}
	if err := enqueue(ctx, uc.entClient, uc.riverClient, eventID, jobs.CapabilityRevokeAllArgs{EventID: eventID}); err != nil {
		return nil, err
	}
	uc.logAccepted(ctx, "revoke_all", input, operationID, eventID)
	return &OrgCapabilityOutput{EventID: eventID, OperationID: operationID, Status: "PENDING"}, nil
}

func (uc *OrgCapabilityUseCase) validate(ctx context.Context, input OrgCapabilityInput) (service.Capability, error) {
	if strings.TrimSpace(input.OrganizationID) == "" ||
		strings.TrimSpace(input.AgentTypeID) == "" ||
		strings.TrimSpace(input.Actor) == "" {
		return service.Capability{}, apperrors.Validation(apperrors.CodeValidationFailed,
			"organization id, agent type id and actor are required")
	}
	exists, err := uc.entClient.Organization.Query().
		Where(organization.IDEQ(input.OrganizationID)).
		Exist(ctx)
	if err != nil {
		return service.Capability{}, fmt.Errorf("check organization %s: %w", input.OrganizationID, err)
	}
	if !exists {
		return service.Capability{}, apperrors.NotFound(apperrors.CodeOrganizationNotFound,
			fmt.Sprintf("organization %s not found", input.OrganizationID))
	}
	return uc.agentTypeSvc.GetByID(ctx, input.AgentTypeID)
}

func (uc *OrgCapabilityUseCase) logAccepted(ctx context.Context, action string, input OrgCapabilityInput, operationID, eventID string) {
	if uc.auditLogger != nil {
		_ = uc.auditLogger.LogCapabilityChange(ctx, action, input.AgentTypeID, input.Actor, map[string]interface{}{
			"organization_id": input.OrganizationID,
			"operation_id":    operationID,
		})
	}
	logger.Info("Bulk capability operation accepted",
		zap.String("action", action),
		zap.String("agent_type_id", input.AgentTypeID),
		zap.String("organization_id", input.OrganizationID),
		zap.String("event_id", eventID),
	)
}
