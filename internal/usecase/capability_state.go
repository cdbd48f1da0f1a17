package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/internal/domain"
	"dir-steward.io/steward/internal/governance/audit"
	"dir-steward.io/steward/internal/jobs"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/service"
)

// SetAgentTypeStateInput represents the input for enabling or disabling a
// capability.
type SetAgentTypeStateInput struct {
	AgentTypeID string `json:"agent_type_id"`
	Active      bool   `json:"active"`
	Actor       string `json:"actor"`
}

// SetAgentTypeStateOutput represents the state change, including the
// cascade operation when the capability was disabled.
type SetAgentTypeStateOutput struct {
	Active      bool   `json:"active"`
	EventID     string `json:"event_id,omitempty"`
	OperationID string `json:"operation_id,omitempty"`
}

// SetAgentTypeStateUseCase flips a capability's state. Disabling emits a
// revoke-everywhere event consumed by the River worker; the registry never
// calls the engine directly, the event is the only coupling between them.
type SetAgentTypeStateUseCase struct {
	entClient    *ent.Client
	riverClient  *river.Client[pgx.Tx]
	agentTypeSvc *service.AgentTypeService
	auditLogger  *audit.Logger
}

// NewSetAgentTypeStateUseCase creates a new SetAgentTypeStateUseCase.
func NewSetAgentTypeStateUseCase(
	entClient *ent.Client,
	riverClient *river.Client[pgx.Tx],
	agentTypeSvc *service.AgentTypeService,
) *SetAgentTypeStateUseCase {
	return &SetAgentTypeStateUseCase{
		entClient:    entClient,
		riverClient:  riverClient,
		agentTypeSvc: agentTypeSvc,
	}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (uc *SetAgentTypeStateUseCase) WithAuditLogger(al *audit.Logger) *SetAgentTypeStateUseCase {
	uc.auditLogger = al
	return uc
}

// Execute flips the capability state and, on disable, enqueues the global
// revoke cascade.
func (uc *SetAgentTypeStateUseCase) Execute(ctx context.Context, input SetAgentTypeStateInput) (*SetAgentTypeStateOutput, error) {
	if strings.TrimSpace(input.AgentTypeID) == "" || strings.TrimSpace(input.Actor) == "" {
		return nil, apperrors.Validation(apperrors.CodeValidationFailed, "agent type id and actor are required")
	}

	capability, err := uc.agentTypeSvc.GetByID(ctx, input.AgentTypeID)
	if err != nil {
		return nil, err
	}
	if capability.Active == input.Active {
		return &SetAgentTypeStateOutput{Active: capability.Active}, nil
	}
	if err := uc.agentTypeSvc.SetActive(ctx, input.AgentTypeID, input.Active); err != nil {
		return nil, err
	}

	out := &SetAgentTypeStateOutput{Active: input.Active}
	action := "enable"
	if !input.Active {
		action = "disable"
		operationID := generateID()
		payload := domain.RevokeAllPayload{
			AgentTypeID: input.AgentTypeID,
			Actor:       input.Actor,
			OperationID: operationID,
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
		out.EventID = eventID
		out.OperationID = operationID
	}

	if uc.auditLogger != nil {
		_ = uc.auditLogger.LogCapabilityChange(ctx, action, input.AgentTypeID, input.Actor, map[string]interface{}{
			"operation_id": out.OperationID,
		})
	}
	logger.Info("Capability state changed",
		zap.String("agent_type_id", input.AgentTypeID),
		zap.Bool("active", input.Active),
		zap.String("event_id", out.EventID),
	)
	return out, nil
}
