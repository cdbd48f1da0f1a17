package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/internal/directory"
	"dir-steward.io/steward/internal/domain"
	"dir-steward.io/steward/internal/governance/audit"
	"dir-steward.io/steward/internal/jobs"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/service"
)

// ChangeAgentTypeGroupInput represents the input for repointing a
// capability at a new directory group.
type ChangeAgentTypeGroupInput struct {
	AgentTypeID string `json:"agent_type_id"`
	NewGroupID  string `json:"new_group_id"`
	Actor       string `json:"actor"`
}

// ChangeAgentTypeGroupOutput represents the accepted mapping change.
type ChangeAgentTypeGroupOutput struct {
	EventID     string `json:"event_id"`
	OperationID string `json:"operation_id"`
	OldGroupID  string `json:"old_group_id"`
	Status      string `json:"status"`
}

// ChangeAgentTypeGroupUseCase repoints a capability's backing group and
// kicks off the migration of every holder from the old group to the new
// one. The mapping change commits synchronously; propagation is a River
// job working from the persisted event.
type ChangeAgentTypeGroupUseCase struct {
	entClient    *ent.Client
	riverClient  *river.Client[pgx.Tx]
	agentTypeSvc *service.AgentTypeService
	dirClient    directory.Client
	auditLogger  *audit.Logger
}

// NewChangeAgentTypeGroupUseCase creates a new ChangeAgentTypeGroupUseCase.
func NewChangeAgentTypeGroupUseCase(
	entClient *ent.Client,
	riverClient *river.Client[pgx.Tx],
	agentTypeSvc *service.AgentTypeService,
	dirClient directory.Client,
) *ChangeAgentTypeGroupUseCase {
	return &ChangeAgentTypeGroupUseCase{
		entClient:    entClient,
		riverClient:  riverClient,
		agentTypeSvc: agentTypeSvc,
		dirClient:    dirClient,
	}
}

// WithAuditLogger sets the audit logger (optional dependency).
func (uc *ChangeAgentTypeGroupUseCase) WithAuditLogger(al *audit.Logger) *ChangeAgentTypeGroupUseCase {
	uc.auditLogger = al
	return uc
}

// Execute commits the new mapping and enqueues the propagation job.
func (uc *ChangeAgentTypeGroupUseCase) Execute(ctx context.Context, input ChangeAgentTypeGroupInput) (*ChangeAgentTypeGroupOutput, error) {
	if strings.TrimSpace(input.AgentTypeID) == "" || strings.TrimSpace(input.Actor) == "" {
		return nil, apperrors.Validation(apperrors.CodeValidationFailed, "agent type id and actor are required")
	}

	// A new mapping pointing at a missing group is accepted: the rows
	// record the intent and repair finishes the job once the group exists.
	// It is still worth telling the operator right away.
	if input.NewGroupID != "" {
		exists, err := uc.dirClient.GroupExists(ctx, input.NewGroupID)
		if err == nil && !exists {
			logger.Warn("Mapping changed to a group the directory does not know",
				zap.String("agent_type_id", input.AgentTypeID),
				zap.String("group_id", input.NewGroupID),
			)
		}
	}

	oldGroupID, err := uc.agentTypeSvc.SetGroupID(ctx, input.AgentTypeID, input.NewGroupID)
	if err != nil {
		return nil, err
	}
	if oldGroupID == input.NewGroupID {
		return &ChangeAgentTypeGroupOutput{OldGroupID: oldGroupID, Status: "NOOP"}, nil
	}

	operationID := generateID()
	payload := domain.MappingChangePayload{
		AgentTypeID: input.AgentTypeID,
		OldGroupID:  oldGroupID,
		NewGroupID:  input.NewGroupID,
		Actor:       input.Actor,
		OperationID: operationID,
	}
	payloadBytes, err := payload.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	eventID, err := createEvent(ctx, uc.entClient, domain.EventMappingChangeRequested, input.AgentTypeID, payloadBytes, input.Actor)
	if err != nil {
		return nil, err
	}
	if err := enqueue(ctx, uc.entClient, uc.riverClient, eventID, jobs.MappingChangeArgs{EventID: eventID}); err != nil {
		return nil, err
	}

	if uc.auditLogger != nil {
		_ = uc.auditLogger.LogCapabilityChange(ctx, "mapping_change", input.AgentTypeID, input.Actor, map[string]interface{}{
			"old_group_id": oldGroupID,
			"new_group_id": input.NewGroupID,
			"operation_id": operationID,
		})
	}
	logger.Info("Capability mapping change accepted",
		zap.String("agent_type_id", input.AgentTypeID),
		zap.String("old_group_id", oldGroupID),
		zap.String("new_group_id", input.NewGroupID),
		zap.String("event_id", eventID),
	)

	return &ChangeAgentTypeGroupOutput{
		EventID:     eventID,
		OperationID: operationID,
		OldGroupID:  oldGroupID,
		Status:      "PENDING",
	}, nil
}
