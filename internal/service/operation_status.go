package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/operationstatus"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
)

// OperationStatusService records the progress feed of long-running
// reconciliation operations. Writes are fire-and-forget: a failed status
// write never fails the operation it describes.
type OperationStatusService struct {
	client *ent.Client
}

// NewOperationStatusService creates a new OperationStatusService.
func NewOperationStatusService(client *ent.Client) *OperationStatusService {
	return &OperationStatusService{client: client}
}

// Progress appends a non-terminal status row.
func (s *OperationStatusService) Progress(ctx context.Context, operationID, phase, detail string) {
	s.append(ctx, operationID, phase, detail, false, false)
}

// Done appends the terminal status row.
func (s *OperationStatusService) Done(ctx context.Context, operationID string, success bool, detail string) {
	s.append(ctx, operationID, "done", detail, true, success)
}

func (s *OperationStatusService) append(ctx context.Context, operationID, phase, detail string, terminal, success bool) {
	_, err := s.client.OperationStatus.Create().
		SetID(generateStatusID()).
		SetOperationID(operationID).
		SetPhase(phase).
		SetDetail(detail).
		SetTerminal(terminal).
		SetSuccess(success).
		Save(ctx)
	if err != nil {
		logger.Warn("Failed to write operation status",
			zap.String("operation_id", operationID),
			zap.String("phase", phase),
			zap.Error(err),
		)
	}
}

// History returns the status feed of one operation, oldest first.
func (s *OperationStatusService) History(ctx context.Context, operationID string) ([]*ent.OperationStatus, error) {
	rows, err := s.client.OperationStatus.Query().
		Where(operationstatus.OperationIDEQ(operationID)).
		Order(ent.Asc(operationstatus.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query operation status %s: %w", operationID, err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NotFound(apperrors.CodeOperationNotFound,
			fmt.Sprintf("operation %s not found", operationID))
	}
	return rows, nil
}

func generateStatusID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
