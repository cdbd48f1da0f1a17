// Package audit implements the audit logging service.
//
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/internal/pkg/logger"
)

// Logger writes audit records to the database.
type Logger struct {
	client *ent.Client
}

// NewLogger creates a new audit Logger.
func NewLogger(client *ent.Client) *Logger {
	return &Logger{client: client}
}

// LogAction records an auditable action.
func (l *Logger) LogAction(ctx context.Context, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	_, err := l.client.AuditLog.Create().
		SetID(generateAuditID()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor).
		SetDetails(details).
		Save(ctx)
	if err != nil {
		logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

// LogReconcile records the outcome of a per-user reconciliation pass.
func (l *Logger) LogReconcile(ctx context.Context, userID, actor string, added, removed, failed int) error {
	return l.LogAction(ctx, "membership.reconcile", "user", userID, actor, map[string]interface{}{
		"added":   added,
		"removed": removed,
		"failed":  failed,
	})
}

// LogDriftRepair records a drift repair and which side won.
func (l *Logger) LogDriftRepair(ctx context.Context, userID, actor, winner string, repaired int) error {
	return l.LogAction(ctx, "membership.drift_repair", "user", userID, actor, map[string]interface{}{
		"winner":   winner,
		"repaired": repaired,
	})
}

// LogCapabilityChange records an administrative change to a capability.
func (l *Logger) LogCapabilityChange(ctx context.Context, operation, agentTypeID, actor string, details map[string]interface{}) error {
	return l.LogAction(ctx, "capability."+operation, "agent_type", agentTypeID, actor, details)
}

func generateAuditID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return fmt.Sprintf("audit-%s", id.String())
}
