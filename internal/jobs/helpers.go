// Package jobs defines River Queue job types for async propagation.
//
// Jobs carry only an EventID (claim-check): the full payload lives on the
// persisted domain event, so a job row stays small and the event row is
// the audit trail of what was requested.
package jobs

import (
	"context"

	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/domainevent"
	"dir-steward.io/steward/internal/pkg/logger"
)

// setEventStatus updates a domain event's status. Best-effort: failures
// are logged but never propagated, the event status is an observational
// concern.
func setEventStatus(ctx context.Context, client *ent.Client, eventID string, status domainevent.Status) {
	if client == nil || eventID == "" {
		return
	}
	if _, err := client.DomainEvent.UpdateOneID(eventID).
		SetStatus(status).
		Save(ctx); err != nil {
		logger.Warn("failed to update domain event status",
			zap.String("event_id", eventID),
			zap.String("status", status.String()),
			zap.Error(err),
		)
	}
}
