package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/domainevent"
	"dir-steward.io/steward/internal/domain"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/reconcile"
)

// CapabilityRevokeAllArgs carries the EventID of a bulk revoke. The
// payload decides the scope: one organization, or every organization when
// the capability was disabled.
type CapabilityRevokeAllArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for bulk revokes.
func (CapabilityRevokeAllArgs) Kind() string { return "capability_revoke_all" }

// InsertOpts returns default insert options for revoke-all jobs.
func (CapabilityRevokeAllArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "reconciliation",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// CapabilityRevokeAllWorker revokes a capability from every holder, within
// one organization or globally (the disablement cascade).
type CapabilityRevokeAllWorker struct {
	river.WorkerDefaults[CapabilityRevokeAllArgs]
	entClient *ent.Client
	engine    *reconcile.Engine
}

// NewCapabilityRevokeAllWorker creates a new CapabilityRevokeAllWorker.
func NewCapabilityRevokeAllWorker(entClient *ent.Client, engine *reconcile.Engine) *CapabilityRevokeAllWorker {
	return &CapabilityRevokeAllWorker{entClient: entClient, engine: engine}
}

// Work executes the bulk revoke.
func (w *CapabilityRevokeAllWorker) Work(ctx context.Context, job *river.Job[CapabilityRevokeAllArgs]) error {
	eventID := job.Args.EventID
	logger.Info("Processing revoke-all job",
		zap.String("event_id", eventID),
		zap.Int64("attempt", int64(job.Attempt)),
	)

	event, err := w.entClient.DomainEvent.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("fetch domain event %s: %w", eventID, err)
	}
	setEventStatus(ctx, w.entClient, eventID, domainevent.StatusPROCESSING)

	var payload domain.RevokeAllPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return river.JobCancel(fmt.Errorf("unmarshal revoke-all payload for event %s: %w", eventID, err))
	}

	var result *reconcile.BulkResult
	if payload.OrganizationID == "" {
		result, err = w.engine.RevokeEverywhere(ctx, payload.OperationID, payload.AgentTypeID, payload.Actor)
	} else {
		result, err = w.engine.RevokeFromAll(ctx, payload.OperationID, payload.OrganizationID, payload.AgentTypeID, payload.Actor)
	}
	if err != nil {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return fmt.Errorf("revoke-all for event %s: %w", eventID, err)
	}
	if !result.Success() {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return fmt.Errorf("revoke-all for event %s below threshold: %s", eventID, result.Summary())
	}

	setEventStatus(ctx, w.entClient, eventID, domainevent.StatusCOMPLETED)
	logger.Info("Revoke-all job completed",
		zap.String("event_id", eventID),
		zap.Int("users", result.Total),
		zap.Int("succeeded", result.Succeeded),
	)
	return nil
}
