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

// CapabilityGrantAllArgs carries the EventID of an organization-wide grant.
type CapabilityGrantAllArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for organization-wide grants.
func (CapabilityGrantAllArgs) Kind() string { return "capability_grant_all" }

// InsertOpts returns default insert options for grant-all jobs.
func (CapabilityGrantAllArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "reconciliation",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// CapabilityGrantAllWorker grants a capability to every active user in an
// organization.
type CapabilityGrantAllWorker struct {
	river.WorkerDefaults[CapabilityGrantAllArgs]
	entClient *ent.Client
	engine    *reconcile.Engine
}

// NewCapabilityGrantAllWorker creates a new CapabilityGrantAllWorker.
func NewCapabilityGrantAllWorker(entClient *ent.Client, engine *reconcile.Engine) *CapabilityGrantAllWorker {
	return &CapabilityGrantAllWorker{entClient: entClient, engine: engine}
}

// Work executes the organization-wide grant.
func (w *CapabilityGrantAllWorker) Work(ctx context.Context, job *river.Job[CapabilityGrantAllArgs]) error {
	eventID := job.Args.EventID
	logger.Info("Processing grant-all job",
		zap.String("event_id", eventID),
		zap.Int64("attempt", int64(job.Attempt)),
	)

	event, err := w.entClient.DomainEvent.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("fetch domain event %s: %w", eventID, err)
	}
	setEventStatus(ctx, w.entClient, eventID, domainevent.StatusPROCESSING)

	var payload domain.GrantAllPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return river.JobCancel(fmt.Errorf("unmarshal grant-all payload for event %s: %w", eventID, err))
	}

	result, err := w.engine.GrantToAll(ctx, payload.OperationID,
		payload.OrganizationID, payload.AgentTypeID, payload.Actor)
	if err != nil {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return fmt.Errorf("grant-all for event %s: %w", eventID, err)
	}
	if !result.Success() {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return fmt.Errorf("grant-all for event %s below threshold: %s", eventID, result.Summary())
	}

	setEventStatus(ctx, w.entClient, eventID, domainevent.StatusCOMPLETED)
	logger.Info("Grant-all job completed",
		zap.String("event_id", eventID),
		zap.Int("users", result.Total),
		zap.Int("succeeded", result.Succeeded),
	)
	return nil
}
