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

// MappingChangeArgs carries the EventID of a capability mapping change.
type MappingChangeArgs struct {
	EventID string `json:"event_id"`
}

// Kind returns the job kind identifier for mapping change propagation.
func (MappingChangeArgs) Kind() string { return "capability_mapping_change" }

// InsertOpts returns default insert options for mapping change jobs.
func (MappingChangeArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "reconciliation",
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByQueue: true,
		},
	}
}

// MappingChangeWorker migrates every holder of a capability from its old
// directory group to the new one. Safe to retry: the migration is
// idempotent per user.
type MappingChangeWorker struct {
	river.WorkerDefaults[MappingChangeArgs]
	entClient *ent.Client
	engine    *reconcile.Engine
}

// NewMappingChangeWorker creates a new MappingChangeWorker.
func NewMappingChangeWorker(entClient *ent.Client, engine *reconcile.Engine) *MappingChangeWorker {
	return &MappingChangeWorker{entClient: entClient, engine: engine}
}

// Work executes the mapping change propagation.
func (w *MappingChangeWorker) Work(ctx context.Context, job *river.Job[MappingChangeArgs]) error {
	eventID := job.Args.EventID
	logger.Info("Processing mapping change job",
		zap.String("event_id", eventID),
		zap.Int64("attempt", int64(job.Attempt)),
	)

	event, err := w.entClient.DomainEvent.Get(ctx, eventID)
	if err != nil {
		return fmt.Errorf("fetch domain event %s: %w", eventID, err)
	}
	setEventStatus(ctx, w.entClient, eventID, domainevent.StatusPROCESSING)

	var payload domain.MappingChangePayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return river.JobCancel(fmt.Errorf("unmarshal mapping change payload for event %s: %w", eventID, err))
	}

	result, err := w.engine.PropagateMappingChange(ctx, payload.OperationID,
		payload.AgentTypeID, payload.OldGroupID, payload.NewGroupID, payload.Actor)
	if err != nil {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return fmt.Errorf("propagate mapping change for event %s: %w", eventID, err)
	}
	if !result.Success() {
		setEventStatus(ctx, w.entClient, eventID, domainevent.StatusFAILED)
		return fmt.Errorf("mapping change for event %s below threshold: %s", eventID, result.Summary())
	}

	setEventStatus(ctx, w.entClient, eventID, domainevent.StatusCOMPLETED)
	logger.Info("Mapping change job completed",
		zap.String("event_id", eventID),
		zap.Int("users", result.Total),
	)
	return nil
}
