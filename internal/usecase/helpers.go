// Package usecase provides application use cases.
//
// Use cases own the write path: they validate input, commit ledger and
// event rows, and enqueue the River job that performs the propagation
// asynchronously. They are reusable across HTTP and CLI surfaces.
package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/domainevent"
	"dir-steward.io/steward/internal/domain"
	"dir-steward.io/steward/internal/pkg/logger"
)

// createEvent persists a PENDING domain event and returns its id.
func createEvent(ctx context.Context, client *ent.Client, eventType domain.EventType, aggregateID string, payload []byte, actor string) (string, error) {
	var eventID string
	txErr := withTx(ctx, client, func(tx *ent.Tx) error {
		event, err := tx.DomainEvent.Create().
			SetID(generateID()).
			SetEventType(string(eventType)).
			SetAggregateType("agent_type").
			SetAggregateID(aggregateID).
			SetPayload(payload).
			SetCreatedBy(actor).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create domain event: %w", err)
		}
		eventID = event.ID
		return nil
	})
	if txErr != nil {
		return "", txErr
	}
	return eventID, nil
}

// enqueue inserts the River job for an already-persisted event. On enqueue
// failure the event is marked FAILED so it surfaces in operational review
// instead of lingering as PENDING forever.
func enqueue(ctx context.Context, client *ent.Client, riverClient *river.Client[pgx.Tx], eventID string, args river.JobArgs) error {
	if _, err := riverClient.Insert(ctx, args, nil); err != nil {
		if _, saveErr := client.DomainEvent.UpdateOneID(eventID).
			SetStatus(domainevent.StatusFAILED).
			Save(ctx); saveErr != nil {
			logger.Error("Failed to mark event FAILED after enqueue failure",
				zap.String("event_id", eventID),
				zap.Error(saveErr),
			)
		}
		return fmt.Errorf("enqueue %s for event %s: %w", args.Kind(), eventID, err)
	}
	return nil
}

// withTx executes a function within a transaction.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// generateID generates a unique UUID v7 (time-ordered, K-sortable).
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
