package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/organization"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/pkg/metrics"
	"dir-steward.io/steward/internal/reconcile"
	"dir-steward.io/steward/internal/service"
)

// DriftSweepArgs is a periodic job that runs a drift repair pass over
// every active user of every active organization.
type DriftSweepArgs struct{}

// Kind returns the job kind identifier for periodic drift sweeps.
func (DriftSweepArgs) Kind() string { return "drift_sweep" }

// InsertOpts ensures at most one sweep is enqueued per period.
func (DriftSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       "reconciliation",
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// DriftSweepWorker walks the fleet and repairs drift user by user. Per-user
// failures are counted, logged and skipped; the sweep only fails when it
// cannot even enumerate its work.
type DriftSweepWorker struct {
	river.WorkerDefaults[DriftSweepArgs]
	entClient *ent.Client
	userSvc   *service.UserService
	engine    *reconcile.Engine
}

// NewDriftSweepWorker creates a new DriftSweepWorker.
func NewDriftSweepWorker(entClient *ent.Client, userSvc *service.UserService, engine *reconcile.Engine) *DriftSweepWorker {
	return &DriftSweepWorker{entClient: entClient, userSvc: userSvc, engine: engine}
}

// Work executes one fleet-wide drift sweep.
func (w *DriftSweepWorker) Work(ctx context.Context, job *river.Job[DriftSweepArgs]) error {
	if w == nil || w.entClient == nil || w.engine == nil {
		return fmt.Errorf("drift sweep worker is not initialized")
	}
	start := time.Now()

	orgIDs, err := w.entClient.Organization.Query().
		Where(organization.ActiveEQ(true)).
		Order(ent.Asc(organization.FieldID)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("list organizations for drift sweep: %w", err)
	}

	var users, repaired, failed int
	for _, orgID := range orgIDs {
		userIDs, err := w.userSvc.ActiveUserIDs(ctx, orgID)
		if err != nil {
			logger.Warn("drift sweep cannot list users, skipping organization",
				zap.String("organization_id", orgID),
				zap.Error(err),
			)
			failed++
			continue
		}
		for _, userID := range userIDs {
			if err := ctx.Err(); err != nil {
				return err
			}
			users++
			result, err := w.engine.RepairUser(ctx, orgID, userID, "drift_sweep")
			if err != nil {
				failed++
				logger.Warn("drift sweep failed for user",
					zap.String("organization_id", orgID),
					zap.String("user_id", userID),
					zap.Error(err),
				)
				continue
			}
			repaired += result.Repaired
			failed += len(result.Failures)
		}
	}

	outcome := "ok"
	if failed > 0 {
		outcome = "partial"
	}
	metrics.BulkOperations.WithLabelValues("drift_sweep", outcome).Inc()
	logger.Info("drift sweep completed",
		zap.Int("organizations", len(orgIDs)),
		zap.Int("users", users),
		zap.Int("repaired", repaired),
		zap.Int("failures", failed),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("attempt", job.Attempt),
	)
	return nil
}
