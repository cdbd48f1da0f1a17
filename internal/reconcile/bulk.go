package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/pkg/metrics"
)

// GrantToAll grants a capability to every active user in an organization.
// Each user is an independent work item: one user's failure never aborts
// the others. The operation reports success when the processed ratio meets
// the policy threshold.
func (e *Engine) GrantToAll(ctx context.Context, operationID, orgID, capabilityID, actor string) (*BulkResult, error) {
	capability, err := e.registry.GetByID(ctx, capabilityID)
	if err != nil {
		return nil, err
	}
	if capability.GroupID == "" {
		return nil, apperrors.Conflict(apperrors.CodeCapabilityUnmapped,
			fmt.Sprintf("capability %s has no group mapping", capabilityID))
	}

	userIDs, err := e.users.ActiveUserIDs(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list organization users: %w", err)
	}
	e.progress(ctx, operationID, "started", fmt.Sprintf("granting %s to %d users", capabilityID, len(userIDs)))

	result := e.forEachUser(ctx, operationID, userIDs, func(ctx context.Context, userID string) error {
		rows, err := e.ledger.ActiveByUser(ctx, orgID, userID)
		if err != nil {
			return err
		}
		desired := make([]string, 0, len(rows)+1)
		for _, row := range rows {
			desired = append(desired, row.AgentTypeID)
		}
		desired = append(desired, capabilityID)
		res, err := e.ReconcileUser(ctx, orgID, userID, actor, desired)
		if err != nil {
			return err
		}
		if !res.Succeeded() {
			return fmt.Errorf("grant failed: %s", res.Failures[0].Reason)
		}
		return nil
	})
	result.Threshold = e.policy.BulkSuccessThreshold

	e.finishBulk(ctx, operationID, "grant_all", result)
	return result, nil
}

// RevokeFromAll revokes a capability from every user holding it in an
// organization. Directory removal is best-effort; ledger rows are always
// deactivated.
func (e *Engine) RevokeFromAll(ctx context.Context, operationID, orgID, capabilityID, actor string) (*BulkResult, error) {
	result, err := e.revokeWithinOrg(ctx, operationID, orgID, capabilityID, actor)
	if err != nil {
		return nil, err
	}
	e.finishBulk(ctx, operationID, "revoke_all", result)
	return result, nil
}

// RevokeEverywhere revokes a capability from every organization that
// references it. This is the disablement cascade: it runs when a
// capability is switched off, not as a direct admin call.
func (e *Engine) RevokeEverywhere(ctx context.Context, operationID, capabilityID, actor string) (*BulkResult, error) {
	orgIDs, err := e.ledger.OrganizationsWithCapability(ctx, capabilityID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	sort.Strings(orgIDs)
	e.progress(ctx, operationID, "started",
		fmt.Sprintf("revoking %s across %d organizations", capabilityID, len(orgIDs)))

	total := &BulkResult{Threshold: e.policy.BulkSuccessThreshold}
	for _, orgID := range orgIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		orgResult, err := e.revokeWithinOrg(ctx, operationID, orgID, capabilityID, actor)
		if err != nil {
			return nil, err
		}
		total.merge(orgResult)
		e.progress(ctx, operationID, "organization_processed",
			fmt.Sprintf("org %s: %d/%d users", orgID, orgResult.Succeeded, orgResult.Total))
	}

	e.finishBulk(ctx, operationID, "revoke_all", total)
	return total, nil
}

func (e *Engine) revokeWithinOrg(ctx context.Context, operationID, orgID, capabilityID, actor string) (*BulkResult, error) {
	rows, err := e.ledger.ActiveByCapability(ctx, orgID, capabilityID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	userIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		userIDs = append(userIDs, row.UserID)
	}

	result := e.forEachUser(ctx, operationID, userIDs, func(ctx context.Context, userID string) error {
		rows, err := e.ledger.ActiveByUser(ctx, orgID, userID)
		if err != nil {
			return err
		}
		desired := make([]string, 0, len(rows))
		for _, row := range rows {
			if row.AgentTypeID == capabilityID {
				continue
			}
			desired = append(desired, row.AgentTypeID)
		}
		// Remove failures do not fail the user: the row is deactivated
		// either way, which is the security-relevant outcome.
		_, err = e.ReconcileUser(ctx, orgID, userID, actor, desired)
		return err
	})
	result.Threshold = e.policy.BulkSuccessThreshold
	return result, nil
}

// forEachUser fans userIDs out over a bounded worker pool and tallies the
// outcomes. Cancellation is cooperative: once the context is done no new
// users are submitted, already-running users finish, and the remainder is
// recorded as failed.
func (e *Engine) forEachUser(ctx context.Context, operationID string, userIDs []string, fn func(ctx context.Context, userID string) error) *BulkResult {
	result := &BulkResult{Total: len(userIDs)}
	if len(userIDs) == 0 {
		return result
	}

	submit, release := e.bulkSubmitter()
	defer release()

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i, userID := range userIDs {
		if ctx.Err() != nil {
			mu.Lock()
			for _, remaining := range userIDs[i:] {
				result.Failures = append(result.Failures, UserFailure{UserID: remaining, Reason: "operation cancelled"})
			}
			mu.Unlock()
			break
		}
		uid := userID
		wg.Add(1)
		submitErr := submit(func() {
			defer wg.Done()
			e.runUser(ctx, result, &mu, uid, fn)
			e.progress(ctx, operationID, "user_processed", uid)
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			result.Failures = append(result.Failures, UserFailure{UserID: uid, Reason: submitErr.Error()})
			mu.Unlock()
		}
	}
	wg.Wait()
	return result
}

// bulkSubmitter returns the task submission function for one bulk fan-out.
// With a shared worker pool configured, fan-out is bounded by that pool's
// capacity and contends with every other bulk operation on it; otherwise a
// throwaway pool sized by UserConcurrency is created per call.
//
// Shared-pool tasks are submitted under a background context: the pool
// skips tasks whose context is already cancelled, which would leak the
// caller's completion bookkeeping. Cancellation of the operation itself is
// observed by the per-user function through the operation context.
func (e *Engine) bulkSubmitter() (submit func(task func()) error, release func()) {
	if e.pool != nil {
		return func(task func()) error {
			return e.pool.Submit(context.Background(), func(context.Context) { task() })
		}, func() {}
	}
	pool, err := ants.NewPool(e.policy.UserConcurrency)
	if err != nil {
		// Invalid pool size: degrade to sequential processing.
		return func(task func()) error {
			task()
			return nil
		}, func() {}
	}
	return pool.Submit, pool.Release
}

func (e *Engine) runUser(ctx context.Context, result *BulkResult, mu *sync.Mutex, userID string, fn func(ctx context.Context, userID string) error) {
	err := fn(ctx, userID)
	mu.Lock()
	defer mu.Unlock()
	if err != nil {
		result.Failures = append(result.Failures, UserFailure{UserID: userID, Reason: err.Error()})
		metrics.BulkUserFailures.Inc()
		return
	}
	result.Succeeded++
}

func (e *Engine) finishBulk(ctx context.Context, operationID, kind string, result *BulkResult) {
	outcome := "ok"
	if !result.Success() {
		outcome = "failed"
	}
	metrics.BulkOperations.WithLabelValues(kind, outcome).Inc()
	e.done(ctx, operationID, result.Success(), result.Summary())
	logger.Info("Bulk operation finished",
		zap.String("operation_id", operationID),
		zap.String("kind", kind),
		zap.Int("total", result.Total),
		zap.Int("succeeded", result.Succeeded),
		zap.Bool("success", result.Success()),
	)
}

func (e *Engine) progress(ctx context.Context, operationID, phase, detail string) {
	if e.status == nil || operationID == "" {
		return
	}
	e.status.Progress(ctx, operationID, phase, detail)
}

func (e *Engine) done(ctx context.Context, operationID string, success bool, detail string) {
	if e.status == nil || operationID == "" {
		return
	}
	e.status.Done(ctx, operationID, success, detail)
}
