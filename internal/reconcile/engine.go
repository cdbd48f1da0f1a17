package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"dir-steward.io/steward/internal/directory"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/pkg/metrics"
	"dir-steward.io/steward/internal/pkg/worker"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/store"
)

// Registry resolves capabilities to their current directory group mapping.
type Registry interface {
	GetByID(ctx context.Context, id string) (service.Capability, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]service.Capability, error)
	ListActive(ctx context.Context) ([]service.Capability, error)
}

// Users enumerates the members of an organization for bulk operations.
type Users interface {
	ActiveUserIDs(ctx context.Context, orgID string) ([]string, error)
}

// StatusReporter receives fire-and-forget progress for long operations.
// Engine correctness never depends on it.
type StatusReporter interface {
	Progress(ctx context.Context, operationID, phase, detail string)
	Done(ctx context.Context, operationID string, success bool, detail string)
}

// Auditor records reconciliation outcomes in the audit trail.
type Auditor interface {
	LogReconcile(ctx context.Context, userID, actor string, added, removed, failed int) error
	LogDriftRepair(ctx context.Context, userID, actor, winner string, repaired int) error
}

// Engine is the membership reconciliation engine. It is safe for
// concurrent use; note that concurrent passes for the same user are
// last-writer-wins on the ledger (callers wanting stronger guarantees
// should serialize per user).
type Engine struct {
	ledger    store.AssignmentStore
	directory directory.Client
	registry  Registry
	users     Users
	status    StatusReporter
	audit     Auditor
	pool      *worker.Pool
	policy    Policy
}

// NewEngine creates a new Engine.
func NewEngine(ledger store.AssignmentStore, dir directory.Client, registry Registry, users Users, policy Policy) *Engine {
	return &Engine{
		ledger:    ledger,
		directory: dir,
		registry:  registry,
		users:     users,
		policy:    policy,
	}
}

// WithStatusReporter sets the status sink (optional dependency).
func (e *Engine) WithStatusReporter(s StatusReporter) *Engine {
	e.status = s
	return e
}

// WithAuditLogger sets the audit logger (optional dependency).
func (e *Engine) WithAuditLogger(a Auditor) *Engine {
	e.audit = a
	return e
}

// WithWorkerPool routes bulk fan-out through a shared worker pool instead
// of a per-operation pool, bounding directory concurrency service-wide.
func (e *Engine) WithWorkerPool(p *worker.Pool) *Engine {
	e.pool = p
	return e
}

// ReconcileUser converges one user's ledger rows and directory memberships
// to the given desired capability set. The desired set is authoritative:
// capabilities outside it are revoked, capabilities inside it are granted,
// capabilities in both stay untouched.
//
// Failure asymmetry: a failed directory add still records the grant intent
// (the row is upserted so a later repair can finish the job), while a
// failed directory remove still deactivates the row (the ledger must never
// claim a grant the system no longer intends).
func (e *Engine) ReconcileUser(ctx context.Context, orgID, userID, actor string, desired []string) (*UserResult, error) {
	if orgID == "" || userID == "" {
		return nil, apperrors.Validation(apperrors.CodeValidationFailed, "organization and user ids are required")
	}
	if e.policy.RequireNonEmptyDesired && len(desired) == 0 {
		return nil, apperrors.Validation(apperrors.CodeValidationFailed, "desired capability set must not be empty")
	}

	rows, err := e.ledger.ActiveByUser(ctx, orgID, userID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	current := make(map[string]store.Assignment, len(rows))
	currentIDs := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		current[row.AgentTypeID] = row
		currentIDs[row.AgentTypeID] = struct{}{}
	}

	toAdd, toRemove := diffSets(desired, currentIDs)
	result := &UserResult{UserID: userID}
	if len(toAdd) == 0 && len(toRemove) == 0 {
		metrics.ReconcilePasses.WithLabelValues("noop").Inc()
		return result, nil
	}

	caps, err := e.registry.GetByIDs(ctx, toAdd)
	if err != nil {
		return nil, fmt.Errorf("resolve capabilities: %w", err)
	}
	memberships, membershipsKnown := e.snapshotMemberships(ctx, userID)

	var changes []store.RowChange
	for _, capID := range toAdd {
		change := e.planAdd(ctx, userID, actor, capID, caps, memberships, membershipsKnown, result)
		if change != nil {
			changes = append(changes, *change)
		}
	}
	for _, capID := range toRemove {
		change := e.planRemove(ctx, userID, actor, current[capID], memberships, membershipsKnown, result)
		if change != nil {
			changes = append(changes, *change)
		}
	}

	if err := e.ledger.ApplyUserChanges(ctx, orgID, userID, changes); err != nil {
		metrics.ReconcilePasses.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("commit ledger changes: %w", err)
	}

	e.recordPass(ctx, userID, actor, result)
	return result, nil
}

// planAdd works out the directory mutation and ledger change for one
// capability being granted. A nil return means no ledger change.
func (e *Engine) planAdd(ctx context.Context, userID, actor, capID string, caps map[string]service.Capability, memberships map[string]struct{}, membershipsKnown bool, result *UserResult) *store.RowChange {
	capability, ok := caps[capID]
	if !ok {
		result.fail(capID, "capability not found")
		return nil
	}
	if capability.GroupID == "" {
		result.fail(capID, "capability has no group mapping")
		return nil
	}

	upsert := &store.RowChange{
		Kind:        store.ChangeUpsert,
		AgentTypeID: capID,
		GroupID:     capability.GroupID,
		AssignedBy:  actor,
	}

	exists, err := e.directory.GroupExists(ctx, capability.GroupID)
	if err != nil {
		// Transient: the grant intent is still recorded for later repair.
		result.fail(capID, fmt.Sprintf("group existence check failed: %v", err))
		return upsert
	}
	if !exists {
		// Missing group: record the intent, skip the directory mutation.
		// Repair completes the grant once the group is recreated.
		logger.Warn("Granting capability whose group is missing from the directory",
			zap.String("user_id", userID),
			zap.String("capability_id", capID),
			zap.String("group_id", capability.GroupID),
		)
		result.Added++
		return upsert
	}

	if membershipsKnown {
		if _, member := memberships[capability.GroupID]; member {
			result.Added++
			return upsert
		}
	}
	added, err := e.directory.AddMembership(ctx, userID, capability.GroupID)
	if err != nil {
		result.fail(capID, fmt.Sprintf("directory add failed: %v", err))
		return upsert
	}
	if !added {
		// The group vanished between the existence check and the mutation.
		// Same treatment as the missing-group branch above.
		logger.Warn("Group disappeared during grant",
			zap.String("user_id", userID),
			zap.String("group_id", capability.GroupID),
		)
	}
	result.Added++
	return upsert
}

// planRemove works out the directory mutation and ledger change for one
// capability being revoked. The row is always deactivated.
func (e *Engine) planRemove(ctx context.Context, userID, actor string, row store.Assignment, memberships map[string]struct{}, membershipsKnown bool, result *UserResult) *store.RowChange {
	deactivate := &store.RowChange{
		Kind:        store.ChangeDeactivate,
		AgentTypeID: row.AgentTypeID,
		AssignedBy:  actor,
	}
	if row.GroupID == "" {
		result.Removed++
		return deactivate
	}

	exists, err := e.directory.GroupExists(ctx, row.GroupID)
	if err == nil && !exists {
		// Group already gone: the removal is vacuously done.
		result.Removed++
		return deactivate
	}
	if membershipsKnown {
		if _, member := memberships[row.GroupID]; !member {
			result.Removed++
			return deactivate
		}
	}
	removed, err := e.directory.RemoveMembership(ctx, userID, row.GroupID)
	if err != nil || !removed {
		reason := "directory remove failed"
		if err != nil {
			reason = fmt.Sprintf("directory remove failed: %v", err)
		}
		result.fail(row.AgentTypeID, reason)
		logger.Warn("Deactivating assignment despite failed directory removal",
			zap.String("user_id", userID),
			zap.String("capability_id", row.AgentTypeID),
			zap.String("group_id", row.GroupID),
		)
		return deactivate
	}
	result.Removed++
	return deactivate
}

// snapshotMemberships reads the user's directory memberships once per
// pass. When the snapshot cannot be taken the pass proceeds without it:
// add and remove are idempotent, so mutating blind is safe, just noisier.
func (e *Engine) snapshotMemberships(ctx context.Context, userID string) (map[string]struct{}, bool) {
	groups, err := e.directory.ListMemberships(ctx, userID)
	if err != nil {
		logger.Warn("Failed to snapshot directory memberships",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, false
	}
	return toSet(groups), true
}

func (e *Engine) recordPass(ctx context.Context, userID, actor string, result *UserResult) {
	outcome := "ok"
	switch {
	case len(result.Failures) > 0 && result.Added+result.Removed+result.Repaired > 0:
		outcome = "partial"
	case len(result.Failures) > 0:
		outcome = "failed"
	}
	metrics.ReconcilePasses.WithLabelValues(outcome).Inc()

	if e.audit != nil {
		_ = e.audit.LogReconcile(ctx, userID, actor, result.Added, result.Removed, len(result.Failures))
	}
	logger.Info("Reconciliation pass completed",
		zap.String("user_id", userID),
		zap.Int("added", result.Added),
		zap.Int("removed", result.Removed),
		zap.Int("failed", len(result.Failures)),
		zap.String("outcome", outcome),
	)
}
