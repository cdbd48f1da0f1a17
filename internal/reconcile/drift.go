package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "dir-steward.io/steward/internal/pkg/errors"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/pkg/metrics"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/store"
)

// RepairUser detects and repairs drift between the user's ledger rows and
// the directory. Four states per capability:
//
//	active row, member      -> converged, nothing to do
//	active row, not member  -> add membership (directory repaired to intent)
//	no row, member          -> policy decides: reactivate the row so the
//	                           access is documented (directory wins), or
//	                           strip the membership (ledger wins)
//	no row, not member      -> converged, nothing to do
//
// Repair also corrects stale group ids: the capability's current mapping
// is authoritative, so a row pointing at an old group is migrated.
// The pass is idempotent: a converged user yields zero mutations.
func (e *Engine) RepairUser(ctx context.Context, orgID, userID, actor string) (*UserResult, error) {
	if orgID == "" || userID == "" {
		return nil, apperrors.Validation(apperrors.CodeValidationFailed, "organization and user ids are required")
	}

	rows, err := e.ledger.ActiveByUser(ctx, orgID, userID)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	// Unlike a reconcile pass, repair cannot proceed blind: the snapshot is
	// the ground truth drift is measured against.
	groups, err := e.directory.ListMemberships(ctx, userID)
	if err != nil {
		return nil, apperrors.Unavailable(apperrors.CodeDirectoryUnavailable,
			fmt.Sprintf("cannot snapshot memberships for drift detection: %v", err))
	}
	memberships := toSet(groups)

	capIDs := make([]string, 0, len(rows))
	for _, row := range rows {
		capIDs = append(capIDs, row.AgentTypeID)
	}
	caps, err := e.registry.GetByIDs(ctx, capIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve capabilities: %w", err)
	}

	result := &UserResult{UserID: userID}
	var changes []store.RowChange
	heldGroups := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		capability, ok := caps[row.AgentTypeID]
		if !ok {
			result.fail(row.AgentTypeID, "capability not found")
			continue
		}
		if capability.GroupID == "" {
			result.fail(row.AgentTypeID, "capability has no group mapping")
			continue
		}
		heldGroups[capability.GroupID] = struct{}{}

		if capability.GroupID != row.GroupID {
			if change := e.repairStaleGroup(ctx, userID, row, capability, memberships, result); change != nil {
				changes = append(changes, *change)
			}
			continue
		}
		if _, member := memberships[capability.GroupID]; member {
			continue // converged
		}
		// Active row without membership: repair the directory to intent.
		added, err := e.directory.AddMembership(ctx, userID, capability.GroupID)
		if err != nil {
			result.fail(row.AgentTypeID, fmt.Sprintf("directory add failed: %v", err))
			continue
		}
		if added {
			result.Repaired++
			metrics.DriftRepairs.WithLabelValues(DriftWinnerDirectory).Inc()
		} else {
			result.fail(row.AgentTypeID, "group missing from directory")
		}
	}

	// Memberships with no backing row. Only groups that map to a known
	// active capability are considered; foreign groups are none of our
	// business.
	orphans, err := e.orphanedMemberships(ctx, memberships, heldGroups)
	if err != nil {
		return nil, err
	}
	for _, capability := range orphans {
		logger.Warn("Sync anomaly: directory membership without ledger row",
			zap.String("user_id", userID),
			zap.String("capability_id", capability.ID),
			zap.String("group_id", capability.GroupID),
			zap.String("winner", e.policy.DriftWinner),
		)
		if e.policy.DriftWinner == DriftWinnerLedger {
			removed, err := e.directory.RemoveMembership(ctx, userID, capability.GroupID)
			if err != nil || !removed {
				result.fail(capability.ID, "failed to strip undocumented membership")
				continue
			}
			result.Repaired++
			metrics.DriftRepairs.WithLabelValues(DriftWinnerLedger).Inc()
			continue
		}
		changes = append(changes, store.RowChange{
			Kind:        store.ChangeUpsert,
			AgentTypeID: capability.ID,
			GroupID:     capability.GroupID,
			AssignedBy:  actor,
		})
		result.Repaired++
		metrics.DriftRepairs.WithLabelValues(DriftWinnerDirectory).Inc()
	}

	if err := e.ledger.ApplyUserChanges(ctx, orgID, userID, changes); err != nil {
		return nil, fmt.Errorf("commit ledger changes: %w", err)
	}

	if e.audit != nil && result.Repaired > 0 {
		_ = e.audit.LogDriftRepair(ctx, userID, actor, e.policy.DriftWinner, result.Repaired)
	}
	return result, nil
}

// repairStaleGroup migrates one row from its stored group to the
// capability's current mapping: best-effort removal from the old group,
// ensure membership in the new one, update the row.
func (e *Engine) repairStaleGroup(ctx context.Context, userID string, row store.Assignment, capability service.Capability, memberships map[string]struct{}, result *UserResult) *store.RowChange {
	if row.GroupID != "" {
		if _, member := memberships[row.GroupID]; member {
			if _, err := e.directory.RemoveMembership(ctx, userID, row.GroupID); err != nil {
				logger.Warn("Failed to remove stale group membership",
					zap.String("user_id", userID),
					zap.String("group_id", row.GroupID),
					zap.Error(err),
				)
			}
		}
	}
	if _, member := memberships[capability.GroupID]; !member {
		added, err := e.directory.AddMembership(ctx, userID, capability.GroupID)
		if err != nil {
			result.fail(row.AgentTypeID, fmt.Sprintf("directory add failed: %v", err))
			// The row is still retargeted: the current mapping is
			// authoritative and a later pass finishes the directory side.
		} else if !added {
			result.fail(row.AgentTypeID, "group missing from directory")
		}
	}
	result.Repaired++
	metrics.DriftRepairs.WithLabelValues(DriftWinnerDirectory).Inc()
	return &store.RowChange{
		Kind:        store.ChangeSetGroup,
		AgentTypeID: row.AgentTypeID,
		GroupID:     capability.GroupID,
	}
}

// orphanedMemberships maps directory memberships that belong to an active
// capability but have no active ledger row for this user.
func (e *Engine) orphanedMemberships(ctx context.Context, memberships, heldGroups map[string]struct{}) ([]service.Capability, error) {
	if len(memberships) == 0 {
		return nil, nil
	}
	active, err := e.registry.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list capabilities: %w", err)
	}
	var orphans []service.Capability
	for _, capability := range active {
		if capability.GroupID == "" {
			continue
		}
		if _, held := heldGroups[capability.GroupID]; held {
			continue
		}
		if _, member := memberships[capability.GroupID]; member {
			orphans = append(orphans, capability)
		}
	}
	return orphans, nil
}
