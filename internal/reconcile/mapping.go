package reconcile

import (
	"context"
	"fmt"
	"sort"

	"dir-steward.io/steward/internal/store"
)

// PropagateMappingChange migrates every user of a capability from its old
// directory group to its new one, across every organization that
// references the capability. An empty oldGroupID means the mapping was
// just added; an empty newGroupID means it was removed, in which case the
// rows keep recording the grant intent with no group until a new mapping
// arrives.
func (e *Engine) PropagateMappingChange(ctx context.Context, operationID, capabilityID, oldGroupID, newGroupID, actor string) (*BulkResult, error) {
	orgIDs, err := e.ledger.OrganizationsWithCapability(ctx, capabilityID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	sort.Strings(orgIDs)
	e.progress(ctx, operationID, "started",
		fmt.Sprintf("migrating %s from group %q to %q across %d organizations", capabilityID, oldGroupID, newGroupID, len(orgIDs)))

	total := &BulkResult{Threshold: e.policy.BulkSuccessThreshold}
	for _, orgID := range orgIDs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := e.ledger.ActiveByCapability(ctx, orgID, capabilityID)
		if err != nil {
			return nil, fmt.Errorf("list assignments for org %s: %w", orgID, err)
		}
		userIDs := make([]string, 0, len(rows))
		for _, row := range rows {
			userIDs = append(userIDs, row.UserID)
		}
		orgID := orgID
		orgResult := e.forEachUser(ctx, operationID, userIDs, func(ctx context.Context, userID string) error {
			return e.migrateUser(ctx, orgID, userID, capabilityID, oldGroupID, newGroupID, actor)
		})
		total.merge(orgResult)
		e.progress(ctx, operationID, "organization_processed",
			fmt.Sprintf("org %s: %d/%d users", orgID, orgResult.Succeeded, orgResult.Total))
	}

	e.finishBulk(ctx, operationID, "mapping_change", total)
	return total, nil
}

// migrateUser moves one user to the capability's new group. Both directory
// calls are attempted; the row is retargeted regardless of their outcome,
// because the new mapping is authoritative and a later repair pass can
// finish the directory side.
func (e *Engine) migrateUser(ctx context.Context, orgID, userID, capabilityID, oldGroupID, newGroupID, actor string) error {
	var directoryErr error

	if oldGroupID != "" {
		exists, err := e.directory.GroupExists(ctx, oldGroupID)
		if err == nil && exists {
			if _, err := e.directory.RemoveMembership(ctx, userID, oldGroupID); err != nil {
				directoryErr = fmt.Errorf("remove old membership: %w", err)
			}
		}
	}
	if newGroupID != "" {
		added, err := e.directory.AddMembership(ctx, userID, newGroupID)
		if err != nil {
			directoryErr = fmt.Errorf("add new membership: %w", err)
		} else if !added {
			directoryErr = fmt.Errorf("new group %s missing from directory", newGroupID)
		}
	}

	change := store.RowChange{
		Kind:        store.ChangeSetGroup,
		AgentTypeID: capabilityID,
		GroupID:     newGroupID,
		AssignedBy:  actor,
	}
	if err := e.ledger.ApplyUserChanges(ctx, orgID, userID, []store.RowChange{change}); err != nil {
		return fmt.Errorf("commit ledger change: %w", err)
	}
	return directoryErr
}
