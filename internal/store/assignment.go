// Package store provides persistence for the assignment ledger.
//
// The ledger is the single source of truth for who should hold which
// capability. Rows are soft-deleted: a revoke flips active to false and a
// re-grant reuses the same row.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/assignment"
)

// Assignment is the domain view of one ledger row.
type Assignment struct {
	ID             string
	UserID         string
	AgentTypeID    string
	OrganizationID string
	GroupID        string
	Active         bool
	AssignedBy     string
	AssignedAt     time.Time
}

// ChangeKind identifies the mutation a RowChange applies.
type ChangeKind string

const (
	// ChangeUpsert creates the row for (user, capability, org) or
	// reactivates it, pointing it at GroupID.
	ChangeUpsert ChangeKind = "upsert"
	// ChangeDeactivate flips the row inactive. The row is kept.
	ChangeDeactivate ChangeKind = "deactivate"
	// ChangeSetGroup refreshes a stale group id on an active row.
	ChangeSetGroup ChangeKind = "set_group"
)

// RowChange describes one pending ledger mutation for a user. Changes for
// a single user are committed in one transaction, after the directory
// calls they mirror have succeeded.
type RowChange struct {
	Kind        ChangeKind
	AgentTypeID string
	GroupID     string
	AssignedBy  string
}

// AssignmentStore is the ledger persistence surface the reconciliation
// engine depends on.
type AssignmentStore interface {
	ActiveByUser(ctx context.Context, orgID, userID string) ([]Assignment, error)
	ActiveByCapability(ctx context.Context, orgID, agentTypeID string) ([]Assignment, error)
	OrganizationsWithCapability(ctx context.Context, agentTypeID string) ([]string, error)
	ApplyUserChanges(ctx context.Context, orgID, userID string, changes []RowChange) error
}

// EntAssignmentStore implements AssignmentStore on ent.
type EntAssignmentStore struct {
	client *ent.Client
}

// NewEntAssignmentStore creates a new EntAssignmentStore.
func NewEntAssignmentStore(client *ent.Client) *EntAssignmentStore {
	return &EntAssignmentStore{client: client}
}

// ActiveByUser returns the user's active assignments within an organization.
func (s *EntAssignmentStore) ActiveByUser(ctx context.Context, orgID, userID string) ([]Assignment, error) {
	rows, err := s.client.Assignment.Query().
		Where(
			assignment.OrganizationIDEQ(orgID),
			assignment.UserIDEQ(userID),
			assignment.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments for user %s: %w", userID, err)
	}
	return fromEntRows(rows), nil
}

// ActiveByCapability returns every active assignment of one capability
// within an organization.
func (s *EntAssignmentStore) ActiveByCapability(ctx context.Context, orgID, agentTypeID string) ([]Assignment, error) {
	rows, err := s.client.Assignment.Query().
		Where(
			assignment.OrganizationIDEQ(orgID),
			assignment.AgentTypeIDEQ(agentTypeID),
			assignment.ActiveEQ(true),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assignments for capability %s: %w", agentTypeID, err)
	}
	return fromEntRows(rows), nil
}

// OrganizationsWithCapability returns the distinct organizations holding
// at least one active assignment of the capability.
func (s *EntAssignmentStore) OrganizationsWithCapability(ctx context.Context, agentTypeID string) ([]string, error) {
	orgIDs, err := s.client.Assignment.Query().
		Where(
			assignment.AgentTypeIDEQ(agentTypeID),
			assignment.ActiveEQ(true),
		).
		Unique(true).
		Select(assignment.FieldOrganizationID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query organizations for capability %s: %w", agentTypeID, err)
	}
	return orgIDs, nil
}

// ApplyUserChanges commits a user's ledger mutations in one transaction.
// Either every change lands or none does, so the ledger never reflects a
// half-applied reconciliation pass.
func (s *EntAssignmentStore) ApplyUserChanges(ctx context.Context, orgID, userID string, changes []RowChange) error {
	if len(changes) == 0 {
		return nil
	}
	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		for _, ch := range changes {
			if err := applyChange(ctx, tx, orgID, userID, ch); err != nil {
				return err
			}
		}
		return nil
	})
}

func applyChange(ctx context.Context, tx *ent.Tx, orgID, userID string, ch RowChange) error {
	row, err := tx.Assignment.Query().
		Where(
			assignment.OrganizationIDEQ(orgID),
			assignment.UserIDEQ(userID),
			assignment.AgentTypeIDEQ(ch.AgentTypeID),
		).
		Only(ctx)
	switch {
	case err == nil:
		// Row exists: mutate in place.
	case ent.IsNotFound(err):
		row = nil
	default:
		return fmt.Errorf("query assignment row: %w", err)
	}

	switch ch.Kind {
	case ChangeUpsert:
		if row == nil {
			_, err := tx.Assignment.Create().
				SetID(generateID()).
				SetUserID(userID).
				SetAgentTypeID(ch.AgentTypeID).
				SetOrganizationID(orgID).
				SetGroupID(ch.GroupID).
				SetActive(true).
				SetAssignedBy(ch.AssignedBy).
				SetAssignedAt(time.Now()).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("create assignment row: %w", err)
			}
			return nil
		}
		_, err := row.Update().
			SetActive(true).
			SetGroupID(ch.GroupID).
			SetAssignedBy(ch.AssignedBy).
			SetAssignedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("reactivate assignment row: %w", err)
		}
		return nil

	case ChangeDeactivate:
		if row == nil || !row.Active {
			// Already absent or inactive: deactivation is idempotent.
			return nil
		}
		if _, err := row.Update().SetActive(false).Save(ctx); err != nil {
			return fmt.Errorf("deactivate assignment row: %w", err)
		}
		return nil

	case ChangeSetGroup:
		if row == nil {
			return fmt.Errorf("set group on missing assignment row (user %s, capability %s)", userID, ch.AgentTypeID)
		}
		if _, err := row.Update().SetGroupID(ch.GroupID).Save(ctx); err != nil {
			return fmt.Errorf("update assignment group: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown row change kind %q", ch.Kind)
	}
}

func fromEntRows(rows []*ent.Assignment) []Assignment {
	out := make([]Assignment, 0, len(rows))
	for _, r := range rows {
		out = append(out, Assignment{
			ID:             r.ID,
			UserID:         r.UserID,
			AgentTypeID:    r.AgentTypeID,
			OrganizationID: r.OrganizationID,
			GroupID:        r.GroupID,
			Active:         r.Active,
			AssignedBy:     r.AssignedBy,
			AssignedAt:     r.AssignedAt,
		})
	}
	return out
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
