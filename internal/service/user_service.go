package service

import (
	"context"
	"fmt"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/user"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
)

// UserService handles user lookups for reconciliation and bulk operations.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetByID returns a user by ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound,
				fmt.Sprintf("user %s not found", id))
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// ActiveUserIDs returns the ids of all active users in an organization.
// Bulk operations iterate this snapshot; users added mid-operation are
// picked up by the next drift sweep.
func (s *UserService) ActiveUserIDs(ctx context.Context, orgID string) ([]string, error) {
	ids, err := s.client.User.Query().
		Where(
			user.OrganizationIDEQ(orgID),
			user.ActiveEQ(true),
		).
		Order(ent.Asc(user.FieldID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active users for org %s: %w", orgID, err)
	}
	return ids, nil
}
