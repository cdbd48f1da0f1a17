// Package service provides domain services over the ent model.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/agenttype"
	apperrors "dir-steward.io/steward/internal/pkg/errors"
)

// Capability is the read model of an agent type the reconciliation engine
// works with: a grantable capability mapped to one directory group.
type Capability struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	GroupID string `json:"group_id"`
	Active  bool   `json:"active"`
}

// AgentTypeService handles agent type (capability) registry logic.
type AgentTypeService struct {
	client *ent.Client
}

// NewAgentTypeService creates a new AgentTypeService.
func NewAgentTypeService(client *ent.Client) *AgentTypeService {
	return &AgentTypeService{client: client}
}

// Create registers a new capability. GroupID may be empty: an unmapped
// capability exists in the catalog but cannot be granted yet.
func (s *AgentTypeService) Create(ctx context.Context, name, description, groupID, actor string) (Capability, error) {
	if name == "" || actor == "" {
		return Capability{}, apperrors.Validation(apperrors.CodeValidationFailed, "name and actor are required")
	}
	at, err := s.client.AgentType.Create().
		SetID(generateAgentTypeID()).
		SetName(name).
		SetDescription(description).
		SetGroupID(groupID).
		SetCreatedBy(actor).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return Capability{}, apperrors.Conflict(apperrors.CodeDuplicateRequest,
				fmt.Sprintf("agent type %q already exists", name))
		}
		return Capability{}, fmt.Errorf("create agent type: %w", err)
	}
	return toCapability(at), nil
}

// GetByID returns a capability by ID.
func (s *AgentTypeService) GetByID(ctx context.Context, id string) (Capability, error) {
	at, err := s.client.AgentType.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return Capability{}, apperrors.NotFound(apperrors.CodeCapabilityNotFound,
				fmt.Sprintf("agent type %s not found", id))
		}
		return Capability{}, fmt.Errorf("get agent type %s: %w", id, err)
	}
	return toCapability(at), nil
}

// GetByIDs resolves a batch of capability ids in one query. Missing ids
// are simply absent from the result map; callers decide whether that is
// an error.
func (s *AgentTypeService) GetByIDs(ctx context.Context, ids []string) (map[string]Capability, error) {
	if len(ids) == 0 {
		return map[string]Capability{}, nil
	}
	rows, err := s.client.AgentType.Query().
		Where(agenttype.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("get agent types: %w", err)
	}
	out := make(map[string]Capability, len(rows))
	for _, at := range rows {
		out[at.ID] = toCapability(at)
	}
	return out, nil
}

// ListActive returns every active capability.
func (s *AgentTypeService) ListActive(ctx context.Context) ([]Capability, error) {
	rows, err := s.client.AgentType.Query().
		Where(agenttype.ActiveEQ(true)).
		Order(ent.Asc(agenttype.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agent types: %w", err)
	}
	out := make([]Capability, 0, len(rows))
	for _, at := range rows {
		out = append(out, toCapability(at))
	}
	return out, nil
}

// SetGroupID repoints a capability at a new directory group and returns
// the previous group id. The ledger rows still referencing the old group
// are migrated asynchronously.
func (s *AgentTypeService) SetGroupID(ctx context.Context, id, groupID string) (string, error) {
	at, err := s.client.AgentType.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", apperrors.NotFound(apperrors.CodeCapabilityNotFound,
				fmt.Sprintf("agent type %s not found", id))
		}
		return "", fmt.Errorf("get agent type %s: %w", id, err)
	}
	oldGroupID := at.GroupID
	if _, err := at.Update().SetGroupID(groupID).Save(ctx); err != nil {
		return "", fmt.Errorf("update agent type group: %w", err)
	}
	return oldGroupID, nil
}

// SetActive enables or disables a capability.
func (s *AgentTypeService) SetActive(ctx context.Context, id string, active bool) error {
	n, err := s.client.AgentType.Update().
		Where(agenttype.IDEQ(id)).
		SetActive(active).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update agent type state: %w", err)
	}
	if n == 0 {
		return apperrors.NotFound(apperrors.CodeCapabilityNotFound,
			fmt.Sprintf("agent type %s not found", id))
	}
	return nil
}

func generateAgentTypeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func toCapability(at *ent.AgentType) Capability {
	return Capability{
		ID:      at.ID,
		Name:    at.Name,
		GroupID: at.GroupID,
		Active:  at.Active,
	}
}
