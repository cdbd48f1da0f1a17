// Package domain defines domain events and their payloads.
//
// Events carry the full payload for async jobs (claim-check): River job
// rows store only the event id, workers fetch the event to get the rest.
package domain

import (
	"encoding/json"
)

// EventType defines the type of domain event.
type EventType string

// Event lifecycle (PENDING through COMPLETED or FAILED) is tracked on the
// event row itself, so only the request kinds need event types.
const (
	EventMappingChangeRequested EventType = "CAPABILITY_MAPPING_CHANGE_REQUESTED"
	EventGrantAllRequested      EventType = "CAPABILITY_GRANT_ALL_REQUESTED"
	EventRevokeAllRequested     EventType = "CAPABILITY_REVOKE_ALL_REQUESTED"
)

// MappingChangePayload is the payload for capability mapping change events.
// OldGroupID may be empty (mapping added) and NewGroupID may be empty
// (mapping removed).
type MappingChangePayload struct {
	AgentTypeID string `json:"agent_type_id"`
	OldGroupID  string `json:"old_group_id"`
	NewGroupID  string `json:"new_group_id"`
	Actor       string `json:"actor"`
	OperationID string `json:"operation_id"`
}

// ToJSON converts payload to JSON bytes.
func (p MappingChangePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// GrantAllPayload is the payload for organization-wide grant events.
type GrantAllPayload struct {
	AgentTypeID    string `json:"agent_type_id"`
	OrganizationID string `json:"organization_id"`
	Actor          string `json:"actor"`
	OperationID    string `json:"operation_id"`
}

// ToJSON converts payload to JSON bytes.
func (p GrantAllPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// RevokeAllPayload is the payload for organization-wide revoke events.
// An empty OrganizationID means every organization referencing the
// capability (the disable cascade).
type RevokeAllPayload struct {
	AgentTypeID    string `json:"agent_type_id"`
	OrganizationID string `json:"organization_id,omitempty"`
	Actor          string `json:"actor"`
	OperationID    string `json:"operation_id"`
}

// ToJSON converts payload to JSON bytes.
func (p RevokeAllPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
