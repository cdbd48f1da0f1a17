// Package directory abstracts the external directory service that owns
// group membership. The engine only ever observes and mutates memberships
// through this package; the directory is ground truth for "is the user in
// the group right now".
package directory

import "context"

// Client is the contract the reconciliation engine consumes.
//
// All four operations must tolerate the target group no longer existing:
// GroupExists returns false (not an error) for a missing group, and
// Add/RemoveMembership are idempotent from the caller's perspective: they
// report the membership end state, not whether a mutation happened.
type Client interface {
	// GroupExists reports whether the group currently exists.
	GroupExists(ctx context.Context, groupID string) (bool, error)

	// AddMembership ensures the user is a member of the group. Returns true
	// when the user ends up a member, including when already a member.
	AddMembership(ctx context.Context, userID, groupID string) (bool, error)

	// RemoveMembership ensures the user is not a member of the group.
	// Returns true when the user ends up not a member, including when the
	// user was never a member.
	RemoveMembership(ctx context.Context, userID, groupID string) (bool, error)

	// ListMemberships returns a full snapshot of the user's group ids.
	ListMemberships(ctx context.Context, userID string) ([]string, error)
}

// Outcome classifies a directory lookup. "Not found" is a result, never an
// error: callers branch on the variant instead of matching error types.
type Outcome int

const (
	// Found means the lookup succeeded and Value is populated.
	Found Outcome = iota
	// NotFound means the target does not exist in the directory.
	NotFound
	// Transient means a retriable failure (network, throttling, 5xx).
	Transient
)

// String returns the outcome name for logs.
func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// Lookup is a typed lookup result: Found(T) | NotFound | Transient(reason).
type Lookup[T any] struct {
	Outcome Outcome
	Value   T
	Reason  string
}

// FoundValue builds a Found result.
func FoundValue[T any](v T) Lookup[T] {
	return Lookup[T]{Outcome: Found, Value: v}
}

// NotFoundValue builds a NotFound result.
func NotFoundValue[T any]() Lookup[T] {
	return Lookup[T]{Outcome: NotFound}
}

// TransientFailure builds a Transient result with a reason.
func TransientFailure[T any](reason string) Lookup[T] {
	return Lookup[T]{Outcome: Transient, Reason: reason}
}
