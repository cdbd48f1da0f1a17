package reconcile

import "fmt"

// CapabilityFailure records one capability that could not be fully
// processed during a user's pass, with a human-readable reason.
type CapabilityFailure struct {
	CapabilityID string `json:"capability_id"`
	Reason       string `json:"reason"`
}

// UserResult is the outcome of one user's reconciliation or repair pass.
type UserResult struct {
	UserID   string              `json:"user_id"`
	Added    int                 `json:"added"`
	Removed  int                 `json:"removed"`
	Repaired int                 `json:"repaired"`
	Failures []CapabilityFailure `json:"failures,omitempty"`
}

// Succeeded reports whether the pass is considered successful: at least
// one requested change landed, or nothing failed (including the no-op
// case where nothing was requested).
func (r *UserResult) Succeeded() bool {
	return r.Added+r.Removed+r.Repaired > 0 || len(r.Failures) == 0
}

func (r *UserResult) fail(capabilityID, reason string) {
	r.Failures = append(r.Failures, CapabilityFailure{CapabilityID: capabilityID, Reason: reason})
}

// UserFailure records one user a bulk operation could not process.
type UserFailure struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// BulkResult is the aggregate outcome of an organization-wide operation.
// Per-user failures never abort sibling users; they are tallied here.
type BulkResult struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failures  []UserFailure `json:"failures,omitempty"`
	Threshold float64       `json:"threshold"`
}

// SuccessRatio returns the fraction of users processed without error.
// An empty operation is vacuously successful.
func (r *BulkResult) SuccessRatio() float64 {
	if r.Total == 0 {
		return 1.0
	}
	return float64(r.Succeeded) / float64(r.Total)
}

// Success reports whether the operation as a whole met the policy
// threshold.
func (r *BulkResult) Success() bool {
	return r.SuccessRatio() >= r.Threshold
}

// Summary returns a one-line description for status feeds and logs.
func (r *BulkResult) Summary() string {
	return fmt.Sprintf("%d/%d users succeeded (%.0f%% required)", r.Succeeded, r.Total, r.Threshold*100)
}

func (r *BulkResult) merge(other *BulkResult) {
	r.Total += other.Total
	r.Succeeded += other.Succeeded
	r.Failures = append(r.Failures, other.Failures...)
}
