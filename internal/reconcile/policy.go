// Package reconcile implements the membership reconciliation engine.
//
// The engine keeps two independently mutable systems convergent: the local
// assignment ledger (who should hold which capability) and the external
// directory (who actually holds group membership). It computes diffs,
// applies them through the directory client, repairs drift in either
// direction, and drives organization-wide propagation when a capability
// itself changes.
package reconcile

// Drift winner values. When an active directory membership has no backing
// ledger row, the winner decides which side is repaired to match the other.
const (
	// DriftWinnerDirectory reactivates the ledger row so the access is at
	// least documented. The anomaly is still logged.
	DriftWinnerDirectory = "directory"
	// DriftWinnerLedger strips the directory membership instead. Stricter
	// posture: undocumented access is revoked rather than recorded.
	DriftWinnerLedger = "ledger"
)

// Policy holds the tunable decisions of the engine. All of them are
// operational trade-offs rather than correctness requirements, so they are
// configuration, not constants.
type Policy struct {
	// BulkSuccessThreshold is the fraction of users that must be processed
	// without error for a bulk operation to report overall success.
	BulkSuccessThreshold float64
	// DriftWinner selects which side wins when membership exists without a
	// ledger row. One of DriftWinnerDirectory or DriftWinnerLedger.
	DriftWinner string
	// UserConcurrency bounds how many users a bulk operation processes in
	// flight at once. Kept small to respect directory rate limits.
	UserConcurrency int
	// RequireNonEmptyDesired rejects reconciliation requests with an empty
	// desired set. Off by default: an empty set is a legitimate full revoke.
	RequireNonEmptyDesired bool
}

// DefaultPolicy returns the stock policy.
func DefaultPolicy() Policy {
	return Policy{
		BulkSuccessThreshold: 0.8,
		DriftWinner:          DriftWinnerDirectory,
		UserConcurrency:      8,
	}
}
