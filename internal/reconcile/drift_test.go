package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"dir-steward.io/steward/internal/service"
)

func TestRepairUserRestoresMissingMembership(t *testing.T) {
	// Drift: row says the user holds cap-x via g-x, but the directory
	// disagrees. Repair adds the membership back; the row stays active.
	dir := newFakeDirectory("g-x")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	require.Equal(t, 1, result.Repaired)
	require.Equal(t, []string{"u1/g-x"}, dir.addCalls)
	require.True(t, ledger.row("org1", "u1", "cap-x").Active)
}

func TestRepairUserIdempotent(t *testing.T) {
	dir := newFakeDirectory("g-x")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	_, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	callsAfterFirst := len(dir.addCalls) + len(dir.removeCalls)

	result, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	require.Equal(t, 0, result.Repaired)
	require.Equal(t, callsAfterFirst, len(dir.addCalls)+len(dir.removeCalls),
		"second pass on a converged user must perform zero mutations")
}

func TestRepairUserDirectoryWinsOnMissingRow(t *testing.T) {
	// The user is a member of cap-x's group but the ledger has no row.
	// With the directory winning, the row is reactivated and the anomaly
	// is documented rather than silently revoked.
	dir := newFakeDirectory("g-x")
	dir.setMember("u1", "g-x")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	require.Equal(t, 1, result.Repaired)

	row := ledger.row("org1", "u1", "cap-x")
	require.NotNil(t, row)
	require.True(t, row.Active)
	require.True(t, dir.isMember("u1", "g-x"))
}

func TestRepairUserLedgerWinsOnMissingRow(t *testing.T) {
	dir := newFakeDirectory("g-x")
	dir.setMember("u1", "g-x")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	policy := DefaultPolicy()
	policy.DriftWinner = DriftWinnerLedger
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, policy)

	result, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	require.Equal(t, 1, result.Repaired)

	require.Nil(t, ledger.row("org1", "u1", "cap-x"))
	require.False(t, dir.isMember("u1", "g-x"), "undocumented membership must be stripped")
}

func TestRepairUserMigratesStaleGroup(t *testing.T) {
	// cap-x moved from g-old to g-new while the row still points at g-old.
	dir := newFakeDirectory("g-old", "g-new")
	dir.setMember("u1", "g-old")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-old", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-new", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	require.Equal(t, 1, result.Repaired)

	require.Equal(t, []string{"u1/g-old"}, dir.removeCalls)
	require.Equal(t, []string{"u1/g-new"}, dir.addCalls)
	row := ledger.row("org1", "u1", "cap-x")
	require.Equal(t, "g-new", row.GroupID)
	require.True(t, row.Active)
}

func TestRepairUserIgnoresForeignGroups(t *testing.T) {
	// Membership in a group no capability maps to is not drift.
	dir := newFakeDirectory("g-other")
	dir.setMember("u1", "g-other")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.NoError(t, err)
	require.Equal(t, 0, result.Repaired)
	require.Empty(t, dir.removeCalls)
	require.True(t, dir.isMember("u1", "g-other"))
}

func TestRepairUserFailsWithoutMembershipSnapshot(t *testing.T) {
	dir := newFakeDirectory("g-x")
	dir.listErr = errors.New("directory down")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	_, err := engine.RepairUser(context.Background(), "org1", "u1", "sweeper")
	require.Error(t, err)
	require.Empty(t, dir.addCalls, "no repair without ground truth")
}
