package reconcile

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"dir-steward.io/steward/internal/pkg/worker"
	"dir-steward.io/steward/internal/service"
)

func TestGrantToAllProcessesEveryUser(t *testing.T) {
	dir := newFakeDirectory("g-x")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	users := &fakeUsers{byOrg: map[string][]string{"org1": {"u1", "u2", "u3"}}}
	status := &statusRecorder{}
	engine := NewEngine(ledger, dir, registry, users, DefaultPolicy()).WithStatusReporter(status)

	result, err := engine.GrantToAll(context.Background(), "op-1", "org1", "cap-x", "admin")
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Equal(t, 3, result.Total)
	require.Equal(t, 3, result.Succeeded)

	for _, uid := range []string{"u1", "u2", "u3"} {
		row := ledger.row("org1", uid, "cap-x")
		require.NotNil(t, row, "user %s", uid)
		require.True(t, row.Active)
		require.True(t, dir.isMember(uid, "g-x"))
	}
	require.True(t, status.done)
	require.True(t, status.ok)
	require.Contains(t, status.phases, "started")
	require.Contains(t, status.phases, "user_processed")
}

func TestGrantToAllUsesSharedWorkerPool(t *testing.T) {
	pools, err := worker.NewPools(context.Background(), worker.PoolConfig{
		GeneralPoolSize:   2,
		DirectoryPoolSize: 2,
	})
	require.NoError(t, err)
	defer pools.Shutdown()

	dir := newFakeDirectory("g-x")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	userIDs := make([]string, 10)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("u%d", i+1)
	}
	users := &fakeUsers{byOrg: map[string][]string{"org1": userIDs}}
	engine := NewEngine(ledger, dir, registry, users, DefaultPolicy()).
		WithWorkerPool(pools.Directory)

	result, err := engine.GrantToAll(context.Background(), "op-1", "org1", "cap-x", "admin")
	require.NoError(t, err)
	require.True(t, result.Success())
	require.Equal(t, 10, result.Succeeded)
	for _, uid := range userIDs {
		require.True(t, dir.isMember(uid, "g-x"), "user %s", uid)
	}
}

func TestGrantToAllRejectsUnmappedCapability(t *testing.T) {
	registry := newFakeRegistry(service.Capability{ID: "cap-x", Active: true})
	engine := NewEngine(newFakeLedger(), newFakeDirectory(), registry, &fakeUsers{}, DefaultPolicy())

	_, err := engine.GrantToAll(context.Background(), "op-1", "org1", "cap-x", "admin")
	require.Error(t, err)
}

func TestBulkSuccessThreshold(t *testing.T) {
	// 5 users, failures injected per case: success iff (N-f)/N >= 0.8.
	tests := []struct {
		name     string
		failures int
		want     bool
	}{
		{"no failures", 0, true},
		{"one in five fails", 1, true},
		{"two in five fail", 2, false},
		{"all fail", 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newFakeDirectory("g-x")
			ledger := newFakeLedger()
			registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
			userIDs := make([]string, 5)
			for i := range userIDs {
				userIDs[i] = fmt.Sprintf("u%d", i+1)
			}
			users := &fakeUsers{byOrg: map[string][]string{"org1": userIDs}}
			policy := DefaultPolicy()
			policy.UserConcurrency = 1
			engine := NewEngine(ledger, dir, registry, users, policy)

			if tt.failures > 0 {
				dir.failAdd["g-x"] = errors.New("throttled")
			}
			// Pre-grant the users that should succeed so their pass is a
			// no-op while the rest hit the failing add.
			for i := tt.failures; i < 5; i++ {
				ledger.seed("org1", userIDs[i], "cap-x", "g-x", true)
			}

			result, err := engine.GrantToAll(context.Background(), "op-1", "org1", "cap-x", "admin")
			require.NoError(t, err)
			require.Equal(t, 5, result.Total)
			require.Equal(t, 5-tt.failures, result.Succeeded)
			require.Equal(t, tt.want, result.Success())
		})
	}
}

func TestRevokeFromAllDeactivatesDespiteDirectoryFailures(t *testing.T) {
	dir := newFakeDirectory("g-x")
	dir.setMember("u1", "g-x")
	dir.setMember("u2", "g-x")
	dir.failRemove["g-x"] = errors.New("throttled")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	ledger.seed("org1", "u2", "cap-x", "g-x", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.RevokeFromAll(context.Background(), "op-1", "org1", "cap-x", "admin")
	require.NoError(t, err)
	require.True(t, result.Success(), "remove failures fail closed, not the operation")
	require.Equal(t, 2, result.Total)

	require.False(t, ledger.row("org1", "u1", "cap-x").Active)
	require.False(t, ledger.row("org1", "u2", "cap-x").Active)
}

func TestRevokeFromAllLeavesOtherCapabilities(t *testing.T) {
	dir := newFakeDirectory("g-x", "g-y")
	dir.setMember("u1", "g-x")
	dir.setMember("u1", "g-y")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	ledger.seed("org1", "u1", "cap-y", "g-y", true)
	registry := newFakeRegistry(
		service.Capability{ID: "cap-x", GroupID: "g-x", Active: true},
		service.Capability{ID: "cap-y", GroupID: "g-y", Active: true},
	)
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	_, err := engine.RevokeFromAll(context.Background(), "op-1", "org1", "cap-x", "admin")
	require.NoError(t, err)

	require.False(t, ledger.row("org1", "u1", "cap-x").Active)
	require.True(t, ledger.row("org1", "u1", "cap-y").Active)
	require.False(t, dir.isMember("u1", "g-x"))
	require.True(t, dir.isMember("u1", "g-y"))
}

func TestRevokeEverywhereCascadesAcrossOrganizations(t *testing.T) {
	dir := newFakeDirectory("g-x")
	dir.setMember("u1", "g-x")
	dir.setMember("u2", "g-x")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	ledger.seed("org2", "u2", "cap-x", "g-x", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	status := &statusRecorder{}
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy()).WithStatusReporter(status)

	result, err := engine.RevokeEverywhere(context.Background(), "op-1", "cap-x", "admin")
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.True(t, result.Success())

	require.False(t, ledger.row("org1", "u1", "cap-x").Active)
	require.False(t, ledger.row("org2", "u2", "cap-x").Active)
	require.False(t, dir.isMember("u1", "g-x"))
	require.False(t, dir.isMember("u2", "g-x"))
	require.Contains(t, status.phases, "organization_processed")
}

func TestForEachUserCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(newFakeLedger(), newFakeDirectory(), newFakeRegistry(), &fakeUsers{}, DefaultPolicy())
	result := engine.forEachUser(ctx, "op-1", []string{"u1", "u2"}, func(context.Context, string) error {
		t.Fatal("no user should be processed after cancellation")
		return nil
	})
	require.Equal(t, 2, result.Total)
	require.Equal(t, 0, result.Succeeded)
	require.Len(t, result.Failures, 2)
}

func TestPropagateMappingChangeMigratesUsers(t *testing.T) {
	// Scenario: cap-x's mapping changes g-old -> g-new. Every holder is
	// removed from the old group, added to the new one, and the row is
	// retargeted.
	dir := newFakeDirectory("g-old", "g-new")
	dir.setMember("u1", "g-old")
	dir.setMember("u2", "g-old")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-old", true)
	ledger.seed("org2", "u2", "cap-x", "g-old", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-new", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.PropagateMappingChange(context.Background(), "op-1", "cap-x", "g-old", "g-new", "admin")
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.True(t, result.Success())

	for _, tc := range []struct{ org, user string }{{"org1", "u1"}, {"org2", "u2"}} {
		row := ledger.row(tc.org, tc.user, "cap-x")
		require.Equal(t, "g-new", row.GroupID)
		require.True(t, row.Active)
		require.False(t, dir.isMember(tc.user, "g-old"))
		require.True(t, dir.isMember(tc.user, "g-new"))
	}
}

func TestPropagateMappingChangeToleratesMissingOldGroup(t *testing.T) {
	dir := newFakeDirectory("g-new") // old group already deleted
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-old", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-new", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.PropagateMappingChange(context.Background(), "op-1", "cap-x", "g-old", "g-new", "admin")
	require.NoError(t, err)
	require.Equal(t, 1, result.Succeeded)
	require.Empty(t, dir.removeCalls)
	require.Equal(t, "g-new", ledger.row("org1", "u1", "cap-x").GroupID)
}

func TestPropagateMappingChangeRemovedMapping(t *testing.T) {
	// Mapping removed entirely: membership is stripped, the row keeps the
	// grant intent with an empty group.
	dir := newFakeDirectory("g-old")
	dir.setMember("u1", "g-old")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-old", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	_, err := engine.PropagateMappingChange(context.Background(), "op-1", "cap-x", "g-old", "", "admin")
	require.NoError(t, err)
	require.False(t, dir.isMember("u1", "g-old"))
	row := ledger.row("org1", "u1", "cap-x")
	require.True(t, row.Active)
	require.Equal(t, "", row.GroupID)
}
