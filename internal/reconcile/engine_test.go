package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/store"
)

func init() {
	_ = logger.Init("error", "json")
}

// ---- in-memory fakes ----

type fakeDirectory struct {
	mu      sync.Mutex
	groups  map[string]bool            // group id -> exists
	members map[string]map[string]bool // group id -> user id -> member

	failAdd    map[string]error // group id -> forced add error
	failRemove map[string]error // group id -> forced remove error
	listErr    error

	addCalls    []string // "user/group"
	removeCalls []string
}

func newFakeDirectory(groups ...string) *fakeDirectory {
	d := &fakeDirectory{
		groups:     make(map[string]bool),
		members:    make(map[string]map[string]bool),
		failAdd:    make(map[string]error),
		failRemove: make(map[string]error),
	}
	for _, g := range groups {
		d.groups[g] = true
	}
	return d
}

func (d *fakeDirectory) setMember(userID, groupID string) {
	if d.members[groupID] == nil {
		d.members[groupID] = make(map[string]bool)
	}
	d.members[groupID][userID] = true
}

func (d *fakeDirectory) isMember(userID, groupID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.members[groupID][userID]
}

func (d *fakeDirectory) GroupExists(_ context.Context, groupID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.groups[groupID], nil
}

func (d *fakeDirectory) AddMembership(_ context.Context, userID, groupID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.addCalls = append(d.addCalls, userID+"/"+groupID)
	if err := d.failAdd[groupID]; err != nil {
		return false, err
	}
	if !d.groups[groupID] {
		return false, nil
	}
	if d.members[groupID] == nil {
		d.members[groupID] = make(map[string]bool)
	}
	d.members[groupID][userID] = true
	return true, nil
}

func (d *fakeDirectory) RemoveMembership(_ context.Context, userID, groupID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removeCalls = append(d.removeCalls, userID+"/"+groupID)
	if err := d.failRemove[groupID]; err != nil {
		return false, err
	}
	delete(d.members[groupID], userID)
	return true, nil
}

func (d *fakeDirectory) ListMemberships(_ context.Context, userID string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.listErr != nil {
		return nil, d.listErr
	}
	var out []string
	for groupID, users := range d.members {
		if users[userID] {
			out = append(out, groupID)
		}
	}
	sort.Strings(out)
	return out, nil
}

type fakeLedger struct {
	mu   sync.Mutex
	rows map[string]*store.Assignment // org|user|cap
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: make(map[string]*store.Assignment)}
}

func ledgerKey(orgID, userID, capID string) string {
	return orgID + "|" + userID + "|" + capID
}

func (l *fakeLedger) seed(orgID, userID, capID, groupID string, active bool) {
	l.rows[ledgerKey(orgID, userID, capID)] = &store.Assignment{
		ID:             ledgerKey(orgID, userID, capID),
		UserID:         userID,
		AgentTypeID:    capID,
		OrganizationID: orgID,
		GroupID:        groupID,
		Active:         active,
		AssignedBy:     "seed",
	}
}

func (l *fakeLedger) row(orgID, userID, capID string) *store.Assignment {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rows[ledgerKey(orgID, userID, capID)]
}

func (l *fakeLedger) ActiveByUser(_ context.Context, orgID, userID string) ([]store.Assignment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []store.Assignment
	for _, r := range l.rows {
		if r.OrganizationID == orgID && r.UserID == userID && r.Active {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AgentTypeID < out[j].AgentTypeID })
	return out, nil
}

func (l *fakeLedger) ActiveByCapability(_ context.Context, orgID, capID string) ([]store.Assignment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []store.Assignment
	for _, r := range l.rows {
		if r.OrganizationID == orgID && r.AgentTypeID == capID && r.Active {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (l *fakeLedger) OrganizationsWithCapability(_ context.Context, capID string) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	seen := make(map[string]struct{})
	for _, r := range l.rows {
		if r.AgentTypeID == capID && r.Active {
			seen[r.OrganizationID] = struct{}{}
		}
	}
	var out []string
	for orgID := range seen {
		out = append(out, orgID)
	}
	sort.Strings(out)
	return out, nil
}

func (l *fakeLedger) ApplyUserChanges(_ context.Context, orgID, userID string, changes []store.RowChange) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ch := range changes {
		key := ledgerKey(orgID, userID, ch.AgentTypeID)
		row := l.rows[key]
		switch ch.Kind {
		case store.ChangeUpsert:
			if row == nil {
				l.rows[key] = &store.Assignment{
					ID:             key,
					UserID:         userID,
					AgentTypeID:    ch.AgentTypeID,
					OrganizationID: orgID,
					GroupID:        ch.GroupID,
					Active:         true,
					AssignedBy:     ch.AssignedBy,
				}
				continue
			}
			row.Active = true
			row.GroupID = ch.GroupID
			row.AssignedBy = ch.AssignedBy
		case store.ChangeDeactivate:
			if row != nil {
				row.Active = false
			}
		case store.ChangeSetGroup:
			if row == nil {
				return fmt.Errorf("set group on missing row %s", key)
			}
			row.GroupID = ch.GroupID
		default:
			return fmt.Errorf("unknown change kind %q", ch.Kind)
		}
	}
	return nil
}

type fakeRegistry struct {
	caps map[string]service.Capability
}

func newFakeRegistry(caps ...service.Capability) *fakeRegistry {
	r := &fakeRegistry{caps: make(map[string]service.Capability)}
	for _, c := range caps {
		r.caps[c.ID] = c
	}
	return r
}

func (r *fakeRegistry) GetByID(_ context.Context, id string) (service.Capability, error) {
	c, ok := r.caps[id]
	if !ok {
		return service.Capability{}, errors.New("capability not found")
	}
	return c, nil
}

func (r *fakeRegistry) GetByIDs(_ context.Context, ids []string) (map[string]service.Capability, error) {
	out := make(map[string]service.Capability)
	for _, id := range ids {
		if c, ok := r.caps[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (r *fakeRegistry) ListActive(_ context.Context) ([]service.Capability, error) {
	var out []service.Capability
	for _, c := range r.caps {
		if c.Active {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeUsers struct {
	byOrg map[string][]string
}

func (u *fakeUsers) ActiveUserIDs(_ context.Context, orgID string) ([]string, error) {
	return u.byOrg[orgID], nil
}

type statusRecorder struct {
	mu     sync.Mutex
	phases []string
	done   bool
	ok     bool
}

func (s *statusRecorder) Progress(_ context.Context, _, phase, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, phase)
}

func (s *statusRecorder) Done(_ context.Context, _ string, success bool, _ string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done = true
	s.ok = success
}

// ---- single-user reconciliation ----

func TestReconcileUserAddsMissingCapability(t *testing.T) {
	// Scenario: user holds X, desired becomes {X, Y}. Y is granted, X is
	// untouched.
	dir := newFakeDirectory("g-x", "g-y")
	dir.setMember("u1", "g-x")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	registry := newFakeRegistry(
		service.Capability{ID: "cap-x", GroupID: "g-x", Active: true},
		service.Capability{ID: "cap-y", GroupID: "g-y", Active: true},
	)

	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())
	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", []string{"cap-x", "cap-y"})
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	require.Equal(t, 1, result.Added)
	require.Equal(t, 0, result.Removed)
	require.Empty(t, result.Failures)

	require.Equal(t, []string{"u1/g-y"}, dir.addCalls)
	require.Empty(t, dir.removeCalls)
	require.True(t, dir.isMember("u1", "g-y"))

	row := ledger.row("org1", "u1", "cap-y")
	require.NotNil(t, row)
	require.True(t, row.Active)
	require.Equal(t, "g-y", row.GroupID)
	require.Equal(t, "admin", row.AssignedBy)
	require.True(t, ledger.row("org1", "u1", "cap-x").Active)
}

func TestReconcileUserEmptyDesiredRevokesEverything(t *testing.T) {
	// Scenario: desired set shrinks to {}. Both removes are attempted and
	// both rows end inactive, even though one remove fails.
	dir := newFakeDirectory("g-x", "g-y")
	dir.setMember("u1", "g-x")
	dir.setMember("u1", "g-y")
	dir.failRemove["g-y"] = errors.New("throttled")
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	ledger.seed("org1", "u1", "cap-y", "g-y", true)
	registry := newFakeRegistry(
		service.Capability{ID: "cap-x", GroupID: "g-x", Active: true},
		service.Capability{ID: "cap-y", GroupID: "g-y", Active: true},
	)

	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())
	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Removed)
	require.Len(t, result.Failures, 1)
	require.Equal(t, "cap-y", result.Failures[0].CapabilityID)

	require.Len(t, dir.removeCalls, 2)
	require.False(t, ledger.row("org1", "u1", "cap-x").Active)
	require.False(t, ledger.row("org1", "u1", "cap-y").Active)
}

func TestReconcileUserIdempotent(t *testing.T) {
	dir := newFakeDirectory("g-x", "g-y")
	ledger := newFakeLedger()
	registry := newFakeRegistry(
		service.Capability{ID: "cap-x", GroupID: "g-x", Active: true},
		service.Capability{ID: "cap-y", GroupID: "g-y", Active: true},
	)
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	desired := []string{"cap-x", "cap-y"}
	_, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", desired)
	require.NoError(t, err)
	firstAdds := len(dir.addCalls)
	require.Equal(t, 2, firstAdds)

	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", desired)
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	require.Len(t, dir.addCalls, firstAdds, "second pass must perform zero directory mutations")
	require.Empty(t, dir.removeCalls)
}

func TestReconcileUserMissingGroupStillRecordsIntent(t *testing.T) {
	// The capability maps to a group the directory has lost. The grant
	// intent is recorded so a later repair can finish it; no directory
	// mutation happens.
	dir := newFakeDirectory() // no groups exist
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", []string{"cap-x"})
	require.NoError(t, err)
	require.True(t, result.Succeeded())
	require.Empty(t, dir.addCalls)

	row := ledger.row("org1", "u1", "cap-x")
	require.NotNil(t, row)
	require.True(t, row.Active)
	require.Equal(t, "g-x", row.GroupID)
}

func TestReconcileUserUnmappedCapabilityFails(t *testing.T) {
	dir := newFakeDirectory()
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", Active: true}) // no group
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", []string{"cap-x", "cap-ghost"})
	require.NoError(t, err)
	require.False(t, result.Succeeded())
	require.Len(t, result.Failures, 2)
	require.Nil(t, ledger.row("org1", "u1", "cap-x"))
}

func TestReconcileUserSkipsAddWhenAlreadyMember(t *testing.T) {
	dir := newFakeDirectory("g-x")
	dir.setMember("u1", "g-x")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", []string{"cap-x"})
	require.NoError(t, err)
	require.Equal(t, 1, result.Added)
	require.Empty(t, dir.addCalls)
	require.True(t, ledger.row("org1", "u1", "cap-x").Active)
}

func TestReconcileUserFailedAddStillUpsertsRow(t *testing.T) {
	dir := newFakeDirectory("g-x")
	dir.failAdd["g-x"] = errors.New("throttled")
	ledger := newFakeLedger()
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", []string{"cap-x"})
	require.NoError(t, err)
	require.False(t, result.Succeeded())
	require.Len(t, result.Failures, 1)

	row := ledger.row("org1", "u1", "cap-x")
	require.NotNil(t, row, "grant intent must be recorded despite the failed add")
	require.True(t, row.Active)
}

func TestReconcileUserValidation(t *testing.T) {
	engine := NewEngine(newFakeLedger(), newFakeDirectory(), newFakeRegistry(), &fakeUsers{}, DefaultPolicy())

	tests := []struct {
		name   string
		orgID  string
		userID string
	}{
		{"missing org", "", "u1"},
		{"missing user", "org1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ReconcileUser(context.Background(), tt.orgID, tt.userID, "admin", []string{"cap-x"})
			if err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestReconcileUserRequireNonEmptyDesired(t *testing.T) {
	policy := DefaultPolicy()
	policy.RequireNonEmptyDesired = true
	engine := NewEngine(newFakeLedger(), newFakeDirectory(), newFakeRegistry(), &fakeUsers{}, policy)

	_, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", nil)
	require.Error(t, err)
}

func TestReconcileUserRevokeVacuousWhenGroupGone(t *testing.T) {
	// The row points at a group the directory no longer has: removal is
	// vacuously successful, no remove call, row deactivated.
	dir := newFakeDirectory()
	ledger := newFakeLedger()
	ledger.seed("org1", "u1", "cap-x", "g-x", true)
	registry := newFakeRegistry(service.Capability{ID: "cap-x", GroupID: "g-x", Active: true})
	engine := NewEngine(ledger, dir, registry, &fakeUsers{}, DefaultPolicy())

	result, err := engine.ReconcileUser(context.Background(), "org1", "u1", "admin", nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.Removed)
	require.Empty(t, dir.removeCalls)
	require.False(t, ledger.row("org1", "u1", "cap-x").Active)
}
