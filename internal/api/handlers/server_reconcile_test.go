package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/ent/assignment"
	"dir-steward.io/steward/internal/api/middleware"
	"dir-steward.io/steward/internal/pkg/logger"
	"dir-steward.io/steward/internal/reconcile"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/store"
	"dir-steward.io/steward/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// memDirectory is an in-memory directory service double.
type memDirectory struct {
	mu      sync.Mutex
	groups  map[string]bool
	members map[string]map[string]bool // groupID -> userID set
}

func newMemDirectory(groupIDs ...string) *memDirectory {
	d := &memDirectory{
		groups:  make(map[string]bool),
		members: make(map[string]map[string]bool),
	}
	for _, g := range groupIDs {
		d.groups[g] = true
		d.members[g] = make(map[string]bool)
	}
	return d
}

func (d *memDirectory) GroupExists(_ context.Context, groupID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.groups[groupID], nil
}

func (d *memDirectory) AddMembership(_ context.Context, userID, groupID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.groups[groupID] {
		return false, nil
	}
	d.members[groupID][userID] = true
	return true, nil
}

func (d *memDirectory) RemoveMembership(_ context.Context, userID, groupID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.groups[groupID] {
		return true, nil
	}
	delete(d.members[groupID], userID)
	return true, nil
}

func (d *memDirectory) ListMemberships(_ context.Context, userID string) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for g, users := range d.members {
		if users[userID] {
			out = append(out, g)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (d *memDirectory) isMember(userID, groupID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.members[groupID] != nil && d.members[groupID][userID]
}

func newReconcileTestServer(t *testing.T, schema string, dir *memDirectory) (*Server, *ent.Client) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	client := testutil.OpenEntPostgres(t, schema)
	engine := reconcile.NewEngine(
		store.NewEntAssignmentStore(client),
		dir,
		service.NewAgentTypeService(client),
		service.NewUserService(client),
		reconcile.DefaultPolicy(),
	)
	return NewServer(ServerDeps{
		EntClient: client,
		Engine:    engine,
		StatusSvc: service.NewOperationStatusService(client),
	}), client
}

func newGinContext(
	t *testing.T,
	method string,
	target string,
	body string,
	params gin.Params,
) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var req *http.Request
	if strings.TrimSpace(body) == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Params = params
	c.Set("actor_id", "tester")
	return c, w
}

func mustDecodeJSON(t *testing.T, payload []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(payload, out); err != nil {
		t.Fatalf("decode json: %v; payload=%s", err, string(payload))
	}
}

func mustCreateAgentType(t *testing.T, client *ent.Client, id, name, groupID string) {
	t.Helper()
	if err := client.AgentType.Create().
		SetID(id).
		SetName(name).
		SetGroupID(groupID).
		SetCreatedBy("tester").
		Exec(t.Context()); err != nil {
		t.Fatalf("create agent type: %v", err)
	}
}

func mustCreateAssignment(t *testing.T, client *ent.Client, orgID, userID, agentTypeID, groupID string) {
	t.Helper()
	if err := client.Assignment.Create().
		SetID("asg-" + userID + "-" + agentTypeID).
		SetOrganizationID(orgID).
		SetUserID(userID).
		SetAgentTypeID(agentTypeID).
		SetGroupID(groupID).
		SetAssignedBy("tester").
		SetAssignedAt(time.Now()).
		Exec(t.Context()); err != nil {
		t.Fatalf("create assignment: %v", err)
	}
}

func userParams(orgID, userID string) gin.Params {
	return gin.Params{
		{Key: "orgId", Value: orgID},
		{Key: "userId", Value: userID},
	}
}

func TestPostReconcileUser_GrantsThenRevokes(t *testing.T) {
	dir := newMemDirectory("grp-coder")
	srv, client := newReconcileTestServer(t, "handler_reconcile", dir)
	mustCreateAgentType(t, client, "cap-coder", "coder", "grp-coder")

	c, w := newGinContext(t, http.MethodPost, "/reconcile",
		`{"desired_capability_ids":["cap-coder"]}`, userParams("org-1", "user-1"))
	srv.PostReconcileUser(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
	}
	mustDecodeJSON(t, w.Body.Bytes(), &resp)
	if !resp.Success {
		t.Fatalf("success = false, body=%s", w.Body.String())
	}
	if !dir.isMember("user-1", "grp-coder") {
		t.Fatal("user not added to directory group")
	}

	c, w = newGinContext(t, http.MethodPost, "/reconcile",
		`{"desired_capability_ids":[]}`, userParams("org-1", "user-1"))
	srv.PostReconcileUser(c)
	if w.Code != http.StatusOK {
		t.Fatalf("revoke status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	if dir.isMember("user-1", "grp-coder") {
		t.Fatal("user still in directory group after revoke")
	}

	active, err := client.Assignment.Query().
		Where(assignment.UserIDEQ("user-1"), assignment.ActiveEQ(true)).
		Count(t.Context())
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if active != 0 {
		t.Fatalf("active assignments = %d, want 0", active)
	}
}

func TestPostReconcileUser_InvalidBody(t *testing.T) {
	dir := newMemDirectory()
	srv, _ := newReconcileTestServer(t, "handler_reconcile_bad_body", dir)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/orgs/:orgId/users/:userId/reconcile", srv.PostReconcileUser)

	req := httptest.NewRequest(http.MethodPost, "/orgs/org-1/users/user-1/reconcile",
		strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusBadRequest, w.Body.String())
	}
	var resp struct {
		Code string `json:"code"`
	}
	mustDecodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", resp.Code)
	}
}

func TestPostRepairUser_RestoresMembership(t *testing.T) {
	dir := newMemDirectory("grp-review")
	srv, client := newReconcileTestServer(t, "handler_repair", dir)
	mustCreateAgentType(t, client, "cap-review", "reviewer", "grp-review")
	mustCreateAssignment(t, client, "org-1", "user-2", "cap-review", "grp-review")

	c, w := newGinContext(t, http.MethodPost, "/repair", "", userParams("org-1", "user-2"))
	srv.PostRepairUser(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	if !dir.isMember("user-2", "grp-review") {
		t.Fatal("membership not restored by repair")
	}
}

func TestGetUserAssignments_ListsActiveRows(t *testing.T) {
	dir := newMemDirectory()
	srv, client := newReconcileTestServer(t, "handler_assignments", dir)
	mustCreateAgentType(t, client, "cap-a", "cap a", "grp-a")
	mustCreateAssignment(t, client, "org-1", "user-3", "cap-a", "grp-a")

	c, w := newGinContext(t, http.MethodGet, "/assignments", "", userParams("org-1", "user-3"))
	srv.GetUserAssignments(c)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp struct {
		Assignments []struct {
			AgentTypeID string `json:"agent_type_id"`
			GroupID     string `json:"group_id"`
		} `json:"assignments"`
	}
	mustDecodeJSON(t, w.Body.Bytes(), &resp)
	if len(resp.Assignments) != 1 || resp.Assignments[0].AgentTypeID != "cap-a" {
		t.Fatalf("assignments = %+v, want one row for cap-a", resp.Assignments)
	}
}
