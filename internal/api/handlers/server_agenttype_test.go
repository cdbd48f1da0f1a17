package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/internal/api/middleware"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/testutil"
)

func newAgentTypeTestServer(t *testing.T, schema string) (*Server, *ent.Client) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	client := testutil.OpenEntPostgres(t, schema)
	return NewServer(ServerDeps{
		EntClient:    client,
		AgentTypeSvc: service.NewAgentTypeService(client),
		StatusSvc:    service.NewOperationStatusService(client),
	}), client
}

func TestPostAgentType_CreateThenList(t *testing.T) {
	srv, _ := newAgentTypeTestServer(t, "handler_agenttype")

	c, w := newGinContext(t, http.MethodPost, "/agent-types",
		`{"name":"coder","description":"writes code","group_id":"grp-coder"}`, nil)
	srv.PostAgentType(c)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d body=%s", w.Code, http.StatusCreated, w.Body.String())
	}

	c, w = newGinContext(t, http.MethodGet, "/agent-types", "", nil)
	srv.GetAgentTypes(c)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want %d body=%s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp struct {
		AgentTypes []struct {
			Name    string `json:"name"`
			GroupID string `json:"group_id"`
		} `json:"agent_types"`
	}
	mustDecodeJSON(t, w.Body.Bytes(), &resp)
	if len(resp.AgentTypes) != 1 || resp.AgentTypes[0].Name != "coder" {
		t.Fatalf("agent_types = %+v, want one named coder", resp.AgentTypes)
	}
}

func TestPostAgentType_DuplicateNameConflicts(t *testing.T) {
	srv, _ := newAgentTypeTestServer(t, "handler_agenttype_dup")

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.POST("/agent-types", srv.PostAgentType)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/agent-types",
			strings.NewReader(`{"name":"coder","group_id":"grp-coder"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	if w := post(); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d, want %d body=%s", w.Code, http.StatusCreated, w.Body.String())
	}
	w := post()
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want %d body=%s", w.Code, http.StatusConflict, w.Body.String())
	}
}

func TestGetOperation_NotFound(t *testing.T) {
	srv, _ := newAgentTypeTestServer(t, "handler_operation_missing")

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/operations/:operationId", srv.GetOperation)

	req := httptest.NewRequest(http.MethodGet, "/operations/op-missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d body=%s", w.Code, http.StatusNotFound, w.Body.String())
	}
	var resp struct {
		Code string `json:"code"`
	}
	mustDecodeJSON(t, w.Body.Bytes(), &resp)
	if resp.Code != "OPERATION_NOT_FOUND" {
		t.Fatalf("code = %q, want OPERATION_NOT_FOUND", resp.Code)
	}
}
