// Package handlers implements the HTTP API surface.
//
// The API is a thin shell: handlers validate and translate, the engine and
// use cases do the work. Route registration lives in internal/app/router.go.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"dir-steward.io/steward/ent"
	"dir-steward.io/steward/internal/api/middleware"
	"dir-steward.io/steward/internal/governance/audit"
	"dir-steward.io/steward/internal/reconcile"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/usecase"
)

// Server implements all API handlers.
type Server struct {
	client       *ent.Client
	pool         *pgxpool.Pool
	jwtCfg       middleware.JWTConfig
	audit        *audit.Logger
	engine       *reconcile.Engine
	agentTypeSvc *service.AgentTypeService
	statusSvc    *service.OperationStatusService
	changeMapUC  *usecase.ChangeAgentTypeGroupUseCase
	stateUC      *usecase.SetAgentTypeStateUseCase
	orgCapUC     *usecase.OrgCapabilityUseCase
}

// ServerDeps holds all dependencies for creating a Server. Manual DI.
type ServerDeps struct {
	EntClient    *ent.Client
	Pool         *pgxpool.Pool
	JWTCfg       middleware.JWTConfig
	Audit        *audit.Logger
	Engine       *reconcile.Engine
	AgentTypeSvc *service.AgentTypeService
	StatusSvc    *service.OperationStatusService
	ChangeMapUC  *usecase.ChangeAgentTypeGroupUseCase
	StateUC      *usecase.SetAgentTypeStateUseCase
	OrgCapUC     *usecase.OrgCapabilityUseCase
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		client:       deps.EntClient,
		pool:         deps.Pool,
		jwtCfg:       deps.JWTCfg,
		audit:        deps.Audit,
		engine:       deps.Engine,
		agentTypeSvc: deps.AgentTypeSvc,
		statusSvc:    deps.StatusSvc,
		changeMapUC:  deps.ChangeMapUC,
		stateUC:      deps.StateUC,
		orgCapUC:     deps.OrgCapUC,
	}
}

// actorFromCtx extracts the authenticated actor from the request context.
func actorFromCtx(c *gin.Context) string {
	if actor := c.GetString("actor_id"); actor != "" {
		return actor
	}
	return "anonymous"
}
