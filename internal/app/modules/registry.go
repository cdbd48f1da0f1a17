package modules

import (
	"context"

	"github.com/riverqueue/river"

	"dir-steward.io/steward/internal/api/handlers"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/usecase"
)

// RegistryModule wires the capability registry: agent type CRUD plus the
// use cases that emit mapping-change and state-change events. It must be
// constructed after River is initialized because the use cases enqueue jobs.
type RegistryModule struct {
	agentTypeSvc *service.AgentTypeService
	changeMapUC  *usecase.ChangeAgentTypeGroupUseCase
	stateUC      *usecase.SetAgentTypeStateUseCase
	orgCapUC     *usecase.OrgCapabilityUseCase
}

// NewRegistryModule creates the registry module.
func NewRegistryModule(infra *Infrastructure) *RegistryModule {
	agentTypeSvc := service.NewAgentTypeService(infra.EntClient)

	return &RegistryModule{
		agentTypeSvc: agentTypeSvc,
		changeMapUC: usecase.NewChangeAgentTypeGroupUseCase(
			infra.EntClient, infra.RiverClient, agentTypeSvc, infra.Directory,
		).WithAuditLogger(infra.AuditLogger),
		stateUC: usecase.NewSetAgentTypeStateUseCase(
			infra.EntClient, infra.RiverClient, agentTypeSvc,
		).WithAuditLogger(infra.AuditLogger),
		orgCapUC: usecase.NewOrgCapabilityUseCase(
			infra.EntClient, infra.RiverClient, agentTypeSvc,
		).WithAuditLogger(infra.AuditLogger),
	}
}

func (m *RegistryModule) Name() string { return "registry" }

func (m *RegistryModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.AgentTypeSvc = m.agentTypeSvc
	deps.ChangeMapUC = m.changeMapUC
	deps.StateUC = m.stateUC
	deps.OrgCapUC = m.orgCapUC
}

func (m *RegistryModule) RegisterWorkers(_ *river.Workers) {}

func (m *RegistryModule) Shutdown(context.Context) error { return nil }
