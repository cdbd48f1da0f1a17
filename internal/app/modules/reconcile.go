package modules

import (
	"context"

	"github.com/riverqueue/river"

	"dir-steward.io/steward/internal/api/handlers"
	"dir-steward.io/steward/internal/jobs"
	"dir-steward.io/steward/internal/reconcile"
	"dir-steward.io/steward/internal/service"
	"dir-steward.io/steward/internal/store"
)

// ReconcileModule wires the reconciliation engine and its River workers.
type ReconcileModule struct {
	infra     *Infrastructure
	engine    *reconcile.Engine
	userSvc   *service.UserService
	statusSvc *service.OperationStatusService
}

// NewReconcileModule creates the reconcile module with explicit constructor wiring.
func NewReconcileModule(infra *Infrastructure) *ReconcileModule {
	cfg := infra.Config.Reconciler
	policy := reconcile.Policy{
		BulkSuccessThreshold:   cfg.BulkSuccessThreshold,
		DriftWinner:            cfg.DriftWinner,
		UserConcurrency:        cfg.UserConcurrency,
		RequireNonEmptyDesired: cfg.RequireNonEmptyDesired,
	}

	statusSvc := service.NewOperationStatusService(infra.EntClient)
	userSvc := service.NewUserService(infra.EntClient)
	engine := reconcile.NewEngine(
		store.NewEntAssignmentStore(infra.EntClient),
		infra.Directory,
		service.NewAgentTypeService(infra.EntClient),
		userSvc,
		policy,
	).WithStatusReporter(statusSvc).
		WithAuditLogger(infra.AuditLogger).
		WithWorkerPool(infra.Pools.Directory)

	return &ReconcileModule{
		infra:     infra,
		engine:    engine,
		userSvc:   userSvc,
		statusSvc: statusSvc,
	}
}

func (m *ReconcileModule) Name() string { return "reconcile" }

func (m *ReconcileModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Engine = m.engine
	deps.StatusSvc = m.statusSvc
}

func (m *ReconcileModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewMappingChangeWorker(m.infra.EntClient, m.engine))
	river.AddWorker(workers, jobs.NewCapabilityGrantAllWorker(m.infra.EntClient, m.engine))
	river.AddWorker(workers, jobs.NewCapabilityRevokeAllWorker(m.infra.EntClient, m.engine))
	river.AddWorker(workers, jobs.NewDriftSweepWorker(m.infra.EntClient, m.userSvc, m.engine))
}

func (m *ReconcileModule) Shutdown(context.Context) error { return nil }
