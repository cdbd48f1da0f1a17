// Package app is the composition root. Bootstrap stays orchestration-only.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"dir-steward.io/steward/internal/api/handlers"
	"dir-steward.io/steward/internal/app/modules"
	"dir-steward.io/steward/internal/config"
	"dir-steward.io/steward/internal/infrastructure"
	"dir-steward.io/steward/internal/jobs"
	"dir-steward.io/steward/internal/pkg/worker"
)

// Application holds composed application dependencies.
type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *infrastructure.DatabaseClients
	Pools   *worker.Pools
	Modules []modules.Module
}

// Bootstrap initializes all dependencies using module-oriented manual DI.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	infra, err := modules.NewInfrastructure(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init infrastructure: %w", err)
	}

	reconcileModule := modules.NewReconcileModule(infra)
	baseModules := []modules.Module{reconcileModule}

	workers := river.NewWorkers()
	for _, mod := range baseModules {
		mod.RegisterWorkers(workers)
	}
	if err := infra.InitRiver(workers); err != nil {
		infra.Close()
		return nil, fmt.Errorf("init river workers: %w", err)
	}
	// Background drift sweep: walk every organization and repair divergence
	// between the ledger and the directory. Runs once on startup so a
	// restarted instance converges promptly.
	if infra.RiverClient != nil && cfg.Reconciler.DriftSweepInterval > 0 {
		infra.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(cfg.Reconciler.DriftSweepInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.DriftSweepArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	// The registry module enqueues jobs, so it needs the live River client.
	allModules := append(baseModules, modules.NewRegistryModule(infra))
	serverDeps := modules.NewServerDeps(cfg, infra, allModules)
	server := handlers.NewServer(serverDeps)

	return &Application{
		Config:  cfg,
		Router:  newRouter(cfg, server, serverDeps.JWTCfg.SigningKey),
		DB:      infra.DB,
		Pools:   infra.Pools,
		Modules: allModules,
	}, nil
}
