// Package metrics exposes Prometheus instrumentation for the
// reconciliation engine and the directory client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ReconcilePasses counts single-user reconciliation passes by outcome.
	ReconcilePasses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steward_reconcile_passes_total",
			Help: "Single-user reconciliation passes by outcome.",
		},
		[]string{"outcome"}, // ok, partial, failed, noop
	)

	// DriftRepairs counts drift repairs by direction.
	DriftRepairs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steward_drift_repairs_total",
			Help: "Drift repairs applied, by direction.",
		},
		[]string{"direction"}, // directory, ledger
	)

	// DirectoryCalls counts external directory calls by operation and outcome.
	DirectoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steward_directory_calls_total",
			Help: "External directory calls by operation and outcome.",
		},
		[]string{"op", "outcome"}, // op: group_exists|add|remove|list
	)

	// DirectoryCallDuration observes external directory call latencies.
	DirectoryCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "steward_directory_call_duration_seconds",
			Help:    "External directory call latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)

	// BulkOperations counts org-wide propagation runs by kind and outcome.
	BulkOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "steward_bulk_operations_total",
			Help: "Organization-wide propagation runs by kind and outcome.",
		},
		[]string{"kind", "outcome"}, // kind: grant_all|revoke_all|mapping_change|drift_sweep
	)

	// BulkUserFailures counts per-user failures inside bulk operations.
	BulkUserFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "steward_bulk_user_failures_total",
			Help: "Per-user failures observed inside bulk operations.",
		},
	)
)

// Init registers all collectors with the default registry.
func Init() {
	prometheus.MustRegister(
		ReconcilePasses,
		DriftRepairs,
		DirectoryCalls,
		DirectoryCallDuration,
		BulkOperations,
		BulkUserFailures,
	)
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
