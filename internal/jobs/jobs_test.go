package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestJobKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args river.JobArgs
		want string
	}{
		{MappingChangeArgs{}, "capability_mapping_change"},
		{CapabilityGrantAllArgs{}, "capability_grant_all"},
		{CapabilityRevokeAllArgs{}, "capability_revoke_all"},
		{DriftSweepArgs{}, "drift_sweep"},
	}
	for _, tt := range tests {
		if got := tt.args.Kind(); got != tt.want {
			t.Fatalf("Kind() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventJobsAreUniquePerEvent(t *testing.T) {
	t.Parallel()

	for _, args := range []river.JobArgsWithInsertOpts{
		MappingChangeArgs{},
		CapabilityGrantAllArgs{},
		CapabilityRevokeAllArgs{},
	} {
		opts := args.InsertOpts()
		if opts.Queue != "reconciliation" {
			t.Fatalf("%s: Queue = %q, want %q", args.(river.JobArgs).Kind(), opts.Queue, "reconciliation")
		}
		if opts.MaxAttempts != 3 {
			t.Fatalf("%s: MaxAttempts = %d, want 3", args.(river.JobArgs).Kind(), opts.MaxAttempts)
		}
		if !opts.UniqueOpts.ByArgs || !opts.UniqueOpts.ByQueue {
			t.Fatalf("%s: jobs must be unique by args and queue", args.(river.JobArgs).Kind())
		}
	}
}

func TestDriftSweepInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (DriftSweepArgs{}).InsertOpts()
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Hour)
	}
}

func TestDriftSweepWorkerWorkUninitialized(t *testing.T) {
	t.Parallel()

	var w *DriftSweepWorker
	if err := w.Work(context.Background(), &river.Job[DriftSweepArgs]{}); err == nil {
		t.Fatal("expected error from uninitialized worker")
	}
}
