package effaudit

import (
	"context"
	"strings"
	"testing"
)

func TestDetectDrift(t *testing.T) {
	healthy := BenchmarkSummary{Accuracy: 0.95}
	if got := DetectDrift(healthy, nil, 0.80); got != "" {
		t.Fatalf("healthy run flagged: %q", got)
	}

	low := BenchmarkSummary{Accuracy: 0.70}
	if got := DetectDrift(low, nil, 0.80); !strings.Contains(got, "below threshold") {
		t.Fatalf("threshold breach not reported: %q", got)
	}

	previous := &BenchmarkRun{Accuracy: 0.95}
	dropped := BenchmarkSummary{Accuracy: 0.85}
	if got := DetectDrift(dropped, previous, 0.80); !strings.Contains(got, "down from") {
		t.Fatalf("regression vs previous run not reported: %q", got)
	}

	// Within tolerance of the previous run and above the floor.
	steady := BenchmarkSummary{Accuracy: 0.94}
	if got := DetectDrift(steady, previous, 0.80); got != "" {
		t.Fatalf("noise-level dip flagged: %q", got)
	}

	both := BenchmarkSummary{Accuracy: 0.60}
	got := DetectDrift(both, previous, 0.80)
	if !strings.Contains(got, "below threshold") || !strings.Contains(got, "down from") {
		t.Fatalf("expected both problems, got %q", got)
	}
}

func TestRunScheduledValidationWithoutStoreOrNotifier(t *testing.T) {
	cfg := Config{BenchmarkConcurrency: 8, AccuracyThreshold: 0.80}
	summary := RunScheduledValidation(context.Background(), cfg, &Classifier{}, nil, nil)
	if summary.Total != 100 {
		t.Fatalf("total=%d want 100", summary.Total)
	}
}

func TestRunScheduledValidationPersistsRun(t *testing.T) {
	store := openTestStore(t)
	cfg := Config{BenchmarkConcurrency: 8, AccuracyThreshold: 0.80}

	RunScheduledValidation(context.Background(), cfg, &Classifier{}, store, nil)

	runs, err := store.GetRecentBenchmarkRuns(5)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d persisted runs, want 1", len(runs))
	}
	if runs[0].Total != 100 {
		t.Fatalf("persisted total=%d want 100", runs[0].Total)
	}
}
