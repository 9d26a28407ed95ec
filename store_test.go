package effaudit

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreBenchmarkRuns(t *testing.T) {
	store := openTestStore(t)

	first := BenchmarkSummary{Total: 100, Correct: 90, Accuracy: 0.90, MeanConfidence: 0.7,
		Elapsed: 1200 * time.Millisecond, StartedAt: time.Now().Add(-time.Hour)}
	second := BenchmarkSummary{Total: 100, Correct: 95, Accuracy: 0.95, MeanConfidence: 0.72,
		Elapsed: 900 * time.Millisecond, StartedAt: time.Now()}

	if _, err := store.InsertBenchmarkRun(first); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := store.InsertBenchmarkRun(second); err != nil {
		t.Fatalf("insert: %v", err)
	}

	runs, err := store.GetRecentBenchmarkRuns(10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Accuracy != 0.95 {
		t.Fatalf("newest run first: got accuracy %f", runs[0].Accuracy)
	}
	if runs[0].ElapsedMS != 900 {
		t.Fatalf("elapsed_ms=%d want 900", runs[0].ElapsedMS)
	}

	limited, err := store.GetRecentBenchmarkRuns(1)
	if err != nil || len(limited) != 1 {
		t.Fatalf("limit not honored: %d runs, err %v", len(limited), err)
	}
}

func TestStoreAudits(t *testing.T) {
	store := openTestStore(t)

	err := store.InsertAudit(EfficiencyResult{
		Class:              ClassComparisonSort,
		Confidence:         0.7,
		InputSize:          1000,
		TheoreticalMinimum: 8526,
		ActualOperations:   250000,
		EfficiencyRatio:    3.4,
		OverheadRatio:      29.3,
	}, "anthropic", "some-model")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	audits, err := store.GetAuditsByClass(ClassComparisonSort)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(audits) != 1 {
		t.Fatalf("got %d audits, want 1", len(audits))
	}
	got := audits[0]
	if got.ActualOperations != 250000 || got.OracleProvider != "anthropic" {
		t.Fatalf("audit row mangled: %+v", got)
	}

	if audits, _ := store.GetAuditsByClass(ClassGraphBFS); len(audits) != 0 {
		t.Fatalf("unexpected audits for other class")
	}
}

func TestStoreInfiniteOverheadMarker(t *testing.T) {
	store := openTestStore(t)

	err := store.InsertAudit(EfficiencyResult{
		Class:         ClassUnknown,
		OverheadRatio: math.Inf(1),
	}, "", "")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	audits, err := store.GetAuditsByClass(ClassUnknown)
	if err != nil || len(audits) != 1 {
		t.Fatalf("query: %d audits, err %v", len(audits), err)
	}
	if audits[0].OverheadRatio != -1 {
		t.Fatalf("infinite overhead should store as -1, got %f", audits[0].OverheadRatio)
	}
}

func TestStoreAuditsByDateRange(t *testing.T) {
	store := openTestStore(t)

	if err := store.InsertAudit(EfficiencyResult{Class: ClassLinearSearch, OverheadRatio: 2}, "", ""); err != nil {
		t.Fatalf("insert: %v", err)
	}

	now := time.Now().UTC()
	within, err := store.GetAuditsByDateRange(now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(within) != 1 {
		t.Fatalf("got %d audits in window, want 1", len(within))
	}

	outside, err := store.GetAuditsByDateRange(now.Add(-2*time.Hour), now.Add(-time.Hour))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(outside) != 0 {
		t.Fatalf("got %d audits outside window, want 0", len(outside))
	}
}
