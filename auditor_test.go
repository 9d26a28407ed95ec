package effaudit

import (
	"context"
	"testing"
)

func TestNewOracleProviderSwitch(t *testing.T) {
	if o := NewOracle(Config{OracleProvider: "none"}); o != nil {
		t.Fatalf("provider none must yield no oracle")
	}
	if _, ok := NewOracle(Config{OracleProvider: "anthropic", AnthropicAPIKey: "k"}).(*AnthropicOracle); !ok {
		t.Fatalf("expected anthropic oracle")
	}
	if _, ok := NewOracle(Config{OracleProvider: "openai", OpenAIAPIKey: "k"}).(*OpenAIOracle); !ok {
		t.Fatalf("expected openai oracle")
	}
}

func TestAnalyzeEfficiencyWithPinnedClass(t *testing.T) {
	auditor := New(Config{OracleProvider: "none"})

	got, err := auditor.AnalyzeEfficiency(context.Background(), AuditRequest{
		Class:     ClassLinearSearch,
		InputSize: 1000,
		Counts:    OperationCounts{Comparisons: 4000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Class != ClassLinearSearch {
		t.Fatalf("pinned class ignored, got %s", got.Class)
	}
	// Params.N defaults to InputSize: bound is 1000, measured 4000.
	if got.TheoreticalMinimum != 1000 || got.EfficiencyRatio != 25 {
		t.Fatalf("unexpected audit: %+v", got)
	}
}

func TestAnalyzeEfficiencyClassifiesWhenUnpinned(t *testing.T) {
	auditor := New(Config{OracleProvider: "none"})

	got, err := auditor.AnalyzeEfficiency(context.Background(), AuditRequest{
		Code:      bubbleSortCode,
		InputSize: 1000,
		Counts:    OperationCounts{Comparisons: 499500, Swaps: 120000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Class != ClassComparisonSort {
		t.Fatalf("classification not invoked, got %s", got.Class)
	}
	if got.Confidence != heuristicConfidence {
		t.Fatalf("confidence=%f want %f", got.Confidence, heuristicConfidence)
	}
	if got.ActualOperations != 499500 {
		t.Fatalf("comparison bound must count comparisons only, got %d", got.ActualOperations)
	}
}

func TestSelfValidate(t *testing.T) {
	auditor := New(Config{OracleProvider: "none", BenchmarkConcurrency: 8})
	summary := auditor.SelfValidate(context.Background())
	if summary.Total != 100 {
		t.Fatalf("total=%d want 100", summary.Total)
	}
	if summary.Accuracy < 0.95 {
		t.Fatalf("accuracy=%f want >= 0.95", summary.Accuracy)
	}
}
