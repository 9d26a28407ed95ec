package effaudit

import (
	"math"
	"testing"
)

func TestCalculateEfficiencyRatioAndWaste(t *testing.T) {
	cls := ClassificationResult{Class: ClassLinearSearch, Confidence: 0.7}
	// Bound for n=1000 is 1000 comparisons; 4000 measured.
	got, err := CalculateEfficiency(cls, 1000, 4000, BoundParams{N: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TheoreticalMinimum != 1000 {
		t.Fatalf("theoretical=%d want 1000", got.TheoreticalMinimum)
	}
	if got.EfficiencyRatio != 25 {
		t.Fatalf("ratio=%f want 25", got.EfficiencyRatio)
	}
	if got.WastedOperations != 3000 {
		t.Fatalf("wasted=%d want 3000", got.WastedOperations)
	}
	if got.OverheadRatio != 4 {
		t.Fatalf("overhead=%f want 4", got.OverheadRatio)
	}
	if !got.TightBound || got.Notation != "Ω(n)" {
		t.Fatalf("bound metadata lost: %+v", got)
	}
}

func TestCalculateEfficiencyCapsAtHundred(t *testing.T) {
	cls := ClassificationResult{Class: ClassLinearSearch, Confidence: 0.9}
	// Fewer measured ops than the bound: attribution undercounted, cap at 100.
	got, err := CalculateEfficiency(cls, 1000, 500, BoundParams{N: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EfficiencyRatio != 100 {
		t.Fatalf("ratio=%f want capped 100", got.EfficiencyRatio)
	}
	if got.WastedOperations != 0 {
		t.Fatalf("wasted=%d want 0", got.WastedOperations)
	}
}

func TestCalculateEfficiencyZeroActualOps(t *testing.T) {
	cls := ClassificationResult{Class: ClassComparisonSort}
	got, err := CalculateEfficiency(cls, 100, 0, BoundParams{N: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.EfficiencyRatio != 0 {
		t.Fatalf("ratio=%f want 0", got.EfficiencyRatio)
	}
	if !math.IsInf(got.OverheadRatio, 1) {
		t.Fatalf("overhead=%f want +Inf", got.OverheadRatio)
	}
}

func TestCalculateEfficiencyZeroTheoretical(t *testing.T) {
	cls := ClassificationResult{Class: ClassLinearSearch}
	// n=1 clamps the bound to zero; overhead is infinite, no crash.
	got, err := CalculateEfficiency(cls, 1, 10, BoundParams{N: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TheoreticalMinimum != 0 {
		t.Fatalf("theoretical=%d want 0", got.TheoreticalMinimum)
	}
	if !math.IsInf(got.OverheadRatio, 1) {
		t.Fatalf("overhead=%f want +Inf", got.OverheadRatio)
	}
}

func TestCalculateEfficiencyUnknownClass(t *testing.T) {
	cls := ClassificationResult{Class: ClassUnknown, Confidence: 0.3}
	got, err := CalculateEfficiency(cls, 500, 1234, BoundParams{N: 500})
	if err != nil {
		t.Fatalf("unknown class must not error: %v", err)
	}
	if got.Class != ClassUnknown || got.TheoreticalMinimum != 0 || got.EfficiencyRatio != 0 {
		t.Fatalf("unexpected unknown-class result: %+v", got)
	}
	if !math.IsInf(got.OverheadRatio, 1) {
		t.Fatalf("overhead=%f want +Inf", got.OverheadRatio)
	}
	if got.WastedOperations != 1234 {
		t.Fatalf("wasted=%d want 1234", got.WastedOperations)
	}
	if got.OptimalAlgorithm != "unable to determine optimal algorithm" {
		t.Fatalf("unexpected optimal marker: %q", got.OptimalAlgorithm)
	}
}

func TestCalculateEfficiencyMissingParamErrors(t *testing.T) {
	cls := ClassificationResult{Class: ClassGraphBFS}
	if _, err := CalculateEfficiency(cls, 100, 500, BoundParams{N: 100}); err == nil {
		t.Fatalf("expected error for missing vertex count")
	}
}

func TestCalculateEfficiencyFromCountsSelectsOpType(t *testing.T) {
	counts := OperationCounts{Comparisons: 2000, Reads: 5000, Writes: 100, Swaps: 50}

	// Comparison-denominated bound reads Comparisons only.
	got, err := CalculateEfficiencyFromCounts(ClassLinearSearch, counts, BoundParams{N: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ActualOperations != 2000 {
		t.Fatalf("actual=%d want 2000 (comparisons only)", got.ActualOperations)
	}

	// Access-denominated bound reads reads+writes.
	got, err = CalculateEfficiencyFromCounts(ClassTreeTraversal, counts, BoundParams{N: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ActualOperations != 5100 {
		t.Fatalf("actual=%d want 5100 (reads+writes)", got.ActualOperations)
	}
}
