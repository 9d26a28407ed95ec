package effaudit

import (
	"fmt"
	"math"
)

// CalculateEfficiency combines a classification, a bound and an actual
// operation count into the full audit result. The error return covers
// usage errors only (a formula missing a required size parameter);
// degenerate inputs and unknown classes always produce a complete,
// well-typed result.
func CalculateEfficiency(cls ClassificationResult, inputSize int, actualOps int64, params BoundParams) (EfficiencyResult, error) {
	bound, ok := GetBound(cls.Class)
	if !ok {
		return unknownEfficiencyResult(cls, inputSize, actualOps), nil
	}

	minOps, err := TheoreticalMinimum(cls.Class, params)
	if err != nil {
		return EfficiencyResult{}, fmt.Errorf("calculating efficiency: %w", err)
	}
	if math.IsInf(minOps, 1) {
		return unknownEfficiencyResult(cls, inputSize, actualOps), nil
	}

	theoretical := int64(math.Ceil(minOps))
	result := EfficiencyResult{
		Class:              cls.Class,
		Confidence:         cls.Confidence,
		InputSize:          inputSize,
		TheoreticalMinimum: theoretical,
		ActualOperations:   actualOps,
		Notation:           bound.Notation,
		OptimalAlgorithm:   bound.Optimal,
		TightBound:         bound.Tight,
	}

	// Division-by-zero guard: zero measured operations is a
	// measurement artifact, reported as 0% efficient with infinite
	// overhead rather than a crash.
	if actualOps <= 0 {
		result.OverheadRatio = math.Inf(1)
		return result, nil
	}

	ratio := float64(theoretical) / float64(actualOps) * 100
	if ratio > 100 {
		// A fragment can never beat the optimum; past 100 means the
		// count was attributed, not exact.
		ratio = 100
	}
	result.EfficiencyRatio = ratio

	if wasted := actualOps - theoretical; wasted > 0 {
		result.WastedOperations = wasted
	}

	if theoretical == 0 {
		result.OverheadRatio = math.Inf(1)
	} else {
		result.OverheadRatio = float64(actualOps) / float64(theoretical)
	}
	return result, nil
}

// CalculateEfficiencyFromCounts selects the raw counter(s) matching
// the bound's declared operation type and audits against those:
// comparison bounds read Comparisons alone, access bounds read
// reads+writes, operation bounds read the full sum.
func CalculateEfficiencyFromCounts(class ProblemClass, counts OperationCounts, params BoundParams) (EfficiencyResult, error) {
	cls := ClassificationResult{Class: class, Confidence: 1}
	return CalculateEfficiency(cls, params.N, selectActualOps(class, counts), params)
}

// selectActualOps picks the counter(s) the class's bound is stated
// over. Classes without a bound fall back to the full sum.
func selectActualOps(class ProblemClass, counts OperationCounts) int64 {
	bound, ok := GetBound(class)
	if !ok {
		return counts.Total()
	}
	switch bound.OpType {
	case OpComparisons:
		return counts.Comparisons
	case OpAccesses:
		return counts.Accesses()
	default:
		return counts.Total()
	}
}

// unknownEfficiencyResult covers classes with no registered bound:
// 0 theoretical, 0% efficiency, infinite overhead, never an error.
func unknownEfficiencyResult(cls ClassificationResult, inputSize int, actualOps int64) EfficiencyResult {
	wasted := actualOps
	if wasted < 0 {
		wasted = 0
	}
	return EfficiencyResult{
		Class:            ClassUnknown,
		Confidence:       cls.Confidence,
		InputSize:        inputSize,
		ActualOperations: actualOps,
		WastedOperations: wasted,
		OverheadRatio:    math.Inf(1),
		OptimalAlgorithm: OptimalAlgorithm(ClassUnknown),
	}
}
