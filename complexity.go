package effaudit

import "math"

// complexityBuckets maps a fitted log-log slope to a labeled
// asymptotic class. Buckets are checked in order; the first upper
// bound the slope falls under wins. Confidences reflect how well the
// slope ranges separate in practice: the O(n log n) and O(n²) bands
// blur into their neighbors sooner than the O(1) and O(n) bands do.
var complexityBuckets = []struct {
	maxSlope   float64
	label      string
	confidence float64
}{
	{0.15, "O(1)", 0.8},
	{0.5, "O(log n)", 0.7},
	{1.15, "O(n)", 0.8},
	{1.6, "O(n log n)", 0.7},
	{2.3, "O(n²)", 0.7},
	{3.3, "O(n³)", 0.6},
}

// InferComplexity estimates a fragment's asymptotic growth from
// repeated measurements by ordinary least squares on
// log(ops) = k·log(n) + c. At least three usable points (positive
// size, positive operation count) are required; anything less yields
// unknown with confidence 0.
func InferComplexity(measurements []Measurement) ComplexityEstimate {
	var xs, ys []float64
	for _, m := range measurements {
		ops := m.Counts.Total()
		if m.InputSize <= 0 || ops <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(m.InputSize)))
		ys = append(ys, math.Log(float64(ops)))
	}
	if len(xs) < 3 {
		return ComplexityEstimate{Complexity: "unknown"}
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		// All points at the same input size; no slope to fit.
		return ComplexityEstimate{Complexity: "unknown"}
	}
	slope := (n*sumXY - sumX*sumY) / denom

	for _, b := range complexityBuckets {
		if slope < b.maxSlope {
			return ComplexityEstimate{Complexity: b.label, Confidence: b.confidence, Slope: slope}
		}
	}
	return ComplexityEstimate{Complexity: "O(2^n) or worse", Confidence: 0.5, Slope: slope}
}
