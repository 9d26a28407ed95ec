package effaudit

import (
	"math"
	"testing"
)

func mkMeasurements(points [][2]int64) []Measurement {
	out := make([]Measurement, len(points))
	for i, p := range points {
		out[i] = Measurement{InputSize: int(p[0]), Counts: OperationCounts{Comparisons: p[1]}}
	}
	return out
}

func TestInferComplexityLinear(t *testing.T) {
	got := InferComplexity(mkMeasurements([][2]int64{
		{100, 100}, {1000, 1000}, {10000, 10000},
	}))
	if got.Complexity != "O(n)" {
		t.Fatalf("got %s (slope %f), want O(n)", got.Complexity, got.Slope)
	}
	if math.Abs(got.Slope-1) > 0.01 {
		t.Fatalf("slope=%f want ~1", got.Slope)
	}
}

func TestInferComplexityQuadratic(t *testing.T) {
	got := InferComplexity(mkMeasurements([][2]int64{
		{100, 10000}, {1000, 1000000}, {10000, 100000000},
	}))
	if got.Complexity != "O(n²)" {
		t.Fatalf("got %s (slope %f), want O(n²)", got.Complexity, got.Slope)
	}
}

func TestInferComplexityConstant(t *testing.T) {
	got := InferComplexity(mkMeasurements([][2]int64{
		{100, 3}, {1000, 3}, {10000, 3},
	}))
	if got.Complexity != "O(1)" {
		t.Fatalf("got %s (slope %f), want O(1)", got.Complexity, got.Slope)
	}
}

func TestInferComplexitySlopeBuckets(t *testing.T) {
	// Synthetic power-law data sitting squarely inside each band.
	cases := []struct {
		exponent float64
		want     string
	}{
		{0.3, "O(log n)"},
		{1.3, "O(n log n)"},
		{2.0, "O(n²)"},
		{3.0, "O(n³)"},
	}
	for _, c := range cases {
		points := make([][2]int64, 0, 4)
		for _, n := range []int64{100, 1000, 10000, 100000} {
			points = append(points, [2]int64{n, int64(math.Pow(float64(n), c.exponent))})
		}
		got := InferComplexity(mkMeasurements(points))
		if got.Complexity != c.want {
			t.Fatalf("exponent %.1f: got %s (slope %f), want %s", c.exponent, got.Complexity, got.Slope, c.want)
		}
	}
}

func TestInferComplexityExponential(t *testing.T) {
	got := InferComplexity(mkMeasurements([][2]int64{
		{10, 1024}, {20, 1048576}, {30, 1073741824},
	}))
	if got.Complexity != "O(2^n) or worse" {
		t.Fatalf("got %s (slope %f), want O(2^n) or worse", got.Complexity, got.Slope)
	}
}

func TestInferComplexityInsufficientData(t *testing.T) {
	got := InferComplexity(mkMeasurements([][2]int64{{100, 100}, {1000, 1000}}))
	if got.Complexity != "unknown" || got.Confidence != 0 {
		t.Fatalf("two points must yield unknown, got %+v", got)
	}

	// Zero-size and zero-count rungs are discarded before the fit.
	got = InferComplexity(mkMeasurements([][2]int64{
		{0, 50}, {100, 0}, {100, 100}, {1000, 1000},
	}))
	if got.Complexity != "unknown" {
		t.Fatalf("filtered points must not count toward the minimum, got %+v", got)
	}
}

func TestInferComplexitySameSizeEverywhere(t *testing.T) {
	got := InferComplexity(mkMeasurements([][2]int64{
		{500, 100}, {500, 110}, {500, 90},
	}))
	if got.Complexity != "unknown" {
		t.Fatalf("identical sizes have no slope, got %+v", got)
	}
}
