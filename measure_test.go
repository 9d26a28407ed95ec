package effaudit

import "testing"

func TestMeasureFunctionSumsContainerAndExtraCounts(t *testing.T) {
	run := MeasureFunction(func(s *InstrumentedSlice[int], extra *OperationCounts) int {
		less := CountingLess(extra, func(a, b int) bool { return a < b })
		best := s.Get(0)
		for i := 1; i < s.Len(); i++ {
			v := s.Get(i)
			if less(v, best) {
				best = v
			}
		}
		return best
	}, []int{4, 2, 9, 1})

	if run.ReturnValue != 1 {
		t.Fatalf("returned %d want 1", run.ReturnValue)
	}
	if run.Counts.Reads != 4 {
		t.Fatalf("reads=%d want 4", run.Counts.Reads)
	}
	if run.Counts.Comparisons != 3 {
		t.Fatalf("comparisons=%d want 3", run.Counts.Comparisons)
	}
}

func TestMeasureAtSizesUsesDefaultLadder(t *testing.T) {
	generate := func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	scan := func(s *InstrumentedSlice[int], extra *OperationCounts) int {
		return s.IndexOf(func(v int) bool { return v == -1 })
	}

	measurements := MeasureAtSizes(generate, scan, nil)
	if len(measurements) != len(DefaultSizeLadder) {
		t.Fatalf("got %d measurements, want %d", len(measurements), len(DefaultSizeLadder))
	}
	for i, m := range measurements {
		if m.InputSize != DefaultSizeLadder[i] {
			t.Fatalf("rung %d has size %d, want %d", i, m.InputSize, DefaultSizeLadder[i])
		}
		// A full scan attributes exactly n comparisons per rung.
		if m.Counts.Comparisons != int64(m.InputSize) {
			t.Fatalf("rung %d comparisons=%d want %d", i, m.Counts.Comparisons, m.InputSize)
		}
	}
}

func TestMeasureAtSizesCustomLadder(t *testing.T) {
	sizes := []int{10, 20}
	measurements := MeasureAtSizes(
		func(n int) []int { return make([]int, n) },
		func(s *InstrumentedSlice[int], extra *OperationCounts) int { return s.Len() },
		sizes,
	)
	if len(measurements) != 2 || measurements[0].InputSize != 10 || measurements[1].InputSize != 20 {
		t.Fatalf("custom ladder not honored: %+v", measurements)
	}
}
