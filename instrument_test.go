package effaudit

import (
	"math"
	"testing"
)

func TestInstrumentedSliceCountsBasicOps(t *testing.T) {
	s := NewInstrumentedSlice([]int{3, 1, 2})

	if got := s.Get(0); got != 3 {
		t.Fatalf("Get(0)=%d want 3", got)
	}
	s.Set(0, 9)
	s.Swap(1, 2)
	s.Append(7, 8)

	counts := s.Counts()
	if counts.Reads != 1+2 {
		t.Fatalf("reads=%d want 3", counts.Reads)
	}
	if counts.Writes != 1+2+2 {
		t.Fatalf("writes=%d want 5", counts.Writes)
	}
	if counts.Swaps != 1 {
		t.Fatalf("swaps=%d want 1", counts.Swaps)
	}
	if counts.Allocations != 2 {
		t.Fatalf("allocations=%d want 2", counts.Allocations)
	}

	want := []int{9, 2, 1, 7, 8}
	got := s.Values()
	if len(got) != len(want) {
		t.Fatalf("values=%v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values=%v want %v", got, want)
		}
	}
}

func TestInstrumentedSliceDoesNotAliasInput(t *testing.T) {
	input := []int{1, 2, 3}
	s := NewInstrumentedSlice(input)
	s.Set(0, 99)
	if input[0] != 1 {
		t.Fatalf("caller's slice mutated: %v", input)
	}
}

func TestIndexOfWorstCaseAttribution(t *testing.T) {
	s := NewInstrumentedSlice([]int{5, 6, 7, 8})
	// Early hit still attributes a full scan.
	if idx := s.IndexOf(func(v int) bool { return v == 5 }); idx != 0 {
		t.Fatalf("IndexOf=%d want 0", idx)
	}
	counts := s.Counts()
	if counts.Comparisons != 4 || counts.FunctionCalls != 4 {
		t.Fatalf("attributed comparisons=%d calls=%d, want 4 and 4", counts.Comparisons, counts.FunctionCalls)
	}

	s.ResetCounts()
	if s.Contains(func(v int) bool { return v == 100 }) {
		t.Fatalf("Contains found a missing element")
	}
	if got := s.Counts().Comparisons; got != 4 {
		t.Fatalf("comparisons=%d want 4", got)
	}
}

func TestSortAttribution(t *testing.T) {
	n := 100
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	s := NewInstrumentedSlice(data)
	s.Sort(func(a, b int) bool { return a < b })

	want := int64(math.Ceil(float64(n) * math.Log2(float64(n)+1)))
	if got := s.Counts().Comparisons; got != want {
		t.Fatalf("sort attribution=%d want %d", got, want)
	}
	values := s.Values()
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			t.Fatalf("not sorted at %d: %v", i, values[:i+1])
		}
	}
}

func TestPopAndReverse(t *testing.T) {
	s := NewInstrumentedSlice([]int{1, 2, 3, 4})
	v, ok := s.Pop()
	if !ok || v != 4 {
		t.Fatalf("Pop=%d,%v want 4,true", v, ok)
	}
	s.Reverse()
	if got := s.Counts().Swaps; got != 1 {
		t.Fatalf("reverse of 3 elements should attribute 1 swap, got %d", got)
	}
	if vals := s.Values(); vals[0] != 3 || vals[2] != 1 {
		t.Fatalf("reverse wrong: %v", vals)
	}

	empty := NewInstrumentedSlice([]int{})
	if _, ok := empty.Pop(); ok {
		t.Fatalf("Pop on empty container reported ok")
	}
}

func TestCountingLess(t *testing.T) {
	var counts OperationCounts
	less := CountingLess(&counts, func(a, b int) bool { return a < b })
	if !less(1, 2) || less(2, 1) {
		t.Fatalf("wrapped comparator changed semantics")
	}
	if counts.Comparisons != 2 {
		t.Fatalf("comparisons=%d want 2", counts.Comparisons)
	}
}
