package effaudit

import (
	"math"
	"sort"
)

// InstrumentedSlice is a thin interception layer around an ordinary
// ordered, mutable, indexable container. Every operation a measured
// fragment performs against it is tallied in an OperationCounts
// accumulator without altering the container's observable behavior.
//
// Scan and sort operations attribute worst-case counts (the layer
// cannot see early exits or the library sort's actual comparison
// trace). Fragments that perform their own comparisons should route
// them through CountingLess for exact counting instead.
//
// An InstrumentedSlice is owned by a single measurement and must not
// be shared across concurrent measurements.
type InstrumentedSlice[T any] struct {
	data   []T
	counts OperationCounts
}

// NewInstrumentedSlice copies initial so the caller's slice is never
// mutated by the fragment under measurement.
func NewInstrumentedSlice[T any](initial []T) *InstrumentedSlice[T] {
	data := make([]T, len(initial))
	copy(data, initial)
	return &InstrumentedSlice[T]{data: data}
}

// Len returns the current element count. Length checks are free.
func (s *InstrumentedSlice[T]) Len() int { return len(s.data) }

// Get returns the element at index i, counted as one read.
func (s *InstrumentedSlice[T]) Get(i int) T {
	s.counts.Reads++
	return s.data[i]
}

// Set stores v at index i, counted as one write.
func (s *InstrumentedSlice[T]) Set(i int, v T) {
	s.counts.Writes++
	s.data[i] = v
}

// Append grows the container, counted as one write and one allocation
// per element appended.
func (s *InstrumentedSlice[T]) Append(vs ...T) {
	s.counts.Writes += int64(len(vs))
	s.counts.Allocations += int64(len(vs))
	s.data = append(s.data, vs...)
}

// Pop removes and returns the last element, counted as one read.
func (s *InstrumentedSlice[T]) Pop() (T, bool) {
	var zero T
	if len(s.data) == 0 {
		return zero, false
	}
	s.counts.Reads++
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, true
}

// Swap exchanges the elements at i and j: one swap, two reads, two
// writes.
func (s *InstrumentedSlice[T]) Swap(i, j int) {
	s.counts.Swaps++
	s.counts.Reads += 2
	s.counts.Writes += 2
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

// IndexOf returns the index of the first element matching eq, or -1.
// The scan attributes one comparison and one function call per
// current element regardless of where it exits: worst-case
// attribution, since a built-in scan's early exit is opaque to an
// interception layer.
func (s *InstrumentedSlice[T]) IndexOf(eq func(T) bool) int {
	n := int64(len(s.data))
	s.counts.Comparisons += n
	s.counts.FunctionCalls += n
	for i, v := range s.data {
		if eq(v) {
			return i
		}
	}
	return -1
}

// Contains reports whether any element matches eq, with the same
// worst-case attribution as IndexOf.
func (s *InstrumentedSlice[T]) Contains(eq func(T) bool) bool {
	return s.IndexOf(eq) >= 0
}

// Sort sorts the container stably using less. The library sort is
// opaque, so the attributed comparison count is the estimate
// ceil(n·log2(n+1)) rather than a true trace.
func (s *InstrumentedSlice[T]) Sort(less func(a, b T) bool) {
	n := len(s.data)
	if n > 0 {
		s.counts.Comparisons += int64(math.Ceil(float64(n) * math.Log2(float64(n)+1)))
	}
	sort.SliceStable(s.data, func(i, j int) bool { return less(s.data[i], s.data[j]) })
}

// Reverse reverses the container in place, attributed as
// floor(n/2) swaps.
func (s *InstrumentedSlice[T]) Reverse() {
	n := len(s.data)
	s.counts.Swaps += int64(n / 2)
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

// Values returns an uncounted snapshot copy of the current contents.
func (s *InstrumentedSlice[T]) Values() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// Counts returns the operations observed so far.
func (s *InstrumentedSlice[T]) Counts() OperationCounts { return s.counts }

// ResetCounts zeroes the accumulator without touching the data.
func (s *InstrumentedSlice[T]) ResetCounts() { s.counts = OperationCounts{} }

// CountingLess wraps a comparator so every invocation is counted as
// one comparison in the supplied accumulator. This is the precise
// counting path: fragments that do their own comparing get exact
// counts instead of the container's worst-case attributions.
func CountingLess[T any](counts *OperationCounts, less func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		counts.Comparisons++
		return less(a, b)
	}
}
