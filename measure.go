package effaudit

import "time"

// DefaultSizeLadder is the input-size ladder MeasureAtSizes walks when
// the caller does not override it.
var DefaultSizeLadder = []int{100, 500, 1000, 5000, 10000}

// MeasuredRun is the outcome of running one fragment once under
// instrumentation.
type MeasuredRun[R any] struct {
	Counts      OperationCounts
	ReturnValue R
	Elapsed     time.Duration
}

// MeasureFunction runs fn against an instrumented copy of input and
// returns the operations it performed plus wall-clock duration.
//
// fn receives the container and a separate shared accumulator for
// operations the fragment counts itself (typically via CountingLess).
// The two are summed at the end; they tally disjoint events, so
// nothing is double-counted.
func MeasureFunction[T, R any](fn func(s *InstrumentedSlice[T], extra *OperationCounts) R, input []T) MeasuredRun[R] {
	s := NewInstrumentedSlice(input)
	var extra OperationCounts

	start := time.Now()
	ret := fn(s, &extra)
	elapsed := time.Since(start)

	counts := s.Counts()
	counts.Add(extra)
	return MeasuredRun[R]{Counts: counts, ReturnValue: ret, Elapsed: elapsed}
}

// MeasureAtSizes runs the same fragment across a ladder of input
// sizes, generating a fresh input per size, and returns one
// Measurement per rung. A nil or empty sizes slice selects
// DefaultSizeLadder. Each rung owns its own counters; nothing is
// shared across rungs.
func MeasureAtSizes[T, R any](generate func(n int) []T, fn func(s *InstrumentedSlice[T], extra *OperationCounts) R, sizes []int) []Measurement {
	if len(sizes) == 0 {
		sizes = DefaultSizeLadder
	}
	measurements := make([]Measurement, 0, len(sizes))
	for _, n := range sizes {
		run := MeasureFunction(fn, generate(n))
		measurements = append(measurements, Measurement{
			InputSize: n,
			Counts:    run.Counts,
			Elapsed:   run.Elapsed,
		})
	}
	return measurements
}
