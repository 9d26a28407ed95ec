package effaudit

import "time"

// ProblemClass is a canonical algorithmic task category. Every value
// except ClassUnknown has exactly one entry in the bounds registry.
type ProblemClass string

const (
	ClassComparisonSort   ProblemClass = "comparison-sort"
	ClassCountingSort     ProblemClass = "counting-sort"
	ClassBinarySearch     ProblemClass = "binary-search"
	ClassLinearSearch     ProblemClass = "linear-search"
	ClassGraphBFS         ProblemClass = "graph-bfs"
	ClassGraphDFS         ProblemClass = "graph-dfs"
	ClassDijkstra         ProblemClass = "shortest-path-dijkstra"
	ClassStringMatchNaive ProblemClass = "string-match-naive"
	ClassStringMatchKMP   ProblemClass = "string-match-kmp"
	ClassMatrixMultiply   ProblemClass = "matrix-multiply"
	ClassTreeTraversal    ProblemClass = "tree-traversal"
	ClassHashLookup       ProblemClass = "hash-lookup"
	ClassMedianFinding    ProblemClass = "median-finding"
	ClassUnknown          ProblemClass = "unknown"
)

// KnownClasses lists every class that has a registered bound,
// i.e. everything except ClassUnknown.
var KnownClasses = []ProblemClass{
	ClassComparisonSort,
	ClassCountingSort,
	ClassBinarySearch,
	ClassLinearSearch,
	ClassGraphBFS,
	ClassGraphDFS,
	ClassDijkstra,
	ClassStringMatchNaive,
	ClassStringMatchKMP,
	ClassMatrixMultiply,
	ClassTreeTraversal,
	ClassHashLookup,
	ClassMedianFinding,
}

// Valid reports whether c is one of the closed enumeration,
// ClassUnknown included.
func (c ProblemClass) Valid() bool {
	if c == ClassUnknown {
		return true
	}
	for _, k := range KnownClasses {
		if c == k {
			return true
		}
	}
	return false
}

// OperationType is the unit a bound is denominated in.
type OperationType string

const (
	OpComparisons OperationType = "comparisons"
	OpOperations  OperationType = "operations"
	OpAccesses    OperationType = "accesses"
)

// BoundParams carries the named size parameters a bound formula may
// need. Only the subset a class's formula reads has to be populated;
// formulas report a missing required parameter as an error.
type BoundParams struct {
	N int // primary input size
	M int // secondary size (pattern length)
	V int // graph vertices
	E int // graph edges
	K int // value range / bucket count
}

// AlternativeClass is one ranked runner-up from the classifier.
type AlternativeClass struct {
	Class      ProblemClass
	Confidence float64
}

// ClassificationResult is the classifier's final answer for one code
// fragment. Confidence is always in [0,1]; an unknown classification
// carries confidence 0.
type ClassificationResult struct {
	Class        ProblemClass
	Confidence   float64
	Reasoning    string
	Alternatives []AlternativeClass
}

// OperationCounts accumulates the operations observed against an
// instrumented container. All fields are non-negative.
type OperationCounts struct {
	Comparisons   int64
	Swaps         int64
	Reads         int64
	Writes        int64
	Allocations   int64
	FunctionCalls int64
}

// Add merges other into c.
func (c *OperationCounts) Add(other OperationCounts) {
	c.Comparisons += other.Comparisons
	c.Swaps += other.Swaps
	c.Reads += other.Reads
	c.Writes += other.Writes
	c.Allocations += other.Allocations
	c.FunctionCalls += other.FunctionCalls
}

// Accesses returns reads+writes, the unit access-denominated bounds
// are compared against.
func (c OperationCounts) Accesses() int64 {
	return c.Reads + c.Writes
}

// Total returns the sum of every counter, the unit
// operation-denominated bounds are compared against.
func (c OperationCounts) Total() int64 {
	return c.Comparisons + c.Swaps + c.Reads + c.Writes + c.Allocations + c.FunctionCalls
}

// Measurement is one data point from running a fragment at a single
// input size. Elapsed is wall-clock time at nanosecond resolution.
type Measurement struct {
	InputSize int
	Counts    OperationCounts
	Elapsed   time.Duration
}

// EfficiencyResult is the complete outcome of one efficiency audit.
// EfficiencyRatio is capped at 100: a fragment can never beat the
// theoretical optimum, so ratios above 100 indicate a measurement
// artifact. OverheadRatio is +Inf when the theoretical minimum is 0
// and actual operations are nonzero.
type EfficiencyResult struct {
	Class              ProblemClass
	Confidence         float64
	InputSize          int
	TheoreticalMinimum int64
	ActualOperations   int64
	EfficiencyRatio    float64
	WastedOperations   int64
	OverheadRatio      float64
	Notation           string
	OptimalAlgorithm   string
	TightBound         bool
}

// ComplexityEstimate is the result of empirical complexity inference:
// the labeled bucket the fitted log-log slope falls into, the
// confidence assigned to that bucket, and the raw slope itself.
type ComplexityEstimate struct {
	Complexity string
	Confidence float64
	Slope      float64
}
