package effaudit

import (
	"fmt"
	"math"
	"strings"
)

// Citation identifies the published result a bound is taken from.
// Authors hold surnames only; an empty list marks a folklore bound.
type Citation struct {
	Authors []string
	Title   string
	Venue   string
	Year    int
	Theorem string
}

// TheoreticalBound is one immutable registry entry: the minimum
// operation count any correct algorithm must pay for a problem class,
// the unit that count is denominated in, and where the result comes
// from. Tight means an algorithm achieving the bound is known, not
// merely that no faster one has been found.
type TheoreticalBound struct {
	Class       ProblemClass
	Notation    string
	Formula     func(BoundParams) (float64, error)
	OpType      OperationType
	Citation    Citation
	Tight       bool
	Assumptions []string
	Optimal     string
}

// The registry is built once at init and never mutated, so it is safe
// to share across any number of goroutines without locking.
var boundsRegistry = map[ProblemClass]TheoreticalBound{
	ClassComparisonSort: {
		Class:    ClassComparisonSort,
		Notation: "Ω(n log n)",
		Formula:  comparisonSortBound,
		OpType:   OpComparisons,
		Citation: Citation{
			Authors: []string{"Knuth"},
			Title:   "The Art of Computer Programming, Volume 3: Sorting and Searching",
			Venue:   "Addison-Wesley",
			Year:    1973,
			Theorem: "Section 5.3.1",
		},
		Tight:       true,
		Assumptions: []string{"comparison-based only", "worst case over all input permutations"},
		Optimal:     "merge sort (or any n log n comparison sort)",
	},
	ClassCountingSort: {
		Class:    ClassCountingSort,
		Notation: "Ω(n + k)",
		Formula:  countingSortBound,
		OpType:   OpOperations,
		Citation: Citation{
			Authors: []string{"Cormen", "Leiserson", "Rivest", "Stein"},
			Title:   "Introduction to Algorithms",
			Venue:   "MIT Press",
			Year:    2009,
			Theorem: "Section 8.2",
		},
		Tight:       true,
		Assumptions: []string{"keys are integers in a known range of size k"},
		Optimal:     "counting sort",
	},
	ClassBinarySearch: {
		Class:    ClassBinarySearch,
		Notation: "Ω(log n)",
		Formula:  binarySearchBound,
		OpType:   OpComparisons,
		Citation: Citation{
			Authors: []string{"Knuth"},
			Title:   "The Art of Computer Programming, Volume 3: Sorting and Searching",
			Venue:   "Addison-Wesley",
			Year:    1973,
			Theorem: "Section 6.2.1",
		},
		Tight:       true,
		Assumptions: []string{"input is sorted", "comparison-based only"},
		Optimal:     "binary search",
	},
	ClassLinearSearch: {
		Class:    ClassLinearSearch,
		Notation: "Ω(n)",
		Formula:  linearSearchBound,
		OpType:   OpComparisons,
		Citation: Citation{
			Title: "Folklore adversary argument for unordered search",
		},
		Tight:       true,
		Assumptions: []string{"input is unordered", "every element must be inspectable"},
		Optimal:     "linear scan",
	},
	ClassGraphBFS: {
		Class:    ClassGraphBFS,
		Notation: "Ω(V + E)",
		Formula:  graphTraversalBound,
		OpType:   OpAccesses,
		Citation: Citation{
			Authors: []string{"Cormen", "Leiserson", "Rivest", "Stein"},
			Title:   "Introduction to Algorithms",
			Venue:   "MIT Press",
			Year:    2009,
			Theorem: "Section 22.2",
		},
		Tight:       true,
		Assumptions: []string{"adjacency-list representation", "every vertex and edge must be examined"},
		Optimal:     "breadth-first search with a FIFO queue",
	},
	ClassGraphDFS: {
		Class:    ClassGraphDFS,
		Notation: "Ω(V + E)",
		Formula:  graphTraversalBound,
		OpType:   OpAccesses,
		Citation: Citation{
			Authors: []string{"Tarjan"},
			Title:   "Depth-first search and linear graph algorithms",
			Venue:   "SIAM Journal on Computing",
			Year:    1972,
		},
		Tight:       true,
		Assumptions: []string{"adjacency-list representation", "every vertex and edge must be examined"},
		Optimal:     "depth-first search with an explicit stack or recursion",
	},
	ClassDijkstra: {
		Class:    ClassDijkstra,
		Notation: "Ω((V + E) log V)",
		Formula:  dijkstraBound,
		OpType:   OpOperations,
		Citation: Citation{
			Authors: []string{"Dijkstra"},
			Title:   "A note on two problems in connexion with graphs",
			Venue:   "Numerische Mathematik",
			Year:    1959,
		},
		Tight:       true,
		Assumptions: []string{"non-negative edge weights", "binary-heap priority queue cost model"},
		Optimal:     "Dijkstra's algorithm with a binary heap",
	},
	ClassStringMatchNaive: {
		Class:    ClassStringMatchNaive,
		Notation: "Ω(n·m)",
		Formula:  naiveMatchBound,
		OpType:   OpComparisons,
		Citation: Citation{
			Title: "Folklore worst case for sliding-window matching",
		},
		Tight:       false,
		Assumptions: []string{"window restarted from scratch on each mismatch", "no closed tight form is known"},
		Optimal:     "naive sliding-window comparison",
	},
	ClassStringMatchKMP: {
		Class:    ClassStringMatchKMP,
		Notation: "Ω(n + m)",
		Formula:  kmpMatchBound,
		OpType:   OpComparisons,
		Citation: Citation{
			Authors: []string{"Knuth", "Morris", "Pratt"},
			Title:   "Fast pattern matching in strings",
			Venue:   "SIAM Journal on Computing",
			Year:    1977,
		},
		Tight:       true,
		Assumptions: []string{"failure function precomputed over the pattern"},
		Optimal:     "Knuth-Morris-Pratt",
	},
	ClassMatrixMultiply: {
		Class:    ClassMatrixMultiply,
		Notation: "Ω(n²)",
		Formula:  matrixMultiplyBound,
		OpType:   OpOperations,
		Citation: Citation{
			Title: "Output-size lower bound for dense matrix product",
		},
		Tight:       false,
		Assumptions: []string{"every output entry must be written", "true exponent of matrix multiplication is open"},
		Optimal:     "unknown; best published exponent is below 2.372",
	},
	ClassTreeTraversal: {
		Class:    ClassTreeTraversal,
		Notation: "Ω(n)",
		Formula:  treeTraversalBound,
		OpType:   OpAccesses,
		Citation: Citation{
			Authors: []string{"Cormen", "Leiserson", "Rivest", "Stein"},
			Title:   "Introduction to Algorithms",
			Venue:   "MIT Press",
			Year:    2009,
			Theorem: "Section 12.1",
		},
		Tight:       true,
		Assumptions: []string{"every node must be visited"},
		Optimal:     "any depth-first or breadth-first traversal",
	},
	ClassHashLookup: {
		Class:    ClassHashLookup,
		Notation: "Ω(1)",
		Formula:  hashLookupBound,
		OpType:   OpAccesses,
		Citation: Citation{
			Authors: []string{"Knuth"},
			Title:   "The Art of Computer Programming, Volume 3: Sorting and Searching",
			Venue:   "Addison-Wesley",
			Year:    1973,
			Theorem: "Section 6.4",
		},
		Tight:       true,
		Assumptions: []string{"amortized expected cost under uniform hashing"},
		Optimal:     "hash table probe",
	},
	ClassMedianFinding: {
		Class:    ClassMedianFinding,
		Notation: "Ω(n)",
		Formula:  medianFindingBound,
		OpType:   OpComparisons,
		Citation: Citation{
			Authors: []string{"Blum", "Floyd", "Pratt", "Rivest", "Tarjan"},
			Title:   "Time bounds for selection",
			Venue:   "Journal of Computer and System Sciences",
			Year:    1973,
		},
		Tight:       false,
		Assumptions: []string{"comparison-based only", "the exact constant is still open"},
		Optimal:     "median-of-medians selection",
	},
}

// GetBound returns the registry entry for a class, if one exists.
// ClassUnknown (and anything outside the enumeration) has no entry.
func GetBound(class ProblemClass) (TheoreticalBound, bool) {
	b, ok := boundsRegistry[class]
	return b, ok
}

// TheoreticalMinimum evaluates the class's bound formula at the given
// parameters. Classes without a registered bound yield +Inf. Results
// are clamped to be non-negative: the sort bound in particular goes
// negative for small n.
func TheoreticalMinimum(class ProblemClass, p BoundParams) (float64, error) {
	b, ok := boundsRegistry[class]
	if !ok {
		return math.Inf(1), nil
	}
	if p.N < 0 {
		return 0, fmt.Errorf("bound %s: negative input size n=%d", class, p.N)
	}
	v, err := b.Formula(p)
	if err != nil {
		return 0, fmt.Errorf("bound %s: %w", class, err)
	}
	if v < 0 {
		v = 0
	}
	return v, nil
}

// OptimalAlgorithm names a known bound-achieving algorithm for the
// class, or an explicit inability marker for unregistered classes.
func OptimalAlgorithm(class ProblemClass) string {
	if b, ok := boundsRegistry[class]; ok {
		return b.Optimal
	}
	return "unable to determine optimal algorithm"
}

// IsTightBound reports whether the class's bound is known to be
// achievable, not just a lower bound.
func IsTightBound(class ProblemClass) bool {
	b, ok := boundsRegistry[class]
	return ok && b.Tight
}

// FormatCitation renders a citation for display. Folklore entries
// (zero authors) render as the bare title; three or more authors are
// truncated to "First et al.".
func FormatCitation(c Citation) string {
	if len(c.Authors) == 0 {
		return c.Title
	}

	var authors string
	switch len(c.Authors) {
	case 1:
		authors = c.Authors[0]
	case 2:
		authors = c.Authors[0] + " and " + c.Authors[1]
	default:
		authors = c.Authors[0] + " et al."
	}

	var b strings.Builder
	b.WriteString(authors)
	b.WriteString(", \"")
	b.WriteString(c.Title)
	b.WriteString("\"")
	if c.Venue != "" {
		b.WriteString(", ")
		b.WriteString(c.Venue)
	}
	if c.Year != 0 {
		fmt.Fprintf(&b, ", %d", c.Year)
	}
	if c.Theorem != "" {
		fmt.Fprintf(&b, " (%s)", c.Theorem)
	}
	return b.String()
}

// --- formulas ---
//
// Per-formula clamps: n <= 1 yields 0 everywhere except the constant
// hash-lookup bound and binary search at n = 1, where one probe is
// still the minimum work to confirm presence or absence.

func comparisonSortBound(p BoundParams) (float64, error) {
	if p.N <= 1 {
		return 0, nil
	}
	n := float64(p.N)
	return n*math.Log2(n) - 1.44*n, nil
}

func countingSortBound(p BoundParams) (float64, error) {
	if p.K <= 0 {
		return 0, fmt.Errorf("missing required parameter k (range size)")
	}
	if p.N <= 1 {
		return 0, nil
	}
	return float64(p.N + p.K), nil
}

func binarySearchBound(p BoundParams) (float64, error) {
	if p.N <= 0 {
		return 0, nil
	}
	if p.N == 1 {
		return 1, nil
	}
	return math.Ceil(math.Log2(float64(p.N))), nil
}

func linearSearchBound(p BoundParams) (float64, error) {
	if p.N <= 1 {
		return 0, nil
	}
	return float64(p.N), nil
}

func graphTraversalBound(p BoundParams) (float64, error) {
	if p.V <= 0 {
		return 0, fmt.Errorf("missing required parameter v (vertex count)")
	}
	if p.E < 0 {
		return 0, fmt.Errorf("negative parameter e (edge count)")
	}
	return float64(p.V + p.E), nil
}

func dijkstraBound(p BoundParams) (float64, error) {
	if p.V <= 0 {
		return 0, fmt.Errorf("missing required parameter v (vertex count)")
	}
	if p.E < 0 {
		return 0, fmt.Errorf("negative parameter e (edge count)")
	}
	if p.V == 1 {
		return 0, nil
	}
	return float64(p.V+p.E) * math.Log2(float64(p.V)), nil
}

func naiveMatchBound(p BoundParams) (float64, error) {
	if p.M <= 0 {
		return 0, fmt.Errorf("missing required parameter m (pattern length)")
	}
	if p.N <= 1 {
		return 0, nil
	}
	return float64(p.N) * float64(p.M), nil
}

func kmpMatchBound(p BoundParams) (float64, error) {
	if p.M <= 0 {
		return 0, fmt.Errorf("missing required parameter m (pattern length)")
	}
	if p.N <= 1 {
		return 0, nil
	}
	return float64(p.N + p.M), nil
}

func matrixMultiplyBound(p BoundParams) (float64, error) {
	if p.N <= 1 {
		return 0, nil
	}
	n := float64(p.N)
	return n * n, nil
}

func treeTraversalBound(p BoundParams) (float64, error) {
	if p.N <= 1 {
		return 0, nil
	}
	return float64(p.N), nil
}

func hashLookupBound(p BoundParams) (float64, error) {
	return 1, nil
}

func medianFindingBound(p BoundParams) (float64, error) {
	if p.N <= 1 {
		return 0, nil
	}
	return float64(p.N), nil
}
