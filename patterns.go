package effaudit

import (
	"regexp"
	"strings"
)

// CodePatterns holds the surface syntactic cues the heuristic
// pre-classifier works from. Detection is purely local string and
// structure matching; no parsing, no external calls.
type CodePatterns struct {
	HasComparisons bool
	HasGraphTerms  bool
	HasRecursion   bool
	HasLoops       bool
	HasHashAccess  bool
	HasSwaps       bool
	HasQueueOps    bool
	HasStackOps    bool
}

var (
	funcDeclRe = regexp.MustCompile(`\b(?:func|function|def)\s+([A-Za-z_][A-Za-z0-9_]*)`)
	// Closures bound to a name: v := func(...), v = func(...), var v func(...)
	closureDeclRe = regexp.MustCompile(`\b(?:var\s+([A-Za-z_][A-Za-z0-9_]*)\s+func\b|([A-Za-z_][A-Za-z0-9_]*)\s*:?=\s*func\b)`)
	// Parallel-assignment swap: a[i], a[j] = a[j], a[i]
	parallelSwapRe = regexp.MustCompile(`\w+\[[^\]]+\]\s*,\s*\w+\[[^\]]+\]\s*=\s*\w+\[`)
)

// DetectCodePatterns scans a code fragment for the boolean cues the
// heuristic rules consume.
func DetectCodePatterns(code string) CodePatterns {
	lower := strings.ToLower(code)
	return CodePatterns{
		HasComparisons: containsAny(lower, "<", ">", "=="),
		HasGraphTerms:  containsAny(lower, "graph", "vertex", "vertices", "adjacency", "adjacent", "neighbor", "neighbour", "edges"),
		HasRecursion:   detectRecursion(code),
		HasLoops:       containsAny(lower, "for ", "for(", "for_", "while ", "while("),
		HasHashAccess:  containsAny(lower, "map[", "dict[", "hash", "table[", ".get("),
		HasSwaps:       strings.Contains(lower, "swap") || parallelSwapRe.MatchString(code),
		HasQueueOps:    containsAny(lower, "queue", "enqueue", "dequeue", "fifo"),
		HasStackOps:    containsAny(lower, "stack", "push(", "pop("),
	}
}

// detectRecursion reports whether any declared function name reappears
// after its own declaration. Named closures count too; recursive
// helpers inside a function are usually written that way in Go.
// Crude, but it only has to corroborate.
func detectRecursion(code string) bool {
	matches := funcDeclRe.FindAllStringSubmatchIndex(code, -1)
	for _, m := range matches {
		name := code[m[2]:m[3]]
		rest := code[m[3]:]
		if strings.Contains(rest, name+"(") {
			return true
		}
	}
	for _, m := range closureDeclRe.FindAllStringSubmatchIndex(code, -1) {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		name := code[start:end]
		if strings.Contains(code[m[1]:], name+"(") {
			return true
		}
	}
	return false
}

// heuristicClassify proposes a problem class from surface cues. It is
// a fixed, ordered decision list; the first matching rule wins and the
// caller treats any hit as a 0.70-confidence guess, never proof. A
// false return means no rule matched and the oracle should decide.
//
// The BFS and DFS rules require the absence of priority/heap
// vocabulary: every Dijkstra fragment also contains a queue, so
// without the guard the earlier traversal rules would swallow it.
func heuristicClassify(code string, p CodePatterns) (ProblemClass, bool) {
	lower := strings.ToLower(code)

	hasPriority := containsAny(lower, "priority", "heap", "dist[", "distance")
	hasPatternText := strings.Contains(lower, "pattern") && strings.Contains(lower, "text")
	hasFailureFn := containsAny(lower, "failure", "lps", "prefix function", "prefixfunc", "kmp")
	hasMatrix := containsAny(lower, "matrix", "matrices", "[i][j]")
	hasTree := containsAny(lower, "tree", ".left", ".right", "root", "leaf")
	hasSort := containsAny(lower, "sort", "ordered", "ordering")
	hasMidpoint := containsAny(lower, "mid", "middle", "/ 2", "/2", ">> 1", ">>1")
	hasFindVocab := containsAny(lower, "find", "search", "indexof", "index of", "contains", "lookup")
	hasMedianVocab := containsAny(lower, "median", "kth", "k-th", "quickselect", "nth smallest")

	switch {
	case p.HasGraphTerms && p.HasQueueOps && !hasPriority:
		return ClassGraphBFS, true
	case p.HasGraphTerms && (p.HasStackOps || p.HasRecursion) && !hasPriority:
		return ClassGraphDFS, true
	case p.HasGraphTerms && hasPriority:
		return ClassDijkstra, true
	case hasPatternText && hasFailureFn:
		return ClassStringMatchKMP, true
	case hasPatternText:
		return ClassStringMatchNaive, true
	case hasMatrix && strings.Contains(code, "*") && p.HasLoops:
		return ClassMatrixMultiply, true
	case hasTree && p.HasRecursion && !hasSort:
		return ClassTreeTraversal, true
	case p.HasSwaps && p.HasComparisons && p.HasLoops && hasSort:
		return ClassComparisonSort, true
	case hasMidpoint && p.HasComparisons:
		return ClassBinarySearch, true
	case hasFindVocab && p.HasLoops && !p.HasRecursion:
		return ClassLinearSearch, true
	case p.HasHashAccess && !p.HasLoops:
		return ClassHashLookup, true
	case hasMedianVocab:
		return ClassMedianFinding, true
	}
	return ClassUnknown, false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
