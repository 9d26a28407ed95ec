package effaudit

// Difficulty stratifies the benchmark corpus. Easy cases are textbook
// renditions a surface heuristic should catch; hard cases are the
// disguised or hybrid forms that usually need the oracle.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// BenchmarkCase is one fixed, labeled corpus entry. Code is a
// syntactically valid, compilable fragment.
type BenchmarkCase struct {
	ID          string
	Name        string
	Code        string
	Expected    ProblemClass
	Difficulty  Difficulty
	Description string
}

// BenchmarkCases returns a copy of the full corpus: 10 classes with
// exactly 10 cases each, built once at process start and read-only
// thereafter.
func BenchmarkCases() []BenchmarkCase {
	out := make([]BenchmarkCase, len(benchmarkCorpus))
	copy(out, benchmarkCorpus)
	return out
}

// GetCasesByClass returns the corpus entries labeled with the given
// expected class.
func GetCasesByClass(class ProblemClass) []BenchmarkCase {
	var out []BenchmarkCase
	for _, c := range benchmarkCorpus {
		if c.Expected == class {
			out = append(out, c)
		}
	}
	return out
}

// GetCasesByDifficulty returns the corpus entries at the given
// difficulty level.
func GetCasesByDifficulty(d Difficulty) []BenchmarkCase {
	var out []BenchmarkCase
	for _, c := range benchmarkCorpus {
		if c.Difficulty == d {
			out = append(out, c)
		}
	}
	return out
}

// CorpusStats aggregates the corpus shape; all counts sum to Total.
type CorpusStats struct {
	Total        int
	ByClass      map[ProblemClass]int
	ByDifficulty map[Difficulty]int
}

// GetBenchmarkStats reports the corpus totals.
func GetBenchmarkStats() CorpusStats {
	stats := CorpusStats{
		Total:        len(benchmarkCorpus),
		ByClass:      make(map[ProblemClass]int),
		ByDifficulty: make(map[Difficulty]int),
	}
	for _, c := range benchmarkCorpus {
		stats.ByClass[c.Expected]++
		stats.ByDifficulty[c.Difficulty]++
	}
	return stats
}

var benchmarkCorpus = []BenchmarkCase{
	// --- comparison-sort ---
	{
		ID: "comparison-sort-01", Name: "Bubble sort", Expected: ClassComparisonSort, Difficulty: DifficultyEasy,
		Description: "Classic adjacent-swap bubble sort over an int slice.",
		Code: `func bubbleSort(a []int) {
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(a)-i-1; j++ {
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
			}
		}
	}
}`,
	},
	{
		ID: "comparison-sort-02", Name: "Selection sort", Expected: ClassComparisonSort, Difficulty: DifficultyEasy,
		Description: "Selection sort swapping the running minimum into place.",
		Code: `func selectionSort(a []int) {
	for i := 0; i < len(a)-1; i++ {
		min := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[min] {
				min = j
			}
		}
		a[i], a[min] = a[min], a[i]
	}
}`,
	},
	{
		ID: "comparison-sort-03", Name: "Insertion sort", Expected: ClassComparisonSort, Difficulty: DifficultyEasy,
		Description: "Insertion sort implemented with adjacent swaps.",
		Code: `func insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}`,
	},
	{
		ID: "comparison-sort-04", Name: "Cocktail sort", Expected: ClassComparisonSort, Difficulty: DifficultyEasy,
		Description: "Bidirectional bubble sort sweeping both ways per pass.",
		Code: `func cocktailSort(a []int) {
	swapped := true
	for swapped {
		swapped = false
		for i := 0; i < len(a)-1; i++ {
			if a[i] > a[i+1] {
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
		for i := len(a) - 2; i >= 0; i-- {
			if a[i] > a[i+1] {
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
	}
}`,
	},
	{
		ID: "comparison-sort-05", Name: "Gnome sort", Expected: ClassComparisonSort, Difficulty: DifficultyMedium,
		Description: "Gnome sort stepping back after each out-of-order swap.",
		Code: `func gnomeSort(a []int) {
	i := 0
	for i < len(a) {
		if i == 0 || a[i] >= a[i-1] {
			i++
		} else {
			a[i], a[i-1] = a[i-1], a[i]
			i--
		}
	}
}`,
	},
	{
		ID: "comparison-sort-06", Name: "Comb sort", Expected: ClassComparisonSort, Difficulty: DifficultyMedium,
		Description: "Comb sort with a shrinking gap and final bubble pass.",
		Code: `func combSort(a []int) {
	gap := len(a)
	swapped := true
	for gap > 1 || swapped {
		gap = gap * 10 / 13
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i+gap < len(a); i++ {
			if a[i] > a[i+gap] {
				a[i], a[i+gap] = a[i+gap], a[i]
				swapped = true
			}
		}
	}
}`,
	},
	{
		ID: "comparison-sort-07", Name: "Shell sort", Expected: ClassComparisonSort, Difficulty: DifficultyMedium,
		Description: "Shell sort using gapped adjacent swaps.",
		Code: `func shellSort(a []int) {
	for gap := len(a) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(a); i++ {
			for j := i; j >= gap && a[j-gap] > a[j]; j -= gap {
				a[j], a[j-gap] = a[j-gap], a[j]
			}
		}
	}
}`,
	},
	{
		ID: "comparison-sort-08", Name: "Quicksort", Expected: ClassComparisonSort, Difficulty: DifficultyHard,
		Description: "Lomuto-partition quicksort with recursive halves.",
		Code: `func quickSort(a []int, lo, hi int) {
	if lo >= hi {
		return
	}
	pivot := a[hi]
	p := lo
	for i := lo; i < hi; i++ {
		if a[i] < pivot {
			a[i], a[p] = a[p], a[i]
			p++
		}
	}
	a[p], a[hi] = a[hi], a[p]
	quickSort(a, lo, p-1)
	quickSort(a, p+1, hi)
}`,
	},
	{
		ID: "comparison-sort-09", Name: "Heapsort", Expected: ClassComparisonSort, Difficulty: DifficultyHard,
		Description: "In-place heapsort with sift-down swaps.",
		Code: `func heapSort(a []int) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end)
	}
}

func siftDown(a []int, i, n int) {
	for {
		largest := i
		if l := 2*i + 1; l < n && a[l] > a[largest] {
			largest = l
		}
		if r := 2*i + 2; r < n && a[r] > a[largest] {
			largest = r
		}
		if largest == i {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}`,
	},
	{
		ID: "comparison-sort-10", Name: "Merge sort", Expected: ClassComparisonSort, Difficulty: DifficultyHard,
		Description: "Top-down merge sort; no swaps, so surface cues resemble halving searches.",
		Code: `func mergeSort(a []int) []int {
	if len(a) <= 1 {
		return a
	}
	mid := len(a) / 2
	left := mergeSort(a[:mid])
	right := mergeSort(a[mid:])
	out := make([]int, 0, len(a))
	for len(left) > 0 && len(right) > 0 {
		if left[0] <= right[0] {
			out = append(out, left[0])
			left = left[1:]
		} else {
			out = append(out, right[0])
			right = right[1:]
		}
	}
	out = append(out, left...)
	return append(out, right...)
}`,
	},

	// --- binary-search ---
	{
		ID: "binary-search-01", Name: "Iterative binary search", Expected: ClassBinarySearch, Difficulty: DifficultyEasy,
		Description: "Textbook halving search over a sorted slice.",
		Code: `func binarySearch(a []int, target int) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if a[mid] == target {
			return mid
		}
		if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return -1
}`,
	},
	{
		ID: "binary-search-02", Name: "Recursive binary search", Expected: ClassBinarySearch, Difficulty: DifficultyEasy,
		Description: "Recursive formulation of the halving search.",
		Code: `func searchRange(a []int, target, lo, hi int) int {
	if lo > hi {
		return -1
	}
	mid := lo + (hi-lo)/2
	if a[mid] == target {
		return mid
	}
	if a[mid] < target {
		return searchRange(a, target, mid+1, hi)
	}
	return searchRange(a, target, lo, mid-1)
}`,
	},
	{
		ID: "binary-search-03", Name: "First occurrence", Expected: ClassBinarySearch, Difficulty: DifficultyEasy,
		Description: "Leftmost-match variant that keeps halving after a hit.",
		Code: `func firstOccurrence(a []int, target int) int {
	lo, hi, ans := 0, len(a)-1, -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if a[mid] == target {
			ans = mid
			hi = mid - 1
		} else if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ans
}`,
	},
	{
		ID: "binary-search-04", Name: "Last occurrence", Expected: ClassBinarySearch, Difficulty: DifficultyEasy,
		Description: "Rightmost-match variant of the halving search.",
		Code: `func lastOccurrence(a []int, target int) int {
	lo, hi, ans := 0, len(a)-1, -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if a[mid] == target {
			ans = mid
			lo = mid + 1
		} else if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ans
}`,
	},
	{
		ID: "binary-search-05", Name: "Search insert position", Expected: ClassBinarySearch, Difficulty: DifficultyMedium,
		Description: "Lower-bound search returning where the target would slot in.",
		Code: `func insertPosition(a []int, target int) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := (lo + hi) / 2
		if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}`,
	},
	{
		ID: "binary-search-06", Name: "Integer square root", Expected: ClassBinarySearch, Difficulty: DifficultyMedium,
		Description: "Halving search over the answer space rather than an array.",
		Code: `func intSqrt(x int) int {
	lo, hi := 0, x
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if mid*mid <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}`,
	},
	{
		ID: "binary-search-07", Name: "Rotated array minimum", Expected: ClassBinarySearch, Difficulty: DifficultyMedium,
		Description: "Halving search for the pivot of a rotated sorted slice.",
		Code: `func rotatedMin(a []int) int {
	lo, hi := 0, len(a)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if a[mid] > a[hi] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return a[lo]
}`,
	},
	{
		ID: "binary-search-08", Name: "Search rotated array", Expected: ClassBinarySearch, Difficulty: DifficultyHard,
		Description: "Target search in a rotated sorted slice, picking the ordered half each step.",
		Code: `func searchRotated(a []int, target int) int {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if a[mid] == target {
			return mid
		}
		if a[lo] <= a[mid] {
			if a[lo] <= target && target < a[mid] {
				hi = mid - 1
			} else {
				lo = mid + 1
			}
		} else {
			if a[mid] < target && target <= a[hi] {
				lo = mid + 1
			} else {
				hi = mid - 1
			}
		}
	}
	return -1
}`,
	},
	{
		ID: "binary-search-09", Name: "Minimum ship capacity", Expected: ClassBinarySearch, Difficulty: DifficultyHard,
		Description: "Binary search on the answer: smallest capacity that packs within d days.",
		Code: `func minCapacity(weights []int, days int) int {
	lo, hi := 0, 0
	for _, w := range weights {
		if w > lo {
			lo = w
		}
		hi += w
	}
	for lo < hi {
		mid := (lo + hi) / 2
		need, load := 1, 0
		for _, w := range weights {
			if load+w > mid {
				need++
				load = 0
			}
			load += w
		}
		if need <= days {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}`,
	},
	{
		ID: "binary-search-10", Name: "Peak element", Expected: ClassBinarySearch, Difficulty: DifficultyHard,
		Description: "Halving search that follows the rising slope to any local peak.",
		Code: `func peakIndex(a []int) int {
	lo, hi := 0, len(a)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if a[mid] < a[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}`,
	},

	// --- linear-search ---
	{
		ID: "linear-search-01", Name: "Find index", Expected: ClassLinearSearch, Difficulty: DifficultyEasy,
		Description: "Left-to-right scan returning the first matching index.",
		Code: `func findIndex(a []int, target int) int {
	for i := 0; i < len(a); i++ {
		if a[i] == target {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "linear-search-02", Name: "Contains", Expected: ClassLinearSearch, Difficulty: DifficultyEasy,
		Description: "Membership scan over an unordered slice.",
		Code: `func contains(a []string, want string) bool {
	for _, v := range a {
		if v == want {
			return true
		}
	}
	return false
}`,
	},
	{
		ID: "linear-search-03", Name: "Find maximum", Expected: ClassLinearSearch, Difficulty: DifficultyEasy,
		Description: "Single pass to find the largest element.",
		Code: `func findMax(a []int) int {
	best := a[0]
	for _, v := range a[1:] {
		if v > best {
			best = v
		}
	}
	return best
}`,
	},
	{
		ID: "linear-search-04", Name: "Find minimum", Expected: ClassLinearSearch, Difficulty: DifficultyEasy,
		Description: "Single pass to find the smallest element.",
		Code: `func findMin(a []float64) float64 {
	best := a[0]
	for _, v := range a[1:] {
		if v < best {
			best = v
		}
	}
	return best
}`,
	},
	{
		ID: "linear-search-05", Name: "Count matches", Expected: ClassLinearSearch, Difficulty: DifficultyMedium,
		Description: "Full scan counting every element equal to the target.",
		Code: `func searchCount(a []int, target int) int {
	count := 0
	for _, v := range a {
		if v == target {
			count++
		}
	}
	return count
}`,
	},
	{
		ID: "linear-search-06", Name: "Last index of", Expected: ClassLinearSearch, Difficulty: DifficultyMedium,
		Description: "Backward scan returning the final matching position.",
		Code: `func lastIndexOf(a []int, target int) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] == target {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "linear-search-07", Name: "Find first satisfying", Expected: ClassLinearSearch, Difficulty: DifficultyMedium,
		Description: "Predicate scan returning the first element that qualifies.",
		Code: `func findFirst(a []int, ok func(int) bool) (int, bool) {
	for _, v := range a {
		if ok(v) {
			return v, true
		}
	}
	return 0, false
}`,
	},
	{
		ID: "linear-search-08", Name: "Sentinel search", Expected: ClassLinearSearch, Difficulty: DifficultyHard,
		Description: "Scan with a sentinel appended to drop the bounds check.",
		Code: `func sentinelSearch(a []int, target int) int {
	n := len(a)
	a = append(a, target)
	i := 0
	for a[i] != target {
		i++
	}
	if i < n {
		return i
	}
	return -1
}`,
	},
	{
		ID: "linear-search-09", Name: "Pair sum scan", Expected: ClassLinearSearch, Difficulty: DifficultyHard,
		Description: "Nested scan searching for two elements that sum to a target.",
		Code: `func searchPairSum(a []int, target int) (int, int) {
	for i := 0; i < len(a); i++ {
		for j := i + 1; j < len(a); j++ {
			if a[i]+a[j] == target {
				return i, j
			}
		}
	}
	return -1, -1
}`,
	},
	{
		ID: "linear-search-10", Name: "Find missing number", Expected: ClassLinearSearch, Difficulty: DifficultyHard,
		Description: "Presence scan locating the one value absent from a sequence.",
		Code: `func findMissing(a []int, upto int) int {
	for want := 1; want <= upto; want++ {
		present := false
		for _, v := range a {
			if v == want {
				present = true
				break
			}
		}
		if !present {
			return want
		}
	}
	return -1
}`,
	},

	// --- graph-bfs ---
	{
		ID: "graph-bfs-01", Name: "Adjacency-list BFS", Expected: ClassGraphBFS, Difficulty: DifficultyEasy,
		Description: "Queue-driven traversal over an adjacency map.",
		Code: `func bfs(graph map[int][]int, start int) []int {
	visited := map[int]bool{start: true}
	queue := []int{start}
	var order []int
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, neighbor := range graph[v] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return order
}`,
	},
	{
		ID: "graph-bfs-02", Name: "Level-order expansion", Expected: ClassGraphBFS, Difficulty: DifficultyEasy,
		Description: "Frontier-at-a-time traversal grouping vertices by depth.",
		Code: `func levels(graph [][]int, src int) [][]int {
	seen := make([]bool, len(graph))
	seen[src] = true
	queue := []int{src}
	var out [][]int
	for len(queue) > 0 {
		var next []int
		out = append(out, queue)
		for _, v := range queue {
			for _, w := range graph[v] {
				if !seen[w] {
					seen[w] = true
					next = append(next, w)
				}
			}
		}
		queue = next
	}
	return out
}`,
	},
	{
		ID: "graph-bfs-03", Name: "Fewest hops", Expected: ClassGraphBFS, Difficulty: DifficultyEasy,
		Description: "Breadth-first hop counting between two named vertices.",
		Code: `func hops(graph map[string][]string, from, to string) int {
	steps := map[string]int{from: 0}
	queue := []string{from}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if v == to {
			return steps[v]
		}
		for _, neighbor := range graph[v] {
			if _, ok := steps[neighbor]; !ok {
				steps[neighbor] = steps[v] + 1
				queue = append(queue, neighbor)
			}
		}
	}
	return -1
}`,
	},
	{
		ID: "graph-bfs-04", Name: "Connected component", Expected: ClassGraphBFS, Difficulty: DifficultyEasy,
		Description: "Queue-driven collection of every vertex reachable from a start.",
		Code: `func component(adjacency [][]int, start int) []int {
	enqueued := make([]bool, len(adjacency))
	enqueued[start] = true
	queue := []int{start}
	var members []int
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		members = append(members, v)
		for _, u := range adjacency[v] {
			if !enqueued[u] {
				enqueued[u] = true
				queue = append(queue, u)
			}
		}
	}
	return members
}`,
	},
	{
		ID: "graph-bfs-05", Name: "Bipartite check", Expected: ClassGraphBFS, Difficulty: DifficultyMedium,
		Description: "Two-coloring by breadth-first sweep; any same-color edge fails.",
		Code: `func bipartite(graph [][]int) bool {
	color := make([]int, len(graph))
	for s := range graph {
		if color[s] != 0 {
			continue
		}
		color[s] = 1
		queue := []int{s}
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			for _, u := range graph[v] {
				if color[u] == color[v] {
					return false
				}
				if color[u] == 0 {
					color[u] = -color[v]
					queue = append(queue, u)
				}
			}
		}
	}
	return true
}`,
	},
	{
		ID: "graph-bfs-06", Name: "Flood fill", Expected: ClassGraphBFS, Difficulty: DifficultyMedium,
		Description: "Queue-based paint spill across equal-valued neighbor cells.",
		Code: `func fill(grid [][]int, r, c, paint int) {
	old := grid[r][c]
	if old == paint {
		return
	}
	queue := [][2]int{{r, c}}
	grid[r][c] = paint
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		neighbors := [][2]int{{cell[0] - 1, cell[1]}, {cell[0] + 1, cell[1]}, {cell[0], cell[1] - 1}, {cell[0], cell[1] + 1}}
		for _, nb := range neighbors {
			if nb[0] >= 0 && nb[0] < len(grid) && nb[1] >= 0 && nb[1] < len(grid[0]) && grid[nb[0]][nb[1]] == old {
				grid[nb[0]][nb[1]] = paint
				queue = append(queue, nb)
			}
		}
	}
}`,
	},
	{
		ID: "graph-bfs-07", Name: "Multi-source spread", Expected: ClassGraphBFS, Difficulty: DifficultyMedium,
		Description: "Simultaneous breadth-first expansion from several source vertices.",
		Code: `func spread(graph [][]int, sources []int) []int {
	round := make([]int, len(graph))
	for i := range round {
		round[i] = -1
	}
	var queue []int
	for _, s := range sources {
		round[s] = 0
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range graph[v] {
			if round[u] < 0 {
				round[u] = round[v] + 1
				queue = append(queue, u)
			}
		}
	}
	return round
}`,
	},
	{
		ID: "graph-bfs-08", Name: "Kahn's topological order", Expected: ClassGraphBFS, Difficulty: DifficultyHard,
		Description: "Indegree-queue peeling of a DAG, breadth-first in structure.",
		Code: `func topoOrder(graph [][]int) []int {
	indegree := make([]int, len(graph))
	for _, outs := range graph {
		for _, v := range outs {
			indegree[v]++
		}
	}
	var queue, order []int
	for v, d := range indegree {
		if d == 0 {
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)
		for _, u := range graph[v] {
			indegree[u]--
			if indegree[u] == 0 {
				queue = append(queue, u)
			}
		}
	}
	return order
}`,
	},
	{
		ID: "graph-bfs-09", Name: "Word ladder", Expected: ClassGraphBFS, Difficulty: DifficultyHard,
		Description: "Breadth-first walk over the implicit one-letter-change word graph.",
		Code: `func ladder(words []string, begin, end string) int {
	pool := map[string]bool{}
	for _, w := range words {
		pool[w] = true
	}
	steps := map[string]int{begin: 1}
	queue := []string{begin}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		if w == end {
			return steps[w]
		}
		for i := 0; i < len(w); i++ {
			for ch := byte('a'); ch <= 'z'; ch++ {
				neighbor := w[:i] + string(ch) + w[i+1:]
				if pool[neighbor] && steps[neighbor] == 0 {
					steps[neighbor] = steps[w] + 1
					queue = append(queue, neighbor)
				}
			}
		}
	}
	return 0
}`,
	},
	{
		ID: "graph-bfs-10", Name: "Knight moves", Expected: ClassGraphBFS, Difficulty: DifficultyHard,
		Description: "Fewest knight moves on a board, expanding neighbor squares breadth-first.",
		Code: `func knightMoves(n, sr, sc, tr, tc int) int {
	jumps := [][2]int{{1, 2}, {2, 1}, {-1, 2}, {-2, 1}, {1, -2}, {2, -1}, {-1, -2}, {-2, -1}}
	steps := make([][]int, n)
	for i := range steps {
		steps[i] = make([]int, n)
		for j := range steps[i] {
			steps[i][j] = -1
		}
	}
	steps[sr][sc] = 0
	queue := [][2]int{{sr, sc}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur[0] == tr && cur[1] == tc {
			return steps[cur[0]][cur[1]]
		}
		// expand neighbor squares of the board graph
		for _, jump := range jumps {
			r, c := cur[0]+jump[0], cur[1]+jump[1]
			if r >= 0 && r < n && c >= 0 && c < n && steps[r][c] < 0 {
				steps[r][c] = steps[cur[0]][cur[1]] + 1
				queue = append(queue, [2]int{r, c})
			}
		}
	}
	return -1
}`,
	},

	// --- graph-dfs ---
	{
		ID: "graph-dfs-01", Name: "Recursive DFS", Expected: ClassGraphDFS, Difficulty: DifficultyEasy,
		Description: "Classic recursive depth-first visit over an adjacency map.",
		Code: `func dfs(graph map[int][]int, v int, visited map[int]bool, order *[]int) {
	visited[v] = true
	*order = append(*order, v)
	for _, neighbor := range graph[v] {
		if !visited[neighbor] {
			dfs(graph, neighbor, visited, order)
		}
	}
}`,
	},
	{
		ID: "graph-dfs-02", Name: "Iterative DFS", Expected: ClassGraphDFS, Difficulty: DifficultyEasy,
		Description: "Explicit-stack depth-first traversal.",
		Code: `func traverse(graph [][]int, start int) []int {
	stack := []int{start}
	seen := make([]bool, len(graph))
	var order []int
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[v] {
			continue
		}
		seen[v] = true
		order = append(order, v)
		for _, u := range graph[v] {
			if !seen[u] {
				stack = append(stack, u)
			}
		}
	}
	return order
}`,
	},
	{
		ID: "graph-dfs-03", Name: "Count components", Expected: ClassGraphDFS, Difficulty: DifficultyEasy,
		Description: "Depth-first sweep counting connected components.",
		Code: `func countComponents(graph [][]int) int {
	seen := make([]bool, len(graph))
	var visit func(v int)
	visit = func(v int) {
		seen[v] = true
		for _, neighbor := range graph[v] {
			if !seen[neighbor] {
				visit(neighbor)
			}
		}
	}
	count := 0
	for v := range graph {
		if !seen[v] {
			count++
			visit(v)
		}
	}
	return count
}`,
	},
	{
		ID: "graph-dfs-04", Name: "Reachability", Expected: ClassGraphDFS, Difficulty: DifficultyEasy,
		Description: "Recursive depth-first check that a target vertex is reachable.",
		Code: `func reachable(graph map[int][]int, from, to int, seen map[int]bool) bool {
	if from == to {
		return true
	}
	seen[from] = true
	for _, neighbor := range graph[from] {
		if !seen[neighbor] && reachable(graph, neighbor, to, seen) {
			return true
		}
	}
	return false
}`,
	},
	{
		ID: "graph-dfs-05", Name: "Cycle detection", Expected: ClassGraphDFS, Difficulty: DifficultyMedium,
		Description: "Three-color recursive descent detecting a back edge in a digraph.",
		Code: `func hasCycle(graph [][]int) bool {
	state := make([]int, len(graph))
	var visit func(v int) bool
	visit = func(v int) bool {
		state[v] = 1
		for _, u := range graph[v] {
			if state[u] == 1 {
				return true
			}
			if state[u] == 0 && visit(u) {
				return true
			}
		}
		state[v] = 2
		return false
	}
	for v := range graph {
		if state[v] == 0 && visit(v) {
			return true
		}
	}
	return false
}`,
	},
	{
		ID: "graph-dfs-06", Name: "Island count", Expected: ClassGraphDFS, Difficulty: DifficultyMedium,
		Description: "Depth-first sinking of land cells through their neighbor cells.",
		Code: `func islands(grid [][]byte) int {
	// sink recurses into the four neighbor cells
	var sink func(r, c int)
	sink = func(r, c int) {
		if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[0]) || grid[r][c] != '1' {
			return
		}
		grid[r][c] = '0'
		sink(r-1, c)
		sink(r+1, c)
		sink(r, c-1)
		sink(r, c+1)
	}
	count := 0
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == '1' {
				count++
				sink(r, c)
			}
		}
	}
	return count
}`,
	},
	{
		ID: "graph-dfs-07", Name: "Postorder finishing times", Expected: ClassGraphDFS, Difficulty: DifficultyMedium,
		Description: "Depth-first descent recording vertices in finishing order.",
		Code: `func finishOrder(graph [][]int) []int {
	seen := make([]bool, len(graph))
	var order []int
	var visit func(v int)
	visit = func(v int) {
		seen[v] = true
		for _, u := range graph[v] {
			if !seen[u] {
				visit(u)
			}
		}
		order = append(order, v)
	}
	for v := range graph {
		if !seen[v] {
			visit(v)
		}
	}
	return order
}`,
	},
	{
		ID: "graph-dfs-08", Name: "Bridge finding", Expected: ClassGraphDFS, Difficulty: DifficultyHard,
		Description: "Low-link recursive descent locating cut edges.",
		Code: `func bridges(graph [][]int) [][2]int {
	n := len(graph)
	disc := make([]int, n)
	low := make([]int, n)
	timer := 0
	var out [][2]int
	var visit func(v, parent int)
	visit = func(v, parent int) {
		timer++
		disc[v] = timer
		low[v] = timer
		for _, u := range graph[v] {
			if u == parent {
				continue
			}
			if disc[u] == 0 {
				visit(u, v)
				if low[u] < low[v] {
					low[v] = low[u]
				}
				if low[u] > disc[v] {
					out = append(out, [2]int{v, u})
				}
			} else if disc[u] < low[v] {
				low[v] = disc[u]
			}
		}
	}
	for v := 0; v < n; v++ {
		if disc[v] == 0 {
			visit(v, -1)
		}
	}
	return out
}`,
	},
	{
		ID: "graph-dfs-09", Name: "Kosaraju components", Expected: ClassGraphDFS, Difficulty: DifficultyHard,
		Description: "Two depth-first passes over the graph and its reverse.",
		Code: `func strongComponents(graph [][]int) [][]int {
	n := len(graph)
	seen := make([]bool, n)
	var stack []int
	var fill func(v int)
	fill = func(v int) {
		seen[v] = true
		for _, u := range graph[v] {
			if !seen[u] {
				fill(u)
			}
		}
		stack = append(stack, v)
	}
	for v := 0; v < n; v++ {
		if !seen[v] {
			fill(v)
		}
	}
	reverse := make([][]int, n)
	for v, outs := range graph {
		for _, u := range outs {
			reverse[u] = append(reverse[u], v)
		}
	}
	var comp []int
	var gather func(v int)
	gather = func(v int) {
		seen[v] = false
		comp = append(comp, v)
		for _, u := range reverse[v] {
			if seen[u] {
				gather(u)
			}
		}
	}
	var out [][]int
	for i := n - 1; i >= 0; i-- {
		v := stack[i]
		if seen[v] {
			comp = nil
			gather(v)
			out = append(out, comp)
		}
	}
	return out
}`,
	},
	{
		ID: "graph-dfs-10", Name: "Maze backtracking", Expected: ClassGraphDFS, Difficulty: DifficultyHard,
		Description: "Recursive descent through neighbor cells with undo on dead ends.",
		Code: `func solveMaze(maze [][]int, r, c int, path *[][2]int) bool {
	if r < 0 || r >= len(maze) || c < 0 || c >= len(maze[0]) || maze[r][c] != 0 {
		return false
	}
	if r == len(maze)-1 && c == len(maze[0])-1 {
		*path = append(*path, [2]int{r, c})
		return true
	}
	maze[r][c] = 2
	*path = append(*path, [2]int{r, c})
	// descend into each open neighbor cell
	if solveMaze(maze, r+1, c, path) || solveMaze(maze, r, c+1, path) || solveMaze(maze, r-1, c, path) || solveMaze(maze, r, c-1, path) {
		return true
	}
	*path = (*path)[:len(*path)-1]
	maze[r][c] = 0
	return false
}`,
	},

	// --- shortest-path-dijkstra ---
	{
		ID: "shortest-path-dijkstra-01", Name: "Array-scan Dijkstra", Expected: ClassDijkstra, Difficulty: DifficultyEasy,
		Description: "Dijkstra with a linear scan for the nearest unsettled vertex.",
		Code: `func dijkstra(graph [][][2]int, src int) []int {
	n := len(graph)
	dist := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = 1 << 30
	}
	dist[src] = 0
	for range graph {
		v := -1
		for u := 0; u < n; u++ {
			if !done[u] && (v < 0 || dist[u] < dist[v]) {
				v = u
			}
		}
		done[v] = true
		for _, edge := range graph[v] {
			if dist[v]+edge[1] < dist[edge[0]] {
				dist[edge[0]] = dist[v] + edge[1]
			}
		}
	}
	return dist
}`,
	},
	{
		ID: "shortest-path-dijkstra-02", Name: "Heap Dijkstra", Expected: ClassDijkstra, Difficulty: DifficultyEasy,
		Description: "Dijkstra driven by a binary min-heap priority queue.",
		Code: `func shortestPaths(graph map[int][][2]int, src int) map[int]int {
	dist := map[int]int{src: 0}
	heap := [][2]int{{0, src}}
	for len(heap) > 0 {
		top := heap[0]
		heap[0] = heap[len(heap)-1]
		heap = heap[:len(heap)-1]
		siftHeap(heap)
		d, v := top[0], top[1]
		if d > dist[v] {
			continue
		}
		for _, edge := range graph[v] {
			u, w := edge[0], edge[1]
			if cur, ok := dist[u]; !ok || d+w < cur {
				dist[u] = d + w
				heap = append(heap, [2]int{d + w, u})
				liftHeap(heap)
			}
		}
	}
	return dist
}`,
	},
	{
		ID: "shortest-path-dijkstra-03", Name: "Priority queue relaxation", Expected: ClassDijkstra, Difficulty: DifficultyEasy,
		Description: "Edge relaxation loop popping the cheapest frontier vertex first.",
		Code: `func cheapest(graph [][][2]int, src, dst int) int {
	dist := make([]int, len(graph))
	for i := range dist {
		dist[i] = -1
	}
	dist[src] = 0
	// priority order: always settle the smallest tentative cost
	frontier := [][2]int{{0, src}}
	for len(frontier) > 0 {
		best := 0
		for i, f := range frontier {
			if f[0] < frontier[best][0] {
				best = i
			}
		}
		cur := frontier[best]
		frontier = append(frontier[:best], frontier[best+1:]...)
		for _, edge := range graph[cur[1]] {
			next := cur[0] + edge[1]
			if dist[edge[0]] < 0 || next < dist[edge[0]] {
				dist[edge[0]] = next
				frontier = append(frontier, [2]int{next, edge[0]})
			}
		}
	}
	return dist[dst]
}`,
	},
	{
		ID: "shortest-path-dijkstra-04", Name: "Weighted grid paths", Expected: ClassDijkstra, Difficulty: DifficultyEasy,
		Description: "Cheapest-cost walk over a weighted grid using a priority frontier.",
		Code: `func gridCost(grid [][]int) int {
	rows, cols := len(grid), len(grid[0])
	dist := make([][]int, rows)
	for i := range dist {
		dist[i] = make([]int, cols)
		for j := range dist[i] {
			dist[i][j] = 1 << 30
		}
	}
	dist[0][0] = grid[0][0]
	// min-heap of (cost, r, c) over neighbor cells of the graph
	heap := [][3]int{{grid[0][0], 0, 0}}
	for len(heap) > 0 {
		min := 0
		for i := range heap {
			if heap[i][0] < heap[min][0] {
				min = i
			}
		}
		cur := heap[min]
		heap = append(heap[:min], heap[min+1:]...)
		if cur[0] > dist[cur[1]][cur[2]] {
			continue
		}
		for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			r, c := cur[1]+d[0], cur[2]+d[1]
			if r >= 0 && r < rows && c >= 0 && c < cols && cur[0]+grid[r][c] < dist[r][c] {
				dist[r][c] = cur[0] + grid[r][c]
				heap = append(heap, [3]int{dist[r][c], r, c})
			}
		}
	}
	return dist[rows-1][cols-1]
}`,
	},
	{
		ID: "shortest-path-dijkstra-05", Name: "Early-exit Dijkstra", Expected: ClassDijkstra, Difficulty: DifficultyMedium,
		Description: "Settling stops as soon as the target vertex leaves the priority queue.",
		Code: `func routeCost(graph map[string][][2]interface{}, src, dst string) int {
	dist := map[string]int{src: 0}
	queue := []struct {
		cost int
		node string
	}{{0, src}}
	for len(queue) > 0 {
		best := 0
		for i := range queue {
			if queue[i].cost < queue[best].cost {
				best = i
			}
		}
		cur := queue[best]
		queue = append(queue[:best], queue[best+1:]...)
		if cur.node == dst {
			return cur.cost
		}
		for _, edge := range graph[cur.node] {
			to := edge[0].(string)
			w := edge[1].(int)
			if d, ok := dist[to]; !ok || cur.cost+w < d {
				dist[to] = cur.cost + w
				queue = append(queue, struct {
					cost int
					node string
				}{cur.cost + w, to})
			}
		}
	}
	return -1
}`,
	},
	{
		ID: "shortest-path-dijkstra-06", Name: "Path reconstruction", Expected: ClassDijkstra, Difficulty: DifficultyMedium,
		Description: "Dijkstra keeping predecessor links to rebuild the cheapest route.",
		Code: `func cheapestRoute(graph [][][2]int, src, dst int) []int {
	n := len(graph)
	dist := make([]int, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = 1 << 30
		prev[i] = -1
	}
	dist[src] = 0
	for range graph {
		v := -1
		for u := 0; u < n; u++ {
			if !done[u] && (v < 0 || dist[u] < dist[v]) {
				v = u
			}
		}
		if dist[v] == 1<<30 {
			break
		}
		done[v] = true
		for _, edge := range graph[v] {
			if dist[v]+edge[1] < dist[edge[0]] {
				dist[edge[0]] = dist[v] + edge[1]
				prev[edge[0]] = v
			}
		}
	}
	var path []int
	for at := dst; at != -1; at = prev[at] {
		path = append([]int{at}, path...)
	}
	return path
}`,
	},
	{
		ID: "shortest-path-dijkstra-07", Name: "Lazy-deletion heap", Expected: ClassDijkstra, Difficulty: DifficultyMedium,
		Description: "Stale priority-queue entries skipped on pop instead of decrease-key.",
		Code: `func lazyDijkstra(graph [][][2]int, src int) []int {
	dist := make([]int, len(graph))
	for i := range dist {
		dist[i] = 1 << 30
	}
	dist[src] = 0
	heap := [][2]int{{0, src}}
	pop := func() [2]int {
		best := 0
		for i := range heap {
			if heap[i][0] < heap[best][0] {
				best = i
			}
		}
		top := heap[best]
		heap = append(heap[:best], heap[best+1:]...)
		return top
	}
	for len(heap) > 0 {
		top := pop()
		if top[0] > dist[top[1]] {
			continue // stale entry
		}
		for _, edge := range graph[top[1]] {
			if top[0]+edge[1] < dist[edge[0]] {
				dist[edge[0]] = top[0] + edge[1]
				heap = append(heap, [2]int{dist[edge[0]], edge[0]})
			}
		}
	}
	return dist
}`,
	},
	{
		ID: "shortest-path-dijkstra-08", Name: "Indexed decrease-key", Expected: ClassDijkstra, Difficulty: DifficultyHard,
		Description: "Dijkstra with an index-tracked heap supporting in-place decrease-key.",
		Code: `func indexedDijkstra(graph [][][2]int, src int) []int {
	n := len(graph)
	dist := make([]int, n)
	pos := make([]int, n)
	heap := make([]int, n)
	for i := range dist {
		dist[i] = 1 << 30
		heap[i] = i
		pos[i] = i
	}
	dist[src] = 0
	heap[0], heap[src] = heap[src], heap[0]
	pos[src], pos[0] = 0, src
	size := n
	for size > 0 {
		v := heap[0]
		size--
		heap[0] = heap[size]
		pos[heap[0]] = 0
		i := 0
		for {
			small := i
			if l := 2*i + 1; l < size && dist[heap[l]] < dist[heap[small]] {
				small = l
			}
			if r := 2*i + 2; r < size && dist[heap[r]] < dist[heap[small]] {
				small = r
			}
			if small == i {
				break
			}
			heap[i], heap[small] = heap[small], heap[i]
			pos[heap[i]], pos[heap[small]] = i, small
			i = small
		}
		for _, edge := range graph[v] {
			if dist[v]+edge[1] < dist[edge[0]] {
				dist[edge[0]] = dist[v] + edge[1]
				j := pos[edge[0]]
				for j > 0 && dist[heap[(j-1)/2]] > dist[heap[j]] {
					heap[j], heap[(j-1)/2] = heap[(j-1)/2], heap[j]
					pos[heap[j]], pos[heap[(j-1)/2]] = j, (j-1)/2
					j = (j - 1) / 2
				}
			}
		}
	}
	return dist
}`,
	},
	{
		ID: "shortest-path-dijkstra-09", Name: "Implicit state graph", Expected: ClassDijkstra, Difficulty: DifficultyHard,
		Description: "Cheapest transformation cost over states generated on the fly.",
		Code: `func minTransformCost(start, goal int, moves func(int) [][2]int) int {
	dist := map[int]int{start: 0}
	queue := [][2]int{{0, start}}
	for len(queue) > 0 {
		best := 0
		for i := range queue {
			if queue[i][0] < queue[best][0] {
				best = i
			}
		}
		cur := queue[best]
		queue = append(queue[:best], queue[best+1:]...)
		if cur[1] == goal {
			return cur[0]
		}
		if cur[0] > dist[cur[1]] {
			continue
		}
		// expand neighbor states of the implicit graph
		for _, edge := range moves(cur[1]) {
			next := cur[0] + edge[1]
			if d, ok := dist[edge[0]]; !ok || next < d {
				dist[edge[0]] = next
				queue = append(queue, [2]int{next, edge[0]})
			}
		}
	}
	return -1
}`,
	},
	{
		ID: "shortest-path-dijkstra-10", Name: "Dial's buckets", Expected: ClassDijkstra, Difficulty: DifficultyHard,
		Description: "Small-weight Dijkstra variant settling vertices from cost buckets in priority order.",
		Code: `func dialShortest(graph [][][2]int, src, maxW int) []int {
	n := len(graph)
	dist := make([]int, n)
	for i := range dist {
		dist[i] = 1 << 30
	}
	dist[src] = 0
	buckets := make([][]int, n*maxW+1)
	buckets[0] = []int{src}
	for cost := 0; cost < len(buckets); cost++ {
		for len(buckets[cost]) > 0 {
			v := buckets[cost][len(buckets[cost])-1]
			buckets[cost] = buckets[cost][:len(buckets[cost])-1]
			if cost > dist[v] {
				continue
			}
			for _, edge := range graph[v] {
				if cost+edge[1] < dist[edge[0]] {
					dist[edge[0]] = cost + edge[1]
					buckets[dist[edge[0]]] = append(buckets[dist[edge[0]]], edge[0])
				}
			}
		}
	}
	return dist
}`,
	},

	// --- string-match-naive ---
	{
		ID: "string-match-naive-01", Name: "Naive window scan", Expected: ClassStringMatchNaive, Difficulty: DifficultyEasy,
		Description: "Nested-loop comparison of the pattern at every text position.",
		Code: `func naiveMatch(text, pattern string) int {
	for i := 0; i+len(pattern) <= len(text); i++ {
		j := 0
		for j < len(pattern) && text[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-naive-02", Name: "Window contains", Expected: ClassStringMatchNaive, Difficulty: DifficultyEasy,
		Description: "Boolean containment check by sliding the pattern over the text.",
		Code: `func containsPattern(text, pattern string) bool {
	for i := 0; i+len(pattern) <= len(text); i++ {
		match := true
		for j := 0; j < len(pattern); j++ {
			if text[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}`,
	},
	{
		ID: "string-match-naive-03", Name: "Count occurrences", Expected: ClassStringMatchNaive, Difficulty: DifficultyEasy,
		Description: "Sliding-window count of every pattern occurrence, overlaps included.",
		Code: `func countOccurrences(text, pattern string) int {
	count := 0
	for i := 0; i+len(pattern) <= len(text); i++ {
		j := 0
		for j < len(pattern) && text[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			count++
		}
	}
	return count
}`,
	},
	{
		ID: "string-match-naive-04", Name: "All positions", Expected: ClassStringMatchNaive, Difficulty: DifficultyEasy,
		Description: "Collecting every index where the pattern matches the text.",
		Code: `func allMatches(text, pattern string) []int {
	var hits []int
	for i := 0; i+len(pattern) <= len(text); i++ {
		ok := true
		for j := range pattern {
			if text[i+j] != pattern[j] {
				ok = false
				break
			}
		}
		if ok {
			hits = append(hits, i)
		}
	}
	return hits
}`,
	},
	{
		ID: "string-match-naive-05", Name: "Case-folded scan", Expected: ClassStringMatchNaive, Difficulty: DifficultyMedium,
		Description: "Sliding window comparing letters case-insensitively.",
		Code: `func foldMatch(text, pattern string) int {
	fold := func(b byte) byte {
		if b >= 'A' && b <= 'Z' {
			return b + 32
		}
		return b
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		j := 0
		for j < len(pattern) && fold(text[i+j]) == fold(pattern[j]) {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-naive-06", Name: "Wildcard window", Expected: ClassStringMatchNaive, Difficulty: DifficultyMedium,
		Description: "Naive scan where '?' in the pattern matches any single byte.",
		Code: `func wildcardMatch(text, pattern string) int {
	for i := 0; i+len(pattern) <= len(text); i++ {
		j := 0
		for j < len(pattern) && (pattern[j] == '?' || text[i+j] == pattern[j]) {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-naive-07", Name: "Last occurrence", Expected: ClassStringMatchNaive, Difficulty: DifficultyMedium,
		Description: "Right-to-left sliding window returning the final match position.",
		Code: `func lastMatch(text, pattern string) int {
	for i := len(text) - len(pattern); i >= 0; i-- {
		j := 0
		for j < len(pattern) && text[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-naive-08", Name: "Mismatch budget", Expected: ClassStringMatchNaive, Difficulty: DifficultyHard,
		Description: "Approximate window scan tolerating up to k mismatched bytes.",
		Code: `func fuzzyMatch(text, pattern string, k int) int {
	for i := 0; i+len(pattern) <= len(text); i++ {
		bad := 0
		for j := 0; j < len(pattern); j++ {
			if text[i+j] != pattern[j] {
				bad++
				if bad > k {
					break
				}
			}
		}
		if bad <= k {
			return i
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-naive-09", Name: "Multi-pattern scan", Expected: ClassStringMatchNaive, Difficulty: DifficultyHard,
		Description: "Each pattern slid independently over the text, first hit wins.",
		Code: `func firstOfAny(text string, patterns []string) (int, int) {
	for i := 0; i < len(text); i++ {
		for p, pattern := range patterns {
			if i+len(pattern) > len(text) {
				continue
			}
			j := 0
			for j < len(pattern) && text[i+j] == pattern[j] {
				j++
			}
			if j == len(pattern) {
				return i, p
			}
		}
	}
	return -1, -1
}`,
	},
	{
		ID: "string-match-naive-10", Name: "Rotation check", Expected: ClassStringMatchNaive, Difficulty: DifficultyHard,
		Description: "Testing whether the pattern is a rotation by scanning the doubled text.",
		Code: `func isRotation(text, pattern string) bool {
	if len(text) != len(pattern) {
		return false
	}
	doubled := text + text
	for i := 0; i+len(pattern) <= len(doubled); i++ {
		j := 0
		for j < len(pattern) && doubled[i+j] == pattern[j] {
			j++
		}
		if j == len(pattern) {
			return true
		}
	}
	return false
}`,
	},

	// --- string-match-kmp ---
	{
		ID: "string-match-kmp-01", Name: "KMP search", Expected: ClassStringMatchKMP, Difficulty: DifficultyEasy,
		Description: "Classic KMP with an lps failure table over the pattern.",
		Code: `func kmpSearch(text, pattern string) int {
	lps := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = lps[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		lps[i] = k
	}
	for i, k := 0, 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = lps[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			return i - k + 1
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-kmp-02", Name: "Failure table build", Expected: ClassStringMatchKMP, Difficulty: DifficultyEasy,
		Description: "Constructing the failure function, then matching the text against the pattern.",
		Code: `func buildFailure(pattern string) []int {
	failure := make([]int, len(pattern))
	for i := 1; i < len(pattern); i++ {
		k := failure[i-1]
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	return failure
}

func match(text, pattern string) bool {
	failure := buildFailure(pattern)
	k := 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = failure[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			return true
		}
	}
	return false
}`,
	},
	{
		ID: "string-match-kmp-03", Name: "Overlapping count", Expected: ClassStringMatchKMP, Difficulty: DifficultyEasy,
		Description: "KMP counting all occurrences of the pattern in the text, overlaps included.",
		Code: `func kmpCount(text, pattern string) int {
	lps := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = lps[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		lps[i] = k
	}
	count, k := 0, 0
	for i := 0; i < len(text); i++ {
		for k > 0 && text[i] != pattern[k] {
			k = lps[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			count++
			k = lps[k-1]
		}
	}
	return count
}`,
	},
	{
		ID: "string-match-kmp-04", Name: "Prefix function", Expected: ClassStringMatchKMP, Difficulty: DifficultyEasy,
		Description: "The prefix function of pattern+separator+text locates matches linearly.",
		Code: `func prefixMatch(text, pattern string) []int {
	s := pattern + "\x00" + text
	pi := make([]int, len(s)) // prefix function
	var hits []int
	for i := 1; i < len(s); i++ {
		k := pi[i-1]
		for k > 0 && s[i] != s[k] {
			k = pi[k-1]
		}
		if s[i] == s[k] {
			k++
		}
		pi[i] = k
		if k == len(pattern) {
			hits = append(hits, i-2*len(pattern))
		}
	}
	return hits
}`,
	},
	{
		ID: "string-match-kmp-05", Name: "First match index", Expected: ClassStringMatchKMP, Difficulty: DifficultyMedium,
		Description: "Linear-time first-occurrence search with precomputed failure links.",
		Code: `func indexOfKMP(text, pattern string) int {
	if len(pattern) == 0 {
		return 0
	}
	failure := make([]int, len(pattern))
	k := 0
	for i := 1; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	k = 0
	for i := range text {
		for k > 0 && text[i] != pattern[k] {
			k = failure[k-1]
		}
		if text[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			return i - len(pattern) + 1
		}
	}
	return -1
}`,
	},
	{
		ID: "string-match-kmp-06", Name: "Streaming matcher", Expected: ClassStringMatchKMP, Difficulty: DifficultyMedium,
		Description: "Byte-at-a-time KMP state machine fed text incrementally.",
		Code: `type kmpStream struct {
	pattern string
	failure []int
	state   int
}

func newStream(pattern string) *kmpStream {
	failure := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	return &kmpStream{pattern: pattern, failure: failure}
}

func (m *kmpStream) feed(textByte byte) bool {
	for m.state > 0 && textByte != m.pattern[m.state] {
		m.state = m.failure[m.state-1]
	}
	if textByte == m.pattern[m.state] {
		m.state++
	}
	if m.state == len(m.pattern) {
		m.state = m.failure[m.state-1]
		return true
	}
	return false
}`,
	},
	{
		ID: "string-match-kmp-07", Name: "Period detection", Expected: ClassStringMatchKMP, Difficulty: DifficultyMedium,
		Description: "The failure function's final value reveals the smallest period of the text.",
		Code: `func smallestPeriod(text string) int {
	failure := make([]int, len(text))
	for i, k := 1, 0; i < len(text); i++ {
		for k > 0 && text[i] != text[k] {
			k = failure[k-1]
		}
		if text[i] == text[k] {
			k++
		}
		failure[i] = k
	}
	// pattern self-overlap gives the period
	period := len(text) - failure[len(text)-1]
	if len(text)%period == 0 {
		return period
	}
	return len(text)
}`,
	},
	{
		ID: "string-match-kmp-08", Name: "Shortest palindrome prefix", Expected: ClassStringMatchKMP, Difficulty: DifficultyHard,
		Description: "Failure table of text+separator+reversed text finds the longest palindromic prefix of the pattern space.",
		Code: `func longestPalindromePrefix(text string) int {
	rev := make([]byte, len(text))
	for i := range rev {
		rev[i] = text[len(text)-1-i]
	}
	pattern := text + "#" + string(rev)
	failure := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	return failure[len(pattern)-1]
}`,
	},
	{
		ID: "string-match-kmp-09", Name: "Distinct borders", Expected: ClassStringMatchKMP, Difficulty: DifficultyHard,
		Description: "Walking failure links of the pattern to enumerate every border length.",
		Code: `func borders(pattern string) []int {
	failure := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = failure[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		failure[i] = k
	}
	var out []int
	// text-independent: follow the failure chain from the full pattern
	for k := failure[len(pattern)-1]; k > 0; k = failure[k-1] {
		out = append(out, k)
	}
	return out
}`,
	},
	{
		ID: "string-match-kmp-10", Name: "Concatenation cover", Expected: ClassStringMatchKMP, Difficulty: DifficultyHard,
		Description: "KMP over doubled text decides whether it is a nontrivial pattern repetition.",
		Code: `func repeatedPattern(text string) bool {
	doubled := (text + text)[1 : 2*len(text)-1]
	pattern := text
	lps := make([]int, len(pattern))
	for i, k := 1, 0; i < len(pattern); i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = lps[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		lps[i] = k
	}
	k := 0
	for i := 0; i < len(doubled); i++ {
		for k > 0 && doubled[i] != pattern[k] {
			k = lps[k-1]
		}
		if doubled[i] == pattern[k] {
			k++
		}
		if k == len(pattern) {
			return true
		}
	}
	return false
}`,
	},

	// --- matrix-multiply ---
	{
		ID: "matrix-multiply-01", Name: "Triple-loop product", Expected: ClassMatrixMultiply, Difficulty: DifficultyEasy,
		Description: "Classic ijk dense matrix product.",
		Code: `func matMul(a, b [][]float64) [][]float64 {
	n, m, p := len(a), len(b), len(b[0])
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, p)
		for j := 0; j < p; j++ {
			for k := 0; k < m; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-02", Name: "Square int product", Expected: ClassMatrixMultiply, Difficulty: DifficultyEasy,
		Description: "Square matrix product over ints.",
		Code: `func squareMatrixProduct(a, b [][]int) [][]int {
	n := len(a)
	c := make([][]int, n)
	for i := 0; i < n; i++ {
		c[i] = make([]int, n)
		for j := 0; j < n; j++ {
			sum := 0
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-03", Name: "Rectangular product", Expected: ClassMatrixMultiply, Difficulty: DifficultyEasy,
		Description: "Matrix product with distinct row and column dimensions.",
		Code: `func multiplyMatrices(a [][]int, b [][]int) [][]int {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]int, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]int, cols)
		for j := 0; j < cols; j++ {
			for k := 0; k < inner; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}`,
	},
	{
		ID: "matrix-multiply-04", Name: "Transpose-first product", Expected: ClassMatrixMultiply, Difficulty: DifficultyEasy,
		Description: "Matrix product after transposing b for row-major locality.",
		Code: `func matMulTransposed(a, b [][]float64) [][]float64 {
	n := len(a)
	bt := make([][]float64, n)
	for i := range bt {
		bt[i] = make([]float64, n)
		for j := range bt[i] {
			bt[i][j] = b[j][i]
		}
	}
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				c[i][j] += a[i][k] * bt[j][k]
			}
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-05", Name: "ikj loop order", Expected: ClassMatrixMultiply, Difficulty: DifficultyMedium,
		Description: "Cache-friendlier ikj ordering of the dense matrix product.",
		Code: `func matMulIKJ(a, b [][]float64) [][]float64 {
	n := len(a)
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i][k]
			for j := 0; j < n; j++ {
				c[i][j] += aik * b[k][j]
			}
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-06", Name: "Tiled product", Expected: ClassMatrixMultiply, Difficulty: DifficultyMedium,
		Description: "Blocked matrix product working tile by tile.",
		Code: `func tiledMatMul(a, b [][]float64, tile int) [][]float64 {
	n := len(a)
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, n)
	}
	for ii := 0; ii < n; ii += tile {
		for kk := 0; kk < n; kk += tile {
			for jj := 0; jj < n; jj += tile {
				for i := ii; i < ii+tile && i < n; i++ {
					for k := kk; k < kk+tile && k < n; k++ {
						for j := jj; j < jj+tile && j < n; j++ {
							c[i][j] += a[i][k] * b[k][j]
						}
					}
				}
			}
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-07", Name: "Modular product", Expected: ClassMatrixMultiply, Difficulty: DifficultyMedium,
		Description: "Matrix product with every entry reduced modulo a prime.",
		Code: `func matMulMod(a, b [][]int64, mod int64) [][]int64 {
	n := len(a)
	c := make([][]int64, n)
	for i := 0; i < n; i++ {
		c[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			var sum int64
			for k := 0; k < n; k++ {
				sum = (sum + a[i][k]*b[k][j]) % mod
			}
			c[i][j] = sum
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-08", Name: "Matrix power", Expected: ClassMatrixMultiply, Difficulty: DifficultyHard,
		Description: "Repeated squaring built on the dense matrix product.",
		Code: `func matrixPower(m [][]int64, e int, mod int64) [][]int64 {
	n := len(m)
	result := make([][]int64, n)
	for i := range result {
		result[i] = make([]int64, n)
		result[i][i] = 1
	}
	mul := func(x, y [][]int64) [][]int64 {
		z := make([][]int64, n)
		for i := 0; i < n; i++ {
			z[i] = make([]int64, n)
			for k := 0; k < n; k++ {
				for j := 0; j < n; j++ {
					z[i][j] = (z[i][j] + x[i][k]*y[k][j]) % mod
				}
			}
		}
		return z
	}
	for ; e > 0; e /= 2 {
		if e%2 == 1 {
			result = mul(result, m)
		}
		m = mul(m, m)
	}
	return result
}`,
	},
	{
		ID: "matrix-multiply-09", Name: "Winograd form", Expected: ClassMatrixMultiply, Difficulty: DifficultyHard,
		Description: "Winograd's pairwise-product rearrangement of the matrix product.",
		Code: `func winogradMatMul(a, b [][]float64) [][]float64 {
	n := len(a)
	rowFactor := make([]float64, n)
	colFactor := make([]float64, n)
	for i := 0; i < n; i++ {
		for k := 0; k+1 < n; k += 2 {
			rowFactor[i] += a[i][k] * a[i][k+1]
		}
	}
	for j := 0; j < n; j++ {
		for k := 0; k+1 < n; k += 2 {
			colFactor[j] += b[k][j] * b[k+1][j]
		}
	}
	c := make([][]float64, n)
	for i := range c {
		c[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			c[i][j] = -rowFactor[i] - colFactor[j]
			for k := 0; k+1 < n; k += 2 {
				c[i][j] += (a[i][k] + b[k+1][j]) * (a[i][k+1] + b[k][j])
			}
			if n%2 == 1 {
				c[i][j] += a[i][n-1] * b[n-1][j]
			}
		}
	}
	return c
}`,
	},
	{
		ID: "matrix-multiply-10", Name: "Boolean matrix product", Expected: ClassMatrixMultiply, Difficulty: DifficultyHard,
		Description: "Reachability-style boolean matrix product with early exit per cell.",
		Code: `func boolMatMul(a, b [][]bool) [][]bool {
	n := len(a)
	c := make([][]bool, n)
	for i := 0; i < n; i++ {
		c[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if a[i][k] && b[k][j] {
					c[i][j] = true
					break
				}
			}
		}
	}
	return c
}`,
	},

	// --- tree-traversal ---
	{
		ID: "tree-traversal-01", Name: "Inorder walk", Expected: ClassTreeTraversal, Difficulty: DifficultyEasy,
		Description: "Recursive left-node-right visit of a binary tree.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func inorder(root *TreeNode, out *[]int) {
	if root == nil {
		return
	}
	inorder(root.Left, out)
	*out = append(*out, root.Val)
	inorder(root.Right, out)
}`,
	},
	{
		ID: "tree-traversal-02", Name: "Preorder walk", Expected: ClassTreeTraversal, Difficulty: DifficultyEasy,
		Description: "Recursive node-left-right visit of a binary tree.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func preorder(root *TreeNode, out *[]int) {
	if root == nil {
		return
	}
	*out = append(*out, root.Val)
	preorder(root.Left, out)
	preorder(root.Right, out)
}`,
	},
	{
		ID: "tree-traversal-03", Name: "Postorder walk", Expected: ClassTreeTraversal, Difficulty: DifficultyEasy,
		Description: "Recursive left-right-node visit of a binary tree.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func postorder(root *TreeNode, out *[]int) {
	if root == nil {
		return
	}
	postorder(root.Left, out)
	postorder(root.Right, out)
	*out = append(*out, root.Val)
}`,
	},
	{
		ID: "tree-traversal-04", Name: "Tree height", Expected: ClassTreeTraversal, Difficulty: DifficultyEasy,
		Description: "Recursive depth computation over every node of the tree.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func height(root *TreeNode) int {
	if root == nil {
		return 0
	}
	l := height(root.Left)
	r := height(root.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}`,
	},
	{
		ID: "tree-traversal-05", Name: "Leaf count", Expected: ClassTreeTraversal, Difficulty: DifficultyMedium,
		Description: "Recursive count of every leaf node in the tree.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func leafCount(root *TreeNode) int {
	if root == nil {
		return 0
	}
	if root.Left == nil && root.Right == nil {
		return 1
	}
	return leafCount(root.Left) + leafCount(root.Right)
}`,
	},
	{
		ID: "tree-traversal-06", Name: "Subtree sums", Expected: ClassTreeTraversal, Difficulty: DifficultyMedium,
		Description: "Bottom-up recursive accumulation of every subtree total.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func subtreeSum(root *TreeNode) int {
	if root == nil {
		return 0
	}
	return root.Val + subtreeSum(root.Left) + subtreeSum(root.Right)
}`,
	},
	{
		ID: "tree-traversal-07", Name: "Mirror tree", Expected: ClassTreeTraversal, Difficulty: DifficultyMedium,
		Description: "Recursive visit swapping children at every node of the tree.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func mirror(root *TreeNode) *TreeNode {
	if root == nil {
		return nil
	}
	root.Left, root.Right = mirror(root.Right), mirror(root.Left)
	return root
}`,
	},
	{
		ID: "tree-traversal-08", Name: "Root-to-leaf paths", Expected: ClassTreeTraversal, Difficulty: DifficultyHard,
		Description: "Recursive descent collecting the value path to every leaf.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func leafPaths(root *TreeNode, trail []int, out *[][]int) {
	if root == nil {
		return
	}
	trail = append(trail, root.Val)
	if root.Left == nil && root.Right == nil {
		path := make([]int, len(trail))
		copy(path, trail)
		*out = append(*out, path)
		return
	}
	leafPaths(root.Left, trail, out)
	leafPaths(root.Right, trail, out)
}`,
	},
	{
		ID: "tree-traversal-09", Name: "Serialize tree", Expected: ClassTreeTraversal, Difficulty: DifficultyHard,
		Description: "Recursive preorder flattening of the tree with nil markers.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func serialize(root *TreeNode, out *[]int) {
	if root == nil {
		*out = append(*out, -1)
		return
	}
	*out = append(*out, root.Val)
	serialize(root.Left, out)
	serialize(root.Right, out)
}`,
	},
	{
		ID: "tree-traversal-10", Name: "Iterative inorder", Expected: ClassTreeTraversal, Difficulty: DifficultyHard,
		Description: "Stack-driven inorder walk; no recursion, so surface cues are weak.",
		Code: `type TreeNode struct {
	Val         int
	Left, Right *TreeNode
}

func inorderIter(root *TreeNode) []int {
	var out []int
	var pending []*TreeNode
	cur := root
	for cur != nil || len(pending) > 0 {
		for cur != nil {
			pending = append(pending, cur)
			cur = cur.Left
		}
		cur = pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		out = append(out, cur.Val)
		cur = cur.Right
	}
	return out
}`,
	},
}
