package effaudit

import (
	"strings"
	"testing"
	"time"
)

func TestNewNotifierDisabledWithoutCredentials(t *testing.T) {
	if n := NewNotifier("", "C123"); n != nil {
		t.Fatalf("missing token must disable notifications")
	}
	if n := NewNotifier("xoxb-token", ""); n != nil {
		t.Fatalf("missing channel must disable notifications")
	}
	if n := NewNotifier("xoxb-token", "C123"); n == nil {
		t.Fatalf("full credentials must enable notifications")
	}
}

func TestFormatBenchmarkSummary(t *testing.T) {
	summary := BenchmarkSummary{
		Total:          100,
		Correct:        97,
		Accuracy:       0.97,
		MeanConfidence: 0.71,
		Elapsed:        1234 * time.Millisecond,
		ByClass: map[ProblemClass]ClassStats{
			ClassGraphBFS:       {Total: 10, Correct: 10, Accuracy: 1},
			ClassComparisonSort: {Total: 10, Correct: 9, Accuracy: 0.9},
		},
		ByDifficulty: map[Difficulty]ClassStats{
			DifficultyEasy: {Total: 40, Correct: 40, Accuracy: 1},
			DifficultyHard: {Total: 30, Correct: 27, Accuracy: 0.9},
		},
	}
	got := FormatBenchmarkSummary(summary)

	if !strings.Contains(got, "97/100 correct (97.0%)") {
		t.Fatalf("headline missing: %q", got)
	}
	if !strings.Contains(got, "comparison-sort: 9/10") || !strings.Contains(got, "graph-bfs: 10/10") {
		t.Fatalf("class lines missing: %q", got)
	}
	if !strings.Contains(got, "easy: 40/40") || !strings.Contains(got, "hard: 27/30") {
		t.Fatalf("difficulty lines missing: %q", got)
	}
	// Class lines come out sorted for stable rendering.
	if strings.Index(got, "comparison-sort") > strings.Index(got, "graph-bfs") {
		t.Fatalf("class lines not sorted: %q", got)
	}
}
