package effaudit

import (
	"context"
	"log"
	"time"
)

// BenchmarkResult is the outcome of classifying one corpus case.
type BenchmarkResult struct {
	CaseID     string
	Name       string
	Expected   ProblemClass
	Actual     ProblemClass
	Correct    bool
	Confidence float64
	Difficulty Difficulty
	Latency    time.Duration
	Reasoning  string
}

// ClassStats aggregates accuracy for one slice of the corpus.
type ClassStats struct {
	Total    int
	Correct  int
	Accuracy float64
}

// BenchmarkSummary is the full scorecard of a corpus run.
type BenchmarkSummary struct {
	Total          int
	Correct        int
	Accuracy       float64
	ByClass        map[ProblemClass]ClassStats
	ByDifficulty   map[Difficulty]ClassStats
	MeanConfidence float64
	MeanLatency    time.Duration
	StartedAt      time.Time
	Elapsed        time.Duration
	Results        []BenchmarkResult
}

// BenchmarkOptions tunes a corpus run. Zero values select the full
// corpus at the default concurrency.
type BenchmarkOptions struct {
	// Cases to run; nil means the whole built-in corpus.
	Cases []BenchmarkCase
	// Concurrency caps in-flight classifications; <=0 means 4.
	Concurrency int
}

const defaultBenchmarkConcurrency = 4

// RunBenchmark classifies every case through the given classifier and
// scores the results against the corpus labels. Cases run
// concurrently under a semaphore; results keep corpus order.
func RunBenchmark(ctx context.Context, classifier *Classifier, opts BenchmarkOptions) BenchmarkSummary {
	cases := opts.Cases
	if cases == nil {
		cases = BenchmarkCases()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = defaultBenchmarkConcurrency
	}

	log.Printf("benchmark start cases=%d concurrency=%d", len(cases), concurrency)
	startedAt := time.Now()

	results := make([]BenchmarkResult, len(cases))
	sem := make(chan struct{}, concurrency)
	done := make(chan int, len(cases))
	for i := range cases {
		go func(i int, bc BenchmarkCase) {
			sem <- struct{}{}
			defer func() { <-sem; done <- i }()

			caseStart := time.Now()
			cls := classifier.Classify(ctx, bc.Code)
			results[i] = BenchmarkResult{
				CaseID:     bc.ID,
				Name:       bc.Name,
				Expected:   bc.Expected,
				Actual:     cls.Class,
				Correct:    cls.Class == bc.Expected,
				Confidence: cls.Confidence,
				Difficulty: bc.Difficulty,
				Latency:    time.Since(caseStart),
				Reasoning:  cls.Reasoning,
			}
		}(i, cases[i])
	}
	for range cases {
		<-done
	}

	summary := summarizeBenchmark(results)
	summary.StartedAt = startedAt
	summary.Elapsed = time.Since(startedAt)
	log.Printf("benchmark done cases=%d correct=%d accuracy=%.1f%% elapsed=%s",
		summary.Total, summary.Correct, summary.Accuracy*100, summary.Elapsed.Round(time.Millisecond))
	return summary
}

func summarizeBenchmark(results []BenchmarkResult) BenchmarkSummary {
	summary := BenchmarkSummary{
		Total:        len(results),
		ByClass:      make(map[ProblemClass]ClassStats),
		ByDifficulty: make(map[Difficulty]ClassStats),
		Results:      results,
	}

	var confSum float64
	var latSum time.Duration
	for _, r := range results {
		cs := summary.ByClass[r.Expected]
		cs.Total++
		ds := summary.ByDifficulty[r.Difficulty]
		ds.Total++
		if r.Correct {
			summary.Correct++
			cs.Correct++
			ds.Correct++
		}
		summary.ByClass[r.Expected] = cs
		summary.ByDifficulty[r.Difficulty] = ds
		confSum += r.Confidence
		latSum += r.Latency
	}

	if summary.Total > 0 {
		summary.Accuracy = float64(summary.Correct) / float64(summary.Total)
		summary.MeanConfidence = confSum / float64(summary.Total)
		summary.MeanLatency = latSum / time.Duration(summary.Total)
	}
	for class, cs := range summary.ByClass {
		cs.Accuracy = float64(cs.Correct) / float64(cs.Total)
		summary.ByClass[class] = cs
	}
	for d, ds := range summary.ByDifficulty {
		ds.Accuracy = float64(ds.Correct) / float64(ds.Total)
		summary.ByDifficulty[d] = ds
	}
	return summary
}
