package effaudit

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// driftTolerance is how far accuracy may fall below the previous run
// before the drop is reported as drift rather than noise.
const driftTolerance = 0.02

// StartValidationScheduler starts a cron-based scheduler that
// periodically re-runs the benchmark corpus through the classifier,
// persists the run, and reports accuracy drift.
// The schedule is a standard 5-field cron expression (minute hour
// day-of-month month day-of-week). Examples: "0 6 * * *" (daily 6am),
// "0 6 * * 1" (Mondays 6am).
func StartValidationScheduler(cfg Config, classifier *Classifier, store *Store, notifier *Notifier) {
	schedule := strings.TrimSpace(cfg.ValidateSchedule)
	if schedule == "" {
		log.Println("Scheduled validation disabled (validate_schedule not set)")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid validate_schedule '%s': %v, scheduled validation disabled", schedule, err)
		return
	}
	log.Printf("Scheduled validation enabled (cron: %s)", schedule)

	go func() {
		for {
			now := time.Now()
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next validation at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			RunScheduledValidation(context.Background(), cfg, classifier, store, notifier)
		}
	}()
}

// RunScheduledValidation performs one validation cycle: benchmark,
// persist, drift check, notify. Failures in the persistence and
// notification steps are logged and skipped; the run itself always
// completes.
func RunScheduledValidation(ctx context.Context, cfg Config, classifier *Classifier, store *Store, notifier *Notifier) BenchmarkSummary {
	summary := RunBenchmark(ctx, classifier, BenchmarkOptions{Concurrency: cfg.BenchmarkConcurrency})

	var previous *BenchmarkRun
	if store != nil {
		if runs, err := store.GetRecentBenchmarkRuns(1); err != nil {
			log.Printf("validation history read error (non-fatal): %v", err)
		} else if len(runs) > 0 {
			previous = &runs[0]
		}
		if _, err := store.InsertBenchmarkRun(summary); err != nil {
			log.Printf("validation history write error (non-fatal): %v", err)
		}
	}

	drift := DetectDrift(summary, previous, cfg.AccuracyThreshold)
	if drift != "" {
		log.Printf("validation drift detected: %s", drift)
	}

	if notifier != nil {
		if err := notifier.NotifyBenchmark(summary, drift); err != nil {
			log.Printf("validation notify error (non-fatal): %v", err)
		}
	}
	return summary
}

// DetectDrift compares a fresh run against the previous one and the
// configured floor. It returns an empty string when accuracy is
// healthy, otherwise a short description of what slipped.
func DetectDrift(summary BenchmarkSummary, previous *BenchmarkRun, threshold float64) string {
	var problems []string
	if summary.Accuracy < threshold {
		problems = append(problems, fmt.Sprintf("accuracy %.1f%% below threshold %.1f%%", summary.Accuracy*100, threshold*100))
	}
	if previous != nil && summary.Accuracy < previous.Accuracy-driftTolerance {
		problems = append(problems, fmt.Sprintf("accuracy %.1f%% down from %.1f%%", summary.Accuracy*100, previous.Accuracy*100))
	}
	return strings.Join(problems, "; ")
}
