package effaudit

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

// Notifier posts benchmark summaries to a Slack channel.
type Notifier struct {
	api       *slack.Client
	channelID string
}

// NewNotifier returns a Notifier, or nil when token or channel is
// unset (notifications disabled).
func NewNotifier(botToken, channelID string) *Notifier {
	if botToken == "" || channelID == "" {
		return nil
	}
	return &Notifier{api: slack.New(botToken), channelID: channelID}
}

// NotifyBenchmark posts the run scorecard; a non-empty drift string
// is prepended as a warning line.
func (n *Notifier) NotifyBenchmark(summary BenchmarkSummary, drift string) error {
	msg := FormatBenchmarkSummary(summary)
	if drift != "" {
		msg = ":warning: " + drift + "\n" + msg
	}
	_, _, err := n.api.PostMessage(n.channelID, slack.MsgOptionText(msg, false))
	return err
}

// FormatBenchmarkSummary renders a run as a short multi-line report.
func FormatBenchmarkSummary(summary BenchmarkSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Classifier validation: %d/%d correct (%.1f%%), mean confidence %.2f, %s\n",
		summary.Correct, summary.Total, summary.Accuracy*100, summary.MeanConfidence,
		summary.Elapsed.Round(time.Millisecond))

	classes := make([]string, 0, len(summary.ByClass))
	for class := range summary.ByClass {
		classes = append(classes, string(class))
	}
	sort.Strings(classes)
	for _, class := range classes {
		cs := summary.ByClass[ProblemClass(class)]
		fmt.Fprintf(&b, "  %s: %d/%d\n", class, cs.Correct, cs.Total)
	}

	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if ds, ok := summary.ByDifficulty[d]; ok {
			fmt.Fprintf(&b, "  %s: %d/%d\n", d, ds.Correct, ds.Total)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
