package notify

import (
	"fmt"
	"strings"
	"time"
)

// RunSummary describes the outcome of a test run.
type RunSummary struct {
	Environment string
	Passed      int
	Failed      int
	Skipped     int
	Duration    time.Duration
	ReportURL   string
	FinishedAt  time.Time
}

func (s RunSummary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Message renders the summary as a Telegram-friendly text block.
func (s RunSummary) Message() string {
	var b strings.Builder

	verdict := "PASSED"
	if s.Failed > 0 {
		verdict = "FAILED"
	}
	fmt.Fprintf(&b, "Sales Portal test run %s\n", verdict)
	if s.Environment != "" {
		fmt.Fprintf(&b, "Environment: %s\n", s.Environment)
	}
	fmt.Fprintf(&b, "Total: %d | Passed: %d | Failed: %d | Skipped: %d\n",
		s.Total(), s.Passed, s.Failed, s.Skipped)
	if s.Duration > 0 {
		fmt.Fprintf(&b, "Duration: %s\n", s.Duration.Round(time.Second))
	}
	if !s.FinishedAt.IsZero() {
		fmt.Fprintf(&b, "Finished: %s\n", s.FinishedAt.Format("2006/01/02 15:04:05"))
	}
	if s.ReportURL != "" {
		fmt.Fprintf(&b, "Report: %s", s.ReportURL)
	}
	return strings.TrimRight(b.String(), "\n")
}
