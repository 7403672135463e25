package events

import "github.com/verdictsh/verdict/pkg/report"

// CompleteEvent carries the finished structured report and the run
// totals. It is the last event of a run; an empty run still emits it so
// every writer can produce valid, empty-but-well-formed output.
type CompleteEvent struct {
	BaseEvent
	Report   *report.Document     `json:"report"`
	Controls report.ControlTotals `json:"controls"`
	Tests    report.TestTotals    `json:"tests"`
}
