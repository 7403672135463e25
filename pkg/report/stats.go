package report

import (
	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/severity"
)

// Statistics is the run-wide statistics block of the structured
// document. Duration is in seconds.
type Statistics struct {
	Duration float64 `json:"duration"`
}

// ControlTotals counts non-anonymous controls by rollup outcome.
// A control rolling up minor, major, failed, or critical counts as
// failed; the Critical/Major/Minor fields break the failures down by
// tier. Passed includes empty controls.
type ControlTotals struct {
	Passed   int `json:"passed"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
	Critical int `json:"critical"`
	Major    int `json:"major"`
	Minor    int `json:"minor"`
}

// TestTotals counts individual results across all unique controls,
// anonymous included.
type TestTotals struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Total returns the flat number of counted results.
func (t TestTotals) Total() int {
	return t.Passed + t.Failed + t.Skipped
}

// uniqueControls deduplicates controls by (id, profile_id) value
// equality, keeping first-seen order. The same control reached through
// more than one code path must count once.
func uniqueControls(controls []*check.Control) []*check.Control {
	out := make([]*check.Control, 0, len(controls))
	for _, c := range controls {
		dup := false
		for _, seen := range out {
			if seen.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}

// controlTotals folds unique, non-anonymous controls into run-level
// control statistics. Anonymous controls are excluded here but their
// results still count in testTotals.
func controlTotals(controls []*check.Control) ControlTotals {
	var t ControlTotals
	for _, c := range uniqueControls(controls) {
		if c.Anonymous() {
			continue
		}
		switch roll := c.Rollup(); {
		case roll == severity.Skipped:
			t.Skipped++
		case roll.IsFailure():
			t.Failed++
			switch roll {
			case severity.Critical:
				t.Critical++
			case severity.Major:
				t.Major++
			case severity.Minor:
				t.Minor++
			}
		default:
			// passed, or empty (unknown)
			t.Passed++
		}
	}
	return t
}

// testTotals flat-counts the results of all unique controls.
func testTotals(controls []*check.Control) TestTotals {
	var t TestTotals
	for _, c := range uniqueControls(controls) {
		for _, r := range c.Results {
			switch r.Status {
			case check.StatusPassed:
				t.Passed++
			case check.StatusFailed:
				t.Failed++
			case check.StatusSkipped:
				t.Skipped++
			}
		}
	}
	return t
}
