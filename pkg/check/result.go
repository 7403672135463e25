// Package check defines the canonical data model for compliance check
// results: the per-test result record, the profile and control
// descriptors declared by the authoring framework, and the engine-built
// control grouping. The JSON field names on Result are a public contract
// for downstream report consumers.
package check

import "github.com/verdictsh/verdict/pkg/severity"

// Status is the execution status of a single test.
type Status string

const (
	// StatusPassed indicates the test passed.
	StatusPassed Status = "passed"

	// StatusFailed indicates the test failed.
	StatusFailed Status = "failed"

	// StatusSkipped indicates the test was not executed.
	StatusSkipped Status = "skipped"

	// StatusPending indicates a test marked pending by the execution
	// engine. The normalizer rewrites pending to skipped; pending never
	// appears on a canonical Result.
	StatusPending Status = "pending"
)

// Result is the canonical per-test record. Created once per executed
// test by Normalize and immutable afterwards.
type Result struct {
	ID          string   `json:"id,omitempty"`
	ProfileID   string   `json:"profile_id,omitempty"`
	Status      Status   `json:"status"`
	CodeDesc    string   `json:"code_desc"`
	Message     string   `json:"message,omitempty"`
	Exception   string   `json:"exception,omitempty"`
	Backtrace   []string `json:"backtrace,omitempty"`
	RunTime     float64  `json:"run_time"`
	StartTime   string   `json:"start_time"`
	SkipMessage string   `json:"skip_message,omitempty"`
	Resource    string   `json:"resource,omitempty"`
}

// Severity classifies the result against the owning control's impact.
// Impact is only consulted for failed results.
func (r *Result) Severity(impact *float64) severity.Severity {
	return severity.FromStatus(string(r.Status), impact)
}

// Stripped returns a copy of the result without its id and profile_id,
// for nesting under a profile's control in the structured document.
func (r *Result) Stripped() *Result {
	c := *r
	c.ID = ""
	c.ProfileID = ""
	return &c
}
