package check

// Source is one raw record as emitted by the test-execution engine.
// It is the only shape the engine accepts at its boundary; framework
// internals never leak past Normalize.
type Source struct {
	ID               string     `json:"id"`
	ProfileID        string     `json:"profile_id,omitempty"`
	Status           Status     `json:"status"`
	FullDescription  string     `json:"full_description"`
	GroupDescription string     `json:"group_description,omitempty"`
	GroupSkipped     bool       `json:"group_skipped,omitempty"`
	SkipMessage      string     `json:"skip_message,omitempty"`
	Resource         string     `json:"resource,omitempty"`
	Exception        *Exception `json:"exception,omitempty"`
	RunTime          float64    `json:"run_time"`
	StartTime        string     `json:"start_time"`
}

// Exception carries failure detail attached to a raw record. Assertion
// marks a plain assertion failure: those surface only their message,
// never the exception class or backtrace, so framework matcher types do
// not leak into reports.
type Exception struct {
	Class     string   `json:"class,omitempty"`
	Message   string   `json:"message,omitempty"`
	Backtrace []string `json:"backtrace,omitempty"`
	Assertion bool     `json:"assertion,omitempty"`
}

// Normalize converts one raw execution record into the canonical result
// shape. Pending is rewritten to skipped, keeping the skip reason and
// the resource under test. The description comes from the grouping label
// when the test was skipped at the group level, otherwise from the full
// nested description. No side effects beyond producing the record.
func Normalize(src Source) *Result {
	r := &Result{
		ID:        src.ID,
		ProfileID: src.ProfileID,
		Status:    src.Status,
		CodeDesc:  src.FullDescription,
		RunTime:   src.RunTime,
		StartTime: src.StartTime,
	}

	if src.Status == StatusPending || src.Status == StatusSkipped {
		r.Status = StatusSkipped
		r.SkipMessage = src.SkipMessage
		r.Resource = src.Resource
	}

	if src.GroupSkipped && src.GroupDescription != "" {
		r.CodeDesc = src.GroupDescription
	}

	if ex := src.Exception; ex != nil {
		r.Message = ex.Message
		if !ex.Assertion {
			r.Exception = ex.Class
			r.Backtrace = append([]string(nil), ex.Backtrace...)
		}
	}

	return r
}
