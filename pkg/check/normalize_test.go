package check

import (
	"testing"
)

// TestNormalizePending verifies pending is rewritten to skipped with the
// skip reason and resource attached.
func TestNormalizePending(t *testing.T) {
	r := Normalize(Source{
		ID:              "c1",
		ProfileID:       "p",
		Status:          StatusPending,
		FullDescription: "File /tmp should exist",
		SkipMessage:     "Not yet implemented",
		Resource:        "File /tmp",
		RunTime:         0.001,
		StartTime:       "2026-08-26T10:00:00Z",
	})

	if r.Status != StatusSkipped {
		t.Errorf("status = %s, want skipped", r.Status)
	}
	if r.SkipMessage != "Not yet implemented" {
		t.Errorf("skip_message = %q", r.SkipMessage)
	}
	if r.Resource != "File /tmp" {
		t.Errorf("resource = %q", r.Resource)
	}
}

// TestNormalizeGroupSkip verifies the grouping label wins over the full
// nested description when the test was skipped at the group level.
func TestNormalizeGroupSkip(t *testing.T) {
	r := Normalize(Source{
		ID:               "c1",
		Status:           StatusSkipped,
		FullDescription:  "Service nginx should be running",
		GroupDescription: "Service nginx",
		GroupSkipped:     true,
	})
	if r.CodeDesc != "Service nginx" {
		t.Errorf("code_desc = %q, want group label", r.CodeDesc)
	}

	r = Normalize(Source{
		ID:               "c1",
		Status:           StatusPassed,
		FullDescription:  "Service nginx should be running",
		GroupDescription: "Service nginx",
	})
	if r.CodeDesc != "Service nginx should be running" {
		t.Errorf("code_desc = %q, want full description", r.CodeDesc)
	}
}

// TestNormalizeException verifies assertion failures surface only a
// message while non-assertion exceptions add class and backtrace.
func TestNormalizeException(t *testing.T) {
	t.Run("assertion failure", func(t *testing.T) {
		r := Normalize(Source{
			ID:     "c1",
			Status: StatusFailed,
			Exception: &Exception{
				Class:     "ExpectationNotMet",
				Message:   "expected 0644, got 0777",
				Backtrace: []string{"matcher.rb:10"},
				Assertion: true,
			},
		})
		if r.Message != "expected 0644, got 0777" {
			t.Errorf("message = %q", r.Message)
		}
		if r.Exception != "" || r.Backtrace != nil {
			t.Error("assertion failure must not surface exception class or backtrace")
		}
	})

	t.Run("non-assertion exception", func(t *testing.T) {
		r := Normalize(Source{
			ID:     "c1",
			Status: StatusFailed,
			Exception: &Exception{
				Class:     "RuntimeError",
				Message:   "boom",
				Backtrace: []string{"check.rb:3", "runner.rb:44"},
			},
		})
		if r.Exception != "RuntimeError" {
			t.Errorf("exception = %q", r.Exception)
		}
		if len(r.Backtrace) != 2 {
			t.Errorf("backtrace length = %d, want 2", len(r.Backtrace))
		}
	})
}

// TestNormalizeNoSideEffects verifies the source record is left untouched.
func TestNormalizeNoSideEffects(t *testing.T) {
	src := Source{ID: "c1", Status: StatusPending, SkipMessage: "later"}
	_ = Normalize(src)
	if src.Status != StatusPending {
		t.Error("source record must not be mutated")
	}
}
