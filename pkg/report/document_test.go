package report

import (
	"testing"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/jsonutil"
)

// TestDocumentShape verifies the public field-name contract of the
// structured report.
func TestDocumentShape(t *testing.T) {
	b := NewBuilder(sshProfile())
	b.SetVersion("9.9.9")
	b.Add(&check.Result{
		ID:        "c1",
		ProfileID: "p",
		Status:    check.StatusFailed,
		CodeDesc:  "Protocol should eq 2",
		Message:   "expected 2, got 1",
		RunTime:   0.004,
		StartTime: "2026-08-26T10:00:00Z",
	})
	b.Add(&check.Result{ID: "z", ProfileID: "ghost", Status: check.StatusPassed, CodeDesc: "orphan"})

	raw, err := jsonutil.Marshal(b.Document(1.25))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc map[string]any
	if err := jsonutil.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	for _, key := range []string{"version", "statistics", "controls", "other_checks", "profiles"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("document missing key %q", key)
		}
	}
	if doc["version"] != "9.9.9" {
		t.Errorf("version = %v", doc["version"])
	}

	stats, ok := doc["statistics"].(map[string]any)
	if !ok || stats["duration"] != 1.25 {
		t.Errorf("statistics = %v, want duration 1.25", doc["statistics"])
	}

	controls := doc["controls"].([]any)
	if len(controls) != 1 {
		t.Fatalf("flat controls = %d, want 1", len(controls))
	}
	flat := controls[0].(map[string]any)
	for _, key := range []string{"id", "profile_id", "status", "code_desc", "message", "run_time", "start_time"} {
		if _, ok := flat[key]; !ok {
			t.Errorf("flat result missing key %q", key)
		}
	}

	other := doc["other_checks"].([]any)
	if len(other) != 1 {
		t.Fatalf("other_checks = %d, want 1", len(other))
	}
}

// TestDocumentStripsNestedIDs verifies results nested under a profile's
// control drop their id and profile_id.
func TestDocumentStripsNestedIDs(t *testing.T) {
	b := NewBuilder(sshProfile())
	b.Add(&check.Result{ID: "c1", ProfileID: "p", Status: check.StatusPassed, CodeDesc: "ok"})

	raw, err := jsonutil.Marshal(b.Document(0))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var doc map[string]any
	if err := jsonutil.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	profiles := doc["profiles"].([]any)
	nested := profiles[0].(map[string]any)["controls"].([]any)[0].(map[string]any)["results"].([]any)[0].(map[string]any)
	if _, ok := nested["id"]; ok {
		t.Error("nested result must not carry id")
	}
	if _, ok := nested["profile_id"]; ok {
		t.Error("nested result must not carry profile_id")
	}
	if nested["code_desc"] != "ok" {
		t.Errorf("nested code_desc = %v", nested["code_desc"])
	}

	// The flat view keeps the tags the nested view strips.
	flat := doc["controls"].([]any)[0].(map[string]any)
	if flat["id"] != "c1" || flat["profile_id"] != "p" {
		t.Errorf("flat result tags = (%v, %v), want (c1, p)", flat["id"], flat["profile_id"])
	}
}
