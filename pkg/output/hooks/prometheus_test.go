package hooks

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/output/events"
	"github.com/verdictsh/verdict/pkg/report"
)

// newTestPrometheusHook creates a hook with the HTTP server disabled.
func newTestPrometheusHook(t *testing.T) *PrometheusHook {
	t.Helper()
	hook, err := NewPrometheusHook(PrometheusOptions{})
	if err != nil {
		t.Fatalf("new hook: %v", err)
	}
	t.Cleanup(func() { _ = hook.Close() })
	return hook
}

// TestPrometheusHookCounters verifies the per-result counters.
func TestPrometheusHookCounters(t *testing.T) {
	hook := newTestPrometheusHook(t)
	ctx := context.Background()

	impact := 0.8
	control := &check.Control{ID: "c1", ProfileID: "linux-baseline", Impact: &impact}

	results := []*check.Result{
		{ProfileID: "linux-baseline", Status: check.StatusPassed, CodeDesc: "a"},
		{ProfileID: "linux-baseline", Status: check.StatusFailed, CodeDesc: "b"},
		{ProfileID: "linux-baseline", Status: check.StatusFailed, CodeDesc: "c"},
	}
	for _, r := range results {
		err := hook.OnEvent(ctx, &events.ResultEvent{
			BaseEvent: events.BaseEvent{Type: events.EventTypeResult},
			Result:    r,
			Control:   control,
		})
		if err != nil {
			t.Fatalf("on event: %v", err)
		}
	}

	if got := testutil.ToFloat64(hook.testsTotal.WithLabelValues("linux-baseline", "failed")); got != 2 {
		t.Errorf("failed tests counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(hook.testsTotal.WithLabelValues("linux-baseline", "passed")); got != 1 {
		t.Errorf("passed tests counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(hook.severityTotal.WithLabelValues("critical")); got != 2 {
		t.Errorf("critical severity counter = %v, want 2", got)
	}
}

// TestPrometheusHookUnknownProfile verifies the placeholder label for
// results outside any profile.
func TestPrometheusHookUnknownProfile(t *testing.T) {
	hook := newTestPrometheusHook(t)

	err := hook.OnEvent(context.Background(), &events.ResultEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeResult},
		Result:    &check.Result{Status: check.StatusPassed, CodeDesc: "loose"},
	})
	if err != nil {
		t.Fatalf("on event: %v", err)
	}

	if got := testutil.ToFloat64(hook.testsTotal.WithLabelValues("unknown", "passed")); got != 1 {
		t.Errorf("unknown-profile counter = %v, want 1", got)
	}
}

// TestPrometheusHookGauges verifies the run-level gauges set at
// completion.
func TestPrometheusHookGauges(t *testing.T) {
	hook := newTestPrometheusHook(t)

	err := hook.OnEvent(context.Background(), &events.CompleteEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeComplete},
		Report:    &report.Document{Statistics: report.Statistics{Duration: 2.25}},
		Controls:  report.ControlTotals{Passed: 3, Failed: 1, Skipped: 2},
	})
	if err != nil {
		t.Fatalf("on event: %v", err)
	}

	if got := testutil.ToFloat64(hook.controls.WithLabelValues("passed")); got != 3 {
		t.Errorf("passed gauge = %v, want 3", got)
	}
	if got := testutil.ToFloat64(hook.controls.WithLabelValues("skipped")); got != 2 {
		t.Errorf("skipped gauge = %v, want 2", got)
	}
	if got := testutil.ToFloat64(hook.runDurationSeconds); got != 2.25 {
		t.Errorf("duration gauge = %v, want 2.25", got)
	}
}

// TestPrometheusHookClosed verifies events after Close are ignored.
func TestPrometheusHookClosed(t *testing.T) {
	hook := newTestPrometheusHook(t)
	if err := hook.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	err := hook.OnEvent(context.Background(), &events.ResultEvent{
		BaseEvent: events.BaseEvent{Type: events.EventTypeResult},
		Result:    &check.Result{Status: check.StatusPassed},
	})
	if err != nil {
		t.Fatalf("on event after close: %v", err)
	}
	if got := testutil.ToFloat64(hook.testsTotal.WithLabelValues("unknown", "passed")); got != 0 {
		t.Errorf("counter moved after close: %v", got)
	}
	if hook.MetricsAddr() != "" {
		t.Errorf("server disabled but addr = %q", hook.MetricsAddr())
	}
}
