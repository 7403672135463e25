package events

import (
	"testing"
	"time"
)

// TestBaseEventAccessors verifies the Event interface plumbing.
func TestBaseEventAccessors(t *testing.T) {
	now := time.Now()
	e := StartEvent{
		BaseEvent: BaseEvent{Type: EventTypeStart, Time: now, Run: "run-1"},
		Target:    "ssh://root@example",
	}

	var ev Event = e
	if ev.EventType() != EventTypeStart {
		t.Errorf("event type = %s", ev.EventType())
	}
	if !ev.Timestamp().Equal(now) {
		t.Error("timestamp mismatch")
	}
	if ev.RunID() != "run-1" {
		t.Errorf("run id = %s", ev.RunID())
	}
}
