package events

// StartEvent announces the beginning of a run. Target is the display
// string for the system under test, empty when unknown.
type StartEvent struct {
	BaseEvent
	Target string `json:"target,omitempty"`
}
