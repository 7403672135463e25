// Package events defines the event types flowing from the reporting
// engine to its writers and hooks. Events are designed for JSON
// serialization and carry the run id that produced them.
package events

import "time"

// EventType represents the type of output event.
type EventType string

const (
	// EventTypeStart indicates a run has started.
	EventTypeStart EventType = "start"
	// EventTypeResult indicates a single check result.
	EventTypeResult EventType = "result"
	// EventTypeComplete indicates a run has completed.
	EventTypeComplete EventType = "complete"
)

// Event is the base interface for all events.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
	RunID() string
}

// BaseEvent contains common fields for all events. It is designed to be
// embedded in specific event types.
type BaseEvent struct {
	Type EventType `json:"type"`
	Time time.Time `json:"timestamp"`
	Run  string    `json:"run_id"`
}

// EventType returns the type of this event.
func (e BaseEvent) EventType() EventType { return e.Type }

// Timestamp returns when this event occurred.
func (e BaseEvent) Timestamp() time.Time { return e.Time }

// RunID returns the unique identifier of the run that produced this event.
func (e BaseEvent) RunID() string { return e.Run }
