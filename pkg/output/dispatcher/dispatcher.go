// Package dispatcher provides the central event routing for output.
// It receives events from the reporting engine and routes them to
// registered writers and hooks. Writers render output forms (console,
// structured JSON, JUnit XML), while hooks handle side channels such as
// logging and metrics.
//
// Dispatch is strictly synchronous and in arrival order: the console
// renderer's output and the severity tie-break both depend on the exact
// order the engine emits results, so no buffering or fan-out reordering
// is permitted.
package dispatcher

import (
	"context"
	"sync"

	"github.com/verdictsh/verdict/pkg/output/events"
)

// Writer is the interface for all output writers. Writers render the
// event stream into an output form on a caller-supplied sink.
type Writer interface {
	// Write writes an event to the output.
	Write(event events.Event) error

	// Flush ensures all buffered events are written.
	Flush() error

	// Close finalizes the output and releases any resources.
	Close() error

	// SupportsEvent returns true if the writer handles this event type.
	SupportsEvent(eventType events.EventType) bool
}

// Hook is the interface for event hooks: side-channel consumers such as
// structured logging or metrics collection.
type Hook interface {
	// OnEvent is called for each matching event, inline and in order.
	OnEvent(ctx context.Context, event events.Event) error

	// EventTypes returns the event types this hook handles.
	// Return nil or an empty slice to receive all events.
	EventTypes() []events.EventType
}

// Dispatcher routes events to writers and hooks in registration order.
type Dispatcher struct {
	writers []Writer
	hooks   []Hook
	mu      sync.RWMutex
}

// New creates a new event dispatcher.
func New() *Dispatcher {
	return &Dispatcher{}
}

// RegisterWriter adds a writer. Writers receive events that match their
// SupportsEvent filter.
func (d *Dispatcher) RegisterWriter(w Writer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.writers = append(d.writers, w)
}

// RegisterHook adds a hook. Hooks receive events that match their
// EventTypes filter.
func (d *Dispatcher) RegisterHook(h Hook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hooks = append(d.hooks, h)
}

// Dispatch sends an event to all registered writers and hooks. It
// returns nil even when individual consumers fail, so every consumer
// gets a chance to receive the event.
func (d *Dispatcher) Dispatch(ctx context.Context, event events.Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, w := range d.writers {
		if w.SupportsEvent(event.EventType()) {
			if err := w.Write(event); err != nil {
				continue
			}
		}
	}

	for _, h := range d.hooks {
		if hookSupportsEvent(h, event.EventType()) {
			if err := h.OnEvent(ctx, event); err != nil {
				continue
			}
		}
	}

	return nil
}

// hookSupportsEvent checks if a hook handles the given event type.
func hookSupportsEvent(h Hook, eventType events.EventType) bool {
	types := h.EventTypes()
	if len(types) == 0 {
		return true
	}
	for _, et := range types {
		if et == eventType {
			return true
		}
	}
	return false
}

// Flush flushes all registered writers.
func (d *Dispatcher) Flush() error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, w := range d.writers {
		_ = w.Flush()
	}
	return nil
}

// Close flushes and closes all writers. After Close is called, the
// dispatcher should not be used.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, w := range d.writers {
		_ = w.Flush()
		_ = w.Close()
	}
	return nil
}
