// Package runner drives one reporting run: it normalizes raw records,
// folds them into the profile tree, and dispatches events to the
// registered writers and hooks. Records are processed strictly in
// arrival order; ordering is part of the reporting contract.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
	"github.com/verdictsh/verdict/pkg/report"
)

// Options configures a run.
type Options struct {
	// Target is the display string for the system under test.
	Target string

	// Version overrides the report version string (default: the tool
	// version).
	Version string

	// Writers receive the event stream and render output forms.
	Writers []dispatcher.Writer

	// Hooks receive the event stream as side channels.
	Hooks []dispatcher.Hook
}

// Run is one reporting run. Create with New, feed records with Add,
// finish with Close. Not safe for concurrent use; the stream's order
// is the caller's responsibility.
type Run struct {
	id         string
	builder    *report.Builder
	dispatcher *dispatcher.Dispatcher
	target     string
	started    time.Time

	mu     sync.Mutex
	closed bool

	controls report.ControlTotals
	tests    report.TestTotals
}

// New creates a run over the registered profiles and announces it to
// the writers with a start event.
func New(ctx context.Context, profiles []*check.Profile, opts Options) (*Run, error) {
	builder := report.NewBuilder(profiles)
	builder.SetVersion(opts.Version)

	d := dispatcher.New()
	for _, w := range opts.Writers {
		d.RegisterWriter(w)
	}
	for _, h := range opts.Hooks {
		d.RegisterHook(h)
	}

	r := &Run{
		id:         uuid.NewString(),
		builder:    builder,
		dispatcher: d,
		target:     opts.Target,
		started:    time.Now(),
	}

	err := d.Dispatch(ctx, &events.StartEvent{
		BaseEvent: r.baseEvent(events.EventTypeStart),
		Target:    opts.Target,
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ID returns the unique identifier of this run.
func (r *Run) ID() string { return r.id }

// Add normalizes one raw record, folds it into the tree, and dispatches
// the result event.
func (r *Run) Add(ctx context.Context, src check.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	result := check.Normalize(src)
	profile, control := r.builder.Add(result)

	return r.dispatcher.Dispatch(ctx, &events.ResultEvent{
		BaseEvent: r.baseEvent(events.EventTypeResult),
		Result:    result,
		Control:   control,
		Profile:   profile,
	})
}

// Close finishes the run: it assembles the structured document,
// dispatches the complete event, and flushes and closes every writer.
// An empty run still produces a valid document.
func (r *Run) Close(ctx context.Context) (*report.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	r.closed = true

	duration := time.Since(r.started).Seconds()
	doc := r.builder.Document(duration)
	r.controls = r.builder.ControlTotals()
	r.tests = r.builder.TestTotals()

	err := r.dispatcher.Dispatch(ctx, &events.CompleteEvent{
		BaseEvent: r.baseEvent(events.EventTypeComplete),
		Report:    doc,
		Controls:  r.controls,
		Tests:     r.tests,
	})
	if err != nil {
		return nil, err
	}
	if err := r.dispatcher.Close(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Totals returns the final control and test totals. Valid after Close;
// zero before.
func (r *Run) Totals() (report.ControlTotals, report.TestTotals) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.controls, r.tests
}

// Failed reports whether the run ended with at least one failed test.
// Valid after Close.
func (r *Run) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tests.Failed > 0
}

// baseEvent stamps an event with this run's id and the current time.
func (r *Run) baseEvent(t events.EventType) events.BaseEvent {
	return events.BaseEvent{Type: t, Time: time.Now(), Run: r.id}
}
