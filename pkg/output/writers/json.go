package writers

import (
	"io"
	"sync"

	"github.com/verdictsh/verdict/pkg/jsonutil"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
	"github.com/verdictsh/verdict/pkg/report"
)

var _ dispatcher.Writer = (*DocumentWriter)(nil)

// DocumentWriter serializes the structured report document as a single
// JSON object on Close. The document's field names are the stable
// machine contract; everything downstream parses this form.
type DocumentWriter struct {
	w   io.Writer
	mu  sync.Mutex
	doc *report.Document
}

// NewDocumentWriter creates a JSON document writer targeting w.
func NewDocumentWriter(w io.Writer) *DocumentWriter {
	return &DocumentWriter{w: w}
}

// Write captures the final document from the complete event.
func (dw *DocumentWriter) Write(event events.Event) error {
	e, ok := event.(*events.CompleteEvent)
	if !ok {
		return nil
	}
	dw.mu.Lock()
	defer dw.mu.Unlock()
	dw.doc = e.Report
	return nil
}

// Flush is a no-op; output happens on Close.
func (dw *DocumentWriter) Flush() error { return nil }

// Close writes the captured document as indented JSON.
func (dw *DocumentWriter) Close() error {
	dw.mu.Lock()
	defer dw.mu.Unlock()

	if dw.doc == nil {
		return nil
	}
	enc := jsonutil.NewEncoder(dw.w)
	enc.SetIndent("  ")
	return enc.Encode(dw.doc)
}

// SupportsEvent returns true only for the complete event.
func (dw *DocumentWriter) SupportsEvent(eventType events.EventType) bool {
	return eventType == events.EventTypeComplete
}
