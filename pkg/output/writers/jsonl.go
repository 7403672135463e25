package writers

import (
	"io"
	"sync"

	"github.com/verdictsh/verdict/pkg/jsonutil"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
)

var _ dispatcher.Writer = (*JSONLWriter)(nil)

// JSONLWriter streams one canonical result per line as it arrives,
// suitable for piping into line-oriented tooling while a long run is
// still in progress.
type JSONLWriter struct {
	w   io.Writer
	mu  sync.Mutex
	enc *jsonutil.Encoder
}

// NewJSONLWriter creates a JSON Lines writer targeting w.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: w, enc: jsonutil.NewEncoder(w)}
}

// Write emits one line per result event.
func (jw *JSONLWriter) Write(event events.Event) error {
	e, ok := event.(*events.ResultEvent)
	if !ok {
		return nil
	}
	jw.mu.Lock()
	defer jw.mu.Unlock()
	return jw.enc.Encode(e.Result)
}

// Flush is a no-op; each line is written as it arrives.
func (jw *JSONLWriter) Flush() error { return nil }

// Close is a no-op. The sink is owned by the caller.
func (jw *JSONLWriter) Close() error { return nil }

// SupportsEvent returns true only for result events.
func (jw *JSONLWriter) SupportsEvent(eventType events.EventType) bool {
	return eventType == events.EventTypeResult
}
