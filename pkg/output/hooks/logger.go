// Package hooks provides side-channel event consumers: structured
// logging and metrics. Hooks observe the run without producing report
// output.
package hooks

import (
	"context"
	"log/slog"

	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
)

// Compile-time interface check.
var _ dispatcher.Hook = (*LoggerHook)(nil)

// orDefault returns l if non-nil, otherwise slog.Default().
func orDefault(l *slog.Logger) *slog.Logger {
	if l != nil {
		return l
	}
	return slog.Default()
}

// LoggerHook logs run progress through slog. Useful for debugging a
// run without disturbing the console renderer's output stream.
type LoggerHook struct {
	logger *slog.Logger
}

// NewLoggerHook creates a logger hook. Pass nil to use slog.Default().
func NewLoggerHook(l *slog.Logger) *LoggerHook {
	return &LoggerHook{logger: orDefault(l)}
}

// OnEvent logs one line per event at debug level, with run completion
// promoted to info.
func (h *LoggerHook) OnEvent(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case *events.StartEvent:
		h.logger.DebugContext(ctx, "run started",
			slog.String("run_id", e.RunID()),
			slog.String("target", e.Target))
	case *events.ResultEvent:
		attrs := []any{
			slog.String("run_id", e.RunID()),
			slog.String("status", string(e.Result.Status)),
			slog.String("code_desc", e.Result.CodeDesc),
		}
		if e.Control != nil {
			attrs = append(attrs,
				slog.String("control", e.Control.ID),
				slog.String("profile", e.Control.ProfileID))
		}
		h.logger.DebugContext(ctx, "result", attrs...)
	case *events.CompleteEvent:
		h.logger.InfoContext(ctx, "run complete",
			slog.String("run_id", e.RunID()),
			slog.Int("controls_passed", e.Controls.Passed),
			slog.Int("controls_failed", e.Controls.Failed),
			slog.Int("controls_skipped", e.Controls.Skipped),
			slog.Int("tests", e.Tests.Total()),
			slog.Float64("duration_seconds", e.Report.Statistics.Duration))
	}
	return nil
}

// EventTypes returns nil: the logger observes every event.
func (h *LoggerHook) EventTypes() []events.EventType { return nil }
