package hooks

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verdictsh/verdict/pkg/defaults"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
)

// Compile-time interface check.
var _ dispatcher.Hook = (*PrometheusHook)(nil)

// PrometheusHook exposes run metrics for Prometheus scraping: per-result
// counters by profile, status, and severity tier, plus run-level gauges
// set from the final totals.
type PrometheusHook struct {
	server   *http.Server
	registry *prometheus.Registry
	opts     PrometheusOptions

	testsTotal    *prometheus.CounterVec
	severityTotal *prometheus.CounterVec

	controls           *prometheus.GaugeVec
	runDurationSeconds prometheus.Gauge

	mu     sync.Mutex
	closed bool
}

// PrometheusOptions configures the Prometheus hook behavior.
type PrometheusOptions struct {
	// Port for the metrics server. Zero disables the server; metrics
	// are still collected and reachable through Registry.
	Port int

	// Path for the metrics endpoint (default: "/metrics").
	Path string

	// ReadTimeout for the HTTP server (default: 5s).
	ReadTimeout time.Duration

	// WriteTimeout for the HTTP server (default: 10s).
	WriteTimeout time.Duration
}

// NewPrometheusHook creates a Prometheus hook. When a port is set, the
// metrics server starts immediately and runs until Close is called.
func NewPrometheusHook(opts PrometheusOptions) (*PrometheusHook, error) {
	if opts.Path == "" {
		opts.Path = "/metrics"
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}

	// Custom registry, don't pollute the default.
	hook := &PrometheusHook{
		registry: prometheus.NewRegistry(),
		opts:     opts,
	}

	if err := hook.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	if opts.Port > 0 {
		if err := hook.startServer(); err != nil {
			return nil, fmt.Errorf("failed to start metrics server: %w", err)
		}
	}

	return hook, nil
}

// initMetrics creates and registers all Prometheus metrics.
func (h *PrometheusHook) initMetrics() error {
	h.testsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: defaults.ToolName + "_tests_total",
			Help: "Total number of check results processed",
		},
		[]string{"profile", "status"},
	)

	h.severityTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: defaults.ToolName + "_severity_total",
			Help: "Total number of check results by severity tier",
		},
		[]string{"severity"},
	)

	h.controls = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: defaults.ToolName + "_controls",
			Help: "Final control counts by outcome",
		},
		[]string{"outcome"},
	)

	h.runDurationSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: defaults.ToolName + "_run_duration_seconds",
			Help: "Total run duration in seconds",
		},
	)

	collectors := []prometheus.Collector{
		h.testsTotal,
		h.severityTotal,
		h.controls,
		h.runDurationSeconds,
	}
	for _, c := range collectors {
		if err := h.registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// startServer starts the HTTP server for metrics.
func (h *PrometheusHook) startServer() error {
	mux := http.NewServeMux()
	mux.Handle(h.opts.Path, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	h.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", h.opts.Port),
		Handler:      mux,
		ReadTimeout:  h.opts.ReadTimeout,
		WriteTimeout: h.opts.WriteTimeout,
	}

	go func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("prometheus: metrics server error: %v", err)
		}
	}()

	return nil
}

// OnEvent updates metrics from result and complete events.
func (h *PrometheusHook) OnEvent(ctx context.Context, event events.Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	switch e := event.(type) {
	case *events.ResultEvent:
		return h.handleResult(e)
	case *events.CompleteEvent:
		return h.handleComplete(e)
	default:
		return nil
	}
}

// handleResult counts one result by profile, status, and severity.
func (h *PrometheusHook) handleResult(e *events.ResultEvent) error {
	profile := e.Result.ProfileID
	if profile == "" {
		profile = defaults.PlaceholderUnknown
	}
	h.testsTotal.WithLabelValues(profile, string(e.Result.Status)).Inc()

	var impact *float64
	if e.Control != nil {
		impact = e.Control.Impact
	}
	h.severityTotal.WithLabelValues(string(e.Result.Severity(impact))).Inc()

	return nil
}

// handleComplete sets the final run gauges.
func (h *PrometheusHook) handleComplete(e *events.CompleteEvent) error {
	h.controls.WithLabelValues("passed").Set(float64(e.Controls.Passed))
	h.controls.WithLabelValues("failed").Set(float64(e.Controls.Failed))
	h.controls.WithLabelValues("skipped").Set(float64(e.Controls.Skipped))
	h.runDurationSeconds.Set(e.Report.Statistics.Duration)
	return nil
}

// EventTypes returns the event types this hook handles.
func (h *PrometheusHook) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventTypeResult,
		events.EventTypeComplete,
	}
}

// Registry exposes the hook's metric registry, for scraping in-process
// or in tests.
func (h *PrometheusHook) Registry() *prometheus.Registry {
	return h.registry
}

// Close shuts down the metrics server and releases resources.
func (h *PrometheusHook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return h.server.Shutdown(ctx)
	}
	return nil
}

// MetricsAddr returns the address where metrics are served, empty when
// the server is disabled.
func (h *PrometheusHook) MetricsAddr() string {
	if h.server == nil {
		return ""
	}
	return fmt.Sprintf("http://localhost:%d%s", h.opts.Port, h.opts.Path)
}
