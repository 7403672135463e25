// Package writers provides output writers for the report event stream.
package writers

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/defaults"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
	"github.com/verdictsh/verdict/pkg/report"
	"github.com/verdictsh/verdict/pkg/severity"
)

// Compile-time interface check.
var _ dispatcher.Writer = (*ConsoleWriter)(nil)

// severityColors maps severity tiers to ANSI color codes.
var severityColors = map[severity.Severity]string{
	severity.Critical: "\033[1;91m",
	severity.Major:    "\033[31m",
	severity.Minor:    "\033[38;5;208m",
	severity.Failed:   "\033[91m",
	severity.Skipped:  "\033[93m",
	severity.Passed:   "\033[32m",
	severity.Unknown:  "\033[2m",
}

// ConsoleConfig configures the console renderer.
type ConsoleConfig struct {
	// Color enables ANSI color codes. When false, codes are omitted
	// entirely; this is a configuration flag, not a platform branch.
	Color bool

	// ASCII replaces Unicode status marks with ASCII fallbacks for
	// terminals that cannot render them.
	ASCII bool
}

// ConsoleWriter renders the result stream as a grouped, colorized,
// human-readable transcript, emitting each control as soon as the
// stream moves past it rather than waiting for the run to finish.
//
// Anonymous controls are only known to be complete once their profile
// changes or the run ends, so they are buffered per profile and flushed
// late. Profile headers are tracked in a per-run map keyed by profile
// instance, never by mutating the shared descriptor.
type ConsoleWriter struct {
	w   io.Writer
	cfg ConsoleConfig
	mu  sync.Mutex

	profiles []*check.Profile
	target   string

	lastControl *check.Control
	lastProfile *check.Profile
	anonymous   map[*check.Profile][]*check.Control
	anonOrder   []*check.Profile
	other       []*check.Result
	printed     map[*check.Profile]bool
}

// NewConsoleWriter creates a console renderer over the declared
// profiles, writing to w.
func NewConsoleWriter(w io.Writer, profiles []*check.Profile, cfg ConsoleConfig) *ConsoleWriter {
	return &ConsoleWriter{
		w:         w,
		cfg:       cfg,
		profiles:  profiles,
		anonymous: make(map[*check.Profile][]*check.Control),
		printed:   make(map[*check.Profile]bool),
	}
}

// Write consumes start, result, and complete events.
func (cw *ConsoleWriter) Write(event events.Event) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	switch e := event.(type) {
	case *events.StartEvent:
		cw.target = e.Target
	case *events.ResultEvent:
		cw.handleResult(e)
	case *events.CompleteEvent:
		cw.handleComplete(e)
	}
	return nil
}

// handleResult advances the per-run state machine for one result.
func (cw *ConsoleWriter) handleResult(e *events.ResultEvent) {
	control, profile := e.Control, e.Profile

	if control == nil {
		// Other check: no profile matched. Flush whatever was open and
		// buffer the result for the end of the run.
		cw.flushLastControl()
		cw.flushAnonymous(cw.lastProfile)
		cw.lastProfile = nil
		cw.other = append(cw.other, e.Result)
		return
	}

	if cw.lastControl != nil && !cw.lastControl.Anonymous() && !control.Equal(cw.lastControl) {
		cw.printControl(cw.lastControl)
	}
	cw.lastControl = control

	if profile != cw.lastProfile {
		cw.flushAnonymous(cw.lastProfile)
		cw.printProfileHeader(profile)
		cw.lastProfile = profile
	}

	if control.Anonymous() {
		cw.bufferAnonymous(profile, control)
	}
}

// handleComplete flushes remaining state and prints the two summary
// lines. Safe on an empty run.
func (cw *ConsoleWriter) handleComplete(e *events.CompleteEvent) {
	cw.flushLastControl()
	for _, p := range cw.anonOrder {
		cw.flushAnonymous(p)
	}
	cw.lastProfile = nil

	for _, r := range cw.other {
		cw.printResult(r, nil)
	}
	if len(cw.other) > 0 {
		fmt.Fprintln(cw.w)
	}

	for _, p := range cw.profiles {
		if p.ResultCount() == 0 {
			cw.printProfileHeader(p)
			fmt.Fprintf(cw.w, "     No tests executed.\n\n")
		}
	}

	cw.printSummary(e.Controls, e.Tests)
}

// flushLastControl prints the pending control unless it is anonymous,
// then clears it.
func (cw *ConsoleWriter) flushLastControl() {
	if cw.lastControl != nil && !cw.lastControl.Anonymous() {
		cw.printControl(cw.lastControl)
	}
	cw.lastControl = nil
}

// bufferAnonymous records an anonymous control for its profile,
// deduplicated by identity.
func (cw *ConsoleWriter) bufferAnonymous(p *check.Profile, c *check.Control) {
	for _, seen := range cw.anonymous[p] {
		if seen.Equal(c) {
			return
		}
	}
	if _, ok := cw.anonymous[p]; !ok {
		cw.anonOrder = append(cw.anonOrder, p)
	}
	cw.anonymous[p] = append(cw.anonymous[p], c)
}

// flushAnonymous prints and clears the buffered anonymous controls of
// one profile as individually-titled blocks.
func (cw *ConsoleWriter) flushAnonymous(p *check.Profile) {
	buffered := cw.anonymous[p]
	if len(buffered) == 0 {
		return
	}
	delete(cw.anonymous, p)

	for _, c := range buffered {
		title := c.Title
		if title == "" {
			title = defaults.PlaceholderAnonymous
		}
		fmt.Fprintf(cw.w, "  %s\n", cw.paint(title, c.Rollup()))
		for _, r := range c.Results {
			cw.printResult(r, c.Impact)
		}
		fmt.Fprintln(cw.w)
	}
}

// printControl prints the control's one-line summary followed by its
// result detail lines.
func (cw *ConsoleWriter) printControl(c *check.Control) {
	roll := c.Rollup()
	summary := fmt.Sprintf("%s  %s: %s", cw.indicator(roll), c.ID, c.Summary())
	fmt.Fprintf(cw.w, "  %s\n", cw.paint(summary, roll))
	for _, r := range c.Results {
		cw.printResult(r, c.Impact)
	}
	fmt.Fprintln(cw.w)
}

// printResult prints one detail line: the failure message, the skip
// reason, or the plain description.
func (cw *ConsoleWriter) printResult(r *check.Result, impact *float64) {
	sev := r.Severity(impact)

	body := r.CodeDesc
	switch r.Status {
	case check.StatusFailed:
		if r.Message != "" {
			body = r.CodeDesc + "\n" + r.Message
		}
	case check.StatusSkipped:
		if r.SkipMessage != "" {
			body = r.SkipMessage
		}
	}

	lines := strings.Split(body, "\n")
	fmt.Fprintf(cw.w, "     %s  %s\n", cw.indicator(sev), cw.paint(lines[0], sev))
	for _, line := range lines[1:] {
		fmt.Fprintf(cw.w, "     %s\n", cw.paint(line, sev))
	}
}

// printProfileHeader prints the title/name/version header exactly once
// per profile instance, plus a target line when a target is known.
func (cw *ConsoleWriter) printProfileHeader(p *check.Profile) {
	if p == nil || cw.printed[p] {
		return
	}
	cw.printed[p] = true

	name := p.Name
	if name == "" {
		name = defaults.PlaceholderUnknown
	}
	if p.Title != "" {
		fmt.Fprintf(cw.w, "Profile: %s (%s)\n", p.Title, name)
	} else {
		fmt.Fprintf(cw.w, "Profile: %s\n", name)
	}

	version := p.Version
	if version == "" {
		version = defaults.PlaceholderNotSpecified
	}
	fmt.Fprintf(cw.w, "Version: %s\n", version)

	target := p.TargetURI
	if target == "" {
		target = cw.target
	}
	if target != "" {
		fmt.Fprintf(cw.w, "Target:  %s\n", target)
	}
	fmt.Fprintln(cw.w)
}

// printSummary prints the run-level Profile Summary and Test Summary.
func (cw *ConsoleWriter) printSummary(controls report.ControlTotals, tests report.TestTotals) {
	failures := fmt.Sprintf("%d control %s", controls.Failed, plural(controls.Failed, "failure"))
	if controls.Failed > 0 {
		var parts []string
		for _, tier := range []struct {
			n    int
			name string
		}{
			{controls.Critical, "critical"},
			{controls.Major, "major"},
			{controls.Minor, "minor"},
		} {
			if tier.n > 0 {
				parts = append(parts, fmt.Sprintf("%d %s", tier.n, tier.name))
			}
		}
		if len(parts) > 0 {
			failures += " (" + strings.Join(parts, ", ") + ")"
		}
	}

	fmt.Fprintf(cw.w, "Profile Summary: %s, %s, %s\n",
		cw.paintIf(fmt.Sprintf("%d successful %s", controls.Passed, plural(controls.Passed, "control")), severity.Passed, controls.Passed > 0),
		cw.paintIf(failures, severity.Failed, controls.Failed > 0),
		cw.paintIf(fmt.Sprintf("%d %s skipped", controls.Skipped, plural(controls.Skipped, "control")), severity.Skipped, controls.Skipped > 0),
	)
	fmt.Fprintf(cw.w, "Test Summary: %s, %s, %s\n",
		cw.paintIf(fmt.Sprintf("%d successful", tests.Passed), severity.Passed, tests.Passed > 0),
		cw.paintIf(fmt.Sprintf("%d %s", tests.Failed, plural(tests.Failed, "failure")), severity.Failed, tests.Failed > 0),
		cw.paintIf(fmt.Sprintf("%d skipped", tests.Skipped), severity.Skipped, tests.Skipped > 0),
	)
}

// indicator returns the status mark for a severity tier.
func (cw *ConsoleWriter) indicator(sev severity.Severity) string {
	type mark struct{ unicode, ascii string }
	var m mark
	switch {
	case sev.IsFailure():
		m = mark{"×", "x"}
	case sev == severity.Skipped:
		m = mark{"↺", "-"}
	case sev == severity.Passed:
		m = mark{"✔", "+"}
	default:
		m = mark{" ", " "}
	}
	if cw.cfg.ASCII {
		return m.ascii
	}
	return m.unicode
}

// paint wraps text in the tier's ANSI color when color is enabled.
func (cw *ConsoleWriter) paint(s string, sev severity.Severity) string {
	if !cw.cfg.Color {
		return s
	}
	code, ok := severityColors[sev]
	if !ok {
		return s
	}
	return code + s + "\033[0m"
}

// paintIf paints only when the segment is non-zero, keeping zero
// segments unstyled.
func (cw *ConsoleWriter) paintIf(s string, sev severity.Severity, ok bool) string {
	if !ok {
		return s
	}
	return cw.paint(s, sev)
}

// Flush is a no-op; every event is written as it arrives.
func (cw *ConsoleWriter) Flush() error { return nil }

// Close is a no-op. The sink is owned by the caller; the final flush
// happens on the complete event so an interrupted run still shows what
// it saw.
func (cw *ConsoleWriter) Close() error { return nil }

// SupportsEvent returns true for start, result, and complete events.
func (cw *ConsoleWriter) SupportsEvent(eventType events.EventType) bool {
	switch eventType {
	case events.EventTypeStart, events.EventTypeResult, events.EventTypeComplete:
		return true
	}
	return false
}

// plural naively pluralizes a counted noun.
func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
