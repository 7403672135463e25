package writers

import (
	"encoding/xml"
	"fmt"
	"io"
	"sync"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/defaults"
	"github.com/verdictsh/verdict/pkg/output/dispatcher"
	"github.com/verdictsh/verdict/pkg/output/events"
	"github.com/verdictsh/verdict/pkg/report"
)

var _ dispatcher.Writer = (*JUnitWriter)(nil)

// junitTestSuites is the root element of a JUnit XML report.
type junitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []junitTestSuite `xml:"testsuite"`
}

// junitTestSuite maps one profile to a test suite.
type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

// junitTestCase maps one result to a test case. Classname carries the
// owning control's title so suites group sensibly in CI dashboards.
type junitTestCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Failure   *junitFailure `xml:"failure,omitempty"`
	Skipped   *junitSkipped `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr,omitempty"`
	Content string `xml:",chardata"`
}

type junitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// RenderJUnit renders the structured report as JUnit XML. The output is
// a pure function of the document: rendering the same document twice
// yields byte-identical XML, so no timestamps or hostnames are emitted.
func RenderJUnit(doc *report.Document) ([]byte, error) {
	root := junitTestSuites{Suites: make([]junitTestSuite, 0, len(doc.Profiles))}

	for _, p := range doc.Profiles {
		name := p.Name
		if name == "" {
			name = defaults.PlaceholderUnknown
		}
		suite := junitTestSuite{Name: name}

		var duration float64
		for _, c := range p.Controls {
			className := c.Title
			if className == "" {
				className = defaults.PlaceholderAnonymous
			}
			for _, r := range c.Results {
				suite.Tests++
				duration += r.RunTime

				tc := junitTestCase{
					Name:      r.CodeDesc,
					ClassName: className,
					Time:      formatSeconds(r.RunTime),
				}
				switch r.Status {
				case check.StatusFailed:
					suite.Failures++
					tc.Failure = &junitFailure{Message: r.Message, Content: r.Message}
				case check.StatusSkipped:
					suite.Skipped++
					tc.Skipped = &junitSkipped{Message: r.SkipMessage}
				}
				suite.Cases = append(suite.Cases, tc)
			}
		}
		suite.Time = formatSeconds(duration)
		root.Suites = append(root.Suites, suite)
	}

	data, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal junit report: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

// formatSeconds renders a duration attribute with millisecond precision.
func formatSeconds(s float64) string {
	return fmt.Sprintf("%.3f", s)
}

// JUnitWriter renders the finished report as JUnit XML on Close. It
// only consumes the complete event; the XML layout needs the whole
// hierarchy, so there is nothing to stream.
type JUnitWriter struct {
	w   io.Writer
	mu  sync.Mutex
	doc *report.Document
}

// NewJUnitWriter creates a JUnit XML writer targeting w.
func NewJUnitWriter(w io.Writer) *JUnitWriter {
	return &JUnitWriter{w: w}
}

// Write captures the final document from the complete event.
func (jw *JUnitWriter) Write(event events.Event) error {
	e, ok := event.(*events.CompleteEvent)
	if !ok {
		return nil
	}
	jw.mu.Lock()
	defer jw.mu.Unlock()
	jw.doc = e.Report
	return nil
}

// Flush is a no-op; output happens on Close.
func (jw *JUnitWriter) Flush() error { return nil }

// Close renders the captured document. A run that never completed
// renders an empty but well-formed report.
func (jw *JUnitWriter) Close() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	doc := jw.doc
	if doc == nil {
		doc = &report.Document{}
	}
	data, err := RenderJUnit(doc)
	if err != nil {
		return err
	}
	_, err = jw.w.Write(data)
	return err
}

// SupportsEvent returns true only for the complete event.
func (jw *JUnitWriter) SupportsEvent(eventType events.EventType) bool {
	return eventType == events.EventTypeComplete
}
