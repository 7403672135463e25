package report

import (
	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/defaults"
)

// Builder accumulates one run's results into the profile→control→test
// tree and produces the structured Document. It is owned by a single
// run and processed strictly sequentially; closing with an empty
// accumulator still yields a valid, empty-but-well-formed document.
type Builder struct {
	resolver *Resolver
	flat     []*check.Result
	other    []*check.Result
	version  string
}

// NewBuilder creates a builder over the registered profile descriptors.
func NewBuilder(profiles []*check.Profile) *Builder {
	return &Builder{
		resolver: NewResolver(profiles),
		version:  defaults.Version,
	}
}

// SetVersion overrides the document version string.
func (b *Builder) SetVersion(v string) {
	if v != "" {
		b.version = v
	}
}

// Add folds one canonical result into the tree and returns the profile
// and control it resolved to. Both are nil for an "other check".
func (b *Builder) Add(r *check.Result) (*check.Profile, *check.Control) {
	p, c := b.resolver.Resolve(r)
	if p == nil {
		b.other = append(b.other, r)
		return nil, nil
	}
	b.flat = append(b.flat, r)
	return p, c
}

// Profiles returns the registered profiles with their accumulated
// controls, in registration order.
func (b *Builder) Profiles() []*check.Profile {
	return b.resolver.Profiles()
}

// OtherChecks returns the results that matched no registered profile,
// in arrival order.
func (b *Builder) OtherChecks() []*check.Result {
	return b.other
}

// Controls returns every control across all profiles in first-seen
// order, deduplicated by (id, profile_id) value equality.
func (b *Builder) Controls() []*check.Control {
	var all []*check.Control
	for _, p := range b.resolver.Profiles() {
		all = append(all, p.Controls...)
	}
	return uniqueControls(all)
}

// ControlTotals computes run-level control statistics over unique,
// non-anonymous controls.
func (b *Builder) ControlTotals() ControlTotals {
	return controlTotals(b.Controls())
}

// TestTotals computes run-level test statistics: a flat count over the
// results of all unique controls.
func (b *Builder) TestTotals() TestTotals {
	return testTotals(b.Controls())
}

// Document assembles the finished structured report. Duration is the
// run duration in seconds.
func (b *Builder) Document(duration float64) *Document {
	return newDocument(b.version, duration, b.resolver.Profiles(), b.flat, b.other)
}
