package report

import (
	"testing"

	"github.com/verdictsh/verdict/pkg/check"
	"github.com/verdictsh/verdict/pkg/severity"
)

func impact(v float64) *float64 { return &v }

// sshProfile declares one profile "p" with control c1 at impact 0.8.
func sshProfile() []*check.Profile {
	return []*check.Profile{{
		Name:  "p",
		Title: "SSH Baseline",
		Controls: []*check.Control{
			{ID: "c1", Title: "Protocol version", Impact: impact(0.8), ProfileID: "p"},
		},
	}}
}

// TestResolveDeclaredControl verifies results land on their declared
// control.
func TestResolveDeclaredControl(t *testing.T) {
	b := NewBuilder(sshProfile())
	p, c := b.Add(&check.Result{ID: "c1", ProfileID: "p", Status: check.StatusPassed})

	if p == nil || p.Name != "p" {
		t.Fatalf("profile = %+v, want p", p)
	}
	if c == nil || c.ID != "c1" || c.Anonymous() {
		t.Fatalf("control = %+v, want declared c1", c)
	}
	if len(c.Results) != 1 {
		t.Errorf("control results = %d, want 1", len(c.Results))
	}
}

// TestResolveAnonymousControl verifies an unmatched id under a known
// profile synthesizes exactly one anonymous control, excluded from
// control statistics but included in test statistics.
func TestResolveAnonymousControl(t *testing.T) {
	b := NewBuilder(sshProfile())
	id := check.GeneratedID("x")
	_, c1 := b.Add(&check.Result{ID: id, ProfileID: "p", Status: check.StatusPassed, CodeDesc: "x"})
	_, c2 := b.Add(&check.Result{ID: id, ProfileID: "p", Status: check.StatusPassed, CodeDesc: "x"})

	if c1 == nil || !c1.Anonymous() {
		t.Fatal("expected an anonymous control")
	}
	if c1 != c2 {
		t.Error("equal (id, profile_id) keys must fold into one control")
	}

	ct := b.ControlTotals()
	if got := ct.Passed + ct.Failed + ct.Skipped; got != 1 {
		t.Errorf("control totals count %d controls, want 1 (anonymous excluded)", got)
	}
	if tt := b.TestTotals(); tt.Passed != 2 {
		t.Errorf("test totals passed = %d, want 2 (anonymous included)", tt.Passed)
	}
}

// TestResolveOtherCheck verifies unmatched or empty profile ids degrade
// into other checks rather than erroring.
func TestResolveOtherCheck(t *testing.T) {
	b := NewBuilder(sshProfile())

	for _, r := range []*check.Result{
		{ID: "c1", ProfileID: "", Status: check.StatusPassed},
		{ID: "c1", ProfileID: "nope", Status: check.StatusPassed},
	} {
		p, c := b.Add(r)
		if p != nil || c != nil {
			t.Errorf("result %+v should be an other check", r)
		}
	}
	if len(b.OtherChecks()) != 2 {
		t.Errorf("other checks = %d, want 2", len(b.OtherChecks()))
	}
}

// TestNilProfileNameNeverMatches guards the "no profile" case against
// accidental grouping.
func TestNilProfileNameNeverMatches(t *testing.T) {
	b := NewBuilder([]*check.Profile{{Name: ""}})
	p, _ := b.Add(&check.Result{ID: "c1", ProfileID: "", Status: check.StatusPassed})
	if p != nil {
		t.Error("empty profile id must not match the unnamed profile")
	}
}

// TestResultConservation verifies no result is dropped or duplicated:
// results across controls plus other checks equals N.
func TestResultConservation(t *testing.T) {
	b := NewBuilder(sshProfile())
	results := []*check.Result{
		{ID: "c1", ProfileID: "p", Status: check.StatusPassed},
		{ID: "c1", ProfileID: "p", Status: check.StatusFailed},
		{ID: check.GeneratedID("adhoc"), ProfileID: "p", Status: check.StatusPassed},
		{ID: "x", ProfileID: "ghost", Status: check.StatusSkipped},
		{ID: "y", Status: check.StatusPassed},
	}
	for _, r := range results {
		b.Add(r)
	}

	n := len(b.OtherChecks())
	for _, c := range b.Controls() {
		n += len(c.Results)
	}
	if n != len(results) {
		t.Errorf("conserved %d results, want %d", n, len(results))
	}
}

// TestDeclaredButNeverInstantiated verifies a declared control with no
// matching result still appears, empty, and counts as passed.
func TestDeclaredButNeverInstantiated(t *testing.T) {
	b := NewBuilder(sshProfile())

	controls := b.Controls()
	if len(controls) != 1 || controls[0].ID != "c1" {
		t.Fatalf("controls = %+v, want the empty declared c1", controls)
	}
	if got := controls[0].Rollup(); got != severity.Unknown {
		t.Errorf("empty control rollup = %s, want unknown", got)
	}
	if ct := b.ControlTotals(); ct.Passed != 1 {
		t.Errorf("empty control should count as passed, totals = %+v", ct)
	}
}

// TestEndToEndCriticalScenario drives a full accumulation: two failures
// on a 0.8-impact control plus one passed anonymous result.
func TestEndToEndCriticalScenario(t *testing.T) {
	b := NewBuilder(sshProfile())
	b.Add(&check.Result{ID: "c1", ProfileID: "p", Status: check.StatusFailed, Message: "boom"})
	b.Add(&check.Result{ID: "c1", ProfileID: "p", Status: check.StatusFailed, Message: "bang"})
	b.Add(&check.Result{ID: check.GeneratedID("x"), ProfileID: "p", Status: check.StatusPassed, CodeDesc: "x"})

	controls := b.Controls()
	if len(controls) != 2 {
		t.Fatalf("controls = %d, want c1 plus one anonymous", len(controls))
	}

	c1 := controls[0]
	if got := c1.Rollup(); got != severity.Critical {
		t.Errorf("c1 rollup = %s, want critical", got)
	}
	if len(c1.Results) != 2 {
		t.Errorf("c1 results = %d, want 2", len(c1.Results))
	}
	if rep := c1.Representative(); rep == nil || rep.Message != "boom" {
		t.Errorf("representative message = %v, want first-seen \"boom\"", rep)
	}

	anon := controls[1]
	if !anon.Anonymous() || anon.Rollup() != severity.Passed {
		t.Errorf("anonymous control rollup = %s, want passed", anon.Rollup())
	}

	ct := b.ControlTotals()
	if ct.Failed != 1 || ct.Critical != 1 || ct.Passed != 0 || ct.Skipped != 0 {
		t.Errorf("control totals = %+v, want 1 failed (critical)", ct)
	}
	tt := b.TestTotals()
	if tt.Failed != 2 || tt.Passed != 1 || tt.Skipped != 0 {
		t.Errorf("test totals = %+v, want 2 failed, 1 passed", tt)
	}
}

// TestEmptyRun verifies zero results and zero profiles still produce a
// well-formed document and 0/0/0 totals.
func TestEmptyRun(t *testing.T) {
	b := NewBuilder(nil)
	doc := b.Document(0)

	if doc.Controls == nil || doc.OtherChecks == nil || doc.Profiles == nil {
		t.Error("empty document slices must be non-nil")
	}
	if len(doc.Controls)+len(doc.OtherChecks)+len(doc.Profiles) != 0 {
		t.Errorf("empty run document should be empty, got %+v", doc)
	}
	if tt := b.TestTotals(); tt.Total() != 0 {
		t.Errorf("test totals = %+v, want 0/0/0", tt)
	}
}

// TestUniqueControlsDedup verifies value-equality deduplication of the
// same (id, profile_id) pair reached via more than one path.
func TestUniqueControlsDedup(t *testing.T) {
	a := &check.Control{ID: "c1", ProfileID: "p"}
	a.Add(&check.Result{ID: "c1", ProfileID: "p", Status: check.StatusPassed})
	dup := &check.Control{ID: "c1", ProfileID: "p"}
	dup.Add(&check.Result{ID: "c1", ProfileID: "p", Status: check.StatusPassed})
	other := &check.Control{ID: "c2", ProfileID: "p"}

	got := uniqueControls([]*check.Control{a, dup, other})
	if len(got) != 2 {
		t.Errorf("unique controls = %d, want 2", len(got))
	}
	if got[0] != a {
		t.Error("dedup must keep the first-seen instance")
	}
	if tt := testTotals([]*check.Control{a, dup, other}); tt.Passed != 1 {
		t.Errorf("test totals passed = %d, want 1 after dedup", tt.Passed)
	}
}
