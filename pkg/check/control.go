package check

import (
	"strings"

	"github.com/verdictsh/verdict/pkg/severity"
)

// GeneratedIDPrefix is the reserved prefix of an anonymous control id.
// The execution engine tags tests declared outside any control with an
// id of the form "(generated from <test-description>)".
const GeneratedIDPrefix = "(generated from "

// GeneratedID builds the reserved anonymous id for a test description.
func GeneratedID(desc string) string {
	return GeneratedIDPrefix + desc + ")"
}

// Control groups the ordered results that verified one declared
// requirement, or one synthesized anonymous group. Two controls are
// equal iff both id and profile id match; equality, not pointer
// identity, governs all aggregation.
type Control struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Impact  *float64 `json:"impact,omitempty" yaml:"impact,omitempty"`
	Results []*Result `json:"results" yaml:"-"`

	// ProfileID is the owning profile's name, recorded from the first
	// appended result when not pre-populated from the descriptor.
	ProfileID string `json:"-" yaml:"-"`
}

// Equal reports value equality on the (id, profile id) key.
func (c *Control) Equal(o *Control) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.ID == o.ID && c.ProfileID == o.ProfileID
}

// Anonymous reports whether the control id has the reserved generated
// form, signaling a test with no user-declared control.
func (c *Control) Anonymous() bool {
	return strings.HasPrefix(c.ID, GeneratedIDPrefix)
}

// Add appends a result in arrival order. The control records its own id
// and profile id from the first appended result when it does not carry
// them already.
func (c *Control) Add(r *Result) {
	if c.ID == "" {
		c.ID = r.ID
	}
	if c.ProfileID == "" {
		c.ProfileID = r.ProfileID
	}
	c.Results = append(c.Results, r)
}

// Rollup folds the member results into one representative tier: the
// maximum under the declared ordering, scanning in arrival order so a
// tie keeps the first-seen result. An empty control rolls up as unknown.
func (c *Control) Rollup() severity.Severity {
	top := severity.Unknown
	for _, r := range c.Results {
		if s := r.Severity(c.Impact); severity.Compare(s, top) > 0 {
			top = s
		}
	}
	return top
}

// Representative returns the first result at the rollup tier, used for
// display of one representative message. Nil for an empty control.
func (c *Control) Representative() *Result {
	top := c.Rollup()
	for _, r := range c.Results {
		if r.Severity(c.Impact) == top {
			return r
		}
	}
	return nil
}

// Summary returns the display text for the control's one-line summary:
// the declared title when present, otherwise the representative
// result's description.
func (c *Control) Summary() string {
	if c.Title != "" {
		return c.Title
	}
	if r := c.Representative(); r != nil {
		return r.CodeDesc
	}
	return ""
}
