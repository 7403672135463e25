package report

import "github.com/verdictsh/verdict/pkg/check"

// Document is the canonical structured report for one run. Field names
// are a public contract for downstream consumers and must be preserved
// exactly. Controls holds every result that mapped to a control, flat
// and tagged with its id/profile_id; OtherChecks holds the results that
// matched no registered profile; Profiles nests the full hierarchy with
// per-result id/profile_id stripped.
type Document struct {
	Version     string          `json:"version"`
	Statistics  Statistics      `json:"statistics"`
	Controls    []*check.Result `json:"controls"`
	OtherChecks []*check.Result `json:"other_checks"`
	Profiles    []*DocProfile   `json:"profiles"`
}

// DocProfile is one profile descriptor with its nested controls.
type DocProfile struct {
	Name     string        `json:"name,omitempty"`
	Title    string        `json:"title,omitempty"`
	Version  string        `json:"version,omitempty"`
	Controls []*DocControl `json:"controls"`
}

// DocControl is one control with its nested results. Impact is the
// declared weight, absent for controls that declare none.
type DocControl struct {
	ID      string          `json:"id"`
	Title   string          `json:"title,omitempty"`
	Impact  *float64        `json:"impact,omitempty"`
	Results []*check.Result `json:"results"`
}

// newDocument assembles the document from the accumulated tree.
// Controls and results appear in first-seen order. Slices are always
// non-nil so an empty run still marshals as empty arrays.
func newDocument(version string, duration float64, profiles []*check.Profile, flat, other []*check.Result) *Document {
	doc := &Document{
		Version:     version,
		Statistics:  Statistics{Duration: duration},
		Controls:    make([]*check.Result, 0, len(flat)),
		OtherChecks: make([]*check.Result, 0, len(other)),
		Profiles:    make([]*DocProfile, 0, len(profiles)),
	}
	doc.Controls = append(doc.Controls, flat...)
	doc.OtherChecks = append(doc.OtherChecks, other...)

	for _, p := range profiles {
		dp := &DocProfile{
			Name:     p.Name,
			Title:    p.Title,
			Version:  p.Version,
			Controls: make([]*DocControl, 0, len(p.Controls)),
		}
		for _, c := range p.Controls {
			dc := &DocControl{
				ID:      c.ID,
				Title:   c.Title,
				Impact:  c.Impact,
				Results: make([]*check.Result, 0, len(c.Results)),
			}
			for _, r := range c.Results {
				dc.Results = append(dc.Results, r.Stripped())
			}
			dp.Controls = append(dp.Controls, dc)
		}
		doc.Profiles = append(doc.Profiles, dp)
	}
	return doc
}
