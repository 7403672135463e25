// Package report reconstructs the profile→control→test hierarchy from
// the flat result stream and assembles the canonical structured report.
package report

import "github.com/verdictsh/verdict/pkg/check"

// Resolver maps canonical results onto the registered profiles and
// their controls. An unmatched profile id is not an error: the result
// degrades into an "other check". An unmatched control id under a known
// profile synthesizes an anonymous control.
type Resolver struct {
	profiles []*check.Profile
}

// NewResolver creates a resolver over the registered profile
// descriptors. The descriptors' declared controls are matched in place,
// so controls that never receive a result still appear, empty, in the
// finished report.
func NewResolver(profiles []*check.Profile) *Resolver {
	return &Resolver{profiles: profiles}
}

// Profiles returns the registered profiles in registration order.
func (rv *Resolver) Profiles() []*check.Profile {
	return rv.profiles
}

// Resolve determines which profile and control a result belongs to and
// appends it there. It returns (nil, nil) for an "other check": a result
// whose profile id is empty or matches no registered profile. Within a
// matched profile, a result whose id matches no declared control gets an
// anonymous control keyed by its generated-form id; repeated results
// with the same key fold into the same anonymous control, since value
// equality on (id, profile_id) governs all aggregation.
func (rv *Resolver) Resolve(r *check.Result) (*check.Profile, *check.Control) {
	p := rv.profileFor(r.ProfileID)
	if p == nil {
		return nil, nil
	}

	c := p.DeclaredControl(r.ID)
	if c == nil {
		c = p.ControlByID(r.ID)
	}
	if c == nil {
		c = &check.Control{ID: r.ID, ProfileID: r.ProfileID, Title: r.CodeDesc}
		p.Controls = append(p.Controls, c)
	}
	c.Add(r)
	return p, c
}

// profileFor returns the profile whose name equals id. An empty id or an
// empty profile name never matches, which keeps the "no profile" case
// from grouping accidentally.
func (rv *Resolver) profileFor(id string) *check.Profile {
	if id == "" {
		return nil
	}
	for _, p := range rv.profiles {
		if p.Name != "" && p.Name == id {
			return p
		}
	}
	return nil
}
