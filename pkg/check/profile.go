package check

// Profile describes a named, versioned bundle of controls run against
// one target. Supplied externally before the run starts; the engine
// treats it as read-only and keeps all per-run rendering state (such as
// "header already printed") outside the descriptor.
//
// An empty Name denotes the synthetic "no profile" case and never
// matches any result.
type Profile struct {
	Name      string     `json:"name,omitempty" yaml:"name"`
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Version   string     `json:"version,omitempty" yaml:"version,omitempty"`
	TargetURI string     `json:"-" yaml:"target_uri,omitempty"`
	Controls  []*Control `json:"controls" yaml:"controls"`
}

// ResultCount returns the number of results across all the profile's
// controls.
func (p *Profile) ResultCount() int {
	n := 0
	for _, c := range p.Controls {
		n += len(c.Results)
	}
	return n
}

// DeclaredControl returns the declared control with the given id, or nil.
// Anonymous controls are never returned: a declared control by
// construction does not carry the generated-id form, and resolution must
// not match a result against a previously synthesized group.
func (p *Profile) DeclaredControl(id string) *Control {
	for _, c := range p.Controls {
		if c.ID == id && !c.Anonymous() {
			return c
		}
	}
	return nil
}

// ControlByID returns the control with the given id, anonymous or not,
// or nil when the profile holds no such control.
func (p *Profile) ControlByID(id string) *Control {
	for _, c := range p.Controls {
		if c.ID == id {
			return c
		}
	}
	return nil
}
