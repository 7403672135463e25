package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/verdictsh/verdict/pkg/check"
)

// profilesFile is the on-disk shape of a profile metadata file.
type profilesFile struct {
	Profiles []*check.Profile `yaml:"profiles"`
}

// LoadProfiles reads profile metadata from a YAML file. Every profile
// needs a name; declared impacts must lie in [0, 1].
func LoadProfiles(path string) ([]*check.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	return ParseProfiles(data)
}

// ParseProfiles parses profile metadata from YAML bytes.
func ParseProfiles(data []byte) ([]*check.Profile, error) {
	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	for _, p := range file.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: profile name", ErrMissingRequired)
		}
		for _, c := range p.Controls {
			if c.ID == "" {
				return nil, fmt.Errorf("%w: control id in profile %q", ErrMissingRequired, p.Name)
			}
			if c.Impact != nil && (*c.Impact < 0 || *c.Impact > 1) {
				return nil, fmt.Errorf("%w: control %q impact %v outside [0, 1]", ErrInvalidConfig, c.ID, *c.Impact)
			}
			c.ProfileID = p.Name
		}
	}
	return file.Profiles, nil
}
