package domain

// Profile is a named FinancialData snapshot
type Profile struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Data        FinancialData `yaml:"data" json:"data"`
}

// Configuration is the contents of a snapshot file
type Configuration struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// FindProfile returns the profile with the given name.
// An empty name selects the first profile.
func (c *Configuration) FindProfile(name string) (*Profile, bool) {
	if c == nil || len(c.Profiles) == 0 {
		return nil, false
	}
	if name == "" {
		return &c.Profiles[0], true
	}
	for i := range c.Profiles {
		if c.Profiles[i].Name == name {
			return &c.Profiles[i], true
		}
	}
	return nil, false
}

// ProfileNames lists profile names in file order
func (c *Configuration) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}
