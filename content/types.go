package content

// SystemFile is the on-disk shape of one star system fixture
type SystemFile struct {
	Name   string     `yaml:"name"`
	Index  int        `yaml:"index"`
	Bodies []BodyFile `yaml:"bodies"`
}

// BodyFile describes one body; optional fields are resolved by Normalize
type BodyFile struct {
	ID         string     `yaml:"id,omitempty"`
	Name       string     `yaml:"name"`
	Kind       string     `yaml:"kind"`
	Type       string     `yaml:"type,omitempty"`
	RadiusAU   float64    `yaml:"radius_au"`
	Luminosity float64    `yaml:"luminosity,omitempty"`
	Parent     string     `yaml:"parent,omitempty"` // body name, empty for barycentre
	Orbit      *OrbitFile `yaml:"orbit,omitempty"`
	Dockable   *bool      `yaml:"dockable,omitempty"`
}

// OrbitFile is a circular orbit with inclination given in degrees
type OrbitFile struct {
	SemiMajorAxisAU float64 `yaml:"semi_major_axis_au"`
	PeriodDays      float64 `yaml:"period_days"`
	PhaseOffset     float64 `yaml:"phase_offset"`
	InclinationDeg  float64 `yaml:"inclination_deg"`
}
