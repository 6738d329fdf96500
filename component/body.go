package component

import (
	"math"
)

// BodyKind classifies celestial bodies for hazards and rendering
type BodyKind uint8

const (
	KindStar BodyKind = iota
	KindPlanet
	KindMoon
	KindBelt
	KindStation
)

var kindNames = [...]string{"star", "planet", "moon", "belt", "station"}

func (k BodyKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseBodyKind maps a fixture name to a kind
func ParseBodyKind(s string) (BodyKind, bool) {
	for i, n := range kindNames {
		if n == s {
			return BodyKind(i), true
		}
	}
	return 0, false
}

// NoParent marks a body orbiting the system barycentre
const NoParent = -1

// OrbitalElement describes a circular inclined orbit about the parent centre
type OrbitalElement struct {
	SemiMajorAxisAU float64
	PeriodDays      float64 // 0, NaN or ±Inf: stationary
	PhaseOffset     float64 // fraction of a revolution, 0..1
	InclinationRad  float64 // tilt about the x axis
}

// Stationary reports whether the element describes a fixed body
func (o *OrbitalElement) Stationary() bool {
	return o == nil || o.PeriodDays == 0 || math.IsNaN(o.PeriodDays) || math.IsInf(o.PeriodDays, 0)
}

// CelestialBody is static descriptive data owned by the galaxy generator
// Read-only to the flight core; optional fields are resolved at construction
type CelestialBody struct {
	ID         string
	Name       string
	Kind       BodyKind
	Type       string
	RadiusAU   float64
	Luminosity float64 // stars only, heat scale
	Parent     int     // index into the system body slice, NoParent for barycentre
	Orbit      *OrbitalElement
	Dockable   bool
}

// System is one visited star system snapshot
type System struct {
	Index  int
	Name   string
	Bodies []CelestialBody
}

// Stars returns indices of all star bodies
func (s *System) Stars() []int {
	return s.indicesOf(KindStar)
}

// Stations returns indices of all station bodies
func (s *System) Stations() []int {
	return s.indicesOf(KindStation)
}

func (s *System) indicesOf(kind BodyKind) []int {
	var out []int
	for i := range s.Bodies {
		if s.Bodies[i].Kind == kind {
			out = append(out, i)
		}
	}
	return out
}
