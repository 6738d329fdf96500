package component

import (
	"github.com/lixenwraith/star-hauler/vmath"
)

// Engine describes a ship's drive
type Engine struct {
	Name               string
	Acceleration       float64 // AU/s²
	MaxSpeed           float64 // AU/s
	BoostMultiplier    float64 // applied to acceleration and max speed
	FuelPerBoostSecond float64
}

// Ship is the kinematic and resource state of a craft
// Position/Velocity/Rotation are mutated every frame by physics and hazards
type Ship struct {
	Position vmath.Vec3
	Rotation vmath.Quat
	Velocity vmath.Vec3
	Size     float64 // hull length, AU
	Hull     int
	MaxHull  int
	Shields  int
	Fuel     float64
	Engine   Engine
}

// Alive reports remaining hull
func (s *Ship) Alive() bool {
	return s.Hull > 0
}

// CanBoost reports whether fuel allows boosting
func (s *Ship) CanBoost() bool {
	return s.Fuel > 0 && s.Engine.BoostMultiplier > 1
}

// ApplyDamage takes whole-unit damage, shields absorb before hull
// Returns hull damage actually taken
func (s *Ship) ApplyDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	absorbed := min(amount, s.Shields)
	s.Shields -= absorbed
	rest := amount - absorbed
	hullHit := min(rest, s.Hull)
	s.Hull -= hullHit
	return hullHit
}
