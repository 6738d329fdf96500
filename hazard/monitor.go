// Package hazard detects star impact, star heat and solid-body contact for
// the player craft and applies the resulting damage and push-out
package hazard

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/physics"
	"github.com/lixenwraith/star-hauler/vmath"
)

// Config holds hazard tuning
type Config struct {
	HeatMaxDistance        float64 // AU above the star surface
	HeatDamagePerSecond    float64 // at the surface of a luminosity 1 star
	StationCollisionDamage float64 // damage units per AU/s of impact speed
}

// Result summarizes one check
type Result struct {
	Damage int  // whole units absorbed by shields and hull
	Fatal  bool // hull depleted or star impact
	Event  component.HazardEvent
}

// Damaged reports whether any damage landed this check
func (r Result) Damaged() bool {
	return r.Damage > 0
}

// Monitor runs per-frame hazard checks
// Last retains the most recent damage cause across frames for death reporting
type Monitor struct {
	cfg    Config
	logger *zap.Logger
	Last   component.HazardEvent
}

// NewMonitor creates a monitor; nil logger is replaced with a no-op
func NewMonitor(cfg Config, logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{cfg: cfg, logger: logger}
}

// Check tests the ship against every body of the system
// positions must hold the world position of each body for the current date
// Star impact returns immediately; other contacts accumulate
func (m *Monitor) Check(ship *component.Ship, sys *component.System, positions []vmath.Vec3, dt float64) Result {
	var res Result
	if sys == nil {
		return res
	}

	for i := range sys.Bodies {
		if i >= len(positions) {
			break
		}
		b := &sys.Bodies[i]
		center := positions[i]

		switch b.Kind {
		case component.KindStar:
			if m.starImpact(ship, b, center, &res) {
				return res
			}
			m.starHeat(ship, b, center, dt, &res)
		case component.KindStation:
			m.stationContact(ship, b, center, &res)
		case component.KindPlanet, component.KindMoon:
			m.solidContact(ship, b, center)
		}
	}

	if res.Damage > 0 && !ship.Alive() {
		res.Fatal = true
		m.logger.Info("hull depleted", zap.String("cause", res.Event.Type.String()), zap.String("source", res.Event.SourceName))
	}
	return res
}

func (m *Monitor) record(res *Result, t component.HazardType, source string, damage int) {
	res.Damage += damage
	res.Event = component.HazardEvent{Type: t, SourceName: source}
	m.Last = res.Event
}

// starImpact pushes the ship to the surface and destroys it when inside the
// star radius
func (m *Monitor) starImpact(ship *component.Ship, star *component.CelestialBody, center vmath.Vec3, res *Result) bool {
	if !physics.InsideSphere(ship.Position, center, star.RadiusAU) {
		return false
	}
	ship.Position, _ = physics.PushOutOfSphere(ship.Position, center, star.RadiusAU, vmath.QForward(ship.Rotation))
	ship.Velocity = vmath.Vec3{}
	lost := ship.Shields + ship.Hull
	ship.Shields = 0
	ship.Hull = 0

	m.record(res, component.HazardStarImpact, star.Name, lost)
	res.Fatal = true
	m.logger.Info("star impact", zap.String("star", star.Name))
	return true
}

// HeatDamage returns the raw per-tick heat damage before truncation
func (m *Monitor) HeatDamage(star *component.CelestialBody, dist, dt float64) float64 {
	if dist <= 0 || dist-star.RadiusAU > m.cfg.HeatMaxDistance {
		return 0
	}
	ratio := star.RadiusAU / dist
	return m.cfg.HeatDamagePerSecond * star.Luminosity * ratio * ratio * dt
}

// starHeat applies inverse-square heat; fractions below one unit are dropped
func (m *Monitor) starHeat(ship *component.Ship, star *component.CelestialBody, center vmath.Vec3, dt float64, res *Result) {
	raw := m.HeatDamage(star, vmath.V3Dist(ship.Position, center), dt)
	whole := int(math.Floor(raw))
	if whole <= 0 {
		return
	}
	before := ship.Shields + ship.Hull
	ship.ApplyDamage(whole)
	m.record(res, component.HazardStarHeat, star.Name, before-ship.Shields-ship.Hull)
	m.logger.Debug("heat damage", zap.String("star", star.Name), zap.Int("damage", whole))
}

// stationContact pushes the ship out of a station hull and applies impact
// damage from the inward speed
func (m *Monitor) stationContact(ship *component.Ship, st *component.CelestialBody, center vmath.Vec3, res *Result) {
	limit := st.RadiusAU + ship.Size
	if !physics.InsideSphere(ship.Position, center, limit) {
		return
	}
	var n vmath.Vec3
	ship.Position, n = physics.PushOutOfSphere(ship.Position, center, limit, vmath.V3Negate(vmath.QForward(ship.Rotation)))
	inward := math.Max(0, -vmath.V3Dot(ship.Velocity, n))
	ship.Velocity = vmath.Vec3{}

	damage := int(math.Floor(inward * m.cfg.StationCollisionDamage))
	before := ship.Shields + ship.Hull
	ship.ApplyDamage(damage)
	m.record(res, component.HazardStationCollision, st.Name, before-ship.Shields-ship.Hull)
	m.logger.Debug("station collision", zap.String("station", st.Name), zap.Int("damage", damage))
}

// solidContact keeps the ship outside planets and moons without damage
func (m *Monitor) solidContact(ship *component.Ship, b *component.CelestialBody, center vmath.Vec3) {
	if b.RadiusAU <= 0 || !physics.InsideSphere(ship.Position, center, b.RadiusAU) {
		return
	}
	var n vmath.Vec3
	ship.Position, n = physics.PushOutOfSphere(ship.Position, center, b.RadiusAU, vmath.V3Negate(vmath.QForward(ship.Rotation)))
	ship.Velocity = physics.RemoveInward(ship.Velocity, n)
}

// FindDockable returns the nearest dockable station whose surface lies
// within rangeAU of pos
func FindDockable(pos vmath.Vec3, sys *component.System, positions []vmath.Vec3, rangeAU float64) (int, bool) {
	if sys == nil {
		return -1, false
	}
	best, bestDist := -1, math.Inf(1)
	for i := range sys.Bodies {
		b := &sys.Bodies[i]
		if b.Kind != component.KindStation || !b.Dockable || i >= len(positions) {
			continue
		}
		d := vmath.V3Dist(pos, positions[i]) - b.RadiusAU
		if d <= rangeAU && d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}

// NearestStation returns the closest station of any kind, falling back to the
// first planet; -1 for a system with neither
func NearestStation(pos vmath.Vec3, sys *component.System, positions []vmath.Vec3) int {
	if sys == nil {
		return -1
	}
	best, bestDist := -1, math.Inf(1)
	for _, i := range sys.Stations() {
		if i >= len(positions) {
			continue
		}
		if d := vmath.V3Dist(pos, positions[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best >= 0 {
		return best
	}
	for i := range sys.Bodies {
		if sys.Bodies[i].Kind == component.KindPlanet {
			return i
		}
	}
	return -1
}
