package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/vmath"
)

// OrbitEpoch is the fixed reference date for orbital phase
var OrbitEpoch = time.Date(2300, time.January, 1, 0, 0, 0, 0, time.UTC)

const (
	msPerDay = 86_400_000.0

	// maxParentDepth bounds parent-chain walks on malformed data
	maxParentDepth = 8
)

// DaysSinceEpoch returns fractional days from OrbitEpoch to date
// Millisecond integer arithmetic avoids time.Duration overflow past ~292 years
func DaysSinceEpoch(date time.Time) float64 {
	return float64(date.UnixMilli()-OrbitEpoch.UnixMilli()) / msPerDay
}

// wrapUnit reduces x into [0,1), well defined for negative input
func wrapUnit(x float64) float64 {
	f := x - math.Floor(x)
	if f >= 1 {
		f = 0
	}
	return f
}

// OrbitOffset returns a body's offset from its parent centre at date
// Stationary or missing orbits return the zero offset
// Pure: identical (orbit, date) input yields bit-identical output
func OrbitOffset(orbit *component.OrbitalElement, date time.Time) vmath.Vec3 {
	if orbit.Stationary() {
		return vmath.Vec3{}
	}

	phase := wrapUnit(DaysSinceEpoch(date)/orbit.PeriodDays + orbit.PhaseOffset)
	angle := phase * 2 * math.Pi
	r := orbit.SemiMajorAxisAU

	sinA, cosA := math.Sincos(angle)
	sinI, cosI := math.Sincos(orbit.InclinationRad)
	return vmath.Vec3{
		X: cosA * r,
		Y: sinA * r * cosI,
		Z: sinA * r * sinI,
	}
}

// BodyWorldPosition sums orbit offsets up the parent chain
// Out-of-range or cyclic parents terminate the walk at the barycentre
func BodyWorldPosition(bodies []component.CelestialBody, index int, date time.Time) vmath.Vec3 {
	var pos vmath.Vec3
	for depth := 0; depth < maxParentDepth; depth++ {
		if index < 0 || index >= len(bodies) {
			break
		}
		b := &bodies[index]
		pos = vmath.V3Add(pos, OrbitOffset(b.Orbit, date))
		if b.Parent == index {
			break
		}
		index = b.Parent
	}
	return pos
}

// SystemPositions computes world positions of every body for one frame
// dst is reused when large enough
func SystemPositions(dst []vmath.Vec3, bodies []component.CelestialBody, date time.Time) []vmath.Vec3 {
	if cap(dst) < len(bodies) {
		dst = make([]vmath.Vec3, len(bodies))
	}
	dst = dst[:len(bodies)]
	for i := range bodies {
		dst[i] = BodyWorldPosition(bodies, i, date)
	}
	return dst
}
