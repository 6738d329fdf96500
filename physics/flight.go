package physics

import (
	"github.com/lixenwraith/star-hauler/vmath"
)

// ApplyAcceleration returns v + dir·accel·dt
func ApplyAcceleration(v, dir vmath.Vec3, accel, dt float64) vmath.Vec3 {
	return vmath.V3AddScaled(v, dir, accel*dt)
}

// ApplyBrake decelerates against the current heading
// Speeds at or below one frame of deceleration snap to exactly zero so the
// velocity never oscillates around the origin
func ApplyBrake(v vmath.Vec3, accel, dt float64) vmath.Vec3 {
	step := accel * dt
	speed := vmath.V3Mag(v)
	if speed <= step {
		return vmath.Vec3{}
	}
	return vmath.V3Scale(v, (speed-step)/speed)
}

// ClampSpeed rescales v to exactly max when faster, otherwise returns v unchanged
func ClampSpeed(v vmath.Vec3, max float64) vmath.Vec3 {
	speed := vmath.V3Mag(v)
	if speed <= max || speed == 0 {
		return v
	}
	return vmath.V3Scale(vmath.V3Normalize(v), max)
}

// Integrate advances position by velocity over dt
func Integrate(pos, vel vmath.Vec3, dt float64) vmath.Vec3 {
	return vmath.V3AddScaled(pos, vel, dt)
}
