package physics

import (
	"github.com/lixenwraith/star-hauler/vmath"
)

// InsideSphere reports pos strictly within radius of center
// A point left on the surface by PushOutOfSphere is outside
func InsideSphere(pos, center vmath.Vec3, radius float64) bool {
	return vmath.V3MagSq(vmath.V3Sub(pos, center)) < radius*radius
}

// PushOutOfSphere moves pos onto the sphere surface along the outward normal
// fallback is used as the normal when pos coincides with center
// Returns the new position and the unit normal used
func PushOutOfSphere(pos, center vmath.Vec3, radius float64, fallback vmath.Vec3) (vmath.Vec3, vmath.Vec3) {
	n := vmath.V3Normalize(vmath.V3Sub(pos, center))
	if vmath.V3IsZero(n) {
		n = vmath.V3Normalize(fallback)
		if vmath.V3IsZero(n) {
			n = vmath.AxisZ
		}
	}
	return vmath.V3AddScaled(center, n, radius), n
}

// RemoveInward strips the velocity component pointing into a surface with
// outward normal n
func RemoveInward(vel, n vmath.Vec3) vmath.Vec3 {
	vn := vmath.V3Dot(vel, n)
	if vn >= 0 {
		return vel
	}
	return vmath.V3AddScaled(vel, n, -vn)
}
