package vmath

import (
	"math"
)

// Quat is a unit quaternion representing orientation
// Local frame convention: +X right, +Y up, +Z forward
type Quat struct {
	X, Y, Z, W float64
}

// QIdentity is the no-rotation orientation
var QIdentity = Quat{0, 0, 0, 1}

// QMul is the Hamilton product a*b (apply b, then a)
func QMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// QConj returns the conjugate, the inverse for unit quaternions
func QConj(q Quat) Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// QNormalize rescales to unit length, identity for a zero quaternion
func QNormalize(q Quat) Quat {
	mag := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if mag == 0 || math.IsNaN(mag) {
		return QIdentity
	}
	inv := 1.0 / mag
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QFromAxisAngle builds a rotation of angle radians about axis
// Zero-length axis yields identity
func QFromAxisAngle(axis Vec3, angle float64) Quat {
	n := V3Normalize(axis)
	if V3IsZero(n) {
		return QIdentity
	}
	s, c := math.Sincos(angle * 0.5)
	return Quat{n.X * s, n.Y * s, n.Z * s, c}
}

// QRotate rotates v by q as q*(v,0)*q⁻¹ truncated to three components
func QRotate(q Quat, v Vec3) Vec3 {
	p := Quat{v.X, v.Y, v.Z, 0}
	r := QMul(QMul(q, p), QConj(q))
	return Vec3{r.X, r.Y, r.Z}
}

// QForward returns the local +Z axis in world space
func QForward(q Quat) Vec3 { return QRotate(q, AxisZ) }

// QUp returns the local +Y axis in world space
func QUp(q Quat) Vec3 { return QRotate(q, AxisY) }

// QRight returns the local +X axis in world space
func QRight(q Quat) Vec3 { return QRotate(q, AxisX) }

// QFromForwardUp builds the orientation whose +Z is forward and whose +Y is as
// close to up as possible
// A zero forward falls back to world +Z; a right vector of zero length (up
// parallel to forward) substitutes a canonical axis not parallel to forward
func QFromForwardUp(forward, up Vec3) Quat {
	f := V3Normalize(forward)
	if V3IsZero(f) {
		f = AxisZ
	}

	r := V3Normalize(V3Cross(up, f))
	if V3IsZero(r) {
		helper := AxisY
		if math.Abs(V3Dot(f, AxisY)) > 0.9 {
			helper = AxisX
		}
		r = V3Normalize(V3Cross(helper, f))
		if V3IsZero(r) {
			r = AxisX
		}
	}
	u := V3Cross(f, r)

	return qFromBasis(r, u, f)
}

// qFromBasis converts an orthonormal basis (columns r,u,f) into a quaternion
// Shepperd's method, branch on the largest diagonal term for stability
func qFromBasis(r, u, f Vec3) Quat {
	m00, m01, m02 := r.X, u.X, f.X
	m10, m11, m12 := r.Y, u.Y, f.Y
	m20, m21, m22 := r.Z, u.Z, f.Z

	trace := m00 + m11 + m22
	var q Quat
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1.0) * 2
		q = Quat{
			X: (m21 - m12) / s,
			Y: (m02 - m20) / s,
			Z: (m10 - m01) / s,
			W: 0.25 * s,
		}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1.0+m00-m11-m22) * 2
		q = Quat{
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := math.Sqrt(1.0+m11-m00-m22) * 2
		q = Quat{
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := math.Sqrt(1.0+m22-m00-m11) * 2
		q = Quat{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
			W: (m10 - m01) / s,
		}
	}
	return QNormalize(q)
}

// QApproxEqual compares orientations within eps, treating q and -q as equal
func QApproxEqual(a, b Quat, eps float64) bool {
	d := a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
	return math.Abs(math.Abs(d)-1) <= eps
}
