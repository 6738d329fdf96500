package vmath

import (
	"math"
	"sort"
)

// DedupeEpsilon is the default distance under which two vertices collapse
const DedupeEpsilon = 1e-9

// Vec2 is a point in a plane's 2D basis
type Vec2 struct {
	X, Y float64
}

// PlaneBasis is an orthonormal frame on a face plane
type PlaneBasis struct {
	Origin Vec3 // centroid of the face
	Normal Vec3
	U, V   Vec3
}

// FaceNormal returns the unit normal by Newell's method
// Zero vector for collinear or coincident input
func FaceNormal(verts []Vec3) Vec3 {
	if len(verts) < 3 {
		return Vec3{}
	}
	var n Vec3
	for i := range verts {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		n.X += (a.Y - b.Y) * (a.Z + b.Z)
		n.Y += (a.Z - b.Z) * (a.X + b.X)
		n.Z += (a.X - b.X) * (a.Y + b.Y)
	}
	// Relative threshold against the face extent
	scale := 0.0
	for _, v := range verts {
		scale = math.Max(scale, V3MagSq(V3Sub(v, verts[0])))
	}
	if V3Mag(n) <= scale*1e-12 {
		return Vec3{}
	}
	return V3Normalize(n)
}

// Centroid returns the vertex average
func Centroid(verts []Vec3) Vec3 {
	if len(verts) == 0 {
		return Vec3{}
	}
	var c Vec3
	for _, v := range verts {
		c = V3Add(c, v)
	}
	return V3Scale(c, 1.0/float64(len(verts)))
}

// NewPlaneBasis derives in-plane axes for normal n anchored at origin
// Helper axis is world X or Y, whichever is less aligned with n
func NewPlaneBasis(origin, n Vec3) PlaneBasis {
	n = V3Normalize(n)
	helper := AxisX
	if math.Abs(V3Dot(n, AxisY)) < math.Abs(V3Dot(n, AxisX)) {
		helper = AxisY
	}
	u := V3Normalize(V3Cross(helper, n))
	v := V3Cross(n, u)
	return PlaneBasis{Origin: origin, Normal: n, U: u, V: v}
}

// Project maps a 3D point onto the basis plane coordinates
func (b PlaneBasis) Project(p Vec3) Vec2 {
	d := V3Sub(p, b.Origin)
	return Vec2{V3Dot(d, b.U), V3Dot(d, b.V)}
}

// OrderPolygon sorts vertices by polar angle about their centroid in the
// plane basis, producing a simple polygon for convex input regardless of order
func OrderPolygon(verts []Vec3, basis PlaneBasis) []Vec3 {
	type keyed struct {
		v     Vec3
		angle float64
	}
	c := basis.Project(Centroid(verts))
	ks := make([]keyed, len(verts))
	for i, v := range verts {
		p := basis.Project(v)
		ks[i] = keyed{v, math.Atan2(p.Y-c.Y, p.X-c.X)}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].angle < ks[j].angle })

	out := make([]Vec3, len(ks))
	for i, k := range ks {
		out[i] = k.v
	}
	return out
}

// DedupeVertices drops consecutive vertices closer than eps and a closing
// vertex that repeats the first
func DedupeVertices(verts []Vec3, eps float64) []Vec3 {
	if len(verts) == 0 {
		return nil
	}
	epsSq := eps * eps
	out := make([]Vec3, 0, len(verts))
	for _, v := range verts {
		if len(out) > 0 && V3MagSq(V3Sub(v, out[len(out)-1])) <= epsSq {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && V3MagSq(V3Sub(out[len(out)-1], out[0])) <= epsSq {
		out = out[:len(out)-1]
	}
	return out
}

// PointInPolygon applies the even-odd rule by casting +X from pt
// Half-open edge test: points on a left/bottom edge are inside, right/top
// outside, identically for every sample position
func PointInPolygon(pt Vec2, poly []Vec2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// ClipNear clips a camera-space polygon against z = near
// Keeps vertices with z >= near, interpolates crossings; fewer than three
// survivors means the face is entirely behind the plane
func ClipNear(verts []Vec3, near float64) []Vec3 {
	n := len(verts)
	if n == 0 {
		return nil
	}
	out := make([]Vec3, 0, n+2)
	for i := 0; i < n; i++ {
		cur := verts[i]
		next := verts[(i+1)%n]
		curIn := cur.Z >= near
		nextIn := next.Z >= near

		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			t := (near - cur.Z) / (next.Z - cur.Z)
			p := V3Lerp(cur, next, t)
			p.Z = near
			out = append(out, p)
		}
	}
	return out
}

// PreparedFace is a face reduced to a clean ordered polygon on its plane
type PreparedFace struct {
	Basis   PlaneBasis
	Verts   []Vec3
	Polygon []Vec2
}

// SpanNormal returns a unit normal independent of vertex order, from the
// largest cross product of centroid-relative vertex pairs
// Zero vector for collinear or coincident input
func SpanNormal(verts []Vec3) Vec3 {
	if len(verts) < 3 {
		return Vec3{}
	}
	c := Centroid(verts)
	var best Vec3
	bestMag, scale := 0.0, 0.0
	for i := range verts {
		a := V3Sub(verts[i], c)
		scale = math.Max(scale, V3MagSq(a))
		for j := i + 1; j < len(verts); j++ {
			n := V3Cross(a, V3Sub(verts[j], c))
			if m := V3MagSq(n); m > bestMag {
				best, bestMag = n, m
			}
		}
	}
	// Relative threshold against the face extent, same as FaceNormal
	if math.Sqrt(bestMag) <= scale*1e-12 {
		return Vec3{}
	}
	return V3Normalize(best)
}

// PrepareFace builds basis, ordering and 2D outline for a face
// Input order is irrelevant; ok is false for degenerate faces (fewer than
// three distinct vertices or all collinear)
func PrepareFace(verts []Vec3) (PreparedFace, bool) {
	clean := DedupeVertices(verts, DedupeEpsilon)
	if len(clean) < 3 {
		return PreparedFace{}, false
	}
	n := SpanNormal(clean)
	if V3IsZero(n) {
		return PreparedFace{}, false
	}
	// Keep the winding side when the input is already a simple polygon
	if V3Dot(n, FaceNormal(clean)) < 0 {
		n = V3Negate(n)
	}
	basis := NewPlaneBasis(Centroid(clean), n)
	// Near-identical points share a polar angle, so they become adjacent here
	ordered := DedupeVertices(OrderPolygon(clean, basis), DedupeEpsilon)
	if len(ordered) < 3 {
		return PreparedFace{}, false
	}
	poly := make([]Vec2, len(ordered))
	for i, v := range ordered {
		poly[i] = basis.Project(v)
	}
	return PreparedFace{Basis: basis, Verts: ordered, Polygon: poly}, true
}
