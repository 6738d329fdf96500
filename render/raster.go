package render

import (
	"math"

	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/vmath"
)

// FillMode selects how mesh faces reach the depth buffer
type FillMode uint8

const (
	FillTriangles FillMode = iota // fan triangulation, barycentric depth
	FillRays                      // per-cell ray cast with outline edges
)

// Default glyphs
const (
	GlyphOutline = '░'
	GlyphPoint   = '·'
	GlyphBody    = '█'
)

// cornerSamples are sub-cell offsets tried when the centre ray misses
var cornerSamples = [4][2]float64{
	{0.15, 0.15},
	{0.85, 0.15},
	{0.15, 0.85},
	{0.85, 0.85},
}

// ScreenPoint is a projected vertex in fractional cell coordinates with its
// camera-space depth
type ScreenPoint struct {
	X, Y, Z float64
}

// Rasterizer writes geometry into a depth buffer through a camera
type Rasterizer struct {
	Camera *Camera
	Buffer *DepthBuffer

	// Light is the world-space direction light travels; zero disables shading
	Light vmath.Vec3
	// Ambient is the minimum shading intensity for unlit faces
	Ambient float64
}

// NewRasterizer binds a camera and buffer
func NewRasterizer(cam *Camera, buf *DepthBuffer) *Rasterizer {
	return &Rasterizer{Camera: cam, Buffer: buf, Ambient: 0.25}
}

// DrawPoint writes a single glyph at cell (x, y) and depth z
func (r *Rasterizer) DrawPoint(x, y int, z float64, g rune, c core.RGB) bool {
	return r.Buffer.Set(x, y, z, g, c)
}

// DrawLine rasterizes a Bresenham line at constant depth; off-grid cells are
// clipped by the buffer
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, z float64, g rune, c core.RGB) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	// Projections close to the near plane can explode; such lines are dropped
	if dx-dy > 4*(r.Buffer.Width()+r.Buffer.Height()) {
		return
	}
	err := dx + dy
	for {
		r.Buffer.Set(x0, y0, z, g, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// edge is twice the signed area of (a, b, p)
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// FillTriangle covers every cell whose centre lies inside the projected
// triangle; depth is interpolated linearly in screen space
func (r *Rasterizer) FillTriangle(a, b, c ScreenPoint, g rune, col core.RGB) {
	area := edge(a.X, a.Y, b.X, b.Y, c.X, c.Y)
	if math.Abs(area) < 1e-12 || math.IsNaN(area) {
		return
	}

	minX := max(int(math.Floor(min(a.X, b.X, c.X))), 0)
	maxX := min(int(math.Ceil(max(a.X, b.X, c.X))), r.Buffer.Width()-1)
	minY := max(int(math.Floor(min(a.Y, b.Y, c.Y))), 0)
	maxY := min(int(math.Ceil(max(a.Y, b.Y, c.Y))), r.Buffer.Height()-1)

	inv := 1.0 / area
	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5
			w0 := edge(b.X, b.Y, c.X, c.Y, px, py) * inv
			w1 := edge(c.X, c.Y, a.X, a.Y, px, py) * inv
			w2 := edge(a.X, a.Y, b.X, b.Y, px, py) * inv
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.Z + w1*b.Z + w2*c.Z
			r.Buffer.Set(x, y, z, g, col)
		}
	}
}

// FillQuad splits a quad into two triangles sharing the a-c diagonal
func (r *Rasterizer) FillQuad(a, b, c, d ScreenPoint, g rune, col core.RGB) {
	r.FillTriangle(a, b, c, g, col)
	r.FillTriangle(a, c, d, g, col)
}

// FillPolygon clips a camera-space convex polygon to the near plane and fills
// it as a triangle fan
func (r *Rasterizer) FillPolygon(verts []vmath.Vec3, g rune, col core.RGB) {
	clipped := vmath.ClipNear(verts, r.Camera.Near)
	if len(clipped) < 3 {
		return
	}
	pts := make([]ScreenPoint, len(clipped))
	for i, v := range clipped {
		fx, fy := r.Camera.project(v)
		pts[i] = ScreenPoint{fx, fy, v.Z}
	}
	for i := 1; i+1 < len(pts); i++ {
		r.FillTriangle(pts[0], pts[i], pts[i+1], g, col)
	}
}

// FillFace ray-casts an arbitrary planar face given in camera space
// Centre hit writes fill; a miss with any corner hit writes outline at the
// nearest corner depth; degenerate faces are skipped and reported false
func (r *Rasterizer) FillFace(verts []vmath.Vec3, fill, outline rune, col core.RGB) bool {
	face, ok := vmath.PrepareFace(verts)
	if !ok {
		return false
	}
	clipped := vmath.ClipNear(face.Verts, r.Camera.Near)
	if len(clipped) < 3 {
		return false
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range clipped {
		fx, fy := r.Camera.project(v)
		minX, maxX = min(minX, fx), max(maxX, fx)
		minY, maxY = min(minY, fy), max(maxY, fy)
	}
	// One cell margin so partially covered border cells get corner samples
	x0 := max(int(math.Floor(minX))-1, 0)
	x1 := min(int(math.Ceil(maxX))+1, r.Buffer.Width()-1)
	y0 := max(int(math.Floor(minY))-1, 0)
	y1 := min(int(math.Ceil(maxY))+1, r.Buffer.Height()-1)

	n := face.Basis.Normal
	planeD := vmath.V3Dot(n, face.Basis.Origin)

	hit := func(fx, fy float64) (float64, bool) {
		d := r.Camera.RayThrough(fx, fy)
		denom := vmath.V3Dot(n, d)
		if math.Abs(denom) < 1e-12 {
			return 0, false
		}
		t := planeD / denom
		if t <= 0 {
			return 0, false
		}
		p := vmath.V3Scale(d, t)
		if p.Z < r.Camera.Near {
			return 0, false
		}
		if !vmath.PointInPolygon(face.Basis.Project(p), face.Polygon) {
			return 0, false
		}
		return p.Z, true
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if z, ok := hit(float64(x)+0.5, float64(y)+0.5); ok {
				r.Buffer.Set(x, y, z, fill, col)
				continue
			}
			best := math.Inf(1)
			for _, s := range cornerSamples {
				if z, ok := hit(float64(x)+s[0], float64(y)+s[1]); ok && z < best {
					best = z
				}
			}
			if !math.IsInf(best, 1) {
				r.Buffer.Set(x, y, best, outline, col)
			}
		}
	}
	return true
}

// MeshOptions controls DrawMesh
type MeshOptions struct {
	Mode     FillMode
	Cull     bool // skip faces pointing away from the camera
	Scale    float64
	Outline  rune
	Override core.RGB // used when UseColor is set
	UseColor bool
}

// DrawMesh places a local-space mesh at pos/rot, shades and fills each face
func (r *Rasterizer) DrawMesh(m component.Mesh, pos vmath.Vec3, rot vmath.Quat, opts MeshOptions) {
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	outline := opts.Outline
	if outline == 0 {
		outline = GlyphOutline
	}
	light := r.Camera.DirectionToCamera(vmath.V3Normalize(r.Light))

	cam := make([]vmath.Vec3, 0, 8)
	for _, f := range m.Faces {
		cam = cam[:0]
		for _, v := range f.Vertices {
			world := vmath.V3Add(pos, vmath.QRotate(rot, vmath.V3Scale(v, scale)))
			cam = append(cam, r.Camera.WorldToCamera(world))
		}

		normal := vmath.FaceNormal(cam)
		if vmath.V3IsZero(normal) {
			continue
		}
		// Camera sits at the origin; a normal along the view ray faces away
		facing := vmath.V3Dot(normal, vmath.Centroid(cam))
		if opts.Cull && facing > 0 {
			continue
		}
		if facing > 0 {
			normal = vmath.V3Negate(normal)
		}

		col := f.Color
		if opts.UseColor {
			col = opts.Override
		}
		intensity := Intensity(normal, light, r.Ambient)
		glyph := f.Glyph
		if glyph == 0 {
			glyph = ShadeGlyph(intensity)
		}
		col = col.Scale(0.4 + 0.6*intensity)

		switch opts.Mode {
		case FillRays:
			r.FillFace(cam, glyph, outline, col)
		default:
			r.FillPolygon(cam, glyph, col)
		}
	}
}

// bodyDiscSegments is the vertex count of a body's silhouette polygon
const bodyDiscSegments = 16

// DrawBody renders a sphere as a camera-facing disc; bodies smaller than a
// cell collapse to a single point glyph
func (r *Rasterizer) DrawBody(center vmath.Vec3, radius float64, fill rune, col core.RGB) {
	c := r.Camera.WorldToCamera(center)
	if c.Z+radius < r.Camera.Near {
		return
	}

	if c.Z > r.Camera.Near && r.Camera.ProjectedRadius(radius, c.Z) < 0.5 {
		fx, fy, ok := r.Camera.ProjectCameraSpacePoint(c)
		if ok {
			r.Buffer.Set(int(math.Floor(fx)), int(math.Floor(fy)), c.Z, GlyphPoint, col)
		}
		return
	}

	// Disc perpendicular to the line of sight through the centre
	view := vmath.V3Normalize(c)
	if vmath.V3IsZero(view) {
		view = vmath.AxisZ
	}
	basis := vmath.NewPlaneBasis(c, view)
	verts := make([]vmath.Vec3, bodyDiscSegments)
	for i := range verts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / bodyDiscSegments)
		offset := vmath.V3Add(vmath.V3Scale(basis.U, co*radius), vmath.V3Scale(basis.V, s*radius))
		verts[i] = vmath.V3Add(c, offset)
	}
	r.FillFace(verts, fill, GlyphOutline, col)
}
