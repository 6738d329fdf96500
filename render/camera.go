package render

import (
	"math"

	"github.com/lixenwraith/star-hauler/vmath"
)

// Camera is a pinhole camera over a character grid
// Camera space: +X right, +Y up, +Z forward; screen Y grows downward
// CellAspect is cell height over cell width, so horizontal offsets span more
// cells per radian and apparent angles stay isotropic
type Camera struct {
	Width, Height int
	FOVDeg        float64 // vertical field of view
	Near          float64
	CellAspect    float64

	Position vmath.Vec3
	Rotation vmath.Quat

	focal float64 // cells per unit of tan(angle), vertical
}

// NewCamera builds a camera at the origin looking down +Z
func NewCamera(width, height int, fovDeg, near, cellAspect float64) *Camera {
	c := &Camera{
		FOVDeg:     fovDeg,
		Near:       near,
		CellAspect: cellAspect,
		Rotation:   vmath.QIdentity,
	}
	c.Resize(width, height)
	return c
}

// Resize updates the grid dimensions and focal length
func (c *Camera) Resize(width, height int) {
	c.Width, c.Height = width, height
	half := c.FOVDeg * math.Pi / 360
	c.focal = float64(height) / 2 / math.Tan(half)
	if c.CellAspect <= 0 {
		c.CellAspect = 1
	}
}

// WorldToCamera maps a world point into the space of a camera at pos with
// orientation rot
func WorldToCamera(pos vmath.Vec3, rot vmath.Quat, p vmath.Vec3) vmath.Vec3 {
	return vmath.QRotate(vmath.QConj(rot), vmath.V3Sub(p, pos))
}

// WorldToCamera maps a world point into this camera's space
func (c *Camera) WorldToCamera(p vmath.Vec3) vmath.Vec3 {
	return WorldToCamera(c.Position, c.Rotation, p)
}

// DirectionToCamera rotates a world direction into camera space
func (c *Camera) DirectionToCamera(d vmath.Vec3) vmath.Vec3 {
	return vmath.QRotate(vmath.QConj(c.Rotation), d)
}

// RayThrough returns the normalized camera-space ray through fractional
// screen coordinates
func (c *Camera) RayThrough(fx, fy float64) vmath.Vec3 {
	x := (fx - float64(c.Width)/2) / (c.focal * c.CellAspect)
	y := -(fy - float64(c.Height)/2) / c.focal
	return vmath.V3Normalize(vmath.Vec3{X: x, Y: y, Z: 1})
}

// ScreenRayDirection returns the ray through the centre of cell (cx, cy)
func (c *Camera) ScreenRayDirection(cx, cy int) vmath.Vec3 {
	return c.RayThrough(float64(cx)+0.5, float64(cy)+0.5)
}

// ProjectCameraSpacePoint maps a camera-space point to fractional cell
// coordinates; ok is false at or behind the near plane
func (c *Camera) ProjectCameraSpacePoint(p vmath.Vec3) (fx, fy float64, ok bool) {
	if !(p.Z > c.Near) {
		return 0, 0, false
	}
	fx, fy = c.project(p)
	return fx, fy, true
}

// project performs the perspective divide without the near test
// Callers guarantee p.Z > 0 (clipped geometry sits exactly on the near plane)
func (c *Camera) project(p vmath.Vec3) (float64, float64) {
	inv := 1.0 / p.Z
	fx := float64(c.Width)/2 + p.X*inv*c.focal*c.CellAspect
	fy := float64(c.Height)/2 - p.Y*inv*c.focal
	return fx, fy
}

// ProjectedRadius returns the approximate on-screen radius in rows of a
// sphere of radius r at camera depth z
func (c *Camera) ProjectedRadius(r, z float64) float64 {
	if z <= 0 {
		return math.Inf(1)
	}
	return r / z * c.focal
}
