// Package mesh builds the fixed local-space shapes drawn by the rasterizer
// Local frame: +X right, +Y up, +Z forward, unit length along Z
package mesh

import (
	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/vmath"
)

// Ship returns a wedge hull of unit length, nose at +Z
// Faces wind counter-clockwise seen from outside so Newell normals point out
func Ship(c core.RGB) component.Mesh {
	nose := vmath.Vec3{Z: 0.5}
	tl := vmath.Vec3{X: -0.35, Y: 0.08, Z: -0.5}
	tr := vmath.Vec3{X: 0.35, Y: 0.08, Z: -0.5}
	bl := vmath.Vec3{X: -0.35, Y: -0.08, Z: -0.5}
	br := vmath.Vec3{X: 0.35, Y: -0.08, Z: -0.5}

	return component.Mesh{Faces: []component.Face{
		{Vertices: []vmath.Vec3{nose, tr, tl}, Color: c},
		{Vertices: []vmath.Vec3{nose, bl, br}, Color: c},
		{Vertices: []vmath.Vec3{nose, tl, bl}, Color: c},
		{Vertices: []vmath.Vec3{nose, br, tr}, Color: c},
		{Vertices: []vmath.Vec3{tl, tr, br, bl}, Color: c.Scale(0.6), Glyph: '='},
	}}
}

// Box returns an axis-aligned box centred on the origin with half extents h
func Box(h vmath.Vec3, c core.RGB) component.Mesh {
	corner := func(sx, sy, sz float64) vmath.Vec3 {
		return vmath.Vec3{X: sx * h.X, Y: sy * h.Y, Z: sz * h.Z}
	}
	// Index bits: x=1, y=2, z=4
	var v [8]vmath.Vec3
	for i := range v {
		sx, sy, sz := -1.0, -1.0, -1.0
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		v[i] = corner(sx, sy, sz)
	}
	quad := func(a, b, c2, d int) component.Face {
		return component.Face{Vertices: []vmath.Vec3{v[a], v[b], v[c2], v[d]}, Color: c}
	}
	return component.Mesh{Faces: []component.Face{
		quad(0, 2, 3, 1), // -Z
		quad(4, 5, 7, 6), // +Z
		quad(0, 4, 6, 2), // -X
		quad(1, 3, 7, 5), // +X
		quad(0, 1, 5, 4), // -Y
		quad(2, 6, 7, 3), // +Y
	}}
}

// Station returns a hub box with a perpendicular docking ring spar, unit
// diameter
func Station(c core.RGB) component.Mesh {
	hub := Box(vmath.Vec3{X: 0.2, Y: 0.2, Z: 0.2}, c)
	spar := Box(vmath.Vec3{X: 0.5, Y: 0.05, Z: 0.05}, c.Scale(0.8))
	mast := Box(vmath.Vec3{X: 0.05, Y: 0.5, Z: 0.05}, c.Scale(0.8))

	faces := make([]component.Face, 0, len(hub.Faces)+len(spar.Faces)+len(mast.Faces))
	faces = append(faces, hub.Faces...)
	faces = append(faces, spar.Faces...)
	faces = append(faces, mast.Faces...)
	return component.Mesh{Faces: faces}
}
