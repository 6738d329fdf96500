package component

import (
	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/vmath"
)

// Face is a planar polygon of 3 or 4 vertices in mesh-local space
type Face struct {
	Vertices []vmath.Vec3
	Color    core.RGB
	Glyph    rune // 0 selects a shaded glyph from the normal
}

// Mesh is static shape data, read-only during rendering
type Mesh struct {
	Faces []Face
}
