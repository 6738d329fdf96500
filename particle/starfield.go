package particle

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/render"
	"github.com/lixenwraith/star-hauler/vmath"
)

// Streak shaping, seconds and cells
const (
	StreakMaxDelay = 0.6
	StreakMinRate  = 8.0
	StreakMaxRate  = 40.0
	StreakMaxLen   = 24
)

// StarfieldConfig sizes the background star pool
type StarfieldConfig struct {
	Count          int
	Radius         float64 // AU from the camera
	RenderDistance float64 // depth written to the buffer
	Seed           uint64
}

// Starfield is a fixed set of directions re-centred on the camera each frame
// Stars shift only with camera rotation, never translation
type Starfield struct {
	cfg  StarfieldConfig
	dirs []vmath.Vec3
}

// NewStarfield samples Count directions uniformly on the sphere
func NewStarfield(cfg StarfieldConfig) *Starfield {
	rng := vmath.NewFastRand(cfg.Seed)
	dirs := make([]vmath.Vec3, max(cfg.Count, 0))
	for i := range dirs {
		dirs[i] = rng.UnitSphere()
	}
	return &Starfield{cfg: cfg, dirs: dirs}
}

// Directions returns the star direction pool
func (s *Starfield) Directions() []vmath.Vec3 {
	return s.dirs
}

// Position returns star i in world space for a camera at cam
func (s *Starfield) Position(i int, cam vmath.Vec3) vmath.Vec3 {
	return vmath.V3AddScaled(cam, s.dirs[i], s.cfg.Radius)
}

// StarHash hashes the exact float bits of a direction
func StarHash(dir vmath.Vec3) uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(dir.X))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(dir.Y))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(dir.Z))
	return xxhash.Sum64(buf[:])
}

// unitFromBits maps 16 hash bits to [0,1]
func unitFromBits(h uint64, shift uint) float64 {
	return float64((h>>shift)&0xffff) / 0xffff
}

// StreakLength returns the streak length in cells for a star after elapsed
// seconds of boost; a pure function of direction and time
func StreakLength(dir vmath.Vec3, elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	h := StarHash(dir)
	delay := unitFromBits(h, 0) * StreakMaxDelay
	rate := StreakMinRate + unitFromBits(h, 16)*(StreakMaxRate-StreakMinRate)
	if elapsed <= delay {
		return 0
	}
	return math.Min((elapsed-delay)*rate, StreakMaxLen)
}

// starGlyph picks a per-star glyph and brightness from its hash
func starGlyph(h uint64) (rune, float64) {
	b := unitFromBits(h, 32)
	switch {
	case b > 0.95:
		return '*', 1
	case b > 0.75:
		return '+', 0.85
	default:
		return '.', 0.45 + 0.4*b
	}
}

// Render draws every visible star at the configured render depth
// boostElapsed is seconds since boost start, zero when not boosting
func (s *Starfield) Render(r *render.Rasterizer, base core.RGB, boostElapsed float64) {
	cam := r.Camera
	cx, cy := float64(cam.Width)/2, float64(cam.Height)/2
	z := s.cfg.RenderDistance

	for _, dir := range s.dirs {
		p := vmath.V3Scale(cam.DirectionToCamera(dir), s.cfg.Radius)
		fx, fy, ok := cam.ProjectCameraSpacePoint(p)
		if !ok {
			continue
		}
		h := StarHash(dir)
		glyph, bright := starGlyph(h)
		col := base.Scale(bright)
		x, y := int(math.Floor(fx)), int(math.Floor(fy))

		length := StreakLength(dir, boostElapsed)
		if length < 1 {
			r.DrawPoint(x, y, z, glyph, col)
			continue
		}

		// Radial streak away from the screen centre
		dx, dy := fx-cx, fy-cy
		mag := math.Hypot(dx, dy*cam.CellAspect)
		if mag < 1e-9 {
			r.DrawPoint(x, y, z, glyph, col)
			continue
		}
		ux, uy := dx/mag, dy*cam.CellAspect/mag
		ex := int(math.Floor(fx + ux*length))
		ey := int(math.Floor(fy + uy*length/cam.CellAspect))
		r.DrawLine(x, y, ex, ey, z, render.LineGlyph(dx, dy, cam.CellAspect), col)
	}
}
