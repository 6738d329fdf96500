package particle

import (
	"math"

	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/render"
	"github.com/lixenwraith/star-hauler/vmath"
)

// DustWindow is the look-ahead in seconds used to derive screen velocity
const DustWindow = 1.0 / 15

// DustConfig sizes the mote shell, distances in ship lengths
type DustConfig struct {
	Count           int
	SpawnDistance   float64
	MinDistance     float64
	MaxDistance     float64
	VelocityBias    float64
	StreakThreshold float64 // cells per window
	Seed            uint64
}

// Dust keeps world-space motes in a camera-relative shell
// Cosmetic only; never read by physics or hazards
type Dust struct {
	cfg    DustConfig
	rng    *vmath.FastRand
	motes  []vmath.Vec3
	seeded bool
}

// NewDust allocates an empty pool; the first Update fills it
func NewDust(cfg DustConfig) *Dust {
	return &Dust{
		cfg:   cfg,
		rng:   vmath.NewFastRand(cfg.Seed),
		motes: make([]vmath.Vec3, max(cfg.Count, 0)),
	}
}

// Motes returns the current positions
func (d *Dust) Motes() []vmath.Vec3 {
	return d.motes
}

// spawn places a mote between MinDistance and SpawnDistance ship lengths,
// biased toward the direction of travel
func (d *Dust) spawn(cam, vel vmath.Vec3, shipLen float64) vmath.Vec3 {
	dir := d.rng.UnitSphere()
	if vd := vmath.V3Normalize(vel); !vmath.V3IsZero(vd) {
		dir = vmath.V3AddScaled(dir, vd, d.cfg.VelocityBias)
	}
	dir = vmath.V3Normalize(dir)
	if vmath.V3IsZero(dir) {
		dir = d.rng.UnitSphere()
	}
	lo := d.cfg.MinDistance
	hi := math.Max(lo, math.Min(d.cfg.SpawnDistance, d.cfg.MaxDistance))
	return vmath.V3AddScaled(cam, dir, d.rng.Range(lo, hi)*shipLen)
}

// Update replaces motes that left the [MinDistance, MaxDistance] shell
// around cam; the first call spawns the whole pool
func (d *Dust) Update(cam, vel vmath.Vec3, shipLen float64) {
	if shipLen <= 0 {
		return
	}
	minD := d.cfg.MinDistance * shipLen
	maxD := d.cfg.MaxDistance * shipLen
	for i, p := range d.motes {
		dist := vmath.V3Dist(p, cam)
		if !d.seeded || dist < minD || dist > maxD || math.IsNaN(dist) {
			d.motes[i] = d.spawn(cam, vel, shipLen)
		}
	}
	d.seeded = true
}

// Reset forces a full respawn on the next Update
func (d *Dust) Reset() {
	d.seeded = false
}

// Render draws motes with the ship's velocity making them streak
func (d *Dust) Render(r *render.Rasterizer, col core.RGB, vel vmath.Vec3) {
	cam := r.Camera
	rel := vmath.V3Scale(vel, -DustWindow)
	for _, p := range d.motes {
		c := cam.WorldToCamera(p)
		fx, fy, ok := cam.ProjectCameraSpacePoint(c)
		if !ok {
			continue
		}
		x, y := int(math.Floor(fx)), int(math.Floor(fy))
		glyph := '·'

		nx, ny, ok := cam.ProjectCameraSpacePoint(cam.WorldToCamera(vmath.V3Add(p, rel)))
		if ok {
			dx, dy := nx-fx, ny-fy
			if math.Hypot(dx, dy) > d.cfg.StreakThreshold {
				glyph = render.LineGlyph(dx, dy, cam.CellAspect)
			}
		}
		r.DrawPoint(x, y, c.Z, glyph, col)
	}
}
