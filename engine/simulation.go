// Package engine drives one flight frame: physics, orbits, hazards, render
// and the timed hand-offs, all on the caller's goroutine
package engine

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-hauler/audio"
	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/config"
	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/hazard"
	"github.com/lixenwraith/star-hauler/mesh"
	"github.com/lixenwraith/star-hauler/parameter"
	"github.com/lixenwraith/star-hauler/particle"
	"github.com/lixenwraith/star-hauler/physics"
	"github.com/lixenwraith/star-hauler/render"
	"github.com/lixenwraith/star-hauler/sequence"
	"github.com/lixenwraith/star-hauler/vmath"
)

// Frame is the per-tick input from the host
type Frame struct {
	Now       time.Time  // wall time
	Effective *time.Time // overrides Now for every timed computation, e.g. frozen while paused
	Date      time.Time  // game date for orbit positions
	Dt        time.Duration
}

// effective resolves the timestamp sequences and effects run on
func (f Frame) effective() time.Time {
	if f.Effective != nil {
		return *f.Effective
	}
	return f.Now
}

// Handoff receives completed sequences; each fires once per sequence
type Handoff interface {
	Docked(sequence.DockPayload)
	Towed(sequence.TowPayload)
	Warped(sequence.WarpPayload)
}

// CuePlayer plays audio cues; *audio.Player satisfies it
type CuePlayer interface {
	Play(c audio.Cue, now time.Time) bool
}

type nopHandoff struct{}

func (nopHandoff) Docked(sequence.DockPayload) {}
func (nopHandoff) Towed(sequence.TowPayload)   {}
func (nopHandoff) Warped(sequence.WarpPayload) {}

type nopCues struct{}

func (nopCues) Play(audio.Cue, time.Time) bool { return false }

// Options wires the simulation's collaborators; nil fields get no-op defaults
type Options struct {
	Config  *config.Config
	Surface render.Surface
	Handoff Handoff
	Cues    CuePlayer
	Logger  *zap.Logger
}

// Simulation owns every piece of per-flight state
type Simulation struct {
	Ship   component.Ship
	System *component.System

	cfg     *config.Config
	surface render.Surface
	handoff Handoff
	cues    CuePlayer
	logger  *zap.Logger

	camera    *render.Camera
	buffer    *render.DepthBuffer
	raster    *render.Rasterizer
	positions []vmath.Vec3

	starfield *particle.Starfield
	dust      *particle.Dust
	monitor   *hazard.Monitor

	death   *sequence.Death
	docking *sequence.Docking
	warp    *sequence.WarpFade
	boost   *sequence.BoostTint
	flash   *sequence.DamageFlash

	controls *Controls

	shipMesh    component.Mesh
	stationMesh component.Mesh

	stopped bool
}

// NewShip returns a ship at pos with the default hull, shields, fuel and drive
func NewShip(pos vmath.Vec3, rot vmath.Quat) component.Ship {
	return component.Ship{
		Position: pos,
		Rotation: rot,
		Size:     parameter.ShipSize,
		Hull:     parameter.ShipHull,
		MaxHull:  parameter.ShipHull,
		Shields:  parameter.ShipShields,
		Fuel:     parameter.ShipFuel,
		Engine: component.Engine{
			Name:               "standard",
			Acceleration:       parameter.ShipAcceleration,
			MaxSpeed:           parameter.ShipMaxSpeed,
			BoostMultiplier:    parameter.ShipBoostMultiplier,
			FuelPerBoostSecond: parameter.ShipFuelPerBoostSecond,
		},
	}
}

// NewSimulation builds a simulation for ship flying in sys
func NewSimulation(sys *component.System, ship component.Ship, opts Options) *Simulation {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.Surface == nil {
		opts.Surface = render.NewGrid(80, 24)
	}
	if opts.Handoff == nil {
		opts.Handoff = nopHandoff{}
	}
	if opts.Cues == nil {
		opts.Cues = nopCues{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	w, h := opts.Surface.Size()
	cam := render.NewCamera(w, h, cfg.FOVDeg, cfg.NearPlane, cfg.CellAspect)
	buf := render.NewDepthBuffer(w, h)
	raster := render.NewRasterizer(cam, buf)
	raster.Ambient = parameter.ShadeAmbient

	s := &Simulation{
		Ship:    ship,
		System:  sys,
		cfg:     cfg,
		surface: opts.Surface,
		handoff: opts.Handoff,
		cues:    opts.Cues,
		logger:  opts.Logger,
		camera:  cam,
		buffer:  buf,
		raster:  raster,
		starfield: particle.NewStarfield(particle.StarfieldConfig{
			Count:          cfg.Starfield.Count,
			Radius:         cfg.Starfield.Radius,
			RenderDistance: cfg.Starfield.RenderDistance,
			Seed:           parameter.StarfieldSeed,
		}),
		dust: particle.NewDust(particle.DustConfig{
			Count:           cfg.Dust.Count,
			SpawnDistance:   cfg.Dust.SpawnDistance,
			MinDistance:     cfg.Dust.MinDistance,
			MaxDistance:     cfg.Dust.MaxDistance,
			VelocityBias:    cfg.Dust.VelocityBias,
			StreakThreshold: cfg.Dust.StreakThreshold,
			Seed:            parameter.DustSeed,
		}),
		monitor: hazard.NewMonitor(hazard.Config{
			HeatMaxDistance:        cfg.Heat.MaxDistance,
			HeatDamagePerSecond:    cfg.Heat.DamagePerSecond,
			StationCollisionDamage: cfg.Station.CollisionDamage,
		}, opts.Logger),
		death: sequence.NewDeath(sequence.DeathConfig{
			RedDuration:   cfg.Death.Red(),
			BlackDuration: cfg.Death.Black(),
		}, opts.Logger),
		docking: sequence.NewDocking(cfg.Dock.Black(), opts.Logger),
		warp:    sequence.NewWarpFade(cfg.Warp.Fade()),
		boost: sequence.NewBoostTint(sequence.BoostConfig{
			MinAlpha: cfg.Boost.MinAlpha,
			MaxAlpha: cfg.Boost.MaxAlpha,
			Ramp:     cfg.Boost.Ramp(),
			Fade:     cfg.Boost.Fade(),
		}),
		flash:       sequence.NewDamageFlash(cfg.Flash.Duration(), cfg.Flash.Alpha),
		controls:    NewControls(parameter.KeyHoldWindow),
		shipMesh:    mesh.Ship(render.ColorShip),
		stationMesh: mesh.Station(render.ColorStation),
	}
	return s
}

// Camera exposes the chase camera
func (s *Simulation) Camera() *render.Camera { return s.camera }

// Buffer exposes the depth buffer of the last frame
func (s *Simulation) Buffer() *render.DepthBuffer { return s.buffer }

// Positions returns body world positions of the last frame
func (s *Simulation) Positions() []vmath.Vec3 { return s.positions }

// LastHazard returns the most recent damage cause
func (s *Simulation) LastHazard() component.HazardEvent { return s.monitor.Last }

// Dying reports an active death sequence
func (s *Simulation) Dying() bool { return s.death.Active() }

// Docking reports an active docking sequence
func (s *Simulation) Docking() bool { return s.docking.Active() }

// Warping reports an active warp fade
func (s *Simulation) Warping() bool { return s.warp.Active() }

// Stopped reports whether Stop was called without a Resume
func (s *Simulation) Stopped() bool { return s.stopped }

// Speed returns the ship's speed in AU/s
func (s *Simulation) Speed() float64 { return vmath.V3Mag(s.Ship.Velocity) }

// busy reports a sequence that owns the ship
func (s *Simulation) busy() bool {
	return s.death.Active() || s.docking.Active() || s.warp.Active()
}

// Press records a held flight key; ignored while a sequence owns the ship
func (s *Simulation) Press(k Key, now time.Time) {
	if s.stopped || s.busy() {
		return
	}
	s.controls.Press(k, now)
}

// Resize follows a host surface size change
func (s *Simulation) Resize(width, height int) {
	s.camera.Resize(width, height)
	s.buffer.Resize(width, height)
}

// Respawn places a replacement ship after a tow or warp teleport
// Held keys and boost drop, and the dust field reseeds around the new position
func (s *Simulation) Respawn(ship component.Ship) {
	s.Ship = ship
	s.controls.Clear()
	s.boost.Reset()
	s.dust.Reset()
}

// Dock starts the docking sequence at an externally chosen station
// Freezes the ship and clears held keys; false while any sequence is active
func (s *Simulation) Dock(now time.Time, payload sequence.DockPayload) bool {
	if s.stopped || s.busy() {
		return false
	}
	if !s.docking.Start(now, payload) {
		return false
	}
	s.Ship.Velocity = vmath.Vec3{}
	s.controls.Clear()
	s.boost.Reset()
	s.cues.Play(audio.CueDock, now)
	return true
}

// TryDock docks at the nearest dockable station within range
func (s *Simulation) TryDock(now time.Time) bool {
	if s.System == nil {
		return false
	}
	idx, ok := hazard.FindDockable(s.Ship.Position, s.System, s.positions, s.cfg.Dock.RangeAU)
	if !ok {
		return false
	}
	return s.Dock(now, sequence.DockPayload{
		Location: s.System.Bodies[idx].Name,
		System:   s.System.Index,
	})
}

// StartWarp begins the warp fade toward target
func (s *Simulation) StartWarp(now time.Time, target int) bool {
	if s.stopped || s.busy() {
		return false
	}
	if !s.warp.Start(now, sequence.WarpPayload{TargetSystem: target}) {
		return false
	}
	s.logger.Info("warp started", zap.Int("target", target))
	return true
}

// Stop cancels every sequence and effect; Advance returns false until Resume
func (s *Simulation) Stop() {
	s.stopped = true
	s.death.Stop()
	s.docking.Stop()
	s.warp.Stop()
	s.flash.Stop()
	s.boost.Reset()
	s.controls.Clear()
	s.logger.Debug("simulation stopped")
}

// Resume re-arms a stopped simulation
func (s *Simulation) Resume() {
	s.stopped = false
}

// Advance runs one frame; false means the simulation is stopped
func (s *Simulation) Advance(f Frame) bool {
	if s.stopped {
		return false
	}
	now := f.effective()
	dt := min(max(f.Dt, 0), parameter.MaxFrameDelta).Seconds()

	if !s.busy() {
		s.fly(now, dt)
	}

	if s.System != nil {
		s.positions = physics.SystemPositions(s.positions, s.System.Bodies, f.Date)
	}

	if !s.death.Active() && !s.docking.Active() {
		s.checkHazards(now, dt)
	}

	s.render(now)

	if p, ok := s.docking.Poll(now); ok {
		s.handoff.Docked(p)
	}
	if p, ok := s.death.Poll(now); ok {
		s.handoff.Towed(p)
	}
	if p, ok := s.warp.Poll(now); ok {
		s.logger.Info("warp complete", zap.Int("target", p.TargetSystem))
		s.handoff.Warped(p)
	}
	return true
}

// fly applies held controls: rotation, boost, thrust, brake, then integrates
func (s *Simulation) fly(now time.Time, dt float64) {
	ship := &s.Ship
	c := s.controls

	turn := parameter.ShipTurnRate * dt
	roll := parameter.ShipRollRate * dt
	q := ship.Rotation
	// Local-frame rotations: right-multiply
	if a := c.Axis(KeyPitchUp, KeyPitchDown, now); a != 0 {
		q = vmath.QMul(q, vmath.QFromAxisAngle(vmath.AxisX, -a*turn))
	}
	if a := c.Axis(KeyYawRight, KeyYawLeft, now); a != 0 {
		q = vmath.QMul(q, vmath.QFromAxisAngle(vmath.AxisY, a*turn))
	}
	if a := c.Axis(KeyRollRight, KeyRollLeft, now); a != 0 {
		q = vmath.QMul(q, vmath.QFromAxisAngle(vmath.AxisZ, -a*roll))
	}
	ship.Rotation = vmath.QNormalize(q)

	accel := ship.Engine.Acceleration
	maxSpeed := ship.Engine.MaxSpeed
	if c.Held(KeyBoost, now) && ship.CanBoost() {
		if !s.boost.Boosting() {
			s.cues.Play(audio.CueBoost, now)
		}
		s.boost.Press(now)
		ship.Fuel = math.Max(ship.Fuel-ship.Engine.FuelPerBoostSecond*dt, 0)
		accel *= ship.Engine.BoostMultiplier
		maxSpeed *= ship.Engine.BoostMultiplier
	} else {
		s.boost.Release(now)
	}

	if c.Held(KeyThrust, now) {
		ship.Velocity = physics.ApplyAcceleration(ship.Velocity, vmath.QForward(ship.Rotation), accel, dt)
	}
	if c.Held(KeyBrake, now) {
		ship.Velocity = physics.ApplyBrake(ship.Velocity, accel, dt)
	}
	ship.Velocity = physics.ClampSpeed(ship.Velocity, maxSpeed)
	ship.Position = physics.Integrate(ship.Position, ship.Velocity, dt)
}

// checkHazards applies damage, triggers the flash and starts the death
// sequence on a fatal result
func (s *Simulation) checkHazards(now time.Time, dt float64) {
	res := s.monitor.Check(&s.Ship, s.System, s.positions, dt)

	if res.Damaged() {
		s.flash.Trigger(now)
		cue := audio.CueHeat
		if res.Event.Type != component.HazardStarHeat {
			cue = audio.CueImpact
		}
		s.cues.Play(cue, now)
	}
	if !res.Fatal {
		return
	}

	tow := sequence.TowPayload{
		SystemIndex: s.System.Index,
		Reason:      s.monitor.Last.Reason(),
	}
	if i := hazard.NearestStation(s.Ship.Position, s.System, s.positions); i >= 0 {
		tow.TowLocation = s.System.Bodies[i].Name
	}
	if s.death.Start(now, tow) {
		// A dead ship never jumps
		s.warp.Stop()
		s.Ship.Velocity = vmath.Vec3{}
		s.controls.Clear()
		s.boost.Reset()
		s.cues.Play(audio.CueKlaxon, now)
	}
}

// chase places the camera behind and above the ship, sharing its orientation
func (s *Simulation) chase() {
	ship := &s.Ship
	back := vmath.V3Scale(vmath.QForward(ship.Rotation), -parameter.CameraChaseDistance*ship.Size)
	up := vmath.V3Scale(vmath.QUp(ship.Rotation), parameter.CameraChaseHeight*ship.Size)
	s.camera.Position = vmath.V3Add(ship.Position, vmath.V3Add(back, up))
	s.camera.Rotation = ship.Rotation
}

// render draws the scene back to front by depth test and flushes with overlays
func (s *Simulation) render(now time.Time) {
	s.buffer.Reset()
	s.chase()

	s.starfield.Render(s.raster, render.ColorStarfield, s.boost.Elapsed(now))

	if s.System != nil {
		for i := range s.System.Bodies {
			if i >= len(s.positions) {
				break
			}
			b := &s.System.Bodies[i]
			if b.Kind == component.KindStation {
				s.raster.DrawMesh(s.stationMesh, s.positions[i], vmath.QIdentity, render.MeshOptions{
					Mode:  render.FillRays,
					Cull:  true,
					Scale: 2 * b.RadiusAU,
				})
				continue
			}
			s.raster.DrawBody(s.positions[i], b.RadiusAU, render.BodyGlyph(b.Kind), render.BodyColor(b))
		}
	}

	s.dust.Update(s.camera.Position, s.Ship.Velocity, s.Ship.Size)
	s.dust.Render(s.raster, render.ColorDust, s.Ship.Velocity)

	s.raster.DrawMesh(s.shipMesh, s.Ship.Position, s.Ship.Rotation, render.MeshOptions{
		Mode:  render.FillTriangles,
		Cull:  true,
		Scale: s.Ship.Size,
	})

	s.buffer.Flush(s.surface, s.overlays(now)...)
}

// overlays lists the full-screen tints in application order
func (s *Simulation) overlays(now time.Time) []render.Overlay {
	black := core.RGB{}
	red, fade := s.death.Progress(now)
	list := []render.Overlay{
		{Color: render.ColorBoost, Alpha: s.boost.Alpha(now)},
		{Color: render.ColorDamage, Alpha: s.flash.Alpha(now)},
		{Color: render.ColorDeathRed, Alpha: red},
		{Color: black, Alpha: fade},
		{Color: black, Alpha: s.docking.Alpha(now)},
		{Color: black, Alpha: s.warp.Alpha(now)},
	}
	out := list[:0]
	for _, o := range list {
		if o.Alpha > 0 {
			out = append(out, o)
		}
	}
	return out
}
