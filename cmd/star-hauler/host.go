package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/core"
	"github.com/lixenwraith/star-hauler/engine"
	"github.com/lixenwraith/star-hauler/parameter"
	"github.com/lixenwraith/star-hauler/physics"
	"github.com/lixenwraith/star-hauler/sequence"
	"github.com/lixenwraith/star-hauler/vmath"
)

// action is a non-flight command from the keyboard
type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionDock
	actionWarp
)

// mapKey translates a key event into a held flight key or a command
func mapKey(ev *tcell.EventKey) (engine.Key, bool, action) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, false, actionQuit
	case tcell.KeyUp:
		return engine.KeyPitchUp, true, actionNone
	case tcell.KeyDown:
		return engine.KeyPitchDown, true, actionNone
	case tcell.KeyLeft:
		return engine.KeyYawLeft, true, actionNone
	case tcell.KeyRight:
		return engine.KeyYawRight, true, actionNone
	case tcell.KeyRune:
	default:
		return 0, false, actionNone
	}

	switch ev.Rune() {
	case 'w':
		return engine.KeyThrust, true, actionNone
	case 's':
		return engine.KeyBrake, true, actionNone
	case ' ':
		return engine.KeyBoost, true, actionNone
	case 'q':
		return engine.KeyRollLeft, true, actionNone
	case 'e':
		return engine.KeyRollRight, true, actionNone
	case 'p':
		return 0, false, actionPause
	case 'd':
		return 0, false, actionDock
	case 'j':
		return 0, false, actionWarp
	}
	return 0, false, actionNone
}

// host is the stand-in for the menus and galaxy flows the flight core hands
// off to: it reports docking, respawns towed ships and swaps warped systems
type host struct {
	sim     *engine.Simulation
	systems []*component.System
	current int
	date    time.Time
	message string
	logger  *zap.Logger
}

func newHost(systems []*component.System, logger *zap.Logger) *host {
	return &host{systems: systems, date: parameter.GameStartDate, logger: logger}
}

func (h *host) Docked(p sequence.DockPayload) {
	h.message = fmt.Sprintf("Docked at %s", p.Location)
	h.logger.Info("docked", zap.String("station", p.Location), zap.Int("system", p.System))
}

func (h *host) Towed(p sequence.TowPayload) {
	h.message = fmt.Sprintf("%s. Towed to %s", p.Reason, p.TowLocation)
	h.logger.Info("towed", zap.String("reason", p.Reason), zap.String("to", p.TowLocation))
	h.sim.Respawn(engine.NewShip(h.spawnPoint(p.TowLocation), vmath.QIdentity))
}

func (h *host) Warped(p sequence.WarpPayload) {
	if p.TargetSystem < 0 || p.TargetSystem >= len(h.systems) {
		return
	}
	h.current = p.TargetSystem
	h.sim.System = h.systems[h.current]
	h.message = fmt.Sprintf("Arrived in %s", h.sim.System.Name)
	h.logger.Info("warped", zap.String("system", h.sim.System.Name))

	ship := h.sim.Ship
	ship.Position = h.spawnPoint("")
	ship.Velocity = vmath.Vec3{}
	h.sim.Respawn(ship)
}

// nextSystem is the warp target after the current system
func (h *host) nextSystem() int {
	return (h.current + 1) % len(h.systems)
}

// spawnPoint places a ship just off the named body, or off the first station
// then the first planet; a system with neither spawns 1 AU behind the barycentre
func (h *host) spawnPoint(name string) vmath.Vec3 {
	sys := h.sim.System
	idx := -1
	if name != "" {
		for i := range sys.Bodies {
			if sys.Bodies[i].Name == name {
				idx = i
				break
			}
		}
	}
	for _, kind := range []component.BodyKind{component.KindStation, component.KindPlanet} {
		for i := range sys.Bodies {
			if idx >= 0 {
				break
			}
			if sys.Bodies[i].Kind == kind {
				idx = i
			}
		}
	}
	if idx < 0 {
		return vmath.Vec3{Z: -1}
	}
	pos := physics.BodyWorldPosition(sys.Bodies, idx, h.date)
	// Back off along -Z so the body sits ahead of a fresh ship, within dock range
	back := sys.Bodies[idx].RadiusAU*2 + parameter.DockRangeAU/4
	return vmath.V3Add(pos, vmath.Vec3{Z: -back})
}

// status renders the one-line HUD
func (h *host) status(paused bool) string {
	s := &h.sim.Ship
	line := fmt.Sprintf(" %s | hull %d shields %d fuel %.1f | %.2e AU/s | %s",
		h.sim.System.Name, s.Hull, s.Shields, s.Fuel, h.sim.Speed(), h.date.Format("2006-01-02"))
	if paused {
		line += " | PAUSED"
	}
	if h.message != "" {
		line += " | " + h.message
	}
	return line
}

var hudColor = core.RGBWhite
