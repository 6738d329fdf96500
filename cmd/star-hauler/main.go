// Command star-hauler flies a ship through a star system in the terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/star-hauler/audio"
	"github.com/lixenwraith/star-hauler/component"
	"github.com/lixenwraith/star-hauler/config"
	"github.com/lixenwraith/star-hauler/content"
	"github.com/lixenwraith/star-hauler/engine"
	"github.com/lixenwraith/star-hauler/logging"
	"github.com/lixenwraith/star-hauler/parameter"
	"github.com/lixenwraith/star-hauler/render"
	"github.com/lixenwraith/star-hauler/vmath"
)

var (
	configFlag  = flag.String("config", "", "config file (yaml, toml or json)")
	debugFlag   = flag.Bool("debug", false, "write debug logs to "+logging.Options{}.Path())
	systemsFlag = flag.String("systems", "systems", "directory of extra star-system fixtures")
	muteFlag    = flag.Bool("mute", false, "disable audio")
)

// errQuit ends the frame loop on user request
var errQuit = errors.New("quit")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "star-hauler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{Debug: *debugFlag})
	if err != nil {
		return err
	}
	defer closeLog()

	systems, err := loadSystems(cfg, *systemsFlag, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	// Restore the terminal before the stack trace lands on it
	defer func() {
		if r := recover(); r != nil {
			fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSTAR-HAULER CRASHED: %v\x1b[0m\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	var player *audio.Player
	if cfg.Audio && !*muteFlag {
		player = audio.NewPlayer(parameter.AudioVolume, logger)
		if err := player.Start(); err != nil {
			logger.Warn("audio disabled", zap.Error(err))
			player = nil
		}
		defer player.Close()
	}

	surface := render.NewTcellSurface(screen)
	h := newHost(systems, logger)
	h.sim = engine.NewSimulation(systems[0], engine.NewShip(vmath.Vec3{Z: -1}, vmath.QIdentity), engine.Options{
		Config:  cfg,
		Surface: surface,
		Handoff: h,
		Cues:    player,
		Logger:  logger,
	})
	clock := engine.NewClock(nil)

	h.sim.Ship.Position = h.spawnPoint("")

	events := make(chan tcell.Event, 64)
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// Unblocks the poller
		defer fini()

		ticker := time.NewTicker(parameter.FrameUpdateInterval)
		defer ticker.Stop()

		var prev time.Time
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				if err := handleEvent(ev, h, clock, screen); err != nil {
					return err
				}
			case <-ticker.C:
				f := clock.Frame(prev, parameter.GameStartDate)
				prev = *f.Effective
				h.date = f.Date
				h.sim.Advance(f)
				surface.DrawText(0, 0, h.status(clock.IsPaused()), hudColor)
				screen.Show()
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	logger.Info("exit")
	return nil
}

// handleEvent routes one terminal event; errQuit ends the session
func handleEvent(ev tcell.Event, h *host, clock *engine.Clock, screen tcell.Screen) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := screen.Size()
		h.sim.Resize(w, ht)
		screen.Sync()
	case *tcell.EventKey:
		key, held, act := mapKey(ev)
		now := clock.Now()
		if held && !clock.IsPaused() {
			h.sim.Press(key, now)
		}
		switch act {
		case actionQuit:
			h.sim.Stop()
			return errQuit
		case actionPause:
			if clock.IsPaused() {
				clock.Resume()
			} else {
				clock.Pause()
			}
		case actionDock:
			if !h.sim.TryDock(now) {
				h.message = "No station in range"
			}
		case actionWarp:
			if len(h.systems) > 1 && h.sim.StartWarp(now, h.nextSystem()) {
				h.message = "Warping"
			}
		}
	}
	return nil
}

// loadSystems returns the built-in system followed by the configured fixture
// and every fixture found in dir
func loadSystems(cfg *config.Config, dir string, logger *zap.Logger) ([]*component.System, error) {
	sys, err := content.LoadBuiltin()
	if err != nil {
		return nil, err
	}
	systems := []*component.System{sys}

	if cfg.SystemFile != "" {
		extra, err := content.LoadFile(cfg.SystemFile)
		if err != nil {
			return nil, err
		}
		systems = append(systems, extra)
	}

	m := content.NewManager(dir, logger)
	if err := m.Discover(); err != nil {
		return nil, err
	}
	found, err := m.LoadAll()
	if err != nil {
		return nil, err
	}
	systems = append(systems, found...)
	logger.Info("systems loaded", zap.Int("count", len(systems)))
	return systems, nil
}
