package sequence

import (
	"time"

	"go.uber.org/zap"
)

// DockPayload identifies the station docked at
type DockPayload struct {
	Location string
	System   int
}

// Docking fades to black after a proximity trigger, then hands off
type Docking struct {
	timed
	fade    time.Duration
	payload DockPayload
	logger  *zap.Logger
}

// NewDocking creates an inactive docking sequence with the given fade
func NewDocking(fade time.Duration, logger *zap.Logger) *Docking {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Docking{fade: fade, logger: logger}
}

// Start activates once; the caller freezes velocity and clears held input
// when this returns true
func (d *Docking) Start(now time.Time, payload DockPayload) bool {
	if !d.begin(now) {
		return false
	}
	d.payload = payload
	d.logger.Info("docking started", zap.String("station", payload.Location))
	return true
}

// Alpha returns the black overlay alpha at now
func (d *Docking) Alpha(now time.Time) float64 {
	if !d.active {
		return 0
	}
	return ramp(d.elapsed(now), d.fade)
}

// Poll returns the dock payload once the fade completes and resets
func (d *Docking) Poll(now time.Time) (DockPayload, bool) {
	if !d.active || d.elapsed(now) < d.fade {
		return DockPayload{}, false
	}
	p := d.payload
	d.Stop()
	d.logger.Info("docked", zap.String("station", p.Location))
	return p, true
}

// Stop cancels without hand-off
func (d *Docking) Stop() {
	d.stop()
	d.payload = DockPayload{}
}
