package sequence

import (
	"time"

	"go.uber.org/zap"
)

// TowPayload is handed to the rescue flow when the death sequence completes
type TowPayload struct {
	TowLocation string
	SystemIndex int
	Reason      string
}

// DeathConfig holds the two fade durations
type DeathConfig struct {
	RedDuration   time.Duration
	BlackDuration time.Duration
}

// Death fades to red, then to black, then hands off a tow
// INACTIVE -> ACTIVE -> COMPLETE, resetting to INACTIVE after Poll reports
// completion
type Death struct {
	timed
	cfg     DeathConfig
	payload TowPayload
	logger  *zap.Logger
}

// NewDeath creates an inactive death sequence
func NewDeath(cfg DeathConfig, logger *zap.Logger) *Death {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Death{cfg: cfg, logger: logger}
}

// Start activates the sequence; no-op returning false while already active
// The caller zeroes the ship's velocity when this returns true
func (d *Death) Start(now time.Time, payload TowPayload) bool {
	if !d.begin(now) {
		return false
	}
	d.payload = payload
	d.logger.Info("death sequence started",
		zap.String("reason", payload.Reason),
		zap.String("tow", payload.TowLocation))
	return true
}

// Progress returns the red and black overlay alphas at now
func (d *Death) Progress(now time.Time) (red, black float64) {
	if !d.active {
		return 0, 0
	}
	e := d.elapsed(now)
	red = ramp(e, d.cfg.RedDuration)
	black = ramp(e-d.cfg.RedDuration, d.cfg.BlackDuration)
	return red, black
}

// Complete reports whether both fades have elapsed
func (d *Death) Complete(now time.Time) bool {
	return d.active && d.elapsed(now) >= d.cfg.RedDuration+d.cfg.BlackDuration
}

// Poll returns the tow payload exactly once on completion and resets
func (d *Death) Poll(now time.Time) (TowPayload, bool) {
	if !d.Complete(now) {
		return TowPayload{}, false
	}
	p := d.payload
	d.stop()
	d.payload = TowPayload{}
	d.logger.Info("death sequence complete", zap.String("tow", p.TowLocation))
	return p, true
}

// Stop cancels without hand-off
func (d *Death) Stop() {
	d.stop()
	d.payload = TowPayload{}
}
