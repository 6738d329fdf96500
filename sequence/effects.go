package sequence

import (
	"time"
)

// BoostConfig shapes the boost tint
type BoostConfig struct {
	MinAlpha float64
	MaxAlpha float64
	Ramp     time.Duration
	Fade     time.Duration
}

// BoostTint ramps up while boost is held and fades from the release alpha
type BoostTint struct {
	cfg BoostConfig

	boosting     bool
	start        time.Time
	fading       bool
	releasedAt   time.Time
	releaseAlpha float64
}

func NewBoostTint(cfg BoostConfig) *BoostTint {
	return &BoostTint{cfg: cfg}
}

// Press starts the ramp; holding is idempotent
func (b *BoostTint) Press(now time.Time) {
	if b.boosting {
		return
	}
	b.boosting = true
	b.fading = false
	b.start = now
}

// Release begins the fade from the current alpha
func (b *BoostTint) Release(now time.Time) {
	if !b.boosting {
		return
	}
	b.releaseAlpha = b.Alpha(now)
	b.boosting = false
	b.fading = true
	b.releasedAt = now
}

// Boosting reports whether boost is held
func (b *BoostTint) Boosting() bool {
	return b.boosting
}

// Elapsed returns seconds since boost start, zero when not boosting
func (b *BoostTint) Elapsed(now time.Time) float64 {
	if !b.boosting {
		return 0
	}
	return max(now.Sub(b.start), 0).Seconds()
}

// Alpha returns the tint alpha at now
func (b *BoostTint) Alpha(now time.Time) float64 {
	switch {
	case b.boosting:
		f := ramp(max(now.Sub(b.start), 0), b.cfg.Ramp)
		return b.cfg.MinAlpha + (b.cfg.MaxAlpha-b.cfg.MinAlpha)*f
	case b.fading:
		f := ramp(max(now.Sub(b.releasedAt), 0), b.cfg.Fade)
		return b.releaseAlpha * (1 - f)
	}
	return 0
}

// Reset drops any ramp or fade
func (b *BoostTint) Reset() {
	*b = BoostTint{cfg: b.cfg}
}

// DamageFlash is a decaying red flash restarted on every hit
type DamageFlash struct {
	timed
	duration time.Duration
	alpha    float64
}

func NewDamageFlash(duration time.Duration, alpha float64) *DamageFlash {
	return &DamageFlash{duration: duration, alpha: alpha}
}

// Trigger restarts the flash at now
func (f *DamageFlash) Trigger(now time.Time) {
	f.stop()
	f.begin(now)
}

// Alpha returns alpha·(1-elapsed/duration), zero once expired
func (f *DamageFlash) Alpha(now time.Time) float64 {
	if !f.active || f.duration <= 0 {
		return 0
	}
	e := f.elapsed(now)
	if e >= f.duration {
		return 0
	}
	return f.alpha * (1 - ramp(e, f.duration))
}

// Stop clears the flash
func (f *DamageFlash) Stop() {
	f.stop()
}

// WarpPayload names the destination system of a warp
type WarpPayload struct {
	TargetSystem int
}

// WarpFade fades to black before handing off a system transition
type WarpFade struct {
	timed
	fade    time.Duration
	payload WarpPayload
}

func NewWarpFade(fade time.Duration) *WarpFade {
	return &WarpFade{fade: fade}
}

// Start activates once; false while already warping
func (w *WarpFade) Start(now time.Time, payload WarpPayload) bool {
	if !w.begin(now) {
		return false
	}
	w.payload = payload
	return true
}

// Alpha returns the black overlay alpha at now
func (w *WarpFade) Alpha(now time.Time) float64 {
	if !w.active {
		return 0
	}
	return ramp(w.elapsed(now), w.fade)
}

// Poll hands off the payload once the fade completes and resets
func (w *WarpFade) Poll(now time.Time) (WarpPayload, bool) {
	if !w.active || w.elapsed(now) < w.fade {
		return WarpPayload{}, false
	}
	p := w.payload
	w.Stop()
	return p, true
}

// Stop cancels without hand-off
func (w *WarpFade) Stop() {
	w.stop()
	w.payload = WarpPayload{}
}
