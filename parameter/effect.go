package parameter

import "time"

// Boost Tint
const (
	BoostMinAlpha     = 0.05
	BoostMaxAlpha     = 0.25
	BoostRampDuration = 1500 * time.Millisecond
	BoostFadeDuration = 800 * time.Millisecond
)

// Damage Flash
const (
	FlashDuration = 400 * time.Millisecond
	FlashAlpha    = 0.6
)

// Timed Sequences
const (
	// DeathRedDuration fades the frame to red, then DeathBlackDuration to black
	DeathRedDuration   = 1500 * time.Millisecond
	DeathBlackDuration = 1500 * time.Millisecond

	// DockBlackDuration is the docking fade
	DockBlackDuration = 1200 * time.Millisecond

	// DockRangeAU is the maximum surface distance at which docking may start
	DockRangeAU = 1e-6

	// WarpFadeDuration is the fade before a system transition hand-off
	WarpFadeDuration = time.Second
)
