package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 50 * time.Millisecond

	// AudioVolume is the linear master gain, 0 silences
	AudioVolume = 0.5

	// MinSoundGap between repeats of the same cue
	MinSoundGap = 250 * time.Millisecond
)

// Cue Shapes
const (
	HeatBuzzDuration = 120 * time.Millisecond
	HeatBuzzFreq     = 110.0

	ImpactDuration = 450 * time.Millisecond
	ImpactRelease  = 400 * time.Millisecond

	DockChimeNoteDuration = 180 * time.Millisecond
	DockChimeFreqLow      = 660.0
	DockChimeFreqHigh     = 990.0

	BoostWhooshDuration = 300 * time.Millisecond
	BoostWhooshAttack   = 150 * time.Millisecond

	KlaxonDuration = 900 * time.Millisecond
	KlaxonFreqLow  = 440.0
	KlaxonFreqHigh = 587.0
	KlaxonCycle    = 150 * time.Millisecond
)
