// Package audio synthesizes flight cues with beep and mixes them for the
// speaker
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/star-hauler/parameter"
)

// Player mixes one-shot cues; a nil *Player is a valid silent player
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	last    [cueCount]time.Time
	gap     time.Duration
	started bool
	logger  *zap.Logger
}

// NewPlayer creates a player at the default sample rate
func NewPlayer(volume float64, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
		gap:    parameter.MinSoundGap,
		logger: logger,
	}
}

// Start initializes the speaker and begins streaming the mixer
func (p *Player) Start() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	p.started = true
	return nil
}

// Close silences and releases the speaker
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Play queues cue unless the same cue played within the minimum gap of now
// Returns whether the cue was queued
func (p *Player) Play(c Cue, now time.Time) bool {
	if p == nil || c < 0 || c >= cueCount {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if last := p.last[c]; !last.IsZero() && now.Sub(last) < p.gap && !now.Before(last) {
		return false
	}
	p.last[c] = now

	s := NewCue(c, p.rate, p.volume)
	if p.started {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	} else {
		p.mixer.Add(s)
	}
	p.logger.Debug("cue", zap.Stringer("cue", c))
	return true
}

// Pending returns the number of cues still mixing
func (p *Player) Pending() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return p.mixer.Len()
}
