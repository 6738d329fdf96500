package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/star-hauler/parameter"
	"github.com/lixenwraith/star-hauler/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite oscillator; noise is seeded for repeatable
// cues
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear gain onto beep's log2 volume
// math.Log2(0) is -Inf, so zero becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// heatBuzz is a low saw buzz repeated while heat damage lands
func heatBuzz(rate beep.SampleRate) beep.Streamer {
	d := parameter.HeatBuzzDuration
	osc := NewOscillator(parameter.HeatBuzzFreq, d, WaveSaw, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// impact is a noise burst over a falling rumble
func impact(rate beep.SampleRate) beep.Streamer {
	d := parameter.ImpactDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, parameter.ImpactRelease, rate)
	rumble := NewEnvelope(NewOscillator(55, d, WaveSine, rate), d, 2*time.Millisecond, parameter.ImpactRelease, rate)
	return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.8))
}

// dockChime is a rising two-note chime
func dockChime(rate beep.SampleRate) beep.Streamer {
	d := parameter.DockChimeNoteDuration
	low := NewEnvelope(NewOscillator(parameter.DockChimeFreqLow, d, WaveSine, rate), d, 5*time.Millisecond, d*2/3, rate)
	high := NewEnvelope(NewOscillator(parameter.DockChimeFreqHigh, d, WaveSine, rate), d, 5*time.Millisecond, d*2/3, rate)
	return beep.Seq(low, high)
}

// boostWhoosh is swelling noise
func boostWhoosh(rate beep.SampleRate) beep.Streamer {
	d := parameter.BoostWhooshDuration
	noise := NewOscillator(0, d, WaveNoise, rate)
	return NewEnvelope(noise, d, parameter.BoostWhooshAttack, d-parameter.BoostWhooshAttack, rate)
}

// klaxon alternates two square tones for the death sequence
func klaxon(rate beep.SampleRate) beep.Streamer {
	cycle := parameter.KlaxonCycle
	steps := int(parameter.KlaxonDuration / cycle)
	tones := make([]beep.Streamer, 0, steps)
	for i := 0; i < steps; i++ {
		freq := parameter.KlaxonFreqLow
		if i%2 == 1 {
			freq = parameter.KlaxonFreqHigh
		}
		tones = append(tones, NewEnvelope(NewOscillator(freq, cycle, WaveSquare, rate), cycle, 5*time.Millisecond, 10*time.Millisecond, rate))
	}
	return beep.Seq(tones...)
}

// NewCue builds a fresh one-shot streamer for cue at linear gain vol
func NewCue(c Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueHeat:
		s = heatBuzz(rate)
	case CueImpact:
		s = impact(rate)
	case CueDock:
		s = dockChime(rate)
	case CueBoost:
		s = boostWhoosh(rate)
	case CueKlaxon:
		s = klaxon(rate)
	default:
		return nil
	}
	return newVolume(s, cueVolumes[c]*vol)
}
