package engine

import (
	"time"

	"github.com/lixenwraith/star-hauler/parameter"
)

// Key is a flight control
type Key uint8

const (
	KeyThrust Key = iota
	KeyBrake
	KeyBoost
	KeyPitchUp
	KeyPitchDown
	KeyYawLeft
	KeyYawRight
	KeyRollLeft
	KeyRollRight
	keyCount
)

// Controls tracks held flight keys from press and auto-repeat events
// A key stays held for the hold window after its latest event
type Controls struct {
	last [keyCount]time.Time
	hold time.Duration
}

// NewControls creates an empty key state; a non-positive hold uses the default
func NewControls(hold time.Duration) *Controls {
	if hold <= 0 {
		hold = parameter.KeyHoldWindow
	}
	return &Controls{hold: hold}
}

// Press records a press or repeat of k at now
func (c *Controls) Press(k Key, now time.Time) {
	if k < keyCount {
		c.last[k] = now
	}
}

// Release drops k immediately
func (c *Controls) Release(k Key) {
	if k < keyCount {
		c.last[k] = time.Time{}
	}
}

// Held reports whether k is held at now
func (c *Controls) Held(k Key, now time.Time) bool {
	if k >= keyCount || c.last[k].IsZero() {
		return false
	}
	d := now.Sub(c.last[k])
	return d >= 0 && d < c.hold
}

// Axis returns +1, -1 or 0 for a pair of opposing keys
func (c *Controls) Axis(pos, neg Key, now time.Time) float64 {
	v := 0.0
	if c.Held(pos, now) {
		v++
	}
	if c.Held(neg, now) {
		v--
	}
	return v
}

// Clear releases every key
func (c *Controls) Clear() {
	c.last = [keyCount]time.Time{}
}
