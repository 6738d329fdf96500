// Package sequence implements the timed state machines gating hand-offs to
// the host (docking, death, warp) and the cosmetic effect timers
// Every value derives from a stored start timestamp and the effective frame
// time passed in, so a host freezing time also freezes the sequences
package sequence

import (
	"time"
)

// timed is the shared INACTIVE/ACTIVE state with a frozen start timestamp
type timed struct {
	active bool
	start  time.Time
}

// begin activates once; re-entry while active is ignored
func (t *timed) begin(now time.Time) bool {
	if t.active {
		return false
	}
	t.active = true
	t.start = now
	return true
}

// elapsed never goes negative when time is rewound by the host
func (t *timed) elapsed(now time.Time) time.Duration {
	if !t.active {
		return 0
	}
	return max(now.Sub(t.start), 0)
}

func (t *timed) stop() {
	t.active = false
	t.start = time.Time{}
}

// Active reports whether the sequence is running
func (t *timed) Active() bool {
	return t.active
}

// Started returns the frozen start timestamp, zero when inactive
func (t *timed) Started() time.Time {
	return t.start
}

// ramp maps elapsed over d to [0,1]; a zero duration completes immediately
func ramp(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(d)
	return min(max(f, 0), 1)
}
