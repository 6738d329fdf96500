package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/star-hauler/parameter"
)

// TimeProvider supplies wall time to the clock
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the monotonic system clock
type SystemTimeProvider struct{}

func (SystemTimeProvider) Now() time.Time { return time.Now() }

// Clock provides pausable effective time with pause duration tracking
// While paused, Now stays frozen at the pause point so every sequence and
// effect derived from it holds still
type Clock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewClock starts a clock at the provider's current time; nil uses the system
// clock
func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = SystemTimeProvider{}
	}
	return &Clock{provider: provider, start: provider.Now()}
}

// RealNow returns wall time, unaffected by pause
func (c *Clock) RealNow() time.Time {
	return c.provider.Now()
}

// Now returns effective time
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.start.Add(c.elapsedLocked())
}

// Elapsed returns effective time since the clock started
func (c *Clock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsedLocked()
}

func (c *Clock) elapsedLocked() time.Duration {
	ref := c.provider.Now()
	if c.paused {
		ref = c.pauseStart
	}
	return ref.Sub(c.start) - c.totalPaused
}

// Pause freezes effective time; repeated calls are no-ops
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues effective time from where it froze
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.totalPaused += c.provider.Now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// Frame builds the next frame input: wall time, the effective override, the
// game date advanced from dateBase at GameDateScale, and the effective step
// since prev
// A zero prev yields a zero step
func (c *Clock) Frame(prev, dateBase time.Time) Frame {
	c.mu.RLock()
	elapsed := c.elapsedLocked()
	c.mu.RUnlock()

	eff := c.start.Add(elapsed)
	var dt time.Duration
	if !prev.IsZero() {
		dt = eff.Sub(prev)
	}
	return Frame{
		Now:       c.RealNow(),
		Effective: &eff,
		Date:      dateBase.Add(time.Duration(float64(elapsed) * parameter.GameDateScale)),
		Dt:        dt,
	}
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
