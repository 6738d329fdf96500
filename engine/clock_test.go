package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockPauseFreezes(t *testing.T) {
	mock := NewMockTimeProvider(t0)
	c := NewClock(mock)

	mock.Advance(2 * time.Second)
	assert.Equal(t, t0.Add(2*time.Second), c.Now())

	c.Pause()
	c.Pause()
	mock.Advance(5 * time.Second)
	assert.True(t, c.IsPaused())
	assert.Equal(t, t0.Add(2*time.Second), c.Now())
	assert.Equal(t, 2*time.Second, c.Elapsed())

	c.Resume()
	mock.Advance(time.Second)
	assert.False(t, c.IsPaused())
	assert.Equal(t, t0.Add(3*time.Second), c.Now())
	assert.Equal(t, 3*time.Second, c.Elapsed())
	assert.Equal(t, t0.Add(8*time.Second), c.RealNow())
}

func TestClockFrame(t *testing.T) {
	mock := NewMockTimeProvider(t0)
	c := NewClock(mock)

	f := c.Frame(time.Time{}, date)
	assert.Zero(t, f.Dt)
	assert.Equal(t, date, f.Date)

	prev := *f.Effective
	mock.Advance(10 * time.Second)
	f = c.Frame(prev, date)
	assert.Equal(t, 10*time.Second, f.Dt)
	// 10 s of play is one game day
	assert.Equal(t, date.Add(24*time.Hour), f.Date)
	assert.Equal(t, mock.Now(), f.Now)

	c.Pause()
	mock.Advance(time.Hour)
	frozen := c.Frame(*f.Effective, date)
	assert.Zero(t, frozen.Dt)
	assert.Equal(t, *f.Effective, *frozen.Effective)
	assert.NotEqual(t, frozen.Now, *frozen.Effective)
}

func TestControlsHoldWindow(t *testing.T) {
	c := NewControls(250 * time.Millisecond)

	assert.False(t, c.Held(KeyThrust, t0))
	c.Press(KeyThrust, t0)
	assert.True(t, c.Held(KeyThrust, t0.Add(100*time.Millisecond)))
	assert.False(t, c.Held(KeyThrust, t0.Add(250*time.Millisecond)))

	c.Press(KeyYawLeft, t0)
	assert.Equal(t, -1.0, c.Axis(KeyYawRight, KeyYawLeft, t0))
	c.Press(KeyYawRight, t0)
	assert.Equal(t, 0.0, c.Axis(KeyYawRight, KeyYawLeft, t0))

	c.Release(KeyYawLeft)
	assert.Equal(t, 1.0, c.Axis(KeyYawRight, KeyYawLeft, t0))

	c.Clear()
	assert.False(t, c.Held(KeyYawRight, t0))
	c.Press(keyCount, t0)
}
