package sequence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2310, 5, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return t0.Add(d) }

func TestDeathLifecycle(t *testing.T) {
	d := NewDeath(DeathConfig{RedDuration: 2 * time.Second, BlackDuration: time.Second}, nil)

	red, black := d.Progress(t0)
	assert.Zero(t, red)
	assert.Zero(t, black)

	payload := TowPayload{TowLocation: "Hub", SystemIndex: 3, Reason: "Flew into Sol"}
	require.True(t, d.Start(t0, payload))
	assert.True(t, d.Active())

	tests := []struct {
		name      string
		at        time.Duration
		red       float64
		black     float64
		completed bool
	}{
		{"start", 0, 0, 0, false},
		{"half red", time.Second, 0.5, 0, false},
		{"red done", 2 * time.Second, 1, 0, false},
		{"half black", 2500 * time.Millisecond, 1, 0.5, false},
		{"rewound clock", -time.Second, 0, 0, false},
		{"just short of total", 3*time.Second - time.Nanosecond, 1, 1 - 1e-9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			red, black := d.Progress(at(tt.at))
			assert.InDelta(t, tt.red, red, 1e-12)
			assert.InDelta(t, tt.black, black, 1e-12)
			_, ok := d.Poll(at(tt.at))
			assert.Equal(t, tt.completed, ok)
		})
	}

	// Completion is inclusive of the total duration
	assert.True(t, d.Complete(at(3*time.Second)))
	got, ok := d.Poll(at(3 * time.Second))
	require.True(t, ok)
	assert.Equal(t, payload, got)
	assert.False(t, d.Active(), "resets to inactive after completion")

	_, ok = d.Poll(at(10 * time.Second))
	assert.False(t, ok, "hand-off happens once")
}

func TestDeathStartIdempotent(t *testing.T) {
	d := NewDeath(DeathConfig{RedDuration: time.Second, BlackDuration: time.Second}, nil)
	require.True(t, d.Start(t0, TowPayload{TowLocation: "first"}))
	assert.False(t, d.Start(at(time.Second), TowPayload{TowLocation: "second"}))
	assert.Equal(t, t0, d.Started())

	got, ok := d.Poll(at(2 * time.Second))
	require.True(t, ok)
	assert.Equal(t, "first", got.TowLocation)
}

func TestDeathStopNeverHandsOff(t *testing.T) {
	d := NewDeath(DeathConfig{RedDuration: time.Second, BlackDuration: time.Second}, nil)
	d.Start(t0, TowPayload{TowLocation: "Hub"})
	d.Stop()

	_, ok := d.Poll(at(time.Hour))
	assert.False(t, ok)
	red, black := d.Progress(at(time.Hour))
	assert.Zero(t, red)
	assert.Zero(t, black)

	// Restartable after stop
	assert.True(t, d.Start(at(time.Hour), TowPayload{}))
}

func TestDockingIdempotent(t *testing.T) {
	d := NewDocking(time.Second, nil)
	require.True(t, d.Start(t0, DockPayload{Location: "Ring", System: 1}))
	for i := 1; i < 5; i++ {
		assert.False(t, d.Start(at(time.Duration(i)*100*time.Millisecond), DockPayload{Location: "Other"}))
	}
	assert.Equal(t, t0, d.Started())
	assert.InDelta(t, 0.5, d.Alpha(at(500*time.Millisecond)), 1e-12)

	_, ok := d.Poll(at(999 * time.Millisecond))
	assert.False(t, ok)
	got, ok := d.Poll(at(time.Second))
	require.True(t, ok)
	assert.Equal(t, DockPayload{Location: "Ring", System: 1}, got)
	assert.False(t, d.Active())
}

func TestDockingStop(t *testing.T) {
	d := NewDocking(time.Second, nil)
	d.Start(t0, DockPayload{Location: "Ring"})
	d.Stop()
	_, ok := d.Poll(at(time.Minute))
	assert.False(t, ok)
	assert.Zero(t, d.Alpha(at(time.Minute)))
}

func TestFadePauseConsistent(t *testing.T) {
	d := NewDocking(2*time.Second, nil)
	d.Start(t0, DockPayload{})

	// Host frozen at an effective timestamp: repeated frames see the same alpha
	frozen := at(700 * time.Millisecond)
	first := d.Alpha(frozen)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, d.Alpha(frozen))
		_, ok := d.Poll(frozen)
		assert.False(t, ok)
	}

	// Resumed time continues from the frozen value, not from wall clock
	assert.InDelta(t, 0.4, d.Alpha(at(800*time.Millisecond)), 1e-12)
}

func TestZeroDurationCompletesImmediately(t *testing.T) {
	d := NewDeath(DeathConfig{}, nil)
	d.Start(t0, TowPayload{})
	red, black := d.Progress(t0)
	assert.Equal(t, 1.0, red)
	assert.Equal(t, 1.0, black)
	_, ok := d.Poll(t0)
	assert.True(t, ok)
}

func TestBoostTint(t *testing.T) {
	b := NewBoostTint(BoostConfig{MinAlpha: 0.1, MaxAlpha: 0.5, Ramp: time.Second, Fade: 2 * time.Second})
	assert.Zero(t, b.Alpha(t0))

	b.Press(t0)
	assert.InDelta(t, 0.1, b.Alpha(t0), 1e-12)
	assert.InDelta(t, 0.3, b.Alpha(at(500*time.Millisecond)), 1e-12)
	assert.InDelta(t, 0.5, b.Alpha(at(5*time.Second)), 1e-12)
	assert.InDelta(t, 1.5, b.Elapsed(at(1500*time.Millisecond)), 1e-12)

	// Holding does not restart the ramp
	b.Press(at(time.Second))
	assert.InDelta(t, 0.5, b.Alpha(at(time.Second)), 1e-12)

	// Release mid-ramp fades from the alpha at release
	b.Reset()
	b.Press(t0)
	b.Release(at(500 * time.Millisecond))
	assert.False(t, b.Boosting())
	assert.Zero(t, b.Elapsed(at(time.Second)))
	assert.InDelta(t, 0.3, b.Alpha(at(500*time.Millisecond)), 1e-12)
	assert.InDelta(t, 0.15, b.Alpha(at(1500*time.Millisecond)), 1e-12)
	assert.Zero(t, b.Alpha(at(10*time.Second)))
}

func TestDamageFlashRetrigger(t *testing.T) {
	f := NewDamageFlash(time.Second, 0.8)
	assert.Zero(t, f.Alpha(t0))

	f.Trigger(t0)
	assert.InDelta(t, 0.8, f.Alpha(t0), 1e-12)
	assert.InDelta(t, 0.4, f.Alpha(at(500*time.Millisecond)), 1e-12)

	f.Trigger(at(500 * time.Millisecond))
	assert.InDelta(t, 0.8, f.Alpha(at(500*time.Millisecond)), 1e-12)
	assert.Zero(t, f.Alpha(at(2*time.Second)))
}

func TestWarpFade(t *testing.T) {
	w := NewWarpFade(time.Second)
	require.True(t, w.Start(t0, WarpPayload{TargetSystem: 7}))
	assert.False(t, w.Start(at(100*time.Millisecond), WarpPayload{TargetSystem: 9}))
	assert.InDelta(t, 0.25, w.Alpha(at(250*time.Millisecond)), 1e-12)

	got, ok := w.Poll(at(time.Second))
	require.True(t, ok)
	assert.Equal(t, 7, got.TargetSystem)

	w.Start(t0, WarpPayload{TargetSystem: 2})
	w.Stop()
	_, ok = w.Poll(at(time.Hour))
	assert.False(t, ok)
}
