package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

type mapTarget map[string]float64

func (m mapTarget) Value(p string) float64       { return m[p] }
func (m mapTarget) SetValue(p string, v float64) { m[p] = v }

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestRunner_HoldsUntilDelayThenEases(t *testing.T) {
	clock := NewManualClock(epoch)
	r := NewRunner(clock)
	target := mapTarget{"x": 0}

	tl := Timeline{{Property: "x", To: 10, Delay: 100 * time.Millisecond, Duration: 200 * time.Millisecond, Ease: ease.InOutCubic}}
	require.NoError(t, r.Start(tl, target, nil))

	clock.Advance(100 * time.Millisecond)
	r.Tick()
	assert.Equal(t, 0.0, target["x"], "nothing moves during the delay")

	// Cubic in-out lags linear in the first half and is symmetric about it
	clock.Advance(50 * time.Millisecond)
	r.Tick()
	assert.InDelta(t, 10*0.0625, target["x"], 1e-4)

	clock.Advance(50 * time.Millisecond)
	r.Tick()
	assert.InDelta(t, 5, target["x"], 1e-4)

	clock.Advance(50 * time.Millisecond)
	r.Tick()
	assert.InDelta(t, 10*0.9375, target["x"], 1e-4)

	clock.Advance(50 * time.Millisecond)
	assert.True(t, r.Tick())
	assert.Equal(t, 10.0, target["x"])
}

func TestRunner_ZeroDurationJumpsAfterDelay(t *testing.T) {
	clock := NewManualClock(epoch)
	r := NewRunner(clock)
	target := mapTarget{"x": 0, "y": 0}

	tl := Timeline{
		{Property: "x", To: 1, Delay: 50 * time.Millisecond},
		{Property: "y", To: 1, Duration: 100 * time.Millisecond},
	}
	require.NoError(t, r.Start(tl, target, nil))

	clock.Advance(50 * time.Millisecond)
	r.Tick()
	assert.Equal(t, 0.0, target["x"])

	clock.Advance(time.Millisecond)
	r.Tick()
	assert.Equal(t, 1.0, target["x"])
}

func TestTimeline_Duration(t *testing.T) {
	tl := Timeline{
		{Property: "a", Delay: 100 * time.Millisecond, Duration: 200 * time.Millisecond},
		{Property: "b", Delay: 200 * time.Millisecond, Duration: 100 * time.Millisecond},
		{Property: "c", Delay: 100 * time.Millisecond, Duration: 10 * time.Millisecond},
	}
	assert.Equal(t, 300*time.Millisecond, tl.Duration())
	assert.Equal(t, time.Duration(0), Timeline{}.Duration())
}

func TestRunner_SamplesAgainstClock(t *testing.T) {
	clock := NewManualClock(epoch)
	r := NewRunner(clock)
	target := mapTarget{"x": 0, "y": 1}

	tl := Timeline{
		{Property: "x", To: 100, Duration: 100 * time.Millisecond},
		{Property: "y", To: 0, Delay: 50 * time.Millisecond, Duration: 50 * time.Millisecond},
	}
	require.NoError(t, r.Start(tl, target, nil))
	assert.True(t, r.Running())

	clock.Advance(50 * time.Millisecond)
	assert.False(t, r.Tick())
	assert.InDelta(t, 50, target["x"], 1e-4)
	assert.Equal(t, 1.0, target["y"])

	clock.Advance(25 * time.Millisecond)
	r.Tick()
	assert.InDelta(t, 75, target["x"], 1e-4)
	assert.InDelta(t, 0.5, target["y"], 1e-4)
}

func TestRunner_CompletesExactlyOnce(t *testing.T) {
	clock := NewManualClock(epoch)
	r := NewRunner(clock)
	target := mapTarget{}
	calls := 0

	require.NoError(t, r.Start(Timeline{{Property: "x", To: 1, Duration: 10 * time.Millisecond}}, target, func() {
		calls++
	}))

	// Overshoot the end by a lot; the final value is still exact
	clock.Advance(time.Second)
	assert.True(t, r.Tick())
	assert.False(t, r.Tick())
	assert.False(t, r.Tick())

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, target["x"])
	assert.False(t, r.Running())
}

func TestRunner_RejectsOverlappingStart(t *testing.T) {
	r := NewRunner(NewManualClock(epoch))
	tl := Timeline{{Property: "x", To: 1, Duration: time.Second}}

	require.NoError(t, r.Start(tl, mapTarget{}, nil))
	assert.ErrorIs(t, r.Start(tl, mapTarget{}, nil), ErrBusy)
}

func TestRunner_RejectsEmptyTimeline(t *testing.T) {
	r := NewRunner(nil)
	assert.ErrorIs(t, r.Start(nil, mapTarget{}, nil), ErrEmptyTimeline)
	assert.False(t, r.Running())
}

func TestRunner_CallbackMayStartNextTimeline(t *testing.T) {
	clock := NewManualClock(epoch)
	r := NewRunner(clock)
	target := mapTarget{}
	tl := Timeline{{Property: "x", To: 1, Duration: 10 * time.Millisecond}}

	var restartErr error
	require.NoError(t, r.Start(tl, target, func() {
		restartErr = r.Start(tl, target, nil)
	}))

	clock.Advance(10 * time.Millisecond)
	require.True(t, r.Tick())
	assert.NoError(t, restartErr)
	assert.True(t, r.Running())
}
