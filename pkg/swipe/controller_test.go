package swipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipe-stack/pkg/anim"
)

func newTestController() (*Controller, *anim.ManualClock) {
	clock := anim.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewController(DefaultDeck(), clock), clock
}

func swipeRight(t *testing.T, c *Controller) {
	t.Helper()
	require.True(t, c.Move(Gesture{DX: 30}))
	started, err := c.Release(Gesture{DX: 150, DY: 12})
	require.NoError(t, err)
	require.True(t, started)
}

func TestController_ExitTimelineValues(t *testing.T) {
	c, clock := newTestController()
	swipeRight(t, c)
	require.True(t, c.Animating())

	// Before any delay elapses nothing moves
	clock.Advance(50 * time.Millisecond)
	assert.False(t, c.Tick())
	a := c.Stack().Anim()
	assert.Equal(t, 0.0, a.Rotation)
	assert.Equal(t, 1.0, a.CardOpacity)
	assert.Equal(t, 0.0, a.IconOpacity)

	// At 150ms the icon is fully in and rotation is a quarter through
	clock.Advance(100 * time.Millisecond)
	c.Tick()
	a = c.Stack().Anim()
	assert.InDelta(t, 45*0.0625, a.Rotation, 1e-4, "cubic in-out at a quarter")
	assert.Equal(t, 1.0, a.CardOpacity)
	assert.Equal(t, 1.0, a.IconOpacity)

	// Fade is halfway at 250ms
	clock.Advance(100 * time.Millisecond)
	c.Tick()
	a = c.Stack().Anim()
	assert.InDelta(t, 0.5, a.CardOpacity, 1e-4)
	assert.Greater(t, a.Rotation, 22.5)
	assert.Equal(t, Right, a.Direction)
	assert.Equal(t, []int{1, 2, 3}, ids(c.Stack().Window().Cards()), "window must not change mid-animation")
}

func TestController_CompletesOncePerSwipe(t *testing.T) {
	c, clock := newTestController()

	var swiped []Shift
	var dirs []Direction
	c.OnSwipe(func(dir Direction, s Shift) {
		dirs = append(dirs, dir)
		swiped = append(swiped, s)
	})

	swipeRight(t, c)
	clock.Advance(299 * time.Millisecond)
	assert.False(t, c.Tick())

	clock.Advance(time.Millisecond)
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
	clock.Advance(time.Second)
	assert.False(t, c.Tick())

	require.Len(t, swiped, 1)
	assert.Equal(t, []Direction{Right}, dirs)
	assert.Equal(t, 1, swiped[0].Removed.ID)
	assert.Equal(t, []int{2, 3, 4}, ids(c.Stack().Window().Cards()))
	assert.Equal(t, Baseline(), c.Stack().Anim())
	assert.Equal(t, Idle, c.Stack().Phase())
	assert.False(t, c.Animating())
}

func TestController_IgnoresGesturesWhileAnimating(t *testing.T) {
	c, clock := newTestController()
	swipeRight(t, c)

	assert.False(t, c.Move(Gesture{DX: -300}))
	started, err := c.Release(Gesture{DX: -300})
	assert.NoError(t, err)
	assert.False(t, started)

	started, err = c.Swipe(Left)
	assert.NoError(t, err)
	assert.False(t, started)

	clock.Advance(300 * time.Millisecond)
	require.True(t, c.Tick())
	assert.Equal(t, []int{2, 3, 4}, ids(c.Stack().Window().Cards()))
}

func TestController_SwipeUntilExhausted(t *testing.T) {
	c, clock := newTestController()

	windows := [][]int{}
	for i := 0; i < 8; i++ {
		started, err := c.Swipe(Left)
		require.NoError(t, err)
		if !started {
			break
		}
		clock.Advance(300 * time.Millisecond)
		require.True(t, c.Tick())
		windows = append(windows, ids(c.Stack().Window().Cards()))
	}

	assert.Equal(t, [][]int{
		{2, 3, 4},
		{3, 4, 5},
		{4, 5, 6},
		{5, 6, 7},
		{6, 7},
		{7},
		{},
	}, windows)
	assert.True(t, c.Stack().Window().Empty())
}

func TestController_SwipeNoneIsNoop(t *testing.T) {
	c, _ := newTestController()

	started, err := c.Swipe(None)
	assert.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, Idle, c.Stack().Phase())
}
