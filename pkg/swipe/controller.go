package swipe

import (
	"fmt"

	"swipe-stack/pkg/anim"
)

// SwipeFunc is called after a swipe has fully played out
type SwipeFunc func(dir Direction, shift Shift)

// Controller ties a Stack to an animation runner. Hosts feed it pointer
// gestures and call Tick once per frame; it starts the exit timeline on a
// committed release and applies the rotation rule when the timeline ends.
type Controller struct {
	stack   *Stack
	runner  *anim.Runner
	onSwipe SwipeFunc
}

// NewController creates a controller for deck. A nil clock uses the wall
// clock.
func NewController(deck Deck, clock anim.Clock) *Controller {
	return &Controller{
		stack:  NewStack(deck),
		runner: anim.NewRunner(clock),
	}
}

// OnSwipe registers fn to run after each completed swipe
func (c *Controller) OnSwipe(fn SwipeFunc) {
	c.onSwipe = fn
}

// Stack returns the underlying state machine
func (c *Controller) Stack() *Stack {
	return c.stack
}

// Animating reports whether an exit animation is in flight
func (c *Controller) Animating() bool {
	return c.runner.Running()
}

// Move forwards pointer movement to the stack
func (c *Controller) Move(g Gesture) bool {
	return c.stack.Move(g)
}

// Release forwards a pointer release and starts the exit animation when
// the release commits a swipe. It reports whether a swipe started.
func (c *Controller) Release(g Gesture) (bool, error) {
	tl, ok := c.stack.Release(g)
	if !ok {
		return false, nil
	}

	if err := c.runner.Start(tl, c.stack, c.complete); err != nil {
		// Never leave the stack stuck in Releasing
		c.complete()
		return true, fmt.Errorf("start exit animation: %w", err)
	}
	return true, nil
}

// Swipe performs a full swipe in dir without a pointer, as if the card
// had been dragged just past the threshold and let go
func (c *Controller) Swipe(dir Direction) (bool, error) {
	dx := SwipeThreshold + 1
	switch dir {
	case Left:
		dx = -dx
	case Right:
	default:
		return false, nil
	}

	g := Gesture{DX: dx}
	if !c.stack.Move(g) {
		return false, nil
	}
	return c.Release(g)
}

// Tick advances the exit animation and reports whether a swipe completed
func (c *Controller) Tick() bool {
	return c.runner.Tick()
}

// Layout returns the current card views, front first
func (c *Controller) Layout() []CardView {
	return c.stack.Layout()
}

func (c *Controller) complete() {
	dir := c.stack.Anim().Direction
	shift, ok := c.stack.Complete()
	if ok && c.onSwipe != nil {
		c.onSwipe(dir, shift)
	}
}
