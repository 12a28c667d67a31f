package anim

import (
	"errors"
	"time"

	"github.com/tanema/gween"
)

var (
	ErrBusy          = errors.New("anim: a timeline is already running")
	ErrEmptyTimeline = errors.New("anim: timeline has no tweens")
)

// Target receives the sampled property values of a running timeline
type Target interface {
	Value(property string) float64
	SetValue(property string, value float64)
}

// Runner plays one timeline at a time against a Clock. It never blocks:
// the owner calls Tick once per frame and the runner writes the current
// values into the target. The completion callback fires exactly once, on
// the first tick at or past the timeline's duration.
type Runner struct {
	clock  Clock
	active *run
}

type run struct {
	timeline Timeline
	target   Target
	players  []*gween.Tween
	started  time.Time
	done     func()
}

// NewRunner creates a runner driven by clock. A nil clock uses SystemClock.
func NewRunner(clock Clock) *Runner {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Runner{clock: clock}
}

// Start begins playing tl against target. done may be nil.
func (r *Runner) Start(tl Timeline, target Target, done func()) error {
	if r.active != nil {
		return ErrBusy
	}
	if len(tl) == 0 {
		return ErrEmptyTimeline
	}

	players := make([]*gween.Tween, len(tl))
	for i, tw := range tl {
		players[i] = tw.player(target.Value(tw.Property))
	}

	r.active = &run{
		timeline: tl,
		target:   target,
		players:  players,
		started:  r.clock.Now(),
		done:     done,
	}
	return nil
}

// Running reports whether a timeline is in flight
func (r *Runner) Running() bool {
	return r.active != nil
}

// Tick samples the running timeline and reports whether it finished on
// this tick
func (r *Runner) Tick() bool {
	a := r.active
	if a == nil {
		return false
	}

	elapsed := r.clock.Now().Sub(a.started)
	for i, tw := range a.timeline {
		// Before the delay ends Set clamps to the start value
		v, _ := a.players[i].Set(float32((elapsed - tw.Delay).Seconds()))
		a.target.SetValue(tw.Property, float64(v))
	}

	if elapsed < a.timeline.Duration() {
		return false
	}

	// Cleared before the callback so it may start the next timeline
	r.active = nil
	if a.done != nil {
		a.done()
	}
	return true
}
