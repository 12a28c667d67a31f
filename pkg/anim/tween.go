package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one property from its value at timeline start to To.
// Nothing happens until Delay has elapsed, then the value moves over
// Duration along Ease.
type Tween struct {
	Property string
	To       float64
	Delay    time.Duration
	Duration time.Duration
	Ease     ease.TweenFunc // nil means ease.Linear
}

// End returns the elapsed time at which the tween reaches To
func (tw Tween) End() time.Duration {
	return tw.Delay + tw.Duration
}

// player builds the gween tween that plays tw starting from from. Its time
// base is seconds since the end of Delay.
func (tw Tween) player(from float64) *gween.Tween {
	fn := tw.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return gween.New(float32(from), float32(tw.To), float32(tw.Duration.Seconds()), fn)
}

// Timeline is a group of tweens started together. They run concurrently,
// each with its own delay and duration.
type Timeline []Tween

// Duration is the time until the last tween finishes
func (tl Timeline) Duration() time.Duration {
	var longest time.Duration
	for _, tw := range tl {
		if end := tw.End(); end > longest {
			longest = end
		}
	}
	return longest
}
