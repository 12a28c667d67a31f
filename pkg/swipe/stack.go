package swipe

import (
	"math"

	"github.com/tanema/gween/ease"

	"swipe-stack/pkg/anim"
)

// Stack is the card deck state machine. Transitions are plain method calls
// so the whole swipe cycle can be driven without a renderer:
//
//	Idle --Move past CaptureThreshold--> Dragging
//	Dragging --Release past SwipeThreshold--> Releasing
//	Dragging --Release short of it--> Idle
//	Releasing --Complete--> Idle (window rotated, animation reset)
//
// Stack also implements anim.Target so a runner can write the exit
// animation straight into it.
type Stack struct {
	window Window
	phase  Phase
	anim   AnimState
}

// NewStack creates a stack showing the first WindowSize cards of deck
func NewStack(deck Deck) *Stack {
	return &Stack{
		window: NewWindow(deck, WindowSize),
		anim:   Baseline(),
	}
}

// Phase returns the current phase
func (s *Stack) Phase() Phase {
	return s.phase
}

// Anim returns the front card's animation state
func (s *Stack) Anim() AnimState {
	return s.anim
}

// Window returns the visible window
func (s *Stack) Window() Window {
	return s.window
}

// Move handles pointer movement and reports whether the stack owns the
// gesture. The front card does not follow the pointer while dragging;
// only the release decides what happens.
func (s *Stack) Move(g Gesture) bool {
	g = g.sanitized()

	switch s.phase {
	case Idle:
		if s.window.Empty() {
			return false
		}
		if math.Abs(g.DX) > CaptureThreshold || math.Abs(g.DY) > CaptureThreshold {
			s.phase = Dragging
			return true
		}
		return false
	case Dragging:
		return true
	default:
		// Releasing: the exit animation owns the front card
		return false
	}
}

// Release ends a drag. Past SwipeThreshold it enters Releasing and returns
// the exit timeline to run; otherwise the drag is abandoned with no change.
func (s *Stack) Release(g Gesture) (anim.Timeline, bool) {
	if s.phase != Dragging {
		return nil, false
	}

	dir := directionFor(g.sanitized().DX)
	if dir == None {
		s.phase = Idle
		return nil, false
	}

	s.phase = Releasing
	s.anim.Direction = dir
	return ExitTimeline(dir), true
}

// Complete finishes a swipe once its timeline has played: the window
// rotates and the animation state returns to baseline.
func (s *Stack) Complete() (Shift, bool) {
	if s.phase != Releasing {
		return Shift{}, false
	}

	shift, ok := s.window.Rotate()
	s.anim = Baseline()
	s.phase = Idle
	return shift, ok
}

// Value implements anim.Target
func (s *Stack) Value(property string) float64 {
	switch property {
	case PropRotation:
		return s.anim.Rotation
	case PropCardOpacity:
		return s.anim.CardOpacity
	case PropIconOpacity:
		return s.anim.IconOpacity
	default:
		return 0
	}
}

// SetValue implements anim.Target. Writes outside Releasing are dropped.
func (s *Stack) SetValue(property string, value float64) {
	if s.phase != Releasing {
		return
	}

	value = finite(value)
	switch property {
	case PropRotation:
		s.anim.Rotation = clamp(value, -MaxRotation, MaxRotation)
	case PropCardOpacity:
		s.anim.CardOpacity = clamp(value, 0, 1)
	case PropIconOpacity:
		s.anim.IconOpacity = clamp(value, 0, 1)
	}
}

// ExitTimeline describes the animation that carries the front card off in
// dir: tilt, then fade, with the feedback glyph flashing in on the way.
func ExitTimeline(dir Direction) anim.Timeline {
	angle := MaxRotation
	if dir == Left {
		angle = -MaxRotation
	}

	return anim.Timeline{
		{Property: PropRotation, To: angle, Delay: rotationDelay, Duration: rotationDuration, Ease: ease.InOutCubic},
		{Property: PropCardOpacity, To: 0, Delay: fadeDelay, Duration: fadeDuration, Ease: ease.InOutCubic},
		{Property: PropIconOpacity, To: 1, Delay: iconDelay, Duration: iconDuration, Ease: ease.InOutCubic},
	}
}

func directionFor(dx float64) Direction {
	switch {
	case dx > SwipeThreshold:
		return Right
	case dx < -SwipeThreshold:
		return Left
	default:
		return None
	}
}
