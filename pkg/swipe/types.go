package swipe

import (
	"math"
	"time"
)

const (
	// WindowSize is the number of cards visible at once
	WindowSize = 3

	// CaptureThreshold is how far a pointer must move, on either axis,
	// before the gesture counts as a drag rather than a tap
	CaptureThreshold = 10.0

	// SwipeThreshold is the horizontal release distance that commits a swipe
	SwipeThreshold = 120.0

	// MaxRotation bounds the front card's tilt in degrees
	MaxRotation = 45.0

	// DepthOffset and DepthScale shape the cards behind the front one
	DepthOffset = 25.0
	DepthScale  = 0.05
)

// Exit timeline timings
const (
	rotationDelay    = 100 * time.Millisecond
	rotationDuration = 200 * time.Millisecond
	fadeDelay        = 200 * time.Millisecond
	fadeDuration     = 100 * time.Millisecond
	iconDelay        = 100 * time.Millisecond
	iconDuration     = 10 * time.Millisecond
)

// Animated property names
const (
	PropRotation    = "rotation"
	PropCardOpacity = "cardOpacity"
	PropIconOpacity = "iconOpacity"
)

// Direction of a swipe
type Direction int

const (
	None Direction = iota
	Left
	Right
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Phase of the swipe cycle
type Phase int

const (
	Idle Phase = iota
	Dragging
	Releasing
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Releasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// Vec is a 2D offset in pointer units
type Vec struct {
	X, Y float64
}

// AnimState holds the front card's animated values
type AnimState struct {
	Position    Vec
	Rotation    float64 // degrees, within [-MaxRotation, MaxRotation]
	CardOpacity float64
	IconOpacity float64
	Direction   Direction
}

// Baseline is the resting animation state
func Baseline() AnimState {
	return AnimState{CardOpacity: 1}
}

// Gesture carries cumulative pointer displacement since the gesture began
type Gesture struct {
	DX, DY float64
}

// sanitized replaces non-finite deltas with zero
func (g Gesture) sanitized() Gesture {
	return Gesture{DX: finite(g.DX), DY: finite(g.DY)}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
