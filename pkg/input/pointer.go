package input

import "swipe-stack/pkg/swipe"

// PointerTracker follows one pointer from press to release and reports
// displacement relative to where it went down. Coordinates are in whatever
// units the host uses; the SDL host passes window pixels.
type PointerTracker struct {
	active           bool
	originX, originY float64
}

// Press starts tracking at (x, y). A press while already tracking restarts
// the gesture from the new point.
func (p *PointerTracker) Press(x, y float64) {
	p.active = true
	p.originX, p.originY = x, y
}

// Move returns the cumulative displacement to (x, y). ok is false when no
// pointer is down.
func (p *PointerTracker) Move(x, y float64) (g swipe.Gesture, ok bool) {
	if !p.active {
		return swipe.Gesture{}, false
	}
	return swipe.Gesture{DX: x - p.originX, DY: y - p.originY}, true
}

// Release ends the gesture at (x, y) and returns its final displacement
func (p *PointerTracker) Release(x, y float64) (swipe.Gesture, bool) {
	g, ok := p.Move(x, y)
	p.active = false
	return g, ok
}

// Cancel forgets the current gesture
func (p *PointerTracker) Cancel() {
	p.active = false
}
