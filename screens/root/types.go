package root

import (
	"swipe-stack/pkg/input"
	"swipe-stack/ui"
	"swipe-stack/widgets/deck"

	"github.com/veandco/go-sdl2/sdl"
)

// Host background, #555555
var backgroundColor = sdl.Color{R: 85, G: 85, B: 85, A: 255}

// RootScreen is the full-screen host for the card stack
type RootScreen struct {
	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer

	// UI components
	fonts      *ui.Fonts
	deckWidget *deck.Widget

	// Input tracking
	keyState   []uint8
	keyTracker input.KeyPressTracker[sdl.Scancode]

	// Touch gestures follow the first finger down only
	finger      sdl.FingerID
	fingerDown  bool
	quitRequest bool
}
