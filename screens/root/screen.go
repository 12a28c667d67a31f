package root

import (
	"fmt"
	"log"

	"swipe-stack/pkg/anim"
	"swipe-stack/pkg/config"
	"swipe-stack/pkg/input"
	"swipe-stack/pkg/swipe"
	"swipe-stack/ui"
	"swipe-stack/widgets/deck"

	"github.com/veandco/go-sdl2/sdl"
)

const hintText = "Drag the card or press Left/Right to swipe | ESC Quit"

// NewRootScreen creates and initializes the root screen
func NewRootScreen(window *sdl.Window, renderer *sdl.Renderer, cfg config.Config) (*RootScreen, error) {
	rs := &RootScreen{
		window:     window,
		renderer:   renderer,
		keyTracker: input.NewKeyPressTracker[sdl.Scancode](),
	}

	fonts, err := ui.LoadFonts(cfg.FontPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize fonts: %v", err)
	}
	rs.fonts = fonts

	deckWidget, err := deck.NewWidget(renderer, fonts, anim.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("failed to create deck widget: %w", err)
	}
	rs.deckWidget = deckWidget

	return rs, nil
}

// HandleEvent routes pointer events to the deck. Touch and mouse are
// handled separately; main disables SDL's touch-to-mouse emulation so a
// finger is not seen twice.
func (rs *RootScreen) HandleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		switch e.Type {
		case sdl.MOUSEBUTTONDOWN:
			rs.deckWidget.PointerDown(float64(e.X), float64(e.Y))
		case sdl.MOUSEBUTTONUP:
			rs.deckWidget.PointerUp(float64(e.X), float64(e.Y))
		}
	case *sdl.MouseMotionEvent:
		rs.deckWidget.PointerMove(float64(e.X), float64(e.Y))
	case *sdl.TouchFingerEvent:
		rs.handleTouch(e)
	}
}

// handleTouch converts normalized finger coordinates to window pixels
func (rs *RootScreen) handleTouch(e *sdl.TouchFingerEvent) {
	w, h := rs.window.GetSize()
	x := float64(e.X) * float64(w)
	y := float64(e.Y) * float64(h)

	switch e.Type {
	case sdl.FINGERDOWN:
		if rs.fingerDown {
			return
		}
		rs.finger = e.FingerID
		rs.fingerDown = true
		rs.deckWidget.PointerDown(x, y)
	case sdl.FINGERMOTION:
		if rs.fingerDown && e.FingerID == rs.finger {
			rs.deckWidget.PointerMove(x, y)
		}
	case sdl.FINGERUP:
		if rs.fingerDown && e.FingerID == rs.finger {
			rs.fingerDown = false
			rs.deckWidget.PointerUp(x, y)
		}
	}
}

// Update handles keyboard input and advances the deck animation
func (rs *RootScreen) Update() error {
	rs.keyState = sdl.GetKeyboardState()

	if rs.isPressed(sdl.SCANCODE_LEFT) {
		rs.deckWidget.Swipe(swipe.Left)
	}
	if rs.isPressed(sdl.SCANCODE_RIGHT) {
		rs.deckWidget.Swipe(swipe.Right)
	}
	if rs.isPressed(sdl.SCANCODE_ESCAPE) {
		rs.quitRequest = true
	}

	return rs.deckWidget.Update()
}

func (rs *RootScreen) isPressed(scancode sdl.Scancode) bool {
	return rs.keyTracker.IsPressed(scancode, rs.keyState[scancode] != 0)
}

// QuitRequested reports whether the user asked to leave
func (rs *RootScreen) QuitRequested() bool {
	return rs.quitRequest
}

// Draw renders the complete frame using SDL2
func (rs *RootScreen) Draw() error {
	w, h := rs.window.GetSize()

	rs.renderer.SetDrawColor(backgroundColor.R, backgroundColor.G, backgroundColor.B, backgroundColor.A)
	rs.renderer.Clear()

	if err := rs.deckWidget.Draw(rs.renderer, 0, 0, w, h); err != nil {
		return err
	}

	if rs.fonts != nil {
		if err := rs.drawOverlay(w, h); err != nil {
			return fmt.Errorf("failed to draw overlay: %w", err)
		}
	}

	rs.renderer.Present()
	return nil
}

// drawOverlay renders the hint line and the end-of-deck message
func (rs *RootScreen) drawOverlay(w, h int32) error {
	white := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	gray := sdl.Color{R: 209, G: 213, B: 219, A: 255}

	if rs.deckWidget.Empty() && rs.fonts.Title != nil {
		if err := ui.RenderTextCentered(rs.renderer, "No more cards", w/2, h/2-20, white, rs.fonts.Title); err != nil {
			return err
		}
	}
	if rs.fonts.Hint != nil {
		if err := ui.RenderTextCentered(rs.renderer, hintText, w/2, h-30, gray, rs.fonts.Hint); err != nil {
			return err
		}
	}
	return nil
}

// Close cleans up resources
func (rs *RootScreen) Close() {
	if rs.deckWidget != nil {
		rs.deckWidget.Destroy()
	}
	if rs.fonts != nil {
		rs.fonts.Close()
	}
}
