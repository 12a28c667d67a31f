package deck

import (
	"fmt"
	"log"

	"swipe-stack/pkg/anim"
	"swipe-stack/pkg/swipe"
	"swipe-stack/ui"

	"github.com/veandco/go-sdl2/sdl"
)

// NewWidget creates the card stack over the default deck. fonts may be nil,
// in which case cards are drawn without feedback glyphs.
func NewWidget(renderer *sdl.Renderer, fonts *ui.Fonts, clock anim.Clock) (*Widget, error) {
	cardTexture, err := newSolidTexture(renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to create card texture: %w", err)
	}

	w := &Widget{
		controller:  swipe.NewController(swipe.DefaultDeck(), clock),
		cardTexture: cardTexture,
		glyphs:      make(map[swipe.Glyph]glyphTexture),
	}
	w.controller.OnSwipe(func(dir swipe.Direction, shift swipe.Shift) {
		if shift.Appended {
			log.Printf("deck: swiped card %d %s, card %d joins the stack", shift.Removed.ID, dir, shift.Added.ID)
		} else {
			log.Printf("deck: swiped card %d %s, %d left", shift.Removed.ID, dir, w.controller.Stack().Window().Len())
		}
	})

	if fonts != nil && fonts.Glyph != nil {
		for glyph, style := range map[swipe.Glyph]glyphStyle{
			swipe.GlyphAccept: acceptGlyph,
			swipe.GlyphReject: rejectGlyph,
		} {
			texture, gw, gh, err := ui.TextTexture(renderer, style.text, style.color, fonts.Glyph)
			if err != nil {
				log.Printf("Warning: Failed to render %q glyph: %v", style.text, err)
				continue
			}
			w.glyphs[glyph] = glyphTexture{texture: texture, w: float64(gw), h: float64(gh)}
		}
	}

	return w, nil
}

// newSolidTexture creates a 1x1 opaque white texture with alpha blending
func newSolidTexture(renderer *sdl.Renderer) (*sdl.Texture, error) {
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, 1, 1, 32, uint32(sdl.PIXELFORMAT_ARGB8888))
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	if err := surface.FillRect(nil, 0xffffffff); err != nil {
		return nil, err
	}

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// PointerDown starts a gesture at (x, y)
func (w *Widget) PointerDown(x, y float64) {
	w.pointer.Press(x, y)
}

// PointerMove feeds pointer movement to the stack
func (w *Widget) PointerMove(x, y float64) {
	if g, ok := w.pointer.Move(x, y); ok {
		w.controller.Move(g)
	}
}

// PointerUp ends the gesture at (x, y), starting a swipe when it went far
// enough
func (w *Widget) PointerUp(x, y float64) {
	g, ok := w.pointer.Release(x, y)
	if !ok {
		return
	}

	// Capture on release too, in case no motion arrived in between
	w.controller.Move(g)
	if _, err := w.controller.Release(g); err != nil {
		log.Printf("deck: %v", err)
	}
}

// Swipe throws the front card in dir without a drag
func (w *Widget) Swipe(dir swipe.Direction) {
	w.pointer.Cancel()
	if _, err := w.controller.Swipe(dir); err != nil {
		log.Printf("deck: %v", err)
	}
}

// Empty reports whether every card has been swiped away
func (w *Widget) Empty() bool {
	return w.controller.Stack().Window().Empty()
}

// Update advances the exit animation
func (w *Widget) Update() error {
	w.controller.Tick()
	return nil
}

// Draw renders the stack centered in the given region
func (w *Widget) Draw(renderer *sdl.Renderer, x, y, width, height int32) error {
	cw := float64(width) * cardWidthRatio
	ch := float64(height) * cardHeightRatio
	cx := float64(x) + float64(width)/2
	cy := float64(y) + float64(height)/2

	views := w.controller.Layout()

	// Back to front so the front card lands on top
	for i := len(views) - 1; i >= 0; i-- {
		var glyph *glyphTexture
		if g, ok := w.glyphs[views[i].Glyph]; ok {
			glyph = &g
		}
		if err := DrawCard(renderer, w.cardTexture, views[i], cx, cy, cw, ch, glyph); err != nil {
			return err
		}
	}

	return nil
}

// Destroy releases the widget's textures
func (w *Widget) Destroy() {
	if w.cardTexture != nil {
		w.cardTexture.Destroy()
		w.cardTexture = nil
	}
	for glyph, g := range w.glyphs {
		g.texture.Destroy()
		delete(w.glyphs, glyph)
	}
}
