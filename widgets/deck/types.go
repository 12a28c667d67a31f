package deck

import (
	"swipe-stack/pkg/input"
	"swipe-stack/pkg/swipe"

	"github.com/veandco/go-sdl2/sdl"
)

// Card box relative to the region the widget is drawn into
const (
	cardWidthRatio  = 0.8
	cardHeightRatio = 0.9
	glyphInset      = 30.0
)

// Feedback glyphs shown while the front card leaves
var (
	acceptGlyph = glyphStyle{text: "✔", color: sdl.Color{R: 0, G: 255, B: 0, A: 255}}
	rejectGlyph = glyphStyle{text: "✖", color: sdl.Color{R: 255, G: 0, B: 0, A: 255}}
)

type glyphStyle struct {
	text  string
	color sdl.Color
}

// glyphTexture is a pre-rendered feedback icon
type glyphTexture struct {
	texture *sdl.Texture
	w, h    float64
}

// Widget is the swipeable card stack
type Widget struct {
	controller *swipe.Controller
	pointer    input.PointerTracker

	// 1x1 white texture tinted and stretched into each card
	cardTexture *sdl.Texture
	glyphs      map[swipe.Glyph]glyphTexture
}
