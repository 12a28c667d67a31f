package deck

import (
	"math"

	"swipe-stack/pkg/swipe"

	"github.com/veandco/go-sdl2/sdl"
)

// DrawCard renders one card centered on (cx, cy) at its resting size
// (cw x ch) before the view's scale, offset and rotation are applied
func DrawCard(renderer *sdl.Renderer, texture *sdl.Texture, view swipe.CardView, cx, cy, cw, ch float64, glyph *glyphTexture) error {
	w := cw * view.Scale
	h := ch * view.Scale
	centerX := cx + view.OffsetX
	centerY := cy + view.OffsetY

	bg := view.Card.Background
	texture.SetColorMod(bg.R, bg.G, bg.B)
	texture.SetAlphaMod(alpha(view.Opacity))

	dst := sdl.FRect{
		X: float32(centerX - w/2),
		Y: float32(centerY - h/2),
		W: float32(w),
		H: float32(h),
	}
	// A nil center rotates about the middle of dst
	if err := renderer.CopyExF(texture, nil, &dst, view.Rotation, nil, sdl.FLIP_NONE); err != nil {
		return err
	}

	if glyph == nil || view.Glyph == swipe.GlyphNone || view.GlyphOpacity <= 0 {
		return nil
	}
	return drawGlyph(renderer, view, glyph, centerX, centerY, w, h)
}

// drawGlyph places the icon in the top corner of the card on the side it
// is leaving toward, rotating it with the card
func drawGlyph(renderer *sdl.Renderer, view swipe.CardView, glyph *glyphTexture, centerX, centerY, w, h float64) error {
	localY := -h/2 + glyphInset + glyph.h/2
	localX := -w/2 + glyphInset + glyph.w/2
	if view.Glyph == swipe.GlyphReject {
		localX = w/2 - glyphInset - glyph.w/2
	}

	// Screen space is y-down, so a positive angle turns clockwise
	rad := view.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	gx := centerX + localX*cos - localY*sin
	gy := centerY + localX*sin + localY*cos

	glyph.texture.SetAlphaMod(alpha(view.GlyphOpacity * view.Opacity))
	dst := sdl.FRect{
		X: float32(gx - glyph.w/2),
		Y: float32(gy - glyph.h/2),
		W: float32(glyph.w),
		H: float32(glyph.h),
	}
	return renderer.CopyExF(glyph.texture, nil, &dst, view.Rotation, nil, sdl.FLIP_NONE)
}

func alpha(opacity float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, opacity)) * 255))
}
