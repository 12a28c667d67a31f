package ui

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var errNoFont = errors.New("font not available")

// TextTexture renders text once into a texture that can be drawn every
// frame with its own alpha and rotation
func TextTexture(renderer *sdl.Renderer, text string, color sdl.Color, font *ttf.Font) (*sdl.Texture, int32, int32, error) {
	if font == nil {
		return nil, 0, 0, errNoFont
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	return texture, surface.W, surface.H, nil
}

// RenderTextCentered renders text centered horizontally on cx with its top
// at y
func RenderTextCentered(renderer *sdl.Renderer, text string, cx, y int32, color sdl.Color, font *ttf.Font) error {
	texture, w, h, err := TextTexture(renderer, text, color, font)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	return renderer.Copy(texture, nil, &sdl.Rect{X: cx - w/2, Y: y, W: w, H: h})
}
