package ui

import (
	"fmt"
	"log"

	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes in points
const (
	GlyphSize = 70 // feedback icons on the front card
	TitleSize = 32 // empty-deck message
	HintSize  = 18 // bottom hint line
)

// Fonts manages a set of TrueType fonts at different sizes
type Fonts struct {
	Glyph *ttf.Font
	Title *ttf.Font
	Hint  *ttf.Font
}

var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
}

// Fonts with the Dingbats block (U+2714, U+2716). Helvetica and Liberation
// lack it, so the glyph size searches these first.
var glyphFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/System/Library/Fonts/ZapfDingbats.ttf",
	"/System/Library/Fonts/Apple Symbols.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/usr/share/fonts/truetype/noto/NotoSansSymbols2-Regular.ttf",
}

// LoadFonts initializes TTF and opens each size from the first font file
// that loads. preferred, when set, is tried before the system fallbacks.
// Sizes that fail to load stay nil; callers skip text they cannot draw.
func LoadFonts(preferred string) (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %w", err)
	}

	paths := searchPaths(preferred, fontPaths)
	return &Fonts{
		Glyph: openFirst(searchPaths(preferred, glyphFontPaths, fontPaths), GlyphSize),
		Title: openFirst(paths, TitleSize),
		Hint:  openFirst(paths, HintSize),
	}, nil
}

// searchPaths joins the lists in order with preferred first, dropping
// repeats
func searchPaths(preferred string, lists ...[]string) []string {
	var paths []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p != "" && !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	add(preferred)
	for _, list := range lists {
		for _, p := range list {
			add(p)
		}
	}
	return paths
}

func openFirst(paths []string, size int) *ttf.Font {
	for _, path := range paths {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
	}
	log.Printf("Warning: no usable font for size %d", size)
	return nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	for _, font := range []*ttf.Font{f.Glyph, f.Title, f.Hint} {
		if font != nil {
			font.Close()
		}
	}
	ttf.Quit()
}
