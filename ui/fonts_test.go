package ui

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchPaths_PreferredFirstWithoutRepeats(t *testing.T) {
	paths := searchPaths("/tmp/custom.ttf", []string{"/a.ttf", "/b.ttf"}, []string{"/b.ttf", "/c.ttf"})
	assert.Equal(t, []string{"/tmp/custom.ttf", "/a.ttf", "/b.ttf", "/c.ttf"}, paths)

	assert.Equal(t, []string{"/a.ttf"}, searchPaths("", []string{"/a.ttf"}))
}

func TestGlyphSearch_DingbatFontsBeforeHelvetica(t *testing.T) {
	paths := searchPaths("", glyphFontPaths, fontPaths)

	helvetica := slices.Index(paths, "/System/Library/Fonts/Helvetica.ttc")
	zapf := slices.Index(paths, "/System/Library/Fonts/ZapfDingbats.ttf")
	assert.NotEqual(t, -1, helvetica)
	assert.NotEqual(t, -1, zapf)
	assert.Less(t, zapf, helvetica, "Helvetica has no check or cross glyphs")
}
