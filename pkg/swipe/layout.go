package swipe

// Glyph is the feedback icon drawn on the front card during an exit
type Glyph int

const (
	GlyphNone   Glyph = iota
	GlyphAccept       // right swipe
	GlyphReject       // left swipe
)

// CardView is everything a renderer needs to draw one visible card
type CardView struct {
	Card         Card
	Index        int // window index, 0 is the front card
	Z            int // higher draws on top
	OffsetX      float64
	OffsetY      float64
	Scale        float64
	Rotation     float64 // degrees, clockwise
	Opacity      float64
	Glyph        Glyph
	GlyphOpacity float64
}

// DepthTransform returns the resting vertical offset and scale of the card
// at window index i
func DepthTransform(i int) (offsetY, scale float64) {
	return DepthOffset * float64(i), 1 - DepthScale*float64(i)
}

// Layout returns one view per visible card, front first. Draw them in
// reverse so the front card lands on top.
func (s *Stack) Layout() []CardView {
	cards := s.window.Cards()
	views := make([]CardView, len(cards))

	for i, card := range cards {
		offsetY, scale := DepthTransform(i)
		v := CardView{
			Card:    card,
			Index:   i,
			Z:       -i,
			OffsetY: offsetY,
			Scale:   scale,
			Opacity: 1,
		}

		if i == 0 {
			v.OffsetX = s.anim.Position.X
			v.OffsetY += s.anim.Position.Y
			v.Rotation = s.anim.Rotation
			v.Opacity = s.anim.CardOpacity
			v.Glyph = glyphFor(s.anim.Direction)
			if v.Glyph != GlyphNone {
				v.GlyphOpacity = s.anim.IconOpacity
			}
		}

		views[i] = v
	}
	return views
}

func glyphFor(dir Direction) Glyph {
	switch dir {
	case Right:
		return GlyphAccept
	case Left:
		return GlyphReject
	default:
		return GlyphNone
	}
}
