package swipe

import "fmt"

// Color is an opaque RGB colour
type Color struct {
	R, G, B uint8
}

// Hex returns the colour as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colours used by the default deck
var (
	Pink   = Color{255, 192, 203}
	Yellow = Color{255, 255, 0}
	Orange = Color{255, 165, 0}
	Blue   = Color{0, 0, 255}
	Green  = Color{0, 128, 0}
	Purple = Color{128, 0, 128}
	Brown  = Color{165, 42, 42}
)

// Card is one entry of the deck
type Card struct {
	ID         int
	Background Color
}

// Deck is an immutable ordered list of cards. Card IDs are 1-based and
// match their position, so card N lives at index N-1.
type Deck struct {
	cards []Card
}

// NewDeck builds a deck with one card per colour
func NewDeck(colors ...Color) Deck {
	cards := make([]Card, len(colors))
	for i, c := range colors {
		cards[i] = Card{ID: i + 1, Background: c}
	}
	return Deck{cards: cards}
}

// DefaultDeck returns the seven-card deck
func DefaultDeck() Deck {
	return NewDeck(Pink, Yellow, Orange, Blue, Green, Purple, Brown)
}

// Len returns the number of cards
func (d Deck) Len() int {
	return len(d.cards)
}

// At returns the card at index i
func (d Deck) At(i int) (Card, bool) {
	if i < 0 || i >= len(d.cards) {
		return Card{}, false
	}
	return d.cards[i], true
}

// Window is the visible run of cards, the deck slice [start, end)
type Window struct {
	deck  Deck
	size  int
	start int
	end   int
}

// NewWindow opens a window of up to size cards at the top of the deck
func NewWindow(deck Deck, size int) Window {
	return Window{
		deck: deck,
		size: size,
		end:  min(size, deck.Len()),
	}
}

// Len returns the number of visible cards
func (w Window) Len() int {
	return w.end - w.start
}

// Empty reports whether the deck has been swiped through
func (w Window) Empty() bool {
	return w.Len() == 0
}

// At returns the visible card at window index i (0 is the front)
func (w Window) At(i int) (Card, bool) {
	if i < 0 || i >= w.Len() {
		return Card{}, false
	}
	return w.deck.At(w.start + i)
}

// Front returns the front card
func (w Window) Front() (Card, bool) {
	return w.At(0)
}

// Cards returns a copy of the visible cards, front first
func (w Window) Cards() []Card {
	out := make([]Card, 0, w.Len())
	for i := w.start; i < w.end; i++ {
		c, _ := w.deck.At(i)
		out = append(out, c)
	}
	return out
}

// Shift describes one rotation of the window
type Shift struct {
	Removed  Card
	Added    Card
	Appended bool
}

// Rotate drops the front card and pulls in the card size-1 slots past the
// removed card's ID (ID+2 for a three-card window). When the deck has no
// such card the window shrinks instead; it never wraps around.
func (w *Window) Rotate() (Shift, bool) {
	front, ok := w.Front()
	if !ok {
		return Shift{}, false
	}

	w.start++
	s := Shift{Removed: front}

	next := front.ID + w.size - 1
	if card, ok := w.deck.At(next); ok {
		w.end = next + 1
		s.Added = card
		s.Appended = true
	}
	return s, true
}
