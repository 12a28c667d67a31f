package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(cards []Card) []int {
	out := make([]int, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestDefaultDeck(t *testing.T) {
	d := DefaultDeck()
	require.Equal(t, 7, d.Len())

	for i := 0; i < d.Len(); i++ {
		c, ok := d.At(i)
		require.True(t, ok)
		assert.Equal(t, i+1, c.ID)
	}

	first, _ := d.At(0)
	assert.Equal(t, "#ffc0cb", first.Background.Hex())

	_, ok := d.At(7)
	assert.False(t, ok)
	_, ok = d.At(-1)
	assert.False(t, ok)
}

func TestWindow_Rotate(t *testing.T) {
	tests := []struct {
		name     string
		swipes   int
		want     []int
		appended bool
	}{
		{name: "fresh window", swipes: 0, want: []int{1, 2, 3}},
		{name: "first swipe pulls card 4", swipes: 1, want: []int{2, 3, 4}, appended: true},
		{name: "last full window", swipes: 4, want: []int{5, 6, 7}, appended: true},
		{name: "exhaustion shrinks", swipes: 5, want: []int{6, 7}},
		{name: "one left", swipes: 6, want: []int{7}},
		{name: "empty", swipes: 7, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWindow(DefaultDeck(), WindowSize)
			var last Shift
			for i := 0; i < tt.swipes; i++ {
				s, ok := w.Rotate()
				require.True(t, ok)
				last = s
			}
			assert.Equal(t, tt.want, ids(w.Cards()))
			if tt.swipes > 0 {
				assert.Equal(t, tt.appended, last.Appended)
			}
		})
	}
}

func TestWindow_RotatePicksIDPlusTwo(t *testing.T) {
	w := NewWindow(DefaultDeck(), WindowSize)

	s, ok := w.Rotate()
	require.True(t, ok)
	assert.Equal(t, 1, s.Removed.ID)
	assert.Equal(t, 4, s.Added.ID)
	assert.Equal(t, Blue, s.Added.Background)
}

func TestWindow_RotateEmpty(t *testing.T) {
	w := NewWindow(NewDeck(), WindowSize)
	assert.True(t, w.Empty())

	_, ok := w.Rotate()
	assert.False(t, ok)
}

func TestWindow_ShortDeck(t *testing.T) {
	w := NewWindow(NewDeck(Pink, Yellow), WindowSize)
	assert.Equal(t, []int{1, 2}, ids(w.Cards()))

	s, ok := w.Rotate()
	require.True(t, ok)
	assert.False(t, s.Appended)
	assert.Equal(t, []int{2}, ids(w.Cards()))
}

func TestWindow_CardsIsACopy(t *testing.T) {
	w := NewWindow(DefaultDeck(), WindowSize)
	cards := w.Cards()
	cards[0].ID = 99

	front, _ := w.Front()
	assert.Equal(t, 1, front.ID)
}
