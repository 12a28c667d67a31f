// Package terminal hosts the card stack in a terminal. Cards are drawn as
// coloured blocks: the front card shifts sideways as it tilts and fades into
// the background as it leaves, and the cards behind it show as narrower
// strips underneath.
package terminal

import (
	"log"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"swipe-stack/pkg/input"
	"swipe-stack/pkg/swipe"
)

// A terminal cell is much coarser than a pixel; these convert mouse cells
// into the units the swipe thresholds are defined in
const (
	unitsPerColumn = 8.0
	unitsPerRow    = 16.0
)

const frameInterval = 16 * time.Millisecond

var (
	backgroundColor = swipe.Color{R: 85, G: 85, B: 85}
	acceptColor     = swipe.Color{R: 0, G: 255, B: 0}
	rejectColor     = swipe.Color{R: 255, G: 0, B: 0}

	background = lipgloss.Color(backgroundColor.Hex())
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	emptyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(background)
)

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the bubbletea model for the terminal host
type Model struct {
	controller *swipe.Controller
	pointer    input.PointerTracker

	width, height int
	ticking       bool
}

// NewModel creates a terminal host around controller
func NewModel(controller *swipe.Controller) Model {
	return Model{controller: controller}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			return m.swipe(swipe.Left)
		case "right", "l":
			return m.swipe(swipe.Right)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		m.controller.Tick()
		if m.controller.Animating() {
			return m, frameTick()
		}
		m.ticking = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x := float64(msg.X) * unitsPerColumn
	y := float64(msg.Y) * unitsPerRow

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.Press(x, y)
		}
	case tea.MouseActionMotion:
		if g, ok := m.pointer.Move(x, y); ok {
			m.controller.Move(g)
		}
	case tea.MouseActionRelease:
		g, ok := m.pointer.Release(x, y)
		if !ok {
			return m, nil
		}
		// Capture on release too, in case no motion arrived in between
		m.controller.Move(g)
		started, err := m.controller.Release(g)
		if err != nil {
			log.Printf("terminal: %v", err)
		}
		return m.startTicking(started)
	}
	return m, nil
}

func (m Model) swipe(dir swipe.Direction) (tea.Model, tea.Cmd) {
	m.pointer.Cancel()
	started, err := m.controller.Swipe(dir)
	if err != nil {
		log.Printf("terminal: %v", err)
	}
	return m.startTicking(started)
}

// startTicking drives the animation while a swipe plays out
func (m Model) startTicking(started bool) (tea.Model, tea.Cmd) {
	if !started || m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, frameTick()
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height < 2 {
		return ""
	}

	var body string
	views := m.controller.Layout()
	if len(views) == 0 {
		body = emptyStyle.Render("No more cards")
	} else {
		body = m.renderStack(views)
	}

	canvas := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(background))
	hint := hintStyle.Width(m.width).Render("drag the card or ←/→ to swipe · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, canvas, hint)
}

func (m Model) renderStack(views []swipe.CardView) string {
	cardW := max(m.width*8/10, 12)
	cardH := max((m.height-1)*6/10, 5)

	front := views[0]
	frontColor := blend(front.Card.Background, backgroundColor, front.Opacity)

	glyphLine := lipgloss.NewStyle().
		Width(cardW - 4).
		Background(lipgloss.Color(frontColor.Hex()))
	glyph := ""
	if front.Glyph != swipe.GlyphNone && front.GlyphOpacity > 0 {
		char, color := "✔", acceptColor
		if front.Glyph == swipe.GlyphReject {
			char, color = "✖", rejectColor
			glyphLine = glyphLine.Align(lipgloss.Right)
		}
		fg := blend(color, frontColor, front.GlyphOpacity*front.Opacity)
		glyph = glyphLine.Bold(true).Foreground(lipgloss.Color(fg.Hex())).Render(char)
	} else {
		glyph = glyphLine.Render("")
	}

	// Tilt shows up as a sideways shift of up to a third of the card
	shift := int(math.Round(front.Rotation / swipe.MaxRotation * float64(cardW) / 3))
	card := lipgloss.NewStyle().
		Width(cardW).
		Height(cardH).
		Padding(1, 2).
		Background(lipgloss.Color(frontColor.Hex())).
		MarginBackground(background).
		MarginLeft(max(0, 2*shift)).
		MarginRight(max(0, -2*shift)).
		Render(glyph)

	totalW := lipgloss.Width(card)
	rows := []string{card}
	for _, v := range views[1:] {
		strip := lipgloss.NewStyle().
			Width(int(float64(cardW) * v.Scale)).
			Background(lipgloss.Color(v.Card.Background.Hex())).
			Render("")
		rows = append(rows, lipgloss.PlaceHorizontal(totalW, lipgloss.Center, strip,
			lipgloss.WithWhitespaceBackground(background)))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

// blend mixes c over bg with weight t in [0, 1]
func blend(c, bg swipe.Color, t float64) swipe.Color {
	t = math.Max(0, math.Min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*t + float64(b)*(1-t)))
	}
	return swipe.Color{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B)}
}
