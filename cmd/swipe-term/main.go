// Command swipe-term runs the card stack in a terminal
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"swipe-stack/pkg/anim"
	"swipe-stack/pkg/config"
	"swipe-stack/pkg/swipe"
	"swipe-stack/screens/terminal"
)

func main() {
	// The terminal belongs to the UI; logs only go to SWIPE_TERM_LOG
	log.SetOutput(io.Discard)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "swipe-term: %v\n", err)
		os.Exit(1)
	}

	if cfg.TermLog != "" {
		f, err := tea.LogToFile(cfg.TermLog, "swipe-term")
		if err != nil {
			fmt.Fprintf(os.Stderr, "swipe-term: open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	controller := swipe.NewController(swipe.DefaultDeck(), anim.SystemClock{})
	controller.OnSwipe(func(dir swipe.Direction, shift swipe.Shift) {
		log.Printf("Swiped card %d %s, %d left", shift.Removed.ID, dir, controller.Stack().Window().Len())
	})

	p := tea.NewProgram(terminal.NewModel(controller), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("Program exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "swipe-term: %v\n", err)
		os.Exit(1)
	}
}
