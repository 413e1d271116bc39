package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dkotlyar/mindgym/internal/controller"
)

// Run starts the Bubble Tea program on the local terminal and blocks until
// the user quits.
func Run(ctrl *controller.Controller, fps int) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	p := tea.NewProgram(
		NewModel(ctrl, width, height, fps),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
