// Package tui provides the Bubble Tea front end for the trainer. It owns
// the terminal loop, input widgets and key mapping, and drives the
// controller once per frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one controller frame.
type TickMsg time.Time

// Frame rates: the fast rate keeps countdown displays current during timed
// phases, the idle rate is enough for input-driven screens.
const idleTickRate = 10

// tickCmd returns a command that sends tick messages at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = idleTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
