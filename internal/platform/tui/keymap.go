package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MenuAction represents a menu-level action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionHistory
	MenuActionQuit
)

// mapMenuKey translates a key to a menu action.
func mapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc", "b":
		return MenuActionBack
	case "h", "tab":
		return MenuActionHistory
	}
	return MenuActionNone
}

// optionKey maps number keys 1-9 to a 0-based option index, -1 otherwise.
func optionKey(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return int(s[0] - '1')
	}
	return -1
}
