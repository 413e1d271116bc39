package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkotlyar/mindgym/internal/controller"
	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/games/digitspan"
	"github.com/dkotlyar/mindgym/internal/games/inumbs"
	"github.com/dkotlyar/mindgym/internal/games/textrecall"
	"github.com/dkotlyar/mindgym/internal/games/wordmem"
)

// Model is the Bubble Tea model for the whole application. It owns the
// input widgets and translates terminal events into the frame the
// controller consumes once per tick.
type Model struct {
	ctrl *controller.Controller

	width  int
	height int
	fps    int

	frame game.Frame

	// menu
	menuCursor int

	// config screen editing state
	cfgEdit   game.Config
	cfgCursor int

	// playing-screen input widgets; which ones exist depends on the
	// active game's phase, tracked by widgetPhase
	textInput   textinput.Model
	textArea    textarea.Model
	slots       []textinput.Model
	slotFocus   int
	widgetPhase string

	// history
	historyTable table.Model
	confirmClear bool

	quitting bool
}

// NewModel creates the application model.
func NewModel(ctrl *controller.Controller, width, height, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		ctrl:   ctrl,
		width:  width,
		height: height,
		fps:    fps,
		frame:  game.NewFrame(time.Now()),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(idleTickRate)
}

// Update handles terminal events and tick messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleTick runs one controller frame and restamps the input frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.ctrl.Screen() == controller.ScreenPlaying {
		m.frame.Now = now
		m.frame.Text = m.activeText()
		m.frame.Fields = m.slotValues()

		m.ctrl.Update(m.frame)
		m.syncWidgets()
	}
	m.frame.Clear()

	rate := idleTickRate
	if m.ctrl.NeedsRepaint() {
		rate = m.fps
	}
	return m, tickCmd(rate)
}

// activeText returns the contents of whichever free-text widget the
// current phase uses.
func (m *Model) activeText() string {
	switch m.widgetPhase {
	case "input":
		return m.textInput.Value()
	case "area":
		return m.textArea.Value()
	}
	return ""
}

// slotValues returns the per-slot box contents, nil when no grid is shown.
func (m *Model) slotValues() []string {
	if len(m.slots) == 0 {
		return nil
	}
	out := make([]string, len(m.slots))
	for i := range m.slots {
		out[i] = m.slots[i].Value()
	}
	return out
}

// syncWidgets rebuilds the input widgets whenever the active game enters a
// phase that needs a different input surface.
func (m *Model) syncWidgets() {
	key := ""
	switch g := m.ctrl.CurrentGame().(type) {
	case *digitspan.Game:
		if g.Phase() == digitspan.PhaseWriting {
			key = "input"
		}
	case *wordmem.Game:
		if g.Phase() == wordmem.PhaseRecall {
			key = "area"
		}
	case *textrecall.Game:
		if g.Phase() == textrecall.PhaseWriting {
			key = "area"
		}
	case *inumbs.Game:
		if g.Phase() == inumbs.PhaseFilling {
			key = fmt.Sprintf("slots:%d", g.Total())
		}
	}

	if key == m.widgetPhase {
		return
	}
	m.widgetPhase = key
	m.slots = nil

	switch {
	case key == "input":
		ti := textinput.New()
		ti.Placeholder = "type the number"
		ti.CharLimit = 64
		ti.Width = 30
		ti.Focus()
		m.textInput = ti

	case key == "area":
		ta := textarea.New()
		ta.Placeholder = "word1 word2 word3..."
		ta.SetWidth(min(m.width-4, 72))
		ta.SetHeight(6)
		ta.Focus()
		m.textArea = ta

	case len(key) > 6 && key[:6] == "slots:":
		g, ok := m.ctrl.CurrentGame().(*inumbs.Game)
		if !ok {
			return
		}
		m.slots = make([]textinput.Model, g.Total())
		for i := range m.slots {
			ti := textinput.New()
			ti.CharLimit = 4
			ti.Width = 4
			ti.Prompt = ""
			m.slots[i] = ti
		}
		m.slotFocus = 0
		m.slots[0].Focus()
	}
}

// handleKey routes keyboard input by screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.ctrl.Screen() {
	case controller.ScreenGameSelection:
		return m.handleMenuKey(msg)
	case controller.ScreenGameConfig:
		return m.handleConfigKey(msg)
	case controller.ScreenPlaying:
		return m.handlePlayingKey(msg)
	case controller.ScreenResults:
		return m.handleResultsKey(msg)
	case controller.ScreenHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	types := game.AllTypes()

	switch mapMenuKey(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.menuCursor > 0 {
			m.menuCursor--
		}

	case MenuActionDown:
		if m.menuCursor < len(types)-1 {
			m.menuCursor++
		}

	case MenuActionSelect:
		t := types[m.menuCursor]
		m.cfgEdit = m.ctrl.Config(t)
		m.cfgCursor = 0
		m.ctrl.OpenConfig(t)

	case MenuActionHistory:
		m.historyTable = newHistoryTable(m.ctrl.AllResults(), m.width)
		m.confirmClear = false
		m.ctrl.SetScreen(controller.ScreenHistory)
	}
	return m, nil
}

func (m Model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t := m.ctrl.ScreenType()
	rows := configRows(t)

	switch msg.String() {
	case "esc", "b":
		m.ctrl.SetScreen(controller.ScreenGameSelection)

	case "up", "k":
		if m.cfgCursor > 0 {
			m.cfgCursor--
		}

	case "down", "j":
		if m.cfgCursor < len(rows)-1 {
			m.cfgCursor++
		}

	case "left", "h":
		adjustConfig(t, &m.cfgEdit, rows[m.cfgCursor], -1)

	case "right", "l", " ":
		adjustConfig(t, &m.cfgEdit, rows[m.cfgCursor], +1)

	case "enter":
		m.ctrl.SetConfig(t, m.cfgEdit)
		if err := m.ctrl.StartGame(t); err != nil {
			m.ctrl.SetScreen(controller.ScreenGameSelection)
			return m, nil
		}
		m.widgetPhase = ""
		m.frame = game.NewFrame(time.Now())
	}
	return m, nil
}

func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Keys that always reach the game, widget or not.
	switch key {
	case "esc":
		m.frame.Set(game.ActionAbort)
		return m, nil
	case "enter":
		m.frame.Set(game.ActionStart)
		m.frame.Set(game.ActionConfirm)
		return m, nil
	}

	// With an input widget on screen, remaining keys go to the widget.
	switch {
	case m.widgetPhase == "input":
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd

	case m.widgetPhase == "area":
		var cmd tea.Cmd
		m.textArea, cmd = m.textArea.Update(msg)
		return m, cmd

	case len(m.slots) > 0:
		switch key {
		case "tab", "down", "right":
			m.moveSlotFocus(1)
			return m, nil
		case "shift+tab", "up", "left":
			m.moveSlotFocus(-1)
			return m, nil
		}
		var cmd tea.Cmd
		m.slots[m.slotFocus], cmd = m.slots[m.slotFocus].Update(msg)
		return m, cmd
	}

	// Widget-free phases: navigation and option selection.
	switch key {
	case "n", "right":
		m.frame.Set(game.ActionNext)
	case "p", "left":
		m.frame.Set(game.ActionPrev)
	default:
		if opt := optionKey(msg); opt >= 0 {
			m.frame.Option = opt
		}
	}
	return m, nil
}

func (m *Model) moveSlotFocus(delta int) {
	if len(m.slots) == 0 {
		return
	}
	m.slots[m.slotFocus].Blur()
	m.slotFocus = (m.slotFocus + delta + len(m.slots)) % len(m.slots)
	m.slots[m.slotFocus].Focus()
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", "b", " ":
		m.ctrl.ClearCurrentResult()
		m.ctrl.SetScreen(controller.ScreenGameSelection)
	case "q":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		m.ctrl.SetScreen(controller.ScreenGameSelection)
		return m, nil

	case "q":
		m.quitting = true
		return m, tea.Quit

	case "c":
		m.confirmClear = true
		return m, nil

	case "y":
		if m.confirmClear {
			m.ctrl.ClearAllResults()
			m.historyTable = newHistoryTable(nil, m.width)
			m.confirmClear = false
		}
		return m, nil

	case "n":
		m.confirmClear = false
		return m, nil
	}

	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.ctrl.Screen() {
	case controller.ScreenGameSelection:
		return m.viewMenu()
	case controller.ScreenGameConfig:
		return m.viewConfig()
	case controller.ScreenPlaying:
		return m.viewPlaying()
	case controller.ScreenResults:
		return m.viewResults()
	case controller.ScreenHistory:
		return m.viewHistory()
	}
	return ""
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
