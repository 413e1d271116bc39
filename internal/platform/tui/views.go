package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/games/digitspan"
	"github.com/dkotlyar/mindgym/internal/games/inumbs"
	"github.com/dkotlyar/mindgym/internal/games/textcomp"
	"github.com/dkotlyar/mindgym/internal/games/textrecall"
	"github.com/dkotlyar/mindgym/internal/games/wordmem"
)

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("M I N D G Y M"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Pick an exercise"))
	b.WriteString("\n\n")

	for i, t := range game.AllTypes() {
		cursor := "  "
		line := fmt.Sprintf("%s - %s", t.Name(), t.Description())
		if i == m.menuCursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")

		stats := m.ctrl.StatsForGame(t)
		if stats.TotalGames > 0 {
			b.WriteString(faintStyle.Render(fmt.Sprintf(
				"    played %d, best %.1f%%", stats.TotalGames, stats.BestScore)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("up/down move · enter select · h history · q quit"))
	return b.String()
}

// cfgRow identifies one editable line of the config screen.
type cfgRow int

const (
	rowDifficulty cfgRow = iota
	rowDuration
	rowItemCount
	rowFillBoxes
	rowRounds
	rowTraining
)

// configRows lists the editable settings for a game type.
func configRows(t game.Type) []cfgRow {
	switch t {
	case game.TypeReadingSpeed:
		return []cfgRow{rowDifficulty, rowDuration, rowRounds, rowTraining}
	case game.TypeINumbs:
		return []cfgRow{rowDifficulty, rowDuration, rowItemCount, rowFillBoxes}
	case game.TypeTextRecall:
		return []cfgRow{rowDifficulty, rowDuration}
	default:
		return []cfgRow{rowDifficulty}
	}
}

// adjustConfig applies one left/right step to a config row.
func adjustConfig(t game.Type, cfg *game.Config, row cfgRow, delta int) {
	switch row {
	case rowDifficulty:
		tiers := game.AllDifficulties()
		idx := 0
		for i, d := range tiers {
			if d == cfg.Difficulty {
				idx = i
			}
		}
		idx = (idx + delta + len(tiers)) % len(tiers)
		cfg.Difficulty = tiers[idx]

	case rowDuration:
		step, lo, hi := durationRange(t)
		cfg.Duration += time.Duration(delta) * step
		if cfg.Duration < lo {
			cfg.Duration = lo
		}
		if cfg.Duration > hi {
			cfg.Duration = hi
		}

	case rowItemCount:
		cfg.ItemCount += delta
		if cfg.ItemCount < 1 {
			cfg.ItemCount = 1
		}
		if cfg.ItemCount > 200 {
			cfg.ItemCount = 200
		}

	case rowFillBoxes:
		cfg.FillBoxes = !cfg.FillBoxes

	case rowRounds:
		options := []int{10, 20, 30}
		idx := 0
		for i, r := range options {
			if r == cfg.Rounds {
				idx = i
			}
		}
		idx = (idx + delta + len(options)) % len(options)
		cfg.Rounds = options[idx]

	case rowTraining:
		cfg.Training = !cfg.Training
	}
}

// durationRange returns the step and bounds of the duration setting for a
// game type. Digit-span durations are short (per-number flash); the others
// bound a whole showing phase.
func durationRange(t game.Type) (step, lo, hi time.Duration) {
	if t == game.TypeReadingSpeed {
		return 100 * time.Millisecond, 500 * time.Millisecond, 3 * time.Second
	}
	return 5 * time.Second, 5 * time.Second, 5 * time.Minute
}

func (m Model) viewConfig() string {
	t := m.ctrl.ScreenType()
	cfg := m.cfgEdit

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Name()))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(t.Description()))
	b.WriteString("\n\n")

	for i, row := range configRows(t) {
		cursor := "  "
		line := configRowLabel(t, cfg, row)
		if i == m.cfgCursor {
			cursor = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(faintStyle.Render("left/right change · enter start · esc back"))
	return b.String()
}

func configRowLabel(t game.Type, cfg game.Config, row cfgRow) string {
	switch row {
	case rowDifficulty:
		label := cfg.Difficulty.Name()
		if t == game.TypeReadingSpeed {
			switch cfg.Difficulty {
			case game.Easy:
				label += " (1-6 digits)"
			case game.Hard:
				label += " (11-20 digits)"
			default:
				label += " (7-10 digits)"
			}
		}
		return "Difficulty:  " + label
	case rowDuration:
		if cfg.Duration < time.Second {
			return fmt.Sprintf("Duration:    %d ms", cfg.Duration.Milliseconds())
		}
		return fmt.Sprintf("Duration:    %s", formatDuration(cfg.Duration))
	case rowItemCount:
		return fmt.Sprintf("Numbers:     %d", cfg.ItemCount)
	case rowFillBoxes:
		return "Fill boxes:  " + onOff(cfg.FillBoxes)
	case rowRounds:
		return fmt.Sprintf("Rounds:      %d", cfg.Rounds)
	case rowTraining:
		return "Training:    " + onOff(cfg.Training)
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m Model) viewPlaying() string {
	now := time.Now()

	switch g := m.ctrl.CurrentGame().(type) {
	case *digitspan.Game:
		return m.viewDigitSpan(g, now)
	case *wordmem.Game:
		return m.viewWordMemory(g)
	case *textcomp.Game:
		return m.viewComprehension(g)
	case *textrecall.Game:
		return m.viewTextRecall(g, now)
	case *inumbs.Game:
		return m.viewINumbs(g, now)
	}
	return ""
}

func instructionsView(t game.Type, lines ...string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Name()))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter start · esc menu"))
	return b.String()
}

func (m Model) viewDigitSpan(g *digitspan.Game, now time.Time) string {
	switch g.Phase() {
	case digitspan.PhaseInstructions:
		return instructionsView(game.TypeReadingSpeed,
			"A number appears for a moment each round.",
			"Type it back from memory.",
			fmt.Sprintf("Rounds: %d", g.TotalRounds()))

	case digitspan.PhaseShowing:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("Round %d of %d", g.Round(), g.TotalRounds())))
		b.WriteString("\n")
		b.WriteString(countdownStyle.Render(fmt.Sprintf("%d ms left", g.Remaining(now).Milliseconds())))
		b.WriteString("\n\n")
		b.WriteString(stimulusStyle.Render(g.Number()))
		b.WriteString("\n\n")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Memorize this %d-digit number", g.DigitCount())))
		if done := len(g.Rounds()); done > 0 {
			b.WriteString("\n")
			b.WriteString(faintStyle.Render(fmt.Sprintf("correct so far: %d / %d", g.CorrectSoFar(), done)))
		}
		return b.String()

	case digitspan.PhaseWriting:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("Round %d of %d", g.Round(), g.TotalRounds())))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("The number had %d digits:\n\n", g.DigitCount()))
		b.WriteString(m.textInput.View())
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("enter confirm · esc menu"))
		return b.String()
	}
	return ""
}

func (m Model) viewWordMemory(g *wordmem.Game) string {
	switch g.Phase() {
	case wordmem.PhaseInstructions:
		return instructionsView(game.TypeWordMemory,
			"Words appear one at a time.",
			"Memorize them all, then write down every word you remember.",
			fmt.Sprintf("Words: %d · %.1fs each", len(g.Words()), g.WordDisplayTime().Seconds()))

	case wordmem.PhaseShowing:
		var b strings.Builder
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Word %d of %d", g.WordIndex()+1, len(g.Words()))))
		b.WriteString("\n\n")
		b.WriteString(stimulusStyle.Render(g.CurrentWord()))
		return b.String()

	case wordmem.PhaseRecall:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Write the words you remember"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("separate them with spaces"))
		b.WriteString("\n\n")
		b.WriteString(m.textArea.View())
		b.WriteString("\n")
		typed := len(strings.Fields(m.textArea.Value()))
		b.WriteString(faintStyle.Render(fmt.Sprintf("words written: %d / %d", typed, len(g.Words()))))
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("enter finish · esc menu"))
		return b.String()
	}
	return ""
}

func (m Model) viewComprehension(g *textcomp.Game) string {
	switch g.Phase() {
	case textcomp.PhaseInstructions:
		return instructionsView(game.TypeTextComprehension,
			"Read the text carefully.",
			"Then answer the questions about it.",
			fmt.Sprintf("Questions: %d", g.QuestionCount()))

	case textcomp.PhaseReading:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Read the following text"))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(wrapText(g.Text(), min(m.width-8, 68))))
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("enter continue to the questions · esc menu"))
		return b.String()

	case textcomp.PhaseQuestions:
		cur := g.CurrentQuestion()
		q := g.Question(cur)
		selected := g.Answer(cur)

		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", cur+1, g.QuestionCount())))
		b.WriteString("\n")
		b.WriteString(wrapText(q.Prompt, min(m.width-4, 68)))
		b.WriteString("\n\n")
		for i, opt := range q.Options {
			line := fmt.Sprintf("%d. %s", i+1, opt)
			if i == selected {
				line = selectedOptionStyle.Render("● " + line)
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
		hint := "1-9 answer · left/right navigate · esc menu"
		if cur == g.QuestionCount()-1 {
			hint = "1-9 answer · left back · enter finish · esc menu"
		}
		b.WriteString(faintStyle.Render(hint))
		return b.String()
	}
	return ""
}

func (m Model) viewTextRecall(g *textrecall.Game, now time.Time) string {
	switch g.Phase() {
	case textrecall.PhaseInstructions:
		return instructionsView(game.TypeTextRecall,
			"A passage appears for a limited time.",
			"Read it, then rewrite it from memory word for word.")

	case textrecall.PhaseReading:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Memorize this passage"))
		b.WriteString("\n")
		b.WriteString(countdownStyle.Render(fmt.Sprintf("%.0fs left", g.Remaining(now).Seconds())))
		b.WriteString("\n\n")
		b.WriteString(boxStyle.Render(wrapText(g.Text(), min(m.width-8, 68))))
		return b.String()

	case textrecall.PhaseWriting:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Rewrite the passage"))
		b.WriteString("\n\n")
		b.WriteString(m.textArea.View())
		b.WriteString("\n\n")
		b.WriteString(faintStyle.Render("enter finish · esc menu"))
		return b.String()
	}
	return ""
}

func (m Model) viewINumbs(g *inumbs.Game, now time.Time) string {
	switch g.Phase() {
	case inumbs.PhaseInstructions:
		return instructionsView(game.TypeINumbs,
			"All the numbers appear at once.",
			"Memorize them in order; fill in the boxes afterwards if enabled.",
			fmt.Sprintf("Numbers: %d", g.Total()))

	case inumbs.PhaseShowing:
		var b strings.Builder
		b.WriteString(titleStyle.Render(fmt.Sprintf("Showing all numbers (%d)", g.Total())))
		b.WriteString("\n")
		b.WriteString(countdownStyle.Render(fmt.Sprintf("%d ms left", g.Remaining(now).Milliseconds())))
		b.WriteString("\n\n")

		const perRow = 12
		nums := g.Numbers()
		for i := 0; i < len(nums); i += perRow {
			end := min(i+perRow, len(nums))
			b.WriteString(stimulusStyle.Padding(0, 1).Render(strings.Join(nums[i:end], "  ")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Memorize the numbers in the order shown"))
		return b.String()

	case inumbs.PhaseFilling:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Fill in the boxes"))
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("enter the numbers in the order you saw them"))
		b.WriteString("\n\n")

		const perRow = 6
		var cells []string
		for i := range m.slots {
			cells = append(cells, boxStyle.Padding(0, 1).Render(m.slots[i].View()))
			if (i+1)%perRow == 0 || i == len(m.slots)-1 {
				b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
				b.WriteString("\n")
				cells = nil
			}
		}
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("tab next box · enter confirm · esc menu"))
		return b.String()
	}
	return ""
}

func (m Model) viewResults() string {
	r := m.ctrl.CurrentResult()
	if r == nil {
		return faintStyle.Render("no result · press enter")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Results - " + r.GameType.Name()))
	b.WriteString("\n\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Score: %.1f%%", r.Score)))
	b.WriteString("\n\n")
	b.WriteString(detailLines(*r))

	stats := m.ctrl.StatsForGame(r.GameType)
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("played %d · best %.1f%%", stats.TotalGames, stats.BestScore)))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter back to menu"))
	return b.String()
}

// detailLines renders the per-game payload of a result.
func detailLines(r game.Result) string {
	d := r.Details
	switch {
	case d.ReadingSpeed != nil:
		return fmt.Sprintf("Exact rounds: %d / %d\nTime: %s\n",
			d.ReadingSpeed.RoundsCorrect, d.ReadingSpeed.TotalRounds,
			formatDuration(d.ReadingSpeed.TimeTaken))
	case d.WordMemory != nil:
		return fmt.Sprintf("Words recalled: %d / %d\nWords shown: %s\n",
			d.WordMemory.WordsCorrect, len(d.WordMemory.OriginalWords),
			strings.Join(d.WordMemory.OriginalWords, ", "))
	case d.TextComprehension != nil:
		return fmt.Sprintf("Correct answers: %d / %d\n",
			d.TextComprehension.QuestionsCorrect, d.TextComprehension.TotalQuestions)
	case d.INumbs != nil:
		return fmt.Sprintf("Correct boxes: %d / %d\nTime: %s\n",
			d.INumbs.Correct, d.INumbs.Total, formatDuration(d.INumbs.TimeTaken))
	case d.TextRecall != nil:
		return fmt.Sprintf("Words in place: %d / %d\nTime: %s\n",
			d.TextRecall.WordsCorrect, d.TextRecall.TotalWords,
			formatDuration(d.TextRecall.TimeTaken))
	}
	return ""
}

func (m Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))
	b.WriteString("\n\n")
	b.WriteString(m.historyTable.View())
	b.WriteString("\n\n")
	if m.confirmClear {
		b.WriteString(cursorStyle.Render("Clear all results? y / n"))
	} else {
		b.WriteString(faintStyle.Render("up/down scroll · c clear all · esc back"))
	}
	return b.String()
}

// newHistoryTable builds the results table, newest first kept in stored
// order (chronological top to bottom).
func newHistoryTable(results []game.Result, width int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Game", Width: 20},
		{Title: "Score", Width: 7},
		{Title: "Details", Width: max(20, width-50)},
	}

	rows := make([]table.Row, 0, len(results))
	for _, r := range results {
		rows = append(rows, table.Row{
			r.Timestamp.Local().Format("02/01/2006 15:04"),
			r.GameType.Name(),
			fmt.Sprintf("%.1f%%", r.Score),
			strings.ReplaceAll(strings.TrimSpace(detailLines(r)), "\n", " · "),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return t
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// formatDuration renders a duration as seconds with one decimal.
func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
