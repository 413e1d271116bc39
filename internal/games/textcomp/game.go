// Package textcomp implements the text comprehension drill: a passage is
// read at the player's own pace, followed by sequential multiple-choice
// questions with free back-and-forward navigation.
package textcomp

import (
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/games/content"
)

// Phase is the internal progression of a comprehension session.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhaseReading
	PhaseQuestions
)

// Game is one comprehension session.
type Game struct {
	cfg   game.Config
	phase Phase

	passage content.Passage
	current int
	// answers holds the selected option index per question, -1 when the
	// question has not been answered. Answers persist across navigation.
	answers []int

	finished bool
	aborted  bool
	result   *game.Result
}

func init() {
	game.Register(game.TypeTextComprehension, func(cfg game.Config) game.Game {
		return New(cfg)
	})
}

// New creates a comprehension session with the passage for the configured
// difficulty.
func New(cfg game.Config) *Game {
	return &Game{
		cfg:     cfg,
		phase:   PhaseInstructions,
		passage: content.ComprehensionPassage(cfg.Difficulty),
	}
}

// Update advances one frame. There is no timed phase; the player drives
// every transition.
func (g *Game) Update(f game.Frame) {
	if g.finished || g.aborted {
		return
	}
	if f.Has(game.ActionAbort) {
		g.aborted = true
		return
	}

	switch g.phase {
	case PhaseInstructions:
		if f.Has(game.ActionStart) {
			g.phase = PhaseReading
		}

	case PhaseReading:
		if f.Has(game.ActionNext) || f.Has(game.ActionConfirm) {
			g.answers = make([]int, len(g.passage.Questions))
			for i := range g.answers {
				g.answers[i] = -1
			}
			g.phase = PhaseQuestions
		}

	case PhaseQuestions:
		if g.current >= len(g.passage.Questions) {
			return
		}
		q := g.passage.Questions[g.current]
		if f.Option >= 0 && f.Option < len(q.Options) {
			g.answers[g.current] = f.Option
		}
		switch {
		case f.Has(game.ActionPrev) && g.current > 0:
			g.current--
		case f.Has(game.ActionNext) && g.current < len(g.passage.Questions)-1:
			g.current++
		case f.Has(game.ActionConfirm) && g.current == len(g.passage.Questions)-1:
			g.finish()
		}
	}
}

// finish scores the final per-index answers.
func (g *Game) finish() {
	correct := 0
	for i, q := range g.passage.Questions {
		if i < len(g.answers) && g.answers[i] == q.Correct {
			correct++
		}
	}

	score := 0.0
	if n := len(g.passage.Questions); n > 0 {
		score = float64(correct) / float64(n) * 100
	}

	g.result = &game.Result{
		GameType: game.TypeTextComprehension,
		Score:    score,
		Details: game.Details{
			TextComprehension: &game.TextComprehensionDetails{
				QuestionsCorrect: correct,
				TotalQuestions:   len(g.passage.Questions),
			},
		},
		Timestamp: time.Now(),
	}
	g.finished = true
}

// Type implements game.Game.
func (g *Game) Type() game.Type { return game.TypeTextComprehension }

// RunState implements game.Game.
func (g *Game) RunState() game.RunState {
	switch {
	case g.finished:
		return game.Finished
	case g.aborted:
		return game.Aborted
	default:
		return game.Playing
	}
}

// Result implements game.Game.
func (g *Game) Result() *game.Result {
	if !g.finished {
		return nil
	}
	return g.result
}

// NeedsRepaint implements game.Game. Nothing here is clock-driven.
func (g *Game) NeedsRepaint() bool { return false }

// Phase returns the current internal phase.
func (g *Game) Phase() Phase { return g.phase }

// Text returns the reading passage.
func (g *Game) Text() string { return g.passage.Text }

// QuestionCount returns how many questions the session has.
func (g *Game) QuestionCount() int { return len(g.passage.Questions) }

// CurrentQuestion returns the 0-based index of the active question.
func (g *Game) CurrentQuestion() int { return g.current }

// Question returns the question at index i.
func (g *Game) Question(i int) content.Question {
	return g.passage.Questions[i]
}

// Answer returns the selected option for question i, -1 when unanswered.
func (g *Game) Answer(i int) int {
	if i < 0 || i >= len(g.answers) {
		return -1
	}
	return g.answers[i]
}
