// Package textrecall implements the reading speed drill: a passage is shown
// for a configured duration, then the player rewrites it from memory and is
// scored on positionally aligned words.
package textrecall

import (
	"math/rand"
	"strings"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/games/content"
)

// Phase is the internal progression of a text recall session.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhaseReading
	PhaseWriting
)

// Game is one text recall session.
type Game struct {
	cfg   game.Config
	phase Phase

	text  string
	input string

	readStart    time.Time
	overallStart time.Time

	finished bool
	aborted  bool
	result   *game.Result
}

func init() {
	game.Register(game.TypeTextRecall, func(cfg game.Config) game.Game {
		return New(cfg)
	})
}

// New creates a text recall session with a passage picked at random from
// the difficulty's pool.
func New(cfg game.Config) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	texts := content.RecallTexts(cfg.Difficulty)
	return &Game{
		cfg:   cfg,
		phase: PhaseInstructions,
		text:  texts[rng.Intn(len(texts))],
	}
}

// recallAccuracy counts case-insensitive positional word matches between
// the original passage and the typed text, over the longer word count.
func recallAccuracy(original, typed string) (matches, totalWords int, score float64) {
	orig := strings.Fields(strings.ToLower(original))
	got := strings.Fields(strings.ToLower(typed))

	maxLen := len(orig)
	if len(got) > maxLen {
		maxLen = len(got)
	}
	if maxLen == 0 {
		return 0, 0, 0
	}

	for i := 0; i < len(orig) && i < len(got); i++ {
		if orig[i] == got[i] {
			matches++
		}
	}
	return matches, len(orig), float64(matches) / float64(maxLen) * 100
}

// Update advances one frame.
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
			g.readStart = f.Now
			g.overallStart = f.Now
			g.phase = PhaseReading
		}

	case PhaseReading:
		if f.Now.Sub(g.readStart) >= g.cfg.Duration {
			g.phase = PhaseWriting
		}

	case PhaseWriting:
		g.input = f.Text
		if f.Has(game.ActionConfirm) {
			g.finish(f.Now)
		}
	}
}

// finish scores the typed text and builds the result.
func (g *Game) finish(now time.Time) {
	matches, totalWords, score := recallAccuracy(g.text, g.input)

	g.result = &game.Result{
		GameType: game.TypeTextRecall,
		Score:    score,
		Details: game.Details{
			TextRecall: &game.TextRecallDetails{
				WordsCorrect: matches,
				TotalWords:   totalWords,
				TimeTaken:    now.Sub(g.overallStart),
			},
		},
		Timestamp: time.Now(),
	}
	g.finished = true
}

// Type implements game.Game.
func (g *Game) Type() game.Type { return game.TypeTextRecall }

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

// NeedsRepaint implements game.Game.
func (g *Game) NeedsRepaint() bool {
	return g.phase == PhaseReading && !g.finished && !g.aborted
}

// Phase returns the current internal phase.
func (g *Game) Phase() Phase { return g.phase }

// Text returns the passage to memorize.
func (g *Game) Text() string { return g.text }

// Remaining reports how much reading time is left at the given instant.
func (g *Game) Remaining(now time.Time) time.Duration {
	if g.phase != PhaseReading {
		return 0
	}
	left := g.cfg.Duration - now.Sub(g.readStart)
	if left < 0 {
		return 0
	}
	return left
}
