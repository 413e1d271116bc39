// Package wordmem implements the word memory drill: words from a
// per-difficulty pool appear one at a time, then the player writes down
// every word they can remember in one free-text field.
package wordmem

import (
	"math/rand"
	"strings"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
	"github.com/dkotlyar/mindgym/internal/games/content"
)

// Phase is the internal progression of a word memory session.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhaseShowing
	PhaseRecall
)

// Game is one word memory session.
type Game struct {
	cfg   game.Config
	phase Phase

	words     []string
	wordIndex int
	wordTime  time.Duration

	input   string
	matched []string

	lastWordStart time.Time

	finished bool
	aborted  bool
	result   *game.Result
}

func init() {
	game.Register(game.TypeWordMemory, func(cfg game.Config) game.Game {
		return New(cfg)
	})
}

// New creates a word memory session. The stimulus list is drawn up front:
// the difficulty's pool, shuffled, truncated to the per-difficulty count.
func New(cfg game.Config) *Game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	pool := content.WordPool(cfg.Difficulty)
	words := make([]string, len(pool))
	copy(words, pool)
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if count := content.WordCount(cfg.Difficulty); len(words) > count {
		words = words[:count]
	}

	return &Game{
		cfg:      cfg,
		phase:    PhaseInstructions,
		words:    words,
		wordTime: displayTimeFor(cfg.Difficulty),
	}
}

// displayTimeFor returns the fixed per-word display duration for a tier.
func displayTimeFor(d game.Difficulty) time.Duration {
	switch d {
	case game.Easy:
		return 3000 * time.Millisecond
	case game.Hard:
		return 1500 * time.Millisecond
	default:
		return 2000 * time.Millisecond
	}
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
			g.lastWordStart = f.Now
			g.phase = PhaseShowing
		}

	case PhaseShowing:
		if f.Now.Sub(g.lastWordStart) >= g.wordTime {
			g.wordIndex++
			if g.wordIndex >= len(g.words) {
				g.phase = PhaseRecall
				return
			}
			g.lastWordStart = f.Now
		}

	case PhaseRecall:
		g.input = f.Text
		if f.Has(game.ActionConfirm) {
			g.finish()
		}
	}
}

// matchWords returns the distinct original words that appear among the
// user's tokens, case-insensitively. Typing the same word repeatedly does
// not inflate the count, so the score is capped by the list size.
func matchWords(original []string, input string) []string {
	typed := make(map[string]bool)
	for _, tok := range strings.Fields(input) {
		typed[strings.ToLower(tok)] = true
	}

	var matched []string
	for _, w := range original {
		if typed[strings.ToLower(w)] {
			matched = append(matched, w)
		}
	}
	return matched
}

// finish scores the recall and builds the result.
func (g *Game) finish() {
	g.matched = matchWords(g.words, g.input)

	score := 0.0
	if len(g.words) > 0 {
		score = float64(len(g.matched)) / float64(len(g.words)) * 100
	}

	g.result = &game.Result{
		GameType: game.TypeWordMemory,
		Score:    score,
		Details: game.Details{
			WordMemory: &game.WordMemoryDetails{
				WordsCorrect:  len(g.matched),
				OriginalWords: g.words,
			},
		},
		Timestamp: time.Now(),
	}
	g.finished = true
}

// Type implements game.Game.
func (g *Game) Type() game.Type { return game.TypeWordMemory }

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
	return g.phase == PhaseShowing && !g.finished && !g.aborted
}

// Phase returns the current internal phase.
func (g *Game) Phase() Phase { return g.phase }

// Words returns the stimulus list.
func (g *Game) Words() []string { return g.words }

// CurrentWord returns the word being displayed, or "" outside the showing
// phase.
func (g *Game) CurrentWord() string {
	if g.phase != PhaseShowing || g.wordIndex >= len(g.words) {
		return ""
	}
	return g.words[g.wordIndex]
}

// WordIndex returns the 0-based index of the word on display.
func (g *Game) WordIndex() int { return g.wordIndex }

// WordDisplayTime returns the fixed per-word display duration.
func (g *Game) WordDisplayTime() time.Duration { return g.wordTime }
