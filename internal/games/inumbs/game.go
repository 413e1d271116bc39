// Package inumbs implements the iNumbs drill: a fixed set of two-digit
// numbers is shown all at once for a configured duration, then the player
// optionally fills one box per number from memory.
package inumbs

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

// Phase is the internal progression of an iNumbs session.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhaseShowing
	PhaseFilling
)

// Game is one iNumbs session.
type Game struct {
	cfg   game.Config
	rng   *rand.Rand
	phase Phase

	numbers []string
	inputs  []string
	total   int

	showStart    time.Time
	overallStart time.Time

	correct  int
	finished bool
	aborted  bool
	result   *game.Result
}

func init() {
	game.Register(game.TypeINumbs, func(cfg game.Config) game.Game {
		return New(cfg)
	})
}

// New creates an iNumbs session from the given config. Stimulus generation
// is deferred until the player starts.
func New(cfg game.Config) *Game {
	total := cfg.ItemCount
	if total < 1 {
		total = 1
	}
	return &Game{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		phase: PhaseInstructions,
		total: total,
	}
}

// generateNumbers produces count random two-digit strings (00-99). The
// leading zero is significant when scoring.
func generateNumbers(rng *rand.Rand, count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, fmt.Sprintf("%02d", rng.Intn(100)))
	}
	return out
}

// Update advances one frame. All waiting is an elapsed-time check against
// f.Now; nothing blocks.
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
			g.numbers = generateNumbers(g.rng, g.total)
			g.inputs = make([]string, g.total)
			g.showStart = f.Now
			g.overallStart = f.Now
			g.phase = PhaseShowing
		}

	case PhaseShowing:
		if f.Now.Sub(g.showStart) >= g.cfg.Duration {
			if g.cfg.FillBoxes {
				g.phase = PhaseFilling
			} else {
				// No recall phase: score against the blank inputs.
				g.finish(f.Now)
			}
		}

	case PhaseFilling:
		// Mirror the host's box contents every frame, like reading the
		// widget state directly.
		copy(g.inputs, f.Fields)
		if f.Has(game.ActionConfirm) {
			g.finish(f.Now)
		}
	}
}

// finish scores the inputs and builds the result exactly once.
func (g *Game) finish(now time.Time) {
	correct := 0
	for i, expected := range g.numbers {
		if i < len(g.inputs) && strings.TrimSpace(g.inputs[i]) == strings.TrimSpace(expected) {
			correct++
		}
	}
	g.correct = correct

	score := 0.0
	if g.total > 0 {
		score = float64(correct) / float64(g.total) * 100
	}

	g.result = &game.Result{
		GameType: game.TypeINumbs,
		Score:    score,
		Details: game.Details{
			INumbs: &game.INumbsDetails{
				Correct:   correct,
				Total:     g.total,
				TimeTaken: now.Sub(g.overallStart),
			},
		},
		Timestamp: time.Now(),
	}
	g.finished = true
}

// Type implements game.Game.
func (g *Game) Type() game.Type { return game.TypeINumbs }

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

// Result implements game.Game. It returns nil until the session finishes.
func (g *Game) Result() *game.Result {
	if !g.finished {
		return nil
	}
	return g.result
}

// NeedsRepaint implements game.Game: only the countdown display needs a
// continuous redraw.
func (g *Game) NeedsRepaint() bool {
	return g.phase == PhaseShowing && !g.finished && !g.aborted
}

// Phase returns the current internal phase, for the view layer.
func (g *Game) Phase() Phase { return g.phase }

// Numbers returns the generated stimulus.
func (g *Game) Numbers() []string { return g.numbers }

// Total returns the number of slots in this session.
func (g *Game) Total() int { return g.total }

// Remaining reports how much showing time is left at the given instant.
func (g *Game) Remaining(now time.Time) time.Duration {
	if g.phase != PhaseShowing {
		return 0
	}
	left := g.cfg.Duration - now.Sub(g.showStart)
	if left < 0 {
		return 0
	}
	return left
}
