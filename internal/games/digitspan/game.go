// Package digitspan implements the numeric memory drill: each round shows a
// single number for a configured time, the player types it back, and the
// session score is the mean accuracy over all rounds. Digit counts come from
// a per-difficulty range, or grow gradually in training mode.
package digitspan

import (
	"math/rand"
	"strings"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

// Phase is the internal progression of a digit-span session.
type Phase int

const (
	PhaseInstructions Phase = iota
	PhaseShowing
	PhaseWriting
)

// RoundResult records one completed round for the results view.
type RoundResult struct {
	Number   string
	Answer   string
	Correct  bool
	Accuracy float64
}

// Game is one digit-span session.
type Game struct {
	cfg   game.Config
	rng   *rand.Rand
	phase Phase

	number         string
	input          string
	digitCount     int
	baseDigitCount int
	currentRound   int
	totalRounds    int

	rounds  []RoundResult
	correct int

	showStart    time.Time
	overallStart time.Time

	finished bool
	aborted  bool
	result   *game.Result
}

func init() {
	game.Register(game.TypeReadingSpeed, func(cfg game.Config) game.Game {
		return New(cfg)
	})
}

// New creates a digit-span session. Rounds default to 10 when the config
// carries an unsupported value.
func New(cfg game.Config) *Game {
	rounds := cfg.Rounds
	switch rounds {
	case 10, 20, 30:
	default:
		rounds = 10
	}
	return &Game{
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:        PhaseInstructions,
		currentRound: 1,
		totalRounds:  rounds,
	}
}

// digitCountFor rolls a digit count from the difficulty's documented range:
// Easy 1-6, Medium 7-10, Hard 11-20.
func digitCountFor(rng *rand.Rand, d game.Difficulty) int {
	switch d {
	case game.Easy:
		return 1 + rng.Intn(6)
	case game.Hard:
		return 11 + rng.Intn(10)
	default:
		return 7 + rng.Intn(4)
	}
}

// generateNumber builds a random number string of the given length. The
// first digit is never zero unless the length is one.
func generateNumber(rng *rand.Rand, digits int) string {
	if digits < 1 {
		digits = 1
	}
	var b strings.Builder
	if digits > 1 {
		b.WriteByte(byte('1' + rng.Intn(9)))
	} else {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	for i := 1; i < digits; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

// digitCountForRound decides the digit count of round (1-based). In normal
// mode every round re-rolls from the difficulty range; in training mode the
// count grows from the base: +1 per round on Easy, +1 every two rounds on
// Medium, and +1 every three rounds starting at round 10 on Hard.
func (g *Game) digitCountForRound(round int) int {
	if !g.cfg.Training {
		return digitCountFor(g.rng, g.cfg.Difficulty)
	}
	switch g.cfg.Difficulty {
	case game.Easy:
		return g.baseDigitCount + (round - 1)
	case game.Hard:
		if round >= 10 {
			return g.baseDigitCount + (round-10)/3
		}
		return g.baseDigitCount
	default:
		return g.baseDigitCount + (round-1)/2
	}
}

// roundAccuracy scores one answer: 100 on exact match, otherwise the count
// of positionally matching characters over the longer of the two strings.
// An empty expected string scores 0.
func roundAccuracy(expected, actual string) float64 {
	expected = strings.TrimSpace(expected)
	actual = strings.TrimSpace(actual)

	if expected == "" {
		return 0
	}
	if expected == actual {
		return 100
	}

	e := []rune(expected)
	a := []rune(actual)
	maxLen := len(e)
	if len(a) > maxLen {
		maxLen = len(a)
	}

	matches := 0
	for i := 0; i < len(e) && i < len(a); i++ {
		if e[i] == a[i] {
			matches++
		}
	}
	return float64(matches) / float64(maxLen) * 100
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
			g.baseDigitCount = digitCountFor(g.rng, g.cfg.Difficulty)
			g.digitCount = g.baseDigitCount
			g.number = generateNumber(g.rng, g.digitCount)
			g.showStart = f.Now
			g.overallStart = f.Now
			g.phase = PhaseShowing
		}

	case PhaseShowing:
		if f.Now.Sub(g.showStart) >= g.cfg.Duration {
			g.input = ""
			g.phase = PhaseWriting
		}

	case PhaseWriting:
		g.input = f.Text
		if f.Has(game.ActionConfirm) {
			g.nextRound(f.Now)
		}
	}
}

// nextRound scores the current answer and either advances or finishes.
func (g *Game) nextRound(now time.Time) {
	acc := roundAccuracy(g.number, g.input)
	exact := strings.TrimSpace(g.number) == strings.TrimSpace(g.input)
	if exact {
		g.correct++
	}
	g.rounds = append(g.rounds, RoundResult{
		Number:   g.number,
		Answer:   g.input,
		Correct:  exact,
		Accuracy: acc,
	})
	g.input = ""

	if g.currentRound >= g.totalRounds {
		g.finish(now)
		return
	}

	g.currentRound++
	g.digitCount = g.digitCountForRound(g.currentRound)
	g.number = generateNumber(g.rng, g.digitCount)
	g.showStart = now
	g.phase = PhaseShowing
}

// finish computes the session score as the mean of per-round accuracies.
func (g *Game) finish(now time.Time) {
	var total float64
	for _, r := range g.rounds {
		total += r.Accuracy
	}
	score := 0.0
	if len(g.rounds) > 0 {
		score = total / float64(len(g.rounds))
	}

	g.result = &game.Result{
		GameType: game.TypeReadingSpeed,
		Score:    score,
		Details: game.Details{
			ReadingSpeed: &game.ReadingSpeedDetails{
				RoundsCorrect: g.correct,
				TotalRounds:   g.totalRounds,
				TimeTaken:     now.Sub(g.overallStart),
			},
		},
		Timestamp: time.Now(),
	}
	g.finished = true
}

// Type implements game.Game.
func (g *Game) Type() game.Type { return game.TypeReadingSpeed }

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

// Number returns the number currently being shown or recalled.
func (g *Game) Number() string { return g.number }

// DigitCount returns the length of the current number.
func (g *Game) DigitCount() int { return g.digitCount }

// Round returns the 1-based current round.
func (g *Game) Round() int { return g.currentRound }

// TotalRounds returns the configured round count.
func (g *Game) TotalRounds() int { return g.totalRounds }

// CorrectSoFar returns how many rounds were answered exactly right.
func (g *Game) CorrectSoFar() int { return g.correct }

// Rounds returns the completed round records.
func (g *Game) Rounds() []RoundResult { return g.rounds }

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
