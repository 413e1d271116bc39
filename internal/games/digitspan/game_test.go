package digitspan

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

func frameAt(now time.Time) game.Frame {
	return game.NewFrame(now)
}

func TestGenerateNumberLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for digits := 1; digits <= 20; digits++ {
		for i := 0; i < 50; i++ {
			n := generateNumber(rng, digits)
			if len(n) != digits {
				t.Fatalf("generateNumber(%d) produced %q with length %d", digits, n, len(n))
			}
			if digits > 1 && n[0] == '0' {
				t.Fatalf("generateNumber(%d) produced leading zero: %q", digits, n)
			}
		}
	}
}

func TestDigitCountRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	ranges := []struct {
		difficulty game.Difficulty
		min, max   int
	}{
		{game.Easy, 1, 6},
		{game.Medium, 7, 10},
		{game.Hard, 11, 20},
	}

	for _, r := range ranges {
		for i := 0; i < 200; i++ {
			n := digitCountFor(rng, r.difficulty)
			if n < r.min || n > r.max {
				t.Errorf("digitCountFor(%s) = %d, want %d..%d", r.difficulty, n, r.min, r.max)
			}
		}
	}
}

func TestRoundAccuracy(t *testing.T) {
	cases := []struct {
		expected, actual string
		want             float64
	}{
		{"12345", "12345", 100},
		{"12345", " 12345 ", 100}, // whitespace trimmed
		{"123", "456", 0},
		{"123", "", 0},
		{"123", "124", 2.0 / 3.0 * 100},
		{"12", "1234", 2.0 / 4.0 * 100}, // longer answer divides by its length
		{"", "123", 0},
	}

	for _, c := range cases {
		got := roundAccuracy(c.expected, c.actual)
		if diff := got - c.want; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("roundAccuracy(%q, %q) = %f, want %f", c.expected, c.actual, got, c.want)
		}
	}
}

func TestFullSessionPerfectScore(t *testing.T) {
	cfg := game.Config{
		Difficulty: game.Medium,
		Duration:   time.Second,
		Rounds:     10,
	}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := frameAt(now)
	start.Set(game.ActionStart)
	g.Update(start)

	if g.Phase() != PhaseShowing {
		t.Fatalf("expected showing phase after start, got %v", g.Phase())
	}

	for round := 1; round <= 10; round++ {
		// Display expires.
		now = now.Add(cfg.Duration)
		g.Update(frameAt(now))
		if g.Phase() != PhaseWriting {
			t.Fatalf("round %d: expected writing phase, got %v", round, g.Phase())
		}

		answer := frameAt(now)
		answer.Text = g.Number()
		answer.Set(game.ActionConfirm)
		g.Update(answer)
	}

	if g.RunState() != game.Finished {
		t.Fatalf("expected finished after %d rounds, got %v", 10, g.RunState())
	}

	r := g.Result()
	if r == nil {
		t.Fatal("Result() returned nil after finishing")
	}
	if r.Score != 100 {
		t.Errorf("perfect session score = %f, want 100", r.Score)
	}
	if r.Details.ReadingSpeed == nil {
		t.Fatal("result missing reading speed details")
	}
	if r.Details.ReadingSpeed.RoundsCorrect != 10 {
		t.Errorf("RoundsCorrect = %d, want 10", r.Details.ReadingSpeed.RoundsCorrect)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("result failed validation: %v", err)
	}
}

func TestTrainingProgressionEasy(t *testing.T) {
	cfg := game.Config{
		Difficulty: game.Easy,
		Duration:   time.Second,
		Rounds:     10,
		Training:   true,
	}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := frameAt(now)
	start.Set(game.ActionStart)
	g.Update(start)

	base := g.DigitCount()

	for round := 1; round < 10; round++ {
		now = now.Add(cfg.Duration)
		g.Update(frameAt(now))

		confirm := frameAt(now)
		confirm.Set(game.ActionConfirm)
		g.Update(confirm)

		// Easy training adds one digit per round.
		want := base + round
		if g.DigitCount() != want {
			t.Fatalf("round %d digit count = %d, want %d", g.Round(), g.DigitCount(), want)
		}
	}
}

func TestAbortDiscardsSession(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium, Duration: time.Second, Rounds: 10})

	now := time.Unix(0, 0)
	start := frameAt(now)
	start.Set(game.ActionStart)
	g.Update(start)

	abort := frameAt(now)
	abort.Set(game.ActionAbort)
	g.Update(abort)

	if g.RunState() != game.Aborted {
		t.Errorf("expected aborted state, got %v", g.RunState())
	}
	if g.Result() != nil {
		t.Error("aborted session must not produce a result")
	}
}

func TestRoundsDefaultToTen(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium, Duration: time.Second, Rounds: 7})
	if g.TotalRounds() != 10 {
		t.Errorf("TotalRounds = %d, want 10 for unsupported round count", g.TotalRounds())
	}
}

func TestResultNilWhilePlaying(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium, Duration: time.Second, Rounds: 10})
	if g.Result() != nil {
		t.Error("Result() must be nil before the session finishes")
	}
	if g.RunState() != game.Playing {
		t.Errorf("fresh session state = %v, want playing", g.RunState())
	}
}
