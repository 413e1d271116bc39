package textrecall

import (
	"strings"
	"testing"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

func driveToWriting(t *testing.T, g *Game, d time.Duration) time.Time {
	t.Helper()

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	if g.Phase() != PhaseReading {
		t.Fatalf("expected reading phase after start, got %v", g.Phase())
	}

	now = now.Add(d)
	g.Update(game.NewFrame(now))
	if g.Phase() != PhaseWriting {
		t.Fatalf("expected writing phase after %v, got %v", d, g.Phase())
	}
	return now
}

func TestRecallAccuracy(t *testing.T) {
	cases := []struct {
		original, typed string
		matches         int
		score           float64
	}{
		{"the quick brown fox", "the quick brown fox", 4, 100},
		{"the quick brown fox", "The QUICK Brown FOX", 4, 100},
		{"the quick brown fox", "the quick", 2, 50},
		{"the quick", "quick the", 0, 0},
		{"one two", "one two three four", 2, 50}, // extra words dilute
		{"", "", 0, 0},
	}

	for _, c := range cases {
		matches, _, score := recallAccuracy(c.original, c.typed)
		if matches != c.matches {
			t.Errorf("recallAccuracy(%q, %q) matches = %d, want %d",
				c.original, c.typed, matches, c.matches)
		}
		if diff := score - c.score; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("recallAccuracy(%q, %q) score = %f, want %f",
				c.original, c.typed, score, c.score)
		}
	}
}

func TestPerfectRecall(t *testing.T) {
	cfg := game.Config{Difficulty: game.Easy, Duration: 30 * time.Second}
	g := New(cfg)
	now := driveToWriting(t, g, cfg.Duration)

	confirm := game.NewFrame(now)
	confirm.Text = g.Text()
	confirm.Set(game.ActionConfirm)
	g.Update(confirm)

	if g.RunState() != game.Finished {
		t.Fatalf("expected finished, got %v", g.RunState())
	}
	r := g.Result()
	if r.Score != 100 {
		t.Errorf("perfect recall score = %f, want 100", r.Score)
	}
	wordCount := len(strings.Fields(g.Text()))
	if r.Details.TextRecall.TotalWords != wordCount {
		t.Errorf("TotalWords = %d, want %d", r.Details.TextRecall.TotalWords, wordCount)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("result failed validation: %v", err)
	}
}

func TestEmptyRecallScoresZero(t *testing.T) {
	cfg := game.Config{Difficulty: game.Medium, Duration: time.Second}
	g := New(cfg)
	now := driveToWriting(t, g, cfg.Duration)

	confirm := game.NewFrame(now)
	confirm.Set(game.ActionConfirm)
	g.Update(confirm)

	if g.Result().Score != 0 {
		t.Errorf("empty recall score = %f, want 0", g.Result().Score)
	}
}

func TestRemainingDuringReading(t *testing.T) {
	cfg := game.Config{Difficulty: game.Medium, Duration: time.Minute}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	if got := g.Remaining(now.Add(20 * time.Second)); got != 40*time.Second {
		t.Errorf("Remaining after 20s = %v, want 40s", got)
	}
	if got := g.Remaining(now.Add(2 * time.Minute)); got != 0 {
		t.Errorf("Remaining past expiry = %v, want 0", got)
	}
}
