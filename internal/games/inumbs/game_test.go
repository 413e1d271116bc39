package inumbs

import (
	"math/rand"
	"testing"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

func TestGenerateNumbersFormat(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	nums := generateNumbers(rng, 100)

	if len(nums) != 100 {
		t.Fatalf("generated %d numbers, want 100", len(nums))
	}
	for _, n := range nums {
		if len(n) != 2 {
			t.Errorf("number %q is not two characters", n)
		}
		for _, c := range n {
			if c < '0' || c > '9' {
				t.Errorf("number %q contains non-digit", n)
			}
		}
	}
}

func TestNoFillFinishesAfterShowing(t *testing.T) {
	cfg := game.Config{
		Difficulty: game.Medium,
		Duration:   time.Second,
		ItemCount:  3,
		FillBoxes:  false,
	}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	if g.Phase() != PhaseShowing {
		t.Fatalf("expected showing phase, got %v", g.Phase())
	}
	if len(g.Numbers()) != 3 {
		t.Fatalf("generated %d numbers, want 3", len(g.Numbers()))
	}

	// Still showing just before expiry.
	g.Update(game.NewFrame(now.Add(999 * time.Millisecond)))
	if g.RunState() != game.Playing {
		t.Fatalf("expected playing before the duration elapses, got %v", g.RunState())
	}

	// Without boxes the session scores its blank answers and finishes.
	g.Update(game.NewFrame(now.Add(time.Second)))
	if g.RunState() != game.Finished {
		t.Fatalf("expected finished after showing, got %v", g.RunState())
	}

	r := g.Result()
	if r == nil {
		t.Fatal("Result() returned nil after finishing")
	}
	if r.Score != 0 {
		t.Errorf("blank answers scored %f, want 0", r.Score)
	}
	if r.Details.INumbs.Total != 3 {
		t.Errorf("Total = %d, want 3", r.Details.INumbs.Total)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("result failed validation: %v", err)
	}
}

func TestFillBoxesScoring(t *testing.T) {
	cfg := game.Config{
		Difficulty: game.Medium,
		Duration:   time.Second,
		ItemCount:  4,
		FillBoxes:  true,
	}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	now = now.Add(time.Second)
	g.Update(game.NewFrame(now))
	if g.Phase() != PhaseFilling {
		t.Fatalf("expected filling phase, got %v", g.Phase())
	}

	// Three right, one wrong.
	fields := make([]string, 4)
	copy(fields, g.Numbers())
	fields[3] = "xx"

	confirm := game.NewFrame(now)
	confirm.Fields = fields
	confirm.Set(game.ActionConfirm)
	g.Update(confirm)

	r := g.Result()
	if r == nil {
		t.Fatal("Result() returned nil after finishing")
	}
	if r.Details.INumbs.Correct != 3 {
		t.Errorf("Correct = %d, want 3", r.Details.INumbs.Correct)
	}
	if r.Score != 75 {
		t.Errorf("score = %f, want 75", r.Score)
	}
}

func TestAnswerWhitespaceTrimmed(t *testing.T) {
	cfg := game.Config{
		Difficulty: game.Medium,
		Duration:   time.Second,
		ItemCount:  1,
		FillBoxes:  true,
	}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	now = now.Add(time.Second)
	g.Update(game.NewFrame(now))

	confirm := game.NewFrame(now)
	confirm.Fields = []string{" " + g.Numbers()[0] + " "}
	confirm.Set(game.ActionConfirm)
	g.Update(confirm)

	if g.Result().Score != 100 {
		t.Errorf("padded answer scored %f, want 100", g.Result().Score)
	}
}

func TestRemainingCountsDown(t *testing.T) {
	cfg := game.Config{
		Difficulty: game.Medium,
		Duration:   10 * time.Second,
		ItemCount:  2,
		FillBoxes:  true,
	}
	g := New(cfg)

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	if got := g.Remaining(now.Add(3 * time.Second)); got != 7*time.Second {
		t.Errorf("Remaining after 3s = %v, want 7s", got)
	}
	if got := g.Remaining(now.Add(time.Minute)); got != 0 {
		t.Errorf("Remaining past expiry = %v, want 0", got)
	}
}
