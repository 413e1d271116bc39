package textcomp

import (
	"testing"
	"time"

	"github.com/dkotlyar/mindgym/internal/game"
)

// driveToQuestions starts the session and skips past the reading phase.
func driveToQuestions(t *testing.T, g *Game) {
	t.Helper()

	now := time.Unix(0, 0)
	start := game.NewFrame(now)
	start.Set(game.ActionStart)
	g.Update(start)

	next := game.NewFrame(now)
	next.Set(game.ActionNext)
	g.Update(next)

	if g.Phase() != PhaseQuestions {
		t.Fatalf("expected questions phase, got %v", g.Phase())
	}
}

func pick(g *Game, option int) {
	f := game.NewFrame(time.Unix(0, 0))
	f.Option = option
	g.Update(f)
}

func move(g *Game, a game.Action) {
	f := game.NewFrame(time.Unix(0, 0))
	f.Set(a)
	g.Update(f)
}

func TestAllCorrectScoresHundred(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium})
	driveToQuestions(t, g)

	for i := 0; i < g.QuestionCount(); i++ {
		pick(g, g.Question(i).Correct)
		if i < g.QuestionCount()-1 {
			move(g, game.ActionNext)
		}
	}
	move(g, game.ActionConfirm)

	if g.RunState() != game.Finished {
		t.Fatalf("expected finished, got %v", g.RunState())
	}
	r := g.Result()
	if r.Score != 100 {
		t.Errorf("all-correct score = %f, want 100", r.Score)
	}
	if r.Details.TextComprehension.QuestionsCorrect != g.QuestionCount() {
		t.Errorf("QuestionsCorrect = %d, want %d",
			r.Details.TextComprehension.QuestionsCorrect, g.QuestionCount())
	}
	if err := r.Validate(); err != nil {
		t.Errorf("result failed validation: %v", err)
	}
}

func TestAnswersSurviveNavigation(t *testing.T) {
	g := New(game.Config{Difficulty: game.Easy})
	driveToQuestions(t, g)
	if g.QuestionCount() < 2 {
		t.Skip("passage has fewer than two questions")
	}

	pick(g, 1)
	move(g, game.ActionNext)
	pick(g, 0)
	move(g, game.ActionPrev)

	if g.CurrentQuestion() != 0 {
		t.Fatalf("expected to be back at question 0, got %d", g.CurrentQuestion())
	}
	if g.Answer(0) != 1 {
		t.Errorf("answer to question 0 = %d, want 1 after navigating away and back", g.Answer(0))
	}
	if g.Answer(1) != 0 {
		t.Errorf("answer to question 1 = %d, want 0", g.Answer(1))
	}
}

func TestReansweringOverwrites(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium})
	driveToQuestions(t, g)

	pick(g, 0)
	pick(g, 1)
	if g.Answer(0) != 1 {
		t.Errorf("answer = %d, want the later pick 1", g.Answer(0))
	}
}

func TestConfirmOnlyFinishesOnLastQuestion(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium})
	driveToQuestions(t, g)
	if g.QuestionCount() < 2 {
		t.Skip("passage has fewer than two questions")
	}

	// Confirm on a non-final question is ignored.
	move(g, game.ActionConfirm)
	if g.RunState() != game.Playing {
		t.Fatalf("confirm on first question finished the session")
	}

	for i := 0; i < g.QuestionCount()-1; i++ {
		move(g, game.ActionNext)
	}
	move(g, game.ActionConfirm)
	if g.RunState() != game.Finished {
		t.Errorf("confirm on last question did not finish, state = %v", g.RunState())
	}
}

func TestUnansweredQuestionsScoreZero(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium})
	driveToQuestions(t, g)

	for i := 0; i < g.QuestionCount()-1; i++ {
		move(g, game.ActionNext)
	}
	move(g, game.ActionConfirm)

	r := g.Result()
	if r.Score != 0 {
		t.Errorf("unanswered session score = %f, want 0", r.Score)
	}
}

func TestNeverNeedsRepaint(t *testing.T) {
	g := New(game.Config{Difficulty: game.Medium})
	if g.NeedsRepaint() {
		t.Error("comprehension has no timed phase and must not request repaints")
	}
}
