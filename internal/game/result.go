package game

import (
	"fmt"
	"time"
)

// Result records one completed attempt. It is created exactly once, when a
// game transitions to Finished, and is immutable afterward.
type Result struct {
	GameType  Type      `json:"game_type"`
	Score     float64   `json:"score"`
	Details   Details   `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// Details is a tagged union of per-game payloads. Exactly one variant
// pointer is non-nil, and it must match the result's GameType.
type Details struct {
	ReadingSpeed      *ReadingSpeedDetails      `json:"reading_speed,omitempty"`
	WordMemory        *WordMemoryDetails        `json:"word_memory,omitempty"`
	TextComprehension *TextComprehensionDetails `json:"text_comprehension,omitempty"`
	INumbs            *INumbsDetails            `json:"inumbs,omitempty"`
	TextRecall        *TextRecallDetails        `json:"text_recall,omitempty"`
}

// ReadingSpeedDetails is the digit-span payload: exact-match rounds out of
// the total, and how long the whole run took.
type ReadingSpeedDetails struct {
	RoundsCorrect int           `json:"rounds_correct"`
	TotalRounds   int           `json:"total_rounds"`
	TimeTaken     time.Duration `json:"time_taken"`
}

// WordMemoryDetails keeps the original stimulus list so the results view
// can show which words were missed.
type WordMemoryDetails struct {
	WordsCorrect  int      `json:"words_correct"`
	OriginalWords []string `json:"original_words"`
}

// TextComprehensionDetails counts correctly answered questions.
type TextComprehensionDetails struct {
	QuestionsCorrect int `json:"questions_correct"`
	TotalQuestions   int `json:"total_questions"`
}

// INumbsDetails counts correctly recalled slots.
type INumbsDetails struct {
	Correct   int           `json:"correct"`
	Total     int           `json:"total"`
	TimeTaken time.Duration `json:"time_taken"`
}

// TextRecallDetails counts positionally matched words against the passage.
type TextRecallDetails struct {
	WordsCorrect int           `json:"words_correct"`
	TotalWords   int           `json:"total_words"`
	TimeTaken    time.Duration `json:"time_taken"`
}

// Tag returns the game type the populated variant belongs to, or "" when no
// variant is set.
func (d Details) Tag() Type {
	switch {
	case d.ReadingSpeed != nil:
		return TypeReadingSpeed
	case d.WordMemory != nil:
		return TypeWordMemory
	case d.TextComprehension != nil:
		return TypeTextComprehension
	case d.INumbs != nil:
		return TypeINumbs
	case d.TextRecall != nil:
		return TypeTextRecall
	}
	return ""
}

// Validate checks the result invariants: a known game type, a details
// variant matching it, and a score within [0, 100].
func (r Result) Validate() error {
	if !r.GameType.Valid() {
		return fmt.Errorf("result: unknown game type %q", r.GameType)
	}
	if tag := r.Details.Tag(); tag != r.GameType {
		return fmt.Errorf("result: details tag %q does not match game type %q", tag, r.GameType)
	}
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("result: score %.2f out of range", r.Score)
	}
	return nil
}

// Stats aggregates the stored results of a single game type.
type Stats struct {
	TotalGames int
	BestScore  float64
}
