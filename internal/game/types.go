// Package game defines the shared vocabulary of the trainer: game types,
// difficulties, per-session configuration, run states and results. Game
// implementations live under internal/games and register themselves with
// the factory registry in this package.
package game

import (
	"time"
)

// Type identifies one of the built-in mini-games. It keys configs and
// stored results, so the string values are part of the persisted format.
type Type string

const (
	TypeReadingSpeed      Type = "reading_speed"
	TypeWordMemory        Type = "word_memory"
	TypeTextComprehension Type = "text_comprehension"
	TypeINumbs            Type = "inumbs"
	TypeTextRecall        Type = "text_recall"
)

// AllTypes returns every game type in menu order.
func AllTypes() []Type {
	return []Type{
		TypeReadingSpeed,
		TypeWordMemory,
		TypeTextComprehension,
		TypeINumbs,
		TypeTextRecall,
	}
}

// Valid reports whether t is one of the known game types.
func (t Type) Valid() bool {
	switch t {
	case TypeReadingSpeed, TypeWordMemory, TypeTextComprehension, TypeINumbs, TypeTextRecall:
		return true
	}
	return false
}

// Name returns the human-readable title for the game.
func (t Type) Name() string {
	switch t {
	case TypeReadingSpeed:
		return "Numeric Memory"
	case TypeWordMemory:
		return "Word Memory"
	case TypeTextComprehension:
		return "Text Comprehension"
	case TypeINumbs:
		return "iNumbs"
	case TypeTextRecall:
		return "Text Recall"
	default:
		return string(t)
	}
}

// Description returns the one-line menu description for the game.
func (t Type) Description() string {
	switch t {
	case TypeReadingSpeed:
		return "Memorize numbers and type them back"
	case TypeWordMemory:
		return "Memorize the words as they appear, then write them down"
	case TypeTextComprehension:
		return "Read the text and answer the questions"
	case TypeINumbs:
		return "Memorize number sequences, optionally fill in the boxes"
	case TypeTextRecall:
		return "Read a passage against the clock and rewrite it from memory"
	default:
		return ""
	}
}

// Difficulty is the coarse difficulty tier shared by all games.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns the difficulty tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// Name returns the display name of the difficulty tier.
func (d Difficulty) Name() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// Config is the per-session configuration for one game. It is fixed once
// play starts; games copy what they need at construction time.
type Config struct {
	Difficulty Difficulty    `json:"difficulty" yaml:"difficulty"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	ItemCount  int           `json:"item_count" yaml:"item_count"`
	// FillBoxes controls whether iNumbs presents input boxes after the
	// showing phase. When false the game scores against blank answers.
	FillBoxes bool `json:"fill_boxes" yaml:"fill_boxes"`
	// Rounds is the digit-span round count. Valid values are 10, 20, 30.
	Rounds int `json:"rounds,omitempty" yaml:"rounds"`
	// Training switches digit-span to the gradual-progression mode.
	Training bool `json:"training,omitempty" yaml:"training"`
}

// RunState is the externally observable status of a running game instance.
// It is coarser than the per-game phase: the controller only needs to know
// whether to keep forwarding frames, collect a result, or drop the game.
type RunState int

const (
	Playing RunState = iota
	Finished
	Aborted
)

func (s RunState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}
