// Package content holds the built-in stimulus material: word pools for the
// word memory game, passages with comprehension questions, and passages for
// the recall game. Everything is keyed by difficulty tier.
package content

import "github.com/dkotlyar/mindgym/internal/game"

// WordPool returns the word pool for a difficulty tier. The pool is the
// candidate set; the game shuffles it and truncates to WordCount.
func WordPool(d game.Difficulty) []string {
	switch d {
	case game.Easy:
		return []string{
			"house", "dog", "sun", "table", "book", "water", "fire", "tree",
			"flower", "sky", "sea", "mountain", "river", "stone", "light", "night",
		}
	case game.Hard:
		return []string{
			"epistemology", "neuroplasticity", "phenomenology", "hermeneutics",
			"paradigm", "metamorphosis", "episodic", "chronological",
			"methodology", "taxonomy",
		}
	default:
		return []string{
			"computer", "telephone", "automobile", "library", "hospital",
			"university", "restaurant", "supermarket", "pharmacy", "airport",
			"station", "office",
		}
	}
}

// WordCount returns how many words the word memory game shows per session
// at a difficulty tier.
func WordCount(d game.Difficulty) int {
	switch d {
	case game.Easy:
		return 8
	case game.Hard:
		return 16
	default:
		return 12
	}
}

// Question is one multiple-choice comprehension question with exactly one
// correct option index.
type Question struct {
	Prompt  string
	Options []string
	Correct int
}

// Passage is a reading text with its comprehension questions.
type Passage struct {
	Text      string
	Questions []Question
}

// ComprehensionPassage returns the reading passage and questions for a
// difficulty tier.
func ComprehensionPassage(d game.Difficulty) Passage {
	switch d {
	case game.Easy:
		return Passage{
			Text: "The sun is a star that matters enormously for life on Earth. " +
				"It gives us light and warmth every day. Without the sun we could " +
				"not live. Plants need sunlight to grow and to produce the oxygen " +
				"we breathe.",
			Questions: []Question{
				{
					Prompt:  "What is the sun?",
					Options: []string{"A planet", "A star", "A moon"},
					Correct: 1,
				},
				{
					Prompt:  "What do plants need from the sun?",
					Options: []string{"Water", "Light", "Soil"},
					Correct: 1,
				},
			},
		}
	case game.Hard:
		return Passage{
			Text: "Neuroplasticity refers to the nervous system's capacity to " +
				"change its structure and function in response to experience. " +
				"This phenomenon enables adaptation, learning and recovery after " +
				"brain injury, challenging the old belief that the adult brain " +
				"was immutable.",
			Questions: []Question{
				{
					Prompt: "What is neuroplasticity?",
					Options: []string{
						"The rigidity of the brain",
						"The nervous system's capacity to change",
						"A brain disease",
					},
					Correct: 1,
				},
				{
					Prompt: "Which old belief does neuroplasticity challenge?",
					Options: []string{
						"That the brain can change",
						"That the adult brain was immutable",
						"That learning is impossible",
					},
					Correct: 1,
				},
			},
		}
	default:
		return Passage{
			Text: "Artificial intelligence is a technology that lets machines " +
				"perform tasks that normally require human intelligence. It " +
				"includes machine learning, where systems improve their " +
				"performance through experience without being explicitly " +
				"programmed.",
			Questions: []Question{
				{
					Prompt: "What does artificial intelligence allow?",
					Options: []string{
						"Only number crunching",
						"Performing tasks that require human intelligence",
						"Completely replacing humans",
					},
					Correct: 1,
				},
				{
					Prompt: "How do machine learning systems improve?",
					Options: []string{
						"Through experience",
						"Only with explicit programming",
						"They cannot improve",
					},
					Correct: 0,
				},
			},
		}
	}
}

// RecallTexts returns the pool of passages for the text recall game at a
// difficulty tier. The game picks one at random per session.
func RecallTexts(d game.Difficulty) []string {
	switch d {
	case game.Easy:
		return []string{
			"The cat sat by the window and watched the rain fall on the quiet " +
				"street below.",
			"Every morning the baker opens his shop early and fills the town " +
				"with the smell of fresh bread.",
		}
	case game.Hard:
		return []string{
			"Contemporary cognitive science treats memory not as a passive " +
				"archive but as an active reconstruction, in which each act of " +
				"retrieval subtly rewrites the trace it recovers.",
			"The taxonomy of attentional processes distinguishes sustained " +
				"vigilance from selective filtering, a division that has shaped " +
				"experimental paradigms for half a century.",
		}
	default:
		return []string{
			"Reading quickly is not about moving the eyes faster but about " +
				"reducing the number of stops the eyes make along each line of " +
				"text.",
			"Regular practice with short memory exercises has been shown to " +
				"improve concentration and working memory over time.",
		}
	}
}
