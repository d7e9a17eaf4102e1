package trivia

import "strings"

// Difficulty tags partition the question catalog.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyExpert Difficulty = "EXPERT"
)

// AllDifficulties returns all difficulties in menu order.
func AllDifficulties() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyMedium,
		DifficultyHard,
		DifficultyExpert,
	}
}

// Valid reports whether d is one of the known difficulty tags.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	default:
		return false
	}
}

// ModeLabel returns the label shown above a game, e.g. "EASY MODE".
func (d Difficulty) ModeLabel() string {
	return string(d) + " MODE"
}

// ParseDifficulty matches s against the known tags, ignoring case and
// surrounding whitespace.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// OptionCount is the number of options every question carries.
const OptionCount = 4

// Question is a single multiple-choice trivia question.
type Question struct {
	Prompt       string
	Options      [OptionCount]string
	CorrectIndex int
	Difficulty   Difficulty
}

// IsCorrect reports whether the option at index i is the correct one.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectIndex
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
		return ""
	}
	return q.Options[q.CorrectIndex]
}
