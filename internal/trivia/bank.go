package trivia

import (
	"math/rand/v2"
	"slices"
)

// DefaultDrawSize is the maximum number of questions in one game.
const DefaultDrawSize = 10

// Bank is an immutable question catalog indexed by difficulty.
type Bank struct {
	questions    []Question
	byDifficulty map[Difficulty][]Question
	drawSize     int
	shuffle      func(n int, swap func(i, j int))
}

// BankOption configures a Bank.
type BankOption func(*Bank)

// WithRand makes the bank shuffle with r instead of the global source.
// r is not safe for concurrent use, so neither is the resulting Bank.
func WithRand(r *rand.Rand) BankOption {
	return func(b *Bank) {
		b.shuffle = r.Shuffle
	}
}

// WithDrawSize caps draws at n questions. Values <= 0 keep the default and
// values above DefaultDrawSize are clamped to it.
func WithDrawSize(n int) BankOption {
	return func(b *Bank) {
		if n > 0 {
			b.drawSize = min(n, DefaultDrawSize)
		}
	}
}

// NewBank validates questions and builds a Bank over a private copy of them.
func NewBank(questions []Question, opts ...BankOption) (*Bank, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}

	b := &Bank{
		questions:    slices.Clone(questions),
		byDifficulty: make(map[Difficulty][]Question),
		drawSize:     DefaultDrawSize,
		shuffle:      rand.Shuffle,
	}
	for _, q := range b.questions {
		b.byDifficulty[q.Difficulty] = append(b.byDifficulty[q.Difficulty], q)
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// QuestionsForDifficulty returns up to DrawSize questions of difficulty d in
// uniformly random order. Unknown difficulties yield an empty slice.
func (b *Bank) QuestionsForDifficulty(d Difficulty) []Question {
	drawn := slices.Clone(b.byDifficulty[d])
	if len(drawn) == 0 {
		return []Question{}
	}
	b.shuffle(len(drawn), func(i, j int) {
		drawn[i], drawn[j] = drawn[j], drawn[i]
	})
	if len(drawn) > b.drawSize {
		drawn = drawn[:b.drawSize]
	}
	return drawn
}

// Count returns how many catalog questions have difficulty d.
func (b *Bank) Count(d Difficulty) int {
	return len(b.byDifficulty[d])
}

// DrawSize returns the per-game question cap.
func (b *Bank) DrawSize() int {
	return b.drawSize
}

// All returns every catalog question in catalog order.
func (b *Bank) All() []Question {
	return slices.Clone(b.questions)
}

// ByDifficulty returns the catalog questions of difficulty d in catalog order.
func (b *Bank) ByDifficulty(d Difficulty) []Question {
	return slices.Clone(b.byDifficulty[d])
}
