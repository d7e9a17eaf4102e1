package session

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/seinfeld/internal/trivia"
)

// Phase represents the current phase of a session.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // Question shown, no answer yet
	PhaseAnswerRevealed              // Answer submitted, feedback showing
	PhaseFinished                    // Past the last question
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseAnswerRevealed:
		return "answer-revealed"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Outcome is the result of answering the current question.
type Outcome struct {
	Selected     int
	CorrectIndex int
	IsCorrect    bool
}

// Session is one play-through of a drawn question set.
// It is not safe for concurrent use.
type Session struct {
	// ID identifies the session in logs.
	ID string

	// Difficulty is the tag the questions were drawn for.
	Difficulty trivia.Difficulty

	questions []trivia.Question
	index     int
	score     int
	phase     Phase
	outcome   Outcome
}

// New starts a session over questions. An empty question set starts the
// session already finished.
func New(difficulty trivia.Difficulty, questions []trivia.Question) *Session {
	s := &Session{
		ID:         uuid.New().String(),
		Difficulty: difficulty,
		questions:  slices.Clone(questions),
		phase:      PhaseAwaitingAnswer,
	}
	if len(s.questions) == 0 {
		s.phase = PhaseFinished
	}
	return s
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// CurrentQuestion returns the question being shown.
func (s *Session) CurrentQuestion() (trivia.Question, error) {
	if s.phase == PhaseFinished {
		return trivia.Question{}, ErrNoCurrentQuestion
	}
	return s.questions[s.index], nil
}

// SubmitAnswer answers the current question with the option at selected.
// Repeated calls before Advance return the first outcome and leave the score
// alone.
func (s *Session) SubmitAnswer(selected int) (Outcome, error) {
	if s.phase == PhaseFinished {
		return Outcome{}, ErrNoCurrentQuestion
	}
	if selected < 0 || selected >= trivia.OptionCount {
		return Outcome{}, &InvalidInputError{Index: selected}
	}
	if s.phase == PhaseAnswerRevealed {
		return s.outcome, nil
	}

	q := s.questions[s.index]
	s.outcome = Outcome{
		Selected:     selected,
		CorrectIndex: q.CorrectIndex,
		IsCorrect:    q.IsCorrect(selected),
	}
	if s.outcome.IsCorrect {
		s.score++
	}
	s.phase = PhaseAnswerRevealed
	return s.outcome, nil
}

// LastOutcome returns the outcome of the current question once it has been
// answered.
func (s *Session) LastOutcome() (Outcome, bool) {
	if s.phase != PhaseAnswerRevealed {
		return Outcome{}, false
	}
	return s.outcome, true
}

// Advance moves past a revealed answer to the next question, finishing the
// session after the last one.
func (s *Session) Advance() error {
	if s.phase != PhaseAnswerRevealed {
		return fmt.Errorf("advance from %s: %w", s.phase, ErrInvalidTransition)
	}
	s.index++
	s.outcome = Outcome{}
	if s.index == len(s.questions) {
		s.phase = PhaseFinished
	} else {
		s.phase = PhaseAwaitingAnswer
	}
	return nil
}

// Progress returns the 1-based position of the current question and the
// total. A finished session reports position == total.
func (s *Session) Progress() (position, total int) {
	total = len(s.questions)
	if s.phase == PhaseFinished {
		return total, total
	}
	return s.index + 1, total
}

// Score returns the number of correct answers so far.
func (s *Session) Score() int {
	return s.score
}

// Total returns the number of questions in the session.
func (s *Session) Total() int {
	return len(s.questions)
}

// Answered returns how many questions have been answered, counting the
// current one once its answer is revealed.
func (s *Session) Answered() int {
	if s.phase == PhaseAnswerRevealed {
		return s.index + 1
	}
	return s.index
}

// Summary summarizes the session's score so far.
func (s *Session) Summary() Summary {
	return Summarize(s.score, len(s.questions))
}
