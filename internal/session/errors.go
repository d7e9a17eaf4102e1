package session

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCurrentQuestion is returned when a finished session is asked for
	// its current question.
	ErrNoCurrentQuestion = errors.New("no current question")

	// ErrInvalidTransition is returned when Advance is called before the
	// current answer has been revealed.
	ErrInvalidTransition = errors.New("invalid session transition")

	// ErrInvalidInput is matched by InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInputError reports an option index outside [0, trivia.OptionCount).
type InvalidInputError struct {
	Index int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: option index %d out of range", e.Index)
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }
