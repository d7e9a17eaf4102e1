package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/seinfeld/internal/trivia"
)

func testQuestions(n int) []trivia.Question {
	qs := trivia.SeedQuestions()[:n]
	return qs
}

func wrongIndex(q trivia.Question) int {
	return (q.CorrectIndex + 1) % trivia.OptionCount
}

func TestNew_InitialState(t *testing.T) {
	s := New(trivia.DifficultyEasy, testQuestions(3))

	assert.Equal(t, PhaseAwaitingAnswer, s.Phase())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Total())
	assert.NotEmpty(t, s.ID)

	pos, total := s.Progress()
	assert.Equal(t, 1, pos)
	assert.Equal(t, 3, total)

	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, testQuestions(1)[0], q)
}

func TestNew_EmptyStartsFinished(t *testing.T) {
	s := New(trivia.Difficulty("BOGUS"), nil)

	assert.Equal(t, PhaseFinished, s.Phase())
	pos, total := s.Progress()
	assert.Equal(t, 0, pos)
	assert.Equal(t, 0, total)

	_, err := s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrNoCurrentQuestion)
	assert.Equal(t, TierEmpty, s.Summary().Tier)
}

func TestSubmitAnswer_Correct(t *testing.T) {
	s := New(trivia.DifficultyEasy, testQuestions(2))
	q, _ := s.CurrentQuestion()

	out, err := s.SubmitAnswer(q.CorrectIndex)
	require.NoError(t, err)
	assert.True(t, out.IsCorrect)
	assert.Equal(t, q.CorrectIndex, out.CorrectIndex)
	assert.Equal(t, q.CorrectIndex, out.Selected)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, PhaseAnswerRevealed, s.Phase())

	last, ok := s.LastOutcome()
	assert.True(t, ok)
	assert.Equal(t, out, last)
}

func TestSubmitAnswer_Incorrect(t *testing.T) {
	s := New(trivia.DifficultyEasy, testQuestions(2))
	q, _ := s.CurrentQuestion()

	out, err := s.SubmitAnswer(wrongIndex(q))
	require.NoError(t, err)
	assert.False(t, out.IsCorrect)
	assert.Equal(t, q.CorrectIndex, out.CorrectIndex)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, PhaseAnswerRevealed, s.Phase())
}

func TestSubmitAnswer_Idempotent(t *testing.T) {
	s := New(trivia.DifficultyEasy, testQuestions(2))
	q, _ := s.CurrentQuestion()

	first, err := s.SubmitAnswer(q.CorrectIndex)
	require.NoError(t, err)

	// A second tap on a different option while feedback is showing.
	second, err := s.SubmitAnswer(wrongIndex(q))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.Score())
}

func TestSubmitAnswer_InvalidInput(t *testing.T) {
	for _, idx := range []int{-1, 4, 100} {
		s := New(trivia.DifficultyEasy, testQuestions(1))

		_, err := s.SubmitAnswer(idx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)

		var inErr *InvalidInputError
		require.True(t, errors.As(err, &inErr))
		assert.Equal(t, idx, inErr.Index)

		assert.Equal(t, PhaseAwaitingAnswer, s.Phase(), "invalid input must not reveal the answer")
		assert.Equal(t, 0, s.Score())
	}
}

func TestSubmitAnswer_Finished(t *testing.T) {
	s := New(trivia.DifficultyEasy, nil)
	_, err := s.SubmitAnswer(0)
	assert.ErrorIs(t, err, ErrNoCurrentQuestion)
}

func TestAdvance_BeforeAnswer(t *testing.T) {
	s := New(trivia.DifficultyEasy, testQuestions(2))

	err := s.Advance()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "awaiting-answer")

	pos, _ := s.Progress()
	assert.Equal(t, 1, pos)
}

func TestAdvance_ToNextQuestion(t *testing.T) {
	qs := testQuestions(2)
	s := New(trivia.DifficultyEasy, qs)

	_, err := s.SubmitAnswer(0)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	assert.Equal(t, PhaseAwaitingAnswer, s.Phase())
	pos, total := s.Progress()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, total)

	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.Equal(t, qs[1], q)

	_, ok := s.LastOutcome()
	assert.False(t, ok)
}

func TestAdvance_FromLastQuestionFinishes(t *testing.T) {
	s := New(trivia.DifficultyEasy, testQuestions(1))

	_, err := s.SubmitAnswer(0)
	require.NoError(t, err)
	require.NoError(t, s.Advance())

	assert.Equal(t, PhaseFinished, s.Phase())
	pos, total := s.Progress()
	assert.Equal(t, total, pos)

	_, err = s.CurrentQuestion()
	assert.ErrorIs(t, err, ErrNoCurrentQuestion)

	err = s.Advance()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestScoreNeverExceedsAnswered(t *testing.T) {
	qs := testQuestions(8)
	s := New(trivia.DifficultyEasy, qs)

	for i := 0; s.Phase() != PhaseFinished; i++ {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)

		pick := q.CorrectIndex
		if i%3 == 0 {
			pick = wrongIndex(q)
		}
		for tap := 0; tap < 3; tap++ {
			_, err = s.SubmitAnswer(pick)
			require.NoError(t, err)
		}
		assert.LessOrEqual(t, s.Score(), s.Answered())
		require.NoError(t, s.Advance())
		assert.LessOrEqual(t, s.Score(), s.Answered())
	}

	// Questions 0, 3 and 6 were answered wrong.
	assert.Equal(t, 5, s.Score())
	assert.Equal(t, 8, s.Answered())
}

func TestNew_CopiesQuestions(t *testing.T) {
	qs := testQuestions(2)
	s := New(trivia.DifficultyEasy, qs)
	qs[0].Prompt = "changed"

	q, err := s.CurrentQuestion()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", q.Prompt)
}

func TestEndToEnd_EasyAllCorrect(t *testing.T) {
	bank, err := trivia.NewBank(trivia.SeedQuestions())
	require.NoError(t, err)

	s := New(trivia.DifficultyEasy, bank.QuestionsForDifficulty(trivia.DifficultyEasy))
	require.Equal(t, 8, s.Total())

	for s.Phase() != PhaseFinished {
		q, err := s.CurrentQuestion()
		require.NoError(t, err)
		out, err := s.SubmitAnswer(q.CorrectIndex)
		require.NoError(t, err)
		require.True(t, out.IsCorrect)
		require.NoError(t, s.Advance())
	}

	assert.Equal(t, s.Total(), s.Score())
	sum := s.Summary()
	assert.Equal(t, TierPerfect, sum.Tier)
	assert.Equal(t, "Master of Your Domain!", sum.Title)
	assert.Equal(t, "Perfect Score!", sum.Subtitle)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "awaiting-answer", PhaseAwaitingAnswer.String())
	assert.Equal(t, "answer-revealed", PhaseAnswerRevealed.String())
	assert.Equal(t, "finished", PhaseFinished.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}
