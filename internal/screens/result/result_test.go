package result

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/seinfeld/internal/router"
	"github.com/abhisek/seinfeld/internal/screen"
	"github.com/abhisek/seinfeld/internal/session"
	"github.com/abhisek/seinfeld/internal/trivia"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestResult(calls *int) *ResultScreen {
	return New(trivia.DifficultyEasy, session.Summarize(9, 10), func() screen.Screen {
		*calls++
		return &stubScreen{title: "game"}
	})
}

func TestView_ShowsSummary(t *testing.T) {
	calls := 0
	r := newTestResult(&calls)
	view := r.View(80, 30)

	assert.Contains(t, view, "EASY MODE")
	assert.Contains(t, view, "Your Score: 9/10")
	assert.Contains(t, view, "90%")
	assert.Contains(t, view, "Master of Your Domain!")
	assert.Contains(t, view, labelPlayAgain)
	assert.Contains(t, view, labelMainMenu)
}

func TestPlayAgain_ReplacesWithNewGame(t *testing.T) {
	calls := 0
	r := newTestResult(&calls)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	assert.Equal(t, "game", msg.Screen.Title())
	assert.Equal(t, 1, calls)
}

func TestMainMenu_PopsToRoot(t *testing.T) {
	calls := 0
	r := newTestResult(&calls)

	r.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopToRootMsg{}, cmd())
	assert.Zero(t, calls)
}

func TestEmptySummary(t *testing.T) {
	r := New(trivia.DifficultyExpert, session.Summarize(0, 0), func() screen.Screen { return nil })
	view := r.View(80, 30)
	assert.Contains(t, view, "Your Score: 0/0")
	assert.Contains(t, view, "No Questions Available")
	assert.Equal(t, session.TierEmpty, r.Summary().Tier)
}
