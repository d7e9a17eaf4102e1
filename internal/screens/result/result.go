// Package result shows the final score of a finished round.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/router"
	"github.com/abhisek/seinfeld/internal/screen"
	"github.com/abhisek/seinfeld/internal/session"
	"github.com/abhisek/seinfeld/internal/trivia"
	"github.com/abhisek/seinfeld/internal/ui/components"
	"github.com/abhisek/seinfeld/internal/ui/keys"
	"github.com/abhisek/seinfeld/internal/ui/layout"
	"github.com/abhisek/seinfeld/internal/ui/theme"
)

const (
	labelPlayAgain = "PLAY AGAIN"
	labelMainMenu  = "MAIN MENU"
)

// ResultScreen shows a session summary with Play Again and Main Menu actions.
type ResultScreen struct {
	difficulty trivia.Difficulty
	summary    session.Summary
	menu       components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)

// New creates a result screen. playAgain builds the replacement game screen.
func New(difficulty trivia.Difficulty, summary session.Summary, playAgain func() screen.Screen) *ResultScreen {
	items := []components.MenuItem{
		{Label: labelPlayAgain, Action: func() tea.Cmd {
			return router.Replace(playAgain())
		}},
		{Label: labelMainMenu, Action: func() tea.Cmd {
			return router.PopToRoot
		}},
	}
	return &ResultScreen{
		difficulty: difficulty,
		summary:    summary,
		menu:       components.NewMenu(items),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	s := r.summary

	titleColor := theme.Success
	if s.Tier == session.TierNoSoup || s.Tier == session.TierNewman {
		titleColor = theme.Error
	}

	lines := []string{
		theme.Subtitle.Render(r.difficulty.ModeLabel()),
		"",
		theme.Score.Render(fmt.Sprintf("Your Score: %d/%d", s.Score, s.Total)),
		theme.Hint.Render(fmt.Sprintf("%.0f%%", s.Percentage)),
		"",
		lipgloss.NewStyle().Bold(true).Foreground(titleColor).Render(s.Title),
		theme.Body.Render(s.Subtitle),
	}
	card := components.ArcadeCard(strings.Join(lines, "\n"), cw)

	menu := r.menu.View(cw)
	if height < 20 {
		menu = r.menu.CompactView(cw)
	}
	content := card + "\n" + menu
	return components.CabinetFrame(content, width, height)
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Select, keys.Quit)
}

// Summary returns the summary being displayed.
func (r *ResultScreen) Summary() session.Summary {
	return r.summary
}
