package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/router"
	"github.com/abhisek/seinfeld/internal/screen"
	"github.com/abhisek/seinfeld/internal/screens/game"
	"github.com/abhisek/seinfeld/internal/trivia"
	"github.com/abhisek/seinfeld/internal/ui/components"
	"github.com/abhisek/seinfeld/internal/ui/keys"
	"github.com/abhisek/seinfeld/internal/ui/layout"
	"github.com/abhisek/seinfeld/internal/ui/theme"
)

const labelQuit = "QUIT"

// Below this content height the menu drops its button borders.
const compactHeight = 24

// HomeScreen is the difficulty menu.
type HomeScreen struct {
	deps game.Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen listing every difficulty in the bank. Modes with
// no questions are shown disabled.
func New(deps game.Deps) *HomeScreen {
	var items []components.MenuItem
	for _, d := range trivia.AllDifficulties() {
		n := min(deps.Bank.Count(d), deps.Bank.DrawSize())
		items = append(items, components.MenuItem{
			Label:    d.ModeLabel(),
			Detail:   questionCount(n),
			Disabled: n == 0,
			Action: func() tea.Cmd {
				return router.Push(game.New(deps, d))
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  labelQuit,
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		deps: deps,
		menu: components.NewMenu(items),
	}
}

func questionCount(n int) string {
	if n == 1 {
		return "(1 question)"
	}
	return fmt.Sprintf("(%d questions)", n)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Marquee).
		Render("SEINFELD TRIVIA")
	tagline := theme.Subtitle.Render("What's the deal with trivia?")

	menu := h.menu.View(cw)
	if height < compactHeight {
		menu = h.menu.CompactView(cw)
	}

	sections := []string{
		title + "\n" + tagline,
		menu,
	}
	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Select, keys.Quit)
}
