package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/seinfeld/internal/router"
	"github.com/abhisek/seinfeld/internal/screen"
	"github.com/abhisek/seinfeld/internal/screens/game"
	"github.com/abhisek/seinfeld/internal/screens/home"
	"github.com/abhisek/seinfeld/internal/screens/welcome"
	"github.com/abhisek/seinfeld/internal/trivia"
	"github.com/abhisek/seinfeld/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Bank        *trivia.Bank
	Logger      zerolog.Logger
	RevealDelay time.Duration

	// StartDifficulty, when set, opens a game on top of the menu.
	StartDifficulty trivia.Difficulty

	// Splash shows the welcome animation before the menu.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int
}

// newAppModel creates a new AppModel rooted at the difficulty menu.
func newAppModel(opts Options) AppModel {
	deps := game.Deps{
		Bank:        opts.Bank,
		RevealDelay: opts.RevealDelay,
		Logger:      opts.Logger,
	}

	var root screen.Screen = home.New(deps)
	if opts.Splash && opts.StartDifficulty == "" {
		root = welcome.New(func() screen.Screen { return home.New(deps) })
	}

	return AppModel{
		router: router.New(root),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmd := m.router.Active().Init()
	if m.opts.StartDifficulty != "" {
		deps := game.Deps{
			Bank:        m.opts.Bank,
			RevealDelay: m.opts.RevealDelay,
			Logger:      m.opts.Logger,
		}
		return tea.Batch(cmd, router.Push(game.New(deps, m.opts.StartDifficulty)))
	}
	return cmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.opts.Logger.Debug().Str("screen", m.router.Active().Title()).Msg("screen closed")
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the framed active screen at the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Bank == nil {
		return fmt.Errorf("app: no question bank")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
