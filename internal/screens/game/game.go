// Package game runs one round of trivia questions.
package game

import (
	"errors"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/seinfeld/internal/router"
	"github.com/abhisek/seinfeld/internal/screen"
	"github.com/abhisek/seinfeld/internal/screens/result"
	"github.com/abhisek/seinfeld/internal/session"
	"github.com/abhisek/seinfeld/internal/trivia"
	"github.com/abhisek/seinfeld/internal/ui/components"
	"github.com/abhisek/seinfeld/internal/ui/keys"
	"github.com/abhisek/seinfeld/internal/ui/layout"
)

// Deps carries what a game needs from the application.
type Deps struct {
	Bank        *trivia.Bank
	RevealDelay time.Duration
	Logger      zerolog.Logger
}

// GameScreen presents the questions of one session.
type GameScreen struct {
	deps   Deps
	sess   *session.Session
	log    zerolog.Logger
	choice components.MultiChoice
	next   components.Button

	// seq identifies the current reveal; bumped on every answer and advance.
	seq int
}

var _ screen.Screen = (*GameScreen)(nil)

// New draws a question set for difficulty and starts a session over it.
func New(deps Deps, difficulty trivia.Difficulty) *GameScreen {
	sess := session.New(difficulty, deps.Bank.QuestionsForDifficulty(difficulty))
	g := &GameScreen{
		deps: deps,
		sess: sess,
		log: deps.Logger.With().
			Str("session_id", sess.ID).
			Str("difficulty", string(difficulty)).
			Logger(),
		next: components.NewNextButton("NEXT", func() tea.Cmd {
			return func() tea.Msg { return nextMsg{} }
		}),
	}
	if deps.RevealDelay <= 0 {
		g.next.Binding = keys.NextInstant
	}
	g.loadQuestion()
	return g
}

func (g *GameScreen) Init() tea.Cmd {
	g.log.Info().Int("total", g.sess.Total()).Msg("session started")
	if g.sess.Phase() == session.PhaseFinished {
		return g.finish()
	}
	return nil
}

func (g *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMsg:
		return g, g.submit(msg.Index)

	case revealDoneMsg:
		if msg.sessionID == g.sess.ID && msg.seq == g.seq &&
			g.sess.Phase() == session.PhaseAnswerRevealed {
			g.next.Active = true
		}
		return g, nil

	case nextMsg:
		return g, g.advance()

	case tea.KeyMsg:
		switch g.sess.Phase() {
		case session.PhaseAwaitingAnswer:
			var cmd tea.Cmd
			g.choice, cmd = g.choice.Update(msg)
			return g, cmd
		case session.PhaseAnswerRevealed:
			var cmd tea.Cmd
			g.next, cmd = g.next.Update(msg)
			return g, cmd
		}
	}

	return g, nil
}

func (g *GameScreen) submit(index int) tea.Cmd {
	wasAwaiting := g.sess.Phase() == session.PhaseAwaitingAnswer
	outcome, err := g.sess.SubmitAnswer(index)
	if err != nil {
		var inputErr *session.InvalidInputError
		if errors.As(err, &inputErr) {
			g.log.Warn().Int("index", inputErr.Index).Msg("option out of range")
		} else {
			g.log.Warn().Err(err).Msg("answer rejected")
		}
		return nil
	}
	if !wasAwaiting {
		return nil
	}

	g.log.Debug().
		Int("selected", outcome.Selected).
		Bool("correct", outcome.IsCorrect).
		Int("score", g.sess.Score()).
		Msg("answer submitted")

	g.choice = g.choice.Reveal(outcome.Selected, outcome.CorrectIndex)
	g.seq++

	if g.deps.RevealDelay <= 0 {
		g.next.Active = true
		return nil
	}
	id, seq := g.sess.ID, g.seq
	return tea.Tick(g.deps.RevealDelay, func(time.Time) tea.Msg {
		return revealDoneMsg{sessionID: id, seq: seq}
	})
}

func (g *GameScreen) advance() tea.Cmd {
	if err := g.sess.Advance(); err != nil {
		g.log.Warn().Err(err).Msg("advance rejected")
		return nil
	}
	g.seq++
	if g.sess.Phase() == session.PhaseFinished {
		return g.finish()
	}
	g.loadQuestion()
	return nil
}

func (g *GameScreen) finish() tea.Cmd {
	sum := g.sess.Summary()
	g.log.Info().
		Int("score", sum.Score).
		Int("total", sum.Total).
		Str("title", sum.Title).
		Msg("session finished")

	deps, difficulty := g.deps, g.sess.Difficulty
	return router.Replace(result.New(difficulty, sum, func() screen.Screen {
		return New(deps, difficulty)
	}))
}

func (g *GameScreen) loadQuestion() {
	g.next.Active = false
	q, err := g.sess.CurrentQuestion()
	if err != nil {
		return
	}
	g.choice = components.NewMultiChoice(q.Prompt, q.Options[:])
}

func (g *GameScreen) Title() string {
	return g.sess.Difficulty.ModeLabel()
}

func (g *GameScreen) KeyHints() []layout.KeyHint {
	if g.sess.Phase() == session.PhaseAnswerRevealed {
		if g.next.Active {
			return keys.Hints(g.next.Binding, keys.Back)
		}
		return keys.Hints(keys.Back)
	}
	pick := key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Pick"))
	return keys.Hints(keys.Up, keys.Down, keys.Select, pick, keys.Back)
}

// Session exposes the underlying session.
func (g *GameScreen) Session() *session.Session {
	return g.sess
}
