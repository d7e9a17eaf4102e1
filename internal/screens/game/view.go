package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/session"
	"github.com/abhisek/seinfeld/internal/ui/components"
	"github.com/abhisek/seinfeld/internal/ui/theme"
)

func (g *GameScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	pos, total := g.sess.Progress()

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", pos, total))
	infoRight := theme.Score.Render(fmt.Sprintf("Score: %d", g.sess.Score()))

	infoLine := infoLeft
	if pad := cw - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight); pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	} else {
		infoLine += "  " + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(components.NewQuizProgress(g.sess.Answered(), total, cw).View())
	b.WriteString("\n\n")

	b.WriteString(g.choice.View(cw))
	b.WriteString("\n\n")

	if outcome, ok := g.sess.LastOutcome(); ok {
		b.WriteString(g.renderVerdict(outcome))
		b.WriteString("\n\n")
		if g.next.Active {
			b.WriteString(g.next.View())
		}
	}

	content := lipgloss.NewStyle().Width(cw).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (g *GameScreen) renderVerdict(o session.Outcome) string {
	if o.IsCorrect {
		return theme.Correct.Render("Correct!")
	}
	answer := ""
	if o.CorrectIndex >= 0 && o.CorrectIndex < len(g.choice.Options) {
		answer = g.choice.Options[o.CorrectIndex]
	}
	return theme.Incorrect.Render(fmt.Sprintf("Wrong! The answer was %c) %s", 'A'+o.CorrectIndex, answer))
}

// Status shows the running score in the header.
func (g *GameScreen) Status() string {
	return fmt.Sprintf("Score: %d/%d", g.sess.Score(), g.sess.Total())
}
