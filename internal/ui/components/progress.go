package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/ui/theme"
)

// QuizProgress shows how many questions of a round have been answered.
type QuizProgress struct {
	Answered int
	Total    int
	Width    int
}

// NewQuizProgress creates a progress line for answered of total questions.
func NewQuizProgress(answered, total, width int) QuizProgress {
	return QuizProgress{Answered: answered, Total: total, Width: width}
}

// Fraction returns the answered share in [0, 1]; an empty round is 0.
func (p QuizProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Answered)/float64(p.Total), 0), 1)
}

// View renders "answered/total" followed by a bar filling the rest of Width.
// Rounds short enough get one block per question.
func (p QuizProgress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("%d/%d", p.Answered, p.Total))
	barWidth := max(p.Width-lipgloss.Width(label)-2, 4)

	fill, rest := "█", "░"
	done, cells := int(float64(barWidth)*p.Fraction()), barWidth
	if p.Total > 0 && p.Total*2 <= barWidth {
		// Two cells per question so the blocks read as separate steps.
		fill, rest = "▰ ", "▱ "
		done, cells = p.Answered, p.Total
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat(fill, done)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(rest, cells-done))

	return label + "  " + bar
}
