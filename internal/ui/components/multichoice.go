package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/ui/keys"
	"github.com/abhisek/seinfeld/internal/ui/theme"
)

// ChoiceMsg is emitted when the player commits to an option.
type ChoiceMsg struct {
	Index int
}

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a multiple-choice selector component. It only tracks the
// cursor and what to highlight; scoring belongs to the caller.
type MultiChoice struct {
	Prompt       string
	Options      []string
	Cursor       int
	Revealed     bool
	CorrectIndex int
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(prompt string, options []string) MultiChoice {
	return MultiChoice{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Reveal locks the component and marks the chosen and correct options.
func (m MultiChoice) Reveal(chosen, correct int) MultiChoice {
	m.Revealed = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
	return m
}

// Update handles keyboard navigation and selection. Enter commits the
// option under the cursor; 1-4 and a-d commit directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
	case key.Matches(kmsg, keys.Down):
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case key.Matches(kmsg, keys.Select):
		return m, choose(m.Cursor)
	default:
		if i := keys.Option(kmsg.String()); i >= 0 && i < len(m.Options) {
			m.Cursor = i
			return m, choose(i)
		}
	}

	return m, nil
}

func choose(i int) tea.Cmd {
	return func() tea.Msg { return ChoiceMsg{Index: i} }
}

// View renders the prompt and the lettered options.
func (m MultiChoice) View(width int) string {
	var b strings.Builder

	promptStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(width)
	b.WriteString(promptStyle.Render(m.Prompt))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, optionLabels[i], opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.ChosenIndex:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Cursor:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		if i < len(m.Options)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// IsCorrect returns true if the revealed choice was the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.ChosenIndex == m.CorrectIndex
}
