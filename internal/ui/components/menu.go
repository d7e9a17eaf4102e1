package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/ui/keys"
	"github.com/abhisek/seinfeld/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Detail   string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a new menu with the first enabled item selected.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, keys.Down):
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case key.Matches(kmsg, keys.Select):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu as a column of arcade buttons.
func (m Menu) View(width int) string {
	var s string
	for i, item := range m.Items {
		label := item.Label
		if item.Detail != "" {
			label += "  " + item.Detail
		}
		if i > 0 {
			s += "\n"
		}
		s += ArcadeButton(label, i == m.Selected, width, item.Disabled)
	}
	return s
}

// CompactView renders the menu one line per item for short terminals.
func (m Menu) CompactView(width int) string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		if item.Detail != "" {
			label += "  " + item.Detail
		}
		style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
		switch {
		case item.Disabled:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Bold(true).Foreground(theme.Marquee)
			label = "▸ " + label
		default:
			style = style.Foreground(theme.Text)
		}
		lines = append(lines, style.Render(label))
	}
	return strings.Join(lines, "\n")
}
