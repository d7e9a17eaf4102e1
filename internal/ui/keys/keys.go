// Package keys holds the key bindings shared by all screens.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/seinfeld/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	)
	Select = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Next = key.NewBinding(
		key.WithKeys("enter", "space", "n"),
		key.WithHelp("Enter", "Next"),
	)
	// NextInstant advances when feedback has no delay. Enter is left out so
	// a double Enter on an answer cannot skip the feedback.
	NextInstant = key.NewBinding(
		key.WithKeys("space", "n"),
		key.WithHelp("Space/n", "Next"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// Option maps the direct-pick keys 1-4 and a-d to an option index.
// Returns -1 when s is not a pick key.
func Option(s string) int {
	switch s {
	case "1", "a":
		return 0
	case "2", "b":
		return 1
	case "3", "c":
		return 2
	case "4", "d":
		return 3
	default:
		return -1
	}
}

// Hints turns bindings into footer hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
