package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/seinfeld/internal/ui/keys"
	"github.com/abhisek/seinfeld/internal/ui/theme"
)

// Button is a styled button component.
type Button struct {
	Label   string
	Active  bool
	Binding key.Binding
	OnPress func() tea.Cmd
}

// NewButton creates a new button that fires on the given binding.
func NewButton(label string, active bool, binding key.Binding, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		Binding: binding,
		OnPress: onPress,
	}
}

// NewNextButton is the button shown once an answer is revealed.
func NewNextButton(label string, onPress func() tea.Cmd) Button {
	return NewButton(label, false, keys.Next, onPress)
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, b.Binding) && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "  ▸ " + b.Label + " "
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
