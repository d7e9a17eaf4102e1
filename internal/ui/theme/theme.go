package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: the brick-red logo and marquee yellow on a late-night navy set.
var (
	Primary   = lipgloss.Color("#E11D48") // logo red
	Secondary = lipgloss.Color("#0EA5E9")
	Accent    = lipgloss.Color("#F59E0B")
	Marquee   = lipgloss.Color("#FACC15")

	Success = lipgloss.Color("#4CAF50") // correct option
	Error   = lipgloss.Color("#F44336") // wrong pick

	Text    = lipgloss.Color("#F8FAFC")
	TextDim = lipgloss.Color("#94A3B8")
	BgDark  = lipgloss.Color("#0F172A")
	BgCard  = lipgloss.Color("#1E293B")
	Border  = lipgloss.Color("#334155")
)

var (
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Score    = lipgloss.NewStyle().Foreground(Marquee).Bold(true)
)

// Option states in a multiple-choice list. Once an answer is revealed,
// Correct marks the right option and Incorrect the player's wrong pick.
var (
	Selected   = lipgloss.NewStyle().Foreground(Marquee).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)
)

// Next button, before and after the reveal delay.
var (
	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Background(BgCard).Foreground(TextDim).Padding(0, 2)
)
