package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/seinfeld/internal/ui/theme"
)

// Smallest terminal that fits a question with four options and the Next button.
const (
	MinWidth  = 60
	MinHeight = 20
)

const appName = "Seinfeld Trivia"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small!\n\nNeed %d x %d, have %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(msg))
}

// bar is the bordered strip used above and below the screen content.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// spread lays out left, center and right across width cells, keeping center
// centered while it fits and at least one space between the parts.
func spread(left, center, right string, width int) string {
	l, c, r := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((width-c)/2-l, 1)
	rightGap := max(width-l-leftGap-c-r, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderHeader shows the app name, the screen title (the mode during a game)
// and an optional status such as the running score.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" " + appName)
	center := theme.Body.Render(title)
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	// Border plus the header's inner margin.
	inner := max(width-4, 0)
	return bar(width).Render(spread(left, center, right, inner))
}

// RenderFooter renders the key hints of the active screen.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := theme.Body.Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Render(" " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, padding the content so the
// frame fills height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
