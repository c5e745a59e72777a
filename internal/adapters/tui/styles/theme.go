package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Red   = lipgloss.Color("#FF0000")
	Pink  = lipgloss.Color("#FF5F87")
	Green = lipgloss.Color("#87FF87")
	Gray  = lipgloss.Color("#6B7280")

	// Error and notice styles
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Red)

	Notice = lipgloss.NewStyle().
		Foreground(Gray)

	// Help styles
	HelpCmd = lipgloss.NewStyle().
		Foreground(Pink)

	HelpArg = lipgloss.NewStyle().
		Foreground(Green)

	// Prompt echo for executed lines
	Echo = lipgloss.NewStyle().
		Foreground(Gray)
)

// Rank returns a style rendering text in a rank's display color.
func Rank(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Wrapped returns a style that wraps long text to width with a two-space
// indent, for descriptor info display.
func Wrapped(width int) lipgloss.Style {
	return lipgloss.NewStyle().Width(width).PaddingLeft(2)
}
