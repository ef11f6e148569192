package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/uno-cli/uno"
	"github.com/muesli/termenv"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

var cardColors = map[uno.Color]lipgloss.Color{
	uno.Red:    lipgloss.Color("#FF6B6B"),
	uno.Blue:   lipgloss.Color("#4D96FF"),
	uno.Green:  lipgloss.Color("#6BCB77"),
	uno.Yellow: lipgloss.Color("#FFD93D"),
	uno.Wild:   lipgloss.Color("#C77DFF"),
}

// CardStyle returns the style for a card of color c
func CardStyle(c uno.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(cardColors[c]).Bold(true)
}

// DisableColor switches lipgloss to plain ASCII output
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
