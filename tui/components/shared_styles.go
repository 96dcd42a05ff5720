package components

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes, so the browser follows the terminal theme
var (
	ColorBlue   = lipgloss.Color("4")
	ColorGreen  = lipgloss.Color("2")
	ColorYellow = lipgloss.Color("3")
	ColorGrey   = lipgloss.Color("8")
)

var (
	DimStyle    = lipgloss.NewStyle().Foreground(ColorGrey)
	HelpStyle   = lipgloss.NewStyle().Foreground(ColorGrey).Italic(true)
	BlueStyle   = lipgloss.NewStyle().Foreground(ColorBlue)
	YellowStyle = lipgloss.NewStyle().Foreground(ColorYellow)
	GreenStyle  = lipgloss.NewStyle().Foreground(ColorGreen)
)
