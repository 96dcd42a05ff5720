package tui

import (
	"phototree/tui/components"

	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(components.ColorGrey).
			Padding(0, 1)

	activeBoxStyle = boxStyle.
			BorderForeground(components.ColorGreen)
)

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), true, true, true, true).
			BorderForeground(components.ColorGrey)

	inactiveTabStyle = tabStyle.
				Foreground(components.ColorGrey)

	activeTabStyle = tabStyle.
			Foreground(components.ColorGreen).
			BorderForeground(components.ColorGreen).
			Bold(true)
)

var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(components.ColorGrey)

	activePanelTitleStyle = panelTitleStyle.
				Foreground(components.ColorGreen).
				Bold(true)
)
