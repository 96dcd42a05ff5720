package tui

import (
	"strings"

	L "phototree/logger"

	"github.com/charmbracelet/lipgloss"
)

// renders a box with a "title" legend on the top border.
// rounded swaps the top corners for rounded ones; side and bottom borders keep the box style.
func renderBoxWithTitle(title string, content string, width int, height int, borderStyle lipgloss.Style, titleStyle lipgloss.Style, rounded bool) string {
	boxContent := borderStyle.Width(width).Height(height).Render(content)
	lines := strings.Split(boxContent, "\n")
	if len(lines) == 0 {
		return boxContent
	}

	border := borderStyle.GetBorderStyle()
	topBorder := lines[0]
	cornerIdx := strings.Index(topBorder, border.TopLeft)
	endCornerIdx := strings.LastIndex(topBorder, border.TopRight)
	if cornerIdx == -1 || endCornerIdx <= cornerIdx {
		return boxContent
	}

	// two dashes before the title, at least one after
	innerWidth := lipgloss.Width(topBorder) - 2
	title = L.TruncateString(title, innerWidth-5, L.TRUNC_RIGHT)
	if title == "" {
		return boxContent
	}
	styledTitle := titleStyle.Render(" " + title + " ")
	titleWidth := lipgloss.Width(styledTitle)

	// keep the ANSI codes that colour the border around the new pieces
	openingANSI := topBorder[:cornerIdx]
	closingANSI := ""
	closingIdx := strings.LastIndex(topBorder, "\x1b[0m")
	if closingIdx != -1 && closingIdx > endCornerIdx {
		closingANSI = topBorder[closingIdx:]
	}

	leftCorner, rightCorner := border.TopLeft, border.TopRight
	if rounded {
		leftCorner, rightCorner = lipgloss.RoundedBorder().TopLeft, lipgloss.RoundedBorder().TopRight
	}
	remainingDashes := strings.Repeat(border.Top, max(innerWidth-2-titleWidth, 0))

	lines[0] = openingANSI + leftCorner + strings.Repeat(border.Top, 2) + closingANSI +
		styledTitle +
		openingANSI + remainingDashes + rightCorner + closingANSI

	return strings.Join(lines, "\n")
}
