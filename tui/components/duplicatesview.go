package components

import (
	"fmt"
	"strings"

	"phototree/database/model"
	L "phototree/logger"
)

type duplicateLine struct {
	text   string
	header bool
}

// renders duplicate groups as a scrollable list, one header per group then its paths
func RenderDuplicatesView(
	groups []model.DuplicateGroup,
	contentOffset int,
	width int,
	height int,
) string {
	var sb strings.Builder

	if len(groups) == 0 {
		sb.WriteString("\n  " + GreenStyle.Render("No duplicates found."))
		return sb.String()
	}

	var wasted uint64
	var lines []duplicateLine
	for _, g := range groups {
		wasted += uint64(g.SizeBytes) * uint64(len(g.Entries)-1)
		lines = append(lines, duplicateLine{
			text:   fmt.Sprintf("%d copies · %s", len(g.Entries), L.HumanReadableBytes(uint64(g.SizeBytes))),
			header: true,
		})
		for _, e := range g.Entries {
			lines = append(lines, duplicateLine{text: "  " + L.TruncateString(e.RelPath(), width-6, L.TRUNC_LEFT)})
		}
	}

	sb.WriteString(DimStyle.Render(fmt.Sprintf("%d groups, ", len(groups))))
	sb.WriteString(YellowStyle.Render(L.HumanReadableBytes(wasted)+" reclaimable") + "\n")

	maxVisible := max(height-16, 1)
	start := min(contentOffset, max(len(lines)-1, 0))
	end := min(start+maxVisible, len(lines))
	for _, line := range lines[start:end] {
		if line.header {
			sb.WriteString(BlueStyle.Bold(true).Render(line.text))
		} else {
			sb.WriteString(line.text)
		}
		sb.WriteString("\n")
	}
	if len(lines) > end {
		sb.WriteString(DimStyle.Render(fmt.Sprintf("... %d more lines", len(lines)-end)))
	}
	return sb.String()
}

// DuplicateLineCount is the number of scrollable lines RenderDuplicatesView produces.
func DuplicateLineCount(groups []model.DuplicateGroup) int {
	n := 0
	for _, g := range groups {
		n += 1 + len(g.Entries)
	}
	return n
}
