package components

import (
	"fmt"
	"strings"

	"phototree/database/model"
	L "phototree/logger"
)

type FolderInfo struct {
	Folder    string
	DateRange *model.DateRange
}

func (f FolderInfo) Label() string {
	if f.DateRange == nil {
		return "no dates"
	}
	minYear, maxYear := f.DateRange.Min.Year(), f.DateRange.Max.Year()
	if minYear == maxYear {
		return fmt.Sprintf("%d", minYear)
	}
	return fmt.Sprintf("%d - %d", minYear, maxYear)
}

func RenderFolderList(
	folders []FolderInfo,
	sidebarCursor int,
	sidebarOffset int,
	focusOnSidebar bool,
	width int,
	height int,
) string {
	var sb strings.Builder

	// align with tabs on the content side (1 line to match tab position)
	sb.WriteString("\n")

	if len(folders) == 0 {
		sb.WriteString(DimStyle.Render("catalog is empty,\nrun 'phototree scan'"))
		return sb.String()
	}

	// two lines per folder
	maxVisible := max((height-2)/2, 1)
	end := min(sidebarOffset+maxVisible, len(folders))
	for i := sidebarOffset; i < end; i++ {
		f := folders[i]
		name := L.TruncateString(f.Folder, width-4, L.TRUNC_LEFT)
		msg := fmt.Sprintf("%s\n• %s", name, f.Label())

		style := sidebarItemStyle
		if i == sidebarCursor {
			if focusOnSidebar {
				style = selectedItemStyle
			} else {
				style = sidebarItemStyle.Background(ColorGrey)
			}
		}

		// width accounts for borders (2) only, padding is handled by box style
		sb.WriteString(style.Width(width-2).Render(msg) + "\n")
	}
	if len(folders) > end {
		sb.WriteString(DimStyle.Render(fmt.Sprintf("... %d more", len(folders)-end)))
	}

	return sb.String()
}
