package components

import (
	"fmt"
	"strings"

	"phototree/database/model"
	L "phototree/logger"

	"github.com/charmbracelet/lipgloss"
)

// renders the catalog records of one folder
func RenderFilesView(
	files []model.CatalogRecord,
	currentDir string,
	contentCursor int,
	contentOffset int,
	focusOnContent bool,
	width int,
	height int,
) string {
	var sb strings.Builder

	sb.WriteString(DimStyle.Render("Files in "))
	shown := "./"
	if currentDir != model.RootFolder {
		shown += currentDir
	}
	sb.WriteString(GreenStyle.Render(shown) + "\n")

	if len(files) == 0 {
		sb.WriteString("\n  " + YellowStyle.Render("No files recorded for this folder."))
		return sb.String()
	}

	maxVisible := max(height-18, 1)

	sizeWidth := 10
	takenWidth := 17
	cameraWidth := 20
	nameWidth := max(width-sizeWidth-takenWidth-cameraWidth-5, 8)

	headerStyle := lipgloss.NewStyle().Foreground(ColorBlue).Bold(true)
	headerLine := lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Width(nameWidth).Render("NAME"),
		headerStyle.Width(sizeWidth).Render("SIZE"),
		headerStyle.Width(takenWidth).Render("TAKEN"),
		headerStyle.Width(cameraWidth).Render("CAMERA"),
	)
	sb.WriteString(headerLine + "\n")

	nameRowStyle := lipgloss.NewStyle().Width(nameWidth)
	sizeRowStyle := lipgloss.NewStyle().Width(sizeWidth)
	takenRowStyle := lipgloss.NewStyle().Width(takenWidth)
	cameraRowStyle := lipgloss.NewStyle().Width(cameraWidth)

	end := contentOffset + maxVisible
	for i := contentOffset; i < len(files) && i < end; i++ {
		f := files[i]

		taken := DimStyle.Render("-")
		if f.DateTaken != nil {
			taken = f.DateTaken.Format("2006-01-02 15:04")
		}
		camera := ""
		if f.Camera != nil {
			camera = L.TruncateString(*f.Camera, cameraWidth-1, L.TRUNC_RIGHT)
		}

		line := lipgloss.JoinHorizontal(lipgloss.Top,
			nameRowStyle.Render(L.TruncateString(f.Name, nameWidth-1, L.TRUNC_CENTER)),
			sizeRowStyle.Render(L.HumanReadableBytes(uint64(f.SizeBytes))),
			takenRowStyle.Render(taken),
			cameraRowStyle.Render(camera),
		)

		if i == contentCursor && focusOnContent {
			sb.WriteString(selectedItemStyle.Width(width - 2).Render(line))
		} else {
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	if len(files) > end {
		sb.WriteString(DimStyle.Render(fmt.Sprintf("... %d more files", len(files)-end)))
	}

	return sb.String()
}
