package tui

import (
	"strings"

	"phototree/tui/components"

	"github.com/charmbracelet/lipgloss"
)

func (m modelTui) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	sidebarWidth := 30
	// account for both panels' borders (2+2)
	contentWidth := m.width - sidebarWidth - 4
	// account for borders (2 lines) and footer (1 line)
	mainHeight := m.height - 3

	sidebarContent := components.RenderFolderList(
		m.folders,
		m.sidebarCursor,
		m.sidebarOffset,
		m.focus == focusSidebar,
		sidebarWidth,
		mainHeight,
	)

	sidebarBorderStyle := boxStyle
	sidebarTitleStyle := panelTitleStyle
	if m.focus == focusSidebar {
		sidebarBorderStyle = activeBoxStyle
		sidebarTitleStyle = activePanelTitleStyle
	}
	sidebarBox := renderBoxWithTitle("[1] Folders", sidebarContent, sidebarWidth, mainHeight, sidebarBorderStyle, sidebarTitleStyle, true)

	var cb strings.Builder
	cb.WriteString(m.renderTabs() + "\n")

	if m.activeTab == tabFiles {
		cb.WriteString(components.RenderFilesView(
			m.files,
			m.selectedFolder(),
			m.contentCursor,
			m.contentOffset,
			m.focus == focusContent,
			contentWidth,
			m.height,
		))
	} else {
		cb.WriteString(components.RenderDuplicatesView(
			m.duplicates,
			m.contentOffset,
			contentWidth,
			m.height,
		))
	}

	var folderBytes uint64
	for _, f := range m.files {
		folderBytes += uint64(f.SizeBytes)
	}
	statusBar := components.RenderStatusBar(
		components.CatalogStats{
			Source:      m.source,
			Records:     m.recordCount,
			Folders:     len(m.folders),
			FolderFiles: len(m.files),
			FolderBytes: folderBytes,
		},
		contentWidth,
	)
	cb.WriteString("\n" + statusBar)

	contentBorderStyle := boxStyle
	contentTitleStyle := panelTitleStyle
	if m.focus == focusContent {
		contentBorderStyle = activeBoxStyle
		contentTitleStyle = activePanelTitleStyle
	}
	contentBox := renderBoxWithTitle("[2] Catalog", cb.String(), contentWidth, mainHeight, contentBorderStyle, contentTitleStyle, true)

	footer := components.HelpStyle.Width(m.width).Align(lipgloss.Center).Render("1:Folders | 2:Catalog | Tab:Toggle | 3/f:Files | 4/d:Duplicates | j/k/arrow keys:Navigate | q:Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, sidebarBox, contentBox),
		footer,
	)
}

func (m modelTui) renderTabs() string {
	filesLabel := "Files"
	duplicatesLabel := "Duplicates"
	inactive := inactiveTabStyle
	if m.focus != focusContent {
		return lipgloss.JoinHorizontal(lipgloss.Top, inactive.Render(filesLabel), inactive.Render(duplicatesLabel))
	}
	filesLabel = "[3] Files"
	duplicatesLabel = "[4] Duplicates"
	if m.activeTab == tabFiles {
		return lipgloss.JoinHorizontal(lipgloss.Top, activeTabStyle.Render(filesLabel), inactive.Render(duplicatesLabel))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, inactive.Render(filesLabel), activeTabStyle.Render(duplicatesLabel))
}
