package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phototree/database"
	"phototree/database/model"
	"phototree/database/repository"
	"phototree/dedup"
	L "phototree/logger"
	"phototree/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

type tabId int

const (
	tabFiles tabId = iota
	tabDuplicates
)

// catalog may still be growing while a scan runs elsewhere
const refreshInterval = 2 * time.Second

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

type foldersMsg struct {
	folders []components.FolderInfo
	count   int64
}

type filesMsg struct {
	folder string
	files  []model.CatalogRecord
}

type duplicatesMsg []model.DuplicateGroup

type modelTui struct {
	ctx           context.Context
	repo          repository.CatalogRepository
	source        string
	folders       []components.FolderInfo
	files         []model.CatalogRecord
	duplicates    []model.DuplicateGroup
	recordCount   int64
	sidebarCursor int
	sidebarOffset int
	contentCursor int
	contentOffset int
	focus         focusArea
	activeTab     tabId
	width         int
	height        int
}

func NewApp(ctx context.Context, repo repository.CatalogRepository, source string) *modelTui {
	return &modelTui{
		ctx:       ctx,
		repo:      repo,
		source:    source,
		focus:     focusSidebar,
		activeTab: tabFiles,
	}
}

func (m modelTui) Init() tea.Cmd {
	return tea.Batch(m.fetchFolders, tick())
}

func (m modelTui) fetchFolders() tea.Msg {
	folders, err := m.repo.DistinctFolders(m.ctx)
	if err != nil {
		L.Error(fmt.Sprintf("tui: failed to fetch folders: %v", err))
		return foldersMsg{}
	}
	count, err := m.repo.Count(m.ctx)
	if err != nil {
		L.Error(fmt.Sprintf("tui: failed to count records: %v", err))
	}
	infos := make([]components.FolderInfo, 0, len(folders))
	for _, f := range folders {
		dr, err := m.repo.DateRange(m.ctx, f)
		if err != nil {
			if !errors.Is(err, database.ErrDoesNotExist) {
				L.Debug(fmt.Sprintf("tui: no date range for %s: %v", f, err))
			}
			dr = nil
		}
		infos = append(infos, components.FolderInfo{Folder: f, DateRange: dr})
	}
	return foldersMsg{folders: infos, count: count}
}

func (m modelTui) selectedFolder() string {
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(m.folders) {
		return ""
	}
	return m.folders[m.sidebarCursor].Folder
}

func (m modelTui) fetchFiles() tea.Msg {
	folder := m.selectedFolder()
	if folder == "" {
		return nil
	}
	files, err := m.repo.GetByFolder(m.ctx, folder)
	if err != nil {
		L.Error(fmt.Sprintf("tui: failed to fetch files for %s: %v", folder, err))
		return filesMsg{folder: folder}
	}
	return filesMsg{folder: folder, files: files}
}

func (m modelTui) fetchDuplicates() tea.Msg {
	groups, err := dedup.FindDuplicates(m.ctx, m.repo)
	if err != nil {
		L.Error(fmt.Sprintf("tui: failed to find duplicates: %v", err))
		return duplicatesMsg{}
	}
	return duplicatesMsg(groups)
}

func (m *modelTui) sidebarVisible() int {
	// two lines per folder, borders, tab row and footer
	return max((m.height-5)/2, 1)
}

func (m *modelTui) contentVisible() int {
	if m.activeTab == tabDuplicates {
		return max(m.height-16, 1)
	}
	return max(m.height-18, 1)
}

func (m *modelTui) contentLen() int {
	if m.activeTab == tabDuplicates {
		return components.DuplicateLineCount(m.duplicates)
	}
	return len(m.files)
}

func (m *modelTui) resetContent() {
	m.contentCursor = 0
	m.contentOffset = 0
}

func (m *modelTui) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		cmds := []tea.Cmd{m.fetchFolders, tick()}
		if m.activeTab == tabDuplicates {
			cmds = append(cmds, m.fetchDuplicates)
		}
		return m, tea.Batch(cmds...)

	case foldersMsg:
		previous := m.selectedFolder()
		m.folders = msg.folders
		m.recordCount = msg.count
		if len(m.folders) == 0 {
			m.sidebarCursor = 0
			m.files = nil
			return m, nil
		}
		// keep the selection on the same folder across refreshes
		m.sidebarCursor = min(m.sidebarCursor, len(m.folders)-1)
		for i, f := range m.folders {
			if f.Folder == previous {
				m.sidebarCursor = i
				break
			}
		}
		return m, m.fetchFiles

	case filesMsg:
		// a slow response for a folder no longer selected
		if msg.folder != m.selectedFolder() {
			return m, nil
		}
		m.files = msg.files
		if m.contentCursor >= len(m.files) {
			m.contentCursor = max(len(m.files)-1, 0)
		}

	case duplicatesMsg:
		m.duplicates = msg

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "1":
			m.focus = focusSidebar

		case "2":
			m.focus = focusContent

		case "tab":
			if m.focus == focusSidebar {
				m.focus = focusContent
			} else {
				m.focus = focusSidebar
			}

		case "3", "f", "F":
			if m.focus == focusContent && m.activeTab != tabFiles {
				m.activeTab = tabFiles
				m.resetContent()
				return m, m.fetchFiles
			}

		case "4", "d", "D":
			if m.focus == focusContent && m.activeTab != tabDuplicates {
				m.activeTab = tabDuplicates
				m.resetContent()
				return m, m.fetchDuplicates
			}

		case "up", "k":
			if m.focus == focusSidebar {
				if m.sidebarCursor > 0 {
					m.sidebarCursor--
					if m.sidebarCursor < m.sidebarOffset {
						m.sidebarOffset = m.sidebarCursor
					}
					m.resetContent()
					m.files = nil
					return m, m.fetchFiles
				}
			} else if m.contentCursor > 0 {
				m.contentCursor--
				if m.contentCursor < m.contentOffset {
					m.contentOffset = m.contentCursor
				}
			}

		case "down", "j":
			if m.focus == focusSidebar {
				if m.sidebarCursor < len(m.folders)-1 {
					m.sidebarCursor++
					if m.sidebarCursor >= m.sidebarOffset+m.sidebarVisible() {
						m.sidebarOffset = m.sidebarCursor - m.sidebarVisible() + 1
					}
					m.resetContent()
					m.files = nil
					return m, m.fetchFiles
				}
			} else if m.contentCursor < m.contentLen()-1 {
				m.contentCursor++
				if m.contentCursor >= m.contentOffset+m.contentVisible() {
					m.contentOffset = m.contentCursor - m.contentVisible() + 1
				}
			}

		case "g", "home":
			if m.focus == focusContent {
				m.resetContent()
			}
		}
	}

	return m, nil
}
