package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"phototree/database"
	"phototree/database/model"
	"phototree/database/repository"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	repository.CatalogRepository
	folders    []string
	files      map[string][]model.CatalogRecord
	dates      map[string]*model.DateRange
	duplicates []model.DuplicateEntry
}

func (f *fakeRepo) DistinctFolders(ctx context.Context) ([]string, error) {
	return f.folders, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	for _, files := range f.files {
		n += int64(len(files))
	}
	return n, nil
}

func (f *fakeRepo) DateRange(ctx context.Context, folder string) (*model.DateRange, error) {
	dr, ok := f.dates[folder]
	if !ok {
		return nil, database.ErrDoesNotExist
	}
	return dr, nil
}

func (f *fakeRepo) GetByFolder(ctx context.Context, folder string) ([]model.CatalogRecord, error) {
	return f.files[folder], nil
}

func (f *fakeRepo) FindDuplicates(ctx context.Context) ([]model.DuplicateEntry, error) {
	return f.duplicates, nil
}

func newFakeRepo() *fakeRepo {
	taken := time.Date(2019, 7, 14, 10, 30, 0, 0, time.Local)
	camera := "Canon EOS 80D"
	return &fakeRepo{
		folders: []string{".", "holidays", "holidays/beach"},
		files: map[string][]model.CatalogRecord{
			".":              {{Name: "readme.txt", Path: ".", SizeBytes: 10}},
			"holidays":       {{Name: "a.jpg", Path: "holidays", SizeBytes: 2048, DateTaken: &taken, Camera: &camera}, {Name: "b.jpg", Path: "holidays", SizeBytes: 4096}},
			"holidays/beach": {{Name: "c.jpg", Path: "holidays/beach", SizeBytes: 2048}},
		},
		dates: map[string]*model.DateRange{
			"holidays": {Min: taken, Max: taken},
		},
		duplicates: []model.DuplicateEntry{
			{Path: "holidays", Name: "a.jpg", SizeBytes: 2048, ContentHash: "h1"},
			{Path: "holidays/beach", Name: "c.jpg", SizeBytes: 2048, ContentHash: "h1"},
		},
	}
}

// runs a command and feeds its message back, the way the bubbletea runtime would
func feed(t *testing.T, m *modelTui, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	_, next := m.Update(msg)
	feed(t, m, next)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp(t *testing.T) *modelTui {
	m := NewApp(context.Background(), newFakeRepo(), "camera")
	m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	feed(t, m, m.fetchFolders)
	return m
}

func TestLoadSelectsFirstFolder(t *testing.T) {
	m := loadedApp(t)
	require.Len(t, m.folders, 3)
	assert.Equal(t, int64(4), m.recordCount)
	assert.Equal(t, ".", m.selectedFolder())
	require.Len(t, m.files, 1)
	assert.Equal(t, "readme.txt", m.files[0].Name)
	assert.Nil(t, m.folders[0].DateRange)
	assert.NotNil(t, m.folders[1].DateRange)
}

func TestSidebarNavigation(t *testing.T) {
	m := loadedApp(t)

	_, cmd := m.Update(key("j"))
	feed(t, m, cmd)
	assert.Equal(t, "holidays", m.selectedFolder())
	assert.Len(t, m.files, 2)

	_, cmd = m.Update(key("down"))
	feed(t, m, cmd)
	_, cmd = m.Update(key("down"))
	assert.Nil(t, cmd, "cursor stays on the last folder")
	assert.Equal(t, "holidays/beach", m.selectedFolder())

	_, cmd = m.Update(key("k"))
	feed(t, m, cmd)
	assert.Equal(t, "holidays", m.selectedFolder())
}

func TestStaleFilesAreIgnored(t *testing.T) {
	m := loadedApp(t)
	m.Update(filesMsg{folder: "holidays", files: []model.CatalogRecord{{Name: "x.jpg"}}})
	assert.Equal(t, "readme.txt", m.files[0].Name)
}

func TestRefreshKeepsSelection(t *testing.T) {
	m := loadedApp(t)
	_, cmd := m.Update(key("j"))
	feed(t, m, cmd)

	repo := m.repo.(*fakeRepo)
	repo.folders = []string{".", "archive", "holidays", "holidays/beach"}
	feed(t, m, m.fetchFolders)
	assert.Equal(t, "holidays", m.selectedFolder())
	assert.Equal(t, 2, m.sidebarCursor)
}

func TestTabsRequireContentFocus(t *testing.T) {
	m := loadedApp(t)

	_, cmd := m.Update(key("d"))
	assert.Nil(t, cmd)
	assert.Equal(t, tabFiles, m.activeTab)

	m.Update(key("tab"))
	assert.Equal(t, focusContent, m.focus)
	_, cmd = m.Update(key("4"))
	feed(t, m, cmd)
	assert.Equal(t, tabDuplicates, m.activeTab)
	require.Len(t, m.duplicates, 1)
	assert.Len(t, m.duplicates[0].Entries, 2)

	_, cmd = m.Update(key("f"))
	feed(t, m, cmd)
	assert.Equal(t, tabFiles, m.activeTab)
}

func TestContentCursorIsBounded(t *testing.T) {
	m := loadedApp(t)
	_, cmd := m.Update(key("j"))
	feed(t, m, cmd)
	m.Update(key("2"))

	for i := 0; i < 5; i++ {
		m.Update(key("j"))
	}
	assert.Equal(t, 1, m.contentCursor)
	m.Update(key("g"))
	assert.Equal(t, 0, m.contentCursor)
}

func TestQuit(t *testing.T) {
	m := loadedApp(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := NewApp(context.Background(), newFakeRepo(), "camera")
	assert.Equal(t, "Initializing...", m.View())

	m = loadedApp(t)
	_, cmd := m.Update(key("j"))
	feed(t, m, cmd)
	out := m.View()
	assert.Contains(t, out, "[1] Folders")
	assert.Contains(t, out, "holidays")
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "a.jpg")
	assert.Contains(t, out, "Canon EOS 80D")
	assert.Contains(t, out, "2019-07-14 10:30")
	assert.Contains(t, out, "Catalog camera")

	m.Update(key("tab"))
	_, cmd = m.Update(key("d"))
	feed(t, m, cmd)
	out = m.View()
	assert.Contains(t, out, "[4] Duplicates")
	assert.Contains(t, out, "2 copies")
	assert.Contains(t, out, "holidays/beach/c.jpg")
}

func TestRenderBoxWithTitle(t *testing.T) {
	out := renderBoxWithTitle("Folders", "x", 20, 3, boxStyle, panelTitleStyle, true)
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], "╭── Folders ")
	assert.Contains(t, lines[0], "╮")
	// title does not change the box width
	assert.Equal(t, lipgloss.Width(lines[1]), lipgloss.Width(lines[0]))

	square := boxStyle.Border(lipgloss.NormalBorder())
	narrow := renderBoxWithTitle("A very long panel title", "x", 12, 3, square, panelTitleStyle, false)
	first := strings.Split(narrow, "\n")[0]
	assert.Contains(t, first, "┌──")
	assert.Contains(t, first, "...")
	assert.Equal(t, lipgloss.Width(strings.Split(narrow, "\n")[1]), lipgloss.Width(first))
}
