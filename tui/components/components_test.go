package components

import (
	"strings"
	"testing"
	"time"

	"phototree/database/model"

	"github.com/stretchr/testify/assert"
)

func TestFolderLabel(t *testing.T) {
	assert.Equal(t, "no dates", FolderInfo{Folder: "x"}.Label())

	d2019 := time.Date(2019, 1, 1, 0, 0, 0, 0, time.Local)
	d2021 := time.Date(2021, 6, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2019", FolderInfo{DateRange: &model.DateRange{Min: d2019, Max: d2019}}.Label())
	assert.Equal(t, "2019 - 2021", FolderInfo{DateRange: &model.DateRange{Min: d2019, Max: d2021}}.Label())
}

func TestRenderFolderListEmpty(t *testing.T) {
	out := RenderFolderList(nil, 0, 0, true, 30, 20)
	assert.Contains(t, out, "catalog is empty")
}

func TestRenderFolderListOverflow(t *testing.T) {
	var folders []FolderInfo
	for _, f := range []string{"a", "b", "c", "d", "e", "f"} {
		folders = append(folders, FolderInfo{Folder: f})
	}
	// (height-2)/2 = 3 visible
	out := RenderFolderList(folders, 0, 0, true, 30, 8)
	assert.Equal(t, 3, strings.Count(out, "• no dates"))
	assert.Contains(t, out, "... 3 more")
}

func TestRenderFilesViewEmpty(t *testing.T) {
	out := RenderFilesView(nil, ".", 0, 0, false, 80, 40)
	assert.Contains(t, out, "./")
	assert.Contains(t, out, "No files recorded")
}

func TestRenderDuplicatesView(t *testing.T) {
	assert.Contains(t, RenderDuplicatesView(nil, 0, 80, 40), "No duplicates found.")

	groups := []model.DuplicateGroup{{
		ContentHash: "h",
		SizeBytes:   1024,
		Entries: []model.DuplicateEntry{
			{Path: "a", Name: "x.jpg", SizeBytes: 1024},
			{Path: "b", Name: "x.jpg", SizeBytes: 1024},
			{Path: "c", Name: "x.jpg", SizeBytes: 1024},
		},
	}}
	out := RenderDuplicatesView(groups, 0, 80, 40)
	assert.Contains(t, out, "1 groups")
	assert.Contains(t, out, "3 copies")
	assert.Contains(t, out, "b/x.jpg")
	assert.Equal(t, 4, DuplicateLineCount(groups))
}

func TestRenderStatusBar(t *testing.T) {
	assert.Contains(t, RenderStatusBar(CatalogStats{Source: "camera"}, 80), "empty")
	out := RenderStatusBar(CatalogStats{Source: "camera", Records: 12, Folders: 3, FolderFiles: 2, FolderBytes: 2048}, 120)
	assert.Contains(t, out, "12 files in 3 folders")
	assert.Contains(t, out, "folder: 2 files")
}
