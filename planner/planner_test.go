package planner

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"phototree/database"
	"phototree/database/model"
	"phototree/database/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func dateRange(year int) *model.DateRange {
	return &model.DateRange{
		Min: time.Date(year, 6, 1, 0, 0, 0, 0, time.Local),
		Max: time.Date(year, 6, 15, 0, 0, 0, 0, time.Local),
	}
}

func TestHasYearPrefix(t *testing.T) {
	assert.True(t, HasYearPrefix("2020_Trip"))
	assert.True(t, HasYearPrefix("2020-Trip"))
	assert.True(t, HasYearPrefix("_Trip"))
	assert.False(t, HasYearPrefix("Trip_2020"))
	assert.False(t, HasYearPrefix("2020 Trip"))
	assert.False(t, HasYearPrefix("Summer"))
}

func TestDestinationFor(t *testing.T) {
	cases := []struct {
		name   string
		folder string
		dates  *model.DateRange
		want   string
	}{
		{"SingleSegmentDated", "Summer", dateRange(2019), "2019_Summer"},
		{"AlreadyPrefixed", "2020_Trip/Day1", dateRange(2021), "2020_Trip/Day1"},
		{"DeepUndated", "A/B/C", nil, "A/C"},
		{"Spaces", "Family Trip/Day 2", dateRange(2018), "2018_Family_Trip/Day_2"},
		{"DeepDated", "Photos/2015/Holiday/Beach", dateRange(2015), "2015_Photos/Beach"},
		{"UndatedSingle", "Scans", nil, "Scans"},
		{"Root", ".", dateRange(2019), "."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DestinationFor(c.folder, c.dates))
		})
	}
}

func setupRepo(t *testing.T) repository.CatalogRepository {
	db, err := database.NewDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Init(context.Background()))
	t.Cleanup(func() { db.Close(context.Background()) })
	return repository.NewCatalogRepository(db)
}

func dated(folder, name string, taken *time.Time) model.CatalogRecord {
	return model.CatalogRecord{Name: name, Path: folder, Extension: ".jpg", CreatedAt: time.Now(), DateTaken: taken}
}

func TestPlan(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	early := time.Date(2018, 12, 31, 23, 0, 0, 0, time.Local)
	late := time.Date(2019, 1, 2, 10, 0, 0, 0, time.Local)
	require.NoError(t, repo.InsertBatch(ctx, []model.CatalogRecord{
		dated("New Year", "a.jpg", &late),
		dated("New Year", "b.jpg", &early),
		dated("New Year", "c.txt", nil),
		dated("A/B/C", "d.jpg", nil),
		dated("2020_Trip/Day1", "e.jpg", &late),
	}))

	plan, err := Plan(ctx, repo, "/photos")
	require.NoError(t, err)
	assert.Equal(t, "/photos", plan.Root)
	assert.Equal(t, "", plan.Dest)
	assert.Equal(t, []model.FolderMapping{
		{SourceFolder: "2020_Trip/Day1", DestFolder: "2020_Trip/Day1"},
		{SourceFolder: "A/B/C", DestFolder: "A/C"},
		{SourceFolder: "New Year", DestFolder: "2018_New_Year"},
	}, plan.Mappings)

	assert.Empty(t, plan.Excluded)

	again, err := Plan(ctx, repo, "/photos")
	require.NoError(t, err)
	assert.Equal(t, plan, again)
}

func TestPlanLeavesOutUnwritableFolders(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	require.NoError(t, repo.InsertBatch(ctx, []model.CatalogRecord{
		dated("a->b", "a.jpg", nil),
		dated(`quote"""d`, "b.jpg", nil),
		dated("line\nbreak", "c.jpg", nil),
		dated("trailing ", "d.jpg", nil),
		dated("Kept #1; ok", "e.jpg", nil),
	}))

	plan, err := Plan(ctx, repo, "/photos")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a->b", `quote"""d`, "line\nbreak", "trailing "}, plan.Excluded)
	assert.Equal(t, []model.FolderMapping{
		{SourceFolder: "Kept #1; ok", DestFolder: "Kept_#1;_ok"},
	}, plan.Mappings)

	// what Plan produces can always be read back
	plan.Dest = "/sorted"
	planPath := filepath.Join(t.TempDir(), "plan.ini")
	require.NoError(t, WritePlan(planPath, plan))
	read, err := ReadPlan(planPath)
	require.NoError(t, err)
	assert.Equal(t, plan.Mappings, read.Mappings)
	assert.Empty(t, read.Excluded)
}

func TestWriteAndReadPlan(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "exportPlan_photos.ini")
	plan := &model.ExportPlan{
		Root: "/media/photos #1",
		Mappings: []model.FolderMapping{
			{SourceFolder: ".", DestFolder: "."},
			{SourceFolder: "New Year", DestFolder: "2018_New_Year"},
			{SourceFolder: "A/B/C", DestFolder: "A/C"},
		},
	}
	require.NoError(t, WritePlan(planPath, plan))

	got, err := ReadPlan(planPath)
	require.NoError(t, err)
	assert.Equal(t, "/media/photos #1", got.Root)
	assert.Equal(t, "", got.Dest)
	assert.Equal(t, plan.Mappings, got.Mappings)
	assert.ErrorIs(t, Validate(got), ErrMalformedPlan)

	got.Dest = "/backup"
	assert.NoError(t, Validate(got))
}

func TestReadHandEditedPlan(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.ini")
	content := "[Export]\n" +
		"root = /photos\n" +
		"dest = /backup\n" +
		"mapping = \"\"\"\n" +
		"  Summer  ->  2019_Summer  \n" +
		"\n" +
		"Winter->2020_Winter\n" +
		"\"\"\"\n"
	require.NoError(t, os.WriteFile(planPath, []byte(content), 0644))

	plan, err := ReadPlan(planPath)
	require.NoError(t, err)
	assert.Equal(t, "/backup", plan.Dest)
	assert.Equal(t, []model.FolderMapping{
		{SourceFolder: "Summer", DestFolder: "2019_Summer"},
		{SourceFolder: "Winter", DestFolder: "2020_Winter"},
	}, plan.Mappings)
	assert.NoError(t, Validate(plan))
}

func TestReadPlanMalformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"MissingSection": "[Other]\nroot = /x\n",
		"MissingMapping": "[Export]\nroot = /x\ndest = /y\n",
		"NoArrow":        "[Export]\nroot = /x\ndest = /y\nmapping = \"\"\"\nSummer 2019_Summer\n\"\"\"\n",
		"TwoArrows":      "[Export]\nroot = /x\ndest = /y\nmapping = \"\"\"\na->b->c\n\"\"\"\n",
		"EmptyDest":      "[Export]\nroot = /x\ndest = /y\nmapping = \"\"\"\na->\n\"\"\"\n",
		"MappedTwice":    "[Export]\nroot = /x\ndest = /y\nmapping = \"\"\"\na->b\na->c\n\"\"\"\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(dir, name+".ini")
			require.NoError(t, os.WriteFile(p, []byte(content), 0644))
			_, err := ReadPlan(p)
			assert.ErrorIs(t, err, ErrMalformedPlan)
		})
	}

	t.Run("MissingFile", func(t *testing.T) {
		_, err := ReadPlan(filepath.Join(dir, "nope.ini"))
		assert.ErrorIs(t, err, ErrMalformedPlan)
	})
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(&model.ExportPlan{Dest: "/y"}), ErrMalformedPlan)
	assert.ErrorIs(t, Validate(&model.ExportPlan{Root: "/x"}), ErrMalformedPlan)
	assert.NoError(t, Validate(&model.ExportPlan{Root: "/x", Dest: "/y"}))
}
