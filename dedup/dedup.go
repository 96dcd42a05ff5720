package dedup

import (
	"context"
	"fmt"
	"sort"

	"phototree/database/model"
	"phototree/database/repository"
	L "phototree/logger"
	"phototree/report"

	"github.com/dustin/go-humanize"
)

const groupSeparator = "------------------------------"

// FindDuplicates folds the ordered duplicate rows into groups, keeping the query order.
func FindDuplicates(ctx context.Context, repo repository.CatalogRepository) ([]model.DuplicateGroup, error) {
	entries, err := repo.FindDuplicates(ctx)
	if err != nil {
		return nil, err
	}
	return GroupEntries(entries), nil
}

func GroupEntries(entries []model.DuplicateEntry) []model.DuplicateGroup {
	var groups []model.DuplicateGroup
	position := map[string]int{}
	for _, e := range entries {
		idx, ok := position[e.ContentHash]
		if !ok {
			idx = len(groups)
			position[e.ContentHash] = idx
			groups = append(groups, model.DuplicateGroup{ContentHash: e.ContentHash, SizeBytes: e.SizeBytes})
		}
		groups[idx].Entries = append(groups[idx].Entries, e)
	}
	return groups
}

// WastedBytes is the space taken by every copy beyond the first of each group.
func WastedBytes(groups []model.DuplicateGroup) uint64 {
	var wasted uint64
	for _, g := range groups {
		if len(g.Entries) > 1 {
			wasted += uint64(g.SizeBytes) * uint64(len(g.Entries)-1)
		}
	}
	return wasted
}

func WriteDuplicatesReport(reportPath string, groups []model.DuplicateGroup) error {
	r, err := report.Create(reportPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, g := range groups {
		if len(g.Entries) == 0 {
			continue
		}
		err := r.Writeln("%s %s %s", g.Entries[0].Name, groupSeparator, humanize.IBytes(uint64(g.SizeBytes)))
		if err != nil {
			return err
		}
		for _, e := range g.Entries {
			if err := r.Writeln("%s", e.RelPath()); err != nil {
				return err
			}
		}
		if err := r.Writeln(""); err != nil {
			return err
		}
	}
	L.Info(fmt.Sprintf("Saved %d duplicate groups to %s", len(groups), reportPath))
	return r.Close()
}

type CompareResult struct {
	OnlyInA []string
	OnlyInB []string
}

// Compare returns the paths whose content exists in exactly one of the two catalogs.
// Unhashed records never match anything, so they always land on their own side.
func Compare(a *model.HashIndex, b *model.HashIndex) *CompareResult {
	return &CompareResult{
		OnlyInA: onlyIn(a, b),
		OnlyInB: onlyIn(b, a),
	}
}

func onlyIn(this *model.HashIndex, other *model.HashIndex) []string {
	paths := []string{}
	for hash, files := range this.ByHash {
		if _, ok := other.ByHash[hash]; ok {
			continue
		}
		paths = append(paths, files...)
	}
	paths = append(paths, this.Unhashed...)
	sort.Strings(paths)
	return paths
}

func WriteCompareReport(reportPath string, nameA string, nameB string, result *CompareResult) error {
	r, err := report.Create(reportPath)
	if err != nil {
		return err
	}
	defer r.Close()

	sections := []struct {
		header string
		paths  []string
	}{
		{fmt.Sprintf("#------In %s but not in %s", nameA, nameB), result.OnlyInA},
		{fmt.Sprintf("#------In %s but not in %s", nameB, nameA), result.OnlyInB},
	}
	for _, s := range sections {
		if err := r.Writeln("%s", s.header); err != nil {
			return err
		}
		for _, p := range s.paths {
			if err := r.Writeln("%s", p); err != nil {
				return err
			}
		}
	}
	L.Info(fmt.Sprintf("Saved comparison (%d only in %s, %d only in %s) to %s",
		len(result.OnlyInA), nameA, len(result.OnlyInB), nameB, reportPath))
	return r.Close()
}
