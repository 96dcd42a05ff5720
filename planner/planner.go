package planner

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"phototree/database"
	"phototree/database/model"
	"phototree/database/repository"
	L "phototree/logger"

	"gopkg.in/ini.v1"
)

const (
	planSection     = "Export"
	keyRoot         = "root"
	keyDest         = "dest"
	keyMapping      = "mapping"
	mappingArrow    = "->"
	destPlaceholder = "None"
)

var ErrMalformedPlan = errors.New("planner: malformed export plan")

var yearPrefix = regexp.MustCompile(`^[0-9]*[-_]`)

// HasYearPrefix reports whether a folder name already starts with digits followed by '-' or '_'.
func HasYearPrefix(folderName string) bool {
	return yearPrefix.MatchString(folderName)
}

// DestinationFor derives the destination of a catalog folder:
// the top segment gets the year of the earliest photo unless already prefixed,
// nesting collapses to top/last, and spaces become underscores.
func DestinationFor(folder string, dateRange *model.DateRange) string {
	if folder == model.RootFolder || folder == "" {
		return model.RootFolder
	}
	parts := strings.Split(folder, "/")
	top := parts[0]
	if !HasYearPrefix(top) && dateRange != nil {
		top = fmt.Sprintf("%04d_%s", dateRange.Min.Year(), top)
	}
	dest := top
	if len(parts) > 1 {
		dest = top + "/" + parts[len(parts)-1]
	}
	return strings.ReplaceAll(dest, " ", "_")
}

// Plan maps every folder of the catalog. The destination root is left for the user to fill in.
func Plan(ctx context.Context, repo repository.CatalogRepository, root string) (*model.ExportPlan, error) {
	folders, err := repo.DistinctFolders(ctx)
	if err != nil {
		return nil, err
	}
	plan := &model.ExportPlan{Root: root}
	for _, folder := range folders {
		if !fitsMappingLine(folder) {
			L.Warn(fmt.Sprintf("planner: folder %q cannot be written to a plan, leaving it out", folder))
			plan.Excluded = append(plan.Excluded, folder)
			continue
		}
		dateRange, err := repo.DateRange(ctx, folder)
		if err != nil {
			if !errors.Is(err, database.ErrDoesNotExist) {
				return nil, err
			}
			dateRange = nil
		}
		dest := DestinationFor(folder, dateRange)
		L.Debug(fmt.Sprintf("planner: %s -> %s", folder, dest))
		plan.Mappings = append(plan.Mappings, model.FolderMapping{SourceFolder: folder, DestFolder: dest})
	}
	return plan, nil
}

// fitsMappingLine reports whether a folder survives a WritePlan/ReadPlan round trip.
func fitsMappingLine(folder string) bool {
	if folder != strings.TrimSpace(folder) {
		return false
	}
	return !strings.Contains(folder, mappingArrow) &&
		!strings.Contains(folder, `"""`) &&
		!strings.ContainsAny(folder, "\r\n")
}

func WritePlan(planPath string, plan *model.ExportPlan) error {
	cfg := ini.Empty()
	sec, err := cfg.NewSection(planSection)
	if err != nil {
		return err
	}
	lines := make([]string, 0, len(plan.Mappings))
	for _, m := range plan.Mappings {
		lines = append(lines, m.SourceFolder+mappingArrow+m.DestFolder)
	}
	dest := plan.Dest
	if dest == "" {
		dest = destPlaceholder
	}
	for _, kv := range [][2]string{
		{keyRoot, plan.Root},
		{keyDest, dest},
		{keyMapping, "\n" + strings.Join(lines, "\n") + "\n"},
	} {
		_, err := sec.NewKey(kv[0], kv[1])
		if err != nil {
			return err
		}
	}
	err = cfg.SaveTo(planPath)
	if err != nil {
		return fmt.Errorf("planner: could not write %s: %w", planPath, err)
	}
	L.Info(fmt.Sprintf("Writing %s", planPath))
	return nil
}

// ReadPlan parses a plan artifact. dest may still be empty; call Validate before applying.
func ReadPlan(planPath string) (*model.ExportPlan, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
	}, planPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPlan, planPath, err)
	}
	sec, err := cfg.GetSection(planSection)
	if err != nil {
		return nil, fmt.Errorf("%w: %s has no [%s] section", ErrMalformedPlan, planPath, planSection)
	}
	if !sec.HasKey(keyMapping) {
		return nil, fmt.Errorf("%w: %s has no %s", ErrMalformedPlan, planPath, keyMapping)
	}

	plan := &model.ExportPlan{
		Path: planPath,
		Root: strings.TrimSpace(sec.Key(keyRoot).String()),
		Dest: strings.TrimSpace(sec.Key(keyDest).String()),
	}
	if plan.Dest == destPlaceholder {
		plan.Dest = ""
	}
	mappings, err := ParseMapping(sec.Key(keyMapping).String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", planPath, err)
	}
	plan.Mappings = mappings
	return plan, nil
}

// ParseMapping reads newline separated source->dest pairs, ignoring blank lines.
func ParseMapping(value string) ([]model.FolderMapping, error) {
	var mappings []model.FolderMapping
	seen := map[string]struct{}{}
	for i, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, mappingArrow)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d %q is not source%sdest", ErrMalformedPlan, i+1, line, mappingArrow)
		}
		src := strings.TrimSpace(parts[0])
		dst := strings.TrimSpace(parts[1])
		if src == "" || dst == "" {
			return nil, fmt.Errorf("%w: line %d %q has an empty side", ErrMalformedPlan, i+1, line)
		}
		if _, ok := seen[src]; ok {
			return nil, fmt.Errorf("%w: %s is mapped twice", ErrMalformedPlan, src)
		}
		seen[src] = struct{}{}
		mappings = append(mappings, model.FolderMapping{SourceFolder: src, DestFolder: dst})
	}
	return mappings, nil
}

// Validate checks that the plan can be applied as is.
func Validate(plan *model.ExportPlan) error {
	if plan.Root == "" {
		return fmt.Errorf("%w: %s is empty", ErrMalformedPlan, keyRoot)
	}
	if plan.Dest == "" {
		return fmt.Errorf("%w: %s is empty, edit the plan or pass --dest", ErrMalformedPlan, keyDest)
	}
	return nil
}
