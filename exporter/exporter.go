package exporter

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"phototree/config"
	"phototree/database"
	"phototree/database/model"
	"phototree/database/repository"
	"phototree/file_io"
	L "phototree/logger"
	"phototree/planner"
	"phototree/report"

	"github.com/google/uuid"
)

const (
	sectionIgnored = "------Ignored directories------"
	sectionCopy    = "------Starting copy------------"
	sectionDone    = "-----------All done.----------"
)

type Options struct {
	ImageExtensions []string
	// IgnoreExtensions are never copied by CopyListed.
	IgnoreExtensions []string
	// ContinueOnError records a failed file and moves on instead of stopping the run.
	ContinueOnError bool
}

type Result struct {
	RunId       string
	Copied      int
	Skipped     int
	Failed      int
	Ignored     []string
	BytesCopied int64
	// Err is the failure that stopped the run early, nil when every item was attempted.
	Err error
}

type Exporter struct {
	repo repository.CatalogRepository
	fs   file_io.FileIO
	opts Options
}

func New(repo repository.CatalogRepository, fs file_io.FileIO, opts Options) *Exporter {
	opts.ImageExtensions = config.NormalizeExtensions(opts.ImageExtensions)
	opts.IgnoreExtensions = config.NormalizeExtensions(opts.IgnoreExtensions)
	return &Exporter{repo: repo, fs: fs, opts: opts}
}

type run struct {
	e      *Exporter
	rep    *report.Report
	result *Result
}

func (e *Exporter) newRun(rep *report.Report, title string) (*run, error) {
	r := &run{e: e, rep: rep, result: &Result{RunId: uuid.NewString()}}
	L.Info(fmt.Sprintf("%s run %s, report: %s", title, r.result.RunId, rep.Path()))
	err := rep.Writeln("%s on %s (run %s)", title, database.ToTimeStr(time.Now()), r.result.RunId)
	return r, err
}

// fail records a failure and reports whether the run has to stop.
func (r *run) fail(item string, err error) (bool, error) {
	r.result.Failed++
	L.Error(fmt.Errorf("copy failed for %s: %w", item, err))
	writeErr := r.rep.Writeln("FAILED %s: %v", item, err)
	if writeErr != nil {
		return true, writeErr
	}
	if r.e.opts.ContinueOnError {
		return false, nil
	}
	r.result.Err = fmt.Errorf("exporter: %s: %w", item, err)
	return true, nil
}

// copyOne copies src to dst unless dst already exists.
func (r *run) copyOne(src string, dst string) (bool, error) {
	exists, err := r.e.fs.Exists(dst)
	if err != nil {
		return r.fail(dst, err)
	}
	if exists {
		r.result.Skipped++
		L.Debug(fmt.Sprintf("SKIPPED (already exists) %s", dst))
		return false, r.rep.Writeln("SKIPPED (already exists) %s", dst)
	}
	L.Debug(fmt.Sprintf("Copying %s -> %s", src, dst))
	n, err := r.e.fs.CopyFile(src, dst)
	if err != nil {
		return r.fail(src, err)
	}
	r.result.Copied++
	r.result.BytesCopied += n
	return false, r.rep.Writeln("COPIED %s", dst)
}

// ensureDir reports ok=false when the directory is unusable; stop follows fail.
func (r *run) ensureDir(dir string) (ok bool, stop bool, err error) {
	created, err := r.e.fs.EnsureDir(dir)
	if err != nil {
		stop, err = r.fail(dir, err)
		return false, stop, err
	}
	if created {
		L.Info(fmt.Sprintf("Creating %s", dir))
	}
	return true, false, nil
}

func footer(done int, total int, label string) {
	pct := 100.0
	if total > 0 {
		pct = float64(done) * 100 / float64(total)
	}
	L.Footer(L.NORMAL, fmt.Sprintf("%s %d/%d %s", L.ProgressBar(pct, 0), done, total, L.TruncateString(label, 48, L.TRUNC_LEFT)))
}

// Apply copies the images of every mapped folder into plan.Dest, never overwriting.
// Catalog folders missing from the plan are reported as ignored.
func (e *Exporter) Apply(ctx context.Context, plan *model.ExportPlan, rep *report.Report) (*Result, error) {
	err := planner.Validate(plan)
	if err != nil {
		return nil, err
	}
	folders, err := e.repo.DistinctFolders(ctx)
	if err != nil {
		return nil, err
	}

	r, err := e.newRun(rep, "Export")
	if err != nil {
		return nil, err
	}
	if plan.Path != "" {
		if err := rep.Writeln("Using settings from %s", plan.Path); err != nil {
			return r.result, err
		}
	}

	mapped := make(map[string]struct{}, len(plan.Mappings))
	for _, m := range plan.Mappings {
		mapped[m.SourceFolder] = struct{}{}
	}
	if err := rep.Writeln(sectionIgnored); err != nil {
		return r.result, err
	}
	for _, folder := range folders {
		if _, ok := mapped[folder]; ok {
			continue
		}
		r.result.Ignored = append(r.result.Ignored, folder)
		if err := rep.Writeln("%s", folder); err != nil {
			return r.result, err
		}
	}
	if err := rep.Writeln(sectionCopy); err != nil {
		return r.result, err
	}

	defer L.Footer(L.NORMAL, "")
	stop := false
	for i, m := range plan.Mappings {
		if err := ctx.Err(); err != nil {
			r.result.Err = err
			_ = rep.Writeln("ABORTED: %v", err)
			break
		}
		footer(i, len(plan.Mappings), m.SourceFolder)

		sourceDir := filepath.Join(plan.Root, filepath.FromSlash(m.SourceFolder))
		destDir := filepath.Join(plan.Dest, filepath.FromSlash(m.DestFolder))
		if err := rep.Writeln("%s->%s", sourceDir, destDir); err != nil {
			return r.result, err
		}

		stop, err = r.copyFolder(ctx, m.SourceFolder, sourceDir, destDir)
		if err != nil {
			return r.result, err
		}
		if stop {
			break
		}
	}
	footer(len(plan.Mappings), len(plan.Mappings), "")

	if err := rep.Writeln(sectionDone); err != nil {
		return r.result, err
	}
	L.Info(fmt.Sprintf("Export done. copied: %d, skipped: %d, failed: %d, ignored folders: %d",
		r.result.Copied, r.result.Skipped, r.result.Failed, len(r.result.Ignored)))
	return r.result, nil
}

func (r *run) copyFolder(ctx context.Context, folder string, sourceDir string, destDir string) (bool, error) {
	ok, stop, err := r.ensureDir(destDir)
	if !ok {
		return stop, err
	}
	images, err := r.e.repo.ImagesInFolder(ctx, folder, r.e.opts.ImageExtensions)
	if err != nil {
		return r.fail(sourceDir, err)
	}
	for _, img := range images {
		stop, err := r.copyOne(filepath.Join(sourceDir, img.Name), filepath.Join(destDir, img.Name))
		if stop || err != nil {
			return stop, err
		}
	}
	return false, nil
}

// CopyListed copies every relative path listed in listPath from srcRoot to destRoot,
// keeping the folder structure. Lines starting with '#' and blank lines are skipped.
func (e *Exporter) CopyListed(ctx context.Context, listPath string, srcRoot string, destRoot string, rep *report.Report) (*Result, error) {
	paths, err := readList(listPath)
	if err != nil {
		return nil, err
	}
	r, err := e.newRun(rep, "Copy missing")
	if err != nil {
		return nil, err
	}
	if err := rep.Writeln("Using list from %s", listPath); err != nil {
		return r.result, err
	}
	if err := rep.Writeln("%s->%s", srcRoot, destRoot); err != nil {
		return r.result, err
	}
	if err := rep.Writeln(sectionCopy); err != nil {
		return r.result, err
	}

	ignored := make(map[string]struct{}, len(e.opts.IgnoreExtensions))
	for _, ext := range e.opts.IgnoreExtensions {
		ignored[ext] = struct{}{}
	}

	defer L.Footer(L.NORMAL, "")
	for i, p := range paths {
		if err := ctx.Err(); err != nil {
			r.result.Err = err
			_ = rep.Writeln("ABORTED: %v", err)
			break
		}
		footer(i, len(paths), p)

		rel := filepath.FromSlash(p)
		src := filepath.Join(srcRoot, rel)
		if !filepath.IsLocal(rel) {
			stop, err := r.fail(src, fmt.Errorf("%s is not a path inside %s", p, srcRoot))
			if err != nil {
				return r.result, err
			}
			if stop {
				break
			}
			continue
		}
		if _, ok := ignored[strings.ToLower(filepath.Ext(rel))]; ok {
			r.result.Ignored = append(r.result.Ignored, p)
			if err := rep.Writeln("IGNORED %s", src); err != nil {
				return r.result, err
			}
			continue
		}

		ok, stop, err := r.ensureDir(filepath.Join(destRoot, filepath.Dir(rel)))
		if err != nil {
			return r.result, err
		}
		if stop {
			break
		}
		if !ok {
			continue
		}
		stop, err = r.copyOne(src, filepath.Join(destRoot, rel))
		if err != nil {
			return r.result, err
		}
		if stop {
			break
		}
	}
	footer(len(paths), len(paths), "")

	if err := rep.Writeln(sectionDone); err != nil {
		return r.result, err
	}
	L.Info(fmt.Sprintf("Copy done. copied: %d, skipped: %d, failed: %d, ignored: %d",
		r.result.Copied, r.result.Skipped, r.result.Failed, len(r.result.Ignored)))
	return r.result, nil
}

func readList(listPath string) ([]string, error) {
	f, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("exporter: could not open list %s: %w", listPath, err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("exporter: could not read list %s: %w", listPath, err)
	}
	return paths, nil
}
