package scanner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"phototree/database/model"
	"phototree/database/repository"
	L "phototree/logger"
)

// sqlite keeps these next to the catalog while it is open
var catalogCompanions = []string{"", "-journal", "-wal", "-shm"}

type Fingerprinter interface {
	Fingerprint(root string, filePath string) (*model.CatalogRecord, error)
	IsImage(ext string) bool
}

type Options struct {
	// CatalogPath is never indexed, nor are its sqlite companion files.
	CatalogPath string
	// Progress receives one line per directory: the directory then '.' per image and '?' per other file.
	Progress io.Writer
}

type Summary struct {
	Directories int
	Files       int
	Images      int
	Bytes       uint64
}

type Scanner struct {
	repo    repository.CatalogRepository
	fp      Fingerprinter
	opts    Options
	skipped map[string]struct{}
}

func New(repo repository.CatalogRepository, fp Fingerprinter, opts Options) *Scanner {
	skipped := map[string]struct{}{}
	if opts.CatalogPath != "" && opts.CatalogPath != ":memory:" {
		abs, err := filepath.Abs(opts.CatalogPath)
		if err == nil {
			for _, suffix := range catalogCompanions {
				skipped[abs+suffix] = struct{}{}
			}
		}
	}
	if opts.Progress == nil {
		opts.Progress = progressWriter{}
	}
	return &Scanner{repo: repo, fp: fp, opts: opts, skipped: skipped}
}

type progressWriter struct{}

func (progressWriter) Write(p []byte) (int, error) {
	return L.Print(string(p))
}

// Scan indexes every regular file under root, committing one batch per directory.
// Cancellation is honoured between directories only; everything committed before stays.
func (s *Scanner) Scan(ctx context.Context, root string) (*Summary, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("scanner: invalid root %s: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("scanner: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanner: %s is not a directory", absRoot)
	}
	L.Info(fmt.Sprintf("Scanning %s", absRoot))
	summary := &Summary{}
	err = s.scanDir(ctx, absRoot, absRoot, summary)
	return summary, err
}

func (s *Scanner) scanDir(ctx context.Context, root string, dir string, summary *Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scanner: could not read %s: %w", dir, err)
	}

	var markers strings.Builder
	var batch []model.CatalogRecord
	var subDirs []string
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subDirs = append(subDirs, entryPath)
			continue
		}
		if !entry.Type().IsRegular() {
			L.Debug(fmt.Sprintf("scanner: skipping non regular file %s", entryPath))
			continue
		}
		if _, ok := s.skipped[entryPath]; ok {
			L.Debug(fmt.Sprintf("scanner: skipping catalog file %s", entryPath))
			continue
		}

		rec, err := s.fp.Fingerprint(root, entryPath)
		if err != nil {
			fmt.Fprintln(s.opts.Progress, dir+markers.String())
			return err
		}
		if s.fp.IsImage(rec.Extension) {
			markers.WriteString(" .")
			summary.Images++
		} else {
			markers.WriteString(" ?")
		}
		summary.Files++
		summary.Bytes += uint64(rec.SizeBytes)
		batch = append(batch, *rec)
	}
	fmt.Fprintln(s.opts.Progress, dir+markers.String())

	// a started directory is always committed, even when ctx is cancelled meanwhile
	err = s.repo.InsertBatch(context.WithoutCancel(ctx), batch)
	if err != nil {
		return fmt.Errorf("scanner: could not store %s: %w", dir, err)
	}
	summary.Directories++

	for _, sub := range subDirs {
		err := s.scanDir(ctx, root, sub, summary)
		if err != nil {
			return err
		}
	}
	return nil
}
