package report

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Report is a line oriented text file opened once for a run and closed once at its end.
type Report struct {
	path string
	file *os.File
	w    *bufio.Writer
	mu   sync.Mutex
}

// Create truncates (or creates) the report file and its parent directories.
func Create(reportPath string) (*Report, error) {
	err := os.MkdirAll(filepath.Dir(reportPath), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("report: could not create directory for %s: %w", reportPath, err)
	}
	f, err := os.OpenFile(reportPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("report: could not open %s: %w", reportPath, err)
	}
	return &Report{path: reportPath, file: f, w: bufio.NewWriter(f)}, nil
}

func (r *Report) Path() string {
	return r.path
}

// Writeln appends one formatted line and flushes it so earlier lines survive a later failure.
func (r *Report) Writeln(format string, args ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return fmt.Errorf("report: %s is closed", r.path)
	}
	_, err := fmt.Fprintf(r.w, format+"\n", args...)
	if err != nil {
		return err
	}
	return r.w.Flush()
}

func (r *Report) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	flushErr := r.w.Flush()
	closeErr := r.file.Close()
	r.file = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
