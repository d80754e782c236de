// Package scanlog appends rendered reports to per-league log files.
//
// Each league gets one append-only UTF-8 text file under the log directory,
// named after the sanitized league display name. Prior contents are never
// touched; every append contributes the report text plus a single trailing
// newline.
package scanlog

import (
	"fmt"
	"os"
	"path/filepath"

	"picktrack/internal/textutil"
)

// Writer appends reports under a fixed log directory.
type Writer struct {
	dir string
}

// NewWriter creates a report log writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Path returns the log file path for a league. The display name is sanitized
// before use as a path segment; fallback is used when nothing safe remains.
func (w *Writer) Path(leagueName, fallback string) string {
	name := textutil.SanitizeName(leagueName)
	if name == "" {
		name = textutil.SanitizeName(fallback)
	}
	if name == "" {
		name = "league"
	}
	return filepath.Join(w.dir, name+"_log.txt")
}

// Append writes the report text followed by one newline to the league's log
// file, creating the directory and the file as needed. It returns the path
// written so callers can surface it to the user.
func (w *Writer) Append(leagueName, fallback, text string) (string, error) {
	path := w.Path(leagueName, fallback)

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return path, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return path, fmt.Errorf("open log file: %w", err)
	}

	if _, err := file.WriteString(text + "\n"); err != nil {
		_ = file.Close()
		return path, fmt.Errorf("append report: %w", err)
	}
	if err := file.Close(); err != nil {
		return path, fmt.Errorf("close log file: %w", err)
	}
	return path, nil
}
