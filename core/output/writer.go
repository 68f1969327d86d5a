// Package output handles file naming and writing for docmd outputs.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns src with its extension replaced by ext.
// Example: docs/report.docx, ".md" → docs/report.md
func DefaultPath(src, ext string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ext
}

// Writer writes rendered output to disk.
type Writer struct {
	// Perm is the mode of newly created files.
	Perm os.FileMode
}

// New creates a Writer.
func New() *Writer {
	return &Writer{Perm: 0644}
}

// Write stores data at path, creating parent directories and replacing any
// existing file.
func (w *Writer) Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, w.Perm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
