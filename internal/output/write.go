package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vegasq/xlcat/internal/table"
)

// WriteTable writes the table to path in the given format. The write
// is atomic: output lands in a temp file in the destination directory
// and is renamed into place, so a failed run never leaves a partial or
// clobbered file behind.
func WriteTable(path string, format Format, t *table.Table) error {
	formatter, err := NewFormatter(format, io.Discard)
	if err != nil {
		return err
	}
	return writeAtomic(path, func(w io.Writer) error {
		formatter.SetOutput(w)
		return formatter.Format(t)
	})
}

// writeAtomic runs write against a temp file next to path and renames
// it into place on success. The temp file is removed on any failure.
func writeAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	// CreateTemp opens at 0600 and the rename would carry that mode to
	// the destination.
	if err := tmp.Chmod(outputMode(path)); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// outputMode keeps the destination's permissions when it already
// exists, 0644 otherwise.
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
