package reader

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/xlcat/internal/table"
)

var (
	// ErrUnsupportedFormat is returned for input extensions no backend handles
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrTableNotFound is returned when no table region matches the hints
	ErrTableNotFound = errors.New("table not found")

	// ErrAmbiguousPattern is returned when a glob matches more than one file
	ErrAmbiguousPattern = errors.New("pattern matches multiple files")

	// ErrInvalidHeader is returned for header rows that cannot name columns
	ErrInvalidHeader = errors.New("invalid header")

	// ErrInvalidRange is returned for malformed --range references
	ErrInvalidRange = errors.New("invalid range reference")
)

// Options locate the table inside the source file.
//
// Sheet selects the worksheet for workbook input (default: first sheet).
// HeaderKeyword and Range are alternative region hints; when both are set
// Range wins. Offset and Limit slice the data rows after the region is
// located, before any filtering.
type Options struct {
	Sheet         string
	HeaderKeyword string
	Range         string
	Offset        int
	Limit         int
}

// Load reads the table from path, dispatching on the file extension.
//
// Supported extensions: .xlsx, .xlsm, .xltx, .xltm (workbook), .csv, and
// .parquet. The path may be a glob pattern matching exactly one file.
func Load(path string, opts Options) (*table.Table, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(resolved); err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	slog.Debug("input resolved", "path", resolved)

	var t *table.Table
	ext := strings.ToLower(filepath.Ext(resolved))
	switch ext {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		t, err = loadExcel(resolved, opts)
	case ".csv":
		if opts.Sheet != "" {
			return nil, fmt.Errorf("sheet selection requires a workbook input, got %s", resolved)
		}
		t, err = loadCSV(resolved, opts)
	case ".parquet":
		if opts.Sheet != "" || opts.HeaderKeyword != "" || opts.Range != "" {
			return nil, fmt.Errorf("table location hints do not apply to parquet input %s", resolved)
		}
		t, err = loadParquet(resolved)
	case "":
		return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, resolved)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	return sliceRows(t, opts.Offset, opts.Limit), nil
}

// ResolvePath expands a glob pattern to exactly one file path.
//
// Plain paths (no wildcards) pass through untouched. Zero matches is a
// not-found error; more than one match is an error listing them.
func ResolvePath(pattern string) (string, error) {
	// Check if pattern contains glob wildcards
	if !strings.ContainsAny(pattern, "*?[]{}") {
		return pattern, nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid glob pattern: %w", err)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("no files match pattern %s: %w", pattern, os.ErrNotExist)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("%w: %s matches %s", ErrAmbiguousPattern, pattern, strings.Join(matches, ", "))
	}

	return matches[0], nil
}

// sliceRows applies the offset/limit window to the data rows. Zero or
// negative values leave that side of the window open.
func sliceRows(t *table.Table, offset, limit int) *table.Table {
	rows := t.Rows
	if offset > 0 {
		if offset >= len(rows) {
			rows = []table.Row{}
		} else {
			rows = rows[offset:]
		}
	}
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	if len(rows) == len(t.Rows) {
		return t
	}
	return &table.Table{Columns: t.Columns, Rows: rows}
}
