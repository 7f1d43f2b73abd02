package output

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an output encoding.
type Format string

const (
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
	FormatTable Format = "table"
)

var (
	// ErrUnsupportedFormat is returned for format names and file
	// extensions that do not map to a known encoding.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrCannotUpdate is returned when a grouped update targets a
	// format that has no document structure to merge into.
	ErrCannotUpdate = errors.New("cannot update incrementally")
)

// ParseFormat maps a format name from the command line to a Format.
// Names are case-insensitive and "yml" is accepted as an alias for yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "csv":
		return FormatCSV, nil
	case "table":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: json, yaml, csv, table)", ErrUnsupportedFormat, name)
	}
}

// DetectFormat picks a Format from the extension of an output path.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".csv":
		return FormatCSV, nil
	case ".txt":
		return FormatTable, nil
	case "":
		return "", fmt.Errorf("%w: %s has no extension, use --format to pick one", ErrUnsupportedFormat, path)
	default:
		return "", fmt.Errorf("%w: extension %s", ErrUnsupportedFormat, ext)
	}
}
