package output

import (
	"fmt"
	"io"

	"github.com/vegasq/xlcat/internal/table"
)

// Formatter converts a table into one output encoding.
type Formatter interface {
	// Format writes the table to the configured writer.
	Format(t *table.Table) error

	// SetOutput sets the output writer
	SetOutput(w io.Writer)
}

// NewFormatter creates a formatter for the given format writing to w.
func NewFormatter(format Format, w io.Writer) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(w), nil
	case FormatYAML:
		return NewYAMLFormatter(w), nil
	case FormatCSV:
		return NewCSVFormatter(w), nil
	case FormatTable:
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
