package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/xlcat/internal/table"
)

// TableFormatter outputs the table as an aligned text table for
// terminal display.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new text table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *TableFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders the table with column headers as they appear in the
// input, without case normalization.
func (f *TableFormatter) Format(t *table.Table) error {
	w := tablewriter.NewWriter(f.writer)
	w.SetHeader(t.Columns)
	w.SetAutoFormatHeaders(false)
	w.SetAutoWrapText(false)

	for _, row := range t.Rows {
		record := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			record[i] = formatValue(row[col])
		}
		w.Append(record)
	}

	w.Render()
	return nil
}
