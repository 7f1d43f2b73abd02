package output

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/vegasq/xlcat/internal/table"
)

// YAMLFormatter outputs the table as a YAML sequence of mappings.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// SetOutput sets the output writer
func (y *YAMLFormatter) SetOutput(w io.Writer) {
	y.writer = w
}

// Format writes the table as a YAML sequence, one mapping per row.
// Mapping keys follow the table's column order.
func (y *YAMLFormatter) Format(t *table.Table) error {
	data, err := yaml.Marshal(yamlRows(t))
	if err != nil {
		return err
	}
	_, err = y.writer.Write(data)
	return err
}

// yamlRows converts every row into an ordered mapping. MapSlice keeps
// keys in insertion order where a plain map would not.
func yamlRows(t *table.Table) []yaml.MapSlice {
	rows := make([]yaml.MapSlice, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(yaml.MapSlice, 0, len(t.Columns))
		for _, col := range t.Columns {
			m = append(m, yaml.MapItem{Key: col, Value: row[col]})
		}
		rows = append(rows, m)
	}
	return rows
}
