package output

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/vegasq/xlcat/internal/table"
)

// JSONFormatter outputs the table as an indented JSON array of objects.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes the table as a JSON array, one object per row. Object
// keys follow the table's column order.
func (j *JSONFormatter) Format(t *table.Table) error {
	rows, err := jsonRows(t)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = j.writer.Write(data)
	return err
}

// jsonRows encodes every row as a raw JSON object. Objects are framed
// by hand because encoding/json sorts map keys, and the keys here must
// stay in column order.
func jsonRows(t *table.Table) ([]json.RawMessage, error) {
	rows := make([]json.RawMessage, 0, len(t.Rows))
	for _, row := range t.Rows {
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, col := range t.Columns {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col)
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			value, err := json.Marshal(row[col])
			if err != nil {
				return nil, err
			}
			buf.Write(value)
		}
		buf.WriteByte('}')
		rows = append(rows, json.RawMessage(buf.Bytes()))
	}
	return rows, nil
}
