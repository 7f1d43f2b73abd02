package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/xlcat/internal/table"
)

// loadParquet reads every row of a parquet file into a Table. Column
// order follows the file schema, not map iteration order.
func loadParquet(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	rows := make([]table.Row, 0)
	for {
		raw := make(map[string]interface{})
		err := reader.Read(&raw)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(columns))
		for _, col := range columns {
			value, ok := raw[col]
			if !ok {
				row[col] = nil
				continue
			}
			row[col] = normalizeValue(value)
		}
		rows = append(rows, row)
	}

	return &table.Table{Columns: columns, Rows: rows}, nil
}

// normalizeValue maps parquet physical types onto the cell value types
// the rest of the pipeline works with.
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case float32:
		return float64(val)
	case int:
		return int64(val)
	case int32:
		return int64(val)
	default:
		return val
	}
}
