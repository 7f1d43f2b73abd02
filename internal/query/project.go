package query

import (
	"fmt"
	"strings"

	"github.com/vegasq/xlcat/internal/table"
)

// ParseSelection splits a --select list into column names.
//
// Names are comma-separated and trimmed of surrounding whitespace. Empty
// entries and duplicates are rejected.
func ParseSelection(input string) ([]string, error) {
	parts := strings.Split(input, ",")

	columns := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("%w: empty column name in selection", ErrSyntax)
		}
		if err := ValidateColumnName(name); err != nil {
			return nil, err
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column %q in selection", ErrSyntax, name)
		}
		seen[name] = true
		columns = append(columns, name)
	}

	return columns, nil
}

// Project returns a new table narrowed to the selected columns, in
// selection order. Every selected column must be in the table header.
func Project(t *table.Table, columns []string) (*table.Table, error) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			return nil, unknownColumn(col)
		}
	}

	rows := make([]table.Row, len(t.Rows))
	for i, row := range t.Rows {
		projected := make(table.Row, len(columns))
		for _, col := range columns {
			projected[col] = row[col]
		}
		rows[i] = projected
	}

	return &table.Table{
		Columns: append([]string(nil), columns...),
		Rows:    rows,
	}, nil
}
