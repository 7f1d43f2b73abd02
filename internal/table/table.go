// Package table defines the in-memory table model shared by the loader,
// the filter engine, and the serializers.
package table

// Row maps column names to cell values.
//
// Loaders produce a fixed value set: string, float64, int64, bool, and
// nil for empty cells. Dates keep their formatted string.
type Row = map[string]interface{}

// Table is a rectangular slice of spreadsheet data: an ordered header
// and the rows beneath it.
//
// Every row carries exactly the header's column set; loaders pad short
// rows and trim long ones to keep that invariant. Columns preserves the
// source header order, Rows the source row order.
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn reports whether name is part of the header.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}
