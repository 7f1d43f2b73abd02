package reader

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "Name,Age,Active\nalice,30,true\nbob,25,false\n")

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"Name", "Age", "Active"}) {
		t.Errorf("columns = %v, want [Name Age Active]", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}

	first := tbl.Rows[0]
	if first["Name"] != "alice" {
		t.Errorf("Name = %v (%T), want alice", first["Name"], first["Name"])
	}
	if first["Age"] != float64(30) {
		t.Errorf("Age = %v (%T), want float64 30", first["Age"], first["Age"])
	}
	if first["Active"] != true {
		t.Errorf("Active = %v (%T), want true", first["Active"], first["Active"])
	}
	if tbl.Rows[1]["Active"] != false {
		t.Errorf("Active = %v, want false", tbl.Rows[1]["Active"])
	}
}

func TestLoadCSV_CellTyping(t *testing.T) {
	tests := []struct {
		name string
		cell string
		want interface{}
	}{
		{"integer becomes float64", "42", float64(42)},
		{"float", "3.14", float64(3.14)},
		{"negative", "-7", float64(-7)},
		{"scientific notation", "1e3", float64(1000)},
		{"bool upper", "TRUE", true},
		{"bool mixed case", "False", false},
		{"plain text", "hello", "hello"},
		{"numeric-ish text", "12abc", "12abc"},
		{"inf stays text", "Inf", "Inf"},
		{"nan stays text", "NaN", "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertCSVCell(tt.cell)
			if got != tt.want {
				t.Errorf("convertCSVCell(%q) = %v (%T), want %v (%T)", tt.cell, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoadCSV_EmptyCellsAreNil(t *testing.T) {
	path := writeCSV(t, "Name,Age\nalice,\n,30\n")

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if tbl.Rows[0]["Age"] != nil {
		t.Errorf("expected nil Age, got %v", tbl.Rows[0]["Age"])
	}
	if tbl.Rows[1]["Name"] != nil {
		t.Errorf("expected nil Name, got %v", tbl.Rows[1]["Name"])
	}
}

func TestLoadCSV_RaggedRowsPad(t *testing.T) {
	path := writeCSV(t, "Name,Age,City\nalice,30\nbob\n")

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	for i, row := range tbl.Rows {
		if len(row) != 3 {
			t.Errorf("row %d: expected 3 keys, got %d", i, len(row))
		}
	}
	if tbl.Rows[1]["Age"] != nil || tbl.Rows[1]["City"] != nil {
		t.Errorf("expected padded cells to be nil, got %v", tbl.Rows[1])
	}
}

func TestLoadCSV_HeaderKeyword(t *testing.T) {
	content := "report for 2024,\n" +
		"Item,Count\n" +
		"apples,10\n" +
		"Item,Count\n" +
		"pears,5\n"
	path := writeCSV(t, content)

	tbl, err := Load(path, Options{HeaderKeyword: "Item"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"Item", "Count"}) {
		t.Errorf("columns = %v, want [Item Count]", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows across sections, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0]["Item"] != "apples" || tbl.Rows[1]["Item"] != "pears" {
		t.Errorf("unexpected rows: %v", tbl.Rows)
	}
}

func TestLoadCSV_Range(t *testing.T) {
	content := "junk,junk,junk\n" +
		",Name,Age\n" +
		",alice,30\n" +
		",bob,25\n"
	path := writeCSV(t, content)

	tbl, err := Load(path, Options{Range: "B2:C4"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"Name", "Age"}) {
		t.Errorf("columns = %v, want [Name Age]", tbl.Columns)
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
}

func TestLoadCSV_OffsetLimit(t *testing.T) {
	path := writeCSV(t, "n\n1\n2\n3\n4\n5\n")

	tbl, err := Load(path, Options{Offset: 1, Limit: 2})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0]["n"] != float64(2) || tbl.Rows[1]["n"] != float64(3) {
		t.Errorf("unexpected window: %v", tbl.Rows)
	}
}

func TestLoadCSV_SkipsLeadingEmptyRows(t *testing.T) {
	path := writeCSV(t, ",\n,\nName,Age\nalice,30\n")

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !reflect.DeepEqual(tbl.Columns, []string{"Name", "Age"}) {
		t.Errorf("columns = %v, want [Name Age]", tbl.Columns)
	}
	if len(tbl.Rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(tbl.Rows))
	}
}
