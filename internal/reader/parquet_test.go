package reader

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/segmentio/parquet-go"
)

type account struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
}

func writeParquet(t *testing.T, accounts []account) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.parquet")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	writer := parquet.NewGenericWriter[account](file)
	if _, err := writer.Write(accounts); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadParquet(t *testing.T) {
	path := writeParquet(t, []account{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7},
	})

	tbl, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantColumns := []string{"active", "age", "id", "name", "score"}
	gotColumns := append([]string(nil), tbl.Columns...)
	sort.Strings(gotColumns)
	if len(gotColumns) != len(wantColumns) {
		t.Fatalf("expected %d columns, got %v", len(wantColumns), tbl.Columns)
	}
	for i := range wantColumns {
		if gotColumns[i] != wantColumns[i] {
			t.Fatalf("columns = %v, want %v (any order)", tbl.Columns, wantColumns)
		}
	}

	if len(tbl.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tbl.Rows))
	}

	first := tbl.Rows[0]
	if first["name"] != "alice" {
		t.Errorf("name = %v (%T), want alice", first["name"], first["name"])
	}
	if first["age"] != int64(30) {
		t.Errorf("age = %v (%T), want int64 30", first["age"], first["age"])
	}
	if first["score"] != float64(95.5) {
		t.Errorf("score = %v (%T), want 95.5", first["score"], first["score"])
	}
	if first["active"] != true {
		t.Errorf("active = %v, want true", first["active"])
	}
}

func TestLoadParquet_RejectsLocationHints(t *testing.T) {
	path := writeParquet(t, []account{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
	})

	hints := map[string]Options{
		"sheet":          {Sheet: "Sheet1"},
		"header keyword": {HeaderKeyword: "id"},
		"range":          {Range: "A1:B2"},
	}

	for name, opts := range hints {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(path, opts); err == nil {
				t.Error("Load() expected error for location hint on parquet input")
			}
		})
	}
}

func TestLoadParquet_OffsetLimit(t *testing.T) {
	path := writeParquet(t, []account{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7},
	})

	tbl, err := Load(path, Options{Offset: 1, Limit: 1})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(tbl.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tbl.Rows))
	}
	if tbl.Rows[0]["name"] != "bob" {
		t.Errorf("name = %v, want bob", tbl.Rows[0]["name"])
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want interface{}
	}{
		{"bytes to string", []byte("hello"), "hello"},
		{"float32 widens", float32(1.5), float64(1.5)},
		{"int32 widens", int32(7), int64(7)},
		{"int widens", int(7), int64(7)},
		{"int64 passes", int64(7), int64(7)},
		{"string passes", "x", "x"},
		{"bool passes", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeValue(tt.in); got != tt.want {
				t.Errorf("normalizeValue(%v) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
			}
		})
	}
}
