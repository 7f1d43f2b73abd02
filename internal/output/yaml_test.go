package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/vegasq/xlcat/internal/table"
)

func TestYAMLFormatter_Format(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"Name", "Age", "Active", "Note"},
		Rows: []table.Row{
			{"Name": "alice", "Age": float64(30.5), "Active": true, "Note": nil},
			{"Name": "bob", "Age": float64(25.5), "Active": false, "Note": "on leave"},
		},
	}

	var buf bytes.Buffer
	formatter := NewYAMLFormatter(&buf)

	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"- Name: alice", "Age: 30.5", "Active: true", "Note: null", "- Name: bob", "Note: on leave"} {
		if !strings.Contains(output, want) {
			t.Errorf("Format() output missing %q:\n%s", want, output)
		}
	}

	var parsed []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Format() produced invalid YAML: %v\n%s", err, output)
	}
	if len(parsed) != 2 {
		t.Errorf("Expected 2 rows after parse, got %d", len(parsed))
	}
}

func TestYAMLFormatter_EmptyTable(t *testing.T) {
	tbl := &table.Table{Columns: []string{"id", "name"}}

	var buf bytes.Buffer
	formatter := NewYAMLFormatter(&buf)

	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("Format() output = %q, want empty sequence", buf.String())
	}
}

func TestYAMLFormatter_KeyOrder(t *testing.T) {
	// Keys must follow column order even when it is not alphabetical.
	tbl := &table.Table{
		Columns: []string{"z_last", "a_first", "m_middle"},
		Rows: []table.Row{
			{"z_last": "v1", "a_first": "v2", "m_middle": "v3"},
		},
	}

	var buf bytes.Buffer
	formatter := NewYAMLFormatter(&buf)

	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var v interface{}
	if err := yaml.UnmarshalWithOptions(buf.Bytes(), &v, yaml.UseOrderedMap()); err != nil {
		t.Fatalf("Format() produced invalid YAML: %v", err)
	}

	seq, ok := v.([]interface{})
	if !ok || len(seq) != 1 {
		t.Fatalf("Expected a sequence with 1 mapping, got %T", v)
	}
	row, ok := seq[0].(yaml.MapSlice)
	if !ok {
		t.Fatalf("Expected an ordered mapping, got %T", seq[0])
	}

	wantKeys := []string{"z_last", "a_first", "m_middle"}
	if len(row) != len(wantKeys) {
		t.Fatalf("Expected %d keys, got %d", len(wantKeys), len(row))
	}
	for i, want := range wantKeys {
		if key, _ := row[i].Key.(string); key != want {
			t.Errorf("Key %d = %q, want %q", i, row[i].Key, want)
		}
	}
}

func TestYAMLFormatter_SetOutput(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	formatter := NewYAMLFormatter(&buf1)

	tbl := &table.Table{
		Columns: []string{"id"},
		Rows:    []table.Row{{"id": "x"}},
	}

	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf1.Len() == 0 {
		t.Error("First buffer should have content")
	}

	formatter.SetOutput(&buf2)
	if err := formatter.Format(tbl); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf2.Len() == 0 {
		t.Error("Second buffer should have content")
	}
}
