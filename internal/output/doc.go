// Package output provides formatters for writing tables to various output formats.
//
// This package defines the Formatter interface and provides implementations
// for JSON, YAML, CSV, and aligned text tables. All formatters work with
// the table.Table type and keep values in the table's column order.
//
// # Supported Formats
//
//   - JSON: Indented array of objects, keys in column order
//   - YAML: Sequence of mappings, keys in column order
//   - CSV: Comma-separated values with header row
//   - Table: Aligned text table for terminal display
//
// # Basic Usage
//
// Using the JSON formatter:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(tbl); err != nil {
//	    log.Fatal(err)
//	}
//
// Picking a formatter by name:
//
//	format, err := output.ParseFormat("yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	formatter, err := output.NewFormatter(format, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing Files
//
// WriteTable writes through a temp file and renames it into place, so a
// failed conversion never truncates an existing output file:
//
//	if err := output.WriteTable("out.json", output.FormatJSON, tbl); err != nil {
//	    log.Fatal(err)
//	}
//
// WriteCollection stores the table under a group and category key inside
// an existing JSON or YAML document, preserving unrelated entries:
//
//	err := output.WriteCollection("report.json", output.FormatJSON, "2024", "eu", tbl)
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(t *table.Table) error
//	    SetOutput(w io.Writer)
//	}
package output
