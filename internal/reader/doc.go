// Package reader loads tabular data out of spreadsheet files.
//
// It reads xlsx workbooks, CSV files, and parquet files into a common
// Table structure: an ordered header plus rows keyed by column name.
//
// # Basic Usage
//
// Loading a table with default region location:
//
//	tbl, err := reader.Load("data.xlsx", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, row := range tbl.Rows {
//	    fmt.Printf("%v\n", row)
//	}
//
// # Region Location
//
// Spreadsheet-shaped input (xlsx, csv) is read as a raw cell grid first,
// then a table region is located inside it. By default the first
// non-empty row is the header and the non-empty rows below it are data.
// Two hints override that:
//
//	// header is the first row whose first cell is "Name"
//	reader.Load("report.xlsx", reader.Options{HeaderKeyword: "Name"})
//
//	// table is exactly this rectangle, first row is the header
//	reader.Load("report.xlsx", reader.Options{Range: "B2:E20"})
//
// Parquet input is already a table, so hints do not apply there.
//
// # Glob Patterns
//
// The input path may be a glob pattern, as long as it matches exactly
// one file:
//
//	tbl, err := reader.Load("reports/2024-*.xlsx", reader.Options{})
//
// Zero matches is a not-found error; several matches is an error listing
// them.
//
// The package uses github.com/xuri/excelize/v2 for workbook input and
// github.com/segmentio/parquet-go for parquet input.
package reader
