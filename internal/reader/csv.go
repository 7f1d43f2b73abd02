package reader

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vegasq/xlcat/internal/table"
)

// loadCSV reads the whole file as a grid and runs the same region
// location as workbook input. CSV cells carry no type information, so
// values are inferred from their text.
func loadCSV(path string, opts Options) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	region, err := locate(grid, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("table region located", "header_row", region.headerRow+1, "data_rows", len(region.dataRows))

	convert := func(_, _ int, raw string) interface{} {
		return convertCSVCell(raw)
	}
	return buildTable(grid, region, convert)
}

// convertCSVCell infers a typed value from cell text: numbers become
// float64, true/false (any case) become bool, everything else stays a
// string. Inf/NaN spellings stay strings so every value serializes.
func convertCSVCell(raw string) interface{} {
	if num, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(num, 0) && !math.IsNaN(num) {
		return num
	}
	if strings.EqualFold(raw, "true") {
		return true
	}
	if strings.EqualFold(raw, "false") {
		return false
	}
	return raw
}
