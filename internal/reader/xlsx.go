package reader

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/xlcat/internal/table"
)

// loadExcel reads a workbook sheet as a raw grid and cuts the table
// region out of it. Cell types come from the workbook itself.
func loadExcel(path string, opts Options) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet, err := pickSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	region, err := locate(grid, opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("table region located", "sheet", sheet, "header_row", region.headerRow+1, "data_rows", len(region.dataRows))

	convert := func(row, col int, raw string) interface{} {
		return convertExcelCell(f, sheet, row, col, raw)
	}
	return buildTable(grid, region, convert)
}

// pickSheet resolves the worksheet name, defaulting to the first sheet.
func pickSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrTableNotFound)
	}
	if name == "" {
		return sheets[0], nil
	}

	if idx, err := f.GetSheetIndex(name); err != nil || idx == -1 {
		return "", fmt.Errorf("%w: no sheet named %q (available: %s)", ErrTableNotFound, name, strings.Join(sheets, ", "))
	}
	return name, nil
}

// convertExcelCell types a formatted cell value using the cell's declared
// type. Dates keep their formatted text. Number parsing falls back to the
// raw string, and rejects Inf/NaN so every value stays serializable.
func convertExcelCell(f *excelize.File, sheet string, row, col int, raw string) interface{} {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return raw
	}
	cellType, err := f.GetCellType(sheet, cell)
	if err != nil {
		return raw
	}

	switch cellType {
	case excelize.CellTypeBool:
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
		return raw
	case excelize.CellTypeDate, excelize.CellTypeInlineString, excelize.CellTypeSharedString, excelize.CellTypeError:
		return raw
	default:
		// Number, formula, and unset cells carry numbers as formatted text
		if num, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(num, 0) && !math.IsNaN(num) {
			return num
		}
		return raw
	}
}
