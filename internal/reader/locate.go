package reader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vegasq/xlcat/internal/table"
)

// gridRegion identifies the table inside a raw cell grid. Row and column
// indexes are 0-based grid positions; width counts columns from left.
type gridRegion struct {
	headerRow int
	dataRows  []int
	left      int
	width     int
}

// cellConverter turns a non-empty raw cell into a typed value. row and
// col are 0-based grid positions of the cell.
type cellConverter func(row, col int, raw string) interface{}

// locate picks the region strategy from the options. Range wins over
// HeaderKeyword when both are set.
func locate(grid [][]string, opts Options) (gridRegion, error) {
	switch {
	case opts.Range != "":
		return locateRange(grid, opts.Range)
	case opts.HeaderKeyword != "":
		return locateKeyword(grid, opts.HeaderKeyword)
	default:
		return locateDefault(grid)
	}
}

// locateDefault treats the first non-empty row as the header and every
// non-empty row below it as data.
func locateDefault(grid [][]string) (gridRegion, error) {
	header := -1
	for r := range grid {
		if !isEmptyRow(grid[r]) {
			header = r
			break
		}
	}
	if header == -1 {
		return gridRegion{}, fmt.Errorf("%w: input has no data", ErrTableNotFound)
	}

	region := gridRegion{headerRow: header, left: 0, width: len(grid[header])}
	for r := header + 1; r < len(grid); r++ {
		if isEmptyRow(grid[r]) {
			continue
		}
		region.dataRows = append(region.dataRows, r)
	}
	return region, nil
}

// locateKeyword finds the header as the first row whose first cell equals
// the keyword. Later rows starting with the keyword repeat the header for
// a new section and are skipped, so all sections share one header.
func locateKeyword(grid [][]string, keyword string) (gridRegion, error) {
	header := -1
	for r := range grid {
		if strings.TrimSpace(cellAt(grid, r, 0)) == keyword {
			header = r
			break
		}
	}
	if header == -1 {
		return gridRegion{}, fmt.Errorf("%w: no row starts with header keyword %q", ErrTableNotFound, keyword)
	}

	region := gridRegion{headerRow: header, left: 0, width: len(grid[header])}
	for r := header + 1; r < len(grid); r++ {
		if isEmptyRow(grid[r]) {
			continue
		}
		if strings.TrimSpace(cellAt(grid, r, 0)) == keyword {
			continue
		}
		region.dataRows = append(region.dataRows, r)
	}
	return region, nil
}

// locateRange takes the table from an explicit A1:D20 rectangle. The
// rectangle's first row is the header.
func locateRange(grid [][]string, ref string) (gridRegion, error) {
	left, top, right, bottom, err := parseRange(ref)
	if err != nil {
		return gridRegion{}, err
	}

	headerRow := top - 1
	if headerRow >= len(grid) {
		return gridRegion{}, fmt.Errorf("%w: range %s is beyond the input data", ErrTableNotFound, ref)
	}

	region := gridRegion{headerRow: headerRow, left: left - 1, width: right - left + 1}
	if isEmptyWindow(grid, headerRow, region.left, region.width) {
		return gridRegion{}, fmt.Errorf("%w: range %s contains no cells", ErrTableNotFound, ref)
	}

	for r := top; r < bottom && r < len(grid); r++ {
		if isEmptyWindow(grid, r, region.left, region.width) {
			continue
		}
		region.dataRows = append(region.dataRows, r)
	}
	return region, nil
}

// parseRange parses an A1:D20 style reference into 1-based coordinates,
// normalized so left <= right and top <= bottom.
func parseRange(ref string) (left, top, right, bottom int, err error) {
	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q is not of the form A1:D20", ErrInvalidRange, ref)
	}

	c1, r1, err := excelize.CellNameToCoordinates(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	c2, r2, err := excelize.CellNameToCoordinates(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	if c2 < c1 {
		c1, c2 = c2, c1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return c1, r1, c2, r2, nil
}

// buildTable materializes the region into a Table. Short rows are padded
// with nil; long rows are truncated to the header width.
func buildTable(grid [][]string, region gridRegion, convert cellConverter) (*table.Table, error) {
	window := make([]string, region.width)
	for i := range window {
		window[i] = cellAt(grid, region.headerRow, region.left+i)
	}
	header, err := buildHeader(window)
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, 0, len(region.dataRows))
	for _, r := range region.dataRows {
		row := make(table.Row, len(header))
		for i, name := range header {
			c := region.left + i
			raw := cellAt(grid, r, c)
			if raw == "" {
				row[name] = nil
				continue
			}
			row[name] = convert(r, c, raw)
		}
		rows = append(rows, row)
	}

	return &table.Table{Columns: header, Rows: rows}, nil
}

// buildHeader trims header cells and names empty ones by position
// (column_3 style, 1-based). Duplicate names are rejected.
func buildHeader(cells []string) ([]string, error) {
	header := make([]string, len(cells))
	seen := make(map[string]bool, len(cells))
	for i, raw := range cells {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate column name %q", ErrInvalidHeader, name)
		}
		seen[name] = true
		header[i] = name
	}
	return header, nil
}

// cellAt returns the cell value or "" when the position is outside the
// grid. Rows in the grid may be ragged.
func cellAt(grid [][]string, row, col int) string {
	if row < 0 || row >= len(grid) {
		return ""
	}
	if col < 0 || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

func isEmptyRow(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isEmptyWindow(grid [][]string, row, left, width int) bool {
	for i := 0; i < width; i++ {
		if strings.TrimSpace(cellAt(grid, row, left+i)) != "" {
			return false
		}
	}
	return true
}
