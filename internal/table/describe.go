package table

import (
	"github.com/montanaflynn/stats"
)

// ColumnInfo summarizes a single column for inspection modes.
type ColumnInfo struct {
	Name     string
	Type     string
	NonEmpty int

	// Min, Mean, and Max are nil for non-numeric columns.
	Min  *float64
	Mean *float64
	Max  *float64
}

// Describe summarizes each column of t: the value type, how many cells
// are non-empty, and min/mean/max for numeric columns.
func Describe(t *Table) []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(t.Columns))

	for _, col := range t.Columns {
		info := ColumnInfo{Name: col}
		var nums []float64

		for _, row := range t.Rows {
			value := row[col]
			if value == nil {
				continue
			}
			info.NonEmpty++
			info.Type = mergeType(info.Type, typeName(value))
			if num, ok := toNumber(value); ok {
				nums = append(nums, num)
			}
		}

		if info.Type == "" {
			info.Type = "empty"
		}
		if info.Type == "number" && len(nums) > 0 {
			if min, err := stats.Min(nums); err == nil {
				info.Min = &min
			}
			if max, err := stats.Max(nums); err == nil {
				info.Max = &max
			}
			if mean, err := stats.Mean(nums); err == nil {
				mean, _ = stats.Round(mean, 4)
				info.Mean = &mean
			}
		}

		infos = append(infos, info)
	}

	return infos
}

// DescribeTable renders the summaries as a table so they can flow
// through the regular output formatters.
func DescribeTable(t *Table) *Table {
	infos := Describe(t)

	rows := make([]Row, len(infos))
	for i, info := range infos {
		rows[i] = Row{
			"column":    info.Name,
			"type":      info.Type,
			"non_empty": int64(info.NonEmpty),
			"min":       unwrap(info.Min),
			"mean":      unwrap(info.Mean),
			"max":       unwrap(info.Max),
		}
	}

	return &Table{
		Columns: []string{"column", "type", "non_empty", "min", "mean", "max"},
		Rows:    rows,
	}
}

// typeName classifies a cell value into string, number, or boolean.
func typeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	default:
		return "other"
	}
}

// mergeType folds a value's type into the column type seen so far.
func mergeType(current, next string) string {
	if current == "" || current == next {
		return next
	}
	return "mixed"
}

// toNumber converts numeric cell values to float64.
func toNumber(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

func unwrap(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
