package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/vegasq/xlcat/internal/output"
	"github.com/vegasq/xlcat/internal/query"
	"github.com/vegasq/xlcat/internal/reader"
	"github.com/vegasq/xlcat/internal/table"
)

// run executes the load, filter, project, and write pipeline.
func run(opts *options, stdout io.Writer) error {
	tbl, err := reader.Load(opts.input, reader.Options{
		Sheet:         opts.sheet,
		HeaderKeyword: opts.headerKeyword,
		Range:         opts.cellRange,
		Offset:        opts.offset,
		Limit:         opts.limit,
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file '%s' not found\nPlease check the file path and try again.", opts.input)
		}
		return err
	}
	slog.Debug("table loaded", "file", opts.input, "columns", len(tbl.Columns), "rows", len(tbl.Rows))

	if opts.showHeaders {
		printHeaders(stdout, tbl)
		return nil
	}
	if opts.describe {
		return writeDescribe(opts, tbl, stdout)
	}

	if opts.where != "" {
		expr, err := query.ParseFilter(opts.where)
		if err != nil {
			return fmt.Errorf("invalid --where filter: %w", err)
		}
		filtered, err := query.ApplyFilter(tbl, expr)
		if err != nil {
			return columnError(err, tbl)
		}
		slog.Debug("filter applied", "matched", len(filtered.Rows), "of", len(tbl.Rows))
		tbl = filtered
	}

	if opts.selectCols != "" {
		selection, err := query.ParseSelection(opts.selectCols)
		if err != nil {
			return fmt.Errorf("invalid --select list: %w", err)
		}
		projected, err := query.Project(tbl, selection)
		if err != nil {
			return columnError(err, tbl)
		}
		tbl = projected
	}

	return writeOutput(opts, tbl)
}

// printHeaders lists the column names one per line.
func printHeaders(w io.Writer, tbl *table.Table) {
	fmt.Fprintln(w, "Available Headers:")
	for _, col := range tbl.Columns {
		fmt.Fprintln(w, col)
	}
}

// writeDescribe sends per-column summaries to the output file, or to
// stdout as a text table when no output is given.
func writeDescribe(opts *options, tbl *table.Table, stdout io.Writer) error {
	summary := table.DescribeTable(tbl)

	if opts.output != "" {
		format, err := resolveFormat(opts.format, opts.output)
		if err != nil {
			return err
		}
		return output.WriteTable(opts.output, format, summary)
	}

	format := output.FormatTable
	if opts.format != "" {
		parsed, err := output.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		format = parsed
	}
	formatter, err := output.NewFormatter(format, stdout)
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}

// writeOutput writes the converted table, either replacing the output
// file or merging into its group/category slot.
func writeOutput(opts *options, tbl *table.Table) error {
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	if opts.group != "" {
		if err := output.WriteCollection(opts.output, format, opts.group, opts.category, tbl); err != nil {
			return err
		}
		slog.Debug("collection updated", "file", opts.output, "group", opts.group, "category", opts.category, "rows", len(tbl.Rows))
		return nil
	}

	if err := output.WriteTable(opts.output, format, tbl); err != nil {
		return err
	}
	slog.Debug("output written", "file", opts.output, "format", string(format), "rows", len(tbl.Rows))
	return nil
}

// resolveFormat picks the output format from the flag when set, falling
// back to the output file extension.
func resolveFormat(name, path string) (output.Format, error) {
	if name != "" {
		return output.ParseFormat(name)
	}
	return output.DetectFormat(path)
}

// columnError attaches the available column names to unknown-column
// errors so the user can correct the filter or selection.
func columnError(err error, tbl *table.Table) error {
	if errors.Is(err, query.ErrUnknownColumn) {
		return fmt.Errorf("%w\nAvailable columns: %s", err, strings.Join(tbl.Columns, ", "))
	}
	return err
}
