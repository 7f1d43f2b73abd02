// Package cli implements the xlcat command line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// options holds all flag values for a single invocation.
type options struct {
	input         string
	output        string
	where         string
	selectCols    string
	format        string
	sheet         string
	headerKeyword string
	cellRange     string
	offset        int
	limit         int
	group         string
	category      string
	showHeaders   bool
	describe      bool
	verbose       bool
}

// NewRootCmd returns the xlcat root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "xlcat",
		Short: "Convert spreadsheet data to structured output formats",
		Long: `xlcat reads tabular data from spreadsheet files, optionally filters
and trims it, and writes the result as JSON, YAML, CSV, or an aligned
text table.

Input formats:  xlsx, csv, parquet (a glob pattern must match one file)
Output formats: json, yaml, csv, table (picked by extension or --format)

Examples:
  xlcat -i report.xlsx --output report.json
  xlcat -i report.xlsx --sheet Orders --where "total > 100" --output big.yaml
  xlcat -i 'exports/*.xlsx' --select "name,total" --output picked.csv
  xlcat -i data.parquet --show-headers
  xlcat -i report.xlsx --describe
  xlcat -i report.xlsx --group 2024 --category eu --output rollup.json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(opts.verbose)
			if err := opts.validate(); err != nil {
				return err
			}
			return run(opts, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Input file (.xlsx, .csv, .parquet) or glob pattern")
	flags.StringVar(&opts.output, "output", "", "Output file (.json, .yaml, .csv, .txt)")
	flags.StringVar(&opts.where, "where", "", "Row filter, e.g. \"age > 30 AND active == true\"")
	flags.StringVar(&opts.selectCols, "select", "", "Comma-separated columns to keep, e.g. \"name,age\"")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format: json, yaml, csv, table (default: by output extension)")
	flags.StringVar(&opts.sheet, "sheet", "", "Worksheet to read (workbook inputs only, default: first sheet)")
	flags.StringVar(&opts.headerKeyword, "header-keyword", "", "Treat the first row starting with this keyword as the header")
	flags.StringVar(&opts.cellRange, "range", "", "Cell range holding the table, e.g. A1:D20")
	flags.IntVar(&opts.offset, "offset", 0, "Skip this many data rows")
	flags.IntVar(&opts.limit, "limit", 0, "Limit number of rows (0 = unlimited)")
	flags.StringVar(&opts.group, "group", "", "Store rows under this group key in the output document")
	flags.StringVar(&opts.category, "category", "", "Store rows under this category key within the group")
	flags.BoolVar(&opts.showHeaders, "show-headers", false, "Print column names instead of converting")
	flags.BoolVar(&opts.describe, "describe", false, "Print per-column summaries instead of converting")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("range", "header-keyword")
	cmd.MarkFlagsMutuallyExclusive("show-headers", "describe")

	return cmd
}

// validate checks flag combinations that cobra cannot express.
func (o *options) validate() error {
	if o.offset < 0 {
		return fmt.Errorf("--offset must be non-negative, got %d", o.offset)
	}
	if o.limit < 0 {
		return fmt.Errorf("--limit must be non-negative, got %d", o.limit)
	}
	if (o.group == "") != (o.category == "") {
		return fmt.Errorf("--group and --category must be used together")
	}

	if o.showHeaders || o.describe {
		if o.group != "" {
			return fmt.Errorf("--group and --category only apply when converting")
		}
		if o.where != "" || o.selectCols != "" {
			return fmt.Errorf("--where and --select only apply when converting")
		}
		if o.showHeaders && o.output != "" {
			return fmt.Errorf("--output does not apply to --show-headers")
		}
		return nil
	}

	if o.output == "" {
		return fmt.Errorf("--output is required unless --show-headers or --describe is used")
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging configures the global slog logger. Diagnostics go to
// stderr so stdout stays clean for data.
func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
