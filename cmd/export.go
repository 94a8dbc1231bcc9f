package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// exportCmd dumps the filtered raw records.
var exportCmd = &cobra.Command{
	Use:   "export [dataset-path]",
	Short: "Export filtered dataset records in any supported format.",
	Long: `Write the raw dataset records that match the active filters.

Unlike the report views, export carries every column, including all six
factor values, and supports parquet output for downstream analytics.
CSV exports use the canonical column names, so an exported file loads
straight back in.

Examples:
  # Everything, as CSV
  ladderboard export --output csv --output-file happiness.csv

  # One region's history as parquet
  ladderboard export --region "Western Europe" --output parquet --output-file we.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export records", err)
		}
	},
}
