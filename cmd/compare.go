package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// compareCmd shows per-country movement between two years.
var compareCmd = &cobra.Command{
	Use:   "compare [dataset-path]",
	Short: "Compare country scores and ranks between two report years.",
	Long: `Show how countries moved between a base year and a target year.

Countries present in both years are sorted by the size of their score
change; the --limit flag caps that list. Countries that appear only in
the target year are reported as new, and countries that vanished are
reported as dropped, regardless of the limit.

Examples:
  # A decade of movement
  ladderboard compare --base-year 2015 --target-year 2024

  # Biggest movers in Sub-Saharan Africa
  ladderboard compare --base-year 2019 --target-year 2024 --region "Sub-Saharan Africa" --limit 5`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run comparison report", err)
		}
	},
}
