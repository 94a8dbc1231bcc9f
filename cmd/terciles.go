package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// tercilesCmd shows tercile profiles for all countries of one year.
var tercilesCmd = &cobra.Command{
	Use:   "terciles [dataset-path]",
	Short: "Classify countries into Low/Average/High terciles per factor.",
	Long: `Split the selected year's countries into thirds (Low, Average, High)
for the ladder score and for every factor, then show each country's
profile across all of them.

This is the tabular form of a choropleth map: it surfaces countries
whose factor profile disagrees with their overall score, such as a
High-GDP country sitting in the Low freedom tercile.

Examples:
  # Tercile profiles for the latest year
  ladderboard terciles

  # Latin America in 2019, as CSV
  ladderboard terciles --year 2019 --region "Latin America and Caribbean" --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMap(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run terciles report", err)
		}
	},
}
