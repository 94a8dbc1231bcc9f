package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// breakdownCmd decomposes scores into factor contributions.
var breakdownCmd = &cobra.Command{
	Use:   "breakdown [dataset-path]",
	Short: "Decompose happiness scores into factor contributions.",
	Long: `Break each country's ladder score into the six explanatory factors
plus the unexplained remainder (the "Dystopia + residual" term from the
published report).

Use this to see what drives a country's position: a high score built on
GDP and social support reads very differently from one built on freedom
and generosity.

Examples:
  # Factor breakdown for the latest top 10
  ladderboard breakdown

  # Nordic countries in 2019
  ladderboard breakdown --year 2019 --country "Finland,Denmark,Norway,Iceland"

  # JSON for further processing
  ladderboard breakdown --output json --output-file breakdown.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBreakdown(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run breakdown report", err)
		}
	},
}
