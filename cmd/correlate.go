package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// correlateCmd analyzes factor-score relationships.
var correlateCmd = &cobra.Command{
	Use:   "correlate [dataset-path]",
	Short: "Correlate explanatory factors with the happiness score.",
	Long: `Measure how strongly each factor tracks the ladder score within one
report year.

Computes Spearman rank correlations between every factor and the score,
a full factor-by-factor correlation matrix, and an ordinary least
squares fit of the score against one chosen factor.

Examples:
  # Which factors track happiness most closely, latest year
  ladderboard correlate

  # Regression of score on social support for 2019
  ladderboard correlate --year 2019 --factor social_support

  # Matrix as JSON for a notebook
  ladderboard correlate --output json --output-file corr.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCorrelations(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run correlation report", err)
		}
	},
}
