package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// rankingsCmd shows the leaderboard for one report year.
var rankingsCmd = &cobra.Command{
	Use:   "rankings [dataset-path]",
	Short: "Show the happiness leaderboard for one report year.",
	Long: `Rank countries by ladder score for a single report year.

Ranks are recomputed from the scores after filtering, so a regional
leaderboard starts at rank 1. Scores are grouped into bands (Thriving,
Content, Middling, Struggling) for quick reading.

Examples:
  # Top 10 countries in the latest year of the bundled sample
  ladderboard rankings

  # Western Europe in 2015, from your own dataset
  ladderboard rankings happiness.csv --year 2015 --region "Western Europe"

  # Export the top 50 to CSV
  ladderboard rankings --limit 50 --output csv --output-file top50.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRankings(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run rankings report", err)
		}
	},
}
