package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
)

// trendsCmd shows score series over time.
var trendsCmd = &cobra.Command{
	Use:   "trends [dataset-path]",
	Short: "Show happiness score trends over time.",
	Long: `Plot ladder scores across report years, one series per selected
country or one averaged series per selected region.

With no selection, the top countries of the latest year are tracked.
The --relative flag re-centers each series on its own mean, which makes
trajectories comparable between a 7.5-score country and a 4.5-score one.

Examples:
  # Trajectories of the current top 10
  ladderboard trends

  # Finland vs Denmark since 2015
  ladderboard trends --country "Finland,Denmark" --from 2015

  # Regional averages, relative to each region's own mean
  ladderboard trends --region "Western Europe,South Asia" --relative`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrends(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run trends report", err)
		}
	},
}
