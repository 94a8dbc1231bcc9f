package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/web"
)

// serveCmd starts the dashboard web server.
var serveCmd = &cobra.Command{
	Use:   "serve [dataset-path]",
	Short: "Serve the happiness dashboard over HTTP.",
	Long: `Start a local web server with an interactive dashboard and a JSON API.

The dataset is loaded once at startup; all views share it. The API
mirrors the CLI reports:

  GET /api/rankings      leaderboard for one year
  GET /api/breakdown     factor decomposition
  GET /api/trends        score series over time
  GET /api/correlations  factor correlations and regression
  GET /api/compare       movement between two years
  GET /api/map           tercile profiles
  GET /api/meta          available years, countries, regions

Examples:
  # Serve the bundled sample on :8080
  ladderboard serve

  # Serve your own dataset on a custom port
  ladderboard serve happiness.csv --addr :9000`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := web.StartServer(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot start dashboard server", err)
		}
	},
}
