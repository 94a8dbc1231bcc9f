// Package cmd defines the command-line interface for ladderboard.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(breakdownCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(tercilesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(factorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("year", "y", 0, "Report year (0 = latest year in the dataset)")
	rootCmd.PersistentFlags().Int("from", 0, "Start of year range filter")
	rootCmd.PersistentFlags().Int("to", 0, "End of year range filter")
	rootCmd.PersistentFlags().StringP("country", "c", "", "Comma-separated list of countries to include")
	rootCmd.PersistentFlags().StringP("region", "r", "", "Comma-separated list of regions to include")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("run-backend", string(schema.SQLiteBackend), "Run tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("run-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of correlateCmd to Viper
	correlateCmd.Flags().String("factor", string(schema.FactorGDP), "Factor for the regression fit")
	if err := viper.BindPFlags(correlateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding correlate flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().Int("base-year", 0, "Base (BEFORE) year for comparison")
	compareCmd.Flags().Int("target-year", 0, "Target (AFTER) year for comparison")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of trendsCmd to Viper
	trendsCmd.Flags().Bool("relative", false, "Plot scores relative to each series' own mean")
	if err := viper.BindPFlags(trendsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trends flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Listen address for the dashboard server")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}
