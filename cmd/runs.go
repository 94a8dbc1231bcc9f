package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/runstore"
	"github.com/shriyae/ladderboard/schema"
)

// runsSetup loads minimal configuration needed for run-history operations.
// This is used by commands that need the run store without full shared setup.
func runsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get run-tracking config values
	backend := schema.DatabaseBackend(viper.GetString("run-backend"))
	connStr := viper.GetString("run-db-connect")

	if (backend == schema.MySQLBackend || backend == schema.PostgreSQLBackend) && connStr == "" {
		return fmt.Errorf("run backend %s requires --run-db-connect", backend)
	}

	// Initialize run tracking with the loaded config
	if err := runstore.InitRunTracking(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run tracking: %w", err)
	}

	cfg.RunBackend = backend
	cfg.RunDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// runsSetupWrapper wraps runsSetup to provide PreRunE for runs commands.
func runsSetupWrapper(_ *cobra.Command, _ []string) error {
	return runsSetup()
}

// runsCmd focused on report run history.
//
// Note: Runs subcommands use minimal initialization (runsSetup) instead of
// the full sharedSetup used by report commands. This avoids dataset loading
// and filter processing for simple bookkeeping operations.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage report run history",
	Long: `Manage the history of report runs recorded by ladderboard.

Every report execution is recorded with its start time, duration, record
count, and the filter parameters used. The history lives in SQLite by
default and can be pointed at MySQL or PostgreSQL for shared setups.

Subcommands:
  status  - Show run statistics and connection info
  clear   - Remove all recorded runs
  export  - Export run history to Parquet
  migrate - Run schema migrations on the run store

Examples:
  # Check run history status
  ladderboard runs status

  # Start fresh
  ladderboard runs clear`,
}

// runsStatusCmd shows run store status.
var runsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run statistics and connection details",
	Long: `Show detailed information about the recorded report runs.

Displays:
- Backend type and connection status
- Total number of recorded runs
- Last and oldest run timestamps
- Table sizes

Examples:
  # Check run history status
  ladderboard runs status`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := runstore.Manager.GetRunStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get run status", err)
		}
		runstore.PrintRunStatus(status)
	},
}

// runsClearCmd clears the run history.
var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded report runs",
	Long: `Delete all recorded report runs from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the runs table

Examples:
  # Clear SQLite run history (default)
  ladderboard runs clear

  # Clear MySQL run history (set connection string via env variable)
  LADDERBOARD_RUN_BACKEND=mysql LADDERBOARD_RUN_DB_CONNECT="..." ladderboard runs clear`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ClearRuns(cfg.RunBackend, contract.GetRunDBFilePath(), cfg.RunDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// runsExportCmd exports run history to a Parquet file.
var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all recorded report runs to Parquet format.

Parquet output queries directly with DuckDB, Spark, or pandas, so run
history can feed dashboards without touching the live database.

Requires: --output-file parameter

Examples:
  # Export all runs
  ladderboard runs export --output-file runs.parquet

  # Query with DuckDB
  duckdb -c "SELECT * FROM read_parquet('runs.parquet') ORDER BY start_time DESC LIMIT 10"`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runstore.ExportRuns(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// runsMigrateCmd runs database migrations for the run store.
var runsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the run store",
	Long: `Apply or roll back schema migrations on the run tracking database.

Use --target-version to select a migration version:
  -1  migrate up to the latest version (default)
   0  roll back to the initial (empty) state
   N  migrate to version N exactly

Examples:
  # Migrate to latest
  ladderboard runs migrate

  # Roll everything back
  ladderboard runs migrate --target-version 0`,
	PreRunE: runsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := runstore.MigrateRuns(cfg.RunBackend, cfg.RunDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to migrate run store", err)
		}
		fmt.Println("Run store migration complete.")
	},
}
