package runstore

import (
	"errors"
	"fmt"

	"github.com/shriyae/ladderboard/internal/parquet"
)

// ExportRuns writes the full run history to a Parquet file.
func ExportRuns(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no recorded runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total report runs: %d\n", status.TotalRuns)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}

	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), outputFile); err != nil {
		return fmt.Errorf("failed to write parquet file: %w", err)
	}

	fmt.Printf("Exported %d runs to %s\n", len(runs), outputFile)
	return nil
}
