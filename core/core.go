package core

import (
	"context"
	"errors"
	"time"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
	"github.com/shriyae/ladderboard/internal/outwriter"
	"github.com/shriyae/ladderboard/internal/runstore"
)

// writer is the shared output writer for all executors.
var writer = outwriter.NewOutWriter()

// ExecutorFunc defines the function signature for executing different report modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteRankings builds and prints the leaderboard for one year.
// It serves as the main entry point for the 'rankings' mode.
func ExecuteRankings(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	result := GetRankings(store, cfg)
	duration := time.Since(start)
	endRun(runID, len(result.Entries))
	return writer.WriteRankings(result, cfg, duration)
}

// ExecuteBreakdown builds and prints the factor decomposition for one year.
// It serves as the main entry point for the 'breakdown' mode.
func ExecuteBreakdown(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	result := GetBreakdown(store, cfg)
	duration := time.Since(start)
	endRun(runID, len(result.Rows))
	return writer.WriteBreakdown(result, cfg, duration)
}

// ExecuteTrends builds and prints score-over-time series.
// It serves as the main entry point for the 'trends' mode.
func ExecuteTrends(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	result := GetTrends(store, cfg)
	duration := time.Since(start)

	points := 0
	for _, series := range result.Series {
		points += len(series.Points)
	}
	endRun(runID, points)
	return writer.WriteTrends(result, cfg, duration)
}

// ExecuteCorrelations builds and prints the correlation analysis for one year.
// It serves as the main entry point for the 'correlate' mode.
func ExecuteCorrelations(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	result := GetCorrelations(store, cfg)
	duration := time.Since(start)
	endRun(runID, len(result.Regression.Points))
	return writer.WriteCorrelations(result, cfg, duration)
}

// ExecuteCompare computes and prints per-country movement between two years.
// It serves as the main entry point for the 'compare' mode.
func ExecuteCompare(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := contract.RevalidateCompare(cfg); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	result := GetComparison(store, cfg)
	duration := time.Since(start)
	endRun(runID, len(result.Rows))
	return writer.WriteComparison(result, cfg, duration)
}

// ExecuteMap computes and prints tercile profiles for one year.
// It serves as the main entry point for the 'terciles' mode.
func ExecuteMap(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	result := GetMap(store, cfg)
	duration := time.Since(start)
	endRun(runID, len(result.Entries))
	return writer.WriteMap(result, cfg, duration)
}

// ExecuteExport writes the filtered raw records in the configured format.
// It serves as the main entry point for the 'export' mode.
func ExecuteExport(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	runID := beginRun(cfg, start)
	records := store.FilterRecords(cfg.Filter())
	duration := time.Since(start)
	endRun(runID, len(records))
	return writer.WriteRecords(records, cfg, duration)
}

// ExecuteFactors prints the factor definitions. It serves as the main entry
// point for the 'factors' mode and needs no dataset.
func ExecuteFactors(ctx context.Context, cfg *contract.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return outwriter.PrintFactorDefinitions(cfg)
}

// loadStore opens the configured dataset and surfaces per-row load warnings.
func loadStore(cfg *contract.Config) (*dataset.Store, error) {
	store, report, err := dataset.Open(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	for _, warning := range report.Warnings {
		contract.LogWarn("dataset row skipped", errors.New(warning))
	}
	return store, nil
}

// beginRun starts run tracking. Tracking failures degrade to a warning; the
// report itself still runs.
func beginRun(cfg *contract.Config, start time.Time) int64 {
	runID, err := runstore.Manager.GetRunStore().BeginRun(start, runParams(cfg))
	if err != nil {
		contract.LogWarn("run tracking unavailable", err)
		return 0
	}
	return runID
}

// endRun completes run tracking for the given run ID.
func endRun(runID int64, totalRecords int) {
	if runID == 0 {
		return
	}
	if err := runstore.Manager.GetRunStore().EndRun(runID, time.Now(), totalRecords); err != nil {
		contract.LogWarn("run tracking incomplete", err)
	}
}

// runParams captures the filter-relevant config for the run history.
func runParams(cfg *contract.Config) map[string]any {
	return map[string]any{
		"year":      cfg.Year,
		"from":      cfg.FromYear,
		"to":        cfg.ToYear,
		"countries": cfg.Countries,
		"regions":   cfg.Regions,
		"limit":     cfg.ResultLimit,
		"output":    string(cfg.Output),
	}
}
