// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRankings prints a leaderboard using the configured output format.
func (ow *OutWriter) WriteRankings(result *schema.RankingResult, cfg *contract.Config, duration time.Duration) error {
	return PrintRankingResults(result, cfg, duration)
}

// WriteBreakdown prints a factor breakdown using the configured output format.
func (ow *OutWriter) WriteBreakdown(result *schema.BreakdownResult, cfg *contract.Config, duration time.Duration) error {
	return PrintBreakdownResults(result, cfg, duration)
}

// WriteTrends prints trend series using the configured output format.
func (ow *OutWriter) WriteTrends(result *schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTrendResults(result, cfg, duration)
}

// WriteCorrelations prints a correlation analysis using the configured output format.
func (ow *OutWriter) WriteCorrelations(result *schema.CorrelationResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCorrelationResults(result, cfg, duration)
}

// WriteComparison prints year-over-year movement using the configured output format.
func (ow *OutWriter) WriteComparison(result *schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonResults(result, cfg, duration)
}

// WriteMap prints tercile profiles using the configured output format.
func (ow *OutWriter) WriteMap(result *schema.MapResult, cfg *contract.Config, duration time.Duration) error {
	return PrintMapResults(result, cfg, duration)
}

// WriteRecords prints raw dataset records using the configured output format.
func (ow *OutWriter) WriteRecords(records []schema.HappinessRecord, cfg *contract.Config, duration time.Duration) error {
	return PrintRecords(records, cfg, duration)
}

// getMaxTableNameWidth calculates the maximum width for country names in
// table output based on terminal width.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns plus borders and padding.
	available := termWidth - 50
	if available < 15 {
		return 15
	}
	if available > 40 {
		return 40
	}
	return available
}
