// Package parquet provides data structures and functions for exporting
// happiness report data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/shriyae/ladderboard/schema"
)

// DatasetRow is one happiness record in its Parquet form.
type DatasetRow struct {
	Country string `parquet:"country,snappy"`

	// Region is nullable; some published datasets carry no region column
	Region *string `parquet:"region,optional,snappy"`

	Year  int32   `parquet:"year,snappy"`
	Rank  int32   `parquet:"rank,snappy"`
	Score float64 `parquet:"score,snappy"`

	GDPPerCapita          float64 `parquet:"gdp_per_capita,snappy"`
	SocialSupport         float64 `parquet:"social_support,snappy"`
	HealthyLifeExpectancy float64 `parquet:"healthy_life_expectancy,snappy"`
	Freedom               float64 `parquet:"freedom,snappy"`
	Generosity            float64 `parquet:"generosity,snappy"`
	CorruptionPerception  float64 `parquet:"corruption_perception,snappy"`
}

// RankingRow is one leaderboard entry in its Parquet form.
type RankingRow struct {
	Year    int32   `parquet:"year,snappy"`
	Rank    int32   `parquet:"rank,snappy"`
	Country string  `parquet:"country,snappy"`
	Region  *string `parquet:"region,optional,snappy"`
	Score   float64 `parquet:"score,snappy"`
}

// RunRow is one tracked report run in its Parquet form.
type RunRow struct {
	RunID        int64      `parquet:"run_id,snappy"`
	StartTime    time.Time  `parquet:"start_time,snappy"`
	EndTime      *time.Time `parquet:"end_time,optional,snappy"`
	DurationMs   int64      `parquet:"run_duration_ms,snappy"`
	TotalRecords int32      `parquet:"total_records,snappy"`
	ConfigParams *string    `parquet:"config_params,optional,snappy"`
}

// ConvertHappinessRecords converts dataset records to their Parquet form.
func ConvertHappinessRecords(records []schema.HappinessRecord) []DatasetRow {
	rows := make([]DatasetRow, 0, len(records))
	for _, rec := range records {
		row := DatasetRow{
			Country:               rec.Country,
			Region:                optionalString(rec.Region),
			Year:                  int32(rec.Year),
			Rank:                  int32(rec.Rank),
			Score:                 rec.Score,
			GDPPerCapita:          rec.GDPPerCapita,
			SocialSupport:         rec.SocialSupport,
			HealthyLifeExpectancy: rec.HealthyLifeExpectancy,
			Freedom:               rec.Freedom,
			Generosity:            rec.Generosity,
			CorruptionPerception:  rec.CorruptionPerception,
		}
		rows = append(rows, row)
	}
	return rows
}

// ConvertRankingResult converts a leaderboard to its Parquet form.
func ConvertRankingResult(result *schema.RankingResult) []RankingRow {
	rows := make([]RankingRow, 0, len(result.Entries))
	for _, entry := range result.Entries {
		rows = append(rows, RankingRow{
			Year:    int32(result.Year),
			Rank:    int32(entry.Rank),
			Country: entry.Country,
			Region:  optionalString(entry.Region),
			Score:   entry.Score,
		})
	}
	return rows
}

// ConvertRunRecords converts tracked runs to their Parquet form.
func ConvertRunRecords(records []schema.RunRecord) []RunRow {
	rows := make([]RunRow, 0, len(records))
	for _, rec := range records {
		row := RunRow{
			RunID:        rec.RunID,
			StartTime:    rec.StartTime,
			DurationMs:   rec.DurationMs,
			TotalRecords: int32(rec.TotalRecords),
			ConfigParams: optionalString(rec.ConfigParams),
		}
		if !rec.EndTime.IsZero() {
			endTime := rec.EndTime
			row.EndTime = &endTime
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteDatasetParquet writes dataset rows to a Parquet file.
func WriteDatasetParquet(data []DatasetRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRankingsParquet writes leaderboard rows to a Parquet file.
func WriteRankingsParquet(data []RankingRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRunsParquet writes run history rows to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any row type to a Parquet file using struct schema
// inference from the parquet tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
