package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/schema"
)

// PrintComparisonResults outputs year-over-year movement, dispatching based on the output format configured.
func PrintComparisonResults(result *schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for compare; use export")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeComparisonCSV writes one row per country movement.
func writeComparisonCSV(w io.Writer, result *schema.ComparisonResult, fmtFloat func(float64) string) error {
	header := []string{"country", "region", "status", "base_score", "target_score", "score_delta", "base_rank", "target_rank", "rank_delta"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, row := range result.Rows {
			record := []string{
				row.Country,
				row.Region,
				string(row.Status),
				fmtFloat(row.BaseScore),
				fmtFloat(row.TargetScore),
				fmtFloat(row.ScoreDelta),
				strconv.Itoa(row.BaseRank),
				strconv.Itoa(row.TargetRank),
				strconv.Itoa(row.RankDelta),
			}
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeComparisonTable generates and writes the human-readable comparison.
func writeComparisonTable(w io.Writer, result *schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Movement from %d to %d:\n", result.BaseYear, result.TargetYear); err != nil {
		return err
	}
	if len(result.Rows) == 0 {
		return writeEmptyNotice(w)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Country", "Status", "Base", "Target", "Delta", "Rank Delta"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, row := range result.Rows {
		record := []string{
			contract.TruncateName(row.Country, nameWidth),
			string(row.Status),
			fmtFloat(row.BaseScore),
			fmtFloat(row.TargetScore),
			fmtSigned(row.ScoreDelta, cfg.Precision),
			fmt.Sprintf("%+d", row.RankDelta),
		}
		data = append(data, record)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d countries. Positive rank delta means the country climbed.\n", len(result.Rows)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}
