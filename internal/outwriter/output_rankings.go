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
	"github.com/shriyae/ladderboard/internal/parquet"
	"github.com/shriyae/ladderboard/schema"
)

// PrintRankingResults outputs a leaderboard, dispatching based on the output format configured.
func PrintRankingResults(result *schema.RankingResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		return parquet.WriteRankingsParquet(parquet.ConvertRankingResult(result), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeRankingCSV writes leaderboard rows as CSV.
func writeRankingCSV(w io.Writer, result *schema.RankingResult, fmtFloat func(float64) string) error {
	header := []string{"year", "rank", "country", "region", "score", "band"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, entry := range result.Entries {
			row := []string{
				strconv.Itoa(result.Year),
				strconv.Itoa(entry.Rank),
				entry.Country,
				entry.Region,
				fmtFloat(entry.Score),
				contract.GetPlainLabel(entry.Score),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRankingTable generates and writes the human-readable leaderboard.
func writeRankingTable(w io.Writer, result *schema.RankingResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(result.Entries) == 0 {
		return writeEmptyNotice(w)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Country", "Region", "Score", "Band"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, entry := range result.Entries {
		band := contract.GetPlainLabel(entry.Score)
		if cfg.UseColors {
			band = contract.GetColorLabel(entry.Score)
		}
		data = append(data, []string{
			strconv.Itoa(entry.Rank),
			contract.TruncateName(entry.Country, nameWidth),
			contract.TruncateName(entry.Region, nameWidth),
			fmtFloat(entry.Score),
			band,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing top %d countries for %d\n", len(result.Entries), result.Year); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v. Run backend: %s\n", duration, cfg.RunBackend)
	return err
}
