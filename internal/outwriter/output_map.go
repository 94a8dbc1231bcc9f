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

// PrintMapResults outputs tercile profiles, dispatching based on the output format configured.
func PrintMapResults(result *schema.MapResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMapCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for terciles; use export")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMapTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeMapCSV writes one row per country with its tercile categories.
func writeMapCSV(w io.Writer, result *schema.MapResult, fmtFloat func(float64) string) error {
	header := []string{"year", "country", "region", "score", "score_tercile"}
	for _, factor := range schema.AllFactors {
		header = append(header, string(factor)+"_tercile")
	}

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, entry := range result.Entries {
			record := []string{
				strconv.Itoa(result.Year),
				entry.Country,
				entry.Region,
				fmtFloat(entry.Score),
				string(entry.ScoreTercile),
			}
			for _, factor := range schema.AllFactors {
				record = append(record, string(entry.FactorTerciles[factor]))
			}
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeMapTable generates and writes the human-readable tercile view.
func writeMapTable(w io.Writer, result *schema.MapResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(result.Entries) == 0 {
		return writeEmptyNotice(w)
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Country", "Score", "Score Band"}
	for _, factor := range schema.AllFactors {
		headers = append(headers, schema.FactorLabel(factor))
	}
	table.Header(headers)
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, entry := range result.Entries {
		record := []string{
			contract.TruncateName(entry.Country, nameWidth),
			fmtFloat(entry.Score),
			string(entry.ScoreTercile),
		}
		for _, factor := range schema.AllFactors {
			record = append(record, string(entry.FactorTerciles[factor]))
		}
		data = append(data, record)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Tercile profile for %d countries, %d. Categories are relative to this selection.\n", len(result.Entries), result.Year); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}
