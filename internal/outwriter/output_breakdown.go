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

// PrintBreakdownResults outputs a factor breakdown, dispatching based on the output format configured.
func PrintBreakdownResults(result *schema.BreakdownResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBreakdownCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for breakdown; use export")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBreakdownTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeBreakdownCSV writes one row per country with a column per factor.
func writeBreakdownCSV(w io.Writer, result *schema.BreakdownResult, fmtFloat func(float64) string) error {
	header := []string{"year", "rank", "country", "score"}
	for _, factor := range schema.AllFactors {
		header = append(header, string(factor))
	}
	header = append(header, "residual")

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, row := range result.Rows {
			record := []string{
				strconv.Itoa(result.Year),
				strconv.Itoa(row.Rank),
				row.Country,
				fmtFloat(row.Score),
			}
			for _, factor := range schema.AllFactors {
				record = append(record, fmtFloat(row.Parts[factor]))
			}
			record = append(record, fmtFloat(row.Residual))
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeBreakdownTable generates and writes the human-readable breakdown.
func writeBreakdownTable(w io.Writer, result *schema.BreakdownResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(result.Rows) == 0 {
		return writeEmptyNotice(w)
	}

	table := tablewriter.NewWriter(w)
	headers := []string{"Rank", "Country", "Score"}
	for _, factor := range schema.AllFactors {
		headers = append(headers, schema.FactorLabel(factor))
	}
	headers = append(headers, "Residual")
	table.Header(headers)
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Rank),
			contract.TruncateName(row.Country, nameWidth),
			fmtFloat(row.Score),
		}
		for _, factor := range schema.AllFactors {
			record = append(record, fmtFloat(row.Parts[factor]))
		}
		record = append(record, fmtFloat(row.Residual))
		data = append(data, record)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Factor contributions for %d countries, %d. Residual is the score the six factors do not explain.\n", len(result.Rows), result.Year); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}
