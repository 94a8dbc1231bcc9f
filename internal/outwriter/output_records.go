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

// PrintRecords outputs raw dataset records, dispatching based on the output format configured.
// This backs the export command, so all four formats are supported.
func PrintRecords(records []schema.HappinessRecord, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordsCSV(w, records, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		return parquet.WriteDatasetParquet(parquet.ConvertHappinessRecords(records), cfg.OutputFile)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRecordsTable(w, records, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeRecordsCSV writes records in the canonical dataset column order, so an
// export loads back without header aliasing.
func writeRecordsCSV(w io.Writer, records []schema.HappinessRecord, fmtFloat func(float64) string) error {
	header := []string{"country", "region", "year", "rank", "score"}
	for _, factor := range schema.AllFactors {
		header = append(header, string(factor))
	}

	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, rec := range records {
			row := []string{
				rec.Country,
				rec.Region,
				strconv.Itoa(rec.Year),
				strconv.Itoa(rec.Rank),
				fmtFloat(rec.Score),
			}
			for _, factor := range schema.AllFactors {
				row = append(row, fmtFloat(rec.FactorValue(factor)))
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRecordsTable generates and writes the human-readable record dump.
func writeRecordsTable(w io.Writer, records []schema.HappinessRecord, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(records) == 0 {
		return writeEmptyNotice(w)
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Year", "Rank", "Country", "Region", "Score"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, rec := range records {
		data = append(data, []string{
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.Rank),
			contract.TruncateName(rec.Country, nameWidth),
			contract.TruncateName(rec.Region, nameWidth),
			fmtFloat(rec.Score),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d records\n", len(records)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}
