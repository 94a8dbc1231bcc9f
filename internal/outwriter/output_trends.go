package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/schema"
)

// PrintTrendResults outputs trend series, dispatching based on the output format configured.
func PrintTrendResults(result *schema.TrendResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendCSV(w, result, cfg, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for trends; use export")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeTrendCSV writes one row per series point.
func writeTrendCSV(w io.Writer, result *schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"label", "kind", "year", "score", "relative"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, series := range result.Series {
			kind := "country"
			if series.Region {
				kind = "region"
			}
			for _, point := range series.Points {
				row := []string{
					series.Label,
					kind,
					strconv.Itoa(point.Year),
					fmtFloat(point.Score),
					fmtSigned(point.Relative, cfg.Precision),
				}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeTrendTable generates and writes the human-readable trend view: one row
// per series, one column per year.
func writeTrendTable(w io.Writer, result *schema.TrendResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(result.Series) == 0 {
		return writeEmptyNotice(w)
	}

	// Collect the union of years across all series for the columns.
	yearSet := make(map[int]bool)
	for _, series := range result.Series {
		for _, point := range series.Points {
			yearSet[point.Year] = true
		}
	}
	years := make([]int, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Ints(years)

	table := tablewriter.NewWriter(w)
	headers := []string{"Series", "Mean"}
	for _, year := range years {
		headers = append(headers, strconv.Itoa(year))
	}
	table.Header(headers)
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, series := range result.Series {
		byYear := make(map[int]schema.TrendPoint, len(series.Points))
		for _, point := range series.Points {
			byYear[point.Year] = point
		}

		row := []string{
			contract.TruncateName(series.Label, nameWidth),
			fmtFloat(series.Mean),
		}
		for _, year := range years {
			point, ok := byYear[year]
			if !ok {
				row = append(row, "-")
				continue
			}
			if result.Relative {
				row = append(row, fmtSigned(point.Relative, cfg.Precision))
			} else {
				row = append(row, fmtFloat(point.Score))
			}
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	mode := "absolute scores"
	if result.Relative {
		mode = "scores relative to each series' own mean"
	}
	if _, err := fmt.Fprintf(w, "Showing %d series (%s)\n", len(result.Series), mode); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}
