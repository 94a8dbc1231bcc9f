package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/schema"
)

// PrintCorrelationResults outputs a correlation analysis, dispatching based on the output format configured.
func PrintCorrelationResults(result *schema.CorrelationResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorrelationCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for correlate; use export")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCorrelationTables(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeCorrelationCSV writes one row per factor with its rank correlation.
func writeCorrelationCSV(w io.Writer, result *schema.CorrelationResult, fmtFloat func(float64) string) error {
	header := []string{"year", "factor", "spearman"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, fc := range result.TopFactors {
			row := []string{
				fmt.Sprintf("%d", result.Year),
				string(fc.Factor),
				fmtFloat(fc.Coefficient),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeCorrelationTables writes the factor ranking, the correlation matrix
// and the regression summary.
func writeCorrelationTables(w io.Writer, result *schema.CorrelationResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if len(result.TopFactors) == 0 {
		return writeEmptyNotice(w)
	}

	// 1. Factors ranked by association with the score.
	if _, err := fmt.Fprintf(w, "Factors most associated with the ladder score, %d (Spearman):\n", result.Year); err != nil {
		return err
	}
	factorTable := tablewriter.NewWriter(w)
	factorTable.Header([]string{"Factor", "Coefficient"})
	factorTable.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})
	var factorData [][]string
	for _, fc := range result.TopFactors {
		factorData = append(factorData, []string{
			schema.FactorLabel(fc.Factor),
			fmtSigned(fc.Coefficient, cfg.Precision),
		})
	}
	if err := factorTable.Bulk(factorData); err != nil {
		return err
	}
	if err := factorTable.Render(); err != nil {
		return err
	}

	// 2. Full correlation matrix.
	if _, err := fmt.Fprintln(w, "Correlation matrix:"); err != nil {
		return err
	}
	matrixTable := tablewriter.NewWriter(w)
	matrixTable.Header(append([]string{""}, result.Matrix.Labels...))
	matrixTable.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})
	var matrixData [][]string
	for i, label := range result.Matrix.Labels {
		row := []string{label}
		for _, v := range result.Matrix.Values[i] {
			row = append(row, fmtSigned(v, cfg.Precision))
		}
		matrixData = append(matrixData, row)
	}
	if err := matrixTable.Bulk(matrixData); err != nil {
		return err
	}
	if err := matrixTable.Render(); err != nil {
		return err
	}

	// 3. Regression summary.
	reg := result.Regression
	if _, err := fmt.Fprintf(w, "OLS fit: score = %s + %s * %s (R²=%s, n=%d)\n",
		fmtFloat(reg.Intercept), fmtFloat(reg.Slope), schema.FactorLabel(reg.Factor),
		fmtFloat(reg.R2), len(reg.Points)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Report completed in %v\n", duration)
	return err
}
