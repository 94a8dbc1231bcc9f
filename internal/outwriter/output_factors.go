package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/schema"
)

// FactorDefinition documents one explanatory factor for the factors command.
type FactorDefinition struct {
	Factor      schema.Factor `json:"factor"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
}

// factorDescriptions holds the survey question behind each factor, following
// the published report's statistical appendix.
var factorDescriptions = map[schema.Factor]string{
	schema.FactorGDP:            "Log GDP per capita, purchasing power parity adjusted",
	schema.FactorSocialSupport:  "Having someone to count on in times of trouble",
	schema.FactorLifeExpectancy: "Healthy life expectancy at birth, WHO data",
	schema.FactorFreedom:        "Satisfaction with the freedom to choose what to do with your life",
	schema.FactorGenerosity:     "Recent charitable donation, adjusted for GDP",
	schema.FactorCorruption:     "Perceived corruption in government and business",
}

// FactorDefinitions returns the definition for every factor in display order.
func FactorDefinitions() []FactorDefinition {
	defs := make([]FactorDefinition, 0, len(schema.AllFactors))
	for _, factor := range schema.AllFactors {
		defs = append(defs, FactorDefinition{
			Factor:      factor,
			Label:       schema.FactorLabel(factor),
			Description: factorDescriptions[factor],
		})
	}
	return defs
}

// PrintFactorDefinitions outputs the factor definitions, dispatching based on the output format configured.
func PrintFactorDefinitions(cfg *contract.Config) error {
	defs := FactorDefinitions()

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, defs)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"factor", "label", "description"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, def := range defs {
					if err := csvWriter.Write([]string{string(def.Factor), def.Label, def.Description}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for factors; use export")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeFactorTable(w, defs)
		}, "Wrote table")
	}
}

// writeFactorTable generates and writes the human-readable factor list.
func writeFactorTable(w io.Writer, defs []FactorDefinition) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Factor", "Label", "Description"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, def := range defs {
		data = append(data, []string{string(def.Factor), def.Label, def.Description})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
