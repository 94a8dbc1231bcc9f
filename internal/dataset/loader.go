// Package dataset loads the happiness dataset and serves filtered views of it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shriyae/ladderboard/core/algo"
	"github.com/shriyae/ladderboard/schema"
)

// LoadReport summarizes what happened while loading a dataset file.
// Skipped rows are a warning condition, not an error: the report renders
// with whatever valid rows remain.
type LoadReport struct {
	TotalRows int      // Data rows seen (excluding the header)
	Loaded    int      // Rows accepted into the store
	Skipped   int      // Rows dropped for being malformed or duplicated
	Warnings  []string // One message per skipped row, capped at maxWarnings
}

// maxWarnings caps the per-row messages kept in a LoadReport so a badly
// corrupted file cannot balloon memory.
const maxWarnings = 50

// Column aliases accepted in the CSV header, lowercased. The published report
// files use several header spellings across years.
var headerAliases = map[string]string{
	"country":                       "country",
	"country name":                  "country",
	"region":                        "region",
	"regional indicator":            "region",
	"year":                          "year",
	"rank":                          "rank",
	"score":                         "score",
	"ladder score":                  "score",
	"happiness score":               "score",
	"gdp_per_capita":                "gdp_per_capita",
	"gdp per capita":                "gdp_per_capita",
	"social_support":                "social_support",
	"social support":                "social_support",
	"healthy_life_expectancy":       "healthy_life_expectancy",
	"healthy life expectancy":       "healthy_life_expectancy",
	"freedom":                       "freedom",
	"freedom to make life choices":  "freedom",
	"generosity":                    "generosity",
	"corruption_perception":         "corruption_perception",
	"perceptions of corruption":     "corruption_perception",
	"government trust":              "corruption_perception",
}

// Columns that must be present and parseable for a row to load.
var requiredColumns = []string{"country", "year", "score"}

// Load reads a dataset file into a Store. A missing file is the one fatal
// condition; malformed rows are skipped and reported via LoadReport.
func Load(path string) (*Store, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset file not found: %s", path)
	}
	defer func() { _ = f.Close() }()

	store, report, err := Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse dataset %s: %w", path, err)
	}
	return store, report, nil
}

// Parse reads CSV rows from r into a Store. The first row must be a header.
// Rows that fail type/range validation are skipped with a warning; duplicate
// (country, year) rows keep the first occurrence. After loading, ranks are
// recomputed from score order per year so the rank/score invariant holds
// regardless of what the file claimed.
func Parse(r io.Reader) (*Store, *LoadReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are handled per-row
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, errors.New("dataset has no header row")
	}
	columns, err := mapHeader(header)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{}
	seen := make(map[string]bool) // country|year dedupe
	var records []schema.HappinessRecord

	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.skip(line, fmt.Sprintf("unreadable row: %v", err))
			continue
		}
		report.TotalRows++

		rec, err := parseRow(columns, row)
		if err != nil {
			report.skip(line, err.Error())
			continue
		}

		key := strings.ToLower(rec.Country) + "|" + strconv.Itoa(rec.Year)
		if seen[key] {
			report.skip(line, fmt.Sprintf("duplicate record for %s %d", rec.Country, rec.Year))
			continue
		}
		seen[key] = true

		records = append(records, rec)
		report.Loaded++
	}

	return newStore(rerank(records)), report, nil
}

// skip records one skipped row in the report.
func (lr *LoadReport) skip(line int, msg string) {
	lr.Skipped++
	if len(lr.Warnings) < maxWarnings {
		lr.Warnings = append(lr.Warnings, fmt.Sprintf("line %d: %s", line, msg))
	}
}

// mapHeader resolves header names to canonical column indexes.
func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := headerAliases[name]; ok {
			columns[canonical] = i
		}
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("dataset header is missing a %q column", required)
		}
	}
	return columns, nil
}

// parseRow converts one CSV row into a record, validating types and ranges.
func parseRow(columns map[string]int, row []string) (schema.HappinessRecord, error) {
	var rec schema.HappinessRecord

	country, ok := field(columns, row, "country")
	if !ok || country == "" {
		return rec, errors.New("missing country")
	}
	rec.Country = country

	if region, ok := field(columns, row, "region"); ok {
		rec.Region = region
	}

	yearStr, ok := field(columns, row, "year")
	if !ok {
		return rec, errors.New("missing year")
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1900 || year > 2999 {
		return rec, fmt.Errorf("invalid year %q", yearStr)
	}
	rec.Year = year

	scoreStr, ok := field(columns, row, "score")
	if !ok {
		return rec, errors.New("missing score")
	}
	score, err := strconv.ParseFloat(scoreStr, 64)
	if err != nil || score < 0 || score > 10 {
		return rec, fmt.Errorf("invalid score %q (expected 0-10)", scoreStr)
	}
	rec.Score = score

	// Rank is advisory; it gets recomputed after load. Parse it when present
	// so single-year exports survive a round trip.
	if rankStr, ok := field(columns, row, "rank"); ok && rankStr != "" {
		if rank, err := strconv.Atoi(rankStr); err == nil && rank > 0 {
			rec.Rank = rank
		}
	}

	// Factor columns are optional; a blank cell loads as zero.
	factorCells := []struct {
		column string
		dest   *float64
	}{
		{"gdp_per_capita", &rec.GDPPerCapita},
		{"social_support", &rec.SocialSupport},
		{"healthy_life_expectancy", &rec.HealthyLifeExpectancy},
		{"freedom", &rec.Freedom},
		{"generosity", &rec.Generosity},
		{"corruption_perception", &rec.CorruptionPerception},
	}
	for _, fc := range factorCells {
		cell, ok := field(columns, row, fc.column)
		if !ok || cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return rec, fmt.Errorf("invalid %s value %q", fc.column, cell)
		}
		*fc.dest = v
	}

	return rec, nil
}

// field fetches a canonical column's cell from a possibly ragged row.
func field(columns map[string]int, row []string, name string) (string, bool) {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[idx]), true
}

// rerank groups records by year and rewrites ranks from score order, keeping
// the dataset invariant: rank descends with score within a year.
func rerank(records []schema.HappinessRecord) []schema.HappinessRecord {
	byYear := make(map[int][]schema.HappinessRecord)
	for _, rec := range records {
		byYear[rec.Year] = append(byYear[rec.Year], rec)
	}
	out := make([]schema.HappinessRecord, 0, len(records))
	for _, group := range byYear {
		out = append(out, algo.RankByScore(group)...)
	}
	return out
}
