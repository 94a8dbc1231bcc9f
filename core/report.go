// Package core has core logic for filtering, ranking and report building.
package core

import (
	"math"
	"sort"
	"strings"

	"github.com/shriyae/ladderboard/core/algo"
	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
	"github.com/shriyae/ladderboard/schema"
)

// ResolveYear returns the report year for single-year views: the configured
// year, or the latest year in the dataset when none was given.
func ResolveYear(store *dataset.Store, cfg *contract.Config) int {
	if cfg.Year != 0 {
		return cfg.Year
	}
	return store.LatestYear()
}

// GetRankings builds the leaderboard for one year. A year with no matching
// records yields an empty result, not an error.
func GetRankings(store *dataset.Store, cfg *contract.Config) *schema.RankingResult {
	year := ResolveYear(store, cfg)
	records := algo.TopN(store.FilterRecords(cfg.FilterForYear(year)), cfg.ResultLimit)

	result := &schema.RankingResult{Year: year}
	for _, rec := range records {
		result.Entries = append(result.Entries, schema.RankingEntry{
			Rank:    rec.Rank,
			Country: rec.Country,
			Region:  rec.Region,
			Score:   rec.Score,
		})
	}
	return result
}

// GetBreakdown decomposes the top countries' scores into factor parts plus
// the unexplained residual.
func GetBreakdown(store *dataset.Store, cfg *contract.Config) *schema.BreakdownResult {
	year := ResolveYear(store, cfg)
	records := algo.TopN(store.FilterRecords(cfg.FilterForYear(year)), cfg.ResultLimit)

	result := &schema.BreakdownResult{Year: year}
	for _, rec := range records {
		row := schema.BreakdownRow{
			Rank:     rec.Rank,
			Country:  rec.Country,
			Score:    rec.Score,
			Parts:    make(map[schema.Factor]float64, len(schema.AllFactors)),
			Residual: rec.Residual(),
			Shares:   make(map[schema.Factor]float64, len(schema.AllFactors)),
		}
		for _, factor := range schema.AllFactors {
			part := rec.FactorValue(factor)
			row.Parts[factor] = part
			if rec.Score > 0 {
				row.Shares[factor] = part / rec.Score
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

// GetTrends builds score-over-time series. Explicit countries each get a
// series; otherwise explicit regions get region-average series; otherwise the
// top countries of the latest matching year are used.
func GetTrends(store *dataset.Store, cfg *contract.Config) *schema.TrendResult {
	result := &schema.TrendResult{Relative: cfg.Relative}

	switch {
	case len(cfg.Countries) > 0:
		for _, country := range cfg.Countries {
			if series, ok := countrySeries(store, cfg, country); ok {
				result.Series = append(result.Series, series)
			}
		}
	case len(cfg.Regions) > 0:
		for _, region := range cfg.Regions {
			if series, ok := regionSeries(store, cfg, region); ok {
				result.Series = append(result.Series, series)
			}
		}
	default:
		for _, entry := range GetRankings(store, cfg).Entries {
			if series, ok := countrySeries(store, cfg, entry.Country); ok {
				result.Series = append(result.Series, series)
			}
		}
	}
	return result
}

// countrySeries collects one country's scores within the configured year
// window. Returns false when no records match.
func countrySeries(store *dataset.Store, cfg *contract.Config, country string) (schema.TrendSeries, bool) {
	var points []schema.TrendPoint
	var label string
	for _, rec := range store.CountryRecords(country) {
		if !inYearWindow(cfg, rec.Year) {
			continue
		}
		label = rec.Country
		points = append(points, schema.TrendPoint{Year: rec.Year, Score: rec.Score})
	}
	if len(points) == 0 {
		return schema.TrendSeries{}, false
	}
	return finishSeries(label, false, points), true
}

// regionSeries averages a region's scores per year within the year window.
func regionSeries(store *dataset.Store, cfg *contract.Config, region string) (schema.TrendSeries, bool) {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	var label string
	for _, rec := range store.FilterRecords(schema.Filter{Regions: []string{region}}) {
		if !inYearWindow(cfg, rec.Year) {
			continue
		}
		label = rec.Region
		sums[rec.Year] += rec.Score
		counts[rec.Year]++
	}
	if len(sums) == 0 {
		return schema.TrendSeries{}, false
	}

	years := make([]int, 0, len(sums))
	for year := range sums {
		years = append(years, year)
	}
	sort.Ints(years)

	points := make([]schema.TrendPoint, 0, len(years))
	for _, year := range years {
		points = append(points, schema.TrendPoint{Year: year, Score: sums[year] / float64(counts[year])})
	}
	return finishSeries(label, true, points), true
}

// finishSeries computes the series mean and per-point relative scores.
func finishSeries(label string, region bool, points []schema.TrendPoint) schema.TrendSeries {
	scores := make([]float64, len(points))
	for i, p := range points {
		scores[i] = p.Score
	}
	mean := algo.Mean(scores)
	for i := range points {
		points[i].Relative = points[i].Score - mean
	}
	return schema.TrendSeries{Label: label, Region: region, Mean: mean, Points: points}
}

func inYearWindow(cfg *contract.Config, year int) bool {
	if cfg.FromYear != 0 && year < cfg.FromYear {
		return false
	}
	if cfg.ToYear != 0 && year > cfg.ToYear {
		return false
	}
	return true
}

// minCorrelationSample is the smallest sample that gets a correlation
// analysis. Below this the coefficients are noise.
const minCorrelationSample = 3

// GetCorrelations computes Spearman rank correlations between score and each
// factor for one year, plus an OLS regression of score against the configured
// factor. Too few records yields an empty result for the year.
func GetCorrelations(store *dataset.Store, cfg *contract.Config) *schema.CorrelationResult {
	year := ResolveYear(store, cfg)
	records := store.FilterRecords(cfg.FilterForYear(year))

	result := &schema.CorrelationResult{Year: year}
	if len(records) < minCorrelationSample {
		return result
	}

	// Column vectors: scores first, then one per factor.
	scores := make([]float64, len(records))
	for i, rec := range records {
		scores[i] = rec.Score
	}
	factorValues := make(map[schema.Factor][]float64, len(schema.AllFactors))
	for _, factor := range schema.AllFactors {
		values := make([]float64, len(records))
		for i := range records {
			values[i] = records[i].FactorValue(factor)
		}
		factorValues[factor] = values
	}

	// Factors ranked by strength of association with the score.
	for _, factor := range schema.AllFactors {
		result.TopFactors = append(result.TopFactors, schema.FactorCorrelation{
			Factor:      factor,
			Coefficient: algo.Spearman(factorValues[factor], scores),
		})
	}
	sort.SliceStable(result.TopFactors, func(i, j int) bool {
		return math.Abs(result.TopFactors[i].Coefficient) > math.Abs(result.TopFactors[j].Coefficient)
	})

	result.Matrix = correlationMatrix(scores, factorValues)
	result.Regression = regressionLine(records, factorValues[cfg.Factor], scores, cfg.Factor)
	return result
}

// correlationMatrix builds the symmetric Spearman matrix over score + factors.
func correlationMatrix(scores []float64, factorValues map[schema.Factor][]float64) schema.CorrelationMatrix {
	labels := []string{"Ladder score"}
	columns := [][]float64{scores}
	for _, factor := range schema.AllFactors {
		labels = append(labels, schema.FactorLabel(factor))
		columns = append(columns, factorValues[factor])
	}

	values := make([][]float64, len(columns))
	for i := range columns {
		values[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j {
				values[i][j] = 1
				continue
			}
			if j < i {
				values[i][j] = values[j][i]
				continue
			}
			values[i][j] = algo.Spearman(columns[i], columns[j])
		}
	}
	return schema.CorrelationMatrix{Labels: labels, Values: values}
}

// regressionLine fits score against one factor and carries the scatter points.
func regressionLine(records []schema.HappinessRecord, x, y []float64, factor schema.Factor) schema.RegressionLine {
	fit := algo.OLS(x, y)
	line := schema.RegressionLine{
		Factor:    factor,
		Slope:     fit.Slope,
		Intercept: fit.Intercept,
		R2:        fit.R2,
	}
	for i, rec := range records {
		line.Points = append(line.Points, schema.ScatterPoint{
			Country: rec.Country,
			X:       x[i],
			Y:       y[i],
		})
	}
	return line
}

// GetComparison computes per-country movement between the base and target
// years. Countries present in both years are "active" and sorted by score
// delta; countries only in the target year are "new"; countries only in the
// base year are "dropped".
func GetComparison(store *dataset.Store, cfg *contract.Config) *schema.ComparisonResult {
	base := store.FilterRecords(cfg.FilterForYear(cfg.BaseYear))
	target := store.FilterRecords(cfg.FilterForYear(cfg.TargetYear))

	baseByCountry := make(map[string]schema.HappinessRecord, len(base))
	for _, rec := range base {
		baseByCountry[strings.ToLower(rec.Country)] = rec
	}

	result := &schema.ComparisonResult{BaseYear: cfg.BaseYear, TargetYear: cfg.TargetYear}

	var active, added []schema.ComparisonRow
	for _, rec := range target {
		key := strings.ToLower(rec.Country)
		baseRec, ok := baseByCountry[key]
		if !ok {
			added = append(added, schema.ComparisonRow{
				Country:     rec.Country,
				Region:      rec.Region,
				Status:      schema.NewStatus,
				TargetScore: rec.Score,
				TargetRank:  rec.Rank,
			})
			continue
		}
		delete(baseByCountry, key)
		active = append(active, schema.ComparisonRow{
			Country:     rec.Country,
			Region:      rec.Region,
			Status:      schema.ActiveStatus,
			BaseScore:   baseRec.Score,
			TargetScore: rec.Score,
			ScoreDelta:  rec.Score - baseRec.Score,
			BaseRank:    baseRec.Rank,
			TargetRank:  rec.Rank,
			RankDelta:   baseRec.Rank - rec.Rank,
		})
	}

	var dropped []schema.ComparisonRow
	for _, rec := range base {
		if _, gone := baseByCountry[strings.ToLower(rec.Country)]; gone {
			dropped = append(dropped, schema.ComparisonRow{
				Country:   rec.Country,
				Region:    rec.Region,
				Status:    schema.DroppedStatus,
				BaseScore: rec.Score,
				BaseRank:  rec.Rank,
			})
		}
	}

	// Biggest movers first; the limit caps active rows only so new and
	// dropped countries always surface.
	sort.SliceStable(active, func(i, j int) bool {
		return math.Abs(active[i].ScoreDelta) > math.Abs(active[j].ScoreDelta)
	})
	if cfg.ResultLimit > 0 && len(active) > cfg.ResultLimit {
		active = active[:cfg.ResultLimit]
	}

	result.Rows = append(result.Rows, active...)
	result.Rows = append(result.Rows, added...)
	result.Rows = append(result.Rows, dropped...)
	return result
}

// GetMap assigns tercile categories to every country's score and factor
// values for one year, powering the map view's Low/Average/High filters.
func GetMap(store *dataset.Store, cfg *contract.Config) *schema.MapResult {
	year := ResolveYear(store, cfg)
	records := store.FilterRecords(cfg.FilterForYear(year))

	result := &schema.MapResult{Year: year}
	if len(records) == 0 {
		return result
	}

	scores := make([]float64, len(records))
	for i, rec := range records {
		scores[i] = rec.Score
	}
	scoreLower, scoreUpper := algo.TercileCuts(scores)

	type cuts struct{ lower, upper float64 }
	factorCuts := make(map[schema.Factor]cuts, len(schema.AllFactors))
	for _, factor := range schema.AllFactors {
		values := make([]float64, len(records))
		for i := range records {
			values[i] = records[i].FactorValue(factor)
		}
		lower, upper := algo.TercileCuts(values)
		factorCuts[factor] = cuts{lower, upper}
	}

	for _, rec := range records {
		entry := schema.MapEntry{
			Country:        rec.Country,
			Region:         rec.Region,
			Score:          rec.Score,
			ScoreTercile:   algo.TercileOf(rec.Score, scoreLower, scoreUpper),
			FactorTerciles: make(map[schema.Factor]schema.Tercile, len(schema.AllFactors)),
		}
		for _, factor := range schema.AllFactors {
			c := factorCuts[factor]
			entry.FactorTerciles[factor] = algo.TercileOf(rec.FactorValue(factor), c.lower, c.upper)
		}
		result.Entries = append(result.Entries, entry)
	}

	sort.Slice(result.Entries, func(i, j int) bool {
		return result.Entries[i].Country < result.Entries[j].Country
	})
	return result
}
