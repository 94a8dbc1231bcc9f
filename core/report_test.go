package core

import (
	"testing"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
	"github.com/shriyae/ladderboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStore(t *testing.T) *dataset.Store {
	t.Helper()
	store, _, err := dataset.LoadSample()
	require.NoError(t, err)
	return store
}

func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.TextOut,
		Factor:      schema.FactorGDP,
	}
}

// TestGetRankingsLatestYear tests that year 0 resolves to the newest data.
func TestGetRankingsLatestYear(t *testing.T) {
	store := sampleStore(t)
	result := GetRankings(store, baseConfig())

	assert.Equal(t, 2024, result.Year)
	require.NotEmpty(t, result.Entries)
	assert.Len(t, result.Entries, contract.DefaultResultLimit)
	assert.Equal(t, "Finland", result.Entries[0].Country)
	assert.Equal(t, 1, result.Entries[0].Rank)
}

// TestGetRankingsRegionFilter tests a filtered single-year leaderboard
// sorted by descending score.
func TestGetRankingsRegionFilter(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 2015
	cfg.Regions = []string{"Western Europe"}

	result := GetRankings(store, cfg)
	assert.Equal(t, 2015, result.Year)
	require.NotEmpty(t, result.Entries)
	for i, entry := range result.Entries {
		assert.Equal(t, "Western Europe", entry.Region)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Entries[i-1].Score, entry.Score)
		}
	}
	assert.Equal(t, "Switzerland", result.Entries[0].Country)
}

// TestGetRankingsEmptyYear tests that a year with no data yields an empty
// result, not an error.
func TestGetRankingsEmptyYear(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 1990

	result := GetRankings(store, cfg)
	assert.Equal(t, 1990, result.Year)
	assert.Empty(t, result.Entries)
}

// TestGetBreakdown tests factor decomposition including the residual.
func TestGetBreakdown(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 2024
	cfg.Countries = []string{"Finland"}

	result := GetBreakdown(store, cfg)
	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, "Finland", row.Country)

	// Parts plus residual reconstruct the score.
	total := row.Residual
	for _, factor := range schema.AllFactors {
		total += row.Parts[factor]
	}
	assert.InDelta(t, row.Score, total, 1e-9)

	// Shares are fractions of the score.
	assert.InDelta(t, row.Parts[schema.FactorGDP]/row.Score, row.Shares[schema.FactorGDP], 1e-9)
}

// TestGetTrendsCountries tests per-country series with relative scores.
func TestGetTrendsCountries(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Countries = []string{"Finland", "Atlantis"}

	result := GetTrends(store, cfg)
	// Unknown countries produce no series rather than an error.
	require.Len(t, result.Series, 1)

	series := result.Series[0]
	assert.Equal(t, "Finland", series.Label)
	assert.False(t, series.Region)
	require.Len(t, series.Points, 3)

	// Relative scores are centered on the series mean.
	sum := 0.0
	for _, p := range series.Points {
		assert.InDelta(t, p.Score-series.Mean, p.Relative, 1e-9)
		sum += p.Relative
	}
	assert.InDelta(t, 0, sum, 1e-9)
}

// TestGetTrendsRegions tests region-average series.
func TestGetTrendsRegions(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Regions = []string{"Western Europe"}

	result := GetTrends(store, cfg)
	require.Len(t, result.Series, 1)
	series := result.Series[0]
	assert.True(t, series.Region)
	assert.Equal(t, "Western Europe", series.Label)
	require.Len(t, series.Points, 3)
	// Region averages stay on the ladder scale.
	for _, p := range series.Points {
		assert.Greater(t, p.Score, 6.5)
		assert.Less(t, p.Score, 8.0)
	}
}

// TestGetTrendsYearWindow tests that the year range bounds the points.
func TestGetTrendsYearWindow(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Countries = []string{"Finland"}
	cfg.FromYear = 2019
	cfg.ToYear = 2024

	result := GetTrends(store, cfg)
	require.Len(t, result.Series, 1)
	require.Len(t, result.Series[0].Points, 2)
	assert.Equal(t, 2019, result.Series[0].Points[0].Year)
	assert.Equal(t, 2024, result.Series[0].Points[1].Year)
}

// TestGetCorrelations tests the correlation analysis shape and bounds.
func TestGetCorrelations(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 2024

	result := GetCorrelations(store, cfg)
	require.Len(t, result.TopFactors, len(schema.AllFactors))

	// Coefficients are valid and sorted by absolute strength.
	for i, fc := range result.TopFactors {
		assert.GreaterOrEqual(t, fc.Coefficient, -1.0)
		assert.LessOrEqual(t, fc.Coefficient, 1.0)
		if i > 0 {
			prev := result.TopFactors[i-1].Coefficient
			assert.GreaterOrEqual(t, abs(prev), abs(fc.Coefficient))
		}
	}

	// GDP correlates strongly with score in the report data.
	for _, fc := range result.TopFactors {
		if fc.Factor == schema.FactorGDP {
			assert.Greater(t, fc.Coefficient, 0.5)
		}
	}

	// Matrix is square over score + factors with a unit diagonal.
	size := len(schema.AllFactors) + 1
	require.Len(t, result.Matrix.Labels, size)
	require.Len(t, result.Matrix.Values, size)
	for i := range size {
		require.Len(t, result.Matrix.Values[i], size)
		assert.InDelta(t, 1.0, result.Matrix.Values[i][i], 1e-9)
		for j := range size {
			assert.InDelta(t, result.Matrix.Values[j][i], result.Matrix.Values[i][j], 1e-9)
		}
	}

	// Regression covers every record of the year.
	assert.Equal(t, schema.FactorGDP, result.Regression.Factor)
	assert.Len(t, result.Regression.Points, 24)
	assert.Greater(t, result.Regression.Slope, 0.0)
}

// TestGetCorrelationsTooFewRecords tests the small-sample guard.
func TestGetCorrelationsTooFewRecords(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 2024
	cfg.Countries = []string{"Finland", "Denmark"}

	result := GetCorrelations(store, cfg)
	assert.Empty(t, result.TopFactors)
	assert.Empty(t, result.Matrix.Labels)
}

// TestGetComparison tests year-over-year movement.
func TestGetComparison(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.BaseYear = 2015
	cfg.TargetYear = 2024
	cfg.ResultLimit = 100

	result := GetComparison(store, cfg)
	assert.Equal(t, 2015, result.BaseYear)
	assert.Equal(t, 2024, result.TargetYear)
	// The sample has the same 24 countries both years.
	require.Len(t, result.Rows, 24)

	byCountry := make(map[string]schema.ComparisonRow)
	for _, row := range result.Rows {
		assert.Equal(t, schema.ActiveStatus, row.Status)
		assert.InDelta(t, row.TargetScore-row.BaseScore, row.ScoreDelta, 1e-9)
		assert.Equal(t, row.BaseRank-row.TargetRank, row.RankDelta)
		byCountry[row.Country] = row
	}

	// Finland climbed from the 2015 midfield to first place.
	finland := byCountry["Finland"]
	assert.Positive(t, finland.RankDelta)
	assert.Equal(t, 1, finland.TargetRank)
}

// TestGetComparisonStatuses tests new and dropped detection.
func TestGetComparisonStatuses(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.BaseYear = 2015
	cfg.TargetYear = 2024
	cfg.Countries = []string{"Finland"}

	result := GetComparison(store, cfg)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, schema.ActiveStatus, result.Rows[0].Status)

	// A country absent from the base year is new; absent from the target
	// year is dropped.
	cfg = baseConfig()
	cfg.BaseYear = 1990
	cfg.TargetYear = 2024
	cfg.Countries = []string{"Finland"}
	result = GetComparison(store, cfg)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, schema.NewStatus, result.Rows[0].Status)

	cfg.BaseYear = 2024
	cfg.TargetYear = 1990
	result = GetComparison(store, cfg)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, schema.DroppedStatus, result.Rows[0].Status)
}

// TestGetMap tests tercile assignment over the full year.
func TestGetMap(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 2024

	result := GetMap(store, cfg)
	require.Len(t, result.Entries, 24)

	counts := map[schema.Tercile]int{}
	byCountry := make(map[string]schema.MapEntry)
	for _, entry := range result.Entries {
		counts[entry.ScoreTercile]++
		require.Len(t, entry.FactorTerciles, len(schema.AllFactors))
		byCountry[entry.Country] = entry
	}

	// Terciles split the countries into three similar-sized groups.
	assert.Equal(t, 8, counts[schema.LowTercile])
	assert.Equal(t, 8, counts[schema.AverageTercile])
	assert.Equal(t, 8, counts[schema.HighTercile])

	assert.Equal(t, schema.HighTercile, byCountry["Finland"].ScoreTercile)
	assert.Equal(t, schema.LowTercile, byCountry["India"].ScoreTercile)

	// Entries are sorted by country for stable output.
	for i := 1; i < len(result.Entries); i++ {
		assert.Less(t, result.Entries[i-1].Country, result.Entries[i].Country)
	}
}

// TestGetMapEmpty tests that an empty year yields an empty map result.
func TestGetMapEmpty(t *testing.T) {
	store := sampleStore(t)
	cfg := baseConfig()
	cfg.Year = 1990

	result := GetMap(store, cfg)
	assert.Empty(t, result.Entries)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
