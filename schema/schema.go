// Package schema has configs, models and shared types for all parts of ladderboard.
package schema

// HappinessRecord represents one country's survey results for one report year.
// Records are immutable once loaded; the six factor columns hold the portion of
// the ladder score that the report attributes to each factor.
type HappinessRecord struct {
	Country               string  `json:"country"`
	Region                string  `json:"region"`
	Year                  int     `json:"year"`
	Rank                  int     `json:"rank"`
	Score                 float64 `json:"score"`
	GDPPerCapita          float64 `json:"gdp_per_capita"`
	SocialSupport         float64 `json:"social_support"`
	HealthyLifeExpectancy float64 `json:"healthy_life_expectancy"`
	Freedom               float64 `json:"freedom"`
	Generosity            float64 `json:"generosity"`
	CorruptionPerception  float64 `json:"corruption_perception"`
}

// FactorValue returns the record's value for the given factor.
func (r *HappinessRecord) FactorValue(f Factor) float64 {
	switch f {
	case FactorGDP:
		return r.GDPPerCapita
	case FactorSocialSupport:
		return r.SocialSupport
	case FactorLifeExpectancy:
		return r.HealthyLifeExpectancy
	case FactorFreedom:
		return r.Freedom
	case FactorGenerosity:
		return r.Generosity
	case FactorCorruption:
		return r.CorruptionPerception
	default:
		return 0
	}
}

// Residual returns the part of the score the six factors do not explain.
// The report calls this "dystopia + residual"; it can be negative.
func (r *HappinessRecord) Residual() float64 {
	explained := 0.0
	for _, f := range AllFactors {
		explained += r.FactorValue(f)
	}
	return r.Score - explained
}

// Filter is a user-selected subset of the dataset. It is transient UI/CLI
// state and never persisted. Zero year bounds mean unbounded; empty lists
// mean no restriction. Country and region matching is case-insensitive.
type Filter struct {
	FromYear  int      `json:"from_year,omitempty"`
	ToYear    int      `json:"to_year,omitempty"`
	Countries []string `json:"countries,omitempty"`
	Regions   []string `json:"regions,omitempty"`
}

// IsEmpty returns true if the filter places no restriction on the dataset.
func (f Filter) IsEmpty() bool {
	return f.FromYear == 0 && f.ToYear == 0 && len(f.Countries) == 0 && len(f.Regions) == 0
}

// RankingEntry is one row of a ranking report.
type RankingEntry struct {
	Rank    int     `json:"rank"`
	Country string  `json:"country"`
	Region  string  `json:"region"`
	Score   float64 `json:"score"`
}

// RankingResult holds the top countries by score for one year.
type RankingResult struct {
	Year    int            `json:"year"`
	Entries []RankingEntry `json:"entries"`
}

// BreakdownRow is the factor composition of one country's score.
type BreakdownRow struct {
	Rank     int                `json:"rank"`
	Country  string             `json:"country"`
	Score    float64            `json:"score"`
	Parts    map[Factor]float64 `json:"parts"`
	Residual float64            `json:"residual"`
	// Shares holds each factor's contribution as a fraction of the score.
	Shares map[Factor]float64 `json:"shares"`
}

// BreakdownResult holds factor breakdowns for the top countries of one year.
type BreakdownResult struct {
	Year int            `json:"year"`
	Rows []BreakdownRow `json:"rows"`
}

// TrendPoint is one year's score within a trend series.
type TrendPoint struct {
	Year  int     `json:"year"`
	Score float64 `json:"score"`
	// Relative is the score minus the series' mean score across all years,
	// showing whether the country/region is above or below its own baseline.
	Relative float64 `json:"relative"`
}

// TrendSeries is the score history for one country or region average.
type TrendSeries struct {
	Label  string       `json:"label"`
	Region bool         `json:"region,omitempty"`
	Mean   float64      `json:"mean"`
	Points []TrendPoint `json:"points"`
}

// TrendResult holds one or more trend series.
type TrendResult struct {
	// Relative marks that the series should be read against each series' own
	// mean rather than as absolute scores.
	Relative bool          `json:"relative,omitempty"`
	Series   []TrendSeries `json:"series"`
}

// FactorCorrelation is a factor's rank correlation with the ladder score.
type FactorCorrelation struct {
	Factor      Factor  `json:"factor"`
	Coefficient float64 `json:"coefficient"`
}

// CorrelationMatrix is a symmetric matrix over score + factors.
type CorrelationMatrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// ScatterPoint is one country's position on a factor-vs-score plot.
type ScatterPoint struct {
	Country string  `json:"country"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// RegressionLine is an OLS fit of score against one factor.
type RegressionLine struct {
	Factor    Factor         `json:"factor"`
	Slope     float64        `json:"slope"`
	Intercept float64        `json:"intercept"`
	R2        float64        `json:"r2"`
	Points    []ScatterPoint `json:"points"`
}

// CorrelationResult holds the correlation analysis for one year.
type CorrelationResult struct {
	Year       int                 `json:"year"`
	TopFactors []FactorCorrelation `json:"top_factors"`
	Matrix     CorrelationMatrix   `json:"matrix"`
	Regression RegressionLine      `json:"regression"`
}

// ComparisonRow is one country's movement between two compared years.
type ComparisonRow struct {
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	Status      Status  `json:"status"`
	BaseScore   float64 `json:"base_score"`
	TargetScore float64 `json:"target_score"`
	ScoreDelta  float64 `json:"score_delta"`
	BaseRank    int     `json:"base_rank"`
	TargetRank  int     `json:"target_rank"`
	// RankDelta is positive when the country climbed the leaderboard.
	RankDelta int `json:"rank_delta"`
}

// ComparisonResult holds the per-country deltas between two years.
type ComparisonResult struct {
	BaseYear   int             `json:"base_year"`
	TargetYear int             `json:"target_year"`
	Rows       []ComparisonRow `json:"rows"`
}

// MapEntry is one country's tercile profile for the map view.
type MapEntry struct {
	Country        string             `json:"country"`
	Region         string             `json:"region"`
	Score          float64            `json:"score"`
	ScoreTercile   Tercile            `json:"score_tercile"`
	FactorTerciles map[Factor]Tercile `json:"factor_terciles"`
}

// MapResult holds tercile profiles for all countries of one year.
type MapResult struct {
	Year    int        `json:"year"`
	Entries []MapEntry `json:"entries"`
}
