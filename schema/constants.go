package schema

// Custom string types for type safety.
type (
	// Factor represents one of the explanatory factors in the report.
	Factor string

	// OutputMode represents the format of the output.
	OutputMode string

	// ChartKind represents the visual encoding of a chart spec.
	ChartKind string

	// Tercile represents the Low/Average/High category of a factor value.
	Tercile string

	// Status represents a country's presence between two compared years.
	Status string

	// DatabaseBackend represents the database backend for run tracking.
	DatabaseBackend string
)

// All explanatory factors tracked by the report, in display order.
const (
	FactorGDP            Factor = "gdp_per_capita"
	FactorSocialSupport  Factor = "social_support"
	FactorLifeExpectancy Factor = "healthy_life_expectancy"
	FactorFreedom        Factor = "freedom"
	FactorGenerosity     Factor = "generosity"
	FactorCorruption     Factor = "corruption_perception"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All chart kinds emitted by the chart builders.
const (
	BarChart        ChartKind = "bar"
	StackedBarChart ChartKind = "stacked_bar"
	LineChart       ChartKind = "line"
	ScatterChart    ChartKind = "scatter"
	HeatmapChart    ChartKind = "heatmap"
)

// All terciles supported.
const (
	LowTercile     Tercile = "Low"
	AverageTercile Tercile = "Average"
	HighTercile    Tercile = "High"
)

// All comparison statuses supported.
const (
	NewStatus     Status = "new"
	ActiveStatus  Status = "active"
	DroppedStatus Status = "dropped"
)

// All run-store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllFactors lists every explanatory factor in display order.
var AllFactors = []Factor{
	FactorGDP,
	FactorSocialSupport,
	FactorLifeExpectancy,
	FactorFreedom,
	FactorGenerosity,
	FactorCorruption,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidFactors lists all valid factors.
var ValidFactors = map[Factor]struct{}{
	FactorGDP:            {},
	FactorSocialSupport:  {},
	FactorLifeExpectancy: {},
	FactorFreedom:        {},
	FactorGenerosity:     {},
	FactorCorruption:     {},
}

// ValidRunBackends lists all valid run-store backends.
var ValidRunBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// factorLabels maps factors to their human-readable report labels.
var factorLabels = map[Factor]string{
	FactorGDP:            "GDP per capita",
	FactorSocialSupport:  "Social support",
	FactorLifeExpectancy: "Healthy life expectancy",
	FactorFreedom:        "Freedom",
	FactorGenerosity:     "Generosity",
	FactorCorruption:     "Corruption perception",
}

// FactorLabel returns the human-readable label for a factor.
// Unknown factors fall back to their raw string form.
func FactorLabel(f Factor) string {
	if label, ok := factorLabels[f]; ok {
		return label
	}
	return string(f)
}
