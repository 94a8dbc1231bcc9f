// Package chart turns report results into render-ready chart configurations
// for the web dashboard and JSON output.
package chart

import (
	"fmt"

	"github.com/shriyae/ladderboard/schema"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Config defines how to render a chart. The shape is stable so web frontends
// can consume it directly.
type Config struct {
	ChartType  schema.ChartKind `json:"chartType"`
	Title      string           `json:"title"`
	XAxis      string           `json:"xAxis,omitempty"`
	YAxis      string           `json:"yAxis,omitempty"`
	Series     []Series         `json:"series"`
	Matrix     *Matrix          `json:"matrix,omitempty"` // heatmap charts only
	Colors     []string         `json:"colors,omitempty"`
	ShowLegend bool             `json:"showLegend"`
	ShowGrid   bool             `json:"showGrid"`
}

// Series represents a data series in a chart.
type Series struct {
	Name  string  `json:"name"`
	Data  []Point `json:"data"`
	Color string  `json:"color,omitempty"`
}

// Point represents a single data point. X is only set for scatter charts.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	X     float64 `json:"x,omitempty"`
}

// Matrix carries the cells of a heatmap, row-major over Labels.
type Matrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// Rankings builds a horizontal bar chart from a rankings result.
func Rankings(res *schema.RankingResult) *Config {
	if res == nil || len(res.Entries) == 0 {
		return nil
	}

	points := make([]Point, 0, len(res.Entries))
	for _, e := range res.Entries {
		points = append(points, Point{Label: e.Country, Value: e.Score})
	}

	cfg := &Config{
		ChartType:  schema.BarChart,
		Title:      fmt.Sprintf("Happiest countries, %d", res.Year),
		XAxis:      "Country",
		YAxis:      "Ladder score",
		Series:     []Series{{Name: "Score", Data: points}},
		ShowLegend: false,
		ShowGrid:   true,
	}
	cfg.Colors = assignColors(len(cfg.Series))
	return cfg
}

// Breakdown builds a stacked bar chart of factor contributions. One series
// per factor plus a residual series, stacked per country.
func Breakdown(res *schema.BreakdownResult) *Config {
	if res == nil || len(res.Rows) == 0 {
		return nil
	}

	series := make([]Series, 0, len(schema.AllFactors)+1)
	for _, factor := range schema.AllFactors {
		points := make([]Point, 0, len(res.Rows))
		for _, row := range res.Rows {
			points = append(points, Point{Label: row.Country, Value: row.Parts[factor]})
		}
		series = append(series, Series{Name: schema.FactorLabel(factor), Data: points})
	}

	residual := make([]Point, 0, len(res.Rows))
	for _, row := range res.Rows {
		residual = append(residual, Point{Label: row.Country, Value: row.Residual})
	}
	series = append(series, Series{Name: "Dystopia + residual", Data: residual})

	cfg := &Config{
		ChartType:  schema.StackedBarChart,
		Title:      fmt.Sprintf("What makes countries happy, %d", res.Year),
		XAxis:      "Country",
		YAxis:      "Contribution to score",
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
	}
	cfg.Colors = assignColors(len(cfg.Series))
	return cfg
}

// Trends builds a line chart with one series per country or region.
func Trends(res *schema.TrendResult) *Config {
	if res == nil || len(res.Series) == 0 {
		return nil
	}

	yAxis := "Ladder score"
	if res.Relative {
		yAxis = "Score relative to own mean"
	}

	series := make([]Series, 0, len(res.Series))
	for _, ts := range res.Series {
		points := make([]Point, 0, len(ts.Points))
		for _, p := range ts.Points {
			value := p.Score
			if res.Relative {
				value = p.Relative
			}
			points = append(points, Point{Label: fmt.Sprintf("%d", p.Year), Value: value})
		}
		series = append(series, Series{Name: ts.Label, Data: points})
	}

	cfg := &Config{
		ChartType:  schema.LineChart,
		Title:      "Happiness over time",
		XAxis:      "Year",
		YAxis:      yAxis,
		Series:     series,
		ShowLegend: true,
		ShowGrid:   true,
	}
	cfg.Colors = assignColors(len(cfg.Series))
	return cfg
}

// CorrelationHeatmap builds a heatmap from a correlation matrix.
func CorrelationHeatmap(res *schema.CorrelationResult) *Config {
	if res == nil || len(res.Matrix.Labels) == 0 {
		return nil
	}

	return &Config{
		ChartType: schema.HeatmapChart,
		Title:     fmt.Sprintf("Factor correlations, %d", res.Year),
		Matrix: &Matrix{
			Labels: res.Matrix.Labels,
			Values: res.Matrix.Values,
		},
		ShowLegend: false,
		ShowGrid:   false,
	}
}

// RegressionScatter builds a scatter chart of factor versus score, with the
// fitted line as a second two-point series.
func RegressionScatter(res *schema.CorrelationResult) *Config {
	if res == nil || len(res.Regression.Points) == 0 {
		return nil
	}
	reg := res.Regression

	points := make([]Point, 0, len(reg.Points))
	minX, maxX := reg.Points[0].X, reg.Points[0].X
	for _, p := range reg.Points {
		points = append(points, Point{Label: p.Country, X: p.X, Value: p.Y})
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}

	fit := []Point{
		{Label: "fit", X: minX, Value: reg.Intercept + reg.Slope*minX},
		{Label: "fit", X: maxX, Value: reg.Intercept + reg.Slope*maxX},
	}

	cfg := &Config{
		ChartType: schema.ScatterChart,
		Title: fmt.Sprintf("%s vs. ladder score, %d (R²=%.2f)",
			schema.FactorLabel(reg.Factor), res.Year, reg.R2),
		XAxis: schema.FactorLabel(reg.Factor),
		YAxis: "Ladder score",
		Series: []Series{
			{Name: "Countries", Data: points},
			{Name: "OLS fit", Data: fit},
		},
		ShowLegend: true,
		ShowGrid:   true,
	}
	cfg.Colors = assignColors(len(cfg.Series))
	return cfg
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := range count {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
