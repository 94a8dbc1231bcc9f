package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/chart"
	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
	"github.com/shriyae/ladderboard/schema"
)

// Handler holds the loaded dataset and the base configuration for API routes.
type Handler struct {
	store *dataset.Store
	cfg   *contract.Config
}

// NewHandler creates a Handler backed by an already-loaded dataset.
func NewHandler(store *dataset.Store, cfg *contract.Config) *Handler {
	return &Handler{store: store, cfg: cfg}
}

// RegisterRoutes mounts the API routes on the echo instance.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.GetHealth)

	api := e.Group("/api")
	api.GET("/meta", h.GetMeta)
	api.GET("/rankings", h.GetRankings)
	api.GET("/breakdown", h.GetBreakdown)
	api.GET("/trends", h.GetTrends)
	api.GET("/correlations", h.GetCorrelations)
	api.GET("/compare", h.GetCompare)
	api.GET("/map", h.GetMap)
}

// viewResponse pairs a report result with its chart configuration.
type viewResponse struct {
	Result any           `json:"result"`
	Chart  *chart.Config `json:"chart,omitempty"`
}

// requestConfig clones the base config and applies the common query params.
func (h *Handler) requestConfig(c echo.Context) *contract.Config {
	cfg := h.cfg.Clone()
	cfg.Year = intParam(c, "year", cfg.Year)
	cfg.FromYear = intParam(c, "from", cfg.FromYear)
	cfg.ToYear = intParam(c, "to", cfg.ToYear)
	cfg.ResultLimit = clampLimit(intParam(c, "limit", cfg.ResultLimit))
	if regions := c.QueryParams()["region"]; len(regions) > 0 {
		cfg.Regions = regions
	}
	if countries := c.QueryParams()["country"]; len(countries) > 0 {
		cfg.Countries = countries
	}
	return cfg
}

// GetHealth reports liveness and dataset size.
func (h *Handler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"records": h.store.Len(),
	})
}

// GetMeta returns the filterable dimensions of the loaded dataset.
func (h *Handler) GetMeta(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"years":       h.store.Years(),
		"latest_year": h.store.LatestYear(),
		"countries":   h.store.Countries(),
		"regions":     h.store.Regions(),
		"factors":     schema.AllFactors,
	})
}

// GetRankings returns the leaderboard for one year.
func (h *Handler) GetRankings(c echo.Context) error {
	cfg := h.requestConfig(c)
	result := core.GetRankings(h.store, cfg)
	return c.JSON(http.StatusOK, viewResponse{
		Result: result,
		Chart:  chart.Rankings(result),
	})
}

// GetBreakdown returns the factor decomposition for one year.
func (h *Handler) GetBreakdown(c echo.Context) error {
	cfg := h.requestConfig(c)
	result := core.GetBreakdown(h.store, cfg)
	return c.JSON(http.StatusOK, viewResponse{
		Result: result,
		Chart:  chart.Breakdown(result),
	})
}

// GetTrends returns score-over-time series.
func (h *Handler) GetTrends(c echo.Context) error {
	cfg := h.requestConfig(c)
	cfg.Relative = boolParam(c, "relative", cfg.Relative)
	result := core.GetTrends(h.store, cfg)
	return c.JSON(http.StatusOK, viewResponse{
		Result: result,
		Chart:  chart.Trends(result),
	})
}

// GetCorrelations returns factor correlations plus a regression fit.
func (h *Handler) GetCorrelations(c echo.Context) error {
	cfg := h.requestConfig(c)
	if raw := c.QueryParam("factor"); raw != "" {
		factor := schema.Factor(raw)
		if _, ok := schema.ValidFactors[factor]; !ok {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid factor: %s", raw))
		}
		cfg.Factor = factor
	}
	result := core.GetCorrelations(h.store, cfg)
	return c.JSON(http.StatusOK, map[string]any{
		"result":  result,
		"chart":   chart.CorrelationHeatmap(result),
		"scatter": chart.RegressionScatter(result),
	})
}

// GetCompare returns per-country movement between two years.
func (h *Handler) GetCompare(c echo.Context) error {
	cfg := h.requestConfig(c)
	cfg.BaseYear = intParam(c, "base_year", 0)
	cfg.TargetYear = intParam(c, "target_year", 0)
	if err := contract.RevalidateCompare(cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	result := core.GetComparison(h.store, cfg)
	return c.JSON(http.StatusOK, viewResponse{Result: result})
}

// GetMap returns tercile profiles for one year.
func (h *Handler) GetMap(c echo.Context) error {
	cfg := h.requestConfig(c)
	result := core.GetMap(h.store, cfg)
	return c.JSON(http.StatusOK, viewResponse{Result: result})
}

// intParam reads an integer query parameter, falling back on parse failure.
func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// boolParam reads a boolean query parameter, falling back on parse failure.
func boolParam(c echo.Context, name string, fallback bool) bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

// clampLimit keeps client-supplied limits inside the allowed range.
func clampLimit(limit int) int {
	if limit <= 0 {
		return contract.DefaultResultLimit
	}
	if limit > contract.MaxResultLimit {
		return contract.MaxResultLimit
	}
	return limit
}
