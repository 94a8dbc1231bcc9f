// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/shriyae/ladderboard/internal/contract"
)

// NewMCPServer initializes and configures the ladderboard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"World Happiness Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: get_rankings ---
	s.AddTool(mcp.NewTool("get_rankings",
		mcp.WithDescription("Get the happiness leaderboard for one report year, optionally filtered by region or country."),
		mcp.WithNumber("year", mcp.Description("Report year (defaults to the latest year in the dataset).")),
		mcp.WithString("region", mcp.Description("Comma-separated region filter.")),
		mcp.WithString("country", mcp.Description("Comma-separated country filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetRankings)

	// --- 2. Tool: get_breakdown ---
	s.AddTool(mcp.NewTool("get_breakdown",
		mcp.WithDescription("Decompose countries' happiness scores into factor contributions plus the unexplained residual."),
		mcp.WithNumber("year", mcp.Description("Report year (defaults to the latest year in the dataset).")),
		mcp.WithString("region", mcp.Description("Comma-separated region filter.")),
		mcp.WithString("country", mcp.Description("Comma-separated country filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetBreakdown)

	// --- 3. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Get happiness score trends over time for countries or region averages."),
		mcp.WithString("country", mcp.Description("Comma-separated countries, one series each.")),
		mcp.WithString("region", mcp.Description("Comma-separated regions, one averaged series each.")),
		mcp.WithNumber("from", mcp.Description("Start of the year window.")),
		mcp.WithNumber("to", mcp.Description("End of the year window.")),
		mcp.WithBoolean("relative", mcp.Description("Report scores relative to each series' own mean.")),
	), h.handleGetTrends)

	// --- 4. Tool: get_correlations ---
	s.AddTool(mcp.NewTool("get_correlations",
		mcp.WithDescription("Get Spearman correlations between factors and the happiness score, plus an OLS regression for one factor."),
		mcp.WithNumber("year", mcp.Description("Report year (defaults to the latest year in the dataset).")),
		mcp.WithString("factor", mcp.Description("Factor for the regression fit. Defaults to gdp_per_capita."),
			mcp.Enum("gdp_per_capita", "social_support", "healthy_life_expectancy", "freedom", "generosity", "corruption_perception")),
	), h.handleGetCorrelations)

	// --- 5. Tool: compare_years ---
	s.AddTool(mcp.NewTool("compare_years",
		mcp.WithDescription("Compare country scores and ranks between two report years."),
		mcp.WithNumber("base_year", mcp.Description("The base (before) year."), mcp.Required()),
		mcp.WithNumber("target_year", mcp.Description("The target (after) year."), mcp.Required()),
		mcp.WithString("region", mcp.Description("Comma-separated region filter.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of active movers returned.")),
	), h.handleCompareYears)

	return s
}

// StartMCPServer starts the ladderboard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
