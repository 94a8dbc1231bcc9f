package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/shriyae/ladderboard/core"
	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
	"github.com/shriyae/ladderboard/schema"
)

// toolHandler holds dependencies for tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// handleGetRankings handles the get_rankings tool request.
func (h *toolHandler) handleGetRankings(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Year = request.GetInt("year", cfg.Year)
	cfg.Regions = splitCSV(request.GetString("region", ""))
	cfg.Countries = splitCSV(request.GetString("country", ""))
	cfg.ResultLimit = request.GetInt("limit", cfg.ResultLimit)

	store, err := openStore(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalResult(core.GetRankings(store, cfg))
}

// handleGetBreakdown handles the get_breakdown tool request.
func (h *toolHandler) handleGetBreakdown(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Year = request.GetInt("year", cfg.Year)
	cfg.Regions = splitCSV(request.GetString("region", ""))
	cfg.Countries = splitCSV(request.GetString("country", ""))
	cfg.ResultLimit = request.GetInt("limit", cfg.ResultLimit)

	store, err := openStore(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalResult(core.GetBreakdown(store, cfg))
}

// handleGetTrends handles the get_trends tool request.
func (h *toolHandler) handleGetTrends(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Countries = splitCSV(request.GetString("country", ""))
	cfg.Regions = splitCSV(request.GetString("region", ""))
	cfg.FromYear = request.GetInt("from", cfg.FromYear)
	cfg.ToYear = request.GetInt("to", cfg.ToYear)
	cfg.Relative = request.GetBool("relative", cfg.Relative)

	store, err := openStore(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalResult(core.GetTrends(store, cfg))
}

// handleGetCorrelations handles the get_correlations tool request.
func (h *toolHandler) handleGetCorrelations(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Year = request.GetInt("year", cfg.Year)
	factor := schema.Factor(request.GetString("factor", string(cfg.Factor)))
	if _, ok := schema.ValidFactors[factor]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid factor: %s", factor)), nil
	}
	cfg.Factor = factor

	store, err := openStore(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalResult(core.GetCorrelations(store, cfg))
}

// handleCompareYears handles the compare_years tool request.
func (h *toolHandler) handleCompareYears(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.BaseYear = request.GetInt("base_year", 0)
	cfg.TargetYear = request.GetInt("target_year", 0)
	cfg.Regions = splitCSV(request.GetString("region", ""))
	cfg.ResultLimit = request.GetInt("limit", cfg.ResultLimit)

	if err := contract.RevalidateCompare(cfg); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	store, err := openStore(cfg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return marshalResult(core.GetComparison(store, cfg))
}

// openStore loads the configured dataset, dropping per-row warnings since MCP
// clients only want the structured result.
func openStore(cfg *contract.Config) (*dataset.Store, error) {
	store, _, err := dataset.Open(cfg.DataPath)
	return store, err
}

// marshalResult serializes a report result as indented JSON for the client.
func marshalResult(result any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// splitCSV splits a comma-separated parameter into trimmed values.
func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for part := range strings.SplitSeq(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
