package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shriyae/ladderboard/internal/contract"
	mcp_internal "github.com/shriyae/ladderboard/internal/mcp"
	"github.com/shriyae/ladderboard/schema"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.JSONOut,
		Factor:      schema.FactorGDP,
		RunBackend:  schema.NoneBackend,
	}
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

// TestMCPServerRankings tests the get_rankings tool against the bundled sample.
func TestMCPServerRankings(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())

	res := callTool(t, s, "get_rankings", map[string]any{
		"year":   2015.0,
		"region": "Western Europe",
	})
	require.False(t, res.IsError)

	var result schema.RankingResult
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &result))

	assert.Equal(t, 2015, result.Year)
	require.NotEmpty(t, result.Entries)
	assert.Equal(t, "Switzerland", result.Entries[0].Country)
	for i := 1; i < len(result.Entries); i++ {
		assert.GreaterOrEqual(t, result.Entries[i-1].Score, result.Entries[i].Score)
	}
}

// TestMCPServerTrends tests the get_trends tool with a country series.
func TestMCPServerTrends(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())

	res := callTool(t, s, "get_trends", map[string]any{
		"country":  "Finland",
		"relative": true,
	})
	require.False(t, res.IsError)

	var result schema.TrendResult
	text := res.Content[0].(mcp.TextContent).Text
	require.NoError(t, json.Unmarshal([]byte(text), &result))

	assert.True(t, result.Relative)
	require.Len(t, result.Series, 1)
	assert.Equal(t, "Finland", result.Series[0].Label)
	assert.Len(t, result.Series[0].Points, 3)
}

// TestMCPServerValidationErrors tests tool-level validation failures.
func TestMCPServerValidationErrors(t *testing.T) {
	s := mcp_internal.NewMCPServer(baseConfig())

	t.Run("get_correlations invalid factor", func(t *testing.T) {
		res := callTool(t, s, "get_correlations", map[string]any{
			"factor": "astrology",
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid factor")
	})

	t.Run("compare_years missing years", func(t *testing.T) {
		res := callTool(t, s, "compare_years", map[string]any{
			"base_year": 2015.0,
		})
		assert.True(t, res.IsError, "The response should indicate an error state")
	})

	t.Run("get_rankings bad dataset path", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DataPath = "/nonexistent/happiness.csv"
		badServer := mcp_internal.NewMCPServer(cfg)

		res := callTool(t, badServer, "get_rankings", map[string]any{})
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "dataset file not found")
	})
}
