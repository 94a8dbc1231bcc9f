package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shriyae/ladderboard/internal/contract"
	"github.com/shriyae/ladderboard/internal/dataset"
	"github.com/shriyae/ladderboard/schema"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, _, err := dataset.LoadSample()
	require.NoError(t, err)

	cfg := &contract.Config{
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Output:      schema.JSONOut,
		Factor:      schema.FactorGDP,
		RunBackend:  schema.NoneBackend,
	}

	srv := httptest.NewServer(NewServer(store, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	res, err := http.Get(url)
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

// TestHealthRoute tests the liveness endpoint.
func TestHealthRoute(t *testing.T) {
	srv := testServer(t)

	var body map[string]any
	res := getJSON(t, srv.URL+"/healthz", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Positive(t, body["records"])
}

// TestMetaRoute tests the dataset dimensions endpoint.
func TestMetaRoute(t *testing.T) {
	srv := testServer(t)

	var body struct {
		Years      []int    `json:"years"`
		LatestYear int      `json:"latest_year"`
		Countries  []string `json:"countries"`
		Regions    []string `json:"regions"`
	}
	res := getJSON(t, srv.URL+"/api/meta", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []int{2015, 2019, 2024}, body.Years)
	assert.Equal(t, 2024, body.LatestYear)
	assert.Contains(t, body.Countries, "Finland")
	assert.Contains(t, body.Regions, "Western Europe")
}

// TestRankingsRoute tests year and region filters on the rankings endpoint.
func TestRankingsRoute(t *testing.T) {
	srv := testServer(t)

	var body struct {
		Result schema.RankingResult `json:"result"`
		Chart  *json.RawMessage     `json:"chart"`
	}
	res := getJSON(t, srv.URL+"/api/rankings?year=2015&region=Western+Europe&limit=5", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, 2015, body.Result.Year)
	require.NotEmpty(t, body.Result.Entries)
	assert.LessOrEqual(t, len(body.Result.Entries), 5)
	assert.Equal(t, "Switzerland", body.Result.Entries[0].Country)
	for i := 1; i < len(body.Result.Entries); i++ {
		assert.GreaterOrEqual(t, body.Result.Entries[i-1].Score, body.Result.Entries[i].Score)
	}
	assert.NotNil(t, body.Chart)
}

// TestRankingsRouteEmpty tests that an out-of-range year yields an empty 200.
func TestRankingsRouteEmpty(t *testing.T) {
	srv := testServer(t)

	var body struct {
		Result schema.RankingResult `json:"result"`
	}
	res := getJSON(t, srv.URL+"/api/rankings?year=1990", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, body.Result.Entries)
}

// TestTrendsRoute tests the relative trends series.
func TestTrendsRoute(t *testing.T) {
	srv := testServer(t)

	var body struct {
		Result schema.TrendResult `json:"result"`
	}
	res := getJSON(t, srv.URL+"/api/trends?country=Finland&relative=true", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.True(t, body.Result.Relative)
	require.Len(t, body.Result.Series, 1)
	assert.Equal(t, "Finland", body.Result.Series[0].Label)
	assert.Len(t, body.Result.Series[0].Points, 3)
}

// TestCorrelationsRoute tests factor validation and the regression payload.
func TestCorrelationsRoute(t *testing.T) {
	srv := testServer(t)

	res := getJSON(t, srv.URL+"/api/correlations?factor=astrology", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body struct {
		Result schema.CorrelationResult `json:"result"`
	}
	res = getJSON(t, srv.URL+"/api/correlations?year=2024&factor=social_support", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, schema.FactorSocialSupport, body.Result.Regression.Factor)
	assert.NotEmpty(t, body.Result.TopFactors)
}

// TestCompareRoute tests year validation and the movement payload.
func TestCompareRoute(t *testing.T) {
	srv := testServer(t)

	res := getJSON(t, srv.URL+"/api/compare?base_year=2015", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	var body struct {
		Result schema.ComparisonResult `json:"result"`
	}
	res = getJSON(t, srv.URL+"/api/compare?base_year=2015&target_year=2024", &body)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 2015, body.Result.BaseYear)
	assert.Equal(t, 2024, body.Result.TargetYear)
	assert.NotEmpty(t, body.Result.Rows)
}

// TestIndexRoute tests that the embedded dashboard page is served.
func TestIndexRoute(t *testing.T) {
	srv := testServer(t)

	res, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")
}
