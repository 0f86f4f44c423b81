package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/calrisk/coverage-advisor/internal/adapter/http"
	"github.com/calrisk/coverage-advisor/internal/observability"
	"github.com/calrisk/coverage-advisor/internal/recent"
	"github.com/calrisk/coverage-advisor/internal/refdata"
)

func newTestServer(t *testing.T) *httpadapter.Server {
	t.Helper()
	recentStore, err := recent.New(filepath.Join(t.TempDir(), "recent.json"), 5)
	require.NoError(t, err)
	return httpadapter.NewServer(":0", refdata.Default(), recentStore, slog.Default(), observability.NewMetricsForTesting())
}

func do(t *testing.T, srv *httpadapter.Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeZip(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/zips/91604", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "91604", body["zip"])
	assert.Equal(t, "Studio City", body["area"])
	assert.Equal(t, "Los Angeles", body["county"])
	assert.InDelta(t, 1.188, body["effectiveRisk"], 1e-9)
}

func TestAnalyzeZipNotCovered(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/zips/00000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "00000")
}

func TestRecommendation(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/zips/91604/recommendation?vehicle_value=15000", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tier    string   `json:"tier"`
		Reasons []string `json:"reasons"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "standard", body.Tier)
	assert.Len(t, body.Reasons, 3)
}

func TestRecommendationInvalidVehicleValue(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/zips/91604/recommendation?vehicle_value=banana", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPremium(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/zips/91604/premium?tier=standard", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3326), body["annualPremium"])
}

func TestScenarios(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/zips/91604/scenarios?vehicle_value=32000", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Scenarios []struct {
			Title string `json:"title"`
			Total int    `json:"total"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Scenarios, 5)
	assert.Equal(t, "Fender Bender", body.Scenarios[0].Title)
	for _, s := range body.Scenarios {
		assert.Positive(t, s.Total, "scenario %q", s.Title)
	}
}

func TestQuote(t *testing.T) {
	srv := newTestServer(t)

	sel := `{"bodilyInjury":"50/100","propertyDamage":"50","medicalPayments":"10","uninsuredMotorist":"50/100","comprehensive":"500","collision":"1000","rentalCar":"50"}`
	rec := do(t, srv, http.MethodPost, "/api/zips/91604/quote", sel)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		QuoteID       string `json:"quoteId"`
		AnnualPremium int    `json:"annualPremium"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.QuoteID)
	assert.Equal(t, 2590, body.AnnualPremium) // round(2180 × 1.188)
}

func TestQuoteBadBody(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/zips/91604/quote", "{broken")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/search?q=916", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Results []struct {
			Zip string `json:"zip"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Results)
	assert.LessOrEqual(t, len(body.Results), 10)
	for _, r := range body.Results {
		assert.True(t, strings.HasPrefix(r.Zip, "916"))
	}
}

func TestSearchNoMatches(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/search?q=xyzzy", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"results":[]`)
}

func TestTiers(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/tiers", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Tiers []struct {
			Key string `json:"key"`
		} `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tiers, 5)
	assert.Equal(t, "minimum", body.Tiers[0].Key)
	assert.Equal(t, "premium", body.Tiers[4].Key)
}

func TestCoverageInfo(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/coverage-info", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Coverages []struct {
			Type string `json:"type"`
			Info struct {
				Name string `json:"name"`
			} `json:"info"`
			Options []struct {
				ID string `json:"id"`
			} `json:"options"`
		} `json:"coverages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Coverages, 7)
	assert.Equal(t, "bodilyInjury", body.Coverages[0].Type)
	assert.NotEmpty(t, body.Coverages[0].Options)
}

func TestRecentRecordsAnalyzedZips(t *testing.T) {
	srv := newTestServer(t)

	do(t, srv, http.MethodGet, "/api/zips/91604", "")
	do(t, srv, http.MethodGet, "/api/zips/90001", "")
	rec := do(t, srv, http.MethodGet, "/api/recent", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Recent []struct {
			Zip string `json:"zip"`
		} `json:"recent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Recent, 2)
	assert.Equal(t, "90001", body.Recent[0].Zip)
	assert.Equal(t, "91604", body.Recent[1].Zip)
}

func TestRecentWithoutStore(t *testing.T) {
	srv := httpadapter.NewServer(":0", refdata.Default(), nil, slog.Default(), observability.NewMetricsForTesting())

	rec := do(t, srv, http.MethodGet, "/api/recent", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"recent":[]`)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}
