package valuation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enginepkg "sme_valuation/pkg/core/valuation"
)

func calculateBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	payload := map[string]interface{}{
		"sector":               "technology",
		"company_size":         "small",
		"age_years":            3,
		"annual_revenues":      []float64{800000, 1200000, 1800000},
		"ebitda":               180000,
		"total_assets":         500000,
		"total_liabilities":    150000,
		"expected_growth_rate": 40,
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandleCalculate(t *testing.T) {
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/valuation/calculate", calculateBody(t))
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res enginepkg.ValuationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Greater(t, res.EnterpriseValue, 0.0)
	assert.Equal(t, 79, res.InvestmentScore.Score)
	assert.InDelta(t, 0.1488, res.WACC, 1e-9)
}

func TestHandleCalculateBadJSON(t *testing.T) {
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/valuation/calculate", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCalculateMethodNotAllowed(t *testing.T) {
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/valuation/calculate", nil)
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleCalculatePreflight(t *testing.T) {
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/valuation/calculate", nil)
	rec := httptest.NewRecorder()
	HandleCalculate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Api-Key")
}

func TestHandleReport(t *testing.T) {
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/valuation/report", calculateBody(t))
	rec := httptest.NewRecorder()
	HandleReport(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res["markdown"], "# Valuation Report")
	assert.Contains(t, res["html"], "<h1>")
}

func TestHandleSummaryUnconfigured(t *testing.T) {
	// Without an agent manager the summary endpoint reports unavailable
	// instead of panicking.
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/valuation/summary", calculateBody(t))
	rec := httptest.NewRecorder()
	HandleSummary(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleHistoryGetMissingID(t *testing.T) {
	InitHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/valuation/history/get", nil)
	rec := httptest.NewRecorder()
	HandleHistoryGet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSaveWithoutDatabase(t *testing.T) {
	// The database is optional at startup; saving without one fails with a
	// server error rather than a panic.
	InitHandler(nil)

	body, err := json.Marshal(map[string]interface{}{
		"label":   "test run",
		"profile": map[string]interface{}{"sector": "retail", "ebitda": 1000},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/valuation/save", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()
	HandleSave(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
