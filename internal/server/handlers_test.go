package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NiftyPulse/internal/collector"
	"NiftyPulse/internal/model"
	"NiftyPulse/internal/store"
)

func testMux(t *testing.T, candles []model.Candle) *http.ServeMux {
	t.Helper()
	fetcher := &collector.MockFetcher{Candles: candles}
	col := collector.NewCollector(fetcher, store.NewNoopStore(), "NIFTY50", len(candles), time.Minute)
	mux := http.NewServeMux()
	registerHandlers(mux, col, 5*time.Minute)
	return mux
}

func testCandles(n int) []model.Candle {
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]model.Candle, n)
	for i := range candles {
		c := 24000 + float64(i)*10
		candles[i] = model.Candle{
			Date: base.AddDate(0, 0, i), Open: c, High: c + 50, Low: c - 50, Close: c,
		}
	}
	return candles
}

func TestHandleHealth(t *testing.T) {
	mux := testMux(t, testCandles(5))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleCandles(t *testing.T) {
	mux := testMux(t, testCandles(30))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/api/candles?limit=10", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "public, max-age=300", rr.Header().Get("Cache-Control"))

	var candles []model.Candle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &candles))
	require.Len(t, candles, 10)
	// The tail of the series, still ascending.
	assert.Equal(t, 24200.0, candles[0].Close)
	assert.Equal(t, 24290.0, candles[9].Close)
}

func TestHandleIndicators(t *testing.T) {
	mux := testMux(t, testCandles(60))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/api/indicators", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var points []model.IndicatorPoint
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &points))
	require.Len(t, points, 60)
	assert.Nil(t, points[0].SMA10)
	assert.NotNil(t, points[59].SMA50)
	assert.NotNil(t, points[59].RSI14)
}

func TestHandleAnalysis(t *testing.T) {
	mux := testMux(t, testCandles(60))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest("GET", "/api/analysis", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var rec model.AnalysisRecord
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rec))
	assert.Equal(t, 24590.0, rec.LastClose)
	assert.Equal(t, model.BiasBullish, rec.Bias)
	assert.NotEmpty(t, rec.NextMoveHeadline)
	assert.NotEmpty(t, rec.Narrative)
}
