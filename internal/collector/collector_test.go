package collector

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NiftyPulse/internal/model"
	"NiftyPulse/internal/store"
)

func fixedCandles(n int) []model.Candle {
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

func TestCollector_CachesWithinTTL(t *testing.T) {
	fetcher := &MockFetcher{Candles: fixedCandles(30)}
	col := NewCollector(fetcher, store.NewNoopStore(), "NIFTY50", 30, time.Minute)

	first, err := col.Candles()
	require.NoError(t, err)
	second, err := col.Candles()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetcher.Calls, "second call must be served from cache")
}

func TestCollector_StoreFallback(t *testing.T) {
	candles := fixedCandles(20)
	st, err := store.NewSQLiteStore(t.TempDir() + "/candles.db")
	require.NoError(t, err)
	defer st.Close()
	require.NoError(t, st.SaveCandles("NIFTY50", candles))

	fetcher := &MockFetcher{Err: errors.New("upstream down")}
	col := NewCollector(fetcher, st, "NIFTY50", 30, time.Minute)

	got, err := col.Candles()
	require.NoError(t, err)
	assert.Equal(t, candles, got)
}

func TestCollector_FetchErrorWithEmptyStore(t *testing.T) {
	fetcher := &MockFetcher{Err: errors.New("upstream down")}
	col := NewCollector(fetcher, store.NewNoopStore(), "NIFTY50", 30, time.Minute)

	_, err := col.Candles()
	assert.Error(t, err)
}

func TestCollector_Snapshot(t *testing.T) {
	candles := fixedCandles(60)
	fetcher := &MockFetcher{Candles: candles}
	col := NewCollector(fetcher, store.NewNoopStore(), "NIFTY50", 60, time.Minute)

	points, record, err := col.Snapshot()
	require.NoError(t, err)
	require.Len(t, points, 60)
	require.NotNil(t, record)
	assert.Equal(t, candles[59].Close, record.LastClose)
	assert.NotEmpty(t, record.NextMoveHeadline)
	assert.NotEmpty(t, record.Narrative)
}
