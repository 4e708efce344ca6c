package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NiftyPulse/internal/model"
)

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "candles.db"))
	require.NoError(t, err)
	defer s.Close()

	vol := int64(123456)
	candles := []model.Candle{
		{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Open: 100, High: 102, Low: 99, Close: 101, Volume: &vol},
		{Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), Open: 101, High: 103, Low: 100, Close: 102},
		{Date: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), Open: 102, High: 104, Low: 101, Close: 103},
	}
	require.NoError(t, s.SaveCandles("NIFTY50", candles))

	loaded, err := s.LoadCandles("NIFTY50", 10)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, candles, loaded)

	// Volume absence survives the round trip.
	assert.Nil(t, loaded[1].Volume)
	require.NotNil(t, loaded[0].Volume)
	assert.Equal(t, vol, *loaded[0].Volume)
}

func TestSQLiteStore_LimitAndUpsert(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "candles.db"))
	require.NoError(t, err)
	defer s.Close()

	base := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	var candles []model.Candle
	for i := 0; i < 5; i++ {
		candles = append(candles, model.Candle{
			Date: base.AddDate(0, 0, i), Open: 100, High: 101, Low: 99, Close: 100 + float64(i),
		})
	}
	require.NoError(t, s.SaveCandles("NIFTY50", candles))

	// Limit keeps only the most recent rows, still ascending.
	loaded, err := s.LoadCandles("NIFTY50", 2)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 103.0, loaded[0].Close)
	assert.Equal(t, 104.0, loaded[1].Close)

	// Re-saving the same day replaces, not duplicates.
	candles[4].Close = 200
	require.NoError(t, s.SaveCandles("NIFTY50", candles))
	loaded, err = s.LoadCandles("NIFTY50", 10)
	require.NoError(t, err)
	require.Len(t, loaded, 5)
	assert.Equal(t, 200.0, loaded[4].Close)

	// Unknown symbol yields nothing.
	loaded, err = s.LoadCandles("BANKNIFTY", 10)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
