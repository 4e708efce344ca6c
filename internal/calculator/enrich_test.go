package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NiftyPulse/internal/model"
)

func seriesFromCloses(closes ...float64) []model.Candle {
	base := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	candles := make([]model.Candle, len(closes))
	for i, c := range closes {
		candles[i] = model.Candle{
			Date:  base.AddDate(0, 0, i),
			Open:  c,
			High:  c + 0.5,
			Low:   c - 0.5,
			Close: c,
		}
	}
	return candles
}

func TestAddIndicators_EmptyInput(t *testing.T) {
	points := AddIndicators(nil)
	assert.Empty(t, points)
}

func TestAddIndicators_LengthAndOrder(t *testing.T) {
	candles := seriesFromCloses(10, 11, 12, 13, 14)
	points := AddIndicators(candles)

	require.Len(t, points, len(candles))
	for i := range candles {
		assert.Equal(t, candles[i].Date, points[i].Date)
		assert.Equal(t, candles[i].Close, points[i].Close)
	}
}

func TestAddIndicators_DoesNotMutateInput(t *testing.T) {
	candles := seriesFromCloses(10, 11, 12)
	before := make([]model.Candle, len(candles))
	copy(before, candles)

	AddIndicators(candles)
	assert.Equal(t, before, candles)
}

func TestAddIndicators_SMAPresence(t *testing.T) {
	candles := seriesFromCloses(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	points := AddIndicators(candles)

	for i := 0; i < 9; i++ {
		assert.Nilf(t, points[i].SMA10, "sma10 must be absent at index %d", i)
	}
	require.NotNil(t, points[9].SMA10)
	assert.Equal(t, 5.5, *points[9].SMA10)
	assert.Nil(t, points[9].SMA20)
	assert.Nil(t, points[9].SMA50)
}

func TestAddIndicators_SMAWindows(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	points := AddIndicators(seriesFromCloses(closes...))

	assert.Nil(t, points[18].SMA20)
	require.NotNil(t, points[19].SMA20)
	assert.Equal(t, 109.5, *points[19].SMA20)

	assert.Nil(t, points[48].SMA50)
	require.NotNil(t, points[49].SMA50)
	assert.Equal(t, 124.5, *points[49].SMA50)

	require.NotNil(t, points[59].SMA20)
	assert.Equal(t, 149.5, *points[59].SMA20)
	require.NotNil(t, points[59].SMA50)
	assert.Equal(t, 134.5, *points[59].SMA50)
}

func TestAddIndicators_RSIPresence(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	points := AddIndicators(seriesFromCloses(closes...))

	for i := 0; i < 14; i++ {
		assert.Nilf(t, points[i].RSI14, "rsi14 must be absent at index %d", i)
	}
	require.NotNil(t, points[14].RSI14)
}

func TestAddIndicators_RSIExtremes(t *testing.T) {
	rising := make([]float64, 20)
	falling := make([]float64, 20)
	for i := range rising {
		rising[i] = 100 + float64(i)
		falling[i] = 200 - float64(i)
	}

	up := AddIndicators(seriesFromCloses(rising...))
	require.NotNil(t, up[19].RSI14)
	assert.Equal(t, 100.0, *up[19].RSI14, "all gains, no losses")

	down := AddIndicators(seriesFromCloses(falling...))
	require.NotNil(t, down[19].RSI14)
	assert.Equal(t, 0.0, *down[19].RSI14, "all losses, no gains")
}

func TestAddIndicators_RSIMixedSeries(t *testing.T) {
	// Alternating +2/-1 deltas: trailing 14 deltas hold 7 gains of 2 and
	// 7 losses of 1, so avgGain=1, avgLoss=0.5, RS=2, RSI=66.67.
	closes := []float64{100, 102, 101, 103, 102, 104, 103, 105, 104, 106, 105, 107, 106, 108, 107}
	points := AddIndicators(seriesFromCloses(closes...))

	require.NotNil(t, points[14].RSI14)
	assert.Equal(t, 66.67, *points[14].RSI14)
}

func TestTrailingRange(t *testing.T) {
	candles := seriesFromCloses(10, 20, 30, 5, 15)

	high, low, ok := TrailingRange(candles, 15)
	require.True(t, ok)
	assert.Equal(t, 30.5, high)
	assert.Equal(t, 4.5, low)

	// Window shorter than the series only scans the tail.
	high, low, ok = TrailingRange(candles, 2)
	require.True(t, ok)
	assert.Equal(t, 15.5, high)
	assert.Equal(t, 4.5, low)

	_, _, ok = TrailingRange(nil, 15)
	assert.False(t, ok)
}
