package collector

import "NiftyPulse/internal/model"

// Fetcher retrieves daily candles for a symbol from an upstream market
// data provider. Implementations must filter out incomplete bars and
// return candles sorted by ascending date.
type Fetcher interface {
	FetchDailyCandles(symbol string, days int) ([]model.Candle, error)
	Name() string
}
