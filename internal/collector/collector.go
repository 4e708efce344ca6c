package collector

import (
	"fmt"
	"log"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"NiftyPulse/internal/calculator"
	"NiftyPulse/internal/model"
	"NiftyPulse/internal/store"
	"NiftyPulse/internal/strategy"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Candles []model.Candle
	Err     error
	Calls   int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCandles(_ string, days int) ([]model.Candle, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Candles != nil {
		return m.Candles, nil
	}
	return GenerateMockCandles(25000, days), nil
}

// GenerateMockCandles produces a gently drifting synthetic series.
func GenerateMockCandles(basePrice float64, count int) []model.Candle {
	candles := make([]model.Candle, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		vol := int64(250000000)
		candles[i] = model.Candle{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: &vol,
		}
	}
	return candles
}

// Collector wraps a Fetcher with a short-lived result cache and a candle
// store fallback. Every consumer (HTTP handlers, scheduler, Telegram
// commands) goes through it, so upstream traffic stays within the cache
// freshness window.
type Collector struct {
	Fetcher Fetcher
	Store   store.Store
	Symbol  string
	Days    int

	cache *expirable.LRU[string, []model.Candle]
}

// NewCollector creates a Collector. ttl bounds how stale served candles
// may be before the upstream is asked again.
func NewCollector(fetcher Fetcher, st store.Store, symbol string, days int, ttl time.Duration) *Collector {
	return &Collector{
		Fetcher: fetcher,
		Store:   st,
		Symbol:  symbol,
		Days:    days,
		cache:   expirable.NewLRU[string, []model.Candle](4, nil, ttl),
	}
}

// Candles returns the current daily candle window, preferring the cache,
// then the upstream fetcher, then the persisted store as a last resort.
func (c *Collector) Candles() ([]model.Candle, error) {
	if candles, ok := c.cache.Get(c.Symbol); ok {
		return candles, nil
	}

	candles, err := c.Fetcher.FetchDailyCandles(c.Symbol, c.Days)
	if err != nil {
		log.Printf("[WARN] fetch %s from %s failed: %v, falling back to store", c.Symbol, c.Fetcher.Name(), err)
		stored, storeErr := c.Store.LoadCandles(c.Symbol, c.Days)
		if storeErr != nil || len(stored) == 0 {
			return nil, fmt.Errorf("fetch candles: %w", err)
		}
		return stored, nil
	}

	if err := c.Store.SaveCandles(c.Symbol, candles); err != nil {
		log.Printf("[ERROR] persist candles: %v", err)
	}
	c.cache.Add(c.Symbol, candles)
	return candles, nil
}

// Snapshot fetches candles and runs the full analysis pipeline: raw
// candles -> enriched indicator points -> summary record.
func (c *Collector) Snapshot() ([]model.IndicatorPoint, *model.AnalysisRecord, error) {
	candles, err := c.Candles()
	if err != nil {
		return nil, nil, err
	}
	points := calculator.AddIndicators(candles)
	record, err := strategy.AnalyzeNifty(candles)
	if err != nil {
		return nil, nil, err
	}
	return points, record, nil
}
