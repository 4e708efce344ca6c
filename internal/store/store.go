package store

import "NiftyPulse/internal/model"

// Store persists raw daily candles so a restart (or an upstream outage)
// does not force a refetch. Only candles are persisted; analysis records
// are recomputed from scratch on every request.
type Store interface {
	SaveCandles(symbol string, candles []model.Candle) error
	LoadCandles(symbol string, limit int) ([]model.Candle, error)
	Close() error
}

// NoopStore is used when no SQLite path is configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) SaveCandles(_ string, _ []model.Candle) error { return nil }
func (n *NoopStore) LoadCandles(_ string, _ int) ([]model.Candle, error) {
	return nil, nil
}
func (n *NoopStore) Close() error { return nil }
