package model

import "time"

// Candle represents one trading day of the tracked index.
// Candles are immutable once produced; callers own the slice and the
// analysis code never mutates it.
type Candle struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume *int64    `json:"volume,omitempty"` // absent for index-level feeds
}
