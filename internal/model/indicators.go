package model

// IndicatorPoint is a Candle enriched with rolling indicator values.
// A nil field means the indicator is undefined at that point (not enough
// trailing history yet); values are never coerced to 0 or NaN.
type IndicatorPoint struct {
	Candle
	SMA10 *float64 `json:"sma10,omitempty"`
	SMA20 *float64 `json:"sma20,omitempty"`
	SMA50 *float64 `json:"sma50,omitempty"`
	RSI14 *float64 `json:"rsi14,omitempty"`
}
