package calculator

import (
	"math"

	"NiftyPulse/internal/model"
)

// TrailingRange scans the most recent `window` candles and returns the
// highest high and lowest low, the reference levels used as resistance and
// support zones. When fewer candles exist the whole sequence is scanned.
// ok is false only for an empty input.
func TrailingRange(candles []model.Candle, window int) (high, low float64, ok bool) {
	if len(candles) == 0 {
		return 0, 0, false
	}
	start := len(candles) - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < len(candles); i++ {
		if candles[i].High > high {
			high = candles[i].High
		}
		if candles[i].Low < low {
			low = candles[i].Low
		}
	}
	return high, low, true
}
