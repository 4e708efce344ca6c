package calculator

import "NiftyPulse/internal/model"

// smaAt returns the simple moving average of closes over the trailing
// `period` values ending at index i. The average is defined only once the
// window is fully covered, i.e. i+1 >= period; ok is false before that.
func smaAt(closes []float64, i, period int) (float64, bool) {
	if period <= 0 || i+1 < period {
		return 0, false
	}
	sum := 0.0
	for j := i - period + 1; j <= i; j++ {
		sum += closes[j]
	}
	return sum / float64(period), true
}

func extractCloses(candles []model.Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}
	return closes
}
