package calculator

// gainLossSeries splits day-over-day close deltas into gain and loss
// series. Index 0 has no prior day, so both are 0 there. Losses are
// stored as positive magnitudes.
func gainLossSeries(closes []float64) (gains, losses []float64) {
	gains = make([]float64, len(closes))
	losses = make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}
	return gains, losses
}

// rsiAt computes the RSI at index i from the trailing `period` gain/loss
// values ending at i. This is the simple-average variant: average gain and
// loss are plain arithmetic means over the window, not Wilder's exponential
// smoothing. Defined only once i >= period, so the window holds `period`
// real deltas; ok is false before that.
func rsiAt(gains, losses []float64, i, period int) (float64, bool) {
	if period <= 0 || i < period {
		return 0, false
	}
	var avgGain, avgLoss float64
	for j := i - period + 1; j <= i; j++ {
		avgGain += gains[j]
		avgLoss += losses[j]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100, true
	}
	if avgGain == 0 {
		return 0, true
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), true
}
