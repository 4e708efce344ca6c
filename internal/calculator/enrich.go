package calculator

import "NiftyPulse/internal/model"

const (
	smaShortPeriod  = 10
	smaMediumPeriod = 20
	smaLongPeriod   = 50
	rsiPeriod       = 14
)

// AddIndicators enriches an ordered candle sequence with rolling
// SMA(10/20/50) and RSI(14) values. The result has the same length and
// order as the input, one point per candle. Each point depends only on
// itself and earlier candles; the input is never mutated. An empty input
// yields an empty output, never an error.
func AddIndicators(candles []model.Candle) []model.IndicatorPoint {
	points := make([]model.IndicatorPoint, len(candles))
	closes := extractCloses(candles)
	gains, losses := gainLossSeries(closes)

	for i := range candles {
		p := model.IndicatorPoint{Candle: candles[i]}
		if v, ok := smaAt(closes, i, smaShortPeriod); ok {
			p.SMA10 = fptr(Round2(v))
		}
		if v, ok := smaAt(closes, i, smaMediumPeriod); ok {
			p.SMA20 = fptr(Round2(v))
		}
		if v, ok := smaAt(closes, i, smaLongPeriod); ok {
			p.SMA50 = fptr(Round2(v))
		}
		if v, ok := rsiAt(gains, losses, i, rsiPeriod); ok {
			p.RSI14 = fptr(Round2(v))
		}
		points[i] = p
	}
	return points
}

func fptr(v float64) *float64 { return &v }
