package strategy

import (
	"errors"
	"math"

	"NiftyPulse/internal/calculator"
	"NiftyPulse/internal/model"
)

// ErrNoData is returned when the summarizer is given an empty candle
// sequence. It is the only validated precondition; every other path is a
// total function over well-formed input.
var ErrNoData = errors.New("no candle data to analyse")

const (
	momentumLookback = 5
	rangeWindow      = 15

	rsiOverbought = 68
	rsiOversold   = 32

	// Confidence thresholds: relative distance of price from the 20-day
	// SMA, and relative gap between the 20- and 50-day SMAs.
	smaDistanceIndecisive = 0.005
	smaGapConverging      = 0.003
	smaDistanceStretched  = 0.02
)

// AnalyzeNifty derives the summary analysis record from a time-ordered
// daily candle history. The record is a pure function of the input: no
// hidden state, identical output on every call with the same candles.
func AnalyzeNifty(candles []model.Candle) (*model.AnalysisRecord, error) {
	if len(candles) == 0 {
		return nil, ErrNoData
	}

	points := calculator.AddIndicators(candles)
	last := points[len(points)-1]

	rec := &model.AnalysisRecord{
		LastClose: calculator.Round2(last.Close),
		RSI14:     last.RSI14,
		SMA20:     last.SMA20,
		SMA50:     last.SMA50,
	}

	if len(points) >= 2 {
		prev := points[len(points)-2]
		rec.PreviousClose = fptr(calculator.Round2(prev.Close))
		if prev.Close != 0 {
			rec.DailyChangePct = fptr(calculator.Round2((last.Close - prev.Close) / prev.Close * 100))
		}
	}

	// Momentum vs. the close 5 trading days back; short histories fall
	// back to the very first candle.
	ref := candles[0]
	if len(candles) > momentumLookback {
		ref = candles[len(candles)-momentumLookback-1]
	}
	rec.MomentumPct5Day = fptr(calculator.Round2((last.Close - ref.Close) / ref.Close * 100))

	if high, low, ok := calculator.TrailingRange(candles, rangeWindow); ok {
		rec.SupportZone = fptr(calculator.Round2(low))
		rec.ResistanceZone = fptr(calculator.Round2(high))
	}

	rec.Bias = classifyBias(rec.LastClose, rec.SMA20, rec.SMA50)
	rec.Confidence = classifyConfidence(rec.LastClose, rec.RSI14, rec.SMA20, rec.SMA50)
	rec.NextMoveHeadline, rec.Narrative = buildNarrative(rec)

	return rec, nil
}

// classifyBias maps price vs. moving-average alignment to a trend bias.
// An SMA of exactly 0 counts as missing and keeps the bias neutral.
func classifyBias(lastClose float64, sma20, sma50 *float64) model.Bias {
	if sma20 == nil || sma50 == nil || *sma20 == 0 || *sma50 == 0 {
		return model.BiasNeutral
	}
	switch {
	case lastClose > *sma20 && *sma20 > *sma50:
		return model.BiasBullish
	case lastClose < *sma20 && *sma20 < *sma50:
		return model.BiasBearish
	}
	return model.BiasNeutral
}

// classifyConfidence grades the signal strength. Only evaluated once RSI
// and both SMAs exist; otherwise stays medium. The indecisive case is
// checked first and wins when both conditions hold.
func classifyConfidence(lastClose float64, rsi, sma20, sma50 *float64) model.Confidence {
	if rsi == nil || sma20 == nil || sma50 == nil {
		return model.ConfidenceMedium
	}
	distFromSMA := math.Abs(lastClose-*sma20) / *sma20
	smaGap := math.Abs(*sma20-*sma50) / *sma50

	if distFromSMA < smaDistanceIndecisive && smaGap < smaGapConverging {
		return model.ConfidenceLow
	}
	if distFromSMA > smaDistanceStretched || *rsi > rsiOverbought || *rsi < rsiOversold {
		return model.ConfidenceHigh
	}
	return model.ConfidenceMedium
}

func fptr(v float64) *float64 { return &v }
