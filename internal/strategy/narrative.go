package strategy

import (
	"fmt"

	"NiftyPulse/internal/model"
)

// Fallback phrases substituted when a level is undefined.
const (
	fallbackSMA20      = "the 20-day SMA"
	fallbackSupport    = "recent support"
	fallbackResistance = "recent resistance"
)

// buildNarrative selects the headline and prose for a record. The rule
// table is dispatched in order: bias first, then RSI extremity refines the
// bullish and bearish branches. It is the single place narrative text is
// assembled.
//
//	neutral             -> "Sideways consolidation likely"
//	bullish, RSI > 68   -> "Uptrend extended but stretched"
//	bullish             -> "Upside continuation favoured"
//	bearish, RSI < 32   -> "Downtrend oversold"
//	bearish             -> "Downside pressure building"
func buildNarrative(rec *model.AnalysisRecord) (headline, narrative string) {
	momentum := 0.0
	if rec.MomentumPct5Day != nil {
		momentum = *rec.MomentumPct5Day
	}
	sma20 := levelOr(rec.SMA20, fallbackSMA20)
	support := levelOr(rec.SupportZone, fallbackSupport)
	resistance := levelOr(rec.ResistanceZone, fallbackResistance)

	switch {
	case rec.Bias == model.BiasBullish && rec.RSI14 != nil && *rec.RSI14 > rsiOverbought:
		return "Uptrend extended but stretched",
			fmt.Sprintf("Momentum stays positive but RSI at %.2f shows the advance is overheated. A cooling-off dip towards %s would be healthy; buyers should re-emerge near %s.",
				*rec.RSI14, sma20, support)

	case rec.Bias == model.BiasBullish:
		return "Upside continuation favoured",
			fmt.Sprintf("Price holds above its short-term averages with 5-day momentum at %+.2f%%. A close above %s opens the next leg higher, while %s marks the risk level below.",
				momentum, resistance, support)

	case rec.Bias == model.BiasBearish && rec.RSI14 != nil && *rec.RSI14 < rsiOversold:
		return "Downtrend oversold",
			fmt.Sprintf("The sell-off looks stretched with RSI at %.2f. A relief bounce is possible as long as %s holds; a break below it would extend the decline.",
				*rec.RSI14, support)

	case rec.Bias == model.BiasBearish:
		return "Downside pressure building",
			fmt.Sprintf("Sellers stay in control with 5-day momentum at %+.2f%%. A slip below %s risks a deeper slide; bulls need a close back above %s to steady the trend.",
				momentum, support, sma20)

	default:
		return "Sideways consolidation likely",
			fmt.Sprintf("The index is range-bound with its moving averages converging. Expect consolidation between %s and %s; 5-day momentum is muted at %+.2f%%.",
				support, resistance, momentum)
	}
}

func levelOr(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprintf("%.2f", *v)
}
