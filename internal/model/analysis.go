package model

// Bias is the coarse trend classification derived from price vs. moving averages.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
)

// Confidence is the qualitative certainty label attached to an analysis.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// AnalysisRecord is the single summary produced from a full candle history.
// It is a pure function of the input sequence: same candles in, identical
// record out. Pointer fields are nil when the underlying value is undefined
// (too little history, or a zero previous close).
type AnalysisRecord struct {
	LastClose        float64    `json:"lastClose"`
	PreviousClose    *float64   `json:"previousClose,omitempty"`
	DailyChangePct   *float64   `json:"dailyChangePct,omitempty"`
	Bias             Bias       `json:"bias"`
	MomentumPct5Day  *float64   `json:"momentumPct5Day,omitempty"`
	RSI14            *float64   `json:"rsi14,omitempty"`
	SMA20            *float64   `json:"sma20,omitempty"`
	SMA50            *float64   `json:"sma50,omitempty"`
	SupportZone      *float64   `json:"supportZone,omitempty"`
	ResistanceZone   *float64   `json:"resistanceZone,omitempty"`
	NextMoveHeadline string     `json:"nextMoveHeadline"`
	Narrative        string     `json:"narrative"`
	Confidence       Confidence `json:"confidence"`
}
