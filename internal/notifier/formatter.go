package notifier

import (
	"fmt"
	"strings"
	"time"

	"NiftyPulse/internal/model"
)

// FormatDailyReport renders the analysis record as a Telegram message.
// Pure formatting: every number shown here was derived upstream.
func FormatDailyReport(symbol string, rec *model.AnalysisRecord) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s daily pulse</b> | %s\n\n", symbol, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Close: %.2f", rec.LastClose))
	if rec.DailyChangePct != nil {
		b.WriteString(fmt.Sprintf(" (%+.2f%%)", *rec.DailyChangePct))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Bias: %s | Confidence: %s\n", rec.Bias, rec.Confidence))
	if rec.RSI14 != nil {
		b.WriteString(fmt.Sprintf("RSI(14): %.2f\n", *rec.RSI14))
	}
	if rec.SMA20 != nil && rec.SMA50 != nil {
		b.WriteString(fmt.Sprintf("SMA20: %.2f | SMA50: %.2f\n", *rec.SMA20, *rec.SMA50))
	}
	if rec.MomentumPct5Day != nil {
		b.WriteString(fmt.Sprintf("5-day momentum: %+.2f%%\n", *rec.MomentumPct5Day))
	}

	b.WriteString("\n" + FormatLevels(rec) + "\n")

	b.WriteString(fmt.Sprintf("\n🧭 <b>%s</b>\n", rec.NextMoveHeadline))
	b.WriteString(rec.Narrative)
	b.WriteString("\n")

	return b.String()
}

// FormatLevels renders the support/resistance zones for the /levels command.
func FormatLevels(rec *model.AnalysisRecord) string {
	var b strings.Builder
	b.WriteString("📐 <b>Levels (trailing 15 sessions)</b>\n")
	if rec.SupportZone != nil {
		b.WriteString(fmt.Sprintf("Support: %.2f\n", *rec.SupportZone))
	}
	if rec.ResistanceZone != nil {
		b.WriteString(fmt.Sprintf("Resistance: %.2f", *rec.ResistanceZone))
	}
	return b.String()
}
