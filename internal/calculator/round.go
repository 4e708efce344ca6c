package calculator

import "math"

// Round2 rounds v to 2 decimal places: multiply by 100, round half away
// from zero, divide by 100. Every price, average and percentage in the
// pipeline goes through this single function so that float edge cases
// behave identically everywhere (e.g. Round2(2.345) = 2.35 because
// 2.345*100 lands slightly above 234.5, while Round2(1.005) = 1.00).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
