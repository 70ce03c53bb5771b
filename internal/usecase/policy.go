package usecase

import "github.com/shopspring/decimal"

var (
	rateFloorMid = decimal.NewFromInt(12)
	rateFloorLow = decimal.NewFromInt(16)
)

// EvaluatePolicy applies the tiered approval rules: high scores take the
// requested rate as-is, mid bands raise the rate to the band floor, and
// scores of 10 or below are rejected outright. The returned rate equals
// the requested one unless a floor was applied.
func EvaluatePolicy(score int, requestedRate decimal.Decimal) (bool, decimal.Decimal) {
	switch {
	case score > 50:
		return true, requestedRate
	case score > 30:
		return true, decimal.Max(requestedRate, rateFloorMid)
	case score > 10:
		return true, decimal.Max(requestedRate, rateFloorLow)
	default:
		return false, requestedRate
	}
}
