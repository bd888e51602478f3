package domain

import "math"

// LateFeeStrategy computes the penalty charged on top of the late-usage
// charge itself. It is an injected policy: billing never hardcodes the
// penalty rule, so waived-fee scenarios swap the strategy rather than
// branch inside the calculation.
type LateFeeStrategy interface {
	Compute(lateChargeCents int64, percent float64) int64
}

const (
	LateFeeStandard = "STANDARD"
	LateFeeExempt   = "EXEMPT"
)

// StandardLateFee charges a percentage of the late charge, clamped to zero
// when either input is non-positive.
type StandardLateFee struct{}

func (StandardLateFee) Compute(lateChargeCents int64, percent float64) int64 {
	if lateChargeCents <= 0 || percent <= 0 {
		return 0
	}
	return int64(math.Round(float64(lateChargeCents) * percent))
}

// ExemptLateFee waives the penalty entirely (VIP customers, promotional
// campaigns).
type ExemptLateFee struct{}

func (ExemptLateFee) Compute(int64, float64) int64 { return 0 }

// LateFeeStrategyFor resolves the strategy name persisted on a rental.
// Unknown names fall back to the standard policy.
func LateFeeStrategyFor(name string) LateFeeStrategy {
	if name == LateFeeExempt {
		return ExemptLateFee{}
	}
	return StandardLateFee{}
}
