package calculator

import (
	"math"
)

// SplitResult is the decomposition of one invoice total.
// Base + Tax always equals Total to the cent. Advance is taken off the
// total independently and does not reconcile against Base or Tax.
type SplitResult struct {
	Base    float64
	Tax     float64
	Advance float64
	Total   float64
}

// RoundCents rounds x to 2 decimal places by scaling to cents, rounding
// half away from zero and scaling back. Values that do not survive the
// scaling (NaN, infinities, magnitudes beyond MaxFloat64/100) round to 0.
func RoundCents(x float64) float64 {
	r := math.Round(x*100) / 100
	if !finite(r) {
		return 0
	}
	return r
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// BaseAmount backs the pre-tax base out of a tax-inclusive total.
// Formula: base = total / (1 + taxRate/100)
func BaseAmount(total, taxRate float64) float64 {
	if !finite(total, taxRate) || total <= 0 {
		return 0
	}
	return RoundCents(total / (1 + taxRate/100))
}

// TaxAmount is the residual total - base, so that base + tax reconciles
// with the total exactly.
func TaxAmount(total, base float64) float64 {
	if !finite(total, base) {
		return 0
	}
	return RoundCents(total - base)
}

// AdvanceAmount computes the advance payment as a percentage of the total.
func AdvanceAmount(total, advancePercent float64) float64 {
	if !finite(total, advancePercent) {
		return 0
	}
	if total <= 0 || advancePercent < 0 {
		return 0
	}
	return RoundCents(total * (advancePercent / 100))
}

// Split computes base, tax and advance for a total.
// Non-finite or non-positive totals yield an all-zero result.
func Split(total, taxRate, advancePercent float64) SplitResult {
	if !finite(total) || total <= 0 {
		return SplitResult{}
	}

	base := BaseAmount(total, taxRate)
	return SplitResult{
		Base:    base,
		Tax:     TaxAmount(total, base),
		Advance: AdvanceAmount(total, advancePercent),
		Total:   RoundCents(total),
	}
}
