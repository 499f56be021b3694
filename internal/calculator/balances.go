package calculator

// PaymentStage is one installment of an invoice: what is requested now and
// what is still outstanding afterwards.
type PaymentStage struct {
	Paid        float64 // Collected by this stage
	Outstanding float64 // Remaining on the invoice after this stage
}

// BalanceAfterAdvance returns what remains due once the advance is paid.
// The result never goes below zero, and non-finite input yields zero.
func BalanceAfterAdvance(total, advance float64) float64 {
	if !finite(total, advance) || total <= 0 {
		return 0
	}
	remaining := RoundCents(total - advance)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Schedule describes the two-stage collection of a split invoice:
// the advance up front, then the remainder on completion.
//
// Both stages together always collect the rounded total.
func Schedule(split SplitResult) []PaymentStage {
	if split.Total <= 0 {
		return nil
	}

	advance := split.Advance
	if advance > split.Total {
		advance = split.Total
	}
	remainder := BalanceAfterAdvance(split.Total, advance)

	var stages []PaymentStage
	if advance > 0 {
		stages = append(stages, PaymentStage{Paid: advance, Outstanding: remainder})
	}
	if remainder > 0 {
		stages = append(stages, PaymentStage{Paid: remainder, Outstanding: 0})
	}
	return stages
}
