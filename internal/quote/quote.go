// Package quote composes validation, calculation and link encoding into a
// single snapshot for display.
//
// A Quote is a value: every call to Compute builds a fresh one from the
// given input, and the Engine keeps no record of earlier quotes.
package quote

import (
	"github.com/mmynk/invoicesplit/internal/calculator"
	"github.com/mmynk/invoicesplit/internal/money"
	"github.com/mmynk/invoicesplit/internal/upi"
	"github.com/mmynk/invoicesplit/internal/validation"
)

// Quote is the full result for one input snapshot.
type Quote struct {
	Validation validation.Report
	Split      calculator.SplitResult

	// Balance is what remains due after the advance is collected.
	Balance float64

	// Links holds one payment link per component with a positive amount.
	Links map[upi.Category]string

	// Ready is true when every field validated and amounts were computed.
	Ready bool
}

// Engine computes quotes.
type Engine struct {
	Validator         validation.Validator
	DescriptionPrefix string
}

// NewEngine returns an Engine with the lenient validator and the default
// note prefix.
func NewEngine() *Engine {
	return &Engine{
		Validator:         validation.Default,
		DescriptionPrefix: upi.DefaultDescriptionPrefix,
	}
}

// Compute validates in and, if every field is valid, splits the total and
// encodes the payment links. Otherwise every amount is zero and no links
// are produced.
// Unlike Report.Gate, the percentage fields must validate too.
func (e *Engine) Compute(in validation.Input) Quote {
	q := Quote{
		Validation: e.Validator.Validate(in),
		Links:      make(map[upi.Category]string, len(upi.Categories)),
	}
	if !q.Validation.AllValid() {
		return q
	}

	total := e.Validator.Number(in.Total)
	taxRate := e.Validator.Number(in.TaxRate)
	advancePercent := e.Validator.Number(in.AdvancePercent)

	q.Split = calculator.Split(total, taxRate, advancePercent)
	q.Balance = calculator.BalanceAfterAdvance(q.Split.Total, q.Split.Advance)
	q.Ready = true

	payee := validation.TrimmedUpiID(in.UpiID)
	for _, c := range upi.Categories {
		amount := q.Amount(c)
		if amount <= 0 {
			continue
		}
		if link := upi.EncodePaymentLink(payee, amount, c.Description(e.DescriptionPrefix)); link != "" {
			q.Links[c] = link
		}
	}
	return q
}

// Amount returns the split amount collected by a link category.
func (q Quote) Amount(c upi.Category) float64 {
	switch c {
	case upi.Base:
		return q.Split.Base
	case upi.Tax:
		return q.Split.Tax
	case upi.Advance:
		return q.Split.Advance
	default:
		return 0
	}
}

// Formatted returns the display strings for every amount, keyed by
// "base", "tax", "advance", "total" and "balance".
func (q Quote) Formatted() map[string]string {
	return map[string]string{
		upi.Base.String():    money.FormatCurrency(q.Split.Base),
		upi.Tax.String():     money.FormatCurrency(q.Split.Tax),
		upi.Advance.String(): money.FormatCurrency(q.Split.Advance),
		"total":              money.FormatCurrency(q.Split.Total),
		"balance":            money.FormatCurrency(q.Balance),
	}
}
