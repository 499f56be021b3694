// Package money renders amounts for display and for payment links.
//
// The rupee glyph, the INR currency code and comma thousands grouping are
// fixed policy; payment apps and printed invoices both depend on them.
package money

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	// Symbol prefixes every formatted amount.
	Symbol = "₹"
	// CurrencyCode is the ISO 4217 code carried in payment links.
	CurrencyCode = "INR"
)

// exponentThreshold is the magnitude from which two-decimal rendering
// falls back to exponent notation.
const exponentThreshold = 1e21

// Fixed2 renders amount with exactly two fractional digits.
// Rounding works on the exact binary value of the float with ties away
// from zero, so 1.005 (stored as 1.00499...) renders as "1.00".
func Fixed2(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "NaN"
	case math.IsInf(amount, 1):
		return "Infinity"
	case math.IsInf(amount, -1):
		return "-Infinity"
	case math.Abs(amount) >= exponentThreshold:
		return strconv.FormatFloat(amount, 'g', -1, 64)
	}

	exact, err := decimal.NewFromString(strconv.FormatFloat(amount, 'f', 40, 64))
	if err != nil {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return exact.StringFixed(2)
}

// FormatCurrency renders amount as "₹1,234.50". NaN renders as "₹0.00".
// The amount is expected to be rounded to cents already.
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) {
		return Symbol + "0.00"
	}
	return Symbol + group(Fixed2(amount))
}

// group inserts thousands separators into the integer part of a fixed
// decimal string. Anything that is not a plain decimal is returned as is.
func group(fixed string) string {
	intPart, frac, hasFrac := strings.Cut(fixed, ".")
	n, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return fixed
	}

	grouped := humanize.BigComma(n)
	if n.Sign() == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	if !hasFrac {
		return grouped
	}
	return grouped + "." + frac
}
