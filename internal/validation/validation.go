// Package validation turns raw form values into checked inputs for the
// calculator.
//
// Every validator is total: raw values may be nil, strings, pointers to
// strings or numbers, and each call returns a Result rather than an error.
package validation

import (
	"math"
	"regexp"
	"strings"
)

// Bounds for the percentage fields, inclusive.
const (
	MaxTaxRate        = 28.0
	MaxAdvancePercent = 100.0
)

// Messages returned by the validators.
const (
	MsgTotalRequired       = "Total amount is required"
	MsgTotalNotPositive    = "Total amount must be greater than zero"
	MsgTotalTooLarge       = "Total amount is too large"
	MsgUpiIDRequired       = "UPI ID is required"
	MsgUpiIDFormat         = "Invalid UPI ID format. Use: username@bank"
	MsgTaxRateRange        = "Tax rate must be between 0% and 28%"
	MsgAdvancePercentRange = "Advance percentage must be between 0% and 100%"
)

var upiIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9._-]+$`)

// Result is the outcome of validating one field.
// Message is empty if and only if Valid is true.
type Result struct {
	Valid   bool   `json:"isValid"`
	Message string `json:"errorMessage"`
}

var valid = Result{Valid: true}

func invalid(msg string) Result {
	return Result{Message: msg}
}

// Validator validates raw field values. The zero value parses numbers
// leniently; set Strict to require whole-string decimals.
type Validator struct {
	Strict bool
}

// Default is the lenient validator used by the package-level functions.
var Default = Validator{}

// Number parses raw with the validator's parsing mode.
func (v Validator) Number(raw any) float64 {
	if v.Strict {
		return ParseDecimalStrict(raw)
	}
	return ParseDecimal(raw)
}

// TotalAmount checks that raw is present and parses to a positive number
// whose amount in cents is still finite.
func (v Validator) TotalAmount(raw any) Result {
	if isEmpty(raw) {
		return invalid(MsgTotalRequired)
	}
	n := v.Number(raw)
	if math.IsNaN(n) || n <= 0 {
		return invalid(MsgTotalNotPositive)
	}
	if math.IsInf(n*100, 0) {
		return invalid(MsgTotalTooLarge)
	}
	return valid
}

// UpiID checks that raw, once trimmed, has the form username@handle.
func (v Validator) UpiID(raw any) Result {
	s, isText := text(raw)
	s = strings.TrimFunc(s, isSpace)
	if !isText || s == "" {
		return invalid(MsgUpiIDRequired)
	}
	if !upiIDPattern.MatchString(s) {
		return invalid(MsgUpiIDFormat)
	}
	return valid
}

// TaxRate checks that raw parses to a rate within [0, 28].
func (v Validator) TaxRate(raw any) Result {
	n := v.Number(raw)
	if math.IsNaN(n) || n < 0 || n > MaxTaxRate {
		return invalid(MsgTaxRateRange)
	}
	return valid
}

// AdvancePercent checks that raw parses to a percentage within [0, 100].
func (v Validator) AdvancePercent(raw any) Result {
	n := v.Number(raw)
	if math.IsNaN(n) || n < 0 || n > MaxAdvancePercent {
		return invalid(MsgAdvancePercentRange)
	}
	return valid
}

// FormValid is the gate in front of the calculator: total and UPI ID must
// both validate. The percentage fields come from bounded sliders and are
// not checked here.
func (v Validator) FormValid(total, upiID any) bool {
	return v.TotalAmount(total).Valid && v.UpiID(upiID).Valid
}

// ValidateTotalAmount validates a total with the lenient parser.
func ValidateTotalAmount(raw any) Result { return Default.TotalAmount(raw) }

// ValidateUpiID validates a payee UPI ID.
func ValidateUpiID(raw any) Result { return Default.UpiID(raw) }

// ValidateTaxRate validates a tax rate with the lenient parser.
func ValidateTaxRate(raw any) Result { return Default.TaxRate(raw) }

// ValidateAdvancePercent validates an advance percentage with the lenient parser.
func ValidateAdvancePercent(raw any) Result { return Default.AdvancePercent(raw) }

// FormValid reports whether total and UPI ID both validate.
func FormValid(total, upiID any) bool { return Default.FormValid(total, upiID) }

// TrimmedUpiID returns the UPI ID with surrounding whitespace removed, or ""
// when raw has no text.
func TrimmedUpiID(raw any) string {
	s, _ := text(raw)
	return strings.TrimFunc(s, isSpace)
}
