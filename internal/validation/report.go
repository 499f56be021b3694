package validation

// Field names one input of the invoice form.
type Field int

const (
	FieldTotal Field = iota
	FieldTaxRate
	FieldAdvancePercent
	FieldUpiID
)

// Fields lists every form field in display order.
var Fields = []Field{FieldTotal, FieldTaxRate, FieldAdvancePercent, FieldUpiID}

// String returns the wire name of the field.
func (f Field) String() string {
	switch f {
	case FieldTotal:
		return "totalAmount"
	case FieldTaxRate:
		return "taxRate"
	case FieldAdvancePercent:
		return "advancePercent"
	case FieldUpiID:
		return "upiId"
	default:
		return "unknown"
	}
}

// Input is one snapshot of the raw form values.
type Input struct {
	Total          any
	TaxRate        any
	AdvancePercent any
	UpiID          any
}

// Report holds the validation result for every field of an Input.
type Report struct {
	Total          Result
	TaxRate        Result
	AdvancePercent Result
	UpiID          Result
}

// Validate checks every field of in.
func (v Validator) Validate(in Input) Report {
	return Report{
		Total:          v.TotalAmount(in.Total),
		TaxRate:        v.TaxRate(in.TaxRate),
		AdvancePercent: v.AdvancePercent(in.AdvancePercent),
		UpiID:          v.UpiID(in.UpiID),
	}
}

// Validate checks every field of in with the lenient parser.
func Validate(in Input) Report { return Default.Validate(in) }

// Get returns the result for one field.
func (r Report) Get(f Field) Result {
	switch f {
	case FieldTotal:
		return r.Total
	case FieldTaxRate:
		return r.TaxRate
	case FieldAdvancePercent:
		return r.AdvancePercent
	case FieldUpiID:
		return r.UpiID
	default:
		return invalid("unknown field")
	}
}

// Gate is the form gate: total and UPI ID are valid. Percentages from
// bounded sliders are not consulted.
func (r Report) Gate() bool {
	return r.Total.Valid && r.UpiID.Valid
}

// AllValid reports whether every field is valid, for callers whose
// percentages are not already clamped by the UI.
func (r Report) AllValid() bool {
	return r.Gate() && r.TaxRate.Valid && r.AdvancePercent.Valid
}

// Failures returns the invalid fields in display order.
func (r Report) Failures() []Field {
	var failed []Field
	for _, f := range Fields {
		if !r.Get(f).Valid {
			failed = append(failed, f)
		}
	}
	return failed
}
