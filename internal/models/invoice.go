package models

// Invoice is a saved set of calculator inputs.
type Invoice struct {
	// ID is the unique identifier for the invoice (UUID format).
	ID string

	// Title is the human-readable name for the invoice.
	// Auto-generated from the payee when not provided.
	Title string

	// Total is the tax-inclusive invoice amount.
	Total float64

	// TaxRate is the tax percentage included in Total, within [0, 28].
	TaxRate float64

	// AdvancePercent is the share of Total requested up front, within [0, 100].
	AdvancePercent float64

	// PayeeID is the UPI ID that receives the payments.
	PayeeID string

	// CreatedAt is the Unix timestamp when the invoice was saved.
	CreatedAt int64
}
