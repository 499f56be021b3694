// Package api defines the wire messages and the Connect handler and client
// of the invoicesplit.v1.InvoiceService.
package api

// QuoteRequest carries one snapshot of the raw form fields. Each field may
// be a JSON string, number or null.
type QuoteRequest struct {
	TotalAmount    any `json:"totalAmount"`
	TaxRate        any `json:"taxRate"`
	AdvancePercent any `json:"advancePercent"`
	UpiID          any `json:"upiId"`
}

// FieldResult is the validation outcome of one field.
type FieldResult struct {
	IsValid      bool   `json:"isValid"`
	ErrorMessage string `json:"errorMessage"`
}

// Amounts are the split amounts, rounded to cents.
type Amounts struct {
	Base    float64 `json:"base"`
	Tax     float64 `json:"tax"`
	Advance float64 `json:"advance"`
	Total   float64 `json:"total"`
	Balance float64 `json:"balance"`
}

// PaymentStage is one installment of the collection schedule.
type PaymentStage struct {
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
}

// QuoteResponse is the computed quote for a QuoteRequest.
type QuoteResponse struct {
	// Validation is keyed by field name: totalAmount, taxRate,
	// advancePercent, upiId.
	Validation map[string]FieldResult `json:"validation"`

	Amounts Amounts `json:"amounts"`

	// Formatted holds display strings keyed by base, tax, advance, total
	// and balance.
	Formatted map[string]string `json:"formatted"`

	// Links holds payment links keyed by base, tax and advance. Components
	// with a zero amount have no entry.
	Links map[string]string `json:"links"`

	Schedule []PaymentStage `json:"schedule,omitempty"`

	// Ready is true when totalAmount and upiId validated and amounts were
	// computed.
	Ready bool `json:"ready"`
}

// Invoice is a saved set of inputs.
type Invoice struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	TotalAmount    float64 `json:"totalAmount"`
	TaxRate        float64 `json:"taxRate"`
	AdvancePercent float64 `json:"advancePercent"`
	UpiID          string  `json:"upiId"`
	CreatedAt      int64   `json:"createdAt"`
}

// CreateInvoiceRequest saves the inputs of a quote under an optional title.
type CreateInvoiceRequest struct {
	Title string `json:"title,omitempty"`
	QuoteRequest
}

// CreateInvoiceResponse returns the saved invoice with its quote.
type CreateInvoiceResponse struct {
	Invoice Invoice       `json:"invoice"`
	Quote   QuoteResponse `json:"quote"`
}

// GetInvoiceRequest names an invoice.
type GetInvoiceRequest struct {
	ID string `json:"id"`
}

// GetInvoiceResponse returns a saved invoice with a freshly computed quote.
type GetInvoiceResponse struct {
	Invoice Invoice       `json:"invoice"`
	Quote   QuoteResponse `json:"quote"`
}

// ListInvoicesRequest limits the number of invoices returned; zero means all.
type ListInvoicesRequest struct {
	Limit int `json:"limit,omitempty"`
}

// InvoiceSummary is one row of the invoice history.
type InvoiceSummary struct {
	Invoice Invoice `json:"invoice"`
	Amounts Amounts `json:"amounts"`
}

// ListInvoicesResponse lists invoices, newest first.
type ListInvoicesResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// DeleteInvoiceRequest names the invoice to delete.
type DeleteInvoiceRequest struct {
	ID string `json:"id"`
}

// DeleteInvoiceResponse is empty.
type DeleteInvoiceResponse struct{}

// GetPreferenceRequest is empty; the client is identified by header.
type GetPreferenceRequest struct{}

// SetPreferenceRequest saves a theme for the calling client.
type SetPreferenceRequest struct {
	Theme string `json:"theme"`
}

// ToggleThemeRequest is empty; the client is identified by header.
type ToggleThemeRequest struct{}

// PreferenceResponse is the calling client's display preference.
type PreferenceResponse struct {
	Theme string `json:"theme"`
	// Saved is false when the default theme is returned.
	Saved bool `json:"saved"`
}
