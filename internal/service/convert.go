package service

import (
	"github.com/mmynk/invoicesplit/internal/calculator"
	"github.com/mmynk/invoicesplit/internal/models"
	"github.com/mmynk/invoicesplit/internal/quote"
	"github.com/mmynk/invoicesplit/internal/upi"
	"github.com/mmynk/invoicesplit/internal/validation"
	"github.com/mmynk/invoicesplit/pkg/api"
)

// toInput converts a wire request into a validation snapshot.
func toInput(req *api.QuoteRequest) validation.Input {
	return validation.Input{
		Total:          req.TotalAmount,
		TaxRate:        req.TaxRate,
		AdvancePercent: req.AdvancePercent,
		UpiID:          req.UpiID,
	}
}

// invoiceInput builds the snapshot for a stored invoice.
func invoiceInput(inv *models.Invoice) validation.Input {
	return validation.Input{
		Total:          inv.Total,
		TaxRate:        inv.TaxRate,
		AdvancePercent: inv.AdvancePercent,
		UpiID:          inv.PayeeID,
	}
}

func toAPIAmounts(q quote.Quote) api.Amounts {
	return api.Amounts{
		Base:    q.Split.Base,
		Tax:     q.Split.Tax,
		Advance: q.Split.Advance,
		Total:   q.Split.Total,
		Balance: q.Balance,
	}
}

func toAPIQuote(q quote.Quote) api.QuoteResponse {
	resp := api.QuoteResponse{
		Validation: make(map[string]api.FieldResult, len(validation.Fields)),
		Amounts:    toAPIAmounts(q),
		Formatted:  q.Formatted(),
		Links:      make(map[string]string, len(q.Links)),
		Ready:      q.Ready,
	}

	for _, f := range validation.Fields {
		r := q.Validation.Get(f)
		resp.Validation[f.String()] = api.FieldResult{IsValid: r.Valid, ErrorMessage: r.Message}
	}
	for _, c := range upi.Categories {
		if link, ok := q.Links[c]; ok {
			resp.Links[c.String()] = link
		}
	}
	for _, stage := range calculator.Schedule(q.Split) {
		resp.Schedule = append(resp.Schedule, api.PaymentStage{Paid: stage.Paid, Outstanding: stage.Outstanding})
	}

	return resp
}

func toAPIInvoice(inv *models.Invoice) api.Invoice {
	return api.Invoice{
		ID:             inv.ID,
		Title:          inv.Title,
		TotalAmount:    inv.Total,
		TaxRate:        inv.TaxRate,
		AdvancePercent: inv.AdvancePercent,
		UpiID:          inv.PayeeID,
		CreatedAt:      inv.CreatedAt,
	}
}
