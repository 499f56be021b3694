package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/invoicesplit/internal/metrics"
	"github.com/mmynk/invoicesplit/internal/middleware"
	"github.com/mmynk/invoicesplit/internal/models"
	"github.com/mmynk/invoicesplit/internal/quote"
	"github.com/mmynk/invoicesplit/internal/storage"
	"github.com/mmynk/invoicesplit/internal/validation"
	"github.com/mmynk/invoicesplit/pkg/api"
)

var _ api.InvoiceServiceHandler = (*InvoiceService)(nil)

// InvoiceService implements the Connect InvoiceService.
type InvoiceService struct {
	store   storage.Store
	engine  *quote.Engine
	metrics *metrics.Metrics
}

// NewInvoiceService creates a new InvoiceService with the given storage
// backend and quote engine. m may be nil.
func NewInvoiceService(store storage.Store, engine *quote.Engine, m *metrics.Metrics) *InvoiceService {
	if engine == nil {
		engine = quote.NewEngine()
	}
	return &InvoiceService{store: store, engine: engine, metrics: m}
}

// Quote validates the raw fields and returns amounts and links. Invalid
// input is reported in the response, never as an RPC error.
func (s *InvoiceService) Quote(ctx context.Context, req *connect.Request[api.QuoteRequest]) (*connect.Response[api.QuoteResponse], error) {
	q := s.engine.Compute(toInput(req.Msg))
	s.metrics.ObserveQuote(q)

	slog.Debug("Quote computed",
		"ready", q.Ready,
		"base", q.Split.Base,
		"tax", q.Split.Tax,
		"advance", q.Split.Advance,
		"links", len(q.Links),
	)

	resp := toAPIQuote(q)
	return connect.NewResponse(&resp), nil
}

// CreateInvoice validates every field and saves the inputs.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *connect.Request[api.CreateInvoiceRequest]) (*connect.Response[api.CreateInvoiceResponse], error) {
	in := toInput(&req.Msg.QuoteRequest)
	report := s.engine.Validator.Validate(in)
	if !report.AllValid() {
		err := invalidFields(report)
		slog.Warn("CreateInvoice validation failed", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	invoice := &models.Invoice{
		Title:          strings.TrimSpace(req.Msg.Title),
		Total:          s.engine.Validator.Number(in.Total),
		TaxRate:        s.engine.Validator.Number(in.TaxRate),
		AdvancePercent: s.engine.Validator.Number(in.AdvancePercent),
		PayeeID:        validation.TrimmedUpiID(in.UpiID),
	}

	// Save to storage (generates ID, CreatedAt and Title)
	if err := s.store.CreateInvoice(ctx, invoice); err != nil {
		slog.Error("CreateInvoice failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	slog.Info("Invoice saved", "invoice_id", invoice.ID, "payee", invoice.PayeeID)

	return connect.NewResponse(&api.CreateInvoiceResponse{
		Invoice: toAPIInvoice(invoice),
		Quote:   toAPIQuote(s.engine.Compute(invoiceInput(invoice))),
	}), nil
}

// GetInvoice loads saved inputs and recomputes their quote.
func (s *InvoiceService) GetInvoice(ctx context.Context, req *connect.Request[api.GetInvoiceRequest]) (*connect.Response[api.GetInvoiceResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	invoice, err := s.store.GetInvoice(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetInvoice", err)
	}

	return connect.NewResponse(&api.GetInvoiceResponse{
		Invoice: toAPIInvoice(invoice),
		Quote:   toAPIQuote(s.engine.Compute(invoiceInput(invoice))),
	}), nil
}

// ListInvoices returns saved invoices with recomputed amounts.
func (s *InvoiceService) ListInvoices(ctx context.Context, req *connect.Request[api.ListInvoicesRequest]) (*connect.Response[api.ListInvoicesResponse], error) {
	if req.Msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("limit must not be negative"))
	}

	invoices, err := s.store.ListInvoices(ctx, req.Msg.Limit)
	if err != nil {
		return nil, storeError("ListInvoices", err)
	}

	resp := &api.ListInvoicesResponse{Invoices: make([]api.InvoiceSummary, 0, len(invoices))}
	for _, invoice := range invoices {
		q := s.engine.Compute(invoiceInput(invoice))
		resp.Invoices = append(resp.Invoices, api.InvoiceSummary{
			Invoice: toAPIInvoice(invoice),
			Amounts: toAPIAmounts(q),
		})
	}

	return connect.NewResponse(resp), nil
}

// DeleteInvoice removes a saved invoice.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, req *connect.Request[api.DeleteInvoiceRequest]) (*connect.Response[api.DeleteInvoiceResponse], error) {
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	if err := s.store.DeleteInvoice(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteInvoice", err)
	}
	slog.Info("Invoice deleted", "invoice_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteInvoiceResponse{}), nil
}

// GetPreference returns the caller's theme, or the default if none is saved.
func (s *InvoiceService) GetPreference(ctx context.Context, req *connect.Request[api.GetPreferenceRequest]) (*connect.Response[api.PreferenceResponse], error) {
	clientID, err := requireClientID(ctx)
	if err != nil {
		return nil, err
	}

	theme, saved, err := s.currentTheme(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.PreferenceResponse{Theme: string(theme), Saved: saved}), nil
}

// SetPreference saves the caller's theme.
func (s *InvoiceService) SetPreference(ctx context.Context, req *connect.Request[api.SetPreferenceRequest]) (*connect.Response[api.PreferenceResponse], error) {
	clientID, err := requireClientID(ctx)
	if err != nil {
		return nil, err
	}

	theme, err := models.ParseTheme(req.Msg.Theme)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.saveTheme(ctx, clientID, theme); err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.PreferenceResponse{Theme: string(theme), Saved: true}), nil
}

// ToggleTheme switches the caller between light and dark and saves the result.
func (s *InvoiceService) ToggleTheme(ctx context.Context, req *connect.Request[api.ToggleThemeRequest]) (*connect.Response[api.PreferenceResponse], error) {
	clientID, err := requireClientID(ctx)
	if err != nil {
		return nil, err
	}

	current, _, err := s.currentTheme(ctx, clientID)
	if err != nil {
		return nil, err
	}
	next := current.Toggle()

	if err := s.saveTheme(ctx, clientID, next); err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.PreferenceResponse{Theme: string(next), Saved: true}), nil
}

func (s *InvoiceService) currentTheme(ctx context.Context, clientID string) (models.Theme, bool, error) {
	pref, err := s.store.GetPreference(ctx, clientID)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultTheme, false, nil
	}
	if err != nil {
		return "", false, storeError("GetPreference", err)
	}
	return pref.Theme, true, nil
}

func (s *InvoiceService) saveTheme(ctx context.Context, clientID string, theme models.Theme) error {
	if err := s.store.SetPreference(ctx, &models.Preference{ClientID: clientID, Theme: theme}); err != nil {
		return storeError("SetPreference", err)
	}
	slog.Debug("Theme saved", "client_id", clientID, "theme", theme)
	return nil
}

// requireClientID returns the client ID placed in ctx by the
// ClientIdentity interceptor.
func requireClientID(ctx context.Context) (string, error) {
	clientID := middleware.GetClientID(ctx)
	if clientID == "" {
		return "", connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("%s header is required", api.ClientIDHeader))
	}
	return clientID, nil
}

// storeError maps a storage error to a Connect error.
func storeError(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	slog.Error(op+" failed", "error", err)
	return connect.NewError(connect.CodeInternal, err)
}

// invalidFields joins the messages of every invalid field.
func invalidFields(r validation.Report) error {
	var msgs []string
	for _, f := range r.Failures() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, r.Get(f).Message))
	}
	return errors.New(strings.Join(msgs, "; "))
}
