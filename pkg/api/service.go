package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

// InvoiceServiceName is the fully-qualified name of the service.
const InvoiceServiceName = "invoicesplit.v1.InvoiceService"

// Procedure paths of the InvoiceService RPCs.
const (
	InvoiceServiceQuoteProcedure         = "/invoicesplit.v1.InvoiceService/Quote"
	InvoiceServiceCreateInvoiceProcedure = "/invoicesplit.v1.InvoiceService/CreateInvoice"
	InvoiceServiceGetInvoiceProcedure    = "/invoicesplit.v1.InvoiceService/GetInvoice"
	InvoiceServiceListInvoicesProcedure  = "/invoicesplit.v1.InvoiceService/ListInvoices"
	InvoiceServiceDeleteInvoiceProcedure = "/invoicesplit.v1.InvoiceService/DeleteInvoice"
	InvoiceServiceGetPreferenceProcedure = "/invoicesplit.v1.InvoiceService/GetPreference"
	InvoiceServiceSetPreferenceProcedure = "/invoicesplit.v1.InvoiceService/SetPreference"
	InvoiceServiceToggleThemeProcedure   = "/invoicesplit.v1.InvoiceService/ToggleTheme"
)

// ClientIDHeader identifies the calling browser or device for preferences.
const ClientIDHeader = "Invoice-Client-Id"

// InvoiceServiceHandler is implemented by the server.
type InvoiceServiceHandler interface {
	Quote(context.Context, *connect.Request[QuoteRequest]) (*connect.Response[QuoteResponse], error)
	CreateInvoice(context.Context, *connect.Request[CreateInvoiceRequest]) (*connect.Response[CreateInvoiceResponse], error)
	GetInvoice(context.Context, *connect.Request[GetInvoiceRequest]) (*connect.Response[GetInvoiceResponse], error)
	ListInvoices(context.Context, *connect.Request[ListInvoicesRequest]) (*connect.Response[ListInvoicesResponse], error)
	DeleteInvoice(context.Context, *connect.Request[DeleteInvoiceRequest]) (*connect.Response[DeleteInvoiceResponse], error)
	GetPreference(context.Context, *connect.Request[GetPreferenceRequest]) (*connect.Response[PreferenceResponse], error)
	SetPreference(context.Context, *connect.Request[SetPreferenceRequest]) (*connect.Response[PreferenceResponse], error)
	ToggleTheme(context.Context, *connect.Request[ToggleThemeRequest]) (*connect.Response[PreferenceResponse], error)
}

// NewInvoiceServiceHandler builds an HTTP handler for svc. It returns the
// path prefix to mount the handler on.
func NewInvoiceServiceHandler(svc InvoiceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(InvoiceServiceQuoteProcedure, connect.NewUnaryHandler(InvoiceServiceQuoteProcedure, svc.Quote, opts...))
	mux.Handle(InvoiceServiceCreateInvoiceProcedure, connect.NewUnaryHandler(InvoiceServiceCreateInvoiceProcedure, svc.CreateInvoice, opts...))
	mux.Handle(InvoiceServiceGetInvoiceProcedure, connect.NewUnaryHandler(InvoiceServiceGetInvoiceProcedure, svc.GetInvoice, opts...))
	mux.Handle(InvoiceServiceListInvoicesProcedure, connect.NewUnaryHandler(InvoiceServiceListInvoicesProcedure, svc.ListInvoices, opts...))
	mux.Handle(InvoiceServiceDeleteInvoiceProcedure, connect.NewUnaryHandler(InvoiceServiceDeleteInvoiceProcedure, svc.DeleteInvoice, opts...))
	mux.Handle(InvoiceServiceGetPreferenceProcedure, connect.NewUnaryHandler(InvoiceServiceGetPreferenceProcedure, svc.GetPreference, opts...))
	mux.Handle(InvoiceServiceSetPreferenceProcedure, connect.NewUnaryHandler(InvoiceServiceSetPreferenceProcedure, svc.SetPreference, opts...))
	mux.Handle(InvoiceServiceToggleThemeProcedure, connect.NewUnaryHandler(InvoiceServiceToggleThemeProcedure, svc.ToggleTheme, opts...))

	return "/" + InvoiceServiceName + "/", mux
}

// InvoiceServiceClient calls the InvoiceService.
type InvoiceServiceClient struct {
	quote         *connect.Client[QuoteRequest, QuoteResponse]
	createInvoice *connect.Client[CreateInvoiceRequest, CreateInvoiceResponse]
	getInvoice    *connect.Client[GetInvoiceRequest, GetInvoiceResponse]
	listInvoices  *connect.Client[ListInvoicesRequest, ListInvoicesResponse]
	deleteInvoice *connect.Client[DeleteInvoiceRequest, DeleteInvoiceResponse]
	getPreference *connect.Client[GetPreferenceRequest, PreferenceResponse]
	setPreference *connect.Client[SetPreferenceRequest, PreferenceResponse]
	toggleTheme   *connect.Client[ToggleThemeRequest, PreferenceResponse]
}

// NewInvoiceServiceClient returns a client for the service at baseURL
// (for example http://localhost:8080).
func NewInvoiceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *InvoiceServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)

	return &InvoiceServiceClient{
		quote:         connect.NewClient[QuoteRequest, QuoteResponse](httpClient, baseURL+InvoiceServiceQuoteProcedure, opts...),
		createInvoice: connect.NewClient[CreateInvoiceRequest, CreateInvoiceResponse](httpClient, baseURL+InvoiceServiceCreateInvoiceProcedure, opts...),
		getInvoice:    connect.NewClient[GetInvoiceRequest, GetInvoiceResponse](httpClient, baseURL+InvoiceServiceGetInvoiceProcedure, opts...),
		listInvoices:  connect.NewClient[ListInvoicesRequest, ListInvoicesResponse](httpClient, baseURL+InvoiceServiceListInvoicesProcedure, opts...),
		deleteInvoice: connect.NewClient[DeleteInvoiceRequest, DeleteInvoiceResponse](httpClient, baseURL+InvoiceServiceDeleteInvoiceProcedure, opts...),
		getPreference: connect.NewClient[GetPreferenceRequest, PreferenceResponse](httpClient, baseURL+InvoiceServiceGetPreferenceProcedure, opts...),
		setPreference: connect.NewClient[SetPreferenceRequest, PreferenceResponse](httpClient, baseURL+InvoiceServiceSetPreferenceProcedure, opts...),
		toggleTheme:   connect.NewClient[ToggleThemeRequest, PreferenceResponse](httpClient, baseURL+InvoiceServiceToggleThemeProcedure, opts...),
	}
}

// Quote calls invoicesplit.v1.InvoiceService.Quote.
func (c *InvoiceServiceClient) Quote(ctx context.Context, req *connect.Request[QuoteRequest]) (*connect.Response[QuoteResponse], error) {
	return c.quote.CallUnary(ctx, req)
}

// CreateInvoice calls invoicesplit.v1.InvoiceService.CreateInvoice.
func (c *InvoiceServiceClient) CreateInvoice(ctx context.Context, req *connect.Request[CreateInvoiceRequest]) (*connect.Response[CreateInvoiceResponse], error) {
	return c.createInvoice.CallUnary(ctx, req)
}

// GetInvoice calls invoicesplit.v1.InvoiceService.GetInvoice.
func (c *InvoiceServiceClient) GetInvoice(ctx context.Context, req *connect.Request[GetInvoiceRequest]) (*connect.Response[GetInvoiceResponse], error) {
	return c.getInvoice.CallUnary(ctx, req)
}

// ListInvoices calls invoicesplit.v1.InvoiceService.ListInvoices.
func (c *InvoiceServiceClient) ListInvoices(ctx context.Context, req *connect.Request[ListInvoicesRequest]) (*connect.Response[ListInvoicesResponse], error) {
	return c.listInvoices.CallUnary(ctx, req)
}

// DeleteInvoice calls invoicesplit.v1.InvoiceService.DeleteInvoice.
func (c *InvoiceServiceClient) DeleteInvoice(ctx context.Context, req *connect.Request[DeleteInvoiceRequest]) (*connect.Response[DeleteInvoiceResponse], error) {
	return c.deleteInvoice.CallUnary(ctx, req)
}

// GetPreference calls invoicesplit.v1.InvoiceService.GetPreference.
func (c *InvoiceServiceClient) GetPreference(ctx context.Context, req *connect.Request[GetPreferenceRequest]) (*connect.Response[PreferenceResponse], error) {
	return c.getPreference.CallUnary(ctx, req)
}

// SetPreference calls invoicesplit.v1.InvoiceService.SetPreference.
func (c *InvoiceServiceClient) SetPreference(ctx context.Context, req *connect.Request[SetPreferenceRequest]) (*connect.Response[PreferenceResponse], error) {
	return c.setPreference.CallUnary(ctx, req)
}

// ToggleTheme calls invoicesplit.v1.InvoiceService.ToggleTheme.
func (c *InvoiceServiceClient) ToggleTheme(ctx context.Context, req *connect.Request[ToggleThemeRequest]) (*connect.Response[PreferenceResponse], error) {
	return c.toggleTheme.CallUnary(ctx, req)
}
