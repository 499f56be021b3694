package middleware

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/invoicesplit/internal/metrics"
	"github.com/mmynk/invoicesplit/pkg/api"
)

func TestClientIdentity(t *testing.T) {
	var seen string
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen = GetClientID(ctx)
		return connect.NewResponse(&api.PreferenceResponse{}), nil
	}
	call := ClientIdentity()(next)

	t.Run("no header is anonymous", func(t *testing.T) {
		seen = "unset"
		_, err := call(context.Background(), connect.NewRequest(&api.GetPreferenceRequest{}))
		require.NoError(t, err)
		assert.Empty(t, seen)
	})

	t.Run("UUID header is normalized into the context", func(t *testing.T) {
		req := connect.NewRequest(&api.GetPreferenceRequest{})
		req.Header().Set(api.ClientIDHeader, "7D9F3C1E-2A4B-4C5D-8E6F-0A1B2C3D4E5F")
		_, err := call(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "7d9f3c1e-2a4b-4c5d-8e6f-0a1b2c3d4e5f", seen)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := connect.NewRequest(&api.GetPreferenceRequest{})
		req.Header().Set(api.ClientIDHeader, "not-a-uuid")
		_, err := call(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	ok := MetricsInterceptor(m)(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return connect.NewResponse(&api.QuoteResponse{}), nil
	})
	failing := MetricsInterceptor(m)(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("missing"))
	})

	_, _ = ok(context.Background(), connect.NewRequest(&api.QuoteRequest{}))
	_, _ = failing(context.Background(), connect.NewRequest(&api.GetInvoiceRequest{}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RPCRequests.WithLabelValues("", "not_found")))
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	wantErr := connect.NewError(connect.CodeInvalidArgument, errors.New("bad theme"))
	call := LoggingInterceptor()(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, wantErr
	})

	_, err := call(context.Background(), connect.NewRequest(&api.SetPreferenceRequest{Theme: "sepia"}))
	assert.Same(t, wantErr, err)
}
