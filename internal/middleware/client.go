package middleware

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/invoicesplit/pkg/api"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// ClientIDKey is the context key for storing the calling client's ID.
const ClientIDKey contextKey = "client_id"

// GetClientID extracts the client ID from the context.
// Returns empty string if not found.
func GetClientID(ctx context.Context) string {
	clientID, _ := ctx.Value(ClientIDKey).(string)
	return clientID
}

// WithClientID returns a copy of ctx carrying clientID.
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, ClientIDKey, clientID)
}

// ClientIdentity returns an interceptor that reads the client ID header.
// Requests without the header pass through anonymously; a header that is
// not a UUID is rejected.
func ClientIdentity() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			raw := req.Header().Get(api.ClientIDHeader)
			if raw == "" {
				return next(ctx, req)
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, connect.NewError(connect.CodeInvalidArgument,
					fmt.Errorf("%s must be a UUID: %w", api.ClientIDHeader, err))
			}

			return next(WithClientID(ctx, id.String()), req)
		}
	}
}
