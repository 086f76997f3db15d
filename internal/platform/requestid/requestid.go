// Package requestid carries the per-request and correlation identifiers
// through context so that inbound middleware, the response envelope and
// outbound webhook deliveries agree on them without importing each other.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Headers carrying the identifiers on inbound and outbound requests.
const (
	Header            = "X-Request-ID"
	CorrelationHeader = "X-Correlation-ID"
)

type (
	requestKey     struct{}
	correlationKey struct{}
)

// New returns a fresh random (v4) request ID.
func New() string {
	return uuid.NewString()
}

// WithID returns a new context with the given request ID stored in it.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestKey{}, id)
}

// FromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestKey{}).(string)
	return id
}

// WithCorrelation stores the correlation ID. A correlation ID spans every
// request a client makes for one logical operation, so it outlives the
// request ID and is forwarded on webhook deliveries.
func WithCorrelation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationFromContext returns the correlation ID, falling back to the
// request ID when none was supplied.
func CorrelationFromContext(ctx context.Context) string {
	if id, _ := ctx.Value(correlationKey{}).(string); id != "" {
		return id
	}
	return FromContext(ctx)
}
