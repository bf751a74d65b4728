package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

// requestIDKey is the context key for the per-request ID.
const requestIDKey contextKey = "beagle.request_id"

// WithRequestID adds a request ID to the context. The HTTP client attaches
// one per outgoing request so log lines can be correlated with the
// X-Request-ID header the backend saw.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request ID from the context, empty
// when none is set.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
