package logging

import "context"

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID adds a comparison request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID retrieves the request ID from the context.
// Returns empty string if not present.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
