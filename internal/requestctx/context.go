// Package requestctx provides request-scoped values set at the boundary,
// so logs, spans, and the encoded response all carry the same request id.
package requestctx

import "context"

type contextKey struct{}

var requestIDKey = &contextKey{}

// SetRequestID stores the request id in the context.
func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestID returns the request id from context, or "" if not set.
func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey).(string)
	return v
}
