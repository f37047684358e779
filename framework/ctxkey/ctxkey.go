package ctxkey

import "context"

type contextKey string

func (c contextKey) String() string {
	return "chain ctx " + string(c)
}

var (
	contextKeyRequestID = contextKey("request_id")
)

// WithRequestID stamps a request id onto the context for handlers and
// spans to correlate on.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyRequestID, id)
}

// RequestID gets the request id from the context. If none is present a
// default value of "unknown" is returned.
func RequestID(ctx context.Context) string {
	id, ok := ctx.Value(contextKeyRequestID).(string)
	if id == "" || !ok {
		return "unknown"
	}
	return id
}
