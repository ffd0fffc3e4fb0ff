package reqctx

import (
	"context"
	"time"
)

type ctxKey int

const (
	keyRequestMeta ctxKey = iota
)

// RequestMeta is what the HTTP layer knows about the caller of a submission.
type RequestMeta struct {
	RequestID string
	// ClientIP is the address the rate limiter keys on.
	ClientIP   string
	UserAgent  string
	ReceivedAt time.Time
}

func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext returns nil, false outside an HTTP request.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

func RequestIDFromContext(ctx context.Context) string {
	if meta, ok := RequestMetaFromContext(ctx); ok {
		return meta.RequestID
	}
	return ""
}

// ReceivedAt is the zero time outside an HTTP request.
func ReceivedAt(ctx context.Context) time.Time {
	if meta, ok := RequestMetaFromContext(ctx); ok {
		return meta.ReceivedAt
	}
	return time.Time{}
}

// LogAttrs returns slog key/value pairs identifying the caller, for use with
// Logger.With. Empty values are left out.
func LogAttrs(ctx context.Context) []any {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return nil
	}
	var attrs []any
	if meta.RequestID != "" {
		attrs = append(attrs, "request_id", meta.RequestID)
	}
	if meta.ClientIP != "" {
		attrs = append(attrs, "client_ip", meta.ClientIP)
	}
	if meta.UserAgent != "" {
		attrs = append(attrs, "user_agent", meta.UserAgent)
	}
	return attrs
}
