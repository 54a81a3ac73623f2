package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// contextKey is a private type so context keys cannot collide.
type contextKey string

const traceIDKey contextKey = "trace_id"

// WithTraceID stores a trace ID in the context, generating a fresh UUID when
// none is supplied. The application layer tags each unit of work so storage
// operations can be correlated in the logs.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		traceID = uuid.New().String()
	}
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceID extracts the trace ID from the context, or "" if absent.
func TraceID(ctx context.Context) string {
	if traceID, ok := ctx.Value(traceIDKey).(string); ok {
		return traceID
	}
	return ""
}

// WithContext returns a logger carrying the context's trace ID, if any.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if traceID := TraceID(ctx); traceID != "" {
		return l.WithFields(zap.String("trace_id", traceID))
	}
	return l
}
