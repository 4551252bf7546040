package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextWorkerKey ctxKey = "workerID"

// WorkerIDFromContext returns the authenticated worker id, or "" when the
// request carries no identity.
func WorkerIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if workerID, ok := ctx.Value(ContextWorkerKey).(string); ok {
		return workerID
	}
	return ""
}

func ContextWithWorkerID(ctx context.Context, workerID string) context.Context {
	return context.WithValue(ctx, ContextWorkerKey, workerID)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
