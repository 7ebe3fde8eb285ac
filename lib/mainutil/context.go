package mainutil

import (
	"context"
	"time"
)

var (
	gRootContext context.Context = context.Background()
	gRootCancel  context.CancelFunc
)

// InitContext creates the root context.  The caller must ensure that
// CancelRootContext gets called by the end of the program's lifecycle.
func InitContext() {
	gRootContext, gRootCancel = context.WithCancel(context.Background())
}

// RootContext returns the root context.
func RootContext() context.Context {
	return gRootContext
}

// CancelRootContext cancels the root context.
func CancelRootContext() {
	if gRootCancel != nil {
		gRootCancel()
	}
}

// WithTimeout derives a context from the root context that expires after d.
// A zero d means no deadline.
func WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(gRootContext)
	}
	return context.WithTimeout(gRootContext, d)
}
