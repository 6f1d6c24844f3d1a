// Package timeouts centralizes context timeouts for handler operations.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: snapshot loads for a single dashboard render
//   - Long: exports and multi-collection reads
package timeouts

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	ping  = 2 * time.Second
	short = 5 * time.Second
	long  = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for snapshot loads and page renders.
func Short() time.Duration { return short }

// Long returns the timeout for exports and heavier reads.
func Long() time.Duration { return long }

// WithTimeout creates a context with timeout and returns a cancel function
// that logs a warning when the deadline was actually hit.
//
// Example:
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "dashboard snapshot")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
