package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// calculationContext derives the context a CLI calculation runs under.
// The returned context is canceled when the configured timeout expires or
// when the process receives SIGINT or SIGTERM, whichever comes first, so a
// runaway long-division or power computation can always be interrupted.
//
// The returned stop function releases both the timer and the signal
// registration and must be deferred by the caller.
func calculationContext(ctx context.Context, timeout time.Duration) (context.Context, func()) {
	ctx, cancelTimeout := context.WithTimeout(ctx, timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)

	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}
