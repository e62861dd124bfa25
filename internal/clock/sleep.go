// Package clock provides helpers for waiting between retries.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done, whichever comes first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Wait sleeps for the delay of the given retry attempt.
func (b Backoff) Wait(ctx context.Context, attempt int) error {
	return SleepWithContext(ctx, b.Delay(attempt))
}
