// Package clock holds the waiting and retry primitives shared by the indexer loops.
package clock

import (
	"context"
	"time"
)

// Sleep pauses for d. It returns ctx.Err() as soon as ctx is done, and returns immediately
// when d is not positive.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
