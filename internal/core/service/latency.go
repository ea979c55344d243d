package service

import (
	"context"
	"time"
)

// sleepCtx suspends for d, honouring context cancellation. The services use
// it for the optional simulated request latency; d is zero unless a delay
// was configured.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
