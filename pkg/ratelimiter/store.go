package ratelimiter

import (
	"context"
	"time"
)

// Store counts requests per key in fixed windows.
type Store interface {
	// Increment adds one hit to key, starting a new window of the given
	// length if none is active. It returns the hit count in the current
	// window and the time the window ends.
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)

	// Reset clears the state for key.
	Reset(ctx context.Context, key string) error
}
