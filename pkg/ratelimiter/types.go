package ratelimiter

import (
	"fmt"
	"time"
)

// Store names accepted by Config.Store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config defines a fixed window limit: at most Requests per Window per key.
type Config struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	Store    string        `env:"RATE_LIMIT_STORE" envDefault:"memory"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"60"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

func (c Config) validate() error {
	if c.Requests <= 0 {
		return fmt.Errorf("%w: requests must be positive, got %d", ErrInvalidConfig, c.Requests)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	switch c.Store {
	case "", StoreMemory, StoreRedis:
		return nil
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalidConfig, c.Store)
	}
}

// Result contains the outcome of a rate limit check.
type Result struct {
	Limit     int       // requests allowed per window
	Remaining int       // negative once the limit is exceeded
	ResetAt   time.Time // end of the current window
}

// Allowed reports whether the request fits in the current window.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}
