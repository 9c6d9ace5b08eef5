package ratelimiter

import (
	"context"
	"errors"
)

// Limiter applies a fixed window limit on top of a Store.
type Limiter struct {
	store  Store
	config Config
}

// New creates a Limiter. Returns ErrInvalidConfig for a non-positive
// request count or window.
func New(store Store, config Config) (*Limiter, error) {
	if store == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("nil store"))
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, config: config}, nil
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *Limiter) Allow(ctx context.Context, key string) (*Result, error) {
	count, resetAt, err := l.store.Increment(ctx, key, l.config.Window)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return &Result{
		Limit:     l.config.Requests,
		Remaining: l.config.Requests - count,
		ResetAt:   resetAt,
	}, nil
}

// Reset clears the counter for key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
