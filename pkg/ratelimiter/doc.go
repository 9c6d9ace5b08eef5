// Package ratelimiter limits requests per key with fixed windows.
//
// A Limiter counts hits through a Store: MemoryStore for a single process,
// RedisStore to share counters between replicas. Middleware mounts the
// limiter on an HTTP stack and answers 429 with Retry-After once a key
// exceeds its budget.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.New(store, ratelimiter.Config{
//		Requests: 60,
//		Window:   time.Minute,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByIP))
package ratelimiter
