// Package redis connects to redis with retries and exposes a readiness check.
// The client backs the shared rate-limit store when RATE_LIMIT_STORE=redis.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
package redis
