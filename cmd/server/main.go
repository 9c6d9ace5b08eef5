package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/geoquery/modules/api"
	"github.com/dmitrymomot/geoquery/pkg/config"
	"github.com/dmitrymomot/geoquery/pkg/environment"
	"github.com/dmitrymomot/geoquery/pkg/httpserver"
	"github.com/dmitrymomot/geoquery/pkg/logger"
	"github.com/dmitrymomot/geoquery/pkg/metrics"
	"github.com/dmitrymomot/geoquery/pkg/ratelimiter"
	"github.com/dmitrymomot/geoquery/pkg/redis"
	"github.com/dmitrymomot/geoquery/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	env := environment.Parse(cfg.AppEnv)
	logOpts := []logger.Option{
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), environment.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		logOpts = append(logOpts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return err
		}
		logOpts = append(logOpts, logger.WithFormat(format))
	}
	log := logger.New(logOpts...)
	logger.SetAsDefault(log)

	errorFormat, err := api.ParseErrorFormat(cfg.ErrorFormat)
	if err != nil {
		return err
	}

	m := metrics.New("geoquery")
	var (
		ready     []httpserver.Check
		stopHooks []httpserver.Option
	)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.RealIP,
		environment.Middleware(env),
		logger.Middleware(log),
		middleware.Recoverer,
		m.Middleware,
	)

	if cfg.RateLimit.Enabled {
		store, check, closeStore, err := newRateLimitStore(ctx, cfg)
		if err != nil {
			return err
		}
		stopHooks = append(stopHooks, httpserver.WithStopHook(closeStore))
		if check != nil {
			ready = append(ready, check)
		}

		limiter, err := ratelimiter.New(store, cfg.RateLimit)
		if err != nil {
			closeStore()
			return err
		}
		r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByIP))
		log.Info("rate limiting enabled",
			slog.String("store", cfg.RateLimit.Store),
			slog.Int("requests", cfg.RateLimit.Requests),
			slog.Duration("window", cfg.RateLimit.Window),
		)
	}

	r.Mount("/", api.Router(api.Options{
		Logger:      log,
		Metrics:     m,
		ErrorFormat: errorFormat,
		Ready:       ready,
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP, append(stopHooks, httpserver.WithLogger(log))...)
	return srv.Run(ctx, r)
}

// newRateLimitStore returns the configured store, an optional readiness
// check and a function releasing the store.
func newRateLimitStore(ctx context.Context, cfg appConfig) (ratelimiter.Store, httpserver.Check, func(), error) {
	switch cfg.RateLimit.Store {
	case ratelimiter.StoreRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("rate limit store: %w", err)
		}
		closeFn := func() { _ = client.Close() }
		return ratelimiter.NewRedisStore(client, cfg.AppName+":ratelimit:"), redis.Healthcheck(client), closeFn, nil
	default:
		store := ratelimiter.NewMemoryStore()
		return store, nil, store.Close, nil
	}
}

