// Package httpserver wraps net/http with environment driven timeouts,
// graceful shutdown and health-check handlers.
//
// Run blocks until the context is cancelled or SIGINT/SIGTERM arrives, then
// drains in-flight requests within the shutdown timeout:
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Errors are wrapped with ErrStart or ErrShutdown for errors.Is checks.
package httpserver
