package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/geoquery/binder"
	"github.com/dmitrymomot/geoquery/handler"
	"github.com/dmitrymomot/geoquery/pkg/httpserver"
	"github.com/dmitrymomot/geoquery/pkg/metrics"
	"github.com/dmitrymomot/geoquery/pkg/query"
)

// Options configures the API router. Every field is optional.
type Options struct {
	Logger *slog.Logger
	// Metrics, if set, counts validation failures and serves /metrics.
	Metrics     *metrics.Metrics
	ErrorFormat ErrorFormat
	// Ready checks back /readyz, e.g. the redis ping.
	Ready []httpserver.Check
}

// Router mounts the query endpoints, the probes and /metrics.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware, logger.Middleware(log))
//	r.Mount("/", api.Router(api.Options{Logger: log, Metrics: m}))
func Router(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	onError := func(r *http.Request, err error, status int) {
		if opts.Metrics == nil {
			return
		}
		if ve, ok := query.AsValidationError(err); ok {
			field := ve.Field
			if field == "" {
				field = "query"
			}
			opts.Metrics.ValidationFailure(field, ve.KindName())
		}
	}
	errorHandler := func(routeDefault handler.Responder) handler.ErrorHandler[handler.Context] {
		cfg := opts.ErrorFormat.errorConfig(routeDefault)
		cfg.OnError = onError
		return handler.NewErrorHandler(log, cfg)
	}

	r := chi.NewRouter()

	r.Get("/", handler.Wrap(index))

	r.Get("/hello", handler.Wrap(hello,
		handler.WithBinder[handler.Context, HelloQuery](binder.Query(helloSchema)),
		handler.WithErrorHandler[handler.Context, HelloQuery](errorHandler(handler.TextResponder{})),
	))

	r.Get("/bbox", handler.Wrap(bbox,
		handler.WithBinder[handler.Context, BBoxQuery](binder.Query(bboxSchema)),
		handler.WithErrorHandler[handler.Context, BBoxQuery](errorHandler(handler.JSONResponder{})),
	))

	ready := opts.Ready
	if len(ready) == 0 {
		ready = []httpserver.Check{func(context.Context) error { return nil }}
	}
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, ready...))

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return r
}
