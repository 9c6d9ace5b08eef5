package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/geoquery/pkg/logger"
	"github.com/dmitrymomot/geoquery/pkg/query"
)

// ErrorHandlerConfig configures the default error handler.
type ErrorHandlerConfig struct {
	// Responder renders errors that do not declare their own responder.
	// Defaults to TextResponder.
	Responder Responder

	// Negotiate picks JSON or plain text from the Accept header, using
	// Responder as the fallback. Errors that declare a responder keep it.
	Negotiate bool

	// OnError, if set, is called after every error is rendered.
	OnError func(r *http.Request, err error, status int)
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler creates the error handler used by every route.
//
// The responder is chosen per error: a responder declared by the error
// (see ResponderProvider) wins, then Accept negotiation if enabled, then
// cfg.Responder. Validation failures render as 400 with their reason;
// other errors as 500 without details.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.Responder == nil {
		cfg.Responder = TextResponder{}
	}

	return func(ctx Context, err error) {
		r := ctx.Request()

		fallback := cfg.Responder
		if cfg.Negotiate {
			fallback = Negotiate(r, cfg.Responder)
		}
		rd := ResponderFor(err, fallback).Render(err)

		attrs := []slog.Attr{
			logger.Error(err),
			logger.Status(rd.Status),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Component("error_handler"),
		}
		if ve, ok := query.AsValidationError(err); ok {
			attrs = append(attrs, logger.Field(ve.Field), logger.Kind(ve.KindName()))
		}
		log.LogAttrs(r.Context(), determineLogLevel(rd.Status), "request error", attrs...)

		if rd.Err != nil {
			log.ErrorContext(r.Context(), "failed to encode error response",
				logger.Error(rd.Err),
				logger.Component("error_handler"),
			)
		}

		if writeErr := Render(ctx.ResponseWriter(), rd); writeErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(writeErr),
				logger.Component("error_handler"),
			)
		}

		if cfg.OnError != nil {
			cfg.OnError(r, err, rd.Status)
		}
	}
}
