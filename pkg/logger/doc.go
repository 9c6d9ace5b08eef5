// Package logger provides a context-aware wrapper around Go's slog package
// with functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// New creates a *slog.Logger configured by Option functions:
//
//   - WithFormat selects text or json output
//   - WithLevel sets the minimum level
//   - WithEnvironment applies development / staging / production presets
//   - WithAttr adds static attributes to every record
//   - WithContextExtractors registers callbacks that pull attributes, such
//     as the request id, out of the record's context
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "geoquery"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "request error",
//		logger.Field("age"),
//		logger.Status(http.StatusBadRequest),
//	)
//
// Middleware writes one access log record per HTTP request.
package logger
