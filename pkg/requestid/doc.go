// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is a short
// token of letters, digits, '-' and '_'; otherwise it generates a UUIDv4.
// The id is stored in the request context and echoed in the response
// header. LoggerExtractor adds it to every log record written with the
// request context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
