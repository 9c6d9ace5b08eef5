// Package environment names the deployment environment (development,
// staging, production) and carries it through context.Context.
//
// Parse accepts the long and short names taken from configuration:
//
//	env := environment.Parse(cfg.AppEnv) // "prod" -> environment.Production
//
// Middleware attaches the value to every request and FromContext reads it
// back. LoggerExtractor plugs into logger.WithContextExtractors.
package environment
