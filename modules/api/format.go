package api

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/geoquery/handler"
)

// ErrorFormat selects how failures are rendered.
type ErrorFormat string

const (
	// FormatDefault keeps each route's own responder.
	FormatDefault ErrorFormat = ""
	// FormatText renders every route's failures as plain text.
	FormatText ErrorFormat = "text"
	// FormatJSON renders every route's failures as JSON.
	FormatJSON ErrorFormat = "json"
	// FormatNegotiate follows the Accept header, falling back to the route's responder.
	FormatNegotiate ErrorFormat = "negotiate"
)

// ParseErrorFormat validates an ERROR_FORMAT value.
func ParseErrorFormat(s string) (ErrorFormat, error) {
	switch f := ErrorFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDefault, FormatText, FormatJSON, FormatNegotiate:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownErrorFormat, s)
	}
}

// errorConfig returns the error handler config of a route whose own
// responder is routeDefault.
func (f ErrorFormat) errorConfig(routeDefault handler.Responder) handler.ErrorHandlerConfig {
	switch f {
	case FormatText:
		return handler.ErrorHandlerConfig{Responder: handler.TextResponder{}}
	case FormatJSON:
		return handler.ErrorHandlerConfig{Responder: handler.JSONResponder{}}
	case FormatNegotiate:
		return handler.ErrorHandlerConfig{Responder: routeDefault, Negotiate: true}
	default:
		return handler.ErrorHandlerConfig{Responder: routeDefault}
	}
}
