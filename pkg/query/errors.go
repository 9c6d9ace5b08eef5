package query

import (
	"errors"
	"fmt"
)

// Error kinds. Every ValidationError wraps exactly one of them, so callers
// branch with errors.Is instead of comparing messages.
var (
	// ErrFormat means the raw token could not be converted to the target type.
	ErrFormat = errors.New("format error")
	// ErrRange means the converted value lies outside the declared bounds.
	ErrRange = errors.New("range error")
	// ErrArity means a composite token did not split into the expected number of components.
	ErrArity = errors.New("arity error")
	// ErrMissing means a non-optional parameter was absent from the query string.
	ErrMissing = errors.New("missing parameter")
	// ErrUnknown means a strict schema received a parameter it does not declare.
	ErrUnknown = errors.New("unknown parameter")
)

// MsgNotANumber is the reason reported when a scalar token is not numeric.
const MsgNotANumber = "value is not a number."

// ValidationError is a flat, user-facing description of why a query
// parameter failed to decode. Reason is rendered to the client as is.
type ValidationError struct {
	Field  string
	Reason string
	kind   error
}

// NewValidationError creates a ValidationError of the given kind.
func NewValidationError(kind error, reason string) ValidationError {
	return ValidationError{Reason: reason, kind: kind}
}

// Error returns the reason only; the field name is carried separately.
func (e ValidationError) Error() string {
	return e.Reason
}

func (e ValidationError) Unwrap() error {
	return e.kind
}

// Kind returns the sentinel this error wraps, or nil.
func (e ValidationError) Kind() error {
	return e.kind
}

// KindName returns a short label for the error kind, suitable for metrics.
func (e ValidationError) KindName() string {
	switch e.kind {
	case ErrFormat:
		return "format"
	case ErrRange:
		return "range"
	case ErrArity:
		return "arity"
	case ErrMissing:
		return "missing"
	case ErrUnknown:
		return "unknown"
	default:
		return "other"
	}
}

// WithField returns a copy of e bound to the named parameter.
// An already bound field is kept.
func (e ValidationError) WithField(name string) ValidationError {
	if e.Field == "" {
		e.Field = name
	}
	return e
}

// AsValidationError extracts a ValidationError from err's chain.
func AsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return ValidationError{}, false
}

// toValidationError normalizes any parser error into a ValidationError.
// Parsers written outside this package may return plain errors; those are
// treated as format failures.
func toValidationError(err error, field string) ValidationError {
	if ve, ok := AsValidationError(err); ok {
		return ve.WithField(field)
	}
	return NewValidationError(ErrFormat, err.Error()).WithField(field)
}

func missing(key string) ValidationError {
	return NewValidationError(ErrMissing, fmt.Sprintf("missing required parameter %q", key)).WithField(key)
}

func unknown(key string) ValidationError {
	return NewValidationError(ErrUnknown, fmt.Sprintf("unexpected parameter %q", key)).WithField(key)
}
