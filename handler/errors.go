package handler

import "errors"

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrEncoding indicates an error payload could not be serialized
	ErrEncoding = errors.New("failed to encode error response")
)
