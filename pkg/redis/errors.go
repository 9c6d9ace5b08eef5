package redis

import "errors"

var (
	// ErrEmptyURL is returned by Connect when Config.ConnectionURL is blank.
	ErrEmptyURL = errors.New("redis: connection url is empty")
	// ErrInvalidURL wraps the parse error of a malformed connection url.
	ErrInvalidURL = errors.New("redis: invalid connection url")
	// ErrNotReady is returned when no ping succeeded within the retry budget.
	ErrNotReady = errors.New("redis: server not ready")
	// ErrUnhealthy is returned by the readiness check when ping fails.
	ErrUnhealthy = errors.New("redis: ping failed")
)
