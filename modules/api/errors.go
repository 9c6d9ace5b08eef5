package api

import "errors"

// ErrUnknownErrorFormat is returned by ParseErrorFormat for unsupported values.
var ErrUnknownErrorFormat = errors.New("unknown error format")
