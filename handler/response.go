package handler

import "net/http"

type textResponse struct {
	status int
	body   string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", ContentTypeText)
	w.WriteHeader(t.status)
	_, err := w.Write([]byte(t.body))
	return err
}

// TextOption configures a text response.
type TextOption func(*textResponse)

// WithTextStatus sets a custom HTTP status code.
func WithTextStatus(status int) TextOption {
	return func(t *textResponse) {
		t.status = status
	}
}

// Text creates a plain text response, 200 OK by default.
func Text(body string, opts ...TextOption) Response {
	t := &textResponse{status: http.StatusOK, body: body}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return e.err
}

// Error hands err to the error handler configured in Wrap, which selects
// the responder and renders it. Use it to fail a request on a deferred
// field:
//
//	if !req.Age.IsOk() {
//		return handler.Error(req.Age.Err())
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrNilResponse
	}
	return errorResponse{err: err}
}

type renderedError struct {
	err error
	rs  Responder
}

func (e renderedError) Render(w http.ResponseWriter, r *http.Request) error {
	return Render(w, e.rs.Render(e.err))
}

// ErrorWith renders err with rs directly, bypassing the error handler.
func ErrorWith(err error, rs Responder) Response {
	if rs == nil {
		rs = TextResponder{}
	}
	return renderedError{err: err, rs: rs}
}
