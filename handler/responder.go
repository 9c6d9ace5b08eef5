package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/munnerz/goautoneg"

	"github.com/dmitrymomot/geoquery/pkg/query"
)

// Content types produced by the built-in responders.
const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
)

// Rendering is an error rendered into an HTTP response.
// Err is set when the responder could not produce the intended body; it
// wraps ErrEncoding and the response then carries status 500.
type Rendering struct {
	Status      int
	ContentType string
	Body        []byte
	Err         error
}

// Responder renders an error into a response. Implementations must be
// pure: they only describe the response, Render writes it.
type Responder interface {
	Render(err error) Rendering
}

// ResponderFunc adapts an ordinary function to the Responder interface.
type ResponderFunc func(err error) Rendering

func (f ResponderFunc) Render(err error) Rendering {
	return f(err)
}

// ResponderProvider is implemented by errors that declare how they are rendered.
type ResponderProvider interface {
	Responder() Responder
}

// ResponderFor returns the responder declared by err, if any error in its
// chain implements ResponderProvider, and fallback otherwise.
func ResponderFor(err error, fallback Responder) Responder {
	var p ResponderProvider
	if errors.As(err, &p) {
		if rs := p.Responder(); rs != nil {
			return rs
		}
	}
	return fallback
}

// WithResponder binds a rendering strategy to err.
// The returned error unwraps to err.
func WithResponder(err error, rs Responder) error {
	if err == nil {
		return nil
	}
	return &boundError{err: err, rs: rs}
}

type boundError struct {
	err error
	rs  Responder
}

func (e *boundError) Error() string        { return e.err.Error() }
func (e *boundError) Unwrap() error        { return e.err }
func (e *boundError) Responder() Responder { return e.rs }

// TextResponder renders "msg: <reason>" as plain text.
type TextResponder struct{}

func (TextResponder) Render(err error) Rendering {
	status, reason := describe(err)
	return Rendering{
		Status:      status,
		ContentType: ContentTypeText,
		Body:        []byte("msg: " + reason),
	}
}

// JSONResponder renders {"message": "<reason>"} as JSON.
// Marshal defaults to json.Marshal; a failing Marshal yields a 500.
type JSONResponder struct {
	Marshal func(v any) ([]byte, error)
}

type errorBody struct {
	Message string `json:"message"`
}

func (j JSONResponder) Render(err error) Rendering {
	marshal := j.Marshal
	if marshal == nil {
		marshal = json.Marshal
	}

	status, reason := describe(err)
	body, encErr := marshal(errorBody{Message: reason})
	if encErr != nil {
		return Rendering{
			Status:      http.StatusInternalServerError,
			ContentType: ContentTypeText,
			Body:        []byte(http.StatusText(http.StatusInternalServerError)),
			Err:         errors.Join(ErrEncoding, encErr),
		}
	}

	return Rendering{
		Status:      status,
		ContentType: ContentTypeJSON,
		Body:        body,
	}
}

var negotiable = []string{"application/json", "text/plain"}

// Negotiate picks a responder from the request's Accept header: JSON when
// application/json is preferred, plain text when text/plain is preferred,
// fallback when the header is absent, a bare wildcard, or names neither.
func Negotiate(r *http.Request, fallback Responder) Responder {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return fallback
	}
	if specs := goautoneg.ParseAccept(accept); len(specs) == 0 || (specs[0].Type == "*" && specs[0].SubType == "*") {
		return fallback
	}

	switch goautoneg.Negotiate(accept, negotiable) {
	case "application/json":
		return JSONResponder{}
	case "text/plain":
		return TextResponder{}
	default:
		return fallback
	}
}

// Render writes a rendering to w.
func Render(w http.ResponseWriter, rd Rendering) error {
	w.Header().Set("Content-Type", rd.ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(rd.Status)
	_, err := w.Write(rd.Body)
	return err
}

// describe maps an error to its status and client-facing reason.
// Only validation failures expose their message.
func describe(err error) (int, string) {
	if ve, ok := query.AsValidationError(err); ok {
		return http.StatusBadRequest, ve.Reason
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
