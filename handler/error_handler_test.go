package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/geoquery/handler"
	"github.com/dmitrymomot/geoquery/pkg/logger"
	"github.com/dmitrymomot/geoquery/pkg/query"
)

func runErrorHandler(t *testing.T, cfg handler.ErrorHandlerConfig, err error, accept string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	r := httptest.NewRequest(http.MethodGet, "/hello?age=200", nil)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}
	rec := httptest.NewRecorder()
	handler.NewErrorHandler(log, cfg)(handler.NewContext(rec, r), err)

	var entry map[string]any
	line, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	require.NoError(t, json.Unmarshal(line, &entry))
	return rec, entry
}

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	ageErr := query.NewValidationError(query.ErrRange, "must be between -90 and 90.").WithField("age")

	t.Run("validation error logged as warning", func(t *testing.T) {
		t.Parallel()
		rec, entry := runErrorHandler(t, handler.ErrorHandlerConfig{}, ageErr, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "msg: must be between -90 and 90.", rec.Body.String())
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "age", entry["field"])
		assert.Equal(t, "range", entry["kind"])
		assert.Equal(t, "/hello", entry["path"])
		assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
	})

	t.Run("internal error logged as error", func(t *testing.T) {
		t.Parallel()
		rec, entry := runErrorHandler(t, handler.ErrorHandlerConfig{}, errors.New("boom"), "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "ERROR", entry["level"])
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("configured responder", func(t *testing.T) {
		t.Parallel()
		rec, _ := runErrorHandler(t, handler.ErrorHandlerConfig{Responder: handler.JSONResponder{}}, ageErr, "")
		assert.Equal(t, handler.ContentTypeJSON, rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"message":"must be between -90 and 90."}`, rec.Body.String())
	})

	t.Run("negotiation", func(t *testing.T) {
		t.Parallel()
		rec, _ := runErrorHandler(t, handler.ErrorHandlerConfig{Negotiate: true}, ageErr, "application/json")
		assert.Equal(t, handler.ContentTypeJSON, rec.Header().Get("Content-Type"))

		rec, _ = runErrorHandler(t, handler.ErrorHandlerConfig{Negotiate: true}, ageErr, "")
		assert.Equal(t, handler.ContentTypeText, rec.Header().Get("Content-Type"))
	})

	t.Run("declared responder wins over negotiation", func(t *testing.T) {
		t.Parallel()
		bound := handler.WithResponder(ageErr, handler.TextResponder{})
		rec, _ := runErrorHandler(t, handler.ErrorHandlerConfig{Negotiate: true, Responder: handler.JSONResponder{}}, bound, "application/json")
		assert.Equal(t, "msg: must be between -90 and 90.", rec.Body.String())
	})

	t.Run("on error hook", func(t *testing.T) {
		t.Parallel()
		var (
			gotErr    error
			gotStatus int
		)
		cfg := handler.ErrorHandlerConfig{OnError: func(r *http.Request, err error, status int) {
			gotErr, gotStatus = err, status
		}}
		runErrorHandler(t, cfg, ageErr, "")
		assert.ErrorIs(t, gotErr, query.ErrRange)
		assert.Equal(t, http.StatusBadRequest, gotStatus)
	})

	t.Run("encoding failure", func(t *testing.T) {
		t.Parallel()
		rs := handler.JSONResponder{Marshal: func(any) ([]byte, error) { return nil, errors.New("nope") }}
		rec, _ := runErrorHandler(t, handler.ErrorHandlerConfig{Responder: rs}, ageErr, "")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
