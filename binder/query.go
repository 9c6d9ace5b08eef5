package binder

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/geoquery/pkg/query"
)

// Query creates a query parameter binder for a declared schema.
//
// The raw query string is decoded with schema and the result is stored in
// v, which must be a *S. Decode failures are returned joined with
// ErrFailedToParseQuery; the underlying query.ValidationError stays
// reachable through errors.As.
//
// Example:
//
//	type SearchRequest struct {
//		Term string
//		Page int
//	}
//
//	var searchSchema = query.NewSchema(
//		query.Strict("q", query.Text(), func(r *SearchRequest, v string) { r.Term = v }),
//		query.Optional("page", query.Int(1, 1000), func(r *SearchRequest, v int) { r.Page = v }),
//	)
//
//	http.HandleFunc("/search", handler.Wrap(search,
//		handler.WithBinder[handler.Context, SearchRequest](binder.Query(searchSchema)),
//	))
func Query[S any](schema query.Schema[S]) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		dst, ok := v.(*S)
		if !ok || dst == nil {
			return fmt.Errorf("%w: target must be a non-nil %T, got %T", ErrInvalidTarget, dst, v)
		}

		out, err := schema.DecodeString(r.URL.RawQuery)
		if err != nil {
			return errors.Join(ErrFailedToParseQuery, err)
		}

		*dst = out
		return nil
	}
}
