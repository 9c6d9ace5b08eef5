package query

import (
	"net/url"
	"slices"
)

// Field declares how one part of S is bound from a query string.
// Create fields with Deferred, Strict, Optional or Nested.
type Field[S any] struct {
	keys []string
	bind func(dst *S, values url.Values) error
}

// Deferred binds key with the deferred-failure policy: the parse outcome
// is stored in S as a Result and a parse failure never aborts the decode.
// A missing key still fails the decode with ErrMissing.
func Deferred[S, T any](key string, p Parser[T], set func(dst *S, r Result[T])) Field[S] {
	return Field[S]{
		keys: []string{key},
		bind: func(dst *S, values url.Values) error {
			raw, ok := lookup(values, key)
			if !ok {
				return missing(key)
			}

			v, err := p.Parse(raw)
			if err != nil {
				set(dst, Fail[T](toValidationError(err, key)))
				return nil
			}
			set(dst, Ok(v))
			return nil
		},
	}
}

// Strict binds key with the fail-fast policy: a missing key or a parse
// failure aborts the decode of the enclosing schema.
func Strict[S, T any](key string, p Parser[T], set func(dst *S, v T)) Field[S] {
	return Field[S]{
		keys: []string{key},
		bind: func(dst *S, values url.Values) error {
			raw, ok := lookup(values, key)
			if !ok {
				return missing(key)
			}
			return assign(dst, key, raw, p, set)
		},
	}
}

// Optional is Strict for a key that may be absent. An absent key leaves
// the target untouched; a present but invalid value still aborts the decode.
func Optional[S, T any](key string, p Parser[T], set func(dst *S, v T)) Field[S] {
	return Field[S]{
		keys: []string{key},
		bind: func(dst *S, values url.Values) error {
			raw, ok := lookup(values, key)
			if !ok {
				return nil
			}
			return assign(dst, key, raw, p, set)
		},
	}
}

// Nested binds a whole sub-schema fail-fast. The first failure inside sub
// aborts the enclosing decode and no partially decoded N is stored.
func Nested[S, N any](sub Schema[N], set func(dst *S, v N)) Field[S] {
	return Field[S]{
		keys: sub.Keys(),
		bind: func(dst *S, values url.Values) error {
			v, err := sub.decodeFields(values)
			if err != nil {
				return err
			}
			set(dst, v)
			return nil
		},
	}
}

func assign[S, T any](dst *S, key, raw string, p Parser[T], set func(*S, T)) error {
	v, err := p.Parse(raw)
	if err != nil {
		return toValidationError(err, key)
	}
	set(dst, v)
	return nil
}

// lookup returns the first value of key. Repeated keys beyond the first are ignored.
func lookup(values url.Values, key string) (string, bool) {
	vs, ok := values[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// Schema is an explicit descriptor of the query parameters that make up S.
// Fields are bound in declaration order. A Schema is immutable and safe
// for concurrent use.
type Schema[S any] struct {
	fields  []Field[S]
	lenient bool
}

// NewSchema creates a strict schema: parameters not declared by any field
// fail the decode with ErrUnknown.
func NewSchema[S any](fields ...Field[S]) Schema[S] {
	return Schema[S]{fields: slices.Clone(fields)}
}

// Lenient returns a copy of the schema that ignores undeclared parameters.
func (s Schema[S]) Lenient() Schema[S] {
	s.fields = slices.Clone(s.fields)
	s.lenient = true
	return s
}

// Keys returns the declared parameter names in declaration order.
func (s Schema[S]) Keys() []string {
	var keys []string
	for _, f := range s.fields {
		keys = append(keys, f.keys...)
	}
	return keys
}

// Decode binds values onto a new S.
//
// The returned error, if any, is a ValidationError describing the first
// failure in declaration order; S is then the zero value. Failures of
// deferred fields are not errors: they are stored in S.
func (s Schema[S]) Decode(values url.Values) (S, error) {
	out, err := s.decodeFields(values)
	if err != nil {
		var zero S
		return zero, err
	}

	if !s.lenient {
		declared := s.Keys()
		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		slices.Sort(names)

		for _, name := range names {
			if !slices.Contains(declared, name) {
				var zero S
				return zero, unknown(name)
			}
		}
	}

	return out, nil
}

// DecodeString parses a raw, URL-encoded query string and decodes it.
// A malformed query string fails with ErrFormat.
func (s Schema[S]) DecodeString(rawQuery string) (S, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		var zero S
		return zero, NewValidationError(ErrFormat, "malformed query string")
	}
	return s.Decode(values)
}

func (s Schema[S]) decodeFields(values url.Values) (S, error) {
	var out S
	for _, f := range s.fields {
		if err := f.bind(&out, values); err != nil {
			var zero S
			return zero, err
		}
	}
	return out, nil
}
