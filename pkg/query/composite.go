package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Separator splits the components of a composite value.
const Separator = ","

// Composite returns a parser for a value made of exactly n comma-separated
// numbers, such as "12.5,45.0". The parsed components are handed to build
// in order.
//
// Wrong arity fails with ErrArity. A non-numeric component fails with
// ErrFormat, and so do NaN and infinities; both report msg as the reason. Arity is checked before any
// component is parsed, and build is never called on failure.
//
// Composite panics if n < 1 or build is nil.
func Composite[T any](n int, msg string, build func(components []float64) T) Parser[T] {
	if n < 1 {
		panic(fmt.Sprintf("query.Composite: component count must be positive, got %d", n))
	}
	if build == nil {
		panic("query.Composite: nil build function")
	}

	return ParserFunc[T](func(raw string) (T, error) {
		var zero T

		tokens := strings.Split(raw, Separator)
		if len(tokens) != n {
			return zero, NewValidationError(ErrArity, msg)
		}

		components := make([]float64, n)
		for i, tok := range tokens {
			f, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return zero, NewValidationError(ErrFormat, msg)
			}
			components[i] = f
		}

		return build(components), nil
	})
}
