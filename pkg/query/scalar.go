package query

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/geoquery/pkg/validator"
)

// Signed is the set of integer types Int can produce.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Real is the set of floating-point types Float can produce.
type Real interface {
	~float32 | ~float64
}

// Int returns a parser for a base-10 integer in the closed interval [min, max].
//
// A token that is not an integer fails with ErrFormat and MsgNotANumber.
// An integer outside the interval fails with ErrRange and the message
// "must be between {min} and {max}.", including integers too large for T.
//
// Int panics if min > max.
func Int[T Signed](min, max T) Parser[T] {
	if min > max {
		panic(fmt.Sprintf("query.Int: min %v is greater than max %v", min, max))
	}

	return ParserFunc[T](func(raw string) (T, error) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, rangeError(min, max)
			}
			return 0, NewValidationError(ErrFormat, MsgNotANumber)
		}

		v := T(n)
		if int64(v) != n {
			return 0, rangeError(min, max)
		}

		return checkBounds(v, min, max)
	})
}

// Float returns a parser for a decimal number in the closed interval [min, max].
// NaN is rejected as not a number; infinities fail the range check.
//
// Float panics if min > max.
func Float[T Real](min, max T) Parser[T] {
	if min > max {
		panic(fmt.Sprintf("query.Float: min %v is greater than max %v", min, max))
	}

	return ParserFunc[T](func(raw string) (T, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, NewValidationError(ErrFormat, MsgNotANumber)
		}
		if math.IsNaN(f) {
			return 0, NewValidationError(ErrFormat, MsgNotANumber)
		}

		return checkBounds(T(f), min, max)
	})
}

// Text returns a parser that accepts any value verbatim.
func Text() Parser[string] {
	return ParserFunc[string](func(raw string) (string, error) {
		return raw, nil
	})
}

func checkBounds[T validator.Numeric](v, min, max T) (T, error) {
	if err := validator.Apply(validator.Between("", v, min, max)); err != nil {
		var zero T
		return zero, NewValidationError(ErrRange, validator.ExtractValidationErrors(err).First())
	}
	return v, nil
}

func rangeError[T validator.Numeric](min, max T) ValidationError {
	return NewValidationError(ErrRange, validator.Between("", min, min, max).Error.Message)
}
