package query

// Parser converts one raw query value into T.
// Implementations must be pure: the same input always yields the same outcome.
type Parser[T any] interface {
	Parse(raw string) (T, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc[T any] func(raw string) (T, error)

func (f ParserFunc[T]) Parse(raw string) (T, error) {
	return f(raw)
}

// Map derives a parser for U by converting the output of p.
// Failures of p pass through untouched.
func Map[T, U any](p Parser[T], convert func(T) U) Parser[U] {
	return ParserFunc[U](func(raw string) (U, error) {
		v, err := p.Parse(raw)
		if err != nil {
			var zero U
			return zero, err
		}
		return convert(v), nil
	})
}
