package query

// Result holds the outcome of decoding one deferred field: either a value
// or the error that prevented it. The zero Result is unset; the binder
// always stores a set Result.
type Result[T any] struct {
	value T
	err   error
	set   bool
}

// Ok wraps a successfully decoded value.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v, set: true}
}

// Fail wraps a decode failure. A nil err yields an unset Result.
func Fail[T any](err error) Result[T] {
	if err == nil {
		return Result[T]{}
	}
	return Result[T]{err: err, set: true}
}

// IsOk reports whether the field decoded successfully.
func (r Result[T]) IsOk() bool {
	return r.set && r.err == nil
}

// IsSet reports whether the binder populated this Result.
func (r Result[T]) IsSet() bool {
	return r.set
}

// Value returns the decoded value, or the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the decode failure, or nil.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and the failure together.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}
