// Package result provides the payload types carried by resolved promises:
// a two-variant Result (success with a value, or failure with an error) and
// an Option (a value that may be absent).
package result

import "fmt"

// Result holds either a value or an error, never both. The zero value is a
// success carrying the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result carrying val.
func Ok[T any](val T) Result[T] {
	return Result[T]{value: val}
}

// Fail returns a failed Result carrying err. A nil err produces a success.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of builds a Result from a conventional (value, error) pair.
func Of[T any](val T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(val)
}

// IsSuccess returns true if the Result carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure returns true if the Result carries an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value returns the carried value, or the zero value of T on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the carried error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unpack returns the Result as a conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.value, r.err
}

// OnSuccess calls fn with the carried value if the Result is a success.
// It returns the receiver so calls can be chained.
func (r Result[T]) OnSuccess(fn func(T)) Result[T] {
	if r.err == nil {
		fn(r.value)
	}
	return r
}

// OnFailure calls fn with the carried error if the Result is a failure.
// It returns the receiver so calls can be chained.
func (r Result[T]) OnFailure(fn func(error)) Result[T] {
	if r.err != nil {
		fn(r.err)
	}
	return r
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}

// MapResult transforms the value of a successful Result with fn. A failed
// Result is returned unchanged and fn is not called.
func MapResult[T, R any](r Result[T], fn func(T) R) Result[R] {
	if r.err != nil {
		return Fail[R](r.err)
	}
	return Ok(fn(r.value))
}
