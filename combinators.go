package promise

import (
	stderrors "errors"
	"fmt"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/saltfishpr/promise/result"
)

// Combinators are package functions rather than methods because Go methods
// cannot introduce type parameters. Each one allocates a derived promise,
// subscribes it to the sources and hands it to the caller; the derived
// promise inherits the scheduler handle of the first source.

// Map returns a promise that resolves to success with fn applied to the
// source value, or to the source failure untouched. fn is never called on
// failure.
func Map[T, R any](p *Promise[T], fn func(T) R) *Promise[R] {
	derived := NewWith[R](p.sched)
	p.OnResult(func(res result.Result[T]) {
		derived.Resolve(result.MapResult(res, fn))
	})
	return derived
}

// ChainMap returns a promise implementing sequential composition: on source
// success it calls fn with the value and forwards the eventual outcome of
// the returned promise; on source failure it short-circuits, propagating the
// failure without calling fn.
func ChainMap[T, R any](p *Promise[T], fn func(T) *Promise[R]) *Promise[R] {
	derived := NewWith[R](p.sched)
	p.OnResult(func(res result.Result[T]) {
		if err := res.Err(); err != nil {
			derived.Fail(err)
			return
		}
		fn(res.Value()).OnResult(func(inner result.Result[R]) {
			derived.Resolve(inner)
		})
	})
	return derived
}

// All returns a promise that resolves to success with the values of every
// source, in argument order regardless of resolution order, once all
// sources succeed. It resolves to the first failure as soon as any source
// fails, without waiting for the rest. With no sources it resolves
// immediately to an empty slice.
func All[T any](ps ...*Promise[T]) *Promise[[]T] {
	if len(ps) == 0 {
		return ReadyOk([]T{})
	}

	derived := NewWith[[]T](ps[0].sched)
	values := make([]T, len(ps))
	remaining := int32(len(ps))
	for i, p := range ps {
		i := i
		p.OnResult(func(res result.Result[T]) {
			if err := res.Err(); err != nil {
				derived.Fail(err)
				return
			}
			values[i] = res.Value()
			if atomic.AddInt32(&remaining, -1) == 0 {
				derived.Ok(values)
			}
		})
	}
	return derived
}

// Any returns a promise that resolves with whatever outcome the first
// source to resolve produces, success or failure. Later settlements are
// absorbed by the resolve-once rule. With no sources it resolves
// immediately to a failure wrapping ErrNoneSucceeded.
func Any[T any](ps ...*Promise[T]) *Promise[T] {
	if len(ps) == 0 {
		return ReadyFail[T](errors.WithMessage(ErrNoneSucceeded, "no promises given"))
	}

	derived := NewWith[T](ps[0].sched)
	for _, p := range ps {
		p.OnResult(func(res result.Result[T]) {
			derived.Resolve(res)
		})
	}
	return derived
}

// AnySuccess returns a promise that resolves with the first successful
// outcome among the sources. Individual failures are ignored until a
// success arrives; when every source has failed the promise resolves to a
// failure wrapping ErrNoneSucceeded together with each source error, so it
// can never stay pending forever once the sources settle. With no sources
// it fails immediately the same way.
func AnySuccess[T any](ps ...*Promise[T]) *Promise[T] {
	if len(ps) == 0 {
		return ReadyFail[T](errors.WithMessage(ErrNoneSucceeded, "no promises given"))
	}

	derived := NewWith[T](ps[0].sched)
	errs := make([]error, len(ps))
	remaining := int32(len(ps))
	for i, p := range ps {
		i := i
		p.OnResult(func(res result.Result[T]) {
			if res.IsSuccess() {
				derived.Resolve(res)
				return
			}
			errs[i] = res.Err()
			if atomic.AddInt32(&remaining, -1) == 0 {
				derived.Fail(fmt.Errorf("%w: %w", ErrNoneSucceeded, stderrors.Join(errs...)))
			}
		})
	}
	return derived
}
