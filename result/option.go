package result

import "fmt"

// Option holds a value that may be absent. The zero value is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option carrying val.
func Some[T any](val T) Option[T] {
	return Option[T]{value: val, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf builds an Option from a conventional (value, ok) pair.
func OptionOf[T any](val T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(val)
}

// IsPresent returns true if the Option carries a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// Get returns the carried value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the carried value, or def when absent.
func (o Option[T]) OrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// IfPresent calls fn with the carried value if present.
func (o Option[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
