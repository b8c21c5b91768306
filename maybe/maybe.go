/*
Package maybe provides an option type for values which may be absent.

A Maybe is the result channel for structural matching: a failed match is a
normal outcome, not an error, and is represented as Nothing.
*/
package maybe

// Maybe holds either a value of type T or nothing at all.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsNothing is true for absent values.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Unwrap returns the contained value together with a presence flag.
// For Nothing the value is the zero value of T.
func (m Maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the contained value, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value and leaves Nothing untouched.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value inside x, possibly changing its type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}
