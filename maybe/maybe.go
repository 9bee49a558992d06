/*
Package maybe provides an option type in the tradition of Elm's and Haskell's
`Maybe`. A Maybe either carries a value of type T (“Just”) or it carries
nothing (“Nothing”). It is useful wherever the zero value of T is a legal
value and therefore cannot double as an absence marker.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

// Maybe optionally carries a value of type T. The zero value of Maybe[T]
// is Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value into a Maybe.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing creates an empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m carries a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Value unwraps m in Go's comma-ok idiom. For Nothing it returns the zero
// value of T and false.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.tag
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a carried value; Nothing stays Nothing.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map applies f to a carried value, possibly changing the value type;
// Nothing stays Nothing.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains a partial computation onto m.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Value(); ok {
		return f(v)
	}
	return Nothing[S]()
}
