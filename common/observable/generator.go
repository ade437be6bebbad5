package observable

import "slices"

// Generator produces the values pulled by Subject.Next. Next returns
// ErrStreamExhausted once no further value can be produced.
//
// Clone must return a generator with its own state: advancing the clone
// must not advance the original and the other way round.
type Generator[T any] interface {
	Next() (T, error)
	Clone() Generator[T]
}

// GeneratorFunc adapts a function to a Generator. The function is shared
// between clones, so it should not carry state of its own.
type GeneratorFunc[T any] func() (T, error)

func (f GeneratorFunc[T]) Next() (T, error) {
	return f()
}

func (f GeneratorFunc[T]) Clone() Generator[T] {
	return f
}

// Infinite adapts a producer that never runs dry.
func Infinite[T any](produce func() T) Generator[T] {
	return GeneratorFunc[T](func() (T, error) {
		return produce(), nil
	})
}

// SliceGenerator yields the items of a slice it owns.
type SliceGenerator[T any] struct {
	items  []T
	cursor int
}

// NewSliceGenerator copies items, later changes to the argument are not
// observed.
func NewSliceGenerator[T any](items []T) *SliceGenerator[T] {
	return &SliceGenerator[T]{items: slices.Clone(items)}
}

func (g *SliceGenerator[T]) Next() (T, error) {
	if g.cursor >= len(g.items) {
		var zero T
		return zero, ErrStreamExhausted
	}
	item := g.items[g.cursor]
	g.cursor++
	return item, nil
}

func (g *SliceGenerator[T]) Clone() Generator[T] {
	return &SliceGenerator[T]{
		items:  slices.Clone(g.items),
		cursor: g.cursor,
	}
}

// Remaining returns how many items are left.
func (g *SliceGenerator[T]) Remaining() int {
	return len(g.items) - g.cursor
}
