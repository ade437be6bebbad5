package observable

import (
	"weak"

	"go.uber.org/atomic"
)

// Operator receives every upstream value and may emit any number of
// downstream values through emit.
type Operator[T, R any] func(value T, emit func(R))

// stage links an upstream record to the registry of a derived stream. The
// upstream holds the registry only weakly, and strongly while it has
// subscribers.
type stage[R any] struct {
	registry weak.Pointer[registry[R]]
	pinned   atomic.Pointer[registry[R]]
}

// Lift returns a stream fed by op from source. The stream lives as long as
// the returned Observable, or anything derived from it, is reachable or
// while it has subscribers. Once released, the forwarding record removes
// itself from source on the next upstream value.
func Lift[T, R any](source Observable[T], op Operator[T, R]) Observable[R] {
	downstream := newRegistry[R]()
	link := &stage[R]{registry: weak.Make(downstream)}
	downstream.watch = func(n int) {
		if n > 0 {
			link.pinned.Store(downstream)
		} else {
			link.pinned.Store(nil)
		}
	}

	var upstream Subscription
	upstream = source.Subscribe(func(value T) {
		r := link.registry.Value()
		if r == nil {
			upstream.Unsubscribe()
			return
		}
		op(value, r.broadcast)
	})
	return Observable[R]{registry: downstream}
}

// Map returns a stream of mapper(v) for every value v of source.
func Map[T, R any](source Observable[T], mapper func(T) R) Observable[R] {
	return Lift(source, func(value T, emit func(R)) {
		emit(mapper(value))
	})
}

// Filter returns a stream of the values of source for which predicate
// holds.
func Filter[T any](source Observable[T], predicate func(T) bool) Observable[T] {
	return Lift(source, func(value T, emit func(T)) {
		if predicate(value) {
			emit(value)
		}
	})
}

func (o Observable[T]) Filter(predicate func(T) bool) Observable[T] {
	return Filter(o, predicate)
}

func (o Observable[T]) Map(mapper func(T) T) Observable[T] {
	return Map(o, mapper)
}
