package observable

import "weak"

type detacher interface {
	remove(id uint64)
	contains(id uint64) bool
}

// weakRegistry lets a Subscription reach its registry without keeping it
// alive.
type weakRegistry[T any] struct {
	pointer weak.Pointer[registry[T]]
}

func (w weakRegistry[T]) remove(id uint64) {
	if r := w.pointer.Value(); r != nil {
		r.remove(id)
	}
}

func (w weakRegistry[T]) contains(id uint64) bool {
	if r := w.pointer.Value(); r != nil {
		return r.contains(id)
	}
	return false
}

// Subscription is the capability to cancel one subscriber. The zero value
// is an inert subscription.
type Subscription struct {
	id       uint64
	registry detacher
}

func newSubscription[T any](r *registry[T], id uint64) Subscription {
	return Subscription{
		id:       id,
		registry: weakRegistry[T]{pointer: weak.Make(r)},
	}
}

// ID returns the subscriber id, unique within its stream.
func (s Subscription) ID() uint64 {
	return s.id
}

// Unsubscribe stops delivery to the subscriber. It may be called any
// number of times, including from inside a callback of the same stream.
func (s Subscription) Unsubscribe() {
	if s.registry == nil {
		return
	}
	s.registry.remove(s.id)
}

// Close implements io.Closer.
func (s Subscription) Close() error {
	s.Unsubscribe()
	return nil
}

// Active reports whether the subscriber is still registered.
func (s Subscription) Active() bool {
	if s.registry == nil {
		return false
	}
	return s.registry.contains(s.id)
}
