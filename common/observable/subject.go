package observable

import (
	"errors"
	"fmt"
	"sync"
)

// Subject is a mutable emitter. Every value passed to Update, or produced
// by the generator on Next, is delivered synchronously to the current
// subscribers before the call returns.
//
// The subscriber registry is shared between a Subject, its clones and all
// Observables derived from it. The value slot and the generator belong to
// one Subject only. No lock is held while subscribers run, so callbacks may
// emit on the same subject again.
type Subject[T any] struct {
	value     T
	present   bool
	generator Generator[T]
	registry  *registry[T]
	mux       sync.Mutex
}

// NewSubject returns a subject holding initial.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		value:    initial,
		present:  true,
		registry: newRegistry[T](),
	}
}

// NewEmptySubject returns a subject with no value and no generator.
func NewEmptySubject[T any]() *Subject[T] {
	return &Subject[T]{registry: newRegistry[T]()}
}

// NewSubjectWithGenerator returns a subject that pulls values from
// generator on every Next.
func NewSubjectWithGenerator[T any](generator Generator[T]) *Subject[T] {
	return &Subject[T]{
		generator: generator,
		registry:  newRegistry[T](),
	}
}

// Update stores value and broadcasts it.
func (s *Subject[T]) Update(value T) {
	s.mux.Lock()
	s.value = value
	s.present = true
	s.mux.Unlock()

	s.registry.broadcast(value)
}

// Next pulls one value from the generator and broadcasts it. When the
// generator is exhausted the returned error matches ErrStreamExhausted and
// nothing is broadcast.
func (s *Subject[T]) Next() error {
	s.mux.Lock()
	generator := s.generator
	s.mux.Unlock()
	if generator == nil {
		return ErrNoGenerator
	}

	// the lock is released so the generator may read the subject
	value, err := generator.Next()

	if err != nil {
		if errors.Is(err, ErrStreamExhausted) {
			return err
		}
		return fmt.Errorf("generator: %w", err)
	}

	s.Update(value)
	return nil
}

// Value returns the last stored value and whether there is one.
func (s *Subject[T]) Value() (T, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.value, s.present
}

// HasGenerator reports whether Next can be called.
func (s *Subject[T]) HasGenerator() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.generator != nil
}

// Subscribe registers callback for every future value. The current value is
// not replayed.
func (s *Subject[T]) Subscribe(callback func(T)) Subscription {
	return s.AsObservable().Subscribe(callback)
}

func (s *Subject[T]) AsObservable() Observable[T] {
	return Observable[T]{registry: s.registry}
}

// Clone returns a copy with its own value slot and its own generator
// state. Subscribers are shared: values emitted through either subject
// reach all of them.
func (s *Subject[T]) Clone() *Subject[T] {
	s.mux.Lock()
	defer s.mux.Unlock()

	clone := &Subject[T]{
		value:    s.value,
		present:  s.present,
		registry: s.registry,
	}
	if s.generator != nil {
		clone.generator = s.generator.Clone()
	}
	return clone
}

// Move hands the value slot and the generator over to a new subject that
// shares the subscribers. s is left without a value and without a
// generator.
func (s *Subject[T]) Move() *Subject[T] {
	s.mux.Lock()
	defer s.mux.Unlock()

	moved := &Subject[T]{
		value:     s.value,
		present:   s.present,
		generator: s.generator,
		registry:  s.registry,
	}

	var zero T
	s.value = zero
	s.present = false
	s.generator = nil
	return moved
}
