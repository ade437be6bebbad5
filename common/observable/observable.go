package observable

// Source is anything that can be viewed as an Observable.
type Source[T any] interface {
	AsObservable() Observable[T]
}

// Observable is a read-only view on the subscribers of a stream. It is a
// small value and may be copied freely; copies share the subscribers.
type Observable[T any] struct {
	registry *registry[T]
}

func NewObservable[T any](source Source[T]) Observable[T] {
	return source.AsObservable()
}

func (o Observable[T]) AsObservable() Observable[T] {
	return o
}

// Subscribe registers callback for every future value of the stream.
func (o Observable[T]) Subscribe(callback func(T)) Subscription {
	if o.registry == nil {
		return Subscription{}
	}
	id := o.registry.add(callback)
	return newSubscription(o.registry, id)
}

// Pipe attaches callback for the lifetime of the stream and returns o, so
// that attachments can be chained.
func (o Observable[T]) Pipe(callback func(T)) Observable[T] {
	o.Subscribe(callback)
	return o
}

// Len returns the number of active subscribers.
func (o Observable[T]) Len() int {
	if o.registry == nil {
		return 0
	}
	return o.registry.len()
}
