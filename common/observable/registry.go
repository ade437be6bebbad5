package observable

import (
	"sync"

	list "github.com/bahlo/generic-list-go"
	"go.uber.org/atomic"
)

type record[T any] struct {
	id       uint64
	callback func(T)
	active   atomic.Bool
}

// registry keeps the subscriber records of one logical stream in
// subscribe order. It is shared by pointer between every Subject copy and
// every Observable of that stream.
type registry[T any] struct {
	list   list.List[*record[T]]
	index  map[uint64]*list.Element[*record[T]]
	nextID uint64
	mutex  sync.RWMutex

	// watch, when set, is told the record count after every change
	watch func(n int)
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{
		index: map[uint64]*list.Element[*record[T]]{},
	}
}

func (r *registry[T]) add(callback func(T)) uint64 {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// ids start at 1 and are never handed out twice
	r.nextID++
	rec := &record[T]{id: r.nextID, callback: callback}
	rec.active.Store(true)
	r.index[rec.id] = r.list.PushBack(rec)
	r.notify()
	return rec.id
}

func (r *registry[T]) remove(id uint64) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	element, exist := r.index[id]
	if !exist {
		return
	}
	element.Value.active.Store(false)
	r.list.Remove(element)
	delete(r.index, id)
	r.notify()
}

func (r *registry[T]) notify() {
	if r.watch != nil {
		r.watch(r.list.Len())
	}
}

func (r *registry[T]) contains(id uint64) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, exist := r.index[id]
	return exist
}

func (r *registry[T]) len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return r.list.Len()
}

func (r *registry[T]) snapshot() []*record[T] {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	records := make([]*record[T], 0, r.list.Len())
	for element := r.list.Front(); element != nil; element = element.Next() {
		records = append(records, element.Value)
	}
	return records
}

// broadcast calls every record registered when it starts, in subscribe
// order. The lock is released before any callback runs, so callbacks may
// subscribe, unsubscribe or emit again. A record removed while the
// broadcast is in progress is skipped if it has not been reached yet.
func (r *registry[T]) broadcast(value T) {
	for _, rec := range r.snapshot() {
		if !rec.active.Load() {
			continue
		}
		rec.callback(value)
	}
}
