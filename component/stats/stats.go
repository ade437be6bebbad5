// Package stats counts the values seen on a stream.
package stats

import (
	"slices"
	"sync"

	"github.com/Cmiroslaf/BEFA-Library/common/observable"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is the count of one key.
type Entry[K comparable] struct {
	Key   K   `json:"key" yaml:"key" msgpack:"key"`
	Count int `json:"count" yaml:"count" msgpack:"count"`
}

// Counter counts occurrences of keys and remembers the order in which
// each key was first seen.
type Counter[K comparable] struct {
	counts *orderedmap.OrderedMap[K, int]
	total  int
	mux    sync.RWMutex
}

func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{
		counts: orderedmap.New[K, int](),
	}
}

func (c *Counter[K]) Add(key K) {
	c.mux.Lock()
	defer c.mux.Unlock()

	count, _ := c.counts.Get(key)
	c.counts.Set(key, count+1)
	c.total++
}

// Attach counts every value of o until the subscription is cancelled.
func (c *Counter[K]) Attach(o observable.Observable[K]) observable.Subscription {
	return o.Subscribe(c.Add)
}

func (c *Counter[K]) Count(key K) int {
	c.mux.RLock()
	defer c.mux.RUnlock()

	count, _ := c.counts.Get(key)
	return count
}

// Total returns the number of Add calls.
func (c *Counter[K]) Total() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.total
}

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int {
	c.mux.RLock()
	defer c.mux.RUnlock()
	return c.counts.Len()
}

// Entries returns the counts in first-seen order.
func (c *Counter[K]) Entries() []Entry[K] {
	c.mux.RLock()
	defer c.mux.RUnlock()

	entries := make([]Entry[K], 0, c.counts.Len())
	for pair := c.counts.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry[K]{Key: pair.Key, Count: pair.Value})
	}
	return entries
}

// Top returns up to n entries with the highest counts. Ties keep
// first-seen order.
func (c *Counter[K]) Top(n int) []Entry[K] {
	entries := c.Entries()
	slices.SortStableFunc(entries, func(a, b Entry[K]) int {
		return b.Count - a.Count
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

func (c *Counter[K]) Reset() {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.counts = orderedmap.New[K, int]()
	c.total = 0
}
