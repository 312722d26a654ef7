// Package store is the in-memory backing for the memory repositories. Items
// keep their insertion order, which is the baseline for featured listings.
package store

import "sync"

type Collection[T any] struct {
	mu    sync.RWMutex
	id    func(T) string
	items []T
	index map[string]int
}

func NewCollection[T any](id func(T) string, items ...T) *Collection[T] {
	c := &Collection[T]{id: id, index: make(map[string]int, len(items))}
	for _, it := range items {
		c.put(it)
	}
	return c
}

// All returns a snapshot copy in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Put inserts or replaces by id. Replacing keeps the existing position.
func (c *Collection[T]) Put(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.put(item)
}

func (c *Collection[T]) put(item T) {
	id := c.id(item)
	if i, ok := c.index[id]; ok {
		c.items[i] = item
		return
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, item)
}

// Update applies fn to the stored item under the write lock. It reports false for unknown ids.
func (c *Collection[T]) Update(id string, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.index[id]
	if !ok {
		return false
	}
	fn(&c.items[i])
	return true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
