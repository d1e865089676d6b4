// Package store provides an ordered keyed collection.
//
// Records are addressed by key and iterated in insertion order. Replacing an
// existing key keeps its position. All methods are safe for concurrent use.
package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrNotFound is returned when a key is not in the store.
var ErrNotFound = errors.New("not found")

// Ordered maps keys to values and remembers insertion order.
type Ordered[K comparable, V any] struct {
	mu    sync.RWMutex
	keys  []K
	items map[K]V
}

// New creates an empty store.
func New[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{items: make(map[K]V)}
}

// Put inserts v under k, or replaces the existing value in place.
// It reports whether k was newly inserted.
func (s *Ordered[K, V]) Put(k K, v V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.items[k]
	s.items[k] = v
	if !exists {
		s.keys = append(s.keys, k)
	}
	return !exists
}

// Get returns the value stored under k.
func (s *Ordered[K, V]) Get(k K) (V, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[k]
	if !ok {
		var zero V
		return zero, fmt.Errorf("key %v: %w", k, ErrNotFound)
	}
	return v, nil
}

// Has reports whether k is present.
func (s *Ordered[K, V]) Has(k K) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[k]
	return ok
}

// Delete removes k.
func (s *Ordered[K, V]) Delete(k K) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[k]; !ok {
		return fmt.Errorf("key %v: %w", k, ErrNotFound)
	}
	delete(s.items, k)
	if i := slices.Index(s.keys, k); i >= 0 {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	return nil
}

// Len returns the number of records.
func (s *Ordered[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// Keys returns a copy of the keys in insertion order.
func (s *Ordered[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.keys)
}

// Values returns the values in insertion order.
func (s *Ordered[K, V]) Values() []V {
	return s.Filter(nil)
}

// Filter returns the values accepted by keep, in insertion order.
// A nil keep accepts everything.
func (s *Ordered[K, V]) Filter(keep func(V) bool) []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]V, 0, len(s.keys))
	for _, k := range s.keys {
		v := s.items[k]
		if keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Update applies fn to the value under k and stores the result.
func (s *Ordered[K, V]) Update(k K, fn func(V) V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[k]
	if !ok {
		return fmt.Errorf("key %v: %w", k, ErrNotFound)
	}
	s.items[k] = fn(v)
	return nil
}

// Page returns the 1-based page of items and the total number of pages.
// Out-of-range pages are clamped to the first or last page.
func Page[V any](items []V, page, perPage int) ([]V, int) {
	if perPage <= 0 || len(items) == 0 {
		return []V{}, 0
	}
	total := (len(items) + perPage - 1) / perPage
	page = min(max(page, 1), total)
	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	return items[start:end], total
}
