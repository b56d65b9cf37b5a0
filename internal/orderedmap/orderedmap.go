// Package orderedmap implements the insertion-ordered name->value map
// the document model uses for an element's attribute set: O(1) lookup,
// serialization in insertion order, and last-write-wins overwrite of an
// existing key rather than a duplicate error.
package orderedmap

import "iter"

// Map is an insertion-ordered map from K to V.
type Map[K comparable, V any] struct {
	order []K
	vals  map[K]V
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{vals: make(map[K]V)}
}

// Set inserts key/value, or overwrites the value in place if key is
// already present (the element's attribute-set semantics: "duplicate
// names overwrite, not an error").
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.vals[key]; !exists {
		m.order = append(m.order, key)
	}
	m.vals[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Delete removes key, if present.
func (m *Map[K, V]) Delete(key K) {
	if _, exists := m.vals[key]; !exists {
		return
	}
	delete(m.vals, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.order) }

// Range iterates entries in insertion order.
func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}
