package composite

import (
	"cmp"
	"slices"
)

var _ Value = (*Map[string, int])(nil)

// Keyed is implemented by values that can be indexed by a key of type K.
// Map.Lookup descends through intermediate values that implement it.
type Keyed[K comparable] interface {
	LookupKey(key K) (any, bool)
}

// Map is a keyed container with a fixed zero value for absent keys.
//
// The backing map is shared with whoever supplied it: entries added or
// removed through either side are visible through the other.
type Map[K comparable, V any] struct {
	items map[K]V
	zero  V
}

// NewMap returns a map value over items. A nil items map is replaced with an
// empty one.
func NewMap[K comparable, V any](zero V, items map[K]V) *Map[K, V] {
	if items == nil {
		items = map[K]V{}
	}
	return &Map[K, V]{items: items, zero: zero}
}

// Kind returns MapKind.
func (m *Map[K, V]) Kind() Kind {
	return MapKind
}

// Zero returns the value reported for absent keys.
func (m *Map[K, V]) Zero() V {
	return m.zero
}

// Items returns the live backing map.
func (m *Map[K, V]) Items() map[K]V {
	return m.items
}

// Get returns the value stored under key, or the zero value and false.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.items[key]
	if !ok {
		return m.zero, false
	}
	return v, true
}

// LookupKey implements Keyed.
func (m *Map[K, V]) LookupKey(key K) (any, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Lookup follows path through nested maps, one key per level. It stops at
// the first level where the key is missing or the value cannot be indexed,
// returning the zero value and false. The value reached at the end of the
// path must be a V to count as found.
func (m *Map[K, V]) Lookup(path ...K) (V, bool) {
	if len(path) == 0 {
		return m.zero, false
	}
	var cur Keyed[K] = m
	for i, key := range path {
		v, ok := cur.LookupKey(key)
		if !ok {
			return m.zero, false
		}
		if i == len(path)-1 {
			out, ok := v.(V)
			if !ok {
				return m.zero, false
			}
			return out, true
		}
		next, ok := v.(Keyed[K])
		if !ok {
			return m.zero, false
		}
		cur = next
	}
	return m.zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.items[key]
	return ok
}

// Size returns the number of top-level entries.
func (m *Map[K, V]) Size() int {
	return len(m.items)
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	m.items[key] = value
}

// Delete removes key. Deleting an absent key is a no-op.
func (m *Map[K, V]) Delete(key K) {
	delete(m.items, key)
}

// Keys returns the keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K cmp.Ordered, V any](m *Map[K, V]) []K {
	keys := m.Keys()
	slices.Sort(keys)
	return keys
}
