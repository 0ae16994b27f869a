package composite

import "github.com/gofrs/uuid"

// Store is a backing buffer shared by an array and every slice built over
// it. Views hold a pointer to the store plus their own bounds; the store is
// released when the last view referencing it is collected.
type Store[V any] struct {
	id    uuid.UUID
	elems []V
}

func newStore[V any](elems []V) *Store[V] {
	return &Store[V]{id: uuid.Must(uuid.NewV4()), elems: elems}
}

// ID returns the handle of the store. Two views alias each other's elements
// only if their stores have the same ID.
func (s *Store[V]) ID() uuid.UUID {
	return s.id
}

// Len returns the number of elements held by the store.
func (s *Store[V]) Len() int {
	return len(s.elems)
}
