package shape

import "sort"

// Literal is a nested initializer for an array or slice. It is either a leaf
// holding one element value, or a sequence of entries. Entries are positional
// or keyed: a keyed entry sets its position explicitly and the positional
// entries after it continue from the key plus one, as in a Go composite
// literal such as [5]int{1, 3: 4, 5}.
type Literal[V any] struct {
	value V
	leaf  bool
	elems []Elem[V]
}

// Elem is one entry of a sequence literal.
type Elem[V any] struct {
	Key   int
	Keyed bool
	Value Literal[V]
}

// Leaf returns a literal holding a single element value.
func Leaf[V any](v V) Literal[V] {
	return Literal[V]{value: v, leaf: true}
}

// Seq returns a dense sequence of nested literals.
func Seq[V any](items ...Literal[V]) Literal[V] {
	elems := make([]Elem[V], len(items))
	for i, item := range items {
		elems[i] = Elem[V]{Value: item}
	}
	return Literal[V]{elems: elems}
}

// Values returns a dense sequence of leaves.
func Values[V any](values ...V) Literal[V] {
	elems := make([]Elem[V], len(values))
	for i, v := range values {
		elems[i] = Elem[V]{Value: Leaf(v)}
	}
	return Literal[V]{elems: elems}
}

// Sparse returns a sequence where every entry is keyed by its index.
func Sparse[V any](entries map[int]Literal[V]) Literal[V] {
	keys := make([]int, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	elems := make([]Elem[V], len(keys))
	for i, k := range keys {
		elems[i] = Elem[V]{Key: k, Keyed: true, Value: entries[k]}
	}
	return Literal[V]{elems: elems}
}

// SparseValues returns a sequence of leaves keyed by index.
func SparseValues[V any](entries map[int]V) Literal[V] {
	lits := make(map[int]Literal[V], len(entries))
	for k, v := range entries {
		lits[k] = Leaf(v)
	}
	return Sparse(lits)
}

// Entries returns a sequence built from explicit positional and keyed
// entries, kept in the given order.
func Entries[V any](elems ...Elem[V]) Literal[V] {
	return Literal[V]{elems: elems}
}

// At returns a keyed entry.
func At[V any](key int, value Literal[V]) Elem[V] {
	return Elem[V]{Key: key, Keyed: true, Value: value}
}

// Next returns a positional entry.
func Next[V any](value Literal[V]) Elem[V] {
	return Elem[V]{Value: value}
}

// IsLeaf reports whether the literal holds a single element value.
func (l Literal[V]) IsLeaf() bool {
	return l.leaf
}

// Value returns the element value of a leaf.
func (l Literal[V]) Value() V {
	return l.value
}

// Elems returns the entries of a sequence literal.
func (l Literal[V]) Elems() []Elem[V] {
	return l.elems
}

// Positions returns the resolved position of every entry.
func (l Literal[V]) Positions() []int {
	positions := make([]int, len(l.elems))
	next := 0
	for i, e := range l.elems {
		if e.Keyed {
			next = e.Key
		}
		positions[i] = next
		next++
	}
	return positions
}

// Len returns the length of the sequence: one more than the highest resolved
// position. Leaves have length 0.
func (l Literal[V]) Len() int {
	n := 0
	for _, pos := range l.Positions() {
		if pos+1 > n {
			n = pos + 1
		}
	}
	return n
}

// IsDense reports whether the literal and all nested literals contain only
// positional entries.
func (l Literal[V]) IsDense() bool {
	for _, e := range l.elems {
		if e.Keyed || !e.Value.IsDense() {
			return false
		}
	}
	return true
}

// Infer returns the dimension vector of a literal by following the first
// entry at each level. The literal is assumed to be rectangular; Flatten and
// Merge report literals that are not.
func Infer[V any](l Literal[V]) Dims {
	dims := Dims{}
	cur := l
	for !cur.leaf {
		dims = append(dims, cur.Len())
		if len(cur.elems) == 0 {
			break
		}
		cur = cur.elems[0].Value
	}
	return dims
}
