package composite

import (
	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/shape"
)

var _ Value = (*Array[int])(nil)

// Array is a fixed-shape container. Its leaves live in a Store in row-major
// order; the shape never changes after construction.
//
// Arrays have value semantics in Go. Assignment is the caller's concern: use
// Copy to obtain an independent array.
type Array[V any] struct {
	store  *Store[V]
	offset int
	dims   shape.Dims
	zero   V
}

// NewArray returns an array of the given shape with every leaf set to zero.
func NewArray[V any](dims shape.Dims, zero V) (*Array[V], error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &Array[V]{
		store: newStore(shape.Fill(dims, zero)),
		dims:  dims.Clone(),
		zero:  zero,
	}, nil
}

// ArrayOf returns an array of the given shape initialized from a literal.
//
// A dense literal that exactly matches dims is used as-is. Any other literal
// (sparse, or with short rows) is merged into a zero-filled array, so leaves
// it does not mention hold zero. Rows longer than the declared length are
// out of range, and an element where a row is expected is a shape error.
func ArrayOf[V any](dims shape.Dims, zero V, lit shape.Literal[V]) (*Array[V], error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if lit.IsDense() && shape.Infer(lit).Equal(dims) {
		if leaves, err := shape.Flatten(dims, lit); err == nil {
			return &Array[V]{store: newStore(leaves), dims: dims.Clone(), zero: zero}, nil
		}
	}
	leaves := shape.Fill(dims, zero)
	if err := shape.Merge(leaves, dims, lit); err != nil {
		return nil, err
	}
	return &Array[V]{store: newStore(leaves), dims: dims.Clone(), zero: zero}, nil
}

// Kind returns ArrayKind.
func (a *Array[V]) Kind() Kind {
	return ArrayKind
}

// Dims returns a copy of the array's dimension vector.
func (a *Array[V]) Dims() shape.Dims {
	return a.dims.Clone()
}

// Zero returns the array's zero value.
func (a *Array[V]) Zero() V {
	return a.zero
}

// Store returns the backing store.
func (a *Array[V]) Store() *Store[V] {
	return a.store
}

// Len returns the length at depth 0, or at the given depth. Depths outside
// the dimension vector have length 0.
func (a *Array[V]) Len(dim ...int) int {
	if len(dim) == 0 {
		return a.dims.At(0)
	}
	return a.dims.At(dim[0])
}

// Cap is identical to Len: arrays never grow.
func (a *Array[V]) Cap(dim ...int) int {
	return a.Len(dim...)
}

// Size returns the number of leaves.
func (a *Array[V]) Size() int {
	return a.dims.Size()
}

// Elems returns the live row-major leaves. Writes through the returned slice
// are visible to every view of the array.
func (a *Array[V]) Elems() []V {
	size := a.dims.Size()
	return a.store.elems[a.offset : a.offset+size : a.offset+size]
}

// At returns the leaf at the given full index.
func (a *Array[V]) At(index ...int) (V, error) {
	off, err := a.leafOffset(index)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.store.elems[off], nil
}

// Put sets the leaf at the given full index.
func (a *Array[V]) Put(value V, index ...int) error {
	off, err := a.leafOffset(index)
	if err != nil {
		return err
	}
	a.store.elems[off] = value
	return nil
}

// Sub returns the sub-array selected by an index prefix. The result shares
// storage with a, as an addressable element of a Go array does.
func (a *Array[V]) Sub(index ...int) (*Array[V], error) {
	off, err := a.dims.Offset(index...)
	if err != nil {
		return nil, err
	}
	return &Array[V]{
		store:  a.store,
		offset: a.offset + off,
		dims:   a.dims[len(index):].Clone(),
		zero:   a.zero,
	}, nil
}

// Literal returns the nested literal view of the array's current contents.
func (a *Array[V]) Literal() shape.Literal[V] {
	return shape.Nest(a.dims, a.Elems())
}

// Copy returns an array with the same shape and contents and its own store.
func (a *Array[V]) Copy() *Array[V] {
	leaves := make([]V, a.dims.Size())
	copy(leaves, a.Elems())
	return &Array[V]{store: newStore(leaves), dims: a.dims.Clone(), zero: a.zero}
}

// EqualFunc reports whether both arrays have the same shape and pairwise
// equal leaves according to eq.
func (a *Array[V]) EqualFunc(other *Array[V], eq func(x, y V) bool) bool {
	if other == nil || !a.dims.Equal(other.dims) {
		return false
	}
	mine, theirs := a.Elems(), other.Elems()
	for i := range mine {
		if !eq(mine[i], theirs[i]) {
			return false
		}
	}
	return true
}

// EqualArrays reports whether two arrays of comparable leaves are deeply
// equal.
func EqualArrays[V comparable](a, b *Array[V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

func (a *Array[V]) leafOffset(index []int) (int, error) {
	if len(index) != len(a.dims) {
		return 0, errors.IndexErrorf("array of shape %s needs %d indices, got %d",
			a.dims, len(a.dims), len(index))
	}
	off, err := a.dims.Offset(index...)
	if err != nil {
		return 0, err
	}
	return a.offset + off, nil
}

// backing implements Source.
func (a *Array[V]) backing() (*Store[V], int, int, *Array[V], bool) {
	return a.store, a.offset, a.Len(), a, false
}
