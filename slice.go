package composite

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/shape"
)

var _ Value = (*Slice[int])(nil)

// State describes how a slice holds its elements.
type State int

const (
	// NilState: no backing store; length and capacity are 0.
	NilState State = iota
	// Owning: the slice's store was created for it (or for the slice it
	// was re-sliced from) rather than for an array.
	Owning
	// Windowed: the slice is a window over an array's store.
	Windowed
)

func (s State) String() string {
	switch s {
	case NilState:
		return "nil"
	case Owning:
		return "owning"
	case Windowed:
		return "windowed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Source is anything a slice can be built over: an array or another slice.
type Source[V any] interface {
	backing() (store *Store[V], offset, capacity int, array *Array[V], isNil bool)
}

// Slice is a window over a backing store.
//
// The zero value is not usable; construct slices with NilSlice, MakeSlice,
// SliceOf, SliceValues or SliceFrom.
type Slice[V any] struct {
	store    *Store[V]
	array    *Array[V]
	offset   int
	low      int
	high     int
	length   int
	capacity int
	isNil    bool
}

// NilSlice returns a nil slice: length and capacity 0, distinct from an empty
// slice.
func NilSlice[V any]() *Slice[V] {
	return &Slice[V]{isNil: true}
}

// MakeSlice returns an owning slice holding length copies of zero. The
// capacity defaults to length; a larger capacity reserves zero-filled
// headroom that Append uses before reallocating.
func MakeSlice[V any](zero V, length int, capacity ...int) (*Slice[V], error) {
	c := length
	if len(capacity) > 0 {
		c = capacity[0]
	}
	if length < 0 {
		return nil, errors.IndexErrorf("makeslice: len out of range: %d", length)
	}
	if c < length {
		return nil, errors.IndexErrorf("makeslice: cap out of range: %d < %d", c, length)
	}
	if c > shape.MaxSize {
		return nil, errors.IndexErrorf("makeslice: cap out of range: %d", c)
	}
	return &Slice[V]{
		store:    newStore(shape.Fill(shape.Of(c), zero)),
		high:     length,
		length:   length,
		capacity: c,
	}, nil
}

// SliceOf returns an owning slice built from a one-level literal. Keyed
// entries place their value at the key; positions skipped before a key hold
// zero. An empty literal yields an empty, non-nil slice.
func SliceOf[V any](zero V, lit shape.Literal[V]) (*Slice[V], error) {
	if lit.IsLeaf() {
		return nil, errors.ShapeErrorf("slice literal must be a sequence")
	}
	dims := shape.Of(lit.Len())
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	leaves := shape.Fill(dims, zero)
	if err := shape.Merge(leaves, dims, lit); err != nil {
		return nil, err
	}
	return &Slice[V]{
		store:    newStore(leaves),
		high:     len(leaves),
		length:   len(leaves),
		capacity: len(leaves),
	}, nil
}

// SliceValues returns an owning slice holding a copy of values.
func SliceValues[V any](values ...V) *Slice[V] {
	elems := make([]V, len(values))
	copy(elems, values)
	return &Slice[V]{
		store:    newStore(elems),
		high:     len(elems),
		length:   len(elems),
		capacity: len(elems),
	}
}

// SliceFrom returns a window [low, high) over a one-dimensional array. The
// slice shares the array's store; its capacity runs to the end of the array.
func SliceFrom[V any](a *Array[V], low, high int) (*Slice[V], error) {
	if a.dims.Depth() != 1 {
		return nil, errors.ShapeErrorf("cannot slice an array of shape %s", a.dims)
	}
	s := &Slice[V]{}
	if err := s.Set(a, low, high); err != nil {
		return nil, err
	}
	return s, nil
}

// Set re-slices the receiver over src[low:high], overwriting its bounds.
//
// Over an array the receiver becomes a window with capacity len(array)-low.
// Over another slice it shares that slice's store, and its capacity is the
// source capacity minus low. Re-slicing a nil slice yields a nil slice.
func (s *Slice[V]) Set(src Source[V], low, high int) error {
	store, offset, capacity, array, isNil := src.backing()
	if array != nil && array.dims.Depth() != 1 {
		return errors.ShapeErrorf("cannot slice an array of shape %s", array.dims)
	}
	if low < 0 || high < low || high > capacity {
		return errors.IndexErrorf("slice bounds out of range [%d:%d] with capacity %d",
			low, high, capacity)
	}
	if isNil {
		*s = Slice[V]{isNil: true}
		return nil
	}
	*s = Slice[V]{
		store:    store,
		array:    array,
		offset:   offset + low,
		low:      low,
		high:     high,
		length:   high - low,
		capacity: capacity - low,
	}
	return nil
}

// Reslice returns a new slice over s[low:high], leaving s unchanged.
func (s *Slice[V]) Reslice(low, high int) (*Slice[V], error) {
	out := &Slice[V]{}
	if err := out.Set(s, low, high); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the visible elements. The result aliases the backing store:
// writes through it are seen by every slice and array sharing that store.
// A nil slice returns nil.
func (s *Slice[V]) Get() []V {
	if s.isNil || s.store == nil {
		return nil
	}
	return s.store.elems[s.offset : s.offset+s.length : s.offset+s.capacity]
}

// Str returns the concatenation of the elements' default formats, which is
// how a slice of single characters reads as a string.
func (s *Slice[V]) Str() string {
	var b strings.Builder
	for _, v := range s.Get() {
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// Kind returns SliceKind.
func (s *Slice[V]) Kind() Kind {
	return SliceKind
}

// State returns how the slice holds its elements.
func (s *Slice[V]) State() State {
	switch {
	case s.isNil:
		return NilState
	case s.array != nil:
		return Windowed
	default:
		return Owning
	}
}

// IsNil reports whether s is a nil slice.
func (s *Slice[V]) IsNil() bool {
	return s.isNil
}

// Len returns the number of visible elements.
func (s *Slice[V]) Len() int {
	return s.length
}

// Cap returns the capacity.
func (s *Slice[V]) Cap() int {
	return s.capacity
}

// Offset returns the position of the first visible element in the store.
func (s *Slice[V]) Offset() int {
	return s.offset
}

// Low returns the low bound of the last slicing operation.
func (s *Slice[V]) Low() int {
	return s.low
}

// High returns the high bound of the last slicing operation.
func (s *Slice[V]) High() int {
	return s.high
}

// Array returns the array the slice is a window over, or nil.
func (s *Slice[V]) Array() *Array[V] {
	return s.array
}

// Store returns the backing store, or nil for a nil slice.
func (s *Slice[V]) Store() *Store[V] {
	return s.store
}

// At returns the element at index i.
func (s *Slice[V]) At(i int) (V, error) {
	if i < 0 || i >= s.length {
		var zero V
		return zero, errors.IndexErrorf("index %d out of range [0:%d]", i, s.length)
	}
	return s.store.elems[s.offset+i], nil
}

// Put sets the element at index i.
func (s *Slice[V]) Put(i int, value V) error {
	if i < 0 || i >= s.length {
		return errors.IndexErrorf("index %d out of range [0:%d]", i, s.length)
	}
	s.store.elems[s.offset+i] = value
	return nil
}

// Append returns the slice extended by values, as Go's append does. When the
// capacity suffices the result shares s's store and the values are written
// into its headroom; otherwise the elements move to a new owning store.
func (s *Slice[V]) Append(values ...V) *Slice[V] {
	if len(values) == 0 {
		out := *s
		return &out
	}
	need := s.length + len(values)
	if !s.isNil && need <= s.capacity {
		copy(s.store.elems[s.offset+s.length:], values)
		out := *s
		out.length = need
		out.high = out.low + need
		return &out
	}
	capacity := s.capacity * 2
	if capacity < need {
		capacity = need
	}
	elems := make([]V, capacity)
	copy(elems, s.Get())
	copy(elems[s.length:], values)
	return &Slice[V]{
		store:    newStore(elems),
		high:     need,
		length:   need,
		capacity: capacity,
	}
}

// backing implements Source.
func (s *Slice[V]) backing() (*Store[V], int, int, *Array[V], bool) {
	return s.store, s.offset, s.capacity, s.array, s.isNil
}

// Copy copies elements from src into dst, as Go's copy does, and returns the
// number of elements copied.
func Copy[V any](dst, src *Slice[V]) int {
	return copy(dst.Get(), src.Get())
}
