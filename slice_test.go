package composite

import (
	"testing"

	"github.com/deepnoodle-ai/wonton/assert"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/shape"
)

func TestNilSlice(t *testing.T) {
	s := NilSlice[int]()
	assert.True(t, s.IsNil())
	assert.Equal(t, s.Len(), 0)
	assert.Equal(t, s.Cap(), 0)
	assert.Equal(t, s.State(), NilState)
	assert.True(t, s.Get() == nil)
	assert.Equal(t, s.Str(), "")

	empty, err := SliceOf(0, shape.Values[int]())
	assert.Nil(t, err)
	assert.False(t, empty.IsNil())
	assert.Equal(t, empty.Len(), 0)
	assert.True(t, empty.Get() != nil)
}

func TestMakeSlice(t *testing.T) {
	s, err := MakeSlice(0, 3)
	assert.Nil(t, err)
	assert.Equal(t, s.Get(), []int{0, 0, 0})
	assert.Equal(t, s.Len(), 3)
	assert.Equal(t, s.Cap(), 3)
	assert.Equal(t, s.State(), Owning)

	s, err = MakeSlice(0, 3, 5)
	assert.Nil(t, err)
	assert.Equal(t, s.Get(), []int{0, 0, 0})
	assert.Equal(t, s.Cap(), 5)
	assert.Equal(t, s.Store().Len(), 5)
}

func TestMakeSliceErrors(t *testing.T) {
	_, err := MakeSlice(0, -1)
	assert.True(t, errors.Is(err, errors.OutOfRange))
	_, err = MakeSlice(0, 3, 2)
	assert.True(t, errors.Is(err, errors.OutOfRange))
	_, err = MakeSlice(0, 1, 1<<40)
	assert.True(t, errors.Is(err, errors.OutOfRange))
	_, err = MakeSlice(0, 1<<40)
	assert.True(t, errors.Is(err, errors.OutOfRange))
}

func TestSliceOfSparse(t *testing.T) {
	s, err := SliceOf(0, shape.SparseValues(map[int]int{2: 7, 5: 1}))
	assert.Nil(t, err)
	assert.Equal(t, s.Get(), []int{0, 0, 7, 0, 0, 1})
	assert.Equal(t, s.Cap(), 6)

	_, err = SliceOf(0, shape.Leaf(1))
	assert.True(t, errors.Is(err, errors.InvalidShape))

	_, err = SliceOf(0, shape.SparseValues(map[int]int{1 << 40: 1}))
	assert.True(t, errors.Is(err, errors.InvalidShape))
}

func TestSliceStr(t *testing.T) {
	s := SliceValues("h", "e", "y")
	assert.Equal(t, s.Str(), "hey")
	assert.Equal(t, s.Kind(), SliceKind)
}

func TestSliceFrom(t *testing.T) {
	a, err := ArrayOf(shape.Of(5), 0, shape.Values(1, 2, 3, 4, 5))
	assert.Nil(t, err)
	s, err := SliceFrom(a, 1, 3)
	assert.Nil(t, err)
	assert.Equal(t, s.Get(), []int{2, 3})
	assert.Equal(t, s.Len(), 2)
	assert.Equal(t, s.Cap(), 4)
	assert.Equal(t, s.State(), Windowed)
	assert.Equal(t, s.Array(), a)
}

func TestSliceFromMultiDimensional(t *testing.T) {
	a, err := NewArray(shape.Of(2, 2), 0)
	assert.Nil(t, err)
	_, err = SliceFrom(a, 0, 1)
	assert.True(t, errors.Is(err, errors.InvalidShape))
}

func TestSliceBounds(t *testing.T) {
	a, _ := NewArray(shape.Of(4), 0)
	for _, b := range [][2]int{{-1, 2}, {3, 2}, {0, 5}} {
		_, err := SliceFrom(a, b[0], b[1])
		assert.True(t, errors.Is(err, errors.OutOfRange))
	}
	s, err := SliceFrom(a, 4, 4)
	assert.Nil(t, err)
	assert.Equal(t, s.Len(), 0)
	assert.Equal(t, s.Cap(), 0)
}

func TestResliceLaw(t *testing.T) {
	a, err := ArrayOf(shape.Of(6), 0, shape.Values(0, 1, 2, 3, 4, 5))
	assert.Nil(t, err)
	for low := 0; low <= 6; low++ {
		for high := low; high <= 6; high++ {
			s, err := SliceFrom(a, low, high)
			assert.Nil(t, err)
			assert.Equal(t, s.Len(), high-low)
			assert.Equal(t, s.Cap(), a.Len()-low)
			assert.Equal(t, s.Low(), low)
			assert.Equal(t, s.High(), high)
		}
	}
}

func TestAliasingLaw(t *testing.T) {
	a, err := NewArray(shape.Of(5), 0)
	assert.Nil(t, err)
	s1, err := SliceFrom(a, 0, 3)
	assert.Nil(t, err)
	s2, err := SliceFrom(a, 2, 5)
	assert.Nil(t, err)

	s1.Get()[2] = 42
	assert.Equal(t, s2.Get()[0], 42)
	v, _ := a.At(2)
	assert.Equal(t, v, 42)

	assert.Nil(t, s2.Put(1, 7))
	assert.Equal(t, a.Elems(), []int{0, 0, 42, 7, 0})
	assert.Equal(t, s1.Store().ID(), s2.Store().ID())
}

func TestSetFromSliceSharesStore(t *testing.T) {
	src := SliceValues(1, 2, 3, 4)
	var s Slice[int]
	assert.Nil(t, s.Set(src, 1, 3))
	assert.Equal(t, s.Get(), []int{2, 3})
	assert.Equal(t, s.Cap(), 3)
	assert.Equal(t, s.State(), Owning)

	assert.Nil(t, s.Put(0, 20))
	assert.Equal(t, src.Get(), []int{1, 20, 3, 4})

	// Bounds are relative to the source window, up to its capacity.
	var t2 Slice[int]
	assert.Nil(t, t2.Set(&s, 1, 3))
	assert.Equal(t, t2.Get(), []int{3, 4})
	assert.Equal(t, t2.Cap(), 2)
}

func TestSetFromWindowStaysWindowed(t *testing.T) {
	a, _ := ArrayOf(shape.Of(4), 0, shape.Values(1, 2, 3, 4))
	w, err := SliceFrom(a, 1, 2)
	assert.Nil(t, err)
	r, err := w.Reslice(0, 3)
	assert.Nil(t, err)
	assert.Equal(t, r.State(), Windowed)
	assert.Equal(t, r.Get(), []int{2, 3, 4})
	assert.Equal(t, w.Len(), 1)
}

func TestSetOverwritesBounds(t *testing.T) {
	a, _ := ArrayOf(shape.Of(4), 0, shape.Values(1, 2, 3, 4))
	s := SliceValues(9, 9)
	assert.Nil(t, s.Set(a, 2, 4))
	assert.Equal(t, s.Get(), []int{3, 4})
	assert.Equal(t, s.State(), Windowed)
	assert.Equal(t, s.Cap(), 2)
}

func TestResliceNil(t *testing.T) {
	r, err := NilSlice[int]().Reslice(0, 0)
	assert.Nil(t, err)
	assert.True(t, r.IsNil())
	_, err = NilSlice[int]().Reslice(0, 1)
	assert.True(t, errors.Is(err, errors.OutOfRange))
}

func TestSliceAtPut(t *testing.T) {
	s := SliceValues(1, 2)
	v, err := s.At(1)
	assert.Nil(t, err)
	assert.Equal(t, v, 2)
	_, err = s.At(2)
	assert.True(t, errors.Is(err, errors.OutOfRange))
	assert.True(t, errors.Is(s.Put(-1, 0), errors.OutOfRange))
}

func TestAppendWithinCapacity(t *testing.T) {
	s, _ := MakeSlice(0, 1, 4)
	t2 := s.Append(5, 6)
	assert.Equal(t, t2.Get(), []int{0, 5, 6})
	assert.Equal(t, t2.Cap(), 4)
	assert.Equal(t, t2.Store().ID(), s.Store().ID())
	assert.Equal(t, s.Len(), 1)
}

func TestAppendGrows(t *testing.T) {
	s := SliceValues(1, 2)
	t2 := s.Append(3)
	assert.Equal(t, t2.Get(), []int{1, 2, 3})
	assert.Equal(t, t2.Cap(), 4)
	assert.NotEqual(t, t2.Store().ID(), s.Store().ID())

	n := NilSlice[int]().Append(1)
	assert.False(t, n.IsNil())
	assert.Equal(t, n.Get(), []int{1})
}

func TestAppendToWindowWritesArray(t *testing.T) {
	a, _ := ArrayOf(shape.Of(3), 0, shape.Values(1, 2, 3))
	w, _ := SliceFrom(a, 0, 1)
	w.Append(9)
	assert.Equal(t, a.Elems(), []int{1, 9, 3})
}

func TestCopy(t *testing.T) {
	dst, _ := MakeSlice(0, 2)
	n := Copy(dst, SliceValues(7, 8, 9))
	assert.Equal(t, n, 2)
	assert.Equal(t, dst.Get(), []int{7, 8})
	assert.Equal(t, Copy(dst, NilSlice[int]()), 0)
}
