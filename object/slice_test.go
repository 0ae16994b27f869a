package object

import (
	"testing"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestSliceAliasesArray(t *testing.T) {
	arr := g(t, "MkArray", Dims(5), NewInt(0), ints(1, 2, 3, 4, 5)).(*Array)
	s := g(t, "SliceFrom", arr, NewInt(1), NewInt(4)).(*Slice)

	assert.Nil(t, s.SetItem(NewInt(0), NewInt(20)))
	assert.Equal(t, arr.Inspect(), "[1, 20, 3, 4, 5]")

	assert.Nil(t, arr.SetItem(NewInt(3), NewInt(40)))
	assert.Equal(t, call(t, s, "get").Inspect(), "[20, 3, 40]")

	// The list returned by get writes through as well.
	view := call(t, s, "get").(*List)
	assert.Nil(t, view.SetItem(NewInt(1), NewInt(30)))
	assert.Equal(t, arr.Inspect(), "[1, 20, 30, 40, 5]")
}

func TestSliceSet(t *testing.T) {
	arr := g(t, "MkArray", Dims(5), NewInt(0), ints(1, 2, 3, 4, 5)).(*Array)
	s := g(t, "NilSlice").(*Slice)

	result := call(t, s, "set", arr, NewInt(2), NewInt(5))
	assert.True(t, result == Object(s))
	assert.Equal(t, call(t, s, "is_nil"), Object(False))
	assert.Equal(t, call(t, s, "get").Inspect(), "[3, 4, 5]")
	assert.Equal(t, call(t, s, "cap"), Object(NewInt(3)))

	other := g(t, "NilSlice").(*Slice)
	call(t, other, "set", s, NewInt(1), NewInt(2))
	assert.Equal(t, call(t, other, "get").Inspect(), "[4]")
	assert.Nil(t, other.SetItem(NewInt(0), NewInt(44)))
	assert.Equal(t, arr.Inspect(), "[1, 2, 3, 44, 5]")

	_, err := callErr(s, "set", arr, NewInt(3), NewInt(2))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.OutOfRange)

	_, err = callErr(s, "set", NewInt(1), NewInt(0), NewInt(0))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.InvalidType)
}

func TestSliceAppend(t *testing.T) {
	s := g(t, "MkSlice", NewInt(0), NewInt(1), NewInt(3)).(*Slice)

	grown := call(t, s, "append", NewInt(7)).(*Slice)
	assert.Equal(t, call(t, grown, "get").Inspect(), "[0, 7]")
	assert.Equal(t, call(t, s, "len"), Object(NewInt(1)))
	// Within capacity both headers share the store.
	assert.Nil(t, grown.SetItem(NewInt(0), NewInt(5)))
	assert.Equal(t, call(t, s, "get").Inspect(), "[5]")

	moved := call(t, grown, "append", NewInt(8), NewInt(9)).(*Slice)
	assert.Equal(t, call(t, moved, "get").Inspect(), "[5, 7, 8, 9]")
	assert.Equal(t, call(t, moved, "cap"), Object(NewInt(6)))
	assert.Nil(t, moved.SetItem(NewInt(0), NewInt(1)))
	assert.Equal(t, call(t, s, "get").Inspect(), "[5]")

	fromNil := call(t, g(t, "NilSlice"), "append", NewString("a")).(*Slice)
	assert.Equal(t, call(t, fromNil, "is_nil"), Object(False))
	assert.Equal(t, fromNil.Inspect(), `slice(["a"])`)
}

func TestSliceEquals(t *testing.T) {
	a := g(t, "NilSlice")
	b := g(t, "NilSlice")
	assert.True(t, a.Equals(b))

	arr := g(t, "MkArray", Dims(3), NewInt(0))
	s1 := g(t, "SliceFrom", arr, NewInt(0), NewInt(2))
	s2 := g(t, "SliceFrom", arr, NewInt(0), NewInt(2))
	s3 := g(t, "SliceFrom", arr, NewInt(0), NewInt(1))
	assert.True(t, s1.Equals(s2))
	assert.False(t, s1.Equals(s3))
	assert.False(t, s1.Equals(g(t, "Slice", NewInt(0), ints(0, 0))))
}

func TestSliceItemsOutOfRange(t *testing.T) {
	s := g(t, "MkSlice", NewInt(0), NewInt(2), NewInt(4)).(*Slice)
	_, errObj := s.GetItem(NewInt(2))
	assert.NotNil(t, errObj)
	assert.Equal(t, errObj.Kind(), errors.OutOfRange)

	item, errObj := s.GetItem(NewInt(-1))
	assert.Nil(t, errObj)
	assert.Equal(t, item, Object(NewInt(0)))
}

func TestSliceInspectAndInterface(t *testing.T) {
	nilSlice := g(t, "NilSlice")
	assert.Equal(t, nilSlice.Inspect(), "slice(nil)")
	assert.Nil(t, nilSlice.Interface())
	assert.False(t, nilSlice.IsTruthy())

	s := g(t, "Slice", NewInt(0), ints(1, 2))
	assert.Equal(t, s.Inspect(), "slice([1, 2])")
	assert.Equal(t, s.Interface(), []interface{}{int64(1), int64(2)})
	assert.Equal(t, call(t, s, "kind"), Object(NewInt(3)))
}
