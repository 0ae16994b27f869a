package object

import (
	"testing"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/shape"
	"github.com/deepnoodle-ai/wonton/assert"
)

func person(name string, age int64) *List {
	return NewList([]Object{NewString(name), NewInt(age)})
}

func TestArrayMaxAge(t *testing.T) {
	arr, err := MakeArray(shape.Of(10), person("", 0), nil)
	assert.Nil(t, err)
	assert.Nil(t, arr.SetItem(NewInt(1), person("Paul", 23)))
	assert.Nil(t, arr.SetItem(NewInt(2), person("Jim", 24)))
	assert.Nil(t, arr.SetItem(NewInt(3), person("Sam", 84)))
	assert.Nil(t, arr.SetItem(NewInt(4), person("Rob", 54)))
	assert.Nil(t, arr.SetItem(NewInt(8), person("Karl", 19)))

	untouched, errObj := arr.GetItem(NewInt(9))
	assert.Nil(t, errObj)
	assert.True(t, untouched.Equals(person("", 0)))

	oldest, errObj := arr.GetItem(NewInt(0))
	assert.Nil(t, errObj)
	for i := int64(1); i < 10; i++ {
		p, errObj := arr.GetItem(NewInt(i))
		assert.Nil(t, errObj)
		age, _ := p.(*List).GetItem(NewInt(1))
		best, _ := oldest.(*List).GetItem(NewInt(1))
		if age.(*Int).Value() > best.(*Int).Value() {
			oldest = p
		}
	}
	name, _ := oldest.(*List).GetItem(NewInt(0))
	assert.Equal(t, name, Object(NewString("Sam")))
}

func TestArrayAtSubArray(t *testing.T) {
	arr, err := MakeArray(shape.Of(2, 3), NewInt(0), NewList([]Object{
		ints(1, 2, 3), ints(4, 5, 6),
	}))
	assert.Nil(t, err)

	row := call(t, arr, "at", NewInt(1)).(*Array)
	assert.Equal(t, row.Inspect(), "[4, 5, 6]")
	assert.Equal(t, call(t, arr, "at", NewInt(1), NewInt(2)), Object(NewInt(6)))

	// Writes through a sub-array are visible in the parent.
	call(t, row, "put", NewInt(60), NewInt(2))
	assert.Equal(t, arr.Inspect(), "[[1, 2, 3], [4, 5, 60]]")

	_, err = callErr(arr, "at", NewInt(2), NewInt(0))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.OutOfRange)
}

func TestArrayGetItemSharesRow(t *testing.T) {
	arr, err := MakeArray(shape.Of(2, 2), NewInt(0), nil)
	assert.Nil(t, err)

	row, errObj := arr.GetItem(NewInt(0))
	assert.Nil(t, errObj)
	assert.Nil(t, row.(*Array).SetItem(NewInt(1), NewInt(9)))
	assert.Equal(t, arr.Inspect(), "[[0, 9], [0, 0]]")
}

func TestArraySetItemRow(t *testing.T) {
	arr, err := MakeArray(shape.Of(2, 3), NewInt(0), nil)
	assert.Nil(t, err)

	src := ints(7, 8)
	assert.Nil(t, arr.SetItem(NewInt(1), src))
	assert.Equal(t, arr.Inspect(), "[[0, 0, 0], [7, 8, 0]]")

	// The row is copied in, not aliased.
	src.SetItem(NewInt(0), NewInt(70))
	assert.Equal(t, arr.Inspect(), "[[0, 0, 0], [7, 8, 0]]")

	errObj := arr.SetItem(NewInt(0), ints(1, 2, 3, 4))
	assert.NotNil(t, errObj)
	assert.Equal(t, errObj.Kind(), errors.OutOfRange)

	errObj = arr.SetItem(NewInt(0), NewInt(1))
	assert.NotNil(t, errObj)
	assert.Equal(t, errObj.Kind(), errors.InvalidType)
}

func TestArrayCopy(t *testing.T) {
	arr, err := MakeArray(shape.Of(3), NewInt(0), ints(1, 2, 3))
	assert.Nil(t, err)

	copied := call(t, arr, "copy").(*Array)
	assert.True(t, copied.Equals(arr))
	assert.Nil(t, copied.SetItem(NewInt(0), NewInt(10)))
	assert.False(t, copied.Equals(arr))
	assert.Equal(t, arr.Inspect(), "[1, 2, 3]")
}

func TestArrayInitializedIdentically(t *testing.T) {
	build := func() *Array {
		people := NewList([]Object{
			person("", 0), person("Paul", 23), person("Jim", 24),
			person("Sam", 84), person("Rob", 54), person("", 0),
			person("", 0), person("", 0), person("Karl", 10), person("", 0),
		})
		arr, err := MakeArray(shape.Of(10), person("", 0), people)
		assert.Nil(t, err)
		return arr
	}
	a, b := build(), build()
	assert.Equal(t, a.Len(), NewInt(10))
	assert.True(t, a.Equals(b))
}

func TestArrayFromArray(t *testing.T) {
	src, err := MakeArray(shape.Of(3), NewInt(0), ints(1, 2, 3))
	assert.Nil(t, err)
	dst, err := MakeArray(shape.Of(3), NewInt(0), src)
	assert.Nil(t, err)
	assert.True(t, dst.Equals(src))

	_, err = MakeArray(shape.Of(3, 1), NewInt(0), src)
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.InvalidShape)
}

func TestArrayFromSlice(t *testing.T) {
	s := g(t, "Slice", NewInt(0), ints(4, 5))
	arr, err := MakeArray(shape.Of(3), NewInt(0), s)
	assert.Nil(t, err)
	assert.Equal(t, arr.Inspect(), "[4, 5, 0]")
}

func TestArrayInterface(t *testing.T) {
	arr, err := MakeArray(shape.Of(2, 2), NewString(""), nil)
	assert.Nil(t, err)
	assert.Equal(t, arr.Interface(), []interface{}{
		[]interface{}{"", ""},
		[]interface{}{"", ""},
	})
	assert.Equal(t, arr.Type(), ARRAY)
	assert.True(t, arr.IsTruthy())
}
