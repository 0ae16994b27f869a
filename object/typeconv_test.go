package object

import (
	"testing"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/shape"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestAsInt(t *testing.T) {
	v, err := AsInt(NewInt(3))
	assert.Nil(t, err)
	assert.Equal(t, v, int64(3))

	v, err = AsInt(NewFloat(4))
	assert.Nil(t, err)
	assert.Equal(t, v, int64(4))

	_, err = AsInt(NewFloat(4.5))
	assert.NotNil(t, err)

	_, err = AsInt(NewString("4"))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.InvalidType)
}

func TestAsScalars(t *testing.T) {
	b, err := AsBool(True)
	assert.Nil(t, err)
	assert.True(t, b)

	s, err := AsString(NewString("x"))
	assert.Nil(t, err)
	assert.Equal(t, s, "x")

	f, err := AsFloat(NewInt(2))
	assert.Nil(t, err)
	assert.Equal(t, f, 2.0)

	_, err = AsBool(NewInt(1))
	assert.NotNil(t, err)
	_, err = AsFloat(Nil)
	assert.NotNil(t, err)
}

func TestAsContainers(t *testing.T) {
	_, err := AsList(NewInt(1))
	assert.NotNil(t, err)
	_, err = AsMap(NewList(nil))
	assert.NotNil(t, err)
	_, err = AsArray(NewList(nil))
	assert.NotNil(t, err)
	_, err = AsSlice(NewList(nil))
	assert.NotNil(t, err)
	_, err = AsModule(NewList(nil))
	assert.NotNil(t, err)

	m, err := AsModule(Runtime())
	assert.Nil(t, err)
	assert.Equal(t, m.Name().Value(), "g")
}

func TestAsDims(t *testing.T) {
	dims, err := AsDims(Dims(2, 4))
	assert.Nil(t, err)
	assert.Equal(t, dims, shape.Of(2, 4))

	_, err = AsDims(Dims(2, -4))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.InvalidShape)

	_, err = AsDims(NewList([]Object{NewString("2")}))
	assert.NotNil(t, err)
	assert.Equal(t, errors.KindOf(err), errors.InvalidType)
}

func TestFromGoScalars(t *testing.T) {
	tests := []struct {
		input any
		want  Object
	}{
		{nil, Nil},
		{true, True},
		{7, NewInt(7)},
		{int64(8), NewInt(8)},
		{int32(9), NewInt(9)},
		{uint8(10), NewInt(10)},
		{1.5, NewFloat(1.5)},
		{float32(0.5), NewFloat(0.5)},
		{"s", NewString("s")},
	}
	for _, tt := range tests {
		got, err := FromGo(tt.input)
		assert.Nil(t, err)
		assert.True(t, tt.want.Equals(got), "input: %v", tt.input)
	}
}

func TestFromGoContainers(t *testing.T) {
	got, err := FromGo([]any{1, "a", []int{2, 3}})
	assert.Nil(t, err)
	assert.Equal(t, got.Inspect(), `[1, "a", [2, 3]]`)

	got, err = FromGo(map[int]any{0: "x", 3: "y"})
	assert.Nil(t, err)
	sparse, ok := got.(*Sparse)
	assert.True(t, ok)
	assert.Equal(t, sparse.Keys(), []int64{0, 3})

	got, err = FromGo(map[string]any{"name": "Sam", "age": 84})
	assert.Nil(t, err)
	m, ok := got.(*Map)
	assert.True(t, ok)
	assert.Equal(t, m.Inspect(), `{"age": 84, "name": "Sam"}`)

	got, err = FromGo(map[string]any{})
	assert.Nil(t, err)
	_, ok = got.(*Map)
	assert.True(t, ok)

	_, err = FromGo(struct{}{})
	assert.NotNil(t, err)

	_, err = FromGo(map[any]any{[2]int{1, 2}: 1})
	assert.NotNil(t, err)
}

func TestMapFromGoIntKeys(t *testing.T) {
	m, err := MapFromGo(map[any]any{1: map[any]any{2: "x"}, 3: "y"})
	assert.Nil(t, err)
	assert.Equal(t, m.Len(), NewInt(2))

	value, found, err := m.Lookup(NewInt(1), NewInt(2))
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, value, Object(NewString("x")))

	value, found, err = m.Lookup(NewInt(3))
	assert.Nil(t, err)
	assert.True(t, found)
	assert.Equal(t, value, Object(NewString("y")))

	_, err = MapFromGo([]any{1})
	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, errors.InvalidType))
}

func TestFromGoPassesObjects(t *testing.T) {
	list := NewList(nil)
	got, err := FromGo(list)
	assert.Nil(t, err)
	assert.True(t, got == Object(list))
}
