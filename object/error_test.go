package object

import (
	stderrors "errors"
	"testing"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestErrorEquals(t *testing.T) {
	e := NewError(stderrors.New("a"))
	other1 := NewError(stderrors.New("a"))
	other2 := NewError(stderrors.New("b"))

	assert.Equal(t, e.Message().Value(), "a")
	assert.True(t, e.Equals(other1))
	assert.False(t, e.Equals(other2))
	assert.Equal(t, e.Inspect(), `error("a")`)
}

func TestErrorKindAndCode(t *testing.T) {
	e := IndexErrorf("index %d out of range", 5)
	assert.Equal(t, e.Kind(), errors.OutOfRange)
	assert.Equal(t, e.Code(), errors.E3003)

	kind, ok := e.GetAttr("kind")
	assert.True(t, ok)
	assert.Equal(t, kind, Object(NewString("index error")))

	code, ok := e.GetAttr("code")
	assert.True(t, ok)
	assert.Equal(t, code, Object(NewString("E3003")))

	message, ok := e.GetAttr("message")
	assert.True(t, ok)
	assert.Equal(t, message, Object(NewString("index error: index 5 out of range")))

	plain := NewError(stderrors.New("boom"))
	assert.Equal(t, plain.Kind(), errors.Unknown)
	assert.Equal(t, plain.Code(), errors.ErrorCode(""))
}

func TestErrorUnwrap(t *testing.T) {
	e := ShapeErrorf("bad")
	var shapeErr *errors.ShapeError
	assert.True(t, stderrors.As(e, &shapeErr))

	// Wrapping an *Error does not nest.
	wrapped := NewError(e)
	assert.True(t, wrapped.Unwrap() == e.Unwrap())
	assert.Equal(t, errors.KindOf(wrapped), errors.InvalidShape)
}

func TestErrorfFormatsObjects(t *testing.T) {
	e := Errorf("got %v and %d", NewString("x"), NewInt(3))
	assert.Equal(t, e.Error(), "got x and 3")
	assert.True(t, IsError(e))
	assert.False(t, IsError(Nil))
	assert.False(t, IsError(nil))
}
