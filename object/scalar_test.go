package object

import (
	"testing"

	"github.com/deepnoodle-ai/composite/op"
	"github.com/deepnoodle-ai/wonton/assert"
)

func TestIntCompare(t *testing.T) {
	one := NewInt(1)
	two := NewInt(2)

	result, err := one.Compare(two)
	assert.Nil(t, err)
	assert.Equal(t, result, -1)

	result, err = two.Compare(one)
	assert.Nil(t, err)
	assert.Equal(t, result, 1)

	result, err = one.Compare(NewFloat(1.0))
	assert.Nil(t, err)
	assert.Equal(t, result, 0)

	_, err = one.Compare(NewString("1"))
	assert.NotNil(t, err)
}

func TestIntCache(t *testing.T) {
	assert.True(t, NewInt(42) == NewInt(42))
	assert.True(t, NewInt(-3) == NewInt(-3))
	assert.Equal(t, NewInt(100000).Value(), int64(100000))
}

func TestIntOperations(t *testing.T) {
	tests := []struct {
		op   op.BinaryOpType
		a, b Object
		want Object
	}{
		{op.Add, NewInt(84), NewInt(-18), NewInt(66)},
		{op.Subtract, NewInt(43), NewInt(25), NewInt(18)},
		{op.Multiply, NewInt(6), NewInt(7), NewInt(42)},
		{op.Divide, NewInt(7), NewInt(2), NewInt(3)},
		{op.Modulo, NewInt(7), NewInt(2), NewInt(1)},
		{op.Add, NewInt(1), NewFloat(0.5), NewFloat(1.5)},
	}
	for _, tt := range tests {
		result, err := BinaryOp(tt.op, tt.a, tt.b)
		assert.Nil(t, err)
		assert.True(t, tt.want.Equals(result), "%s %s %s", tt.a, tt.op, tt.b)
	}

	_, err := BinaryOp(op.Divide, NewInt(1), NewInt(0))
	assert.NotNil(t, err)
}

func TestFloatCompare(t *testing.T) {
	result, err := NewFloat(1.5).Compare(NewInt(2))
	assert.Nil(t, err)
	assert.Equal(t, result, -1)
	assert.True(t, NewFloat(2).Equals(NewInt(2)))
	assert.False(t, NewFloat(2.5).Equals(NewString("2.5")))
}

func TestStringOperations(t *testing.T) {
	result, err := BinaryOp(op.Add, NewString("Jo"), NewString("hn"))
	assert.Nil(t, err)
	assert.Equal(t, result, Object(NewString("John")))

	_, err = BinaryOp(op.Subtract, NewString("a"), NewString("b"))
	assert.NotNil(t, err)

	cmp, err := NewString("Bob").Compare(NewString("Paul"))
	assert.Nil(t, err)
	assert.Equal(t, cmp, -1)
	assert.Equal(t, NewString(`"x"`).Inspect(), `'"x"'`)
	assert.Equal(t, NewString("x").Inspect(), `"x"`)
}

func TestBoolAndNil(t *testing.T) {
	assert.True(t, NewBool(true) == True)
	assert.True(t, NewBool(false) == False)
	assert.False(t, False.IsTruthy())
	assert.False(t, Nil.IsTruthy())
	assert.True(t, Nil.Equals(Nil))
	assert.Nil(t, Nil.Interface())

	cmp, err := True.Compare(False)
	assert.Nil(t, err)
	assert.Equal(t, cmp, 1)
}

func TestCompareOperators(t *testing.T) {
	result, err := Compare(op.LessThan, NewInt(25), NewInt(43))
	assert.Nil(t, err)
	assert.Equal(t, result, Object(True))

	result, err = Compare(op.GreaterThanOrEqual, NewInt(18), NewInt(18))
	assert.Nil(t, err)
	assert.Equal(t, result, Object(True))

	result, err = Compare(op.NotEqual, NewString("a"), NewInt(1))
	assert.Nil(t, err)
	assert.Equal(t, result, Object(True))

	_, err = Compare(op.LessThan, NewList(nil), NewList(nil))
	assert.NotNil(t, err)
}

func TestLogicalOperators(t *testing.T) {
	result, err := BinaryOp(op.And, NewInt(0), NewInt(5))
	assert.Nil(t, err)
	assert.Equal(t, result, Object(NewInt(0)))

	result, err = BinaryOp(op.Or, NewInt(0), NewInt(5))
	assert.Nil(t, err)
	assert.Equal(t, result, Object(NewInt(5)))
}

func TestEqualsNilSafe(t *testing.T) {
	assert.True(t, Equals(nil, nil))
	assert.False(t, Equals(nil, Nil))
	assert.False(t, Equals(NewInt(1), nil))
	assert.True(t, Equals(NewInt(1), NewFloat(1)))
}
