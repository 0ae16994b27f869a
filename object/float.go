package object

import (
	"math"
	"strconv"

	"github.com/deepnoodle-ai/composite/op"
)

// Float wraps float64 and implements Object.
type Float struct {
	value float64
}

func (f *Float) Attrs() []AttrSpec {
	return nil
}

func (f *Float) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (f *Float) SetAttr(name string, value Object) error {
	return TypeErrorf("float has no attribute %q", name)
}

func (f *Float) Inspect() string {
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}

func (f *Float) Type() Type {
	return FLOAT
}

func (f *Float) Value() float64 {
	return f.value
}

func (f *Float) Interface() interface{} {
	return f.value
}

func (f *Float) String() string {
	return f.Inspect()
}

func (f *Float) Compare(other Object) (int, error) {
	switch other := other.(type) {
	case *Float:
		return compareFloats(f.value, other.value), nil
	case *Int:
		return compareFloats(f.value, float64(other.value)), nil
	default:
		return 0, TypeErrorf("unable to compare float and %s", other.Type())
	}
}

func (f *Float) Equals(other Object) bool {
	switch other := other.(type) {
	case *Float:
		return f.value == other.value
	case *Int:
		return f.value == float64(other.value)
	}
	return false
}

func (f *Float) IsTruthy() bool {
	return f.value != 0.0
}

func (f *Float) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	var rightValue float64
	switch right := right.(type) {
	case *Float:
		rightValue = right.value
	case *Int:
		rightValue = float64(right.value)
	default:
		return nil, TypeErrorf("unsupported operation for float: %v on type %s", opType, right.Type())
	}
	switch opType {
	case op.Add:
		return NewFloat(f.value + rightValue), nil
	case op.Subtract:
		return NewFloat(f.value - rightValue), nil
	case op.Multiply:
		return NewFloat(f.value * rightValue), nil
	case op.Divide:
		return NewFloat(f.value / rightValue), nil
	case op.Modulo:
		return NewFloat(math.Mod(f.value, rightValue)), nil
	default:
		return nil, TypeErrorf("unsupported operation for float: %v on type %s", opType, right.Type())
	}
}

func NewFloat(value float64) *Float {
	return &Float{value: value}
}

func compareFloats(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a > b:
		return 1
	default:
		return -1
	}
}
