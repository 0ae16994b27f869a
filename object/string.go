package object

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/composite/op"
)

type String struct {
	value string
}

func (s *String) Attrs() []AttrSpec {
	return nil
}

func (s *String) GetAttr(name string) (Object, bool) {
	return nil, false
}

func (s *String) SetAttr(name string, value Object) error {
	return TypeErrorf("string has no attribute %q", name)
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Value() string {
	return s.value
}

func (s *String) Inspect() string {
	sLen := len(s.value)
	if sLen >= 2 {
		if s.value[0] == '"' && s.value[sLen-1] == '"' {
			if strings.Count(s.value, "\"") == 2 {
				return fmt.Sprintf("'%s'", s.value)
			}
		}
	}
	return fmt.Sprintf("%q", s.value)
}

func (s *String) String() string {
	return s.value
}

func (s *String) Interface() interface{} {
	return s.value
}

func (s *String) Compare(other Object) (int, error) {
	otherStr, ok := other.(*String)
	if !ok {
		return 0, TypeErrorf("unable to compare string and %s", other.Type())
	}
	return strings.Compare(s.value, otherStr.value), nil
}

func (s *String) Equals(other Object) bool {
	otherStr, ok := other.(*String)
	return ok && s.value == otherStr.value
}

func (s *String) IsTruthy() bool {
	return s.value != ""
}

func (s *String) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	rightStr, ok := right.(*String)
	if !ok || opType != op.Add {
		return nil, TypeErrorf("unsupported operation for string: %v on type %s", opType, right.Type())
	}
	return NewString(s.value + rightStr.value), nil
}

func NewString(s string) *String {
	return &String{value: s}
}
