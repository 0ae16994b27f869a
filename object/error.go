package object

import (
	"fmt"

	"github.com/deepnoodle-ai/composite/errors"
	"github.com/deepnoodle-ai/composite/op"
)

var errorAttrs = NewAttrRegistry[*Error]("error")

func init() {
	errorAttrs.Define("message").
		Doc("The error message").
		Returns("string").
		Getter(func(e *Error) Object {
			return e.Message()
		})

	errorAttrs.Define("kind").
		Doc("The error kind, such as \"index error\"").
		Returns("string").
		Getter(func(e *Error) Object {
			return NewString(e.Kind().String())
		})

	errorAttrs.Define("code").
		Doc("The error code, such as \"E3003\"").
		Returns("string").
		Getter(func(e *Error) Object {
			return NewString(e.Code().String())
		})
}

// Error wraps a Go error interface and implements Object.
type Error struct {
	err error
}

func (e *Error) Attrs() []AttrSpec {
	return errorAttrs.Specs()
}

func (e *Error) GetAttr(name string) (Object, bool) {
	return errorAttrs.GetAttr(e, name)
}

func (e *Error) SetAttr(name string, value Object) error {
	return TypeErrorf("error has no attribute %q", name)
}

func (e *Error) IsTruthy() bool {
	return true
}

func (e *Error) Type() Type {
	return ERROR
}

func (e *Error) Inspect() string {
	return fmt.Sprintf("error(%q)", e.err.Error())
}

func (e *Error) String() string {
	return e.err.Error()
}

func (e *Error) Value() error {
	return e.err
}

func (e *Error) Interface() interface{} {
	return e.err
}

func (e *Error) Equals(other Object) bool {
	otherError, ok := other.(*Error)
	if !ok {
		return false
	}
	return e.err.Error() == otherError.err.Error()
}

func (e *Error) Message() *String {
	return NewString(e.err.Error())
}

// Kind classifies the wrapped error.
func (e *Error) Kind() errors.ErrorKind {
	return errors.KindOf(e.err)
}

// Code returns the error code of the wrapped error.
func (e *Error) Code() errors.ErrorCode {
	return errors.CodeOf(e.err)
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) RunOperation(opType op.BinaryOpType, right Object) (Object, error) {
	return nil, TypeErrorf("unsupported operation for error: %v", opType)
}

// Errorf returns an Error object with a formatted message. Object arguments
// are formatted using their Go values.
func Errorf(format string, a ...interface{}) *Error {
	var args []interface{}
	for _, arg := range a {
		if obj, ok := arg.(Object); ok {
			args = append(args, obj.Interface())
		} else {
			args = append(args, arg)
		}
	}
	return &Error{err: fmt.Errorf(format, args...)}
}

// NewError wraps err. An *Error is unwrapped first to avoid nesting.
func NewError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return &Error{err: e.err}
	}
	return &Error{err: err}
}

func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR
	}
	return false
}
