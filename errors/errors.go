// Package errors defines the error types returned by the composite value
// layer.
//
// Construction and indexing operations report malformed input with one of a
// small set of typed errors. Each type wraps a cause and can be matched with
// the standard library's errors.As, or classified with KindOf:
//
//   - ShapeError: a dimension vector or initializer does not describe a valid
//     rectangular shape (ErrorKind InvalidShape).
//   - IndexError: an index or slice bound falls outside the addressable range
//     (ErrorKind OutOfRange).
//   - TypeError: a host value of the wrong type was supplied.
//   - ArgsError: a builtin was called with the wrong number of arguments.
//
// Map lookups of absent keys are never errors; they report (zero, false).
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorKind classifies an error produced by this module.
type ErrorKind int

const (
	// Unknown is reported for errors that did not originate here.
	Unknown ErrorKind = iota
	// InvalidShape indicates an irregular or negative dimension vector or a
	// literal that does not fit the declared shape.
	InvalidShape
	// OutOfRange indicates an index or slice bound outside the valid range.
	OutOfRange
	// InvalidType indicates a host value of an unexpected type.
	InvalidType
	// InvalidArgs indicates a wrong number of arguments.
	InvalidArgs
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case InvalidShape:
		return "shape error"
	case OutOfRange:
		return "index error"
	case InvalidType:
		return "type error"
	case InvalidArgs:
		return "args error"
	default:
		return "error"
	}
}

// Code returns the error code associated with the kind.
func (k ErrorKind) Code() ErrorCode {
	switch k {
	case InvalidShape:
		return E3011
	case OutOfRange:
		return E3003
	case InvalidType:
		return E3001
	case InvalidArgs:
		return E3010
	default:
		return ""
	}
}

// ShapeError is used to indicate a dimension vector or initializer that does
// not describe the declared shape.
type ShapeError struct {
	Err error
}

func (e *ShapeError) Error() string {
	return e.Err.Error()
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

func NewShapeError(err error) *ShapeError {
	return &ShapeError{Err: err}
}

func ShapeErrorf(format string, args ...any) *ShapeError {
	return NewShapeError(fmt.Errorf("shape error: "+format, args...))
}

// IndexError is used to indicate an index or bound is out of range.
type IndexError struct {
	Err error
}

func (e *IndexError) Error() string {
	return e.Err.Error()
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

func NewIndexError(err error) *IndexError {
	return &IndexError{Err: err}
}

func IndexErrorf(format string, args ...any) *IndexError {
	return NewIndexError(fmt.Errorf("index error: "+format, args...))
}

// TypeError is used to indicate an invalid type was supplied.
type TypeError struct {
	Err error
}

func (e *TypeError) Error() string {
	return e.Err.Error()
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

func NewTypeError(err error) *TypeError {
	return &TypeError{Err: err}
}

func TypeErrorf(format string, args ...any) *TypeError {
	return NewTypeError(fmt.Errorf("type error: "+format, args...))
}

// ArgsError is used to indicate a builtin was called with the wrong number of
// arguments.
type ArgsError struct {
	Err error
}

func (e *ArgsError) Error() string {
	return e.Err.Error()
}

func (e *ArgsError) Unwrap() error {
	return e.Err
}

func NewArgsError(err error) *ArgsError {
	return &ArgsError{Err: err}
}

func ArgsErrorf(format string, args ...any) *ArgsError {
	return NewArgsError(fmt.Errorf("args error: "+format, args...))
}

// KindOf returns the kind of the first typed error found in err's chain.
// Shape errors take precedence when an aggregate holds several kinds.
func KindOf(err error) ErrorKind {
	for _, kind := range []ErrorKind{InvalidShape, OutOfRange, InvalidType, InvalidArgs} {
		if Is(err, kind) {
			return kind
		}
	}
	return Unknown
}

// Is reports whether any error in err's chain is of the given kind.
func Is(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	switch kind {
	case InvalidShape:
		var target *ShapeError
		return stderrors.As(err, &target)
	case OutOfRange:
		var target *IndexError
		return stderrors.As(err, &target)
	case InvalidType:
		var target *TypeError
		return stderrors.As(err, &target)
	case InvalidArgs:
		var target *ArgsError
		return stderrors.As(err, &target)
	default:
		return false
	}
}
