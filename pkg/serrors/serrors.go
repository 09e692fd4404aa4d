// Package serrors defines the semantic error kinds reported by todayiran and a
// wrapper type that carries a kind together with a message and an optional cause.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrParse indicates a malformed number or a token that does not fit the
	// distance or duration grammar.
	ErrParse = NewKind("PARSE_ERROR")
	// ErrInvalidUnit indicates a well-formed quantity with an unknown unit token.
	ErrInvalidUnit = NewKind("INVALID_UNIT")
	// ErrDivisionByZero indicates a positive distance covered in zero time.
	ErrDivisionByZero = NewKind("DIVISION_BY_ZERO")
	// ErrUndefinedProjection marks a projected duration that cannot be computed
	// because the velocity is zero.
	ErrUndefinedProjection = NewKind("UNDEFINED_PROJECTION")
	// ErrInvalidReferenceData indicates an inconsistent built-in reference table.
	ErrInvalidReferenceData = NewKind("INVALID_REFERENCE_DATA")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and a
// message. errors.Is and errors.As match either the kind or the cause.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg set: "<msg>"
//   - only err set: "<err>"
//   - neither set: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target matches the kind or anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches either the kind or the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind, or nil.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the first semantic kind found in err's chain, or nil.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind()
	}

	return nil
}
