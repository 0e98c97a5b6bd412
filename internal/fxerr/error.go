package fxerr

import "github.com/pkg/errors"

// Error is the hierarchical 32-bit value described in spec §7. It is a
// plain, comparable value — deliberately NOT wrapped in a richer error type
// at rest, since it must survive storage in Chassis.lastError, OR-composition
// during decode, and equality comparisons in tests unchanged.
type Error uint32

// Success is the zero value: no error, at any level of the tree.
const Success Error = 0

// String renders the "A:B:C" path, walking the category tree outer to inner.
func (e Error) String() string {
	return decodeText(uint32(e))
}

// OK reports whether e is Success.
func (e Error) OK() bool {
	return e == Success
}

// CodeError adapts an Error into the standard `error` interface so the rest
// of the engine can use idiomatic `if err != nil` composition (spec §9:
// "the hierarchical Error 32-bit value is the single fallible return;
// propagation uses early-return composition. No exceptions.").
type CodeError struct {
	Code Error
}

func (e *CodeError) Error() string {
	return e.Code.String()
}

// Wrap turns a taxonomy code into an `error`, returning nil for Success so
// callers can use normal Go error-checking idiom.
func Wrap(code Error) error {
	if code == Success {
		return nil
	}
	return &CodeError{Code: code}
}

// CodeOf extracts the taxonomy Error from err, if it (or something it wraps)
// is a *CodeError.
func CodeOf(err error) (Error, bool) {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code, true
	}
	return Success, false
}

// WrapCause attaches non-taxonomy faults (file I/O, OS errors encountered
// while loading a Node's JSON document) with stack context via pkg/errors,
// then translates them to a taxonomy code at the boundary that calls this.
// The taxonomy Error itself never carries the wrapped cause — only this
// adapter does, for logging purposes before the caller discards it in favor
// of the plain code.
func WrapCause(code Error, cause error) error {
	if cause == nil {
		return Wrap(code)
	}
	return errors.Wrap(cause, code.String())
}
