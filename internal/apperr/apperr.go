// Package apperr classifies caller-facing errors. Transport layers map Kind
// to a status; nothing in this module retries either kind.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNotFound         = errors.New("not found")
)

// Error pairs a sentinel Kind with the underlying cause.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// InvalidParameter reports a malformed or unrecognized caller-supplied value.
func InvalidParameter(format string, args ...any) *Error {
	return &Error{Kind: ErrInvalidParameter, Err: fmt.Errorf(format, args...)}
}

// NotFound reports a well-formed id with nothing behind it.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: ErrNotFound, Err: fmt.Errorf(format, args...)}
}

func IsInvalidParameter(err error) bool { return errors.Is(err, ErrInvalidParameter) }
func IsNotFound(err error) bool         { return errors.Is(err, ErrNotFound) }
