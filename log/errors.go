package log

import (
	"errors"
	"fmt"
)

var (
	// ErrValue is the default kind used by 'Error', it indicates an argument/input had an invalid value.
	ErrValue = errors.New("value error")

	// ErrType indicates an argument had an unexpected type e.g. a branch which isn't callable.
	ErrType = errors.New("type error")

	// ErrRuntime indicates a failure which isn't attributable to a specific input.
	ErrRuntime = errors.New("runtime error")
)

// TaggedError is returned by 'Error'/'Errorf', it carries a tagged message and the kind chosen by the caller.
type TaggedError struct {
	Kind error
	Msg  string
}

// Error implements the 'error' interface.
func (e *TaggedError) Error() string {
	return format(LevelError, e.Msg)
}

// Unwrap returns the kind allowing use of 'errors.Is'/'errors.As'.
func (e *TaggedError) Unwrap() error {
	return e.Kind
}

// newError returns a '*TaggedError' defaulting the kind to 'ErrValue'.
func newError(kind error, msg string) error {
	if kind == nil {
		kind = ErrValue
	}

	return &TaggedError{Kind: kind, Msg: msg}
}

// Error returns an error of the given kind with a tagged message, it never logs.
//
// NOTE: A <nil> kind is treated as 'ErrValue'.
func (l *Logger) Error(msg string, kind error) error {
	return newError(kind, msg)
}

// Errorf is the formatted version of 'Error'.
func (l *Logger) Errorf(kind error, format string, args ...any) error {
	return newError(kind, fmt.Sprintf(format, args...))
}
