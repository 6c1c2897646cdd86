package fsutil

import (
	"errors"
	"fmt"

	"github.com/xilinx/vai-q-common/log"
)

// ErrNotUTF8 is wrapped by the error returned from 'LoadJSON' when the file isn't valid UTF-8 text.
var ErrNotUTF8 = errors.New("file is not valid UTF-8")

// JSONError is returned by 'LoadJSON' when a file could not be parsed, it names the file and wraps the cause.
type JSONError struct {
	Path string
	Err  error
}

// Error implements the 'error' interface.
func (e *JSONError) Error() string {
	return fmt.Sprintf("failed to load the json file '%s', please check the format: %s", e.Path, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *JSONError) Unwrap() error {
	return e.Err
}

// Is allows matching a 'JSONError' against 'log.ErrValue', malformed input is a value error.
func (e *JSONError) Is(target error) bool {
	return target == log.ErrValue
}
