// Package errorutil provides the sentinel-error type and helpers that the
// wmerrors package builds its sentinels on.
package errorutil

import (
	"errors"
	"fmt"
)

// Error is a string type that implements the error interface, used for
// sentinel errors that can be compared with errors.Is.
type Error string

func (s Error) Error() string { return string(s) }

func Errorf(format string, args ...any) error {
	return Error(fmt.Sprintf(format, args...)) //errtrace:skip
}

// NewWrapperError creates or wraps an error with a sentinel error.
//   - No args: returns sentinel.
//   - error arg: wraps with sentinel (unless already wrapped).
//   - string arg: formats as message with sentinel.
//   - string + args: formats with Sprintf then wraps with sentinel.
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// ErrInvalidArgument is returned when an invalid argument is provided to a
// constructor.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError creates or wraps an error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}
