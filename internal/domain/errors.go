package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure kind the analytics engine produces.
// Every precondition violation (non-positive monetary values, out-of-range
// confidence levels or fractions, non-positive horizons or targets) wraps
// this sentinel, so callers check with errors.Is and translate it to a
// user-facing response. The engine has no retryable error class: every
// failure is caller-correctable.
var ErrInvalidInput = errors.New("invalid input")

// Invalidf wraps ErrInvalidInput with a formatted detail message.
func Invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
