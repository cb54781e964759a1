// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel error wrapped by ConfigurationError.
	ErrConfiguration = errors.New("invalid configuration")
	// ErrPattern is the sentinel error wrapped by PatternError.
	ErrPattern = errors.New("invalid pattern")
)

type (
	// ConfigurationError is returned when an operation is called with an
	// unsupported option, an invalid option combination, or an out-of-range
	// argument. It wraps ErrConfiguration for errors.Is() compatibility.
	ConfigurationError struct {
		Op     string
		Reason string
	}

	// PatternError is returned when a grep pattern fails to compile.
	// It wraps ErrPattern for errors.Is() compatibility, and the compiler's
	// own error for errors.As().
	PatternError struct {
		Pattern string
		Err     error
	}
)

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Error implements the error interface.
func (e *PatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid pattern %q", e.Pattern)
	}
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns ErrPattern and the underlying compile error.
func (e *PatternError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPattern}
	}
	return []error{ErrPattern, e.Err}
}

func configErrorf(op, format string, args ...any) error {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
