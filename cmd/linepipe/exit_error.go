// SPDX-License-Identifier: MPL-2.0

package cmd

import "fmt"

const (
	// exitFailure reports a runtime failure such as an unwritable output file.
	exitFailure = 1
	// exitUsage reports an invalid expression, stage, or stage argument.
	exitUsage = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
