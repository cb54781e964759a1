// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

type (
	// Stage is a named filter that parses shell-style arguments and applies
	// the matching pipe operation to a line sequence.
	Stage interface {
		// Name returns the stage name (e.g., "sort", "grep").
		Name() string

		// Usage returns the one-line synopsis (e.g., "head [-n LINES | -c BYTES]").
		Usage() string

		// Run applies the stage to lines.
		// args[0] is the stage name (for error messages), args[1:] are the arguments.
		// Returns nil on success, or an error prefixed with "[linepipe] <stage>:".
		Run(ctx context.Context, lines *pipe.Lines, args []string) error

		// SupportedFlags returns the flags this stage accepts.
		// Any other flag is rejected with a configuration error.
		SupportedFlags() []FlagInfo

		// Doc returns markdown help for the stage.
		Doc() string
	}

	// FlagInfo describes a supported flag for a stage.
	FlagInfo struct {
		// Name is the long flag name without dashes (e.g., "reverse" for --reverse).
		Name string
		// ShortName is the single-character alias (e.g., "r" for -r).
		// Empty if no short form exists.
		ShortName string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g., -n 10).
		TakesValue bool
	}

	// baseStage provides the static parts shared by every stage.
	baseStage struct {
		name     string
		usage    string
		summary  string
		flags    []FlagInfo
		examples []string
	}
)

// Name returns the stage name.
func (b *baseStage) Name() string {
	return b.name
}

// Usage returns the one-line synopsis.
func (b *baseStage) Usage() string {
	return b.usage
}

// SupportedFlags returns the flags supported by this stage.
func (b *baseStage) SupportedFlags() []FlagInfo {
	return b.flags
}

// Doc returns markdown help for the stage.
func (b *baseStage) Doc() string {
	return renderDoc(b)
}
