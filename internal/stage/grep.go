// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newGrepStage())
}

// grepStage implements the grep stage.
type grepStage struct {
	baseStage
}

// newGrepStage creates a new grep stage.
func newGrepStage() *grepStage {
	return &grepStage{baseStage{
		name:  "grep",
		usage: "grep [-Eiv] PATTERN",
		summary: "Keep the lines matching PATTERN, a POSIX basic regular expression " +
			"(extended with -E). Back-references such as `\\(a\\)\\1` are supported.",
		flags: []FlagInfo{
			{Name: "extended-regexp", ShortName: "E", Description: "PATTERN is an extended regular expression"},
			{Name: "ignore-case", ShortName: "i", Description: "ignore case distinctions"},
			{Name: "invert-match", ShortName: "v", Description: "select non-matching lines"},
		},
		examples: []string{"grep -i error", "grep -E 'warn|fail'", "grep -v '^#'"},
	}}
}

// Run executes the grep stage.
func (s *grepStage) Run(_ context.Context, lines *pipe.Lines, args []string) error {
	fs := newFlagSet(s.name)
	extended := fs.BoolP("extended-regexp", "E", false, "")
	ignoreCase := fs.BoolP("ignore-case", "i", false, "")
	invert := fs.BoolP("invert-match", "v", false, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}
	if err := expectArgs(s.name, fs.Args(), 1, 1); err != nil {
		return wrapError(s.name, err)
	}

	opts := collectOptions(
		optionFlag{pipe.Extended, *extended},
		optionFlag{pipe.IgnoreCase, *ignoreCase},
		optionFlag{pipe.Invert, *invert},
	)
	return wrapError(s.name, lines.Grep(fs.Arg(0), opts...))
}
