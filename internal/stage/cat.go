// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newCatStage())
}

// catStage implements the cat stage.
type catStage struct {
	baseStage
}

// newCatStage creates a new cat stage.
func newCatStage() *catStage {
	return &catStage{baseStage{
		name:  "cat",
		usage: "cat [-bns] [FILE...]",
		summary: "Append the lines of each FILE. Unreadable files are skipped. " +
			"Numbering and squeezing apply to the appended lines only.",
		flags: []FlagInfo{
			{Name: "number-nonblank", ShortName: "b", Description: "number non-empty lines, overrides -n"},
			{Name: "number", ShortName: "n", Description: "number all lines"},
			{Name: "squeeze-blank", ShortName: "s", Description: "suppress repeated empty lines"},
		},
		examples: []string{"cat notes.txt", "cat -n a.txt b.txt"},
	}}
}

// Run executes the cat stage.
func (s *catStage) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(s.name)
	nonBlank := fs.BoolP("number-nonblank", "b", false, "")
	number := fs.BoolP("number", "n", false, "")
	squeeze := fs.BoolP("squeeze-blank", "s", false, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}

	opts := collectOptions(
		optionFlag{pipe.NumberNonBlank, *nonBlank},
		optionFlag{pipe.Number, *number},
		optionFlag{pipe.SqueezeBlank, *squeeze},
	)
	appended, err := pipe.Cat(resolvePaths(hc.Dir, fs.Args()), opts...)
	if err != nil {
		return wrapError(s.name, err)
	}
	lines.Concat(appended)
	return nil
}
