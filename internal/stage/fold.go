// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newFoldStage())
}

// foldStage implements the fold stage.
type foldStage struct {
	baseStage
}

// newFoldStage creates a new fold stage.
func newFoldStage() *foldStage {
	return &foldStage{baseStage{
		name:    "fold",
		usage:   "fold [-s] [-w WIDTH]",
		summary: "Wrap lines wider than WIDTH columns (default from `fold.width`, normally 80). A tab counts as eight columns.",
		flags: []FlagInfo{
			{Name: "spaces", ShortName: "s", Description: "break after the last blank that fits"},
			{Name: "width", ShortName: "w", Description: "use WIDTH columns", TakesValue: true},
		},
		examples: []string{"fold -w 40", "fold -sw 72"},
	}}
}

// Run executes the fold stage.
func (s *foldStage) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(s.name)
	spaces := fs.BoolP("spaces", "s", false, "")
	width := fs.IntP("width", "w", hc.Defaults.FoldWidth, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}
	if err := expectArgs(s.name, fs.Args(), 0, 0); err != nil {
		return wrapError(s.name, err)
	}

	opts := collectOptions(optionFlag{pipe.BreakAtBlank, *spaces})
	return wrapError(s.name, lines.Fold(*width, opts...))
}
