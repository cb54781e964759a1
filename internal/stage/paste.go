// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newPasteStage())
}

// pasteStage implements the paste stage.
type pasteStage struct {
	baseStage
}

// newPasteStage creates a new paste stage.
func newPasteStage() *pasteStage {
	return &pasteStage{baseStage{
		name:  "paste",
		usage: "paste [-d LIST] FILE",
		summary: "Join each line with the matching line of FILE. Line i uses the i-th " +
			"delimiter of LIST, cycling; `\\t`, `\\n`, `\\\\` and `\\0` (empty) are understood. " +
			"The default comes from `paste.delimiters`, normally a tab.",
		flags: []FlagInfo{
			{Name: "delimiters", ShortName: "d", Description: "reuse characters from LIST instead of tabs", TakesValue: true},
		},
		examples: []string{"paste prices.txt", "paste -d ',' other.csv"},
	}}
}

// Run executes the paste stage.
func (s *pasteStage) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(s.name)
	delimiters := fs.StringP("delimiters", "d", hc.Defaults.PasteDelimiters, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}
	if err := expectArgs(s.name, fs.Args(), 1, 1); err != nil {
		return wrapError(s.name, err)
	}

	other, err := pipe.Cat(resolvePaths(hc.Dir, fs.Args()))
	if err != nil {
		return wrapError(s.name, err)
	}
	return wrapError(s.name, lines.Paste(other, *delimiters))
}
