// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newWcStage())
}

// wcStage implements the wc stage.
type wcStage struct {
	baseStage
}

// newWcStage creates a new wc stage.
func newWcStage() *wcStage {
	return &wcStage{baseStage{
		name:  "wc",
		usage: "wc [-clmw]",
		summary: "Replace the lines with one summary line of counts, each right-justified to eight columns. " +
			"Without flags, lines, words, and bytes are shown. Line terminators are not counted as bytes.",
		flags: []FlagInfo{
			{Name: "lines", ShortName: "l", Description: "print the line count"},
			{Name: "words", ShortName: "w", Description: "print the word count"},
			{Name: "bytes", ShortName: "c", Description: "print the byte count"},
			{Name: "chars", ShortName: "m", Description: "print the character count (ignored with -c)"},
		},
		examples: []string{"wc", "wc -l"},
	}}
}

// Run executes the wc stage.
func (s *wcStage) Run(_ context.Context, lines *pipe.Lines, args []string) error {
	fs := newFlagSet(s.name)
	countLines := fs.BoolP("lines", "l", false, "")
	countWords := fs.BoolP("words", "w", false, "")
	countBytes := fs.BoolP("bytes", "c", false, "")
	countChars := fs.BoolP("chars", "m", false, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}
	if err := expectArgs(s.name, fs.Args(), 0, 0); err != nil {
		return wrapError(s.name, err)
	}

	opts := collectOptions(
		optionFlag{pipe.CountLines, *countLines},
		optionFlag{pipe.CountWords, *countWords},
		optionFlag{pipe.CountBytes, *countBytes},
		optionFlag{pipe.CountChars, *countChars},
	)
	return wrapError(s.name, lines.Wc(opts...))
}
