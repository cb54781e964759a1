// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newSortStage())
}

// sortStage implements the sort stage.
type sortStage struct {
	baseStage
}

// newSortStage creates a new sort stage.
func newSortStage() *sortStage {
	return &sortStage{baseStage{
		name:    "sort",
		usage:   "sort [-bdfrsu] [-m FILE...]",
		summary: "Sort the lines. With -m, merge the lines with the contents of FILE in one pass; both must already be sorted with the same flags.",
		flags: []FlagInfo{
			{Name: "ignore-leading-blanks", ShortName: "b", Description: "ignore leading blanks"},
			{Name: "dictionary-order", ShortName: "d", Description: "consider only blanks and alphanumeric characters"},
			{Name: "ignore-case", ShortName: "f", Description: "fold lower case to upper case characters"},
			{Name: "reverse", ShortName: "r", Description: "reverse the result of comparisons"},
			{Name: "stable", ShortName: "s", Description: "keep equal lines in input order"},
			{Name: "unique", ShortName: "u", Description: "output only the first of an equal run"},
			{Name: "merge", ShortName: "m", Description: "merge with already sorted files"},
		},
		examples: []string{"sort -u", "sort -df", "sort -m other.txt"},
	}}
}

// Run executes the sort stage.
func (s *sortStage) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := newFlagSet(s.name)
	blanks := fs.BoolP("ignore-leading-blanks", "b", false, "")
	dictionary := fs.BoolP("dictionary-order", "d", false, "")
	foldCase := fs.BoolP("ignore-case", "f", false, "")
	reverse := fs.BoolP("reverse", "r", false, "")
	stable := fs.BoolP("stable", "s", false, "")
	unique := fs.BoolP("unique", "u", false, "")
	merge := fs.BoolP("merge", "m", false, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}

	opts := collectOptions(
		optionFlag{pipe.SkipBlank, *blanks},
		optionFlag{pipe.Dictionary, *dictionary},
		optionFlag{pipe.FoldCase, *foldCase},
		optionFlag{pipe.Reverse, *reverse},
		optionFlag{pipe.Stable, *stable || hc.Defaults.StableSort},
		optionFlag{pipe.Unique, *unique},
	)

	if !*merge {
		if err := expectArgs(s.name, fs.Args(), 0, 0); err != nil {
			return wrapError(s.name, err)
		}
		return wrapError(s.name, lines.Sort(opts...))
	}

	if err := expectArgs(s.name, fs.Args(), 1, -1); err != nil {
		return wrapError(s.name, err)
	}
	other, err := pipe.Cat(resolvePaths(hc.Dir, fs.Args()))
	if err != nil {
		return wrapError(s.name, err)
	}
	return wrapError(s.name, lines.SortMerge(other, append(opts, pipe.Merge)...))
}
