// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newUniqStage())
}

// uniqStage implements the uniq stage.
type uniqStage struct {
	baseStage
}

// newUniqStage creates a new uniq stage.
func newUniqStage() *uniqStage {
	return &uniqStage{baseStage{
		name:    "uniq",
		usage:   "uniq [-c | -d | -u] [-i]",
		summary: "Collapse adjacent equal lines into one. Only adjacent lines are compared, so sort first to drop every duplicate.",
		flags: []FlagInfo{
			{Name: "count", ShortName: "c", Description: "prefix lines by the number of occurrences"},
			{Name: "repeated", ShortName: "d", Description: "only print one line per repeated run"},
			{Name: "unique", ShortName: "u", Description: "only print lines that are not repeated"},
			{Name: "ignore-case", ShortName: "i", Description: "ignore differences in case when comparing"},
		},
		examples: []string{"sort | uniq -c", "uniq -di"},
	}}
}

// Run executes the uniq stage.
func (s *uniqStage) Run(_ context.Context, lines *pipe.Lines, args []string) error {
	fs := newFlagSet(s.name)
	count := fs.BoolP("count", "c", false, "")
	repeated := fs.BoolP("repeated", "d", false, "")
	unique := fs.BoolP("unique", "u", false, "")
	ignoreCase := fs.BoolP("ignore-case", "i", false, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}
	if err := expectArgs(s.name, fs.Args(), 0, 0); err != nil {
		return wrapError(s.name, err)
	}

	opts := collectOptions(
		optionFlag{pipe.Count, *count},
		optionFlag{pipe.DuplicatesOnly, *repeated},
		optionFlag{pipe.UniquesOnly, *unique},
		optionFlag{pipe.IgnoreCase, *ignoreCase},
	)
	return wrapError(s.name, lines.Uniq(opts...))
}
