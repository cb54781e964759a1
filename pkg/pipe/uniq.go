// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"strings"

	"github.com/linepipe/linepipe/internal/textutil"
)

// run is a maximal span of adjacent equal lines.
type run struct {
	line string
	size int
}

// Uniq collapses each run of adjacent equal lines into its first line.
//
// At most one of Count, DuplicatesOnly, and UniquesOnly may be given:
//   - Count prefixes each line with its run length, right-justified to the
//     width of the longest run, and a space.
//   - DuplicatesOnly keeps only runs longer than one line.
//   - UniquesOnly keeps only runs of exactly one line.
//
// IgnoreCase compares lines case-insensitively. Only adjacent lines are
// compared; sort first to remove duplicates globally.
func (l *Lines) Uniq(opts ...Option) error {
	set, err := checkOptions(opUniq, opts)
	if err != nil {
		return err
	}
	if set.countOf(Count, DuplicatesOnly, UniquesOnly) > 1 {
		return configErrorf(opUniq, "count, duplicates-only, and uniques-only are mutually exclusive")
	}

	equal := func(a, b string) bool { return a == b }
	if set.has(IgnoreCase) {
		equal = strings.EqualFold
	}

	runs := findRuns(l.lines, equal)
	out := make([]string, 0, len(runs))

	switch {
	case set.has(Count):
		longest := 0
		for _, r := range runs {
			longest = max(longest, r.size)
		}
		width := textutil.CountDigits(longest)
		for _, r := range runs {
			out = append(out, textutil.PadLeftInt(r.size, width)+" "+r.line)
		}
	case set.has(DuplicatesOnly):
		for _, r := range runs {
			if r.size > 1 {
				out = append(out, r.line)
			}
		}
	case set.has(UniquesOnly):
		for _, r := range runs {
			if r.size == 1 {
				out = append(out, r.line)
			}
		}
	default:
		for _, r := range runs {
			out = append(out, r.line)
		}
	}

	l.lines = out
	return nil
}

func findRuns(lines []string, equal func(a, b string) bool) []run {
	var runs []run
	for i := 0; i < len(lines); {
		end := textutil.NextRunEndFunc(lines, i, equal)
		runs = append(runs, run{line: lines[i], size: end - i})
		i = end
	}
	return runs
}
