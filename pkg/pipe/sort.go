// SPDX-License-Identifier: MPL-2.0

package pipe

import "slices"

// Sort orders the lines in ascending order, as modified by Dictionary,
// FoldCase, SkipBlank, and Reverse. Stable keeps equal lines in input order.
// Unique then drops every line equal to its predecessor under the same
// comparison, so "sort -f -u" keeps one line per case-insensitive group.
//
// Merge is rejected here because it needs a second sequence; use SortMerge.
func (l *Lines) Sort(opts ...Option) error {
	set, err := checkOptions(opSort, opts)
	if err != nil {
		return err
	}
	if set.has(Merge) {
		return configErrorf(opSort, "merge mode requires a second sequence")
	}

	compare := buildCompare(set)
	if set.has(Stable) {
		slices.SortStableFunc(l.lines, compare)
	} else {
		slices.SortFunc(l.lines, compare)
	}

	if set.has(Unique) {
		l.lines = compactEqual(l.lines, compare)
	}
	return nil
}

// SortMerge merges other into the receiver in a single linear pass. Both
// sequences must already be sorted with the same options; otherwise the
// resulting order is unspecified. Lines comparing equal keep the receiver's
// line first. The Merge option is required; other is read but never modified.
func (l *Lines) SortMerge(other *Lines, opts ...Option) error {
	set, err := checkOptions(opMerge, opts)
	if err != nil {
		return err
	}
	if !set.has(Merge) {
		return configErrorf(opMerge, "the merge option is required")
	}
	if other == nil {
		return configErrorf(opMerge, "merge mode requires a second sequence")
	}

	compare := buildCompare(set)
	merged := mergeSorted(l.lines, other.lines, compare)
	if set.has(Unique) {
		merged = compactEqual(merged, compare)
	}
	l.lines = merged
	return nil
}

func mergeSorted(a, b []string, compare compareFunc) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if compare(b[j], a[i]) < 0 {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func compactEqual(lines []string, compare compareFunc) []string {
	return slices.CompactFunc(lines, func(a, b string) bool { return compare(a, b) == 0 })
}
