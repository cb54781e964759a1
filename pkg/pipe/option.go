// SPDX-License-Identifier: MPL-2.0

package pipe

import "slices"

// Option modifies the behavior of a single operation. Each operation accepts
// only the options listed for it; anything else is a ConfigurationError.
type Option string

const (
	// BreakAtBlank makes Fold break after the last whitespace that fits
	// instead of at the exact column limit (fold -s).
	BreakAtBlank Option = "break-at-blank"

	// IgnoreCase makes Grep and Uniq compare case-insensitively (-i).
	IgnoreCase Option = "ignore-case"
	// Extended selects the extended regular expression grammar for Grep (-E).
	Extended Option = "extended"
	// Invert keeps the lines that do not match in Grep (-v).
	Invert Option = "invert"

	// ByLine makes Head and Tail count lines. It is the default.
	ByLine Option = "by-line"
	// ByByte makes Head and Tail count bytes (-c).
	ByByte Option = "by-byte"

	// Dictionary compares only letters, digits, and blanks (sort -d).
	Dictionary Option = "dictionary"
	// FoldCase compares lines as if they were upper case (sort -f).
	FoldCase Option = "fold-case"
	// SkipBlank ignores leading whitespace when comparing (sort -b).
	SkipBlank Option = "skip-blank"
	// Reverse inverts the order of comparisons (sort -r).
	Reverse Option = "reverse"
	// Stable keeps equal lines in their input order (sort -s).
	Stable Option = "stable"
	// Unique drops lines the comparator finds equal to their predecessor (sort -u).
	Unique Option = "unique"
	// Merge combines two already sorted sequences (sort -m).
	Merge Option = "merge"

	// Delete removes the characters of a set (tr -d).
	Delete Option = "delete"
	// Squeeze collapses runs of a repeated set character (tr -s).
	Squeeze Option = "squeeze"
	// Complement applies Delete or Squeeze to every character outside the set (tr -c).
	Complement Option = "complement"

	// Count prefixes each retained line with its run length (uniq -c).
	Count Option = "count"
	// DuplicatesOnly keeps one line per repeated run (uniq -d).
	DuplicatesOnly Option = "duplicates-only"
	// UniquesOnly keeps only lines that are not repeated (uniq -u).
	UniquesOnly Option = "uniques-only"

	// CountLines reports the number of lines (wc -l).
	CountLines Option = "lines"
	// CountWords reports the number of words (wc -w).
	CountWords Option = "words"
	// CountBytes reports the number of bytes (wc -c).
	CountBytes Option = "bytes"
	// CountChars reports the number of characters (wc -m).
	CountChars Option = "chars"

	// Number prefixes every ingested line with its line number (cat -n).
	Number Option = "number"
	// NumberNonBlank numbers only non-empty lines and wins over Number (cat -b).
	NumberNonBlank Option = "number-nonblank"
	// SqueezeBlank collapses runs of empty lines (cat -s).
	SqueezeBlank Option = "squeeze-blank"

	// JoinLines makes Echo join its strings with newlines instead of spaces.
	JoinLines Option = "join-lines"
)

const (
	opCat     = "cat"
	opCompare = "compare"
	opEcho    = "echo"
	opFold    = "fold"
	opGrep    = "grep"
	opHead    = "head"
	opMerge   = "sort merge"
	opPaste   = "paste"
	opSort    = "sort"
	opTail    = "tail"
	opTrSet   = "tr"
	opUniq    = "uniq"
	opWc      = "wc"
)

// allowedOptions is the allow-list of options per operation.
var allowedOptions = map[string][]Option{
	opCat:     {Number, NumberNonBlank, SqueezeBlank},
	opCompare: {Dictionary, FoldCase, SkipBlank, Reverse},
	opEcho:    {JoinLines},
	opFold:    {BreakAtBlank},
	opGrep:    {IgnoreCase, Extended, Invert},
	opHead:    {ByLine, ByByte},
	opMerge:   {Dictionary, FoldCase, SkipBlank, Reverse, Stable, Unique, Merge},
	opSort:    {Dictionary, FoldCase, SkipBlank, Reverse, Stable, Unique, Merge},
	opTail:    {ByLine, ByByte},
	opTrSet:   {Delete, Squeeze, Complement},
	opUniq:    {Count, DuplicatesOnly, UniquesOnly, IgnoreCase},
	opWc:      {CountLines, CountWords, CountBytes, CountChars},
}

// optionSet is a validated set of options for one call.
type optionSet map[Option]struct{}

// String returns the option name.
func (o Option) String() string { return string(o) }

// AllowedOptions returns the options accepted by the named operation
// ("sort", "grep", ...), or nil when the operation takes none.
func AllowedOptions(op string) []Option {
	return slices.Clone(allowedOptions[op])
}

// checkOptions validates opts against the allow-list of op. Repeated options
// are accepted and count once.
func checkOptions(op string, opts []Option) (optionSet, error) {
	allowed := allowedOptions[op]
	set := make(optionSet, len(opts))
	for _, o := range opts {
		if !slices.Contains(allowed, o) {
			return nil, configErrorf(op, "unsupported option %q", o)
		}
		set[o] = struct{}{}
	}
	return set, nil
}

func (s optionSet) has(o Option) bool {
	_, ok := s[o]
	return ok
}

// countOf returns how many of opts are present in the set.
func (s optionSet) countOf(opts ...Option) int {
	n := 0
	for _, o := range opts {
		if s.has(o) {
			n++
		}
	}
	return n
}
