// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"cmp"
	"strings"

	"github.com/linepipe/linepipe/internal/textutil"
)

type (
	// Comparator reports whether a strictly precedes b.
	Comparator func(a, b string) bool

	// compareFunc is a three-way comparison returning a negative number,
	// zero, or a positive number. Sorting, merging, and the Unique option
	// share it so that they agree on which lines are equal.
	compareFunc func(a, b string) int
)

// NewComparator builds a line ordering from Dictionary, FoldCase, SkipBlank,
// and Reverse. Without options it is plain byte-wise lexical order.
func NewComparator(opts ...Option) (Comparator, error) {
	set, err := checkOptions(opCompare, opts)
	if err != nil {
		return nil, err
	}
	compare := buildCompare(set)
	return func(a, b string) bool { return compare(a, b) < 0 }, nil
}

// buildCompare composes the three-way comparison for the given options.
// Options other than the four ordering modifiers are ignored.
func buildCompare(set optionSet) compareFunc {
	var compare compareFunc
	switch {
	case set.has(Dictionary) && set.has(FoldCase):
		compare = dictionaryCompare(true)
	case set.has(Dictionary):
		compare = dictionaryCompare(false)
	case set.has(FoldCase):
		compare = foldCompare
	default:
		compare = strings.Compare
	}

	if set.has(SkipBlank) {
		inner := compare
		compare = func(a, b string) int {
			return inner(textutil.SkipLeadingBlank(a), textutil.SkipLeadingBlank(b))
		}
	}

	// Reverse swaps operands so that equal lines still compare equal.
	if set.has(Reverse) {
		inner := compare
		compare = func(a, b string) int { return inner(b, a) }
	}

	return compare
}

// foldCompare compares a and b byte by byte after upper-casing ASCII letters.
func foldCompare(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		ca, cb := textutil.ToUpper(a[i]), textutil.ToUpper(b[i])
		if ca != cb {
			return cmp.Compare(ca, cb)
		}
	}
	return cmp.Compare(len(a), len(b))
}

// dictionaryCompare compares only letters, digits, and whitespace, skipping
// every other byte in either operand.
func dictionaryCompare(fold bool) compareFunc {
	return func(a, b string) int {
		i, j := 0, 0
		for {
			for i < len(a) && !dictionaryByte(a[i]) {
				i++
			}
			for j < len(b) && !dictionaryByte(b[j]) {
				j++
			}
			if i == len(a) || j == len(b) {
				return cmp.Compare(len(a)-i, len(b)-j)
			}

			ca, cb := a[i], b[j]
			if fold {
				ca, cb = textutil.ToUpper(ca), textutil.ToUpper(cb)
			}
			if ca != cb {
				return cmp.Compare(ca, cb)
			}
			i++
			j++
		}
	}
}

func dictionaryByte(c byte) bool {
	return textutil.IsAlnum(c) || textutil.IsBlank(c)
}
