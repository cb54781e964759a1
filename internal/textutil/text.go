// SPDX-License-Identifier: MPL-2.0

package textutil

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// TabWidth is the number of display columns a tab occupies when wrapping.
const TabWidth = 8

// PadLeft right-justifies s within width columns using spaces.
// Strings already at least width long are returned unchanged.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// PadLeftInt formats n in decimal and right-justifies it within width columns.
func PadLeftInt(n, width int) string {
	return PadLeft(strconv.Itoa(n), width)
}

// CountDigits returns the number of decimal digits needed to print n.
func CountDigits(n int) int {
	if n < 0 {
		n = -n
	}
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// IsSpace reports whether b is ASCII whitespace in the C locale.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsBlank reports whether b is a space or a tab.
func IsBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ToUpper upper-cases an ASCII letter and leaves every other byte alone.
func ToUpper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// SkipLeadingBlank returns s without its leading whitespace.
func SkipLeadingBlank(s string) string {
	i := 0
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return s[i:]
}

// WrappedLength returns how many bytes of s fit within maxCols display
// columns, counting a tab as TabWidth columns and any other character as one.
// At least one character is always consumed when s is non-empty, so a caller
// slicing s repeatedly always makes progress. Multi-byte characters are never
// split.
//
// With breakOnBlank, the result is instead the offset just past the last
// whitespace character inside that span. When the span holds no whitespace,
// or the whole of s fits, the hard length is returned.
func WrappedLength(s string, maxCols int, breakOnBlank bool) int {
	cols := 0
	n := 0
	lastBlank := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		w := 1
		if r == '\t' {
			w = TabWidth
		}
		if cols+w > maxCols && n > 0 {
			break
		}
		cols += w
		n += size
		if size == 1 && IsSpace(s[n-1]) {
			lastBlank = n
		}
	}

	if breakOnBlank && n < len(s) && lastBlank > 0 {
		return lastBlank
	}
	return n
}

// NextRunEnd returns the index of the first element after from that differs
// from s[from], or len(s) when the run reaches the end.
func NextRunEnd[T comparable](s []T, from int) int {
	end := from + 1
	for end < len(s) && s[end] == s[from] {
		end++
	}
	return end
}

// NextRunEndFunc is NextRunEnd with a caller-supplied equality.
func NextRunEndFunc[T any](s []T, from int, eq func(a, b T) bool) int {
	end := from + 1
	for end < len(s) && eq(s[from], s[end]) {
		end++
	}
	return end
}
