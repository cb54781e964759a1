// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"strings"
	"unicode/utf8"

	"github.com/linepipe/linepipe/internal/textutil"
)

// Translate replaces every character of from with the character at the same
// position in to. Both sets may use ranges, escapes, and POSIX classes. When
// to is shorter than from, the remaining characters of from map to the last
// character of to. A character listed twice in from takes its last mapping.
// An empty to is only valid together with an empty from. Bytes that are not
// valid UTF-8 are copied unchanged.
func (l *Lines) Translate(from, to string) error {
	src := []rune(textutil.ExpandCharClass(from))
	dst := []rune(textutil.ExpandCharClass(to))
	if len(src) > 0 && len(dst) == 0 {
		return configErrorf(opTrSet, "the replacement set must not be empty")
	}
	if len(src) == 0 {
		return nil
	}

	mapping := make(map[rune]rune, len(src))
	for i, r := range src {
		mapping[r] = dst[min(i, len(dst)-1)]
	}

	for i, line := range l.lines {
		var b strings.Builder
		b.Grow(len(line))
		eachChar(line, func(char string, r rune, valid bool) {
			if to, ok := mapping[r]; ok && valid {
				b.WriteRune(to)
				return
			}
			b.WriteString(char)
		})
		l.lines[i] = b.String()
	}
	return nil
}

// TrSet deletes or squeezes the characters of a set. Exactly one of Delete
// and Squeeze must be given. Delete removes every member of the set, while
// Squeeze collapses each run of one repeated member into a single character.
// Complement applies the operation to every character outside the set instead.
// Bytes that are not valid UTF-8 never belong to a set, so only Complement
// touches them.
func (l *Lines) TrSet(pattern string, opts ...Option) error {
	set, err := checkOptions(opTrSet, opts)
	if err != nil {
		return err
	}
	if set.countOf(Delete, Squeeze) != 1 {
		return configErrorf(opTrSet, "exactly one of delete or squeeze is required")
	}

	members := make(map[rune]struct{})
	for _, r := range textutil.ExpandCharClass(pattern) {
		members[r] = struct{}{}
	}
	complement := set.has(Complement)
	inSet := func(r rune, valid bool) bool {
		if !valid {
			return complement
		}
		_, ok := members[r]
		return ok != complement
	}

	squeeze := set.has(Squeeze)
	for i, line := range l.lines {
		var b strings.Builder
		b.Grow(len(line))
		prev := ""
		eachChar(line, func(char string, r rune, valid bool) {
			in := inSet(r, valid)
			switch {
			case in && !squeeze:
			case in && char == prev:
			default:
				b.WriteString(char)
			}
			prev = char
		})
		l.lines[i] = b.String()
	}
	return nil
}

// eachChar calls f for every UTF-8 character of s in order, with its encoded
// form. A byte that does not start a valid encoding is reported on its own
// with valid set to false.
func eachChar(s string, f func(char string, r rune, valid bool)) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		f(s[i:i+size], r, r != utf8.RuneError || size > 1)
		i += size
	}
}
