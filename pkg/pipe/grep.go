// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/linepipe/linepipe/internal/textutil"
)

var (
	errUnterminatedBracket = errors.New("unterminated bracket expression")
	errTrailingBackslash   = errors.New("trailing backslash")
)

// Grep keeps the lines matching pattern.
//
// The pattern uses the POSIX basic grammar unless Extended is given: in basic
// patterns "\(", "\)", "\{", "\}", "\|", "\+" and "\?" are operators and their
// bare forms are literal, while extended patterns use the bare forms. Bracket
// expressions accept POSIX classes such as "[[:digit:]]", and "\1" through
// "\9" refer back to groups. IgnoreCase matches case-insensitively and Invert
// keeps the lines that do not match. The empty pattern matches every line.
//
// A pattern that fails to compile yields a *PatternError and leaves the
// sequence unchanged.
func (l *Lines) Grep(pattern string, opts ...Option) error {
	set, err := checkOptions(opGrep, opts)
	if err != nil {
		return err
	}

	re, err := compileGrep(pattern, set.has(Extended), set.has(IgnoreCase))
	if err != nil {
		return err
	}

	keep := !set.has(Invert)
	out := make([]string, 0, len(l.lines))
	for _, line := range l.lines {
		matched, matchErr := re.MatchString(line)
		if matchErr != nil {
			return &PatternError{Pattern: pattern, Err: matchErr}
		}
		if matched == keep {
			out = append(out, line)
		}
	}

	l.lines = out
	return nil
}

func compileGrep(pattern string, extended, ignoreCase bool) (*regexp2.Regexp, error) {
	expr, err := translatePattern(pattern, extended)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	flags := regexp2.None
	if ignoreCase {
		flags |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(expr, flags)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// translatePattern rewrites a POSIX basic or extended pattern into the
// grammar accepted by regexp2.
func translatePattern(pattern string, extended bool) (string, error) {
	runes := []rune(pattern)
	var out strings.Builder
	out.Grow(len(pattern) + 8)

	// atStart is true wherever a '*' has nothing to repeat and is literal.
	atStart := true
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\\':
			if i+1 == len(runes) {
				return "", errTrailingBackslash
			}
			i++
			esc := translateEscape(runes[i], extended)
			out.WriteString(esc)
			atStart = esc == "(" || esc == "|"
			continue
		case r == '[':
			end, err := translateBracket(&out, runes, i)
			if err != nil {
				return "", err
			}
			i = end
		case r == '*' && atStart:
			out.WriteString(`\*`)
		case r == '^' && atStart:
			out.WriteRune(r)
			continue
		case r == '^' && !extended:
			out.WriteString(`\^`)
		case r == '$' && !extended && !basicEndAnchor(runes, i):
			out.WriteString(`\$`)
		case strings.ContainsRune("(){}|+?", r):
			if extended {
				out.WriteRune(r)
				atStart = r == '(' || r == '|'
				continue
			}
			out.WriteByte('\\')
			out.WriteRune(r)
		default:
			out.WriteRune(r)
		}
		atStart = false
	}

	return out.String(), nil
}

// basicEndAnchor reports whether the '$' at runes[i] anchors in the basic
// grammar: at the end of the pattern, or before `\)` or `\|`.
func basicEndAnchor(runes []rune, i int) bool {
	if i+1 == len(runes) {
		return true
	}
	return runes[i+1] == '\\' && i+2 < len(runes) && (runes[i+2] == ')' || runes[i+2] == '|')
}

// translateEscape maps the character following a backslash.
func translateEscape(r rune, extended bool) string {
	switch {
	case strings.ContainsRune("(){}|+?", r):
		if extended {
			return `\` + string(r)
		}
		return string(r)
	case r == '<' || r == '>':
		return `\b`
	case '1' <= r && r <= '9', strings.ContainsRune("wWsSbB", r):
		return `\` + string(r)
	case ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'):
		return string(r)
	default:
		return regexp2.Escape(string(r))
	}
}

// translateBracket copies the bracket expression starting at runes[start]
// and returns the index of its closing ']'. POSIX classes are expanded to
// their members and characters special to regexp2 inside a set are escaped.
func translateBracket(out *strings.Builder, runes []rune, start int) (int, error) {
	out.WriteByte('[')
	i := start + 1
	if i < len(runes) && runes[i] == '^' {
		out.WriteByte('^')
		i++
	}

	for first := true; i < len(runes); i, first = i+1, false {
		r := runes[i]
		switch {
		case r == ']' && !first:
			out.WriteByte(']')
			return i, nil
		case r == '[' && i+1 < len(runes) && runes[i+1] == ':':
			end := classEnd(runes, i+2)
			if end < 0 {
				writeSetRune(out, r)
				continue
			}
			name := string(runes[i+2 : end])
			members, ok := textutil.ClassMembers(name)
			if !ok {
				return 0, fmt.Errorf("unknown character class %q", name)
			}
			for _, m := range members {
				writeSetRune(out, m)
			}
			i = end + 1
		case r == '-':
			out.WriteRune(r)
		default:
			writeSetRune(out, r)
		}
	}

	return 0, errUnterminatedBracket
}

// classEnd returns the index of the ':' closing a "[:name:]" class whose name
// starts at from, or -1.
func classEnd(runes []rune, from int) int {
	for j := from; j+1 < len(runes); j++ {
		if runes[j] == ':' && runes[j+1] == ']' {
			return j
		}
	}
	return -1
}

func writeSetRune(out *strings.Builder, r rune) {
	if strings.ContainsRune(`\]^-[`, r) {
		out.WriteByte('\\')
	}
	out.WriteRune(r)
}
