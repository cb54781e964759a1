// SPDX-License-Identifier: MPL-2.0

package pipe

// DefaultDelimiters is the separator list paste uses when none is given.
const DefaultDelimiters = "\t"

// Paste joins the i-th line of other onto the i-th line of the receiver.
// The separator for line i is the (i mod n)-th entry of separators, which
// understands the escapes "\t", "\n", "\\" and "\0" (no separator). An empty
// list joins with nothing.
//
// The sequences need not be the same length: a receiver line without a
// partner gets a trailing lone separator, and an extra line of other becomes
// a separator followed by that line. Other is read but never modified.
func (l *Lines) Paste(other *Lines, separators string) error {
	if other == nil {
		return configErrorf(opPaste, "a second sequence is required")
	}

	seps := parseDelimiters(separators)
	size := max(len(l.lines), len(other.lines))
	out := make([]string, size)
	for i := range size {
		sep := ""
		if len(seps) > 0 {
			sep = seps[i%len(seps)]
		}
		switch {
		case i < len(l.lines) && i < len(other.lines):
			out[i] = l.lines[i] + sep + other.lines[i]
		case i < len(l.lines):
			out[i] = l.lines[i] + sep
		default:
			out[i] = sep + other.lines[i]
		}
	}

	l.lines = out
	return nil
}

// parseDelimiters splits a paste delimiter list into separators, resolving
// backslash escapes. A trailing lone backslash is kept literally.
func parseDelimiters(list string) []string {
	var seps []string
	runes := []rune(list)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i+1 == len(runes) {
			seps = append(seps, string(runes[i]))
			continue
		}
		i++
		switch runes[i] {
		case 't':
			seps = append(seps, "\t")
		case 'n':
			seps = append(seps, "\n")
		case '0':
			seps = append(seps, "")
		default:
			seps = append(seps, string(runes[i]))
		}
	}
	return seps
}
