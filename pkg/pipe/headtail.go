// SPDX-License-Identifier: MPL-2.0

package pipe

// DefaultCount is the number of lines Head and Tail keep in the shell tools.
const DefaultCount = 10

// Head keeps the first n lines. With ByByte it keeps the first n bytes of
// content instead, cutting the last retained line at the byte boundary; line
// terminators are not counted. Asking for more than is available is a no-op.
func (l *Lines) Head(n int, opts ...Option) error {
	byByte, err := checkCount(opHead, n, opts)
	if err != nil {
		return err
	}

	if byByte {
		l.lines = headBytes(l.lines, n)
		return nil
	}
	if n < len(l.lines) {
		l.lines = l.lines[:n]
	}
	return nil
}

// Tail keeps the last n lines. With ByByte it keeps the last n bytes of
// content, trimming the prefix of the first retained line.
func (l *Lines) Tail(n int, opts ...Option) error {
	byByte, err := checkCount(opTail, n, opts)
	if err != nil {
		return err
	}

	if byByte {
		l.lines = tailBytes(l.lines, n)
		return nil
	}
	if n < len(l.lines) {
		l.lines = append([]string(nil), l.lines[len(l.lines)-n:]...)
	}
	return nil
}

// checkCount validates the options and count shared by Head and Tail and
// reports whether byte mode was requested.
func checkCount(op string, n int, opts []Option) (bool, error) {
	set, err := checkOptions(op, opts)
	if err != nil {
		return false, err
	}
	if set.has(ByLine) && set.has(ByByte) {
		return false, configErrorf(op, "by-line and by-byte are mutually exclusive")
	}
	if n < 0 {
		return false, configErrorf(op, "count must not be negative, got %d", n)
	}
	return set.has(ByByte), nil
}

func headBytes(lines []string, n int) []string {
	total := 0
	for i, line := range lines {
		if total+len(line) < n {
			total += len(line)
			continue
		}
		keep := n - total
		out := lines[:i:i]
		if keep > 0 {
			out = append(out, line[:keep])
		}
		return out
	}
	return lines
}

func tailBytes(lines []string, n int) []string {
	total := 0
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if total+len(line) < n {
			total += len(line)
			continue
		}
		keep := n - total
		out := make([]string, 0, len(lines)-i)
		if keep > 0 {
			out = append(out, line[len(line)-keep:])
		}
		return append(out, lines[i+1:]...)
	}
	return lines
}
