// SPDX-License-Identifier: MPL-2.0

package pipe

import "github.com/linepipe/linepipe/internal/textutil"

// DefaultFoldWidth is the column width used by FoldDefault.
const DefaultFoldWidth = 80

// Fold wraps every line wider than width display columns into several lines.
// A tab counts as eight columns. Lines are cut at the exact column limit, or
// with BreakAtBlank after the last whitespace that fits, falling back to the
// limit when the chunk has no whitespace. Width must be positive.
func (l *Lines) Fold(width int, opts ...Option) error {
	set, err := checkOptions(opFold, opts)
	if err != nil {
		return err
	}
	if width <= 0 {
		return configErrorf(opFold, "width must be positive, got %d", width)
	}

	breakAtBlank := set.has(BreakAtBlank)
	out := make([]string, 0, len(l.lines))
	for _, line := range l.lines {
		if line == "" {
			out = append(out, line)
			continue
		}
		for line != "" {
			n := textutil.WrappedLength(line, width, breakAtBlank)
			out = append(out, line[:n])
			line = line[n:]
		}
	}

	l.lines = out
	return nil
}

// FoldDefault is Fold with DefaultFoldWidth.
func (l *Lines) FoldDefault(opts ...Option) error {
	return l.Fold(DefaultFoldWidth, opts...)
}
