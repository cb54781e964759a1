// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"strings"
	"unicode/utf8"

	"github.com/linepipe/linepipe/internal/textutil"
)

// wcFieldWidth is the column each count is right-justified to.
const wcFieldWidth = 8

// Wc replaces the sequence with one summary line. The counts appear in the
// order lines, words, bytes (or characters), each right-justified to eight
// columns. Without options, lines, words, and bytes are reported. Words are
// maximal runs of non-whitespace. Bytes count line content only, never
// terminators. CountChars counts UTF-8 characters and is ignored when
// CountBytes is also given.
func (l *Lines) Wc(opts ...Option) error {
	set, err := checkOptions(opWc, opts)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		set = optionSet{CountLines: {}, CountWords: {}, CountBytes: {}}
	}

	words, bytes, chars := 0, 0, 0
	for _, line := range l.lines {
		words += len(strings.Fields(line))
		bytes += len(line)
		chars += utf8.RuneCountInString(line)
	}

	var counts []int
	if set.has(CountLines) {
		counts = append(counts, len(l.lines))
	}
	if set.has(CountWords) {
		counts = append(counts, words)
	}
	switch {
	case set.has(CountBytes):
		counts = append(counts, bytes)
	case set.has(CountChars):
		counts = append(counts, chars)
	}

	l.lines = []string{formatCounts(counts)}
	return nil
}

// formatCounts right-justifies each count to wcFieldWidth. A count as wide as
// the column gets a leading space so it stays apart from the previous one.
func formatCounts(counts []int) string {
	var b strings.Builder
	for i, n := range counts {
		if i > 0 && textutil.CountDigits(n) >= wcFieldWidth {
			b.WriteByte(' ')
		}
		b.WriteString(textutil.PadLeftInt(n, wcFieldWidth))
	}
	return b.String()
}
