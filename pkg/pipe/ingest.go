// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"bufio"
	"errors"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/linepipe/linepipe/internal/textutil"
)

// ReadFrom appends every line read from r to the sequence, implementing
// io.ReaderFrom. Lines are split on '\n' and one trailing '\r' is dropped,
// so CRLF input yields the same lines as LF input. A final line without a
// terminator is kept.
func (l *Lines) ReadFrom(r io.Reader) (int64, error) {
	br := bufio.NewReader(r)
	var n int64
	for {
		line, err := br.ReadString('\n')
		n += int64(len(line))
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			l.lines = append(l.lines, line)
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Stream reads every reader to the end and concatenates their lines in call
// order. The first read error is returned together with the lines read so far.
func Stream(readers ...io.Reader) (*Lines, error) {
	l := New()
	for _, r := range readers {
		if _, err := l.ReadFrom(r); err != nil {
			return l, err
		}
	}
	return l, nil
}

// Cat reads the named files in order. Files that cannot be opened or read are
// skipped, as the shell tool skips them after printing a warning; the warning
// goes to the debug log here.
//
// NumberNonBlank prefixes every non-empty line with its number and wins over
// Number, which numbers every line. Numbers are right-justified to the digit
// count of the total line count and followed by a space. SqueezeBlank collapses
// runs of empty lines into one, unless Number is also given.
func Cat(paths []string, opts ...Option) (*Lines, error) {
	set, err := checkOptions(opCat, opts)
	if err != nil {
		return nil, err
	}

	l := New()
	for _, path := range paths {
		readFile(l, path)
	}

	switch {
	case set.has(NumberNonBlank):
		l.numberLines(true)
	case set.has(Number):
		l.numberLines(false)
	}
	if set.has(SqueezeBlank) && !set.has(Number) {
		l.lines = slices.CompactFunc(l.lines, func(a, b string) bool { return a == "" && b == "" })
	}
	return l, nil
}

// Echo joins strs with a space, or with a newline when JoinLines is given,
// and ingests the result as one source.
func Echo(strs []string, opts ...Option) (*Lines, error) {
	set, err := checkOptions(opEcho, opts)
	if err != nil {
		return nil, err
	}

	sep := " "
	if set.has(JoinLines) {
		sep = "\n"
	}
	return Stream(strings.NewReader(strings.Join(strs, sep)))
}

func readFile(l *Lines, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Debug("skipping unreadable input", "path", path, "err", err)
		return
	}
	defer func() { _ = f.Close() }() //nolint:errcheck // Read-only file

	if _, err := l.ReadFrom(f); err != nil {
		log.Debug("input truncated by read error", "path", path, "err", err)
	}
}

func (l *Lines) numberLines(skipBlank bool) {
	width := textutil.CountDigits(len(l.lines))
	next := 1
	for i, line := range l.lines {
		if skipBlank && line == "" {
			continue
		}
		l.lines[i] = textutil.PadLeftInt(next, width) + " " + line
		next++
	}
}
