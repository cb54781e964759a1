// SPDX-License-Identifier: MPL-2.0

package pipe

import "slices"

// Lines is an ordered, mutable sequence of text lines. Lines carry no line
// terminator. The zero value is an empty sequence ready to use.
//
// Filter methods mutate the receiver in place and return an error only for
// invalid arguments, in which case the receiver is left unchanged.
type Lines struct {
	lines []string
}

// New returns a sequence holding a copy of lines.
func New(lines ...string) *Lines {
	return &Lines{lines: slices.Clone(lines)}
}

// Len returns the number of lines.
func (l *Lines) Len() int {
	return len(l.lines)
}

// At returns the i-th line. It panics if i is out of range.
func (l *Lines) At(i int) string {
	return l.lines[i]
}

// Slice returns a copy of the lines.
func (l *Lines) Slice() []string {
	return slices.Clone(l.lines)
}

// Clone returns an independent copy of the sequence.
func (l *Lines) Clone() *Lines {
	return New(l.lines...)
}

// Equal reports whether both sequences hold the same lines in the same order.
func (l *Lines) Equal(other *Lines) bool {
	return slices.Equal(l.lines, other.lines)
}

// Push appends lines to the end of the sequence.
func (l *Lines) Push(lines ...string) {
	l.lines = append(l.lines, lines...)
}

// Concat appends a copy of every line of other to the sequence.
func (l *Lines) Concat(other *Lines) {
	if other == nil {
		return
	}
	l.lines = append(l.lines, other.lines...)
}
