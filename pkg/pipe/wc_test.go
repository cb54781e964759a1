// SPDX-License-Identifier: MPL-2.0

package pipe

import "testing"

func TestWc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		opts  []Option
		want  string
	}{
		{"default", []string{"hello world", "foo"}, nil, "       2       3      14"},
		{"empty input", nil, nil, "       0       0       0"},
		{"lines only", []string{"hello world", "foo"}, []Option{CountLines}, "       2"},
		{"words only", []string{"hello world", "foo"}, []Option{CountWords}, "       3"},
		{"words and bytes", []string{"a  b\tc"}, []Option{CountBytes, CountWords}, "       3       6"},
		{"chars", []string{"héllo"}, []Option{CountChars}, "       5"},
		{"bytes win over chars", []string{"héllo"}, []Option{CountChars, CountBytes}, "       6"},
		{"blank lines have no words", []string{"", "   "}, nil, "       2       0       3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.input...)
			if err := l.Wc(tt.opts...); err != nil {
				t.Fatalf("Wc(%v): %v", tt.opts, err)
			}
			assertLines(t, l, tt.want)
		})
	}
}

func TestWc_RejectsForeignOption(t *testing.T) {
	t.Parallel()

	l := New("a")
	assertConfigError(t, l.Wc(Unique))
	assertLines(t, l, "a")
}

func TestFormatCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		counts []int
		want   string
	}{
		{[]int{2, 3, 14}, "       2       3      14"},
		{[]int{1234567}, " 1234567"},
		{[]int{123456789}, "123456789"},
		{[]int{1, 12345678}, "        1 12345678"},
		{[]int{123456789, 123456789}, "123456789 123456789"},
		{[]int{123456789, 5}, "123456789       5"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := formatCounts(tt.counts); got != tt.want {
			t.Errorf("formatCounts(%v) = %q, want %q", tt.counts, got, tt.want)
		}
	}
}
