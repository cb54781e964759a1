// SPDX-License-Identifier: MPL-2.0

package pipe

import "testing"

func TestUniq(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		opts  []Option
		want  []string
	}{
		{"adjacent only", []string{"a", "a", "b", "a"}, nil, []string{"a", "b", "a"}},
		{
			"count",
			[]string{"hello", "hello", "hello", "world", "world"},
			[]Option{Count},
			[]string{"3 hello", "2 world"},
		},
		{
			"count width follows longest run",
			[]string{"x", "x", "x", "x", "x", "x", "x", "x", "x", "x", "y"},
			[]Option{Count},
			[]string{"10 x", " 1 y"},
		},
		{"duplicates only", []string{"a", "a", "b", "c", "c"}, []Option{DuplicatesOnly}, []string{"a", "c"}},
		{"uniques only", []string{"a", "a", "b", "c", "c"}, []Option{UniquesOnly}, []string{"b"}},
		{"ignore case keeps first", []string{"A", "a", "b"}, []Option{IgnoreCase}, []string{"A", "b"}},
		{"ignore case count", []string{"A", "a", "b"}, []Option{IgnoreCase, Count}, []string{"2 A", "1 b"}},
		{"empty lines form runs", []string{"", "", "a"}, nil, []string{"", "a"}},
		{"empty", nil, []Option{Count}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.input...)
			if err := l.Uniq(tt.opts...); err != nil {
				t.Fatalf("Uniq(%v): %v", tt.opts, err)
			}
			assertLines(t, l, tt.want...)
		})
	}
}

func TestUniq_ExclusiveOptions(t *testing.T) {
	t.Parallel()

	combos := [][]Option{
		{Count, DuplicatesOnly},
		{Count, UniquesOnly},
		{DuplicatesOnly, UniquesOnly},
		{Count, DuplicatesOnly, UniquesOnly},
		{Reverse},
	}
	for _, opts := range combos {
		l := New("a", "a")
		assertConfigError(t, l.Uniq(opts...))
		assertLines(t, l, "a", "a")
	}
}
