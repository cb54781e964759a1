// SPDX-License-Identifier: MPL-2.0

package pipe

import "testing"

func TestSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		opts  []Option
		want  []string
	}{
		{"ascending", []string{"c", "a", "b"}, nil, []string{"a", "b", "c"}},
		{"reverse", []string{"c", "a", "b"}, []Option{Reverse}, []string{"c", "b", "a"}},
		{"unique", []string{"b", "a", "b", "a"}, []Option{Unique}, []string{"a", "b"}},
		{"fold stable", []string{"x", "X", "a"}, []Option{FoldCase, Stable}, []string{"a", "x", "X"}},
		{
			"fold stable unique keeps first of group",
			[]string{"b", "B", "a", "A"},
			[]Option{FoldCase, Stable, Unique},
			[]string{"a", "b"},
		},
		{"skip blank", []string{"  b", "a", " c"}, []Option{SkipBlank}, []string{"a", "  b", " c"}},
		{
			"dictionary",
			[]string{"a-c", "ab", "a.a"},
			[]Option{Dictionary, Stable},
			[]string{"a.a", "ab", "a-c"},
		},
		{"empty", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.input...)
			if err := l.Sort(tt.opts...); err != nil {
				t.Fatalf("Sort(%v): %v", tt.opts, err)
			}
			assertLines(t, l, tt.want...)
		})
	}
}

func TestSort_RejectsMergeAndForeignOptions(t *testing.T) {
	t.Parallel()

	for _, opt := range []Option{Merge, IgnoreCase, ByByte} {
		l := New("b", "a")
		err := l.Sort(opt)
		assertConfigError(t, err)
		assertLines(t, l, "b", "a")
	}
}

func TestSortMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  []string
		right []string
		opts  []Option
		want  []string
	}{
		{
			"interleave",
			[]string{"a", "c", "e"}, []string{"b", "c", "d"},
			[]Option{Merge},
			[]string{"a", "b", "c", "c", "d", "e"},
		},
		{"ties keep receiver first", []string{"A"}, []string{"a"}, []Option{Merge, FoldCase}, []string{"A", "a"}},
		{"reverse", []string{"e", "c"}, []string{"d", "a"}, []Option{Merge, Reverse}, []string{"e", "d", "c", "a"}},
		{"unique", []string{"a", "b"}, []string{"b", "c"}, []Option{Merge, Unique}, []string{"a", "b", "c"}},
		{"empty receiver", nil, []string{"a"}, []Option{Merge}, []string{"a"}},
		{"empty other", []string{"a"}, nil, []Option{Merge}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.left...)
			other := New(tt.right...)
			if err := l.SortMerge(other, tt.opts...); err != nil {
				t.Fatalf("SortMerge(%v): %v", tt.opts, err)
			}
			assertLines(t, l, tt.want...)
			assertLines(t, other, tt.right...)
		})
	}
}

func TestSortMerge_Validation(t *testing.T) {
	t.Parallel()

	t.Run("merge option required", func(t *testing.T) {
		t.Parallel()
		l := New("a")
		assertConfigError(t, l.SortMerge(New("b")))
		assertLines(t, l, "a")
	})

	t.Run("second sequence required", func(t *testing.T) {
		t.Parallel()
		l := New("a")
		assertConfigError(t, l.SortMerge(nil, Merge))
		assertLines(t, l, "a")
	})

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()
		l := New("a")
		assertConfigError(t, l.SortMerge(New("b"), Merge, Count))
	})
}
