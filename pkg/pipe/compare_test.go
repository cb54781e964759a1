// SPDX-License-Identifier: MPL-2.0

package pipe

import "testing"

func TestNewComparator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		a, b string
		want bool
	}{
		{"lexical", nil, "a", "b", true},
		{"lexical is byte order", nil, "B", "a", true},
		{"lexical equal", nil, "a", "a", false},
		{"shorter prefix first", nil, "ab", "abc", true},
		{"fold case", []Option{FoldCase}, "a", "B", true},
		{"fold case equal", []Option{FoldCase}, "ABC", "abc", false},
		{"dictionary skips punctuation", []Option{Dictionary}, "ab", "a-c", true},
		{"dictionary is case sensitive", []Option{Dictionary}, "B", "a", true},
		{"dictionary keeps blanks", []Option{Dictionary}, "a b", "ab", true},
		{"dictionary keeps tabs", []Option{Dictionary}, "a\tb", "ab", true},
		{"dictionary skips vertical tab", []Option{Dictionary}, "a\vb", "ab", false},
		{"dictionary skips carriage return", []Option{Dictionary}, "ab", "a\rb", false},
		{"dictionary fold", []Option{Dictionary, FoldCase}, "a.b", "A-C", true},
		{"skip blank", []Option{SkipBlank}, "a", "  b", true},
		{"without skip blank spaces sort first", nil, "  b", "a", true},
		{"reverse", []Option{Reverse}, "b", "a", true},
		{"reverse equal", []Option{Reverse}, "a", "a", false},
		{"reverse fold", []Option{Reverse, FoldCase}, "b", "A", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			less, err := NewComparator(tt.opts...)
			if err != nil {
				t.Fatalf("NewComparator(%v): %v", tt.opts, err)
			}
			if got := less(tt.a, tt.b); got != tt.want {
				t.Errorf("less(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNewComparator_DictionaryFoldEquality(t *testing.T) {
	t.Parallel()

	less, err := NewComparator(Dictionary, FoldCase)
	if err != nil {
		t.Fatal(err)
	}

	a, b := "HELLO world", "hello, World"
	if less(a, b) || less(b, a) {
		t.Errorf("%q and %q should compare equal", a, b)
	}
}

func TestNewComparator_ReverseIsStrictWeakOrder(t *testing.T) {
	t.Parallel()

	less, err := NewComparator(Reverse, FoldCase)
	if err != nil {
		t.Fatal(err)
	}

	// Irreflexive and asymmetric even for lines that compare equal.
	for _, pair := range [][2]string{{"a", "a"}, {"a", "A"}, {"x", "y"}} {
		if less(pair[0], pair[0]) {
			t.Errorf("less(%q, %q) = true, want false", pair[0], pair[0])
		}
		if less(pair[0], pair[1]) && less(pair[1], pair[0]) {
			t.Errorf("less is not asymmetric for %q, %q", pair[0], pair[1])
		}
	}
}

func TestNewComparator_RejectsUnsupportedOptions(t *testing.T) {
	t.Parallel()

	for _, opt := range []Option{Unique, Merge, Stable, IgnoreCase, Option("bogus")} {
		if _, err := NewComparator(opt); err == nil {
			t.Errorf("NewComparator(%q) should fail", opt)
		} else {
			assertConfigError(t, err)
		}
	}
}
