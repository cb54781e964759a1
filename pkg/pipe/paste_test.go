// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"slices"
	"testing"
)

func TestPaste(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  []string
		right []string
		seps  string
		want  []string
	}{
		{"tab", []string{"a", "b"}, []string{"1", "2"}, DefaultDelimiters, []string{"a\t1", "b\t2"}},
		{"cycling", []string{"a", "b", "c"}, []string{"1", "2", "3"}, ",;", []string{"a,1", "b;2", "c,3"}},
		{"receiver longer", []string{"a", "b"}, []string{"1"}, ",", []string{"a,1", "b,"}},
		{"other longer", []string{"a"}, []string{"1", "2"}, ",", []string{"a,1", ",2"}},
		{"no separators", []string{"a"}, []string{"1"}, "", []string{"a1"}},
		{"escaped empty separator", []string{"a", "b"}, []string{"1", "2"}, `-\0`, []string{"a-1", "b2"}},
		{"escaped tab", []string{"a"}, []string{"1"}, `\t`, []string{"a\t1"}},
		{"both empty", nil, nil, ",", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.left...)
			other := New(tt.right...)
			if err := l.Paste(other, tt.seps); err != nil {
				t.Fatalf("Paste(%q): %v", tt.seps, err)
			}
			assertLines(t, l, tt.want...)
			assertLines(t, other, tt.right...)
		})
	}
}

func TestPaste_WithItself(t *testing.T) {
	t.Parallel()

	l := New("a", "b")
	if err := l.Paste(l, "-"); err != nil {
		t.Fatal(err)
	}
	assertLines(t, l, "a-a", "b-b")
}

func TestPaste_NilOther(t *testing.T) {
	t.Parallel()

	l := New("a")
	assertConfigError(t, l.Paste(nil, ","))
	assertLines(t, l, "a")
}

func TestParseDelimiters(t *testing.T) {
	t.Parallel()

	got := parseDelimiters(`a\tb\0\\\n\x\`)
	want := []string{"a", "\t", "b", "", `\`, "\n", "x", `\`}
	if !slices.Equal(got, want) {
		t.Errorf("parseDelimiters() = %q, want %q", got, want)
	}
}
