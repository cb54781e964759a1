// SPDX-License-Identifier: MPL-2.0

package pipe

import "testing"

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		from, to string
		want     []string
	}{
		{"positional", []string{"aabbcc d"}, "abc", "xyz", []string{"xxyyzz d"}},
		{"short target repeats last", []string{"abcd"}, "abcd", "xy", []string{"xyyy"}},
		{"classes", []string{"Hello, World"}, "[:lower:]", "[:upper:]", []string{"HELLO, WORLD"}},
		{"ranges", []string{"abcd"}, "a-c", "A-C", []string{"ABCd"}},
		{"last mapping wins", []string{"a"}, "aa", "xy", []string{"y"}},
		{"escape", []string{"a-b"}, `\-`, "_", []string{"a_b"}},
		{"multibyte", []string{"café"}, "é", "e", []string{"cafe"}},
		{"empty sets", []string{"abc"}, "", "", []string{"abc"}},
		{"invalid utf-8 kept", []string{"caf\xe9 abc"}, "abc", "xyz", []string{"zxf\xe9 xyz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.input...)
			if err := l.Translate(tt.from, tt.to); err != nil {
				t.Fatalf("Translate(%q, %q): %v", tt.from, tt.to, err)
			}
			assertLines(t, l, tt.want...)
		})
	}
}

func TestTranslate_EmptyTarget(t *testing.T) {
	t.Parallel()

	l := New("abc")
	assertConfigError(t, l.Translate("a", ""))
	assertLines(t, l, "abc")
}

func TestTrSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []string
		pattern string
		opts    []Option
		want    []string
	}{
		{"delete digits", []string{"a1b2"}, "[:digit:]", []Option{Delete}, []string{"ab"}},
		{"delete complement", []string{"a1b2"}, "[:digit:]", []Option{Delete, Complement}, []string{"12"}},
		{"delete range", []string{"hello"}, "a-h", []Option{Delete}, []string{"llo"}},
		{"squeeze spaces", []string{"a   b  c"}, " ", []Option{Squeeze}, []string{"a b c"}},
		{"squeeze only set members", []string{"aabb"}, "a", []Option{Squeeze}, []string{"abb"}},
		{"squeeze complement", []string{"aabb"}, "a", []Option{Squeeze, Complement}, []string{"aab"}},
		{"squeeze needs equal neighbours", []string{"abab"}, "ab", []Option{Squeeze}, []string{"abab"}},
		{"empty line", []string{""}, "a", []Option{Delete}, []string{""}},
		{"delete keeps invalid utf-8", []string{"caf\xe9 abc"}, "z", []Option{Delete}, []string{"caf\xe9 abc"}},
		{"delete around invalid utf-8", []string{"caf\xe9 abc"}, "a", []Option{Delete}, []string{"cf\xe9 bc"}},
		{"squeeze keeps invalid utf-8", []string{"caf\xe9 abc"}, " ", []Option{Squeeze}, []string{"caf\xe9 abc"}},
		{"squeeze beside invalid utf-8", []string{"\xe9\xe9  x"}, " ", []Option{Squeeze}, []string{"\xe9\xe9 x"}},
		{"complement deletes invalid utf-8", []string{"a\xe91"}, "[:alnum:]", []Option{Delete, Complement}, []string{"a1"}},
		{"complement squeezes invalid utf-8", []string{"\xe9\xe9a"}, "a", []Option{Squeeze, Complement}, []string{"\xe9a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := New(tt.input...)
			if err := l.TrSet(tt.pattern, tt.opts...); err != nil {
				t.Fatalf("TrSet(%q, %v): %v", tt.pattern, tt.opts, err)
			}
			assertLines(t, l, tt.want...)
		})
	}
}

func TestTrSet_RequiresExactlyOneMode(t *testing.T) {
	t.Parallel()

	combos := [][]Option{
		nil,
		{Complement},
		{Delete, Squeeze},
		{Delete, Squeeze, Complement},
		{Delete, Unique},
	}
	for _, opts := range combos {
		l := New("aa")
		assertConfigError(t, l.TrSet("a", opts...))
		assertLines(t, l, "aa")
	}
}

func TestTranslate_RoundTripKeepsInvalidUTF8(t *testing.T) {
	t.Parallel()

	line := "caf\xe9 abc\xff"
	l := New(line)
	if err := l.Translate("abc", "xyz"); err != nil {
		t.Fatal(err)
	}
	if err := l.Translate("xyz", "abc"); err != nil {
		t.Fatal(err)
	}
	assertLines(t, l, line)
}
