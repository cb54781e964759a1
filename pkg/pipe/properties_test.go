// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"path/filepath"
	"testing"
)

func TestUniq_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		nil,
		{"a"},
		{"a", "a", "b", "b", "a"},
		{"x", "", "", "x", "x", "y"},
	}
	for _, input := range inputs {
		once := New(input...)
		if err := once.Uniq(); err != nil {
			t.Fatal(err)
		}
		twice := once.Clone()
		if err := twice.Uniq(); err != nil {
			t.Fatal(err)
		}
		if !once.Equal(twice) {
			t.Errorf("uniq(uniq(%q)) = %q, want %q", input, twice.Slice(), once.Slice())
		}
	}
}

func TestSortUniq_RemovesAllDuplicates(t *testing.T) {
	t.Parallel()

	sorted := New("a", "b", "a")
	if err := NewChain(sorted).Sort().Uniq().Err(); err != nil {
		t.Fatal(err)
	}
	assertLines(t, sorted, "a", "b")

	unsorted := New("a", "b", "a")
	if err := unsorted.Uniq(); err != nil {
		t.Fatal(err)
	}
	assertLines(t, unsorted, "a", "b", "a")

	if sorted.Equal(unsorted) {
		t.Error("sort+uniq and uniq alone should differ on non-adjacent duplicates")
	}
}

func TestHeadThenTail_PrefixStable(t *testing.T) {
	t.Parallel()

	input := []string{"l1", "l2", "l3", "l4", "l5"}
	for n := 0; n <= len(input); n++ {
		l := New(input...)
		if err := NewChain(l).Head(n).Tail(min(n, l.Len())).Err(); err != nil {
			t.Fatal(err)
		}
		assertLines(t, l, input[:n]...)
	}
}

func TestTranslate_RoundTrip(t *testing.T) {
	t.Parallel()

	input := []string{"abc", "cab", "a quick brown dog", ""}
	l := New(input...)
	if err := NewChain(l).Translate("abc", "xyz").Translate("xyz", "abc").Err(); err != nil {
		t.Fatal(err)
	}
	assertLines(t, l, input...)
}

func TestFile_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "round.txt")
	original := New("first", "", "  indented", "tab\there", "last")
	original.Overwrite(path)

	back, err := Cat([]string{path})
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(original) {
		t.Errorf("round trip = %q, want %q", back.Slice(), original.Slice())
	}
}
