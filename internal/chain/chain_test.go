// SPDX-License-Identifier: MPL-2.0

package chain

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/linepipe/linepipe/internal/stage"
	"github.com/linepipe/linepipe/pkg/pipe"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
		want []Invocation
	}{
		{"empty", "", nil},
		{"blank", "   \n", nil},
		{"comment only", "# nothing", nil},
		{"single stage", "sort", []Invocation{{"sort"}}},
		{"pipeline", "grep -i error | sort -u | head -n 3", []Invocation{
			{"grep", "-i", "error"}, {"sort", "-u"}, {"head", "-n", "3"},
		}},
		{"single quotes", "tr -d '[:digit:]'", []Invocation{{"tr", "-d", "[:digit:]"}}},
		{"quoted space", "tr -s ' '", []Invocation{{"tr", "-s", " "}}},
		{"double quotes", `grep "a b"`, []Invocation{{"grep", "a b"}}},
		{"escaped quote", `grep "say \"hi\""`, []Invocation{{"grep", `say "hi"`}}},
		{"backslash escape", `grep a\ b`, []Invocation{{"grep", "a b"}}},
		{"quoted pipe", "grep -E 'a|b' | wc -l", []Invocation{{"grep", "-E", "a|b"}, {"wc", "-l"}}},
		{"mixed quoting", `paste -d',;' "my file"`, []Invocation{{"paste", "-d,;", "my file"}}},
		{"unexpanded glob", "cat *.txt", []Invocation{{"cat", "*.txt"}}},
		{"multiline pipe", "sort |\n  uniq -c", []Invocation{{"sort"}, {"uniq", "-c"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.expr, err)
			}
			if !slices.EqualFunc(got, tt.want, slices.Equal) {
				t.Errorf("Parse(%q) = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParse_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		expr string
	}{
		{"syntax error", "sort |"},
		{"unterminated quote", "grep 'abc"},
		{"redirection", "sort > out.txt"},
		{"input redirection", "sort < in.txt"},
		{"assignment", "LC_ALL=C sort"},
		{"and list", "sort && uniq"},
		{"or list", "sort || uniq"},
		{"sequence", "sort; uniq"},
		{"two lines", "sort\nuniq"},
		{"background", "sort &"},
		{"negation", "! sort"},
		{"pipe all", "sort |& uniq"},
		{"subshell", "(sort)"},
		{"block", "{ sort; }"},
		{"parameter expansion", "grep $HOME"},
		{"quoted parameter expansion", `grep "$HOME"`},
		{"command substitution", "grep $(whoami)"},
		{"arithmetic", "head -n $((1+2))"},
		{"ansi quoting", "tr -d $'\\t'"},
		{"tilde", "cat ~/notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.expr)
			if !errors.Is(err, pipe.ErrConfiguration) {
				t.Fatalf("Parse(%q) = %q, %v; want ErrConfiguration", tt.expr, got, err)
			}
			if !strings.HasPrefix(err.Error(), "chain: ") {
				t.Errorf("error %q lacks the chain prefix", err)
			}
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on an invalid expression")
		}
	}()
	MustParse("sort > out")
}

func TestInvocation_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		inv  Invocation
		want string
	}{
		{Invocation{"head", "-n", "3"}, "head -n 3"},
		{Invocation{"grep", "a b"}, "grep 'a b'"},
		{Invocation{}, ""},
	}
	for _, tt := range tests {
		if got := tt.inv.String(); got != tt.want {
			t.Errorf("%q.String() = %q, want %q", []string(tt.inv), got, tt.want)
		}
	}

	// String output parses back to the same invocation.
	inv := Invocation{"tr", "-d", "[:digit:]", "it's"}
	got := MustParse(inv.String())
	if len(got) != 1 || !slices.Equal(got[0], inv) {
		t.Errorf("round trip of %q = %q", inv.String(), got)
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	lines := pipe.New("b", "a", "b", "c", "a")
	invocations := MustParse("sort | uniq -c | head -n 2")
	if err := Run(t.Context(), stage.DefaultRegistry, lines, invocations); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if got, want := lines.Slice(), []string{"2 a", "2 b"}; !slices.Equal(got, want) {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestRun_StageError(t *testing.T) {
	t.Parallel()

	lines := pipe.New("b", "a")
	err := Run(t.Context(), stage.DefaultRegistry, lines, MustParse("sort | fold -w 0 | head"))

	var se *StageError
	if !errors.As(err, &se) {
		t.Fatalf("Run error = %v, want *StageError", err)
	}
	if se.Position != 2 || se.Invocation.Name() != "fold" {
		t.Errorf("StageError = %+v, want position 2 (fold)", se)
	}
	if !errors.Is(err, pipe.ErrConfiguration) {
		t.Errorf("errors.Is(err, ErrConfiguration) = false for %v", err)
	}
	if !IsStageError(err) {
		t.Error("IsStageError = false")
	}
	// The first stage already ran; the failing one left the lines alone.
	if got := lines.Slice(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("lines = %q, want [a b]", got)
	}
}

func TestRun_UnknownStage(t *testing.T) {
	t.Parallel()

	err := Run(t.Context(), stage.DefaultRegistry, pipe.New("a"), MustParse("sort | frobnicate"))
	if !errors.Is(err, stage.ErrUnknownStage) {
		t.Fatalf("Run error = %v, want ErrUnknownStage", err)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	lines := pipe.New("b", "a")
	err := Run(ctx, stage.DefaultRegistry, lines, MustParse("sort"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run error = %v, want context.Canceled", err)
	}
	if IsStageError(err) {
		t.Error("cancellation should not be reported as a stage error")
	}
	if got := lines.Slice(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("lines = %q, want them untouched", got)
	}
}
