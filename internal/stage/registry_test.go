// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/linepipe/linepipe/pkg/pipe"
)

// mockStage is a test implementation of Stage.
type mockStage struct {
	baseStage
	runFn  func(ctx context.Context, lines *pipe.Lines, args []string) error
	called bool
	args   []string
}

func (m *mockStage) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	m.called = true
	m.args = args
	if m.runFn != nil {
		return m.runFn(ctx, lines, args)
	}
	return nil
}

func newMockStage(name string) *mockStage {
	return &mockStage{baseStage: baseStage{name: name}}
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}
	if len(r.stages) != 0 {
		t.Errorf("NewRegistry should create empty registry, got %d stages", len(r.stages))
	}
}

func TestRegistry_Register_PanicOnDuplicate(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(newMockStage("test"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()

	r.Register(newMockStage("test"))
}

func TestRegistry_Register_PanicOnEmptyName(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty name registration")
		}
	}()

	r.Register(newMockStage(""))
}

func TestRegistry_LookupAndNames(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	sortStage := newMockStage("sort")
	r.Register(sortStage)
	r.Register(newMockStage("cat"))
	r.Register(newMockStage("grep"))

	found, ok := r.Lookup("sort")
	if !ok || found != sortStage {
		t.Error("Lookup returned wrong stage")
	}
	if _, ok := r.Lookup("nonexistent"); ok {
		t.Error("Lookup should return false for unregistered stage")
	}

	if got := r.Names(); !slices.Equal(got, []string{"cat", "grep", "sort"}) {
		t.Errorf("Names() = %v, want sorted names", got)
	}
}

func TestRegistry_Run(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	mock := newMockStage("upper")
	mock.runFn = func(_ context.Context, lines *pipe.Lines, _ []string) error {
		return lines.Translate("a-z", "A-Z")
	}
	r.Register(mock)

	lines := pipe.New("abc")
	if err := r.Run(t.Context(), lines, []string{"upper", "-x"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if !mock.called {
		t.Error("stage was not called")
	}
	if !slices.Equal(mock.args, []string{"upper", "-x"}) {
		t.Errorf("args = %v, want [upper -x]", mock.args)
	}
	if got := lines.At(0); got != "ABC" {
		t.Errorf("line = %q, want %q", got, "ABC")
	}
}

func TestRegistry_Run_NotFound(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.Run(t.Context(), pipe.New(), []string{"nonexistent"})
	if !errors.Is(err, ErrUnknownStage) {
		t.Fatalf("Run() error = %v, want ErrUnknownStage", err)
	}
	if got := err.Error(); got != "[linepipe] nonexistent: stage not found" {
		t.Errorf("Error() = %q", got)
	}

	if err := r.Run(t.Context(), pipe.New(), nil); !errors.Is(err, ErrUnknownStage) {
		t.Errorf("Run(nil args) error = %v, want ErrUnknownStage", err)
	}
}

func TestDefaultRegistry_HasAllStages(t *testing.T) {
	t.Parallel()

	want := []string{"cat", "fold", "grep", "head", "paste", "sort", "tail", "tr", "uniq", "wc"}
	if got := DefaultRegistry.Names(); !slices.Equal(got, want) {
		t.Errorf("DefaultRegistry.Names() = %v, want %v", got, want)
	}

	for _, name := range want {
		s, _ := DefaultRegistry.Lookup(name)
		if s.Name() != name {
			t.Errorf("stage %q reports Name() = %q", name, s.Name())
		}
		if !strings.HasPrefix(s.Usage(), name+" ") {
			t.Errorf("stage %q usage %q does not start with its name", name, s.Usage())
		}
		if len(s.SupportedFlags()) == 0 {
			t.Errorf("stage %q has no documented flags", name)
		}
	}
}
