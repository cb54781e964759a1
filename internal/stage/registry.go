// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/linepipe/linepipe/pkg/pipe"
)

// ErrUnknownStage is the sentinel error wrapped by UnknownStageError.
var ErrUnknownStage = errors.New("unknown stage")

// DefaultRegistry is the global registry holding every built-in stage.
// Stages are registered during package initialization.
var DefaultRegistry = NewRegistry()

type (
	// Registry manages the mapping of stage names to their implementations.
	// It is safe for concurrent use.
	Registry struct {
		mu     sync.RWMutex
		stages map[string]Stage
	}

	// UnknownStageError is returned when no stage is registered under Name.
	// It wraps ErrUnknownStage for errors.Is() compatibility.
	UnknownStageError struct {
		Name string
	}
)

// Error implements the error interface.
func (e *UnknownStageError) Error() string {
	return fmt.Sprintf("[linepipe] %s: stage not found", e.Name)
}

// Unwrap returns ErrUnknownStage.
func (e *UnknownStageError) Unwrap() error { return ErrUnknownStage }

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		stages: make(map[string]Stage),
	}
}

// Register adds a stage to the registry.
// Panics if a stage with the same name is already registered.
func (r *Registry) Register(s Stage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := s.Name()
	if name == "" {
		panic("stage: cannot register stage with empty name")
	}
	if _, exists := r.stages[name]; exists {
		panic(fmt.Sprintf("stage: %q already registered", name))
	}
	r.stages[name] = s
}

// Lookup retrieves a stage by name.
// Returns nil, false if the stage is not registered.
func (r *Registry) Lookup(name string) (Stage, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stages[name]
	return s, ok
}

// Names returns the names of all registered stages in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.stages))
	for name := range r.stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run applies the stage named by args[0] to lines.
// Returns an *UnknownStageError if the stage is not registered.
func (r *Registry) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	if len(args) == 0 {
		return &UnknownStageError{}
	}
	s, ok := r.Lookup(args[0])
	if !ok {
		return &UnknownStageError{Name: args[0]}
	}
	return s.Run(ctx, lines, args)
}

// RegisterDefault registers a stage in the DefaultRegistry.
// This is typically called from init() functions in stage implementation files.
func RegisterDefault(s Stage) {
	DefaultRegistry.Register(s)
}
