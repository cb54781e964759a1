// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

type (
	// Defaults holds the values stages fall back to when a flag is omitted.
	// The CLI fills it from configuration.
	Defaults struct {
		// FoldWidth is the width used by fold without -w.
		FoldWidth int
		// HeadCount is the count used by head without -n or -c.
		HeadCount int
		// TailCount is the count used by tail without -n or -c.
		TailCount int
		// PasteDelimiters is the delimiter list used by paste without -d.
		PasteDelimiters string
		// StableSort makes sort behave as if -s were always given.
		StableSort bool
	}

	// HandlerContext provides execution context for stages.
	HandlerContext struct {
		// Dir is the directory relative file arguments resolve against.
		// Empty means the process working directory.
		Dir string
		// Defaults supplies flag defaults.
		Defaults Defaults
	}

	// handlerContextKey is the context key for storing HandlerContext.
	handlerContextKey struct{}
)

// DefaultDefaults returns the defaults of the classic shell tools.
func DefaultDefaults() Defaults {
	return Defaults{
		FoldWidth:       pipe.DefaultFoldWidth,
		HeadCount:       pipe.DefaultCount,
		TailCount:       pipe.DefaultCount,
		PasteDelimiters: pipe.DefaultDelimiters,
	}
}

// WithHandlerContext stores a HandlerContext in the context.
func WithHandlerContext(ctx context.Context, hc *HandlerContext) context.Context {
	return context.WithValue(ctx, handlerContextKey{}, hc)
}

// GetHandlerContext retrieves the HandlerContext from the context.
// Without one, stages use the process working directory and DefaultDefaults.
func GetHandlerContext(ctx context.Context) *HandlerContext {
	if hc, ok := ctx.Value(handlerContextKey{}).(*HandlerContext); ok && hc != nil {
		return hc
	}
	return &HandlerContext{Defaults: DefaultDefaults()}
}
