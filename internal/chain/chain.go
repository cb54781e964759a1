// SPDX-License-Identifier: MPL-2.0

package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"

	"github.com/linepipe/linepipe/pkg/pipe"
)

const opChain = "chain"

type (
	// Invocation is one stage of a pipeline: the stage name followed by its
	// arguments, with shell quoting already removed.
	Invocation []string

	// Runner executes a single stage invocation. *stage.Registry implements it.
	Runner interface {
		Run(ctx context.Context, lines *pipe.Lines, args []string) error
	}

	// StageError reports which stage of a pipeline failed.
	StageError struct {
		// Position is the 1-based index of the stage in the pipeline.
		Position   int
		Invocation Invocation
		Err        error
	}
)

// Name returns the stage name, or "" for an empty invocation.
func (inv Invocation) Name() string {
	if len(inv) == 0 {
		return ""
	}
	return inv[0]
}

// String renders the invocation back into shell syntax, quoting where needed.
func (inv Invocation) String() string {
	words := make([]string, len(inv))
	for i, w := range inv {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			q = w
		}
		words[i] = q
	}
	return strings.Join(words, " ")
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v", e.Position, e.Invocation.Name(), e.Err)
}

// Unwrap returns the error of the failing stage.
func (e *StageError) Unwrap() error { return e.Err }

// Parse splits a pipeline expression into invocations. An empty or
// comment-only expression yields no invocations.
func Parse(expr string) ([]Invocation, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(expr), "")
	if err != nil {
		return nil, &pipe.ConfigurationError{Op: opChain, Reason: err.Error()}
	}

	switch len(file.Stmts) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, unsupported(file.Stmts[1].Pos(), "more than one pipeline")
	}

	var invocations []Invocation
	if err := collect(file.Stmts[0], &invocations); err != nil {
		return nil, err
	}
	return invocations, nil
}

// MustParse is like Parse but panics on error. Intended for fixed
// expressions in tests and examples.
func MustParse(expr string) []Invocation {
	invocations, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return invocations
}

// Run executes the invocations in order against lines, stopping at the first
// failing stage or when ctx is done.
func Run(ctx context.Context, r Runner, lines *pipe.Lines, invocations []Invocation) error {
	for i, inv := range invocations {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("running stage", "pos", i+1, "stage", inv.String(), "lines", lines.Len())
		if err := r.Run(ctx, lines, inv); err != nil {
			return &StageError{Position: i + 1, Invocation: inv, Err: err}
		}
	}
	return nil
}

// collect walks a pipe tree left to right, appending one invocation per
// simple command.
func collect(stmt *syntax.Stmt, out *[]Invocation) error {
	switch {
	case stmt.Negated:
		return unsupported(stmt.Pos(), "negation")
	case stmt.Background:
		return unsupported(stmt.Pos(), "background execution")
	case stmt.Coprocess:
		return unsupported(stmt.Pos(), "coprocess")
	case len(stmt.Redirs) > 0:
		return unsupported(stmt.Redirs[0].Pos(), "redirection")
	}

	switch cmd := stmt.Cmd.(type) {
	case *syntax.BinaryCmd:
		if cmd.Op != syntax.Pipe {
			return unsupported(cmd.OpPos, fmt.Sprintf("operator %q", cmd.Op.String()))
		}
		if err := collect(cmd.X, out); err != nil {
			return err
		}
		return collect(cmd.Y, out)
	case *syntax.CallExpr:
		inv, err := invocation(cmd)
		if err != nil {
			return err
		}
		*out = append(*out, inv)
		return nil
	case nil:
		return unsupported(stmt.Pos(), "empty stage")
	default:
		return unsupported(cmd.Pos(), "compound command")
	}
}

func invocation(call *syntax.CallExpr) (Invocation, error) {
	if len(call.Assigns) > 0 {
		return nil, unsupported(call.Assigns[0].Pos(), "variable assignment")
	}
	if len(call.Args) == 0 {
		return nil, unsupported(call.Pos(), "empty stage")
	}

	inv := make(Invocation, 0, len(call.Args))
	for _, word := range call.Args {
		s, err := literal(word)
		if err != nil {
			return nil, err
		}
		inv = append(inv, s)
	}
	return inv, nil
}

// literal returns the quote-removed value of a word made only of literal
// text, single quotes, and double quotes without expansions.
func literal(word *syntax.Word) (string, error) {
	for i, part := range word.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			if i == 0 && strings.HasPrefix(p.Value, "~") {
				return "", unsupported(p.Pos(), "tilde expansion")
			}
		case *syntax.SglQuoted:
			if p.Dollar {
				return "", unsupported(p.Pos(), "ANSI-C quoting")
			}
		case *syntax.DblQuoted:
			if p.Dollar {
				return "", unsupported(p.Pos(), "locale quoting")
			}
			for _, inner := range p.Parts {
				if _, ok := inner.(*syntax.Lit); !ok {
					return "", unsupported(inner.Pos(), "expansion")
				}
			}
		default:
			return "", unsupported(part.Pos(), "expansion")
		}
	}

	s, err := expand.Literal(&expand.Config{}, word)
	if err != nil {
		return "", &pipe.ConfigurationError{Op: opChain, Reason: err.Error()}
	}
	return s, nil
}

func unsupported(pos syntax.Pos, what string) error {
	return &pipe.ConfigurationError{
		Op:     opChain,
		Reason: fmt.Sprintf("%s is not supported (column %d)", what, pos.Col()),
	}
}

// IsStageError reports whether err came from a stage rather than from the
// expression itself.
func IsStageError(err error) bool {
	var se *StageError
	return errors.As(err, &se)
}
