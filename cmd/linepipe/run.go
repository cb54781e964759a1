// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/linepipe/linepipe/internal/chain"
	"github.com/linepipe/linepipe/internal/issue"
	"github.com/linepipe/linepipe/internal/stage"
	"github.com/linepipe/linepipe/pkg/pipe"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	files      []string
	echo       []string
	echoLines  bool
	output     string
	appendTo   string
	tee        []string
	teeAppend  bool
	expression string
}

func newRunCommand(app *App) *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run [EXPRESSION]",
		Short: "Run a pipeline expression over input lines",
		Long: `Run a pipeline expression over input lines.

Input comes from the files given with -f (unreadable files are skipped), from
--echo strings, or from stdin when neither is given. The result goes to
stdout, to a file with -o or -a, or to stdout and several files with --tee.

The expression is a single quoted argument; without one, the input is copied
unchanged.`,
		Example: `  linepipe run "sort -u" -f names.txt
  linepipe run "grep -v '^#' | fold -w 60" -f notes.txt -o wrapped.txt
  linepipe run "wc -l" --echo a --echo b --echo-lines`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.expression = args[0]
			}
			return runPipeline(cmd.Context(), app, opts)
		},
	}

	flags := runCmd.Flags()
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "read lines from `FILE` (repeatable)")
	flags.StringArrayVarP(&opts.echo, "echo", "e", nil, "use `TEXT` as input (repeatable, joined with spaces)")
	flags.BoolVar(&opts.echoLines, "echo-lines", false, "join --echo values with newlines instead of spaces")
	flags.StringVarP(&opts.output, "output", "o", "", "write the result to `FILE`, replacing it")
	flags.StringVarP(&opts.appendTo, "append", "a", "", "append the result to `FILE`")
	flags.StringArrayVar(&opts.tee, "tee", nil, "also write the result to `FILE` (repeatable)")
	flags.BoolVar(&opts.teeAppend, "tee-append", false, "append to --tee files instead of replacing them")
	runCmd.MarkFlagsMutuallyExclusive("output", "append", "tee")

	return runCmd
}

// runPipeline ingests, runs the expression, and drains the result.
func runPipeline(ctx context.Context, app *App, opts *runOptions) error {
	app.warnConfig()

	invocations, err := chain.Parse(opts.expression)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: issue.NewErrorContext().
			WithOperation("parse pipeline").
			WithResource(opts.expression).
			WithIssue(issue.InvalidExpressionId).
			WithSuggestion("Quote the whole expression and join stages with '|'").
			Wrap(err).
			BuildError()}
	}

	lines, err := ingest(app, opts)
	if err != nil {
		return &ExitError{Code: exitUsage, Err: err}
	}
	log.Debug("input read", "lines", lines.Len(), "stages", len(invocations))

	dir, err := os.Getwd()
	if err != nil {
		dir = ""
	}
	ctx = stage.WithHandlerContext(ctx, &stage.HandlerContext{Dir: dir, Defaults: app.stageDefaults()})
	if err := chain.Run(ctx, app.Stages, lines, invocations); err != nil {
		if errors.Is(err, context.Canceled) {
			return &ExitError{Code: exitFailure, Err: err}
		}
		return &ExitError{Code: exitUsage, Err: classifyStageError(err)}
	}

	return drain(app, lines, opts)
}

// ingest builds the initial sequence from files and --echo values, falling
// back to stdin when neither is given.
func ingest(app *App, opts *runOptions) (*pipe.Lines, error) {
	if len(opts.files) == 0 && len(opts.echo) == 0 {
		lines, err := pipe.Stream(app.stdin)
		if err != nil {
			log.Warn("stdin read stopped early", "err", err)
		}
		return lines, nil
	}

	lines := pipe.New()
	if len(opts.files) > 0 {
		fromFiles, err := pipe.Cat(opts.files)
		if err != nil {
			return nil, err
		}
		lines.Concat(fromFiles)
	}
	if len(opts.echo) > 0 {
		var echoOpts []pipe.Option
		if opts.echoLines {
			echoOpts = append(echoOpts, pipe.JoinLines)
		}
		fromEcho, err := pipe.Echo(opts.echo, echoOpts...)
		if err != nil {
			return nil, err
		}
		lines.Concat(fromEcho)
	}
	return lines, nil
}

// drain writes the result to its destination. File output through -o or -a
// reports failures; --tee skips destinations it cannot open.
func drain(app *App, lines *pipe.Lines, opts *runOptions) error {
	switch {
	case len(opts.tee) > 0:
		mode := pipe.Truncate
		if opts.teeAppend {
			mode = pipe.AppendMode
		}
		tee := pipe.NewTee().AddWriter(app.stdout)
		for _, path := range opts.tee {
			tee.AddFile(path, mode)
		}
		lines.TeeTo(tee)
		if err := tee.Close(); err != nil {
			log.Warn("closing tee files", "err", err)
		}
		return nil
	case opts.output != "":
		return writeOutput(lines, opts.output, pipe.Truncate)
	case opts.appendTo != "":
		return writeOutput(lines, opts.appendTo, pipe.AppendMode)
	default:
		if _, err := lines.WriteTo(app.stdout); err != nil {
			return &ExitError{Code: exitFailure, Err: issue.WrapWithOperation(err, "write output")}
		}
		return nil
	}
}

func writeOutput(lines *pipe.Lines, path string, mode pipe.FileMode) error {
	if err := lines.WriteFile(path, mode); err != nil {
		return &ExitError{Code: exitFailure, Err: issue.NewErrorContext().
			WithOperation("write output").
			WithResource(path).
			WithIssue(issue.OutputFailedId).
			WithSuggestion("Check that the directory exists and is writable").
			Wrap(err).
			BuildError()}
	}
	return nil
}

// classifyStageError attaches the matching issue and suggestions to a
// failed pipeline run.
func classifyStageError(err error) error {
	ec := issue.NewErrorContext().WithOperation("run pipeline").Wrap(err)

	name := ""
	var se *chain.StageError
	if errors.As(err, &se) {
		name = se.Invocation.Name()
		ec.WithResource(se.Invocation.String())
	}

	switch {
	case errors.Is(err, stage.ErrUnknownStage):
		ec.WithIssue(issue.UnknownStageId).
			WithSuggestion("Run 'linepipe stages' to list the available stages")
	case errors.Is(err, pipe.ErrPattern):
		ec.WithIssue(issue.InvalidPatternId).
			WithSuggestion("Use 'grep -E' for extended regular expressions")
	case errors.Is(err, pipe.ErrConfiguration):
		ec.WithIssue(issue.InvalidStageArgumentsId).
			WithSuggestion(fmt.Sprintf("Run 'linepipe doc %s' for the accepted flags", name))
	}
	return ec.BuildError()
}
