// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"

	"github.com/linepipe/linepipe/internal/config"
	"github.com/linepipe/linepipe/internal/issue"
	"github.com/linepipe/linepipe/internal/stage"
)

type (
	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.LoadResult, error)
	}

	// App wires CLI services and shared dependencies. Every Cobra command
	// handler receives an App reference.
	App struct {
		Config ConfigProvider
		Stages *stage.Registry
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer

		// Global flag values.
		verbose bool
		cfgFile string

		// Loaded by the root PersistentPreRunE.
		cfg     *config.Config
		cfgPath string
		cfgErr  error
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stages *stage.Registry
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config: deps.Config,
		Stages: deps.Stages,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Stages == nil {
		app.Stages = stage.DefaultRegistry
	}
	if app.stdin == nil {
		app.stdin = os.Stdin
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	return app
}

// loadConfig loads configuration and installs the default logger. A load
// failure is kept in cfgErr and defaults are used, so that commands which
// do not depend on configuration still work.
func (a *App) loadConfig(ctx context.Context) {
	res, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.cfgFile})
	if err != nil {
		a.cfgErr = err
		a.cfg = config.DefaultConfig()
	} else {
		a.cfg = res.Config
		a.cfgPath = res.Path
	}

	if !a.verbose {
		a.verbose = a.cfg.UI.Verbose
	}
	log.SetDefault(newLogger(a.stderr, a.verbose))
	log.Debug("configuration loaded", "path", a.cfgPath, "err", a.cfgErr)
}

// warnConfig prints the deferred configuration error, if any.
func (a *App) warnConfig() {
	if a.cfgErr != nil {
		fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(a.cfgErr, a.verbose))
	}
}

// stageDefaults maps configuration onto stage flag defaults.
func (a *App) stageDefaults() stage.Defaults {
	return stage.Defaults{
		FoldWidth:       a.cfg.Fold.Width,
		HeadCount:       a.cfg.Head.Count,
		TailCount:       a.cfg.Tail.Count,
		PasteDelimiters: a.cfg.Paste.Delimiters,
		StableSort:      a.cfg.Sort.Stable,
	}
}

// glamourStyle returns the glamour style for the configured color scheme.
func (a *App) glamourStyle() string {
	return a.cfg.UI.ColorScheme.String()
}

// handleError is the fang error handler. Actionable errors are printed with
// their suggestions, and in verbose mode with the linked issue guidance.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.verbose))
	if !a.verbose {
		return
	}
	if iss := ae.Issue(); iss != nil {
		if rendered, renderErr := iss.Render(a.glamourStyle()); renderErr == nil {
			fmt.Fprint(w, rendered)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// newLogger returns the CLI logger: warnings and errors by default, debug
// output with --verbose.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "linepipe",
		Level:  log.WarnLevel,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}
	return logger
}
