// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linepipe/linepipe/internal/config"
)

// newConfigCommand creates the `linepipe config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage linepipe configuration",
		Long: `Manage linepipe configuration.

Configuration is stored in:
  - Linux: ~/.config/linepipe/config.cue
  - macOS: ~/Library/Application Support/linepipe/config.cue
  - Windows: %AppData%\linepipe\config.cue

Every key can be overridden with an environment variable, e.g.
LINEPIPE_FOLD_WIDTH=72 or LINEPIPE_UI_VERBOSE=true.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if app.cfgErr != nil {
				return &ExitError{Code: exitFailure, Err: app.cfgErr}
			}
			out, err := config.Render(app.cfg, config.Format(format))
			if err != nil {
				return &ExitError{Code: exitUsage, Err: err}
			}
			source := app.cfgPath
			if source == "" {
				source = "(using defaults)"
			}
			fmt.Fprintln(app.stderr, SubtitleStyle.Render("# source: "+source))
			fmt.Fprint(app.stdout, out)
			return nil
		},
	}
	showCmd.Flags().StringVar(&format, "format", string(config.FormatCUE), "output format: cue or toml")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if app.cfgFile != "" {
				fmt.Fprintln(app.stdout, app.cfgFile)
				return nil
			}
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, path)
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.CreateDefaultConfig(force)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, SuccessStyle.Render("Configuration written to ")+path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")

	cfgCmd.AddCommand(showCmd, pathCmd, initCmd)
	return cfgCmd
}
