// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/linepipe/linepipe/internal/issue"
)

func newStagesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the available stages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(app.stdout, TitleStyle.Render("Stages"))
			fmt.Fprintln(app.stdout)
			for _, name := range app.Stages.Names() {
				s, _ := app.Stages.Lookup(name)
				flags := make([]string, 0, len(s.SupportedFlags()))
				for _, f := range s.SupportedFlags() {
					flags = append(flags, "--"+f.Name)
				}
				fmt.Fprintf(app.stdout, "  %s %s\n", stageNameStyle.Render(name), s.Usage())
				if len(flags) > 0 {
					fmt.Fprintf(app.stdout, "  %s %s\n", stageNameStyle.Render(""), SubtitleStyle.Render(strings.Join(flags, " ")))
				}
			}
			fmt.Fprintln(app.stdout)
			fmt.Fprintln(app.stdout, SubtitleStyle.Render("Run 'linepipe doc <stage>' for details."))
			return nil
		},
	}
}

func newDocCommand(app *App) *cobra.Command {
	var raw, issues bool

	docCmd := &cobra.Command{
		Use:   "doc STAGE",
		Short: "Show the help of a stage",
		Long: `Show the help of a stage.

With --issues, show the troubleshooting guide for every error linepipe
reports instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if issues {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return app.Stages.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if issues {
				return renderIssues(app, raw)
			}
			s, ok := app.Stages.Lookup(args[0])
			if !ok {
				return &ExitError{Code: exitUsage, Err: issue.NewErrorContext().
					WithOperation("show stage help").
					WithResource(args[0]).
					WithIssue(issue.UnknownStageId).
					WithSuggestion("Run 'linepipe stages' to list the available stages").
					BuildError()}
			}

			if raw {
				fmt.Fprint(app.stdout, s.Doc())
				return nil
			}
			rendered, err := glamour.Render(s.Doc(), app.glamourStyle())
			if err != nil {
				return fmt.Errorf("rendering help for %s: %w", s.Name(), err)
			}
			fmt.Fprint(app.stdout, rendered)
			return nil
		},
	}
	docCmd.Flags().BoolVar(&raw, "raw", false, "print the Markdown source instead of rendering it")
	docCmd.Flags().BoolVar(&issues, "issues", false, "show the error troubleshooting guide")

	return docCmd
}

// renderIssues prints every catalogued issue in id order.
func renderIssues(app *App, raw bool) error {
	for _, iss := range issue.Values() {
		if raw {
			fmt.Fprintln(app.stdout, iss.Markdown())
			continue
		}
		rendered, err := iss.Render(app.glamourStyle())
		if err != nil {
			return fmt.Errorf("rendering issue %d: %w", iss.Id(), err)
		}
		fmt.Fprint(app.stdout, rendered)
	}
	return nil
}
