// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/linepipe/linepipe/pkg/pipe"
)

// newFlagSet returns a silent flag set for the named stage. POSIX combined
// short flags ("-du") and attached values ("-n5") are handled by pflag.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return fs
}

// parseFlags parses args[1:] and reports malformed or unknown flags as
// configuration errors.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if err := fs.Parse(args[1:]); err != nil {
		return &pipe.ConfigurationError{Op: fs.Name(), Reason: err.Error()}
	}
	return nil
}

// optionFlag pairs a pipe option with whether its flag was given.
type optionFlag struct {
	opt pipe.Option
	on  bool
}

// collectOptions returns the options whose flags were given, in order.
func collectOptions(flags ...optionFlag) []pipe.Option {
	var opts []pipe.Option
	for _, f := range flags {
		if f.on {
			opts = append(opts, f.opt)
		}
	}
	return opts
}

// expectArgs checks the number of positional arguments.
func expectArgs(name string, got []string, lo, hi int) error {
	switch {
	case len(got) < lo:
		return &pipe.ConfigurationError{Op: name, Reason: fmt.Sprintf("missing operand (want at least %d)", lo)}
	case hi >= 0 && len(got) > hi:
		return &pipe.ConfigurationError{Op: name, Reason: fmt.Sprintf("extra operand %q", got[hi])}
	}
	return nil
}

// resolvePaths makes relative paths relative to dir.
func resolvePaths(dir string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		if dir != "" && !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		out[i] = p
	}
	return out
}

// wrapError wraps an error with the [linepipe] prefix format.
// Returns nil if err is nil.
func wrapError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("[linepipe] %s: %w", name, err)
}

// renderDoc builds the markdown help page of a stage.
func renderDoc(b *baseStage) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", b.name)
	fmt.Fprintf(&sb, "    %s\n\n", b.usage)
	sb.WriteString(b.summary)
	sb.WriteString("\n")

	if len(b.flags) > 0 {
		sb.WriteString("\n## Flags\n\n| Flag | Description |\n|---|---|\n")
		for _, f := range b.flags {
			fmt.Fprintf(&sb, "| `%s` | %s |\n", flagLabel(f), f.Description)
		}
	}

	if len(b.examples) > 0 {
		sb.WriteString("\n## Examples\n\n")
		for _, ex := range b.examples {
			fmt.Fprintf(&sb, "    %s\n", ex)
		}
	}
	return sb.String()
}

// flagLabel renders a flag as "-r, --reverse" plus a value placeholder.
func flagLabel(f FlagInfo) string {
	label := "--" + f.Name
	if f.ShortName != "" {
		label = "-" + f.ShortName + ", " + label
	}
	if f.TakesValue {
		label += " VALUE"
	}
	return label
}
