// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newTrStage())
}

// trStage implements the tr stage.
type trStage struct {
	baseStage
}

// newTrStage creates a new tr stage.
func newTrStage() *trStage {
	return &trStage{baseStage{
		name:  "tr",
		usage: "tr [-c] [-d] [-s] SET1 [SET2]",
		summary: "Translate, delete, or squeeze characters. Sets accept ranges (`a-z`), " +
			"backslash escapes, and POSIX classes (`[:digit:]`).\n\n" +
			"- `tr SET1 SET2` translates; a short SET2 repeats its last character.\n" +
			"- `tr -d SET1` deletes, `tr -s SET1` squeezes runs.\n" +
			"- `tr -s SET1 SET2` translates, then squeezes SET2.\n" +
			"- `tr -ds SET1 SET2` deletes SET1, then squeezes SET2.",
		flags: []FlagInfo{
			{Name: "complement", ShortName: "c", Description: "use the complement of SET1"},
			{Name: "delete", ShortName: "d", Description: "delete characters in SET1"},
			{Name: "squeeze-repeats", ShortName: "s", Description: "replace each run of a repeated character with one"},
		},
		examples: []string{"tr a-z A-Z", "tr -d '[:digit:]'", "tr -s ' '"},
	}}
}

// Run executes the tr stage.
func (s *trStage) Run(_ context.Context, lines *pipe.Lines, args []string) error {
	fs := newFlagSet(s.name)
	complement := fs.BoolP("complement", "c", false, "")
	del := fs.BoolP("delete", "d", false, "")
	squeeze := fs.BoolP("squeeze-repeats", "s", false, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}

	sets := fs.Args()
	var complementOpt []pipe.Option
	if *complement {
		complementOpt = []pipe.Option{pipe.Complement}
	}

	switch {
	case *del && *squeeze:
		if err := expectArgs(s.name, sets, 2, 2); err != nil {
			return wrapError(s.name, err)
		}
		err := pipe.NewChain(lines).
			TrSet(sets[0], append(complementOpt, pipe.Delete)...).
			TrSet(sets[1], pipe.Squeeze).
			Err()
		return wrapError(s.name, err)

	case *del:
		if err := expectArgs(s.name, sets, 1, 1); err != nil {
			return wrapError(s.name, err)
		}
		return wrapError(s.name, lines.TrSet(sets[0], append(complementOpt, pipe.Delete)...))

	case *squeeze && len(sets) == 2:
		if *complement {
			return wrapError(s.name, &pipe.ConfigurationError{Op: s.name, Reason: "-c cannot be combined with translation"})
		}
		err := pipe.NewChain(lines).
			Translate(sets[0], sets[1]).
			TrSet(sets[1], pipe.Squeeze).
			Err()
		return wrapError(s.name, err)

	case *squeeze:
		if err := expectArgs(s.name, sets, 1, 1); err != nil {
			return wrapError(s.name, err)
		}
		return wrapError(s.name, lines.TrSet(sets[0], append(complementOpt, pipe.Squeeze)...))

	default:
		if *complement {
			return wrapError(s.name, &pipe.ConfigurationError{Op: s.name, Reason: "-c requires -d or -s"})
		}
		if err := expectArgs(s.name, sets, 2, 2); err != nil {
			return wrapError(s.name, err)
		}
		return wrapError(s.name, lines.Translate(sets[0], sets[1]))
	}
}
