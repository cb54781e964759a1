// SPDX-License-Identifier: MPL-2.0

package stage

import (
	"context"

	"github.com/linepipe/linepipe/pkg/pipe"
)

func init() {
	RegisterDefault(newHeadStage())
	RegisterDefault(newTailStage())
}

// headTailStage implements the head and tail stages, which differ only in
// the end they keep.
type headTailStage struct {
	baseStage
	fromEnd bool
}

// newHeadStage creates a new head stage.
func newHeadStage() *headTailStage {
	return &headTailStage{baseStage: baseStage{
		name:     "head",
		usage:    "head [-n LINES | -c BYTES]",
		summary:  "Keep the first lines (default from `head.count`, normally 10), or the first bytes with -c, cutting the last line at the byte boundary.",
		flags:    countFlags("first"),
		examples: []string{"head", "head -n 3", "head -c 100"},
	}}
}

// newTailStage creates a new tail stage.
func newTailStage() *headTailStage {
	return &headTailStage{
		baseStage: baseStage{
			name:     "tail",
			usage:    "tail [-n LINES | -c BYTES]",
			summary:  "Keep the last lines (default from `tail.count`, normally 10), or the last bytes with -c, trimming the front of the first kept line.",
			flags:    countFlags("last"),
			examples: []string{"tail -n 1", "tail -c 20"},
		},
		fromEnd: true,
	}
}

func countFlags(end string) []FlagInfo {
	return []FlagInfo{
		{Name: "lines", ShortName: "n", Description: "keep the " + end + " N lines", TakesValue: true},
		{Name: "bytes", ShortName: "c", Description: "keep the " + end + " N bytes", TakesValue: true},
	}
}

// Run executes the head or tail stage.
func (s *headTailStage) Run(ctx context.Context, lines *pipe.Lines, args []string) error {
	hc := GetHandlerContext(ctx)
	def := hc.Defaults.HeadCount
	if s.fromEnd {
		def = hc.Defaults.TailCount
	}

	fs := newFlagSet(s.name)
	lineCount := fs.IntP("lines", "n", def, "")
	byteCount := fs.IntP("bytes", "c", 0, "")
	if err := parseFlags(fs, args); err != nil {
		return wrapError(s.name, err)
	}
	if err := expectArgs(s.name, fs.Args(), 0, 0); err != nil {
		return wrapError(s.name, err)
	}

	n := *lineCount
	var opts []pipe.Option
	if fs.Changed("bytes") {
		n = *byteCount
		opts = append(opts, pipe.ByByte)
		// Both flags together are rejected by the pipe operation.
		if fs.Changed("lines") {
			opts = append(opts, pipe.ByLine)
		}
	}

	if s.fromEnd {
		return wrapError(s.name, lines.Tail(n, opts...))
	}
	return wrapError(s.name, lines.Head(n, opts...))
}
