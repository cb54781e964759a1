// SPDX-License-Identifier: MPL-2.0

package pipe

// Chain applies filters fluently to one sequence. The first failing call
// stops the chain: later calls are skipped and Err reports the failure.
// Because every filter validates before mutating, the sequence holds the
// result of the last successful call.
//
//	err := pipe.NewChain(l).Grep("x").Sort(pipe.Unique).Head(3).Err()
type Chain struct {
	lines *Lines
	err   error
}

// NewChain starts a chain over l.
func NewChain(l *Lines) *Chain {
	return &Chain{lines: l}
}

// Lines returns the sequence the chain operates on.
func (c *Chain) Lines() *Lines { return c.lines }

// Err returns the first error raised by a call in the chain.
func (c *Chain) Err() error { return c.err }

func (c *Chain) do(f func() error) *Chain {
	if c.err == nil {
		c.err = f()
	}
	return c
}

// Fold calls Lines.Fold.
func (c *Chain) Fold(width int, opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Fold(width, opts...) })
}

// Grep calls Lines.Grep.
func (c *Chain) Grep(pattern string, opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Grep(pattern, opts...) })
}

// Head calls Lines.Head.
func (c *Chain) Head(n int, opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Head(n, opts...) })
}

// Tail calls Lines.Tail.
func (c *Chain) Tail(n int, opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Tail(n, opts...) })
}

// Paste calls Lines.Paste.
func (c *Chain) Paste(other *Lines, separators string) *Chain {
	return c.do(func() error { return c.lines.Paste(other, separators) })
}

// Sort calls Lines.Sort.
func (c *Chain) Sort(opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Sort(opts...) })
}

// SortMerge calls Lines.SortMerge.
func (c *Chain) SortMerge(other *Lines, opts ...Option) *Chain {
	return c.do(func() error { return c.lines.SortMerge(other, opts...) })
}

// Translate calls Lines.Translate.
func (c *Chain) Translate(from, to string) *Chain {
	return c.do(func() error { return c.lines.Translate(from, to) })
}

// TrSet calls Lines.TrSet.
func (c *Chain) TrSet(pattern string, opts ...Option) *Chain {
	return c.do(func() error { return c.lines.TrSet(pattern, opts...) })
}

// Uniq calls Lines.Uniq.
func (c *Chain) Uniq(opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Uniq(opts...) })
}

// Wc calls Lines.Wc.
func (c *Chain) Wc(opts ...Option) *Chain {
	return c.do(func() error { return c.lines.Wc(opts...) })
}
