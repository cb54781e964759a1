// SPDX-License-Identifier: MPL-2.0

package pipe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// FileMode selects how an output file is opened.
type FileMode int

const (
	// Truncate replaces the file's contents, like the shell's ">".
	Truncate FileMode = iota
	// AppendMode adds to the end of the file, like the shell's ">>".
	AppendMode
)

// String returns the shell redirection operator for the mode.
func (m FileMode) String() string {
	if m == AppendMode {
		return ">>"
	}
	return ">"
}

func (m FileMode) openFlags() int {
	if m == AppendMode {
		return os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	return os.O_CREATE | os.O_WRONLY | os.O_TRUNC
}

// WriteTo writes every line followed by '\n' to w, implementing io.WriterTo.
// The sequence is not modified.
func (l *Lines) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, line := range l.lines {
		written, err := bw.WriteString(line)
		n += int64(written)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// WriteFile drains the sequence into the file at path and reports any
// failure. Overwrite and Append are the best-effort forms.
func (l *Lines) WriteFile(path string, mode FileMode) (err error) {
	f, err := os.OpenFile(path, mode.openFlags(), 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	_, err = l.WriteTo(f)
	return err
}

// Overwrite replaces the contents of the file at path with the sequence.
// Like the shell's ">", a file that cannot be written is ignored.
func (l *Lines) Overwrite(path string) {
	if err := l.WriteFile(path, Truncate); err != nil {
		log.Debug("output file ignored", "path", path, "mode", Truncate, "err", err)
	}
}

// Append adds the sequence to the end of the file at path.
// Like the shell's ">>", a file that cannot be written is ignored.
func (l *Lines) Append(path string) {
	if err := l.WriteFile(path, AppendMode); err != nil {
		log.Debug("output file ignored", "path", path, "mode", AppendMode, "err", err)
	}
}

// Text concatenates the lines with no separator between them.
func (l *Lines) Text() string {
	return strings.Join(l.lines, "")
}

// AppendText adds the concatenated lines to b.
func (l *Lines) AppendText(b *strings.Builder) {
	for _, line := range l.lines {
		b.WriteString(line)
	}
}

// TeeTo drains the sequence into every destination of t.
func (l *Lines) TeeTo(t *Tee) {
	_, _ = l.WriteTo(t) //nolint:errcheck // Tee writes never fail
}

type (
	// Tee broadcasts output to several destinations in registration order.
	// Files opened by AddFile belong to the Tee and are closed by Close;
	// writers given to AddWriter stay owned by the caller. A Tee is meant to be
	// passed by pointer so several sequences can drain into the same targets.
	//
	// A destination that fails a write is dropped from later writes without
	// affecting the others.
	Tee struct {
		dests []*teeDest
	}

	teeDest struct {
		name   string
		w      io.Writer
		file   *os.File
		failed bool
	}
)

// NewTee returns a Tee with no destinations.
func NewTee() *Tee {
	return &Tee{}
}

// AddWriter registers a borrowed writer.
func (t *Tee) AddWriter(w io.Writer) *Tee {
	t.dests = append(t.dests, &teeDest{name: fmt.Sprintf("writer #%d", len(t.dests)+1), w: w})
	return t
}

// AddFile opens path with the given mode and registers it. A file that
// cannot be opened is skipped.
func (t *Tee) AddFile(path string, mode FileMode) *Tee {
	f, err := os.OpenFile(path, mode.openFlags(), 0o644)
	if err != nil {
		log.Debug("tee destination ignored", "path", path, "mode", mode, "err", err)
		return t
	}
	t.dests = append(t.dests, &teeDest{name: path, w: f, file: f})
	return t
}

// Len returns the number of registered destinations.
func (t *Tee) Len() int {
	return len(t.dests)
}

// Write copies p to every destination that has not failed yet. It always
// reports success so that one broken destination cannot stop a drain.
func (t *Tee) Write(p []byte) (int, error) {
	for _, d := range t.dests {
		if d.failed {
			continue
		}
		if _, err := d.w.Write(p); err != nil {
			d.failed = true
			log.Debug("tee destination failed", "dest", d.name, "err", err)
		}
	}
	return len(p), nil
}

// Close closes the files the Tee opened. Borrowed writers are left open.
func (t *Tee) Close() error {
	var errs []error
	for _, d := range t.dests {
		if d.file == nil {
			continue
		}
		if err := d.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", d.name, err))
		}
		d.file = nil
		d.failed = true
	}
	return errors.Join(errs...)
}
