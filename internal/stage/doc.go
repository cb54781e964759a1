// SPDX-License-Identifier: MPL-2.0

// Package stage exposes the pipe operations as named stages that take
// shell-style arguments, so that "sort -fu" or "head -n 3" can be applied to
// a line sequence.
//
// # Stages
//
//   - cat: append files, optionally numbered or squeezed
//   - fold: wrap long lines
//   - grep: keep matching lines
//   - head, tail: keep the first or last lines or bytes
//   - paste: join with the lines of a file
//   - sort: sort, or merge with sorted files
//   - tr: translate, delete, or squeeze characters
//   - uniq: collapse adjacent duplicates
//   - wc: count lines, words, and bytes
//
// Flags are parsed with pflag, so POSIX combined short flags ("-fu") and
// GNU long flags ("--ignore-case") both work. Unlike the shell tools, an
// unsupported flag is an error rather than silently ignored.
//
// # Error Format
//
// All errors from stages are prefixed with "[linepipe]" and the stage name:
//
//	[linepipe] fold: fold: width must be positive, got 0
//	[linepipe] grep: invalid pattern "[": unterminated bracket expression
//
// Defaults for omitted flags and the directory relative paths resolve
// against travel in the context through WithHandlerContext.
package stage
