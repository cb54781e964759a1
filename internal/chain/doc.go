// SPDX-License-Identifier: MPL-2.0

// Package chain parses pipeline expressions such as
//
//	grep -i error | sort -u | head -n 3
//
// into stage invocations and runs them against a line sequence.
//
// Expressions use shell word syntax: arguments may be bare, single-quoted, or
// double-quoted, and stages are joined with "|". Everything else a shell would
// do (redirections, variables, command substitution, globbing, "&&" lists) is
// rejected, since the expression never reaches a shell.
package chain
