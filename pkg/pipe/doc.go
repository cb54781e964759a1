// SPDX-License-Identifier: MPL-2.0

// Package pipe implements an in-memory, line-oriented text engine modelled on
// the classic shell text utilities.
//
// A *Lines value holds an ordered sequence of lines without terminators. It is
// populated by the ingestion helpers (Stream, Cat, Echo), transformed in place
// by filter methods (Sort, Uniq, Grep, Translate, TrSet, Fold, Head, Tail,
// Paste, Wc), and finally drained to a sink (WriteTo, Overwrite, Append, Text,
// or a Tee). Every filter validates its options against a per-operation
// allow-list before touching any data, so a call that returns an error leaves
// the sequence exactly as it was.
//
//	l, _ := pipe.Echo([]string{"b", "a", "b"}, pipe.JoinLines)
//	err := pipe.NewChain(l).Sort().Uniq(pipe.Count).Err()
//
// Input and output failures at the boundaries are best-effort, mirroring shell
// redirection: unreadable input files are skipped and unopenable output files
// are ignored. Both are logged at debug level through the default
// charmbracelet/log logger.
//
// The engine is single-threaded. A Lines value must not be shared between
// goroutines while it is being mutated.
package pipe
