// SPDX-License-Identifier: MPL-2.0

// Package textutil holds the string scanning primitives shared by the line
// filters: POSIX character-class expansion for tr-style sets, left padding of
// counters, tab-aware wrap lengths for fold, and adjacent-run detection for uniq.
//
// Character classes follow the C locale. Every class is a fixed ASCII set kept
// in package-level tables that are never mutated after initialization.
package textutil
