// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved, and
// suggestions for fixing the problem. Issue holds longer Markdown guidance for
// the common failure classes of linepipe, rendered with glamour.
package issue
