// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for linepipe.
//
// This package implements the Cobra command hierarchy: the root command with
// its global flags, "run" for executing pipeline expressions, "stages" and
// "doc" for stage help, and "config" for inspecting the configuration.
package cmd
