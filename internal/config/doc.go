// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from the linepipe directory under os.UserConfigDir
// (~/.config/linepipe/config.cue on Linux, ~/Library/Application Support/linepipe/config.cue
// on macOS, %AppData%\linepipe\config.cue on Windows), or from an explicit path. Values
// not set in the file fall back to built-in defaults, and LINEPIPE_* environment
// variables (LINEPIPE_FOLD_WIDTH, LINEPIPE_UI_VERBOSE, ...) override both.
//
// Files are validated against the embedded CUE schema (config_schema.cue); unknown
// fields and out-of-range values are reported with their JSON path.
package config
