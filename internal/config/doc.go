// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/pomwalk/config.cue (or the XDG equivalent on
// Linux, ~/Library/Application Support/pomwalk/config.cue on macOS,
// %APPDATA%\pomwalk\config.cue on Windows), then ./config.cue, else built-in
// defaults. POMWALK_* environment variables override file values, e.g.
// POMWALK_REPOSITORY or POMWALK_CLASSPATH_SEPARATOR.
//
// Files are validated against an embedded CUE schema (config_schema.cue) before
// being merged into Viper; the merged result is validated again in Go.
package config
