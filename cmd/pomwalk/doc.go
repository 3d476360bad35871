// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for pomwalk.
//
// The root command prints the classpath of a descriptor; subcommands render
// the walk as a tree, verify the resolved artifacts, and manage the
// configuration file. Every command is built from an App so tests can inject
// their own configuration provider and output streams.
package cmd
