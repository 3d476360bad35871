// SPDX-License-Identifier: MPL-2.0

// Package report renders the outcome of a descriptor walk in the formats
// accepted by the classpath command: a bare separator-joined line, a shell
// assignment, or a JSON, YAML or TOML document. WriteDocument also encodes
// other values, such as the walk trace, in the document formats.
package report
