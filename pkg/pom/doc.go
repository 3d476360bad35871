// SPDX-License-Identifier: MPL-2.0

// Package pom decodes Maven-style build descriptors (pom.xml).
//
// Only the parts of the format needed to walk a dependency graph are modelled:
// the descriptor's own identity, its parent reference, dependencyManagement
// version pins, the properties block and the direct dependency list. Text
// values are returned exactly as written (trimmed); placeholder expansion is
// applied later by the caller through the TextExpander interface so that each
// record sees the property set as it stands when the record is processed.
//
// Descriptors are read-only: nothing in this package writes them.
package pom
