// SPDX-License-Identifier: MPL-2.0

// Package walker computes the set of locally cached artifacts a descriptor
// depends on.
//
// A walk starts at a root descriptor and proceeds depth-first. For every
// descriptor it visits, in document order:
//
//  1. the parent reference is resolved (and usually recursed into),
//  2. dependencyManagement entries are recorded as version pins,
//  3. properties are added to the property map,
//  4. each direct dependency is resolved.
//
// Resolving a record expands its placeholders, skips test-scoped records,
// fills in a missing version from the pins, and then looks for the packaged
// artifact and the nested descriptor in the local repository. Found artifacts
// are collected into a PathSet; found descriptors are walked recursively.
//
// All mutable walk state (properties, pins, cycle bookkeeping) lives in a State
// value created for a single call to Walk, so a Walker can be reused.
package walker
