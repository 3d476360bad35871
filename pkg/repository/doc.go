// SPDX-License-Identifier: MPL-2.0

// Package repository maps dependency coordinates onto the on-disk layout of a
// local Maven-style artifact repository (by default $HOME/.m2/repository).
//
// A coordinate group:artifact:version lives under
//
//	<root>/<group with dots as separators>/<artifact>/<version>/<artifact>-<version>.<ext>
//
// where ext is "jar" for the packaged artifact and "pom" for its descriptor.
package repository
