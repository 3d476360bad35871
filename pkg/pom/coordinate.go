// SPDX-License-Identifier: MPL-2.0

package pom

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCoordinate is the sentinel error wrapped by InvalidCoordinateError.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

type (
	// Coordinate identifies a dependency by group, artifact and version.
	// An empty Version means the version could not be resolved.
	Coordinate struct {
		GroupID    string `json:"group_id" yaml:"group_id" toml:"group_id"`
		ArtifactID string `json:"artifact_id" yaml:"artifact_id" toml:"artifact_id"`
		Version    string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	}

	// InvalidCoordinateError is returned when a Coordinate lacks a group or
	// artifact id. It wraps ErrInvalidCoordinate for errors.Is() compatibility.
	InvalidCoordinateError struct {
		Value Coordinate
	}
)

// Key returns the "group/artifact" key used for version pins.
func (c Coordinate) Key() string {
	return c.GroupID + "/" + c.ArtifactID
}

// String returns the conventional "group:artifact:version" rendering.
func (c Coordinate) String() string {
	if c.Version == "" {
		return c.GroupID + ":" + c.ArtifactID
	}
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// IsResolved reports whether the coordinate carries a version.
func (c Coordinate) IsResolved() bool {
	return c.Version != ""
}

// IsValid returns whether the coordinate names both a group and an artifact.
func (c Coordinate) IsValid() (bool, []error) {
	if strings.TrimSpace(c.GroupID) == "" || strings.TrimSpace(c.ArtifactID) == "" {
		return false, []error{&InvalidCoordinateError{Value: c}}
	}
	return true, nil
}

// Error implements the error interface for InvalidCoordinateError.
func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate %q: group and artifact id are required", e.Value.String())
}

// Unwrap returns ErrInvalidCoordinate for errors.Is() compatibility.
func (e *InvalidCoordinateError) Unwrap() error { return ErrInvalidCoordinate }
