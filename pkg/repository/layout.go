// SPDX-License-Identifier: MPL-2.0

package repository

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spatialtools/pomwalk/pkg/pom"
)

const (
	// HomeEnv is the environment variable the default root is derived from.
	HomeEnv = "HOME"

	// DefaultRelativeRoot is the repository location relative to the home directory.
	DefaultRelativeRoot = ".m2/repository"

	// ArtifactExt is the file extension of packaged artifacts.
	ArtifactExt = ".jar"

	// DescriptorExt is the file extension of descriptors stored in the repository.
	DescriptorExt = ".pom"
)

// Layout resolves coordinates to files under a repository root.
type Layout struct {
	root string
}

// New creates a Layout rooted at root. The root is made absolute so every
// candidate path, and every walk key derived from one, has a single form. It
// is not required to exist: a missing repository simply resolves nothing.
func New(root string) Layout {
	if abs, err := filepath.Abs(root); err == nil {
		return Layout{root: abs}
	}
	return Layout{root: filepath.Clean(root)}
}

// DefaultRoot returns $HOME/.m2/repository.
func DefaultRoot() (string, error) {
	return DefaultRootWith(os.Getenv)
}

// DefaultRootWith returns the default repository root using the provided
// getenv function. This enables testing without mutating process-global
// environment state.
func DefaultRootWith(getenv func(string) string) (string, error) {
	home := getenv(HomeEnv)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
	}
	return filepath.Join(home, filepath.FromSlash(DefaultRelativeRoot)), nil
}

// Root returns the repository root directory.
func (l Layout) Root() string { return l.root }

// Stem returns the slash-separated, root-relative path of a coordinate without
// extension: group/as/path/artifact/version/artifact-version. An unresolved
// (empty) version still yields a stem; it just never names a real file.
func (l Layout) Stem(c pom.Coordinate) string {
	group := strings.ReplaceAll(c.GroupID, ".", "/")
	return path.Join(group, c.ArtifactID, c.Version) + "/" + c.ArtifactID + "-" + c.Version
}

// Candidates returns the packaged-artifact and descriptor paths for a stem
// produced by Stem.
func (l Layout) Candidates(stem string) (artifact, descriptor string) {
	base := filepath.Join(l.root, filepath.FromSlash(stem))
	return base + ArtifactExt, base + DescriptorExt
}

// Rel returns p relative to the repository root in slash form, or ok=false
// when p lies outside the root.
func (l Layout) Rel(p string) (rel string, ok bool) {
	r, err := filepath.Rel(l.root, p)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(r), true
}

// Exists reports whether p is an existing regular file (not a directory).
func Exists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
