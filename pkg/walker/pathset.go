// SPDX-License-Identifier: MPL-2.0

package walker

import "slices"

// PathSet is a set of artifact paths that remembers first-insertion order.
// The zero value is ready to use.
type PathSet struct {
	order []string
	seen  map[string]struct{}
}

// NewPathSet returns a set holding paths in the given order, duplicates dropped.
func NewPathSet(paths ...string) *PathSet {
	s := &PathSet{}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts p and reports whether it was not already present.
func (s *PathSet) Add(p string) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[p]; ok {
		return false
	}
	s.seen[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Merge adds every path of other, in other's order.
func (s *PathSet) Merge(other *PathSet) {
	if other == nil {
		return
	}
	for _, p := range other.order {
		s.Add(p)
	}
}

// Contains reports whether p is in the set.
func (s *PathSet) Contains(p string) bool {
	_, ok := s.seen[p]
	return ok
}

// Len returns the number of paths.
func (s *PathSet) Len() int { return len(s.order) }

// Paths returns a copy of the paths in insertion order.
func (s *PathSet) Paths() []string {
	return slices.Clone(s.order)
}
