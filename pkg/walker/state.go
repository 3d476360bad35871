// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/spatialtools/pomwalk/pkg/pom"
)

type (
	// VersionPins maps "group/artifact" keys to versions declared in
	// dependencyManagement sections. Later pins overwrite earlier ones.
	VersionPins map[string]string

	// State is the mutable context of a single walk. It is created by Walk
	// and threaded through the recursion.
	State struct {
		Properties PropertyMap
		Pins       VersionPins

		// expander applies the walk's placeholder mode; lenient serves the
		// fields that never feed resolution.
		expander *Expander
		lenient  *Expander

		// inProgress holds descriptors on the current walk stack. A finished
		// descriptor is walked again on every later reference.
		inProgress map[string]bool
		stack      []string

		unresolved []pom.Coordinate
		excluded   []string

		logger *log.Logger
	}
)

// Pin records a version for key.
func (p VersionPins) Pin(key, version string) {
	p[key] = version
}

// Lookup returns the pinned version for key, if any.
func (p VersionPins) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// NewState creates an empty walk state.
func NewState(mode PlaceholderMode) *State {
	props := make(PropertyMap)
	return &State{
		Properties: props,
		Pins:       make(VersionPins),
		expander:   NewExpander(props, mode),
		lenient:    NewExpander(props, PlaceholderLenient),
		inProgress: make(map[string]bool),
		logger:     log.Default(),
	}
}

// Expander returns the expander bound to the state's property map.
func (s *State) Expander() *Expander { return s.expander }

// Depth returns the number of descriptors on the walk stack.
func (s *State) Depth() int { return len(s.stack) }

// Chain returns the descriptors on the walk stack, outermost first.
func (s *State) Chain() []string { return slices.Clone(s.stack) }

func (s *State) enter(key string) {
	s.inProgress[key] = true
	s.stack = append(s.stack, key)
}

func (s *State) leave(key string) {
	delete(s.inProgress, key)
	s.stack = s.stack[:len(s.stack)-1]
}

// cycleFrom returns the stack suffix starting at key, closed with key again.
func (s *State) cycleFrom(key string) []string {
	i := slices.Index(s.stack, key)
	if i < 0 {
		i = 0
	}
	return append(slices.Clone(s.stack[i:]), key)
}

func (s *State) addUnresolved(c pom.Coordinate) {
	if !slices.Contains(s.unresolved, c) {
		s.unresolved = append(s.unresolved, c)
	}
}

func (s *State) addExcluded(p string) {
	if !slices.Contains(s.excluded, p) {
		s.excluded = append(s.excluded, p)
	}
}
