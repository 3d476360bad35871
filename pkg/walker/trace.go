// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"strings"

	"github.com/spatialtools/pomwalk/pkg/pom"
)

const (
	// KindRoot marks the descriptor the walk started from.
	KindRoot NodeKind = "root"
	// KindParent marks a parent reference.
	KindParent NodeKind = "parent"
	// KindDependency marks a direct dependency record.
	KindDependency NodeKind = "dependency"

	// DecisionAdded means the packaged artifact was added and no descriptor was walked.
	DecisionAdded Decision = "added"
	// DecisionRecursed means the nested descriptor was walked.
	DecisionRecursed Decision = "recursed"
	// DecisionSkippedTest means the record was skipped for its test scope.
	DecisionSkippedTest Decision = "skipped-test"
	// DecisionExcluded means the nested descriptor matched the exclusion pattern.
	DecisionExcluded Decision = "excluded"
	// DecisionUnresolved means no version could be determined.
	DecisionUnresolved Decision = "unresolved"
	// DecisionMissing means neither candidate file was usable.
	DecisionMissing Decision = "missing"
)

type (
	// NodeKind says which kind of record produced a TraceNode.
	NodeKind string

	// Decision is the outcome of resolving one record.
	Decision string

	// TraceNode records what the walker did for one record. Children hold the
	// records of the descriptor the node recursed into.
	TraceNode struct {
		Kind       NodeKind       `json:"kind" yaml:"kind" toml:"kind"`
		Coordinate pom.Coordinate `json:"coordinate" yaml:"coordinate" toml:"coordinate"`
		Scope      string         `json:"scope,omitempty" yaml:"scope,omitempty" toml:"scope,omitempty"`
		Decision   Decision       `json:"decision" yaml:"decision" toml:"decision"`
		Jar        string         `json:"jar,omitempty" yaml:"jar,omitempty" toml:"jar,omitempty"`
		Descriptor string         `json:"descriptor,omitempty" yaml:"descriptor,omitempty" toml:"descriptor,omitempty"`
		Children   []*TraceNode   `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
	}
)

// String returns the string representation of the Decision.
func (d Decision) String() string { return string(d) }

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string { return string(k) }

// Walk calls fn for n and every descendant, depth-first, with the depth of
// each node (n itself is depth 0). Returning false from fn skips the node's
// children.
func (n *TraceNode) Walk(fn func(node *TraceNode, depth int) bool) {
	n.walk(fn, 0)
}

func (n *TraceNode) walk(fn func(*TraceNode, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns how many nodes below n carry decision d.
func (n *TraceNode) Count(d Decision) int {
	total := 0
	n.Walk(func(node *TraceNode, depth int) bool {
		if depth > 0 && node.Decision == d {
			total++
		}
		return true
	})
	return total
}

func (n *TraceNode) addChild(c *TraceNode) {
	if c != nil {
		n.Children = append(n.Children, c)
	}
}

// settle picks the final decision for a node whose outcome depends on which
// candidate files were used.
func (n *TraceNode) settle(walked bool) {
	if n.Decision != "" {
		return
	}
	switch {
	case walked:
		n.Decision = DecisionRecursed
	case n.Jar != "":
		n.Decision = DecisionAdded
	default:
		n.Decision = DecisionMissing
	}
}

// indent returns the log prefix for the current recursion depth.
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat("  ", depth)
}
