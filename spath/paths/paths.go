// Package paths provides a compact representation of the shortest paths
// extracted from a search.
package paths

import (
	"fmt"
	"strings"
)

// Path represents a path from a source node to a destination node.
//
// A Path is a sequence of node ids that respects the following invariants:
//
//   - Minimum length: 1 (the path from a node to itself)
//   - Source node: First element in the sequence
//   - Destination node: Last element in the sequence
//
// A Path is immutable once built.
type Path struct {
	nodes  []int
	weight float64
}

// New returns the path made of the given nodes and total weight. It panics if
// nodes is empty. The slice is owned by the returned path and must not be
// modified afterwards.
func New(nodes []int, weight float64) *Path {
	if len(nodes) == 0 {
		panic("paths: empty path")
	}
	return &Path{nodes: nodes, weight: weight}
}

// FromPredecessors builds the path ending at node dst by following the
// predecessor function back to a node that has no predecessor. The pred
// function returns the predecessor of a node and false if it has none.
func FromPredecessors(dst int, weight float64, pred func(int) (int, bool)) *Path {
	nodes := []int{dst}
	for n, ok := pred(dst); ok; n, ok = pred(n) {
		nodes = append(nodes, n)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return New(nodes, weight)
}

// Length returns the length of the path in terms of nodes.
func (p *Path) Length() int {
	return len(p.nodes)
}

// Weight returns the sum of the weights of the edges in the path.
func (p *Path) Weight() float64 {
	return p.weight
}

// Node returns the node at position pos starting from 0 (the source) and
// ending at Length()-1 (the destination).
func (p *Path) Node(pos int) int {
	return p.nodes[pos]
}

// Source returns the first node of the path.
func (p *Path) Source() int {
	return p.nodes[0]
}

// Destination returns the last node of the path.
func (p *Path) Destination() int {
	return p.nodes[len(p.nodes)-1]
}

// Nodes returns the sequence of nodes in the path (including the path's source
// and destination).
//
// Important: the slice is a view on one of the path's internal structure and
// should only be used in read-only operations. Modifying the slice will most
// likely results in incorrect behavior.
func (p *Path) Nodes() []int {
	return p.nodes
}

// String returns a string representation of the path as a sequence of nodes
// separated by " -> ". For example: "0 -> 4 -> 3 -> 1".
func (p *Path) String() string {
	sb := strings.Builder{}
	for i := 0; i < len(p.nodes)-1; i++ {
		sb.WriteString(fmt.Sprintf("%d -> ", p.nodes[i]))
	}
	sb.WriteString(fmt.Sprintf("%d", p.nodes[len(p.nodes)-1]))
	return sb.String()
}
