package spath

import (
	"fmt"
	"math"
)

// Node is a handle on a node of a Graph. ID is the identifier chosen by the
// caller and Index is the node's position in [0, Len()) which is assigned in
// creation order.
type Node struct {
	ID    int
	Index int
}

// Edge represents a directed and weighted edge between two nodes. From and To
// are node identifiers (not indices).
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph represents a directed graph with non-negative edge weights.
//
// A graph is only meant to grow: nodes and edges cannot be removed. Searches
// never modify the graph so that several searches can run concurrently on the
// same graph as long as no node or edge is added in the meantime.
type Graph struct {
	ids     []int       // index -> id
	indices map[int]int // id -> index

	// nexts[i] holds the position in edges of the edges leaving the node at
	// index i. heads[e] is the index of the node edges[e] points to.
	nexts [][]int
	edges []Edge
	heads []int
}

// NewGraph returns a new empty graph.
func NewGraph() *Graph {
	return NewGraphSize(0, 0)
}

// NewGraphSize returns a new empty graph with room for the given number of
// nodes and edges.
func NewGraphSize(nNodes int, nEdges int) *Graph {
	return &Graph{
		ids:     make([]int, 0, nNodes),
		indices: make(map[int]int, nNodes),
		nexts:   make([][]int, 0, nNodes),
		edges:   make([]Edge, 0, nEdges),
		heads:   make([]int, 0, nEdges),
	}
}

// AddNode creates a new node with the given id. It returns an error wrapping
// ErrDuplicateNode if the graph already contains a node with the same id.
func (g *Graph) AddNode(id int) (Node, error) {
	if _, ok := g.indices[id]; ok {
		return Node{}, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	i := len(g.ids)
	g.ids = append(g.ids, id)
	g.nexts = append(g.nexts, nil)
	g.indices[id] = i
	return Node{ID: id, Index: i}, nil
}

// AddNodes creates one node for each of the given ids. It stops at the first
// duplicate id; nodes created before that point are kept.
func (g *Graph) AddNodes(ids ...int) error {
	for _, id := range ids {
		if _, err := g.AddNode(id); err != nil {
			return err
		}
	}
	return nil
}

// AddEdge adds a directed edge from node from to node to. The reverse edge is
// not added. Both nodes must already be in the graph and the weight must be
// non-negative. An infinite weight is accepted and makes the edge impassable.
func (g *Graph) AddEdge(from int, to int, weight float64) error {
	if math.IsNaN(weight) || weight < 0 {
		return fmt.Errorf("%w: edge %d -> %d has weight %v", ErrNegativeWeight, from, to, weight)
	}
	u, ok := g.indices[from]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, from)
	}
	v, ok := g.indices[to]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, to)
	}
	g.nexts[u] = append(g.nexts[u], len(g.edges))
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	g.heads = append(g.heads, v)
	return nil
}

// AddBiEdge adds two directed edges with the same weight: one from a to b and
// one from b to a.
func (g *Graph) AddBiEdge(a int, b int, weight float64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	return g.AddEdge(b, a, weight)
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	return len(g.ids)
}

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

// HasNode returns true if the graph contains a node with the given id.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.indices[id]
	return ok
}

// Node returns the node with the given id.
func (g *Graph) Node(id int) (Node, bool) {
	i, ok := g.indices[id]
	if !ok {
		return Node{}, false
	}
	return Node{ID: id, Index: i}, true
}

// Nodes returns the ids of the nodes in creation order.
//
// Important: the slice is a view on one of the graph's internal structure and
// should only be used in read-only operations.
func (g *Graph) Nodes() []int {
	return g.ids
}

// Edges returns the edges leaving the node with the given id, in the order in
// which they were added. It returns nil if the node is not in the graph.
func (g *Graph) Edges(id int) []Edge {
	i, ok := g.indices[id]
	if !ok {
		return nil
	}
	edges := make([]Edge, len(g.nexts[i]))
	for k, e := range g.nexts[i] {
		edges[k] = g.edges[e]
	}
	return edges
}

// index returns the index of node id and whether it exists.
func (g *Graph) index(id int) (int, bool) {
	i, ok := g.indices[id]
	return i, ok
}
