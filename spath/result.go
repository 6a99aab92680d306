package spath

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/spath/spath/paths"
)

// Result holds the outcome of a single-source search: the shortest distance
// from the source to each node and the predecessor of each node on one of its
// shortest paths.
//
// A Result is not safe for concurrent use but distinct results can be computed
// concurrently on the same graph. A Result can be recomputed from another
// source with Recompute, in which case its buffers are reused.
type Result struct {
	g      *Graph
	source int

	// Labels of the nodes indexed by node index. The label of node i is only
	// valid if labeledAt[i] == timestamp. The use of a logical timestamp
	// (rather than booleans) provides an efficient way to invalidate all the
	// labels in O(1) by incrementing the timestamp.
	dists     []float64
	preds     []int // index of the predecessor, -1 if none
	labeledAt []uint
	timestamp uint

	// Nodes whose shortest distance is final, in the order in which they were
	// settled (i.e. by non-decreasing distance).
	settled *sparsesets.Set

	// Nodes with a tentative distance, ordered by that distance.
	frontier frontier
}

// NewResult returns an empty result sized for graph g. All the nodes of an
// empty result are unreached.
func NewResult(g *Graph) *Result {
	n := g.Len()
	return &Result{
		g:         g,
		dists:     make([]float64, n),
		preds:     make([]int, n),
		labeledAt: make([]uint, n),
		timestamp: 1, // must be greater than the zero values in labeledAt
		settled:   sparsesets.New(n),
		frontier:  make(frontier, 0, n),
	}
}

// Source returns the id of the node the result was computed from.
func (r *Result) Source() int {
	return r.source
}

// Distance returns the shortest distance from the source to node id or +Inf
// if the node was not reached. It returns an error wrapping ErrNodeNotFound if
// the node is not in the graph.
func (r *Result) Distance(id int) (float64, error) {
	i, err := r.nodeIndex(id)
	if err != nil {
		return 0, err
	}
	if !r.settled.Contains(i) {
		return math.Inf(1), nil
	}
	return r.dists[i], nil
}

// Reachable returns true if node id was reached by the search.
func (r *Result) Reachable(id int) bool {
	i, err := r.nodeIndex(id)
	return err == nil && r.settled.Contains(i)
}

// Predecessor returns the node that precedes node id on its shortest path
// from the source. The second returned value is false if the node has no
// predecessor, that is if it is the source, if it was not reached, or if it
// is not in the graph.
func (r *Result) Predecessor(id int) (int, bool) {
	i, err := r.nodeIndex(id)
	if err != nil || !r.settled.Contains(i) {
		return 0, false
	}
	p := r.preds[i]
	if p < 0 {
		return 0, false
	}
	return r.g.ids[p], true
}

// Path returns one shortest path from the source to node id. It returns an
// error wrapping ErrUnreachable if the node was not reached by the search and
// ErrNodeNotFound if the node is not in the graph.
func (r *Result) Path(id int) (*paths.Path, error) {
	d, err := r.Distance(id)
	if err != nil {
		return nil, err
	}
	if math.IsInf(d, 1) {
		return nil, fmt.Errorf("%w: %d", ErrUnreachable, id)
	}
	return paths.FromPredecessors(id, d, r.Predecessor), nil
}

// Reached returns the ids of the reached nodes ordered by non-decreasing
// distance from the source. The source comes first.
func (r *Result) Reached() []int {
	content := r.settled.Content()
	ids := make([]int, len(content))
	for k, i := range content {
		ids[k] = r.g.ids[i]
	}
	return ids
}

func (r *Result) nodeIndex(id int) (int, error) {
	i, ok := r.g.index(id)
	if !ok || i >= len(r.dists) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	return i, nil
}

// dist returns the tentative distance of the node at index i.
func (r *Result) dist(i int) float64 {
	if r.labeledAt[i] != r.timestamp {
		return math.Inf(1)
	}
	return r.dists[i]
}

func (r *Result) setLabel(i int, d float64, pred int) {
	r.dists[i] = d
	r.preds[i] = pred
	r.labeledAt[i] = r.timestamp
}

// reset invalidates all labels and empties the settled set and the frontier.
// The buffers are reallocated if the graph grew since the result was created.
func (r *Result) reset() {
	if n := r.g.Len(); n != len(r.dists) {
		*r = *NewResult(r.g)
		return
	}
	r.frontier.clear()
	r.settled.Clear()
	r.incrTimestamp()
}

// incrTimestamp safely increments the value of the timestamp by resetting the
// labeledAt slice and the timestamp if it overflows.
func (r *Result) incrTimestamp() {
	if r.timestamp != math.MaxUint {
		r.timestamp += 1
		return
	}
	r.timestamp = 1
	for i := range r.labeledAt {
		r.labeledAt[i] = 0
	}
}
