package spath

import (
	"fmt"
	"math"
)

// Option customizes a search.
type Option func(*options)

type options struct {
	// Nodes farther than maxDistance from the source are left unreached.
	maxDistance float64

	// The search stops as soon as the target is settled if hasTarget is true.
	target    int
	hasTarget bool
}

func defaultOptions() options {
	return options{maxDistance: math.Inf(1)}
}

// WithMaxDistance bounds the search to the nodes whose shortest distance from
// the source is at most d. Other nodes are reported as unreached. The search
// fails with ErrBadMaxDistance if d is negative or NaN.
func WithMaxDistance(d float64) Option {
	return func(o *options) {
		o.maxDistance = d
	}
}

// WithTarget stops the search as soon as the shortest distance to node id is
// known. Nodes that are not settled at that point are reported as unreached.
func WithTarget(id int) Option {
	return func(o *options) {
		o.target = id
		o.hasTarget = true
	}
}

func (o *options) validate(g *Graph) error {
	if math.IsNaN(o.maxDistance) || o.maxDistance < 0 {
		return fmt.Errorf("%w: %v", ErrBadMaxDistance, o.maxDistance)
	}
	if o.hasTarget && !g.HasNode(o.target) {
		return fmt.Errorf("%w: target %d", ErrNodeNotFound, o.target)
	}
	return nil
}
