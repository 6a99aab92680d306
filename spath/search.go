// Package spath computes single-source shortest paths in directed graphs with
// non-negative edge weights using Dijkstra's algorithm.
//
// The graph only holds the static topology. The state of a search (distances
// and predecessors) lives in a separate Result so that several searches can
// run concurrently on the same graph.
package spath

import (
	"context"
	"fmt"
)

// ctxCheckInterval is the number of frontier entries popped between two
// checks of the context's cancellation.
const ctxCheckInterval = 64

// ShortestPaths computes the shortest distance from node source to all the
// other nodes of graph g, as well as the predecessor of each node on one of
// its shortest paths.
//
// It returns an error wrapping ErrNodeNotFound if the source is not in the
// graph. A graph without any node yields an empty result and no error.
func ShortestPaths(g *Graph, source int, opts ...Option) (*Result, error) {
	return ShortestPathsContext(context.Background(), g, source, opts...)
}

// ShortestPathsContext is like ShortestPaths but stops early and returns the
// context's error if ctx is done before the search completes.
func ShortestPathsContext(ctx context.Context, g *Graph, source int, opts ...Option) (*Result, error) {
	if _, err := buildOptions(g, opts); err != nil {
		return nil, err
	}
	r := NewResult(g)
	if g.Len() == 0 {
		r.source = source
		return r, nil
	}
	if err := r.Recompute(ctx, source, opts...); err != nil {
		return nil, err
	}
	return r, nil
}

// Recompute discards the content of the result and recomputes it from node
// source. Buffers are reused so that repeated searches on the same graph do
// not allocate. Running Recompute twice from the same source on an unmodified
// graph yields the same distances.
//
// If an error is returned, the result is left empty.
func (r *Result) Recompute(ctx context.Context, source int, opts ...Option) error {
	r.reset()
	r.source = source

	src, ok := r.g.index(source)
	if !ok {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	cfg, err := buildOptions(r.g, opts)
	if err != nil {
		return err
	}

	if err := r.search(ctx, src, cfg); err != nil {
		r.reset()
		return err
	}
	return nil
}

func buildOptions(g *Graph, opts []Option) (options, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(g); err != nil {
		return options{}, err
	}
	return cfg, nil
}

func (r *Result) search(ctx context.Context, src int, cfg options) error {
	g := r.g
	target := -1
	if cfg.hasTarget {
		target, _ = g.index(cfg.target)
	}

	r.setLabel(src, 0, -1)
	r.frontier.push(src, 0)

	for pops := 0; r.frontier.Len() > 0; pops++ {
		if pops%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("search interrupted: %w", err)
			}
		}

		entry := r.frontier.pop()
		u, d := entry.node, entry.dist

		// Stale entry: u was pushed again with a smaller distance.
		if r.settled.Contains(u) || d > r.dist(u) {
			continue
		}

		r.settled.Insert(u)
		if u == target {
			break
		}

		for _, e := range g.nexts[u] {
			v := g.heads[e]
			if r.settled.Contains(v) {
				continue
			}

			// Path src -> u -> v is not better than the best known path, or
			// goes beyond the distance limit.
			newDist := d + g.edges[e].Weight
			if newDist >= r.dist(v) || newDist > cfg.maxDistance {
				continue
			}

			r.setLabel(v, newDist, u)
			r.frontier.push(v, newDist)
		}
	}

	return nil
}
