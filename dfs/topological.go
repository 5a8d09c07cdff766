// SPDX-License-Identifier: MIT

// Package dfs provides core algorithms on directed graphs, including
// topological sort.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)
package dfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/arenagraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable, W any] struct {
	graph *core.DiGraph[V, W]
	opts  topoOptions
	state map[core.VertexHandle]int // visitation state: White, Gray, Black
	order []core.VertexHandle       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Only a DiGraph can be sorted; undirected graphs are rejected at compile time.
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[V comparable, W any](g *core.DiGraph[V, W], options ...TopoOption) ([]core.VertexHandle, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	n := g.Order()
	sorter := &topoSorter[V, W]{
		graph: g,
		opts:  opts,
		state: make(map[core.VertexHandle]int, n), // all vertices start as White (0)
		order: make([]core.VertexHandle, 0, n),
	}
	// 4. Drive DFS from every unvisited vertex
	for h := range g.Vertices() {
		if sorter.state[h] == White {
			if err := sorter.visit(h); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

// visit performs a DFS from h, marking states and detecting cycles.
func (t *topoSorter[V, W]) visit(h core.VertexHandle) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Cycle detection: if already Gray, we found a back-edge
	switch t.state[h] {
	case Gray:
		v, _ := t.graph.Value(h)
		return fmt.Errorf("%w: through %v", ErrCycleDetected, v)
	case Black:
		return nil
	}
	// 3. Mark as in-progress (Gray)
	t.state[h] = Gray

	// 4. Explore each outgoing edge
	for child := range t.graph.Children(h) {
		if err := t.visit(child); err != nil {
			return err
		}
	}

	// 5. Mark as fully explored (Black) and record in post-order
	t.state[h] = Black
	t.order = append(t.order, h)

	return nil
}
