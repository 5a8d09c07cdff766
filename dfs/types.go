// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-order hooks, depth limiting, neighbor filtering,
// full-graph (forest) traversal, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/arenagraph/core"
)

// VertexState represents the visitation state of a vertex in TopologicalSort.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to New, Walk
	// or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start handle does not
	// address a vertex of the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with New(g, opts...) or Walk(g, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, full-graph mode, and diagnostics.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts of Walk; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked by Walk for every vertex in pre-order.
	// Returning an error aborts traversal with that error.
	OnVisit func(h core.VertexHandle) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the seed vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before it is pushed.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(h core.VertexHandle) bool

	// FullTraversal, if true, restarts from every unvisited vertex once the
	// stack runs dry, covering disconnected components (forest traversal).
	FullTraversal bool

	start    core.VertexHandle
	hasStart bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:           context.Background(),
		MaxDepth:      -1,
		FullTraversal: false,
	}
}

// WithStart returns an Option that seeds the traversal at h instead of an
// arbitrary vertex.
func WithStart(h core.VertexHandle) Option {
	return func(o *DFSOptions) {
		o.start = h
		o.hasStart = true
	}
}

// WithContext returns an Option that sets the Context for Walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit(fn func(h core.VertexHandle) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the seed vertex is visited; negative disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbors.
// If fn(h) == false, that neighbor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(h core.VertexHandle) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they were visited (pre-order).
	Order []core.VertexHandle

	// Depth maps each vertex to its distance (#edges) from its tree's root.
	Depth map[core.VertexHandle]int

	// Parent maps each vertex to the vertex from which it was first visited.
	// Roots do not appear in this map.
	Parent map[core.VertexHandle]core.VertexHandle

	// SkippedNeighbors reports how many hops were skipped
	// due to FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
