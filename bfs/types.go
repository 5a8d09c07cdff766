// SPDX-License-Identifier: MIT

// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core.Walkable graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/arenagraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start handle is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by PathTo for a vertex the traversal never reached.
	ErrUnreachable = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation by New or Walk.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation of Walk. The lazy Iterator ignores it; stop
	// pulling instead.
	Ctx context.Context

	// OnEnqueue is called when a vertex is marked seen and queued.
	// Receives the vertex and its depth from the seed.
	OnEnqueue func(h core.VertexHandle, depth int)

	// OnVisit is called by Walk for every vertex in visit order. If it
	// returns an error, Walk aborts and propagates that error.
	OnVisit func(h core.VertexHandle, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each hop curr->neighbor.
	FilterNeighbor func(curr, neighbor core.VertexHandle) bool

	start    core.VertexHandle
	hasStart bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - arbitrary seed (first vertex the graph yields)
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(core.VertexHandle, int) {},
		OnVisit:        func(core.VertexHandle, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ core.VertexHandle) bool { return true },
	}
}

// WithStart seeds the traversal at h instead of an arbitrary vertex.
func WithStart(h core.VertexHandle) Option {
	return func(o *BFSOptions) {
		o.start = h
		o.hasStart = true
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(h core.VertexHandle, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback run by Walk on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(h core.VertexHandle, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: vertices deeper than d are never queued
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor core.VertexHandle) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: map from vertex to its distance (in edges) from the seed.
//   - Parent: map from vertex to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []core.VertexHandle
	Depth  map[core.VertexHandle]int
	Parent map[core.VertexHandle]core.VertexHandle
}

// Levels groups Order by depth: Levels()[d] holds the vertices at distance d.
func (r *BFSResult) Levels() [][]core.VertexHandle {
	var levels [][]core.VertexHandle
	for _, h := range r.Order {
		d := r.Depth[h]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], h)
	}

	return levels
}

// PathTo reconstructs the path from the seed vertex to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *BFSResult) PathTo(dest core.VertexHandle) ([]core.VertexHandle, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	// build reversed path
	path := []core.VertexHandle{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}
