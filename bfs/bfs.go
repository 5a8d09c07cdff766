// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over a core.Walkable graph,
// as a lazy Iterator and as an eager Walk returning unweighted distances,
// parent links and visit order.
//
// BFS explores vertices in increasing distance from a seed vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/arenagraph/core"
)

// Iterator yields vertices level by level. It holds two frontiers: this, the
// level being drained, and next, the level being filled. A vertex is marked
// seen when it is queued, so it is queued at most once even when several
// members of one level reach it.
//
// The graph must not be mutated while an Iterator is in use. Abandoning an
// Iterator needs no cleanup.
type Iterator struct {
	graph  core.Walkable
	opts   BFSOptions
	this   []core.VertexHandle
	next   []core.VertexHandle
	pos    int
	depth  int
	seen   map[core.VertexHandle]struct{}
	parent map[core.VertexHandle]core.VertexHandle
}

// New prepares a breadth-first Iterator over g.
// The seed is WithStart's vertex, otherwise the first vertex g yields; an
// empty graph without WithStart gives an Iterator that yields nothing.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound.
func New(g core.Walkable, opts ...Option) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.hasStart && !g.HasVertex(o.start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, o.start)
	}

	n := g.Order()
	it := &Iterator{
		graph:  g,
		opts:   o,
		seen:   make(map[core.VertexHandle]struct{}, n),
		parent: make(map[core.VertexHandle]core.VertexHandle, n),
	}

	seed, ok := o.start, o.hasStart
	if !ok {
		for h := range g.Vertices() {
			seed, ok = h, true
			break
		}
	}
	if ok {
		it.seen[seed] = struct{}{}
		o.OnEnqueue(seed, 0)
		it.this = append(it.this, seed)
	}

	return it, nil
}

// Next returns the next vertex in breadth-first order, or false when the
// traversal is exhausted. The popped vertex's unseen neighbors are queued
// before Next returns.
func (it *Iterator) Next() (core.VertexHandle, bool) {
	if it.pos == len(it.this) {
		if len(it.next) == 0 {
			return core.VertexHandle{}, false
		}
		// next level: reuse the drained frontier as the new fill buffer
		it.this, it.next = it.next, it.this[:0]
		it.pos = 0
		it.depth++
	}
	h := it.this[it.pos]
	it.pos++
	it.expand(h)

	return h, true
}

// expand queues every unseen, unfiltered neighbor of h one level deeper.
func (it *Iterator) expand(h core.VertexHandle) {
	d := it.depth + 1
	if it.opts.MaxDepth > 0 && d > it.opts.MaxDepth {
		return
	}
	for nbr := range it.graph.Reachable(h) {
		if !it.opts.FilterNeighbor(h, nbr) {
			continue
		}
		if _, ok := it.seen[nbr]; ok {
			continue
		}
		it.seen[nbr] = struct{}{}
		it.parent[nbr] = h
		it.opts.OnEnqueue(nbr, d)
		it.next = append(it.next, nbr)
	}
}

// Depth returns the distance from the seed of the vertex last returned by Next.
func (it *Iterator) Depth() int { return it.depth }

// Parent returns the vertex through which h was first reached.
// The seed has no parent.
func (it *Iterator) Parent(h core.VertexHandle) (core.VertexHandle, bool) {
	p, ok := it.parent[h]

	return p, ok
}

// All drains the Iterator as a range-over-func sequence. Depth and Parent may
// be read inside the loop body.
func (it *Iterator) All() iter.Seq[core.VertexHandle] {
	return func(yield func(core.VertexHandle) bool) {
		for {
			h, ok := it.Next()
			if !ok || !yield(h) {
				return
			}
		}
	}
}

// Walk runs a full breadth-first traversal of g and collects the result.
// It honors Ctx cancellation (checked once per vertex) and aborts with the
// wrapped error of a failing OnVisit hook, returning the partial result.
func Walk(g core.Walkable, opts ...Option) (*BFSResult, error) {
	it, err := New(g, opts...)
	if err != nil {
		return nil, err
	}
	n := g.Order()
	res := &BFSResult{
		Order:  make([]core.VertexHandle, 0, n),
		Depth:  make(map[core.VertexHandle]int, n),
		Parent: make(map[core.VertexHandle]core.VertexHandle, n),
	}
	ctx := it.opts.Ctx

	for h := range it.All() {
		// cancellation check (once per vertex)
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		d := it.Depth()
		res.Order = append(res.Order, h)
		res.Depth[h] = d
		if p, ok := it.Parent(h); ok {
			res.Parent[h] = p
		}
		if err = it.opts.OnVisit(h, d); err != nil {
			return res, fmt.Errorf("bfs: OnVisit error at %v: %w", h, err)
		}
	}

	return res, nil
}
