// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal (single-source and forest) on
// any core.Walkable graph, as a lazy Iterator and as an eager Walk.
package dfs

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/arenagraph/core"
)

// frame is one pending stack entry.
type frame struct {
	h      core.VertexHandle
	parent core.VertexHandle
	depth  int
	root   bool
}

// Iterator is a stack-based pre-order traversal.
//
// A vertex is marked seen when it is popped, not when it is pushed: it may
// sit on the stack several times, but only its first pop visits it and later
// pops are discarded. Unseen neighbors are pushed in registration order, so
// the last-registered neighbor is visited first.
//
// The graph must not be mutated while an Iterator is in use.
type Iterator struct {
	graph   core.Walkable
	opts    DFSOptions
	stack   []frame
	seen    map[core.VertexHandle]struct{}
	parent  map[core.VertexHandle]core.VertexHandle
	cur     frame
	roots   []core.VertexHandle // restart candidates for FullTraversal
	skipped int
}

// New prepares a depth-first Iterator over g.
// The seed is WithStart's vertex, otherwise the first vertex g yields.
// Returns ErrGraphNil or ErrStartVertexNotFound.
func New(g core.Walkable, opts ...Option) (*Iterator, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		if fn != nil {
			fn(&o)
		}
	}

	// 3. Verify the seed
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

	// 4. Seed the stack: explicit start, then (forest mode) every other vertex
	if o.hasStart {
		it.stack = append(it.stack, frame{h: o.start, root: true})
	}
	if o.FullTraversal || !o.hasStart {
		for h := range g.Vertices() {
			it.roots = append(it.roots, h)
			if !o.FullTraversal {
				break
			}
		}
	}

	return it, nil
}

// Next returns the next vertex in pre-order, or false when the traversal is exhausted.
func (it *Iterator) Next() (core.VertexHandle, bool) {
	for {
		if len(it.stack) == 0 && !it.restart() {
			return core.VertexHandle{}, false
		}
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		if _, ok := it.seen[f.h]; ok {
			continue
		}
		it.seen[f.h] = struct{}{}
		if !f.root {
			it.parent[f.h] = f.parent
		}
		it.cur = f
		it.push(f)

		return f.h, true
	}
}

// restart pushes the next unseen root; it reports false when none is left.
func (it *Iterator) restart() bool {
	for len(it.roots) > 0 {
		h := it.roots[0]
		it.roots = it.roots[1:]
		if _, ok := it.seen[h]; !ok {
			it.stack = append(it.stack, frame{h: h, root: true})
			return true
		}
	}

	return false
}

// push stacks every unseen, unfiltered neighbor of f.
func (it *Iterator) push(f frame) {
	if it.opts.MaxDepth >= 0 && f.depth >= it.opts.MaxDepth {
		return
	}
	for nbr := range it.graph.Reachable(f.h) {
		if it.opts.FilterNeighbor != nil && !it.opts.FilterNeighbor(nbr) {
			it.skipped++
			continue
		}
		if _, ok := it.seen[nbr]; ok {
			continue
		}
		it.stack = append(it.stack, frame{h: nbr, parent: f.h, depth: f.depth + 1})
	}
}

// Depth returns the distance from its tree's root of the vertex last returned by Next.
func (it *Iterator) Depth() int { return it.cur.depth }

// Root reports whether the vertex last returned by Next started a new tree.
// With FullTraversal every root begins a new forward-reachable cluster.
func (it *Iterator) Root() bool { return it.cur.root }

// Parent returns the vertex from which h was visited. Roots have no parent.
func (it *Iterator) Parent(h core.VertexHandle) (core.VertexHandle, bool) {
	p, ok := it.parent[h]

	return p, ok
}

// Seen reports whether h has been visited so far.
func (it *Iterator) Seen(h core.VertexHandle) bool {
	_, ok := it.seen[h]

	return ok
}

// SkippedNeighbors returns how many hops FilterNeighbor has rejected so far.
func (it *Iterator) SkippedNeighbors() int { return it.skipped }

// All drains the Iterator as a range-over-func sequence.
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

// Walk performs depth-first traversal on g. If opts include WithFullTraversal,
// it covers all disconnected parts; otherwise it visits what the seed reaches.
// Returns the result collected so far together with the error if aborted by
// context or hook.
func Walk(g core.Walkable, opts ...Option) (*DFSResult, error) {
	it, err := New(g, opts...)
	if err != nil {
		return nil, err
	}

	n := g.Order()
	res := &DFSResult{
		Order:  make([]core.VertexHandle, 0, n),
		Depth:  make(map[core.VertexHandle]int, n),
		Parent: make(map[core.VertexHandle]core.VertexHandle, n),
	}
	ctx := it.opts.Ctx

	for h := range it.All() {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		res.Order = append(res.Order, h)
		res.Depth[h] = it.Depth()
		if p, ok := it.Parent(h); ok {
			res.Parent[h] = p
		}
		if it.opts.OnVisit != nil {
			if err = it.opts.OnVisit(h); err != nil {
				res.SkippedNeighbors = it.skipped

				return res, fmt.Errorf("dfs: OnVisit hook for %v: %w", h, err)
			}
		}
	}
	res.SkippedNeighbors = it.skipped

	return res, nil
}
