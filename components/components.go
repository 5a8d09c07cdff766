// SPDX-License-Identifier: MIT

// Package components partitions a core.Walkable graph into the vertex sets
// reached by successive depth-first traversals.
//
// Each component is a complete depth-first traversal from a vertex no earlier
// traversal reached. A global seen set only decides where the next traversal
// starts; the traversal itself ignores it.
//
// For a core.Graph these are exactly the connected components. For a
// core.DiGraph they are forward-reachable clusters: a later cluster lists
// every vertex its root reaches, including vertices an earlier cluster already
// holds, and the clusters depend on which vertex each traversal starts from.
// They are not strongly connected components.
//
// Complexity: Time O(V·(V+E)) worst case on directed graphs, O(V+E) on
// undirected ones. Memory O(V+E).
package components

import (
	"errors"
	"iter"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
)

// ErrGraphNil is returned when a nil graph is passed to New or All.
var ErrGraphNil = errors.New("components: graph is nil")

// Iterator yields one component per Next call.
type Iterator struct {
	graph core.Walkable
	roots []core.VertexHandle
	seen  map[core.VertexHandle]struct{}
}

// New prepares a component Iterator over g. Roots are tried in the order
// g.Vertices yields them.
func New(g core.Walkable) (*Iterator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	it := &Iterator{
		graph: g,
		roots: make([]core.VertexHandle, 0, n),
		seen:  make(map[core.VertexHandle]struct{}, n),
	}
	for h := range g.Vertices() {
		it.roots = append(it.roots, h)
	}

	return it, nil
}

// Next returns every vertex reachable from the next unseen root, in
// depth-first pre-order, or false when no unseen vertex remains.
func (it *Iterator) Next() ([]core.VertexHandle, bool) {
	for len(it.roots) > 0 {
		root := it.roots[0]
		it.roots = it.roots[1:]
		if _, ok := it.seen[root]; ok {
			continue
		}
		walk, err := dfs.New(it.graph, dfs.WithStart(root))
		if err != nil {
			// root came from g.Vertices, so this only fires if g changed under us
			return nil, false
		}
		var comp []core.VertexHandle
		for h := range walk.All() {
			comp = append(comp, h)
			it.seen[h] = struct{}{}
		}

		return comp, true
	}

	return nil, false
}

// Seq drains the Iterator as a range-over-func sequence.
func (it *Iterator) Seq() iter.Seq[[]core.VertexHandle] {
	return func(yield func([]core.VertexHandle) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// All collects every component of g.
func All(g core.Walkable) ([][]core.VertexHandle, error) {
	it, err := New(g)
	if err != nil {
		return nil, err
	}
	var out [][]core.VertexHandle
	for c := range it.Seq() {
		out = append(out, c)
	}

	return out, nil
}
