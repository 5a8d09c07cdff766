// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion, edge lookup and edge iteration for both graph kinds.
// Policy:
//   - Insertion is atomic: the edge is either stored and registered at both
//     endpoints, or nothing changes.
//   - Parallel edges and self-loops are accepted.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/arenagraph/arena"
)

// AddEdge connects the vertices holding from and to with a new edge of weight w.
//
// Implementation:
//   - Stage 1: Resolve both endpoint values to vertex handles.
//   - Stage 2: Store the edge record in the edge arena.
//   - Stage 3: Register the edge as outgoing at from and incoming at to. Under
//     the undirected policy both registrations land in the neighbor list.
//
// Errors:
//   - ErrMissingEndpoint: from or to has no vertex.
//   - arena.ErrRejected (wrapped): the edge arena is full; grow with GrowEdges and retry.
//
// Complexity: O(bucket length) for the two lookups, O(1) amortized otherwise.
func (g *graph[V, W, A, PA]) AddEdge(w W, from, to V) (EdgeHandle, error) {
	src, ok := g.Handle(from)
	if !ok {
		return EdgeHandle{}, fmt.Errorf("%w: %v", ErrMissingEndpoint, from)
	}
	dst, ok := g.Handle(to)
	if !ok {
		return EdgeHandle{}, fmt.Errorf("%w: %v", ErrMissingEndpoint, to)
	}

	h, err := g.edges.Insert(edge[W]{id: g.nextID, weight: w, src: src, dst: dst})
	if err != nil {
		return EdgeHandle{}, fmt.Errorf("core: insert edge %v-%v: %w", from, to, err)
	}
	g.nextID++

	e := EdgeHandle(h)
	PA(&g.vertices.At(arena.Handle(src)).adj).addOutgoing(e)
	PA(&g.vertices.At(arena.Handle(dst)).adj).addIncoming(e)

	return e, nil
}

// Edges yields every edge handle. Each call re-scans the edge arena.
func (g *graph[V, W, A, PA]) Edges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for h := range g.edges.Handles() {
			if !yield(EdgeHandle(h)) {
				return
			}
		}
	}
}

// AreAdjacent reports whether an edge joins v1 and v2 in either direction.
func (g *graph[V, W, A, PA]) AreAdjacent(v1, v2 V) bool {
	_, ok := g.edgeBetween(v1, v2)

	return ok
}

// edgeBetween finds the first edge registered at v1 whose endpoints are
// {v1, v2}, regardless of orientation.
//
// Complexity: O(deg(v1)).
func (g *graph[V, W, A, PA]) edgeBetween(v1, v2 V) (EdgeHandle, bool) {
	a, ok := g.Handle(v1)
	if !ok {
		return EdgeHandle{}, false
	}
	b, ok := g.Handle(v2)
	if !ok {
		return EdgeHandle{}, false
	}

	for eh := range g.vertices.At(arena.Handle(a)).adj.incident() {
		e := g.edges.At(arena.Handle(eh))
		if (e.src == a && e.dst == b) || (e.src == b && e.dst == a) {
			return eh, true
		}
	}

	return EdgeHandle{}, false
}

// record returns the stored edge at h, or nil for a handle this graph does not hold.
func (g *graph[V, W, A, PA]) record(h EdgeHandle) *edge[W] {
	if !g.edges.Valid(arena.Handle(h)) {
		return nil
	}

	return g.edges.At(arena.Handle(h))
}

// InsertEdge adds the directed edge from->to and returns its view.
// Errors are those of AddEdge.
func (g *DiGraph[V, W]) InsertEdge(w W, from, to V) (DiEdge[W], error) {
	h, err := g.AddEdge(w, from, to)
	if err != nil {
		return DiEdge[W]{}, err
	}

	return diView(h, g.edges.At(arena.Handle(h))), nil
}

// Edge returns the view of the edge at h.
func (g *DiGraph[V, W]) Edge(h EdgeHandle) (DiEdge[W], bool) {
	e := g.record(h)
	if e == nil {
		return DiEdge[W]{}, false
	}

	return diView(h, e), true
}

// EdgeBetween returns an edge joining v1 and v2; an edge v2->v1 is found too.
func (g *DiGraph[V, W]) EdgeBetween(v1, v2 V) (DiEdge[W], bool) {
	h, ok := g.edgeBetween(v1, v2)
	if !ok {
		return DiEdge[W]{}, false
	}

	return diView(h, g.edges.At(arena.Handle(h))), true
}

// InsertEdge adds an undirected edge between from and to and returns its view.
// Errors are those of AddEdge.
func (g *Graph[V, W]) InsertEdge(w W, from, to V) (UnEdge[W], error) {
	h, err := g.AddEdge(w, from, to)
	if err != nil {
		return UnEdge[W]{}, err
	}

	return unView(h, g.edges.At(arena.Handle(h))), nil
}

// Edge returns the view of the edge at h.
func (g *Graph[V, W]) Edge(h EdgeHandle) (UnEdge[W], bool) {
	e := g.record(h)
	if e == nil {
		return UnEdge[W]{}, false
	}

	return unView(h, e), true
}

// EdgeBetween returns an edge joining v1 and v2.
func (g *Graph[V, W]) EdgeBetween(v1, v2 V) (UnEdge[W], bool) {
	h, ok := g.edgeBetween(v1, v2)
	if !ok {
		return UnEdge[W]{}, false
	}

	return unView(h, g.edges.At(arena.Handle(h))), true
}
