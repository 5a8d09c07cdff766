// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: One-hop neighborhood queries.
// Determinism:
//   - Every sequence follows edge-registration order at the queried vertex.
//   - Parallel edges yield the same neighbor once per edge.
//   - An unknown handle yields an empty sequence.

package core

import (
	"iter"

	"github.com/katalvlaran/arenagraph/arena"
)

// Reachable yields the vertices one hop away from h under the graph's
// direction policy: children for DiGraph, neighbors for Graph.
func (g *graph[V, W, A, PA]) Reachable(h VertexHandle) iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		if !g.HasVertex(h) {
			return
		}
		for _, e := range g.vertices.At(arena.Handle(h)).adj.reachable() {
			if !yield(g.edges.At(arena.Handle(e)).other(h)) {
				return
			}
		}
	}
}

// endpoints yields, for every edge in list, the endpoint opposite to h.
func (g *graph[V, W, A, PA]) endpoints(h VertexHandle, list []EdgeHandle) iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for _, e := range list {
			if !yield(g.edges.At(arena.Handle(e)).other(h)) {
				return
			}
		}
	}
}

// dir returns h's directed adjacency, or false for an unknown handle.
func (g *DiGraph[V, W]) dir(h VertexHandle) (Dir, bool) {
	if !g.HasVertex(h) {
		return Dir{}, false
	}

	return g.vertices.At(arena.Handle(h)).adj, true
}

// Parents yields the source of every edge pointing at h.
func (g *DiGraph[V, W]) Parents(h VertexHandle) iter.Seq[VertexHandle] {
	d, _ := g.dir(h)

	return g.endpoints(h, d.parents)
}

// Children yields the target of every edge leaving h. Same as Reachable.
func (g *DiGraph[V, W]) Children(h VertexHandle) iter.Seq[VertexHandle] {
	d, _ := g.dir(h)

	return g.endpoints(h, d.children)
}

// InDegree returns the number of edges pointing at h.
func (g *DiGraph[V, W]) InDegree(h VertexHandle) int {
	d, _ := g.dir(h)

	return d.InDegree()
}

// OutDegree returns the number of edges leaving h.
func (g *DiGraph[V, W]) OutDegree(h VertexHandle) int {
	d, _ := g.dir(h)

	return d.OutDegree()
}

// Neighbors yields every vertex sharing an edge with h. Same as Reachable.
func (g *Graph[V, W]) Neighbors(h VertexHandle) iter.Seq[VertexHandle] {
	return g.Reachable(h)
}

// Arcs yields each vertex Reachable yields from h together with the weight
// of the edge leading there, in the same order.
func (g *graph[V, W, A, PA]) Arcs(h VertexHandle) iter.Seq2[VertexHandle, W] {
	return func(yield func(VertexHandle, W) bool) {
		if !g.HasVertex(h) {
			return
		}
		for _, e := range g.vertices.At(arena.Handle(h)).adj.reachable() {
			rec := g.edges.At(arena.Handle(e))
			if !yield(rec.other(h), rec.weight) {
				return
			}
		}
	}
}
