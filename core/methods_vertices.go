// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex insertion, value<->handle lookup and vertex iteration.
// Determinism:
//   - Vertices/All follow the vertex arena's bucket-then-slot order, which is
//     unrelated to insertion order and changes after GrowVertices.

package core

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/arenagraph/arena"
)

// InsertVertex adds a vertex holding v and returns its handle.
//
// Implementation:
//   - Stage 1: Probe the vertex arena for an equal value.
//   - Stage 2: Insert a fresh Vertex with empty adjacency.
//
// Errors:
//   - ErrDuplicateVertex: a vertex with an equal value exists; nothing changes.
//   - arena.ErrCapacityExceeded / arena.ErrBucketFull (both match
//     arena.ErrRejected): the vertex arena is full; grow with GrowVertices and retry.
//
// Complexity: O(bucket length).
func (g *graph[V, W, A, PA]) InsertVertex(v V) (VertexHandle, error) {
	probe := Vertex[V, A]{value: v}
	if g.vertices.Contains(probe) {
		return VertexHandle{}, fmt.Errorf("%w: %v", ErrDuplicateVertex, v)
	}
	h, err := g.vertices.Insert(probe)
	if err != nil {
		return VertexHandle{}, fmt.Errorf("core: insert vertex %v: %w", v, err)
	}

	return VertexHandle(h), nil
}

// Handle returns the handle of the vertex holding q.
func (g *graph[V, W, A, PA]) Handle(q V) (VertexHandle, bool) {
	h, ok := g.vertices.Get(Vertex[V, A]{value: q})

	return VertexHandle(h), ok
}

// ContainsKey reports whether a vertex holds q.
func (g *graph[V, W, A, PA]) ContainsKey(q V) bool {
	return g.vertices.Contains(Vertex[V, A]{value: q})
}

// GetVertex returns the vertex holding q. The pointer addresses arena storage:
// read through it right away and do not keep it across a mutation.
func (g *graph[V, W, A, PA]) GetVertex(q V) (*Vertex[V, A], bool) {
	h, ok := g.vertices.Get(Vertex[V, A]{value: q})
	if !ok {
		return nil, false
	}

	return g.vertices.At(h), true
}

// Vertex returns the vertex addressed by h, or false for a handle this graph
// does not hold.
func (g *graph[V, W, A, PA]) Vertex(h VertexHandle) (*Vertex[V, A], bool) {
	if !g.HasVertex(h) {
		return nil, false
	}

	return g.vertices.At(arena.Handle(h)), true
}

// HasVertex reports whether h addresses a vertex of this graph.
func (g *graph[V, W, A, PA]) HasVertex(h VertexHandle) bool {
	return g.vertices.Valid(arena.Handle(h))
}

// Value returns the value stored at h.
func (g *graph[V, W, A, PA]) Value(h VertexHandle) (V, bool) {
	if !g.HasVertex(h) {
		var zero V
		return zero, false
	}

	return g.vertices.At(arena.Handle(h)).value, true
}

// Degree returns the number of edge registrations at h; 0 for an unknown handle.
// Undirected self-loops count twice, as do directed ones (once as parent, once as child).
func (g *graph[V, W, A, PA]) Degree(h VertexHandle) int {
	if !g.HasVertex(h) {
		return 0
	}

	return g.vertices.At(arena.Handle(h)).adj.Degree()
}

// Vertices yields every vertex handle. Each call re-scans the arena.
func (g *graph[V, W, A, PA]) Vertices() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for h := range g.vertices.Handles() {
			if !yield(VertexHandle(h)) {
				return
			}
		}
	}
}

// All yields every (handle, value) pair.
func (g *graph[V, W, A, PA]) All() iter.Seq2[VertexHandle, V] {
	return func(yield func(VertexHandle, V) bool) {
		for h, v := range g.vertices.All() {
			if !yield(VertexHandle(h), v.value) {
				return
			}
		}
	}
}
