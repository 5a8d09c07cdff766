// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, handle types, remap tables, graph options and the
//       Walkable contract consumed by the traversal packages.
// Policy:
//   - Handles are typed views over arena.Handle; VertexHandle and EdgeHandle
//     never mix without an explicit conversion.
//   - Options are applied left-to-right at construction and are immutable afterwards.

package core

import (
	"errors"
	"iter"

	"github.com/katalvlaran/arenagraph/arena"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateVertex indicates InsertVertex found a vertex holding an equal value.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrMissingEndpoint indicates InsertEdge/AddEdge referenced a value with no vertex.
	ErrMissingEndpoint = errors.New("core: missing edge endpoint")
)

// VertexHandle addresses a vertex inside the graph that issued it.
type VertexHandle arena.Handle

// String renders the handle as "(table,slot)".
func (h VertexHandle) String() string { return arena.Handle(h).String() }

// EdgeHandle addresses an edge inside the graph that issued it.
type EdgeHandle arena.Handle

// String renders the handle as "(table,slot)".
func (h EdgeHandle) String() string { return arena.Handle(h).String() }

// VertexRemap translates vertex handles issued before GrowVertices to the ones valid after it.
type VertexRemap map[VertexHandle]VertexHandle

// Translate returns the post-growth handle for h.
func (m VertexRemap) Translate(h VertexHandle) (VertexHandle, bool) {
	n, ok := m[h]

	return n, ok
}

// EdgeRemap translates edge handles issued before GrowEdges to the ones valid after it.
type EdgeRemap map[EdgeHandle]EdgeHandle

// Translate returns the post-growth handle for h.
func (m EdgeRemap) Translate(h EdgeHandle) (EdgeHandle, bool) {
	n, ok := m[h]

	return n, ok
}

// Walkable is the read-only contract the traversal packages (bfs, dfs,
// components) are written against. Both *Graph and *DiGraph implement it.
type Walkable interface {
	// Order returns the number of vertices.
	Order() int

	// Vertices yields every vertex handle; order is unspecified.
	Vertices() iter.Seq[VertexHandle]

	// Reachable yields the vertices one hop away from h under the graph's
	// direction policy, in edge-registration order.
	Reachable(h VertexHandle) iter.Seq[VertexHandle]

	// HasVertex reports whether h addresses a vertex of this graph.
	HasVertex(h VertexHandle) bool
}

// WeightedWalkable extends Walkable with edge weights for weighted searches.
type WeightedWalkable[W any] interface {
	Walkable

	// Arcs yields (neighbor, weight) pairs in Reachable order.
	Arcs(h VertexHandle) iter.Seq2[VertexHandle, W]
}

// options collects construction-time settings for both graph kinds.
type options struct {
	vertexHint  int
	edgeHint    int
	vertexArena []arena.Option
	edgeArena   []arena.Option
	vertexHash  any
}

// Option configures a Graph or DiGraph before creation.
type Option func(*options)

// WithCapacity sizes the vertex and edge arenas so that nVertices vertices and
// nEdges edges fit without growing. Non-positive counts keep the arena default.
// It takes precedence over a capacity set through WithVertexArena/WithEdgeArena.
func WithCapacity(nVertices, nEdges int) Option {
	return func(o *options) {
		o.vertexHint = nVertices
		o.edgeHint = nEdges
	}
}

// WithVertexArena passes raw arena options to the vertex arena.
func WithVertexArena(opts ...arena.Option) Option {
	return func(o *options) { o.vertexArena = append(o.vertexArena, opts...) }
}

// WithEdgeArena passes raw arena options to the edge arena.
func WithEdgeArena(opts ...arena.Option) Option {
	return func(o *options) { o.edgeArena = append(o.edgeArena, opts...) }
}

// WithVertexHash replaces the default per-graph maphash hashing of vertex values,
// e.g. with arena.StringHash for reproducible bucket layouts.
//
// V must match the graph's vertex type; a mismatch panics at construction.
func WithVertexHash[V comparable](fn func(V) uint64) Option {
	return func(o *options) {
		if fn != nil {
			o.vertexHash = fn
		}
	}
}
