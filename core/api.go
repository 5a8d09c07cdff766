// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Record types, the shared generic graph base and the two public graph
//       kinds (Graph, DiGraph) with their constructors.
// Policy:
//   - The direction policy is a type parameter; DiGraph and Graph only differ
//     in which policy they fix and which direction-specific methods they add.
//   - No locks: mutation while a sequence is being consumed is not allowed.

package core

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/arena"
)

// Vertex wraps a user value together with its adjacency bookkeeping.
// Identity is the value alone; two vertices are the same entry iff their values are equal.
type Vertex[V comparable, A Adjacency] struct {
	value V
	adj   A
}

// Value returns the wrapped value.
func (v *Vertex[V, A]) Value() V { return v.value }

// Degree returns the number of edge registrations at this vertex.
func (v *Vertex[V, A]) Degree() int { return v.adj.Degree() }

// Adjacency returns the vertex's adjacency record (Dir or Undir).
func (v *Vertex[V, A]) Adjacency() A { return v.adj }

// edge is the stored edge record. id is a per-graph serial number and is the
// edge's identity inside the edge arena.
type edge[W any] struct {
	id     uint64
	weight W
	src    VertexHandle
	dst    VertexHandle
}

// other returns the endpoint that is not h; for a self-loop it returns h.
func (e *edge[W]) other(h VertexHandle) VertexHandle {
	if e.src == h {
		return e.dst
	}

	return e.src
}

// graph is the direction-agnostic base embedded by Graph and DiGraph.
type graph[V comparable, W any, A Adjacency, PA mutableAdjacency[A]] struct {
	vertices *arena.Arena[Vertex[V, A]]
	edges    *arena.Arena[edge[W]]
	nextID   uint64
}

// DiGraph is a directed graph: InsertEdge(w, from, to) creates from->to, and
// traversal follows edges forward only.
type DiGraph[V comparable, W any] struct {
	graph[V, W, Dir, *Dir]
}

// Graph is an undirected graph: every edge is a neighbor of both endpoints.
type Graph[V comparable, W any] struct {
	graph[V, W, Undir, *Undir]
}

var (
	_ Walkable = (*Graph[string, int])(nil)
	_ Walkable = (*DiGraph[string, int])(nil)

	_ WeightedWalkable[int] = (*Graph[string, int])(nil)
	_ WeightedWalkable[int] = (*DiGraph[string, int])(nil)
)

// NewDiGraph returns an empty directed graph.
//
// Implementation:
//   - Stage 1: Apply options left-to-right.
//   - Stage 2: Resolve each arena's Config; WithCapacity overrides the bucket count.
//   - Stage 3: Allocate both arenas (buckets themselves are allocated lazily).
//
// Complexity: O(vertex capacity + edge capacity).
func NewDiGraph[V comparable, W any](opts ...Option) *DiGraph[V, W] {
	return &DiGraph[V, W]{graph: newGraph[V, W, Dir](opts)}
}

// NewGraph returns an empty undirected graph. See NewDiGraph for option handling.
func NewGraph[V comparable, W any](opts ...Option) *Graph[V, W] {
	return &Graph[V, W]{graph: newGraph[V, W, Undir](opts)}
}

// Directed reports true; edges of a DiGraph are ordered pairs.
func (g *DiGraph[V, W]) Directed() bool { return true }

// Directed reports false.
func (g *Graph[V, W]) Directed() bool { return false }

func newGraph[V comparable, W any, A Adjacency, PA mutableAdjacency[A]](opts []Option) graph[V, W, A, PA] {
	var o options
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&o)
		}
	}

	hash := arena.ComparableHash[V]()
	if o.vertexHash != nil {
		fn, ok := o.vertexHash.(func(V) uint64)
		if !ok {
			panic(fmt.Sprintf("core: WithVertexHash got %T, graph vertices are %T", o.vertexHash, *new(V)))
		}
		hash = fn
	}

	vertices := arena.New(
		func(v Vertex[V, A]) uint64 { return hash(v.value) },
		func(a, b Vertex[V, A]) bool { return a.value == b.value },
		arena.WithConfig(resolveConfig(o.vertexArena, o.vertexHint)),
	)
	// serial ids spread evenly over the buckets
	edges := arena.New(
		func(e edge[W]) uint64 { return e.id },
		func(a, b edge[W]) bool { return a.id == b.id },
		arena.WithConfig(resolveConfig(o.edgeArena, o.edgeHint)),
	)

	return graph[V, W, A, PA]{vertices: vertices, edges: edges}
}

// resolveConfig folds raw arena options into a Config and applies a size hint.
func resolveConfig(opts []arena.Option, hint int) arena.Config {
	cfg := arena.DefaultConfig()
	var opt arena.Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if hint > 0 {
		cfg.Capacity = arena.CapacityFor(hint, cfg.LoadFactor)
	}

	return cfg
}

// Order returns the number of vertices.
func (g *graph[V, W, A, PA]) Order() int { return g.vertices.Len() }

// Size returns the number of edges.
func (g *graph[V, W, A, PA]) Size() int { return g.edges.Len() }

// IsEmpty reports whether the graph holds no vertex.
func (g *graph[V, W, A, PA]) IsEmpty() bool { return g.vertices.Len() == 0 }

// VertexCapacity returns how many vertices fit before InsertVertex is rejected
// for load. A full bucket can reject earlier.
func (g *graph[V, W, A, PA]) VertexCapacity() int { return g.vertices.Limit() }

// EdgeCapacity returns how many edges fit before AddEdge is rejected for load.
func (g *graph[V, W, A, PA]) EdgeCapacity() int { return g.edges.Limit() }
