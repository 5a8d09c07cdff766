// SPDX-License-Identifier: MIT

// Package core provides generic, handle-addressed graphs built on two
// arena.Arena tables: one for vertices, one for edges.
//
// Vertices carry any comparable value V and edges any payload W. Vertices
// reference their edges, and edges their endpoints, through handles
// (VertexHandle, EdgeHandle) instead of pointers, so the whole structure can
// be moved or regrown without dangling references.
//
// Two graph kinds share one implementation and differ only in their direction
// policy, which is fixed by the type:
//
//	DiGraph[V, W]  – directed (policy Dir: parents + children)
//	Graph[V, W]    – undirected (policy Undir: one neighbor list)
//
// Direction-specific operations exist only on the kind that supports them:
// Parents/Children/InDegree/OutDegree on DiGraph, Neighbors on Graph. Edge
// views follow suit: DiEdge has Src/Dst, UnEdge has Endpoints/Other.
//
// Core methods (both kinds):
//
//	InsertVertex(v) (VertexHandle, error)     // ErrDuplicateVertex, arena.ErrRejected
//	InsertEdge(w, from, to) (edge view, error) // ErrMissingEndpoint, arena.ErrRejected
//	Handle(v) / ContainsKey(v) / GetVertex(v)
//	Order() / Size() / IsEmpty()
//	EdgeBetween(v1, v2) / AreAdjacent(v1, v2) // either orientation
//	Vertices() / Edges() / Reachable(h)       // lazy iter.Seq
//	GrowVertices() / GrowEdges()              // explicit, returns the handle remap
//
// Capacity: arenas reject inserts once full instead of resizing. A rejection
// matches arena.ErrRejected; call GrowVertices or GrowEdges and retry, or let
// the growth package do it. Growth rewrites every handle the graph stores;
// handles cached by the caller must be translated through the returned remap.
//
// Concurrency: a graph is not safe for concurrent mutation. Reads and
// traversals may run concurrently with each other but never with a mutation.
package core
