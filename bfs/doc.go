// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first traversal over any core.Walkable graph
// (core.Graph or core.DiGraph), returning unweighted distances, parent links,
// and visit order.
//
// What
//
//   - Iterator: a lazy, pull-based traversal. New(g, opts...) seeds it and
//     Next/All yield one vertex at a time; Depth and Parent describe the vertex
//     just yielded.
//   - Walk: drains an Iterator into a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from the seed
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Levels groups the result by distance and PathTo rebuilds a fewest-hop path.
//
// Algorithm
//
//	Two frontiers, this and next, plus a seen set. Pop from this; queue every
//	neighbor not yet seen into next, marking it seen at once; when this is
//	drained, swap the frontiers and go one level deeper. Marking at enqueue
//	time keeps a vertex reached from two members of one level from being
//	queued twice.
//
// Direction
//
//	Neighbors come from Walkable.Reachable: children for a DiGraph, every
//	incident edge for a Graph. Use WithFilterNeighbor to prune hops.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V)       (frontiers, Parent map, seen set)
//
// Usage
//
//	it, err := bfs.New(g, bfs.WithStart(h))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound or ErrOptionViolation
//	}
//	for v := range it.All() {
//		fmt.Println(v, it.Depth())
//	}
//
//	res, err := bfs.Walk(g, bfs.WithStart(h), bfs.WithMaxDepth(2))
//
// Options
//
//   - WithStart(h):           seed vertex (default: first vertex g yields).
//   - WithContext(ctx):       cancellation for Walk.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip hops for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):      hook when a vertex is queued.
//   - WithOnVisit(fn):        hook during Walk; returning error aborts it.
package bfs
