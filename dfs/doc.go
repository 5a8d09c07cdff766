// SPDX-License-Identifier: MIT

// Package dfs implements depth-first traversal and topological sort on
// handle-addressed graphs from package core.
//
// What:
//
//   - Iterator: lazy pre-order traversal over any core.Walkable. Supports:
//   - Explicit seed (WithStart) or an arbitrary one
//   - Depth limiting and neighbor filtering
//   - Forest mode (WithFullTraversal), with Root marking each new tree
//   - Walk: drains an Iterator into a DFSResult, with cancellation via
//     context.Context and a pre-order hook.
//   - TopologicalSort: a linear ordering of a core.DiGraph, returning
//     ErrCycleDetected if a cycle exists. It only accepts *core.DiGraph, so
//     sorting an undirected graph does not compile.
//
// Marking:
//
//	The Iterator marks a vertex seen when it is popped. Neighbors are pushed
//	if unseen at push time, so a vertex may be stacked more than once before
//	its first pop; stale entries are dropped on pop and every vertex is
//	visited exactly once.
//
// Key Types & Constants:
//
//   - VertexState: White, Gray, Black (TopologicalSort markers)
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hook, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: collects pre-order, Depth, Parent, SkippedNeighbors
//
// Complexity:
//
//   - Iterator/Walk:   Time O(V+E), Memory O(V+E) (stack may hold one entry per edge)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - ErrStartVertexNotFound  start handle not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - context.Canceled        Walk or TopologicalSort canceled via context
//   - hook errors             propagated from OnVisit
package dfs
