// SPDX-License-Identifier: MIT

// Package flow computes maximum flows on any core.WeightedWalkable whose
// edge weights are capacities.
//
// Three augmenting strategies share one residual network:
//
//   - Ford–Fulkerson: any augmenting path, found with dfs.Iterator.
//     Time O(E · F) on integral networks, F being the flow value.
//   - Edmonds–Karp: the fewest-hop augmenting path, found with bfs.Iterator.
//     Time O(V · E²).
//   - Dinic: bfs.Walk builds a level graph, then a blocking flow is pushed
//     along it. Time O(V² · E), O(E · √V) on unit-capacity networks.
//
// The residual network itself implements core.Walkable, so the traversal
// packages search it directly: Reachable only yields arcs whose remaining
// capacity exceeds Epsilon.
//
// Graph support:
//
//   - Directed graphs: every edge u→v carries its weight as capacity u→v.
//   - Undirected graphs: every edge carries its weight in both directions.
//   - Parallel edges have their capacities summed; self-loops are ignored.
//   - A negative capacity aborts with a *CapacityError.
//
// After a run, Result exposes the flow on each arc and the minimum cut
// separating the source side from the sink.
package flow
