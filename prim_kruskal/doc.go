// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees of undirected,
// weighted core.Graph values with Prim's and Kruskal's algorithms.
//
// Kruskal(g) sorts every non-loop edge by weight (stable, so ties keep edge
// iteration order) and joins components with a union-find forest.
// Prim(g, root) grows one tree from root, always taking the lightest edge
// that leaves it.
//
// Both return the tree edges, their total weight and ErrDisconnected when the
// graph does not span (an empty graph included). A single vertex has an empty
// tree of weight 0. Directed graphs are rejected at compile time: both
// functions take *core.Graph only.
//
// Complexity:
//
//   - Kruskal: O(E log E) time, O(V + E) memory.
//   - Prim:    O(E log E) time with a lazy heap, O(V + E) memory.
package prim_kruskal
