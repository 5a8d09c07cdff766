// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths over a
// core.WeightedWalkable graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra expands the closest unsettled vertex first, using a lazy
//     binary heap (stale entries are skipped on pop).
//   - Weights are any integer or floating point type (constraints.Integer |
//     constraints.Float); distances are accumulated in the same type.
//   - Directed graphs relax children only; undirected graphs relax every
//     neighbor. Parallel edges are all relaxed, so the lightest one wins.
//
// Options:
//
//   - Source(h): required start vertex.
//   - WithMaxDistance(d): vertices farther than d are left unreached.
//   - WithInfEdgeThreshold(t): edges weighing t or more are impassable.
//   - WithContext(ctx): cancellation, checked once per settled vertex.
//
// Errors:
//
//   - ErrEmptySource, ErrNilGraph, ErrVertexNotFound: invalid input.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid option values.
//   - ErrNegativeWeight: a relaxed edge has a negative weight. Edges the
//     search never reaches are not inspected.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package dijkstra
