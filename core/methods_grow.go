// SPDX-License-Identifier: MIT
//
// File: methods_grow.go
// Role: Live growth of the vertex and edge arenas.
// Policy:
//   - Growth replaces one arena and rewrites every handle the graph stores
//     internally (edge endpoints or adjacency lists).
//   - Handles cached by callers are stale afterwards; translate them through
//     the returned remap.
//   - On error the graph is unchanged.

package core

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/arena"
)

// GrowVertices enlarges the vertex arena by its growth factor.
//
// Implementation:
//   - Stage 1: arena.Grow rehashes every vertex into a larger table.
//   - Stage 2: Rewrite src/dst of every stored edge through the translation.
//   - Stage 3: Swap in the new arena.
//
// Returns the old->new translation for every vertex handle.
//
// Errors:
//   - arena.ErrGrowFailed (wrapped).
//
// Complexity: O(V + E).
func (g *graph[V, W, A, PA]) GrowVertices() (VertexRemap, error) {
	next, m, err := arena.Grow(g.vertices)
	if err != nil {
		return nil, fmt.Errorf("core: grow vertices: %w", err)
	}
	remap := make(VertexRemap, len(m))
	for o, n := range m {
		remap[VertexHandle(o)] = VertexHandle(n)
	}

	for h := range g.edges.Handles() {
		e := g.edges.At(h)
		e.src = remap[e.src]
		e.dst = remap[e.dst]
	}
	g.vertices = next

	return remap, nil
}

// GrowEdges enlarges the edge arena by its growth factor and rewrites every
// adjacency list through the translation it returns.
//
// Errors:
//   - arena.ErrGrowFailed (wrapped).
//
// Complexity: O(V + E).
func (g *graph[V, W, A, PA]) GrowEdges() (EdgeRemap, error) {
	next, m, err := arena.Grow(g.edges)
	if err != nil {
		return nil, fmt.Errorf("core: grow edges: %w", err)
	}
	remap := make(EdgeRemap, len(m))
	for o, n := range m {
		remap[EdgeHandle(o)] = EdgeHandle(n)
	}

	for h := range g.vertices.Handles() {
		PA(&g.vertices.At(h).adj).remap(remap)
	}
	g.edges = next

	return remap, nil
}
