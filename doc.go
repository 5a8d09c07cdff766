// SPDX-License-Identifier: MIT

// Package arenagraph stores graphs in hash arenas and walks them.
//
// Vertices and edges live in two separately chained hash tables (arenas) and
// are addressed by small value handles instead of pointers:
//
//	arena/      - handle-addressed hash arena with explicit Grow and a handle remap
//	core/       - DiGraph and Graph over the arenas, typed vertex and edge handles
//	growth/     - grow-and-retry orchestration with remap listeners and logging
//	bfs/        - breadth-first Iterator and Walk (levels, parents, paths)
//	dfs/        - depth-first Iterator and Walk, forest mode, topological sort
//	components/ - connected components (forward-reachable clusters when directed)
//	builder/    - deterministic and random graph families (path, star, grid, ...)
//	dijkstra/   - single-source lightest paths over integer or float weights
//	prim_kruskal/ - minimum spanning trees of undirected graphs
//	flow/       - maximum flow and minimum cut over a residual network
//	cmd/graphwalk - command-line front end over edge-list files
//
// Quick example:
//
//	g := core.NewGraph[string, int]()
//	g.InsertVertex("A")
//	g.InsertVertex("B")
//	g.AddEdge(1, "A", "B")
//	a, _ := g.Handle("A")
//	res, _ := bfs.Walk(g, bfs.WithStart(a))
//
// An arena never grows by itself. A full arena rejects the insert with an
// error matching arena.ErrRejected; call GrowVertices or GrowEdges (or let a
// growth.Orchestrator do it) and retry. Handles held outside the graph must be
// translated with the returned remap.
//
//	go get github.com/katalvlaran/arenagraph
package arenagraph
