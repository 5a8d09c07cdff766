// SPDX-License-Identifier: MIT

// Package builder generates deterministic graph topologies (paths, cycles,
// stars, wheels, complete graphs, grids and random sparse graphs) on top of
// core graphs with string vertices and int64 weights.
//
// Constructors are composed through Build:
//
//	g := core.NewGraph[string, int64]()
//	err := builder.Build(g, []builder.BuilderOption{builder.WithSymbolIDs()},
//		builder.Cycle(5),
//	)
//
// Inserts go through a growth.Orchestrator, so the target graph may start
// with arenas of any size. On a directed target every undirected topology
// edge u-v becomes the pair u->v, v->u; Path and Cycle stay one-way.
//
// Determinism: the same options, seed and constructor order produce the same
// vertices, edges, weights and adjacency order.
package builder
