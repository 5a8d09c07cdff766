// SPDX-License-Identifier: MIT

// Package cli implements the graphwalk command-line interface.
//
// graphwalk reads an edge list, one "from to [weight]" per line with '#'
// comments, builds an arena-backed graph through the growth orchestrator and
// runs one query on it:
//
//	graphwalk bfs --start Frankfurt --to Stuttgart roads.txt
//	graphwalk dfs --all roads.txt
//	graphwalk components --directed deps.txt
//	graphwalk topo deps.txt
//	graphwalk path --from Frankfurt --to München roads.txt
//	graphwalk mst --prim roads.txt
//	graphwalk flow -d --from s --to t --method dinic pipes.txt
//	graphwalk stats --config arenas.toml roads.txt
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// every arena growth. Loggers are passed through context.Context.
package cli
