// SPDX-License-Identifier: MIT

// Package growth supervises arena growth for core graphs.
//
// Arenas never resize on their own: an insert into a full arena is rejected
// with an error matching arena.ErrRejected. An Orchestrator turns that
// rejection into a grow-and-retry loop:
//
//	o := growth.New(growth.WithLogger(logger), growth.WithMaxRounds(4))
//	o.OnVertexRemap(func(m core.VertexRemap) { cached, _ = m.Translate(cached) })
//	h, err := growth.Vertex(o, g, "Frankfurt")
//	e, err := growth.Edge(o, g, 173, "Frankfurt", "Kassel")
//
// Every growth rewrites the handles stored inside the graph. Handles the
// caller holds are translated by the registered remap listeners, which run
// after each growth and before the retry.
//
// Rejections other than arena.ErrRejected (duplicate vertex, missing
// endpoint) are returned unchanged and never trigger growth.
package growth
