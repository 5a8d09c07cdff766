// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only edge views handed out by DiGraph and Graph.
// Policy:
//   - Views are plain values copied out of the edge arena; they stay readable
//     after growth but carry the handles that were current when they were taken.
//   - Src/Dst exist only on DiEdge, Other/Endpoints only on UnEdge.

package core

// DiEdge is a directed edge src->dst.
type DiEdge[W any] struct {
	handle EdgeHandle
	weight W
	src    VertexHandle
	dst    VertexHandle
}

// Handle returns the edge's handle.
func (e DiEdge[W]) Handle() EdgeHandle { return e.handle }

// Weight returns the edge payload.
func (e DiEdge[W]) Weight() W { return e.weight }

// Src returns the tail vertex.
func (e DiEdge[W]) Src() VertexHandle { return e.src }

// Dst returns the head vertex.
func (e DiEdge[W]) Dst() VertexHandle { return e.dst }

// UnEdge is an undirected edge between two endpoints.
type UnEdge[W any] struct {
	handle EdgeHandle
	weight W
	a, b   VertexHandle
}

// Handle returns the edge's handle.
func (e UnEdge[W]) Handle() EdgeHandle { return e.handle }

// Weight returns the edge payload.
func (e UnEdge[W]) Weight() W { return e.weight }

// Endpoints returns both endpoints in insertion order.
func (e UnEdge[W]) Endpoints() (VertexHandle, VertexHandle) { return e.a, e.b }

// Other returns the endpoint opposite to h. It reports false when h is not
// incident to the edge. For a self-loop the other endpoint is h itself.
func (e UnEdge[W]) Other(h VertexHandle) (VertexHandle, bool) {
	switch h {
	case e.a:
		return e.b, true
	case e.b:
		return e.a, true
	}

	return VertexHandle{}, false
}

func diView[W any](h EdgeHandle, e *edge[W]) DiEdge[W] {
	return DiEdge[W]{handle: h, weight: e.weight, src: e.src, dst: e.dst}
}

func unView[W any](h EdgeHandle, e *edge[W]) UnEdge[W] {
	return UnEdge[W]{handle: h, weight: e.weight, a: e.src, b: e.dst}
}
