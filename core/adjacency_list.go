// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Direction policies, the per-vertex adjacency bookkeeping.
// Policy:
//   - Dir keeps parents (incoming) and children (outgoing) separately.
//   - Undir keeps one neighbor list; both ends of an edge register there.
//   - Lists hold EdgeHandles in registration order; nothing is ever removed.

package core

import (
	"iter"
	"slices"
)

// Adjacency is the closed set of direction policies. The policy is part of a
// vertex's type, so directed-only operations simply do not exist on
// undirected graphs.
type Adjacency interface {
	Dir | Undir

	// Degree returns the number of edge registrations held by the vertex.
	Degree() int

	// Reachable returns a copy of the edges a traversal may follow out of the vertex.
	Reachable() []EdgeHandle

	// reachable is Reachable without the copy, for the graph's own iterators.
	reachable() []EdgeHandle

	// incident yields every registered edge regardless of direction.
	incident() iter.Seq[EdgeHandle]
}

// mutableAdjacency exposes the registration methods of a policy through its pointer type.
type mutableAdjacency[A Adjacency] interface {
	*A
	addOutgoing(e EdgeHandle)
	addIncoming(e EdgeHandle)
	remap(m EdgeRemap)
}

// Dir is the directed policy: an edge u->v is a child of u and a parent of v.
type Dir struct {
	parents  []EdgeHandle
	children []EdgeHandle
}

// Degree returns len(parents)+len(children); a self-loop counts twice.
func (d Dir) Degree() int { return len(d.parents) + len(d.children) }

// InDegree returns the number of incoming edges.
func (d Dir) InDegree() int { return len(d.parents) }

// OutDegree returns the number of outgoing edges.
func (d Dir) OutDegree() int { return len(d.children) }

// Reachable returns a copy of the outgoing edges: traversal follows edges forward only.
func (d Dir) Reachable() []EdgeHandle { return slices.Clone(d.children) }

func (d Dir) reachable() []EdgeHandle { return d.children }

// Parents returns a copy of the incoming edge handles.
func (d Dir) Parents() []EdgeHandle { return slices.Clone(d.parents) }

// Children returns a copy of the outgoing edge handles.
func (d Dir) Children() []EdgeHandle { return slices.Clone(d.children) }

func (d Dir) incident() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		var e EdgeHandle
		for _, e = range d.children {
			if !yield(e) {
				return
			}
		}
		for _, e = range d.parents {
			if !yield(e) {
				return
			}
		}
	}
}

func (d *Dir) addOutgoing(e EdgeHandle) { d.children = append(d.children, e) }

func (d *Dir) addIncoming(e EdgeHandle) { d.parents = append(d.parents, e) }

func (d *Dir) remap(m EdgeRemap) {
	remapList(d.parents, m)
	remapList(d.children, m)
}

// Undir is the undirected policy: both endpoints see the edge as a neighbor.
type Undir struct {
	neighbors []EdgeHandle
}

// Degree returns the number of neighbor registrations; a self-loop counts twice.
func (u Undir) Degree() int { return len(u.neighbors) }

// Reachable returns a copy of every incident edge.
func (u Undir) Reachable() []EdgeHandle { return slices.Clone(u.neighbors) }

func (u Undir) reachable() []EdgeHandle { return u.neighbors }

// Neighbors returns a copy of the incident edge handles.
func (u Undir) Neighbors() []EdgeHandle { return slices.Clone(u.neighbors) }

func (u Undir) incident() iter.Seq[EdgeHandle] { return slices.Values(u.neighbors) }

func (u *Undir) addOutgoing(e EdgeHandle) { u.neighbors = append(u.neighbors, e) }

func (u *Undir) addIncoming(e EdgeHandle) { u.neighbors = append(u.neighbors, e) }

func (u *Undir) remap(m EdgeRemap) { remapList(u.neighbors, m) }

// remapList rewrites handles in place; handles missing from m are left as they are.
func remapList(list []EdgeHandle, m EdgeRemap) {
	var i int
	for i = range list {
		if n, ok := m[list[i]]; ok {
			list[i] = n
		}
	}
}
