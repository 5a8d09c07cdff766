// SPDX-License-Identifier: MIT

package flow

import (
	"iter"
	"slices"

	"github.com/katalvlaran/arenagraph/core"
)

// residual is the residual network of a flow run. Every arc u→v of the
// input also gets its reverse v→u (capacity zero unless the input has one),
// and adj lists each neighbor once in first-registration order.
type residual[W Capacity] struct {
	order    []core.VertexHandle
	adj      map[core.VertexHandle][]core.VertexHandle
	capacity map[Arc]W // summed input capacities
	left     map[Arc]W // remaining capacities
	eps      float64
}

var _ core.Walkable = (*residual[int])(nil)

// newResidual copies g's arcs into a fresh network.
func newResidual[W Capacity](g core.WeightedWalkable[W], eps float64) (*residual[W], error) {
	n := g.Order()
	r := &residual[W]{
		order:    make([]core.VertexHandle, 0, n),
		adj:      make(map[core.VertexHandle][]core.VertexHandle, n),
		capacity: make(map[Arc]W),
		left:     make(map[Arc]W),
		eps:      eps,
	}
	for h := range g.Vertices() {
		r.order = append(r.order, h)
		r.adj[h] = nil
	}
	for _, u := range r.order {
		for v, w := range g.Arcs(u) {
			if u == v {
				continue
			}
			if float64(w) < -eps {
				return nil, &CapacityError{From: u, To: v, Cap: float64(w)}
			}
			r.link(u, v)
			r.link(v, u)
			r.capacity[Arc{u, v}] += w
			r.left[Arc{u, v}] += w
		}
	}

	return r, nil
}

// link registers v as a neighbor of u once.
func (r *residual[W]) link(u, v core.VertexHandle) {
	a := Arc{u, v}
	if _, ok := r.left[a]; ok {
		return
	}
	r.left[a] = 0
	r.adj[u] = append(r.adj[u], v)
}

// open reports whether u→v still has capacity above eps.
func (r *residual[W]) open(u, v core.VertexHandle) bool {
	return float64(r.left[Arc{u, v}]) > r.eps
}

// push moves f units along u→v.
func (r *residual[W]) push(u, v core.VertexHandle, f W) {
	r.left[Arc{u, v}] -= f
	r.left[Arc{v, u}] += f
}

func (r *residual[W]) Order() int { return len(r.order) }

func (r *residual[W]) Vertices() iter.Seq[core.VertexHandle] { return slices.Values(r.order) }

func (r *residual[W]) HasVertex(h core.VertexHandle) bool {
	_, ok := r.adj[h]

	return ok
}

// Reachable yields the neighbors of h over open arcs only.
func (r *residual[W]) Reachable(h core.VertexHandle) iter.Seq[core.VertexHandle] {
	return func(yield func(core.VertexHandle) bool) {
		for _, v := range r.adj[h] {
			if r.open(h, v) && !yield(v) {
				return
			}
		}
	}
}
