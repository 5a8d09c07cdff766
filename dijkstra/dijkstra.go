// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// Dijkstra computes shortest distances from the Source option to every vertex
// it can reach in g.
//
// Implementation:
//   - Stage 1: Validate the source, the graph and the options.
//   - Stage 2: Pop the closest unsettled vertex; skip stale heap entries.
//   - Stage 3: Relax its arcs, pushing every improved distance.
//
// The graph must not be mutated during the call.
func Dijkstra[W Weight](g core.WeightedWalkable[W], opts ...Option) (*Result[W], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasSource {
		return nil, ErrEmptySource
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, cfg.Source)
	}

	n := g.Order()
	r := &runner[W]{
		g:       g,
		options: cfg,
		settled: make(map[core.VertexHandle]struct{}, n),
		pq:      make(nodePQ[W], 0, n),
		res: &Result[W]{
			Source: cfg.Source,
			Dist:   make(map[core.VertexHandle]W, n),
			Prev:   make(map[core.VertexHandle]core.VertexHandle, n),
		},
	}
	r.res.Dist[cfg.Source] = 0
	heap.Push(&r.pq, &nodeItem[W]{h: cfg.Source})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

type runner[W Weight] struct {
	g       core.WeightedWalkable[W]
	options Options
	settled map[core.VertexHandle]struct{}
	pq      nodePQ[W]
	res     *Result[W]
}

func (r *runner[W]) process() error {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[W])
		if _, done := r.settled[item.h]; done {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		r.settled[item.h] = struct{}{}
		if err := r.relax(item.h, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax offers u's distance plus each arc weight to the arc's far end.
func (r *runner[W]) relax(u core.VertexHandle, du W) error {
	for v, w := range r.g.Arcs(u) {
		if float64(w) >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v->%v weight=%v", ErrNegativeWeight, u, v, w)
		}
		nd := du + w
		if float64(nd) > r.options.MaxDistance {
			continue
		}
		if old, seen := r.res.Dist[v]; seen && nd >= old {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem[W]{h: v, dist: nd})
	}

	return nil
}

type nodeItem[W Weight] struct {
	h    core.VertexHandle
	dist W
}

// nodePQ is a min-heap of nodeItem by dist.
type nodePQ[W Weight] []*nodeItem[W]

func (pq nodePQ[W]) Len() int           { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[W])) }

func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
