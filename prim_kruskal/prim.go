// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// Prim returns a minimum spanning tree of g grown from root and its total weight.
func Prim[V comparable, W Weight](g *core.Graph[V, W], root core.VertexHandle) ([]core.UnEdge[W], W, error) {
	n := g.Order()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: %v", ErrRootNotFound, root)
	}
	if n == 1 {
		return []core.UnEdge[W]{}, 0, nil
	}

	var (
		visited = make(map[core.VertexHandle]struct{}, n)
		mst     = make([]core.UnEdge[W], 0, n-1)
		total   W
		pq      = &edgePQ[W]{}
	)
	// visit adds h to the tree and queues its edges to vertices outside it.
	visit := func(h core.VertexHandle) {
		visited[h] = struct{}{}
		v, _ := g.Vertex(h)
		for _, eh := range v.Adjacency().Neighbors() {
			e, _ := g.Edge(eh)
			far, _ := e.Other(h)
			if _, in := visited[far]; !in {
				heap.Push(pq, candidate[W]{edge: e, to: far})
			}
		}
	}

	visit(root)
	for pq.Len() > 0 && len(mst) < n-1 {
		c := heap.Pop(pq).(candidate[W])
		if _, in := visited[c.to]; in {
			continue
		}
		mst = append(mst, c.edge)
		total += c.edge.Weight()
		visit(c.to)
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// candidate is a queued edge and the endpoint it would add to the tree.
type candidate[W Weight] struct {
	edge core.UnEdge[W]
	to   core.VertexHandle
}

type edgePQ[W Weight] []candidate[W]

func (pq edgePQ[W]) Len() int           { return len(pq) }
func (pq edgePQ[W]) Less(i, j int) bool { return pq[i].edge.Weight() < pq[j].edge.Weight() }
func (pq edgePQ[W]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ[W]) Push(x any) { *pq = append(*pq, x.(candidate[W])) }

func (pq *edgePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
