// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/arenagraph/core"
)

// Kruskal returns a minimum spanning tree of g and its total weight.
func Kruskal[V comparable, W Weight](g *core.Graph[V, W]) ([]core.UnEdge[W], W, error) {
	n := g.Order()
	switch n {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []core.UnEdge[W]{}, 0, nil
	}

	edges := make([]core.UnEdge[W], 0, g.Size())
	for h := range g.Edges() {
		e, _ := g.Edge(h)
		if a, b := e.Endpoints(); a == b {
			continue
		}
		edges = append(edges, e)
	}
	slices.SortStableFunc(edges, func(x, y core.UnEdge[W]) int {
		return cmp.Compare(x.Weight(), y.Weight())
	})

	uf := newUnionFind(n)
	var (
		mst   = make([]core.UnEdge[W], 0, n-1)
		total W
	)
	for _, e := range edges {
		if !uf.union(e.Endpoints()) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight()
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// unionFind is a disjoint-set forest with path halving and union by rank.
type unionFind struct {
	parent map[core.VertexHandle]core.VertexHandle
	rank   map[core.VertexHandle]int
}

func newUnionFind(n int) *unionFind {
	return &unionFind{
		parent: make(map[core.VertexHandle]core.VertexHandle, n),
		rank:   make(map[core.VertexHandle]int, n),
	}
}

func (u *unionFind) find(h core.VertexHandle) core.VertexHandle {
	for {
		p, ok := u.parent[h]
		if !ok || p == h {
			return h
		}
		gp, ok := u.parent[p]
		if ok {
			u.parent[h] = gp
		}
		h = p
	}
}

// union merges the sets of a and b; it reports false if they were already joined.
func (u *unionFind) union(a, b core.VertexHandle) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}

	return true
}
