// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
)

// MaxFlow computes the maximum source→sink flow of g with the strategy
// chosen by WithMethod (Edmonds–Karp by default).
func MaxFlow[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, opts ...Option) (*Result[W], error) {
	o, err := resolve(g, source, sink, opts)
	if err != nil {
		return nil, err
	}
	switch o.Method {
	case MethodFordFulkerson, MethodEdmondsKarp, MethodDinic:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}

	return run(g, source, sink, o)
}

// FordFulkerson augments along whichever path a depth-first search finds first.
func FordFulkerson[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, opts ...Option) (*Result[W], error) {
	return runWith(g, source, sink, MethodFordFulkerson, opts)
}

// EdmondsKarp augments along a fewest-hop path each round.
func EdmondsKarp[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, opts ...Option) (*Result[W], error) {
	return runWith(g, source, sink, MethodEdmondsKarp, opts)
}

// Dinic saturates a blocking flow of the breadth-first level graph each round.
func Dinic[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, opts ...Option) (*Result[W], error) {
	return runWith(g, source, sink, MethodDinic, opts)
}

func runWith[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, m Method, opts []Option) (*Result[W], error) {
	o, err := resolve(g, source, sink, opts)
	if err != nil {
		return nil, err
	}
	o.Method = m

	return run(g, source, sink, o)
}

// resolve applies opts and validates the endpoints.
func resolve[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, opts []Option) (FlowOptions, error) {
	o := DefaultOptions()
	if g == nil {
		return o, ErrNilGraph
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}
	if !g.HasVertex(source) {
		return o, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return o, fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}
	if source == sink {
		return o, ErrSameEndpoints
	}

	return o, nil
}

// run drives the chosen strategy until no augmenting path is left, then
// records the source side of the minimum cut.
func run[W Capacity](g core.WeightedWalkable[W], source, sink core.VertexHandle, o FlowOptions) (*Result[W], error) {
	net, err := newResidual(g, o.Epsilon)
	if err != nil {
		return nil, err
	}
	res := &Result[W]{Source: source, Sink: sink, net: net}

	for {
		if err = o.Ctx.Err(); err != nil {
			return nil, err
		}
		var pushed W
		var ok bool
		switch o.Method {
		case MethodDinic:
			pushed, ok = net.blockingFlow(source, sink)
		case MethodFordFulkerson:
			pushed, ok = net.augment(source, sink, dfsPath[W])
		default:
			pushed, ok = net.augment(source, sink, bfsPath[W])
		}
		if !ok {
			break
		}
		res.MaxFlow += pushed
		res.Augmentations++
		o.Logger.Debug("augmented", "method", o.Method, "round", res.Augmentations, "flow", pushed, "total", res.MaxFlow)
	}

	side, err := bfs.Walk(net, bfs.WithStart(source), bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}
	res.sourceSide = side.Order

	return res, nil
}

// pathFinder returns an open source→sink path, sink last.
type pathFinder[W Capacity] func(r *residual[W], source, sink core.VertexHandle) ([]core.VertexHandle, bool)

// augment pushes the bottleneck of one path found by find.
func (r *residual[W]) augment(source, sink core.VertexHandle, find pathFinder[W]) (W, bool) {
	path, ok := find(r, source, sink)
	if !ok {
		return 0, false
	}
	bottle := r.left[Arc{path[0], path[1]}]
	for i := 1; i < len(path)-1; i++ {
		bottle = min(bottle, r.left[Arc{path[i], path[i+1]}])
	}
	for i := 0; i < len(path)-1; i++ {
		r.push(path[i], path[i+1], bottle)
	}

	return bottle, true
}

// parentLinks is satisfied by both traversal iterators.
type parentLinks interface {
	Parent(h core.VertexHandle) (core.VertexHandle, bool)
}

// trace rebuilds the source→sink path from parent links.
func trace(it parentLinks, source, sink core.VertexHandle) ([]core.VertexHandle, bool) {
	if _, ok := it.Parent(sink); !ok {
		return nil, false
	}
	path := []core.VertexHandle{sink}
	for cur := sink; cur != source; {
		cur, _ = it.Parent(cur)
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

func bfsPath[W Capacity](r *residual[W], source, sink core.VertexHandle) ([]core.VertexHandle, bool) {
	it, err := bfs.New(r, bfs.WithStart(source))
	if err != nil {
		return nil, false
	}
	for h := range it.All() {
		if h == sink {
			break
		}
	}

	return trace(it, source, sink)
}

func dfsPath[W Capacity](r *residual[W], source, sink core.VertexHandle) ([]core.VertexHandle, bool) {
	it, err := dfs.New(r, dfs.WithStart(source))
	if err != nil {
		return nil, false
	}
	for h := range it.All() {
		if h == sink {
			break
		}
	}

	return trace(it, source, sink)
}

// blockingFlow levels the network by breadth-first depth and pushes flow
// along strictly deeper arcs until the sink is cut off in that level graph.
// It reports false once the sink is unreachable.
func (r *residual[W]) blockingFlow(source, sink core.VertexHandle) (W, bool) {
	levels, err := bfs.Walk(r, bfs.WithStart(source))
	if err != nil {
		return 0, false
	}
	if _, ok := levels.Depth[sink]; !ok {
		return 0, false
	}

	var limit W
	for _, v := range r.adj[source] {
		limit += r.left[Arc{source, v}]
	}
	next := make(map[core.VertexHandle]int, len(levels.Order))
	var total W
	for {
		f := r.advance(source, sink, limit, levels.Depth, next)
		if float64(f) <= r.eps {
			break
		}
		total += f
	}

	return total, float64(total) > r.eps
}

// advance pushes up to limit units from u toward sink along the level graph.
// next[u] remembers the first neighbor of u not yet known to be dead.
func (r *residual[W]) advance(u, sink core.VertexHandle, limit W, level map[core.VertexHandle]int, next map[core.VertexHandle]int) W {
	if u == sink {
		return limit
	}
	for ; next[u] < len(r.adj[u]); next[u]++ {
		v := r.adj[u][next[u]]
		if lv, ok := level[v]; !ok || lv != level[u]+1 || !r.open(u, v) {
			continue
		}
		if f := r.advance(v, sink, min(limit, r.left[Arc{u, v}]), level, next); float64(f) > r.eps {
			r.push(u, v, f)
			return f
		}
	}

	return 0
}
