// SPDX-License-Identifier: MIT

package dfs_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/bfs"
	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
	"github.com/katalvlaran/arenagraph/internal/fixtures"
)

// buildChain creates a directed chain graph of length n: 0→1→2→…→n-1
func buildChain(t testing.TB, n int) *core.DiGraph[int, struct{}] {
	t.Helper()
	g := core.NewDiGraph[int, struct{}](core.WithCapacity(n, n))
	for i := 0; i < n; i++ {
		_, err := g.InsertVertex(i)
		require.NoError(t, err)
	}
	for i := 0; i < n-1; i++ {
		_, err := g.AddEdge(struct{}{}, i, i+1)
		require.NoError(t, err)
	}

	return g
}

// ints maps handles back to vertex values.
func ints(g interface {
	Value(core.VertexHandle) (int, bool)
}, hs []core.VertexHandle) []int {
	out := make([]int, 0, len(hs))
	for _, h := range hs {
		v, _ := g.Value(h)
		out = append(out, v)
	}

	return out
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.Walk(nil)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := core.NewDiGraph[string, int]()
	_, err := dfs.New(g, dfs.WithStart(core.VertexHandle{}))
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_EmptyGraph(t *testing.T) {
	res, err := dfs.Walk(core.NewGraph[string, int]())
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

// TestDFS_NumericTreeOrder pins the pre-order: the last-registered neighbor
// is visited first and each subtree is finished before its sibling.
func TestDFS_NumericTreeOrder(t *testing.T) {
	g, err := fixtures.NumericTree()
	require.NoError(t, err)
	root, _ := g.Handle(0)

	want := []int{0}
	for i := 9; i >= 1; i-- {
		want = append(want, i)
		for j := 9; j >= 0; j-- {
			want = append(want, i*10+j)
		}
	}

	it, err := dfs.New(g, dfs.WithStart(root))
	require.NoError(t, err)
	assert.Equal(t, want, ints(g, slices.Collect(it.All())))
}

// TestDFS_MatchesBFSCount checks both traversals cover a connected graph once each.
func TestDFS_MatchesBFSCount(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)

	d, err := dfs.Walk(g)
	require.NoError(t, err)
	b, err := bfs.Walk(g)
	require.NoError(t, err)

	assert.Len(t, d.Order, g.Order())
	assert.Len(t, b.Order, g.Order())
	assert.ElementsMatch(t, b.Order, d.Order)
}

// TestDFS_DuplicatePushesVisitOnce builds a vertex reachable along several
// paths so it is stacked repeatedly before its first pop.
func TestDFS_DuplicatePushesVisitOnce(t *testing.T) {
	g := core.NewGraph[int, int]()
	for i := range 4 {
		_, err := g.InsertVertex(i)
		require.NoError(t, err)
	}
	// complete graph K4
	for i := range 4 {
		for j := i + 1; j < 4; j++ {
			_, err := g.AddEdge(1, i, j)
			require.NoError(t, err)
		}
	}

	res, err := dfs.Walk(g)
	require.NoError(t, err)
	assert.Len(t, res.Order, 4)
	for i, h := range res.Order {
		assert.Equal(t, i, res.Depth[h], "K4 pre-order is a path")
	}
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewDiGraph[string, int]()
	_, err := g.InsertVertex("A")
	require.NoError(t, err)
	_, err = g.InsertEdge(0, "A", "A")
	require.NoError(t, err)

	res, err := dfs.Walk(g)
	require.NoError(t, err)
	assert.Len(t, res.Order, 1)
	assert.Empty(t, res.Parent)
}

func TestDFS_ChainDepthAndParent(t *testing.T) {
	g := buildChain(t, 5)
	start, _ := g.Handle(0)

	res, err := dfs.Walk(g, dfs.WithStart(start))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ints(g, res.Order))
	for i, h := range res.Order {
		assert.Equal(t, i, res.Depth[h])
		if i > 0 {
			assert.Equal(t, res.Order[i-1], res.Parent[h])
		}
	}

	two, _ := g.Handle(2)
	res, err = dfs.Walk(g, dfs.WithStart(two))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4}, ints(g, res.Order), "edges are followed forward only")
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := buildChain(t, 5)
	start, _ := g.Handle(0)

	res, err := dfs.Walk(g, dfs.WithStart(start), dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ints(g, res.Order))

	res, err = dfs.Walk(g, dfs.WithStart(start), dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ints(g, res.Order))

	three, _ := g.Handle(3)
	res, err = dfs.Walk(g, dfs.WithStart(start), dfs.WithFilterNeighbor(func(h core.VertexHandle) bool {
		return h != three
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ints(g, res.Order))
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := core.NewDiGraph[string, int]()
	for _, v := range []string{"A", "B", "C", "D"} {
		_, err := g.InsertVertex(v)
		require.NoError(t, err)
	}
	_, err := g.InsertEdge(1, "A", "B")
	require.NoError(t, err)
	_, err = g.InsertEdge(1, "C", "D")
	require.NoError(t, err)
	a, _ := g.Handle("A")

	it, err := dfs.New(g, dfs.WithStart(a), dfs.WithFullTraversal())
	require.NoError(t, err)
	roots := 0
	visited := 0
	for range it.All() {
		visited++
		if it.Root() {
			roots++
		}
	}
	assert.Equal(t, 4, visited)
	assert.GreaterOrEqual(t, roots, 2)
	assert.LessOrEqual(t, roots, 3, "B or D can only be a root if visited before its parent")
}

func TestDFS_HookAndCancel(t *testing.T) {
	g := buildChain(t, 5)
	start, _ := g.Handle(0)
	stop := errors.New("stop")

	res, err := dfs.Walk(g, dfs.WithStart(start), dfs.WithOnVisit(func(h core.VertexHandle) error {
		if v, _ := g.Value(h); v == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2}, ints(g, res.Order))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.Walk(g, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
