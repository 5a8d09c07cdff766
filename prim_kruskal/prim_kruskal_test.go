// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/builder"
	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/internal/fixtures"
	"github.com/katalvlaran/arenagraph/prim_kruskal"
)

// germanMSTWeight is the total length of the cheapest road network joining all ten cities.
const germanMSTWeight = 1444

// buildTriangle returns A-B(1), B-C(2), A-C(3); its MST is A-B, B-C.
func buildTriangle(t *testing.T) *core.Graph[string, float64] {
	t.Helper()
	g := core.NewGraph[string, float64]()
	for _, v := range []string{"A", "B", "C"} {
		_, err := g.InsertVertex(v)
		require.NoError(t, err)
	}
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 3}} {
		_, err := g.InsertEdge(e.w, e.u, e.v)
		require.NoError(t, err)
	}

	return g
}

func TestKruskal_GermanRoads(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)

	mst, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, mst, len(fixtures.Cities)-1)
	assert.Equal(t, germanMSTWeight, total)
	for _, e := range mst {
		assert.NotEqual(t, 502, e.Weight(), "Kassel-München is never needed")
	}
}

func TestPrim_MatchesKruskalFromEveryRoot(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)

	for h, city := range g.All() {
		mst, total, err := prim_kruskal.Prim(g, h)
		require.NoError(t, err, city)
		assert.Len(t, mst, len(fixtures.Cities)-1, city)
		assert.Equal(t, germanMSTWeight, total, city)
	}
}

func TestMST_Triangle(t *testing.T) {
	g := buildTriangle(t)
	a, _ := g.Handle("A")

	for _, method := range []string{prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim} {
		mst, total, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(a))
		require.NoError(t, err, method)
		assert.InDelta(t, 3.0, total, 1e-9, method)
		assert.Len(t, mst, 2, method)
	}
	_, _, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestMST_EdgeCases(t *testing.T) {
	empty := core.NewGraph[string, int]()
	_, _, err := prim_kruskal.Kruskal(empty)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Prim(empty, core.VertexHandle{})
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	single := core.NewGraph[string, int]()
	solo, err := single.InsertVertex("solo")
	require.NoError(t, err)
	_, err = single.AddEdge(9, "solo", "solo")
	require.NoError(t, err)
	mst, total, err := prim_kruskal.Kruskal(single)
	require.NoError(t, err)
	assert.Empty(t, mst)
	assert.Zero(t, total)
	mst, _, err = prim_kruskal.Prim(single, solo)
	require.NoError(t, err)
	assert.Empty(t, mst)

	split := core.NewGraph[string, int]()
	for _, v := range []string{"a", "b", "c", "d"} {
		_, err = split.InsertVertex(v)
		require.NoError(t, err)
	}
	_, err = split.AddEdge(1, "a", "b")
	require.NoError(t, err)
	_, err = split.AddEdge(1, "c", "d")
	require.NoError(t, err)
	_, _, err = prim_kruskal.Kruskal(split)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	a, _ := split.Handle("a")
	_, _, err = prim_kruskal.Prim(split, a)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestMST_RandomCompleteGraph(t *testing.T) {
	g, err := builder.Undirected(nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
		builder.Complete(12))
	require.NoError(t, err)

	kMST, kTotal, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	root, _ := g.Handle("0")
	pMST, pTotal, err := prim_kruskal.Prim(g, root)
	require.NoError(t, err)

	assert.Len(t, kMST, 11)
	assert.Len(t, pMST, 11)
	assert.Equal(t, kTotal, pTotal)
}
