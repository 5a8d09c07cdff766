// SPDX-License-Identifier: MIT

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
)

func TestDirAdjacency(t *testing.T) {
	g := core.NewDiGraph[string, int]()
	for _, v := range []string{"A", "B", "C"} {
		_, err := g.InsertVertex(v)
		require.NoError(t, err)
	}
	ab, err := g.InsertEdge(1, "A", "B")
	require.NoError(t, err)
	cb, err := g.InsertEdge(1, "C", "B")
	require.NoError(t, err)
	ba, err := g.InsertEdge(1, "B", "A")
	require.NoError(t, err)

	v, ok := g.GetVertex("B")
	require.True(t, ok)
	adj := v.Adjacency()
	assert.Equal(t, []core.EdgeHandle{ab.Handle(), cb.Handle()}, adj.Parents())
	assert.Equal(t, []core.EdgeHandle{ba.Handle()}, adj.Children())
	assert.Equal(t, adj.Children(), adj.Reachable())
	assert.Equal(t, 2, adj.InDegree())
	assert.Equal(t, 1, adj.OutDegree())
	assert.Equal(t, 3, adj.Degree())
	assert.Equal(t, 3, v.Degree())

	// Parents hands out a copy
	p := adj.Parents()
	p[0] = core.EdgeHandle{}
	assert.Equal(t, ab.Handle(), adj.Parents()[0])

	// so does Reachable; the graph keeps walking to A
	r := adj.Reachable()
	r[0] = cb.Handle()
	assert.Equal(t, []core.EdgeHandle{ba.Handle()}, adj.Children())
	b, _ := g.Handle("B")
	a, _ := g.Handle("A")
	assert.Equal(t, []core.VertexHandle{a}, slices.Collect(g.Reachable(b)))
}

func TestUndirAdjacency(t *testing.T) {
	g := core.NewGraph[string, int]()
	for _, v := range []string{"A", "B"} {
		_, err := g.InsertVertex(v)
		require.NoError(t, err)
	}
	ab, err := g.InsertEdge(1, "A", "B")
	require.NoError(t, err)
	ba, err := g.InsertEdge(1, "B", "A")
	require.NoError(t, err)

	for _, name := range []string{"A", "B"} {
		v, ok := g.GetVertex(name)
		require.True(t, ok)
		adj := v.Adjacency()
		assert.Equal(t, []core.EdgeHandle{ab.Handle(), ba.Handle()}, adj.Neighbors(), name)
		assert.Equal(t, adj.Neighbors(), adj.Reachable(), name)
		assert.Equal(t, 2, adj.Degree(), name)

		r := adj.Reachable()
		r[0], r[1] = core.EdgeHandle{}, core.EdgeHandle{}
		assert.Equal(t, []core.EdgeHandle{ab.Handle(), ba.Handle()}, adj.Neighbors(), name)
	}
}
