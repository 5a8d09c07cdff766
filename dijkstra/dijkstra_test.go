// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dijkstra"
	"github.com/katalvlaran/arenagraph/internal/fixtures"
)

func handle[V comparable](t *testing.T, g interface {
	Handle(V) (core.VertexHandle, bool)
}, v V) core.VertexHandle {
	t.Helper()
	h, ok := g.Handle(v)
	require.Truef(t, ok, "vertex %v not found", v)

	return h
}

func TestDijkstra_Validation(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)
	fra := handle(t, g, "Frankfurt")

	_, err = dijkstra.Dijkstra[int](g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, err = dijkstra.Dijkstra[int](nil, dijkstra.Source(fra))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.Dijkstra[int](core.NewGraph[string, int](), dijkstra.Source(fra))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, err = dijkstra.Dijkstra[int](g, dijkstra.Source(fra), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.Dijkstra[int](g, dijkstra.Source(fra), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

func TestDijkstra_GermanRoads(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)
	fra := handle(t, g, "Frankfurt")

	res, err := dijkstra.Dijkstra[int](g, dijkstra.Source(fra))
	require.NoError(t, err)

	want := map[string]int{
		"Frankfurt": 0, "Mannheim": 85, "Karlsruhe": 165, "Augsburg": 415,
		"Würzburg": 217, "Erfurt": 403, "Nürnberg": 320, "Stuttgart": 503,
		"Kassel": 173, "München": 487,
	}
	for city, km := range want {
		d, ok := res.Distance(handle(t, g, city))
		require.True(t, ok, city)
		assert.Equal(t, km, d, city)
	}

	path, err := res.PathTo(handle(t, g, "München"))
	require.NoError(t, err)
	var names []string
	for _, h := range path {
		v, _ := g.Value(h)
		names = append(names, v)
	}
	assert.Equal(t, []string{"Frankfurt", "Würzburg", "Nürnberg", "München"}, names)

	self, err := res.PathTo(fra)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexHandle{fra}, self)
}

func TestDijkstra_Limits(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)
	fra := handle(t, g, "Frankfurt")
	muc := handle(t, g, "München")

	res, err := dijkstra.Dijkstra[int](g, dijkstra.Source(fra), dijkstra.WithMaxDistance(300))
	require.NoError(t, err)
	assert.Len(t, res.Dist, 5) // Frankfurt, Mannheim, Karlsruhe, Kassel, Würzburg
	_, err = res.PathTo(muc)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	// roads of 200 km or more are closed
	res, err = dijkstra.Dijkstra[int](g, dijkstra.Source(fra), dijkstra.WithInfEdgeThreshold(200))
	require.NoError(t, err)
	_, ok := res.Distance(muc)
	assert.False(t, ok)
	d, ok := res.Distance(handle(t, g, "Karlsruhe"))
	require.True(t, ok)
	assert.Equal(t, 165, d)
}

func TestDijkstra_DirectedAndParallel(t *testing.T) {
	g := core.NewDiGraph[string, float64]()
	for _, v := range []string{"A", "B", "C"} {
		_, err := g.InsertVertex(v)
		require.NoError(t, err)
	}
	for _, e := range []struct {
		w        float64
		from, to string
	}{{5, "A", "B"}, {1.5, "A", "B"}, {1, "B", "C"}, {0.5, "C", "A"}} {
		_, err := g.InsertEdge(e.w, e.from, e.to)
		require.NoError(t, err)
	}

	res, err := dijkstra.Dijkstra[float64](g, dijkstra.Source(handle(t, g, "B")))
	require.NoError(t, err)
	d, _ := res.Distance(handle(t, g, "A"))
	assert.InDelta(t, 1.5, d, 1e-9)
	d, _ = res.Distance(handle(t, g, "B"))
	assert.InDelta(t, 0, d, 0)

	res, err = dijkstra.Dijkstra[float64](g, dijkstra.Source(handle(t, g, "A")))
	require.NoError(t, err)
	d, _ = res.Distance(handle(t, g, "C"))
	assert.InDelta(t, 2.5, d, 1e-9)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g := core.NewGraph[string, int64]()
	for _, v := range []string{"A", "B"} {
		_, err := g.InsertVertex(v)
		require.NoError(t, err)
	}
	_, err := g.InsertEdge(-3, "A", "B")
	require.NoError(t, err)

	_, err = dijkstra.Dijkstra[int64](g, dijkstra.Source(handle(t, g, "A")))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_Canceled(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = dijkstra.Dijkstra[int](g,
		dijkstra.Source(handle(t, g, "Frankfurt")),
		dijkstra.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
