// SPDX-License-Identifier: MIT

package flow_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/flow"
	"github.com/katalvlaran/arenagraph/internal/fixtures"
)

var methods = []flow.Method{flow.MethodFordFulkerson, flow.MethodEdmondsKarp, flow.MethodDinic}

type arc struct {
	from, to string
	cap      int
}

// network builds a directed capacity graph from arcs.
func network(t *testing.T, arcs []arc) *core.DiGraph[string, int] {
	t.Helper()
	g := core.NewDiGraph[string, int]()
	for _, a := range arcs {
		for _, v := range []string{a.from, a.to} {
			if !g.ContainsKey(v) {
				_, err := g.InsertVertex(v)
				require.NoError(t, err)
			}
		}
		_, err := g.AddEdge(a.cap, a.from, a.to)
		require.NoError(t, err)
	}

	return g
}

// textbook is the six-vertex network whose maximum flow is 23.
var textbook = []arc{
	{"s", "v1", 16}, {"s", "v2", 13}, {"v1", "v3", 12}, {"v2", "v1", 4},
	{"v2", "v4", 14}, {"v3", "v2", 9}, {"v3", "t", 20}, {"v4", "v3", 7}, {"v4", "t", 4},
}

type MaxFlowSuite struct {
	suite.Suite
	g    *core.DiGraph[string, int]
	s, t core.VertexHandle
}

func (s *MaxFlowSuite) SetupTest() {
	s.g = network(s.T(), textbook)
	s.s, _ = s.g.Handle("s")
	s.t, _ = s.g.Handle("t")
}

func (s *MaxFlowSuite) names(hs []core.VertexHandle) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		v, _ := s.g.Value(h)
		out = append(out, v)
	}

	return out
}

func (s *MaxFlowSuite) TestEveryMethodFindsTheSameFlow() {
	for _, m := range methods {
		res, err := flow.MaxFlow[int](s.g, s.s, s.t, flow.WithMethod(m))
		s.Require().NoError(err, m)
		s.Equal(23, res.MaxFlow, m)
		s.Positive(res.Augmentations, m)
		s.ElementsMatch([]string{"s", "v1", "v2", "v4"}, s.names(res.SourceSide()), m)

		var cut []string
		total := 0
		for _, a := range res.MinCut() {
			cut = append(cut, s.names([]core.VertexHandle{a.From, a.To})...)
			total += res.Capacity(a.From, a.To)
			s.Zero(res.Residual(a.From, a.To), m)
		}
		s.Equal(23, total, m)
		s.ElementsMatch([]string{"v1", "v3", "v4", "v3", "v4", "t"}, cut, m)
	}
}

func (s *MaxFlowSuite) TestFlowIsConserved() {
	res, err := flow.Dinic[int](s.g, s.s, s.t)
	s.Require().NoError(err)

	for h, name := range s.g.All() {
		in, out := 0, 0
		for o := range s.g.Vertices() {
			in += res.Flow(o, h)
			out += res.Flow(h, o)
			s.LessOrEqual(res.Flow(h, o), res.Capacity(h, o), name)
		}
		switch h {
		case s.s:
			s.Equal(23, out-in)
		case s.t:
			s.Equal(23, in-out)
		default:
			s.Equal(in, out, name)
		}
	}
}

func (s *MaxFlowSuite) TestValidation() {
	_, err := flow.EdmondsKarp[int](nil, s.s, s.t)
	s.ErrorIs(err, flow.ErrNilGraph)

	_, err = flow.EdmondsKarp[int](s.g, s.s, s.s)
	s.ErrorIs(err, flow.ErrSameEndpoints)

	// eight vertices chained in one bucket: the last one sits at slot 7,
	// which no bucket of the six-vertex network can reach
	chain := core.NewDiGraph[string, int](core.WithVertexHash(func(string) uint64 { return 0 }))
	var missing core.VertexHandle
	for _, v := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		h, err := chain.InsertVertex(v)
		s.Require().NoError(err)
		missing = h
	}
	s.Require().False(s.g.HasVertex(missing))
	_, err = flow.EdmondsKarp[int](s.g, s.s, missing)
	s.ErrorIs(err, flow.ErrSinkNotFound)
	_, err = flow.EdmondsKarp[int](s.g, missing, s.t)
	s.ErrorIs(err, flow.ErrSourceNotFound)

	_, err = flow.MaxFlow[int](s.g, s.s, s.t, flow.WithMethod("push-relabel"))
	s.ErrorIs(err, flow.ErrUnknownMethod)

	_, err = flow.MaxFlow[int](s.g, s.s, s.t, flow.WithEpsilon(-1))
	s.ErrorIs(err, flow.ErrBadEpsilon)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = flow.FordFulkerson[int](s.g, s.s, s.t, flow.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

func (s *MaxFlowSuite) TestAugmentationsAreLogged() {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	res, err := flow.EdmondsKarp[int](s.g, s.s, s.t, flow.WithLogger(logger))
	s.Require().NoError(err)
	s.Equal(res.Augmentations, bytes.Count(buf.Bytes(), []byte("augmented")))
}

func TestMaxFlowSuite(t *testing.T) {
	suite.Run(t, new(MaxFlowSuite))
}

func TestGermanRoadsCarry356(t *testing.T) {
	g, err := fixtures.GermanRoads()
	require.NoError(t, err)
	from, _ := g.Handle("Frankfurt")
	to, _ := g.Handle("München")

	for _, m := range methods {
		res, err := flow.MaxFlow[int](g, from, to, flow.WithMethod(m))
		require.NoError(t, err, m)
		assert.Equal(t, 356, res.MaxFlow, m)

		var side []string
		for _, h := range res.SourceSide() {
			v, _ := g.Value(h)
			side = append(side, v)
		}
		assert.ElementsMatch(t, []string{"Frankfurt", "Mannheim", "Würzburg", "Erfurt"}, side, m)
		assert.Len(t, res.MinCut(), 3, m)
	}
}

func TestCapacityEdgeCases(t *testing.T) {
	t.Run("parallel arcs add up", func(t *testing.T) {
		g := network(t, []arc{{"s", "t", 2}, {"s", "t", 3}})
		s, _ := g.Handle("s")
		d, _ := g.Handle("t")
		res, err := flow.EdmondsKarp[int](g, s, d)
		require.NoError(t, err)
		assert.Equal(t, 5, res.MaxFlow)
		assert.Equal(t, 5, res.Flow(s, d))
		assert.Zero(t, res.Flow(d, s))
	})

	t.Run("self-loops and unreachable sinks carry nothing", func(t *testing.T) {
		g := network(t, []arc{{"s", "s", 9}, {"t", "s", 4}})
		s, _ := g.Handle("s")
		d, _ := g.Handle("t")
		for _, m := range methods {
			res, err := flow.MaxFlow[int](g, s, d, flow.WithMethod(m))
			require.NoError(t, err, m)
			assert.Zero(t, res.MaxFlow, m)
			assert.Zero(t, res.Augmentations, m)
			assert.Empty(t, res.MinCut(), m)
		}
	})

	t.Run("negative capacity", func(t *testing.T) {
		g := network(t, []arc{{"x", "y", -1}})
		x, _ := g.Handle("x")
		y, _ := g.Handle("y")
		_, err := flow.Dinic[int](g, x, y)
		require.ErrorIs(t, err, flow.ErrNegativeCapacity)
		var ce *flow.CapacityError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, x, ce.From)
		assert.Equal(t, y, ce.To)
		assert.Equal(t, -1.0, ce.Cap)
	})

	t.Run("fractional capacities", func(t *testing.T) {
		g := core.NewDiGraph[string, float64]()
		for _, v := range []string{"s", "a", "t"} {
			_, err := g.InsertVertex(v)
			require.NoError(t, err)
		}
		for _, a := range []struct {
			from, to string
			cap      float64
		}{{"s", "a", 0.5}, {"a", "t", 0.25}, {"s", "t", 0.1}} {
			_, err := g.AddEdge(a.cap, a.from, a.to)
			require.NoError(t, err)
		}
		s, _ := g.Handle("s")
		d, _ := g.Handle("t")
		for _, m := range methods {
			res, err := flow.MaxFlow[float64](g, s, d, flow.WithMethod(m))
			require.NoError(t, err, m)
			assert.InDelta(t, 0.35, res.MaxFlow, 1e-9, m)
		}
	})
}
