// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/arenagraph/arena"
	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/growth"
)

// ErrSyntax marks a malformed edge-list line.
var ErrSyntax = errors.New("graphwalk: malformed input")

// edgeLine is one input line: "from to [weight]", or a lone "name" declaring
// an isolated vertex (To == "").
type edgeLine struct {
	From, To string
	Weight   int64
	Line     int
}

// parseEdgeList reads whitespace separated edge lines. Text after '#' is a
// comment; blank lines are skipped; the weight defaults to 1.
func parseEdgeList(r io.Reader) ([]edgeLine, error) {
	var (
		out []edgeLine
		n   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 0:
			continue
		case 1:
			out = append(out, edgeLine{From: fields[0], Line: n})
		case 2:
			out = append(out, edgeLine{From: fields[0], To: fields[1], Weight: 1, Line: n})
		case 3:
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q: %w", ErrSyntax, n, fields[2], err)
			}
			out = append(out, edgeLine{From: fields[0], To: fields[1], Weight: w, Line: n})
		default:
			return nil, fmt.Errorf("%w: line %d: want \"from to [weight]\", got %d fields", ErrSyntax, n, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphwalk: read input: %w", err)
	}

	return out, nil
}

// loadedGraph is what the commands need from either graph kind.
type loadedGraph interface {
	core.WeightedWalkable[int64]
	Handle(name string) (core.VertexHandle, bool)
	Value(h core.VertexHandle) (string, bool)
	Size() int
	VertexCapacity() int
	EdgeCapacity() int
}

// table is the write side used while loading.
type table interface {
	growth.VertexTable[string]
	growth.EdgeTable[string, int64]
	ContainsKey(name string) bool
}

// buildGraph loads lines into a new graph, growing arenas as needed.
// Vertices are inserted in first-appearance order.
func buildGraph(ctx context.Context, cfg Config, directed bool, lines []edgeLine) (loadedGraph, growth.Stats, error) {
	opts := []core.Option{
		core.WithVertexHash(arena.StringHash),
		core.WithVertexArena(arena.WithConfig(cfg.Vertices)),
		core.WithEdgeArena(arena.WithConfig(cfg.Edges)),
	}
	logger := loggerFromContext(ctx)
	o := growth.New(growth.WithLogger(logger), growth.WithMaxRounds(cfg.MaxGrowthRounds))

	var (
		g   loadedGraph
		err error
	)
	if directed {
		dg := core.NewDiGraph[string, int64](opts...)
		g, err = dg, load(o, dg, lines)
	} else {
		ug := core.NewGraph[string, int64](opts...)
		g, err = ug, load(o, ug, lines)
	}
	if err != nil {
		return nil, o.Stats(), err
	}
	logger.Debug("graph loaded", "directed", directed, "vertices", g.Order(), "edges", g.Size())

	return g, o.Stats(), nil
}

func load(o *growth.Orchestrator, g table, lines []edgeLine) error {
	for _, l := range lines {
		for _, name := range []string{l.From, l.To} {
			if name == "" || g.ContainsKey(name) {
				continue
			}
			if _, err := growth.Vertex[string](o, g, name); err != nil {
				return fmt.Errorf("line %d: %w", l.Line, err)
			}
		}
		if l.To == "" {
			continue
		}
		if _, err := growth.Edge[string, int64](o, g, l.Weight, l.From, l.To); err != nil {
			return fmt.Errorf("line %d: %w", l.Line, err)
		}
	}

	return nil
}
