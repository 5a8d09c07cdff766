// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/arenagraph/core"
)

var (
	// ErrEmptySource is returned when no Source option is given.
	ErrEmptySource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is returned when Source does not address a vertex of the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight is returned when a relaxed edge has a negative weight.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates a non-positive or NaN InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by PathTo for a vertex the search did not reach.
	ErrUnreachable = errors.New("dijkstra: vertex not reached")
)

// Weight is the set of edge weight types Dijkstra accepts.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Options configures a Dijkstra run. Limits are compared as float64.
type Options struct {
	Ctx              context.Context
	Source           core.VertexHandle
	MaxDistance      float64 // default +Inf
	InfEdgeThreshold float64 // default +Inf

	hasSource bool
	err       error
}

// Option configures Dijkstra via functional arguments.
type Option func(*Options)

// DefaultOptions returns unlimited distances and no impassable threshold.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Source sets the start vertex.
func Source(h core.VertexHandle) Option {
	return func(o *Options) {
		o.Source = h
		o.hasSource = true
	}
}

// WithContext sets a context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance stops exploration beyond d (inclusive bound).
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w (got %v)", ErrBadMaxDistance, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithInfEdgeThreshold treats edges weighing t or more as absent.
func WithInfEdgeThreshold(t float64) Option {
	return func(o *Options) {
		if !(t > 0) {
			o.err = fmt.Errorf("%w (got %v)", ErrBadInfThreshold, t)
			return
		}
		o.InfEdgeThreshold = t
	}
}

// Result holds the distances and shortest-path tree of one run.
type Result[W Weight] struct {
	Source core.VertexHandle
	// Dist holds every reached vertex; unreached vertices are absent.
	Dist map[core.VertexHandle]W
	// Prev maps every reached vertex but Source to its predecessor.
	Prev map[core.VertexHandle]core.VertexHandle
}

// Distance returns the shortest distance to dest, or false if unreached.
func (r *Result[W]) Distance(dest core.VertexHandle) (W, bool) {
	d, ok := r.Dist[dest]

	return d, ok
}

// PathTo returns the vertices of a shortest path Source..dest.
func (r *Result[W]) PathTo(dest core.VertexHandle) ([]core.VertexHandle, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []core.VertexHandle{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
