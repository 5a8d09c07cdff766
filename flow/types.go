// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/arenagraph/core"
)

var (
	// ErrNilGraph is returned for a nil graph.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrSourceNotFound is returned when the source handle addresses no vertex.
	ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
	errSourceNotFound = errors.New("source vertex not found")

	// ErrSinkNotFound is returned when the sink handle addresses no vertex.
	ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
	errSinkNotFound = errors.New("sink vertex not found")

	// ErrSameEndpoints is returned when source and sink are the same vertex.
	ErrSameEndpoints = errors.New("flow: source and sink coincide")

	// ErrNegativeCapacity is matched by every *CapacityError.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrBadEpsilon indicates a negative or NaN Epsilon.
	ErrBadEpsilon = errors.New("flow: Epsilon must be non-negative")

	// ErrUnknownMethod is returned by MaxFlow for an unsupported Method.
	ErrUnknownMethod = errors.New("flow: unknown method")
)

// CapacityError reports an edge with a negative capacity.
type CapacityError struct {
	From, To core.VertexHandle
	Cap      float64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("flow: negative capacity on arc %v→%v: %g", e.From, e.To, e.Cap)
}

// Unwrap makes errors.Is(err, ErrNegativeCapacity) hold.
func (e *CapacityError) Unwrap() error { return ErrNegativeCapacity }

// Capacity is the set of edge weight types usable as capacities.
type Capacity interface {
	constraints.Integer | constraints.Float
}

// Method selects the augmenting strategy of MaxFlow.
type Method string

const (
	MethodFordFulkerson Method = "ford-fulkerson"
	MethodEdmondsKarp   Method = "edmonds-karp"
	MethodDinic         Method = "dinic"
)

// DefaultEpsilon is the residual capacity at or below which an arc counts as saturated.
const DefaultEpsilon = 1e-9

// FlowOptions configures every max-flow algorithm.
//   - Ctx: checked before each augmentation (default Background).
//   - Epsilon: capacities ≤ Epsilon are treated as zero.
//   - Method: used by MaxFlow only (default Edmonds–Karp).
//   - Logger: receives one Debug record per augmentation (default discards).
type FlowOptions struct {
	Ctx     context.Context
	Epsilon float64
	Method  Method
	Logger  *log.Logger

	err error
}

// Option configures FlowOptions.
type Option func(*FlowOptions)

// DefaultOptions returns Edmonds–Karp with DefaultEpsilon and a discarding logger.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:     context.Background(),
		Epsilon: DefaultEpsilon,
		Method:  MethodEdmondsKarp,
		Logger:  log.New(io.Discard),
	}
}

// WithContext sets a context for cancellation; nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *FlowOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEpsilon sets the saturation tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *FlowOptions) {
		if eps < 0 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: %g", ErrBadEpsilon, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMethod selects the strategy MaxFlow dispatches to.
func WithMethod(m Method) Option {
	return func(o *FlowOptions) { o.Method = m }
}

// WithLogger routes augmentation records to l; nil is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *FlowOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Arc is an ordered vertex pair of the residual network.
type Arc struct {
	From, To core.VertexHandle
}

// Result is the outcome of a max-flow run.
type Result[W Capacity] struct {
	Source, Sink  core.VertexHandle
	MaxFlow       W
	Augmentations int

	net        *residual[W]
	sourceSide []core.VertexHandle
}

// Capacity returns the summed capacity of the original edges from→to.
func (r *Result[W]) Capacity(from, to core.VertexHandle) W {
	return r.net.capacity[Arc{from, to}]
}

// Flow returns the flow carried from→to; zero when the net flow runs the other way.
func (r *Result[W]) Flow(from, to core.VertexHandle) W {
	a := Arc{from, to}
	if c, left := r.net.capacity[a], r.net.left[a]; c > left {
		return c - left
	}

	return 0
}

// Residual returns the remaining capacity from→to, reverse arcs included.
func (r *Result[W]) Residual(from, to core.VertexHandle) W {
	return r.net.left[Arc{from, to}]
}

// SourceSide returns the vertices still reachable from the source in the
// final residual network, in breadth-first order. It is the source half of a
// minimum cut.
func (r *Result[W]) SourceSide() []core.VertexHandle { return r.sourceSide }

// MinCut returns the saturated original arcs leaving SourceSide. Their
// capacities add up to MaxFlow.
func (r *Result[W]) MinCut() []Arc {
	inside := make(map[core.VertexHandle]struct{}, len(r.sourceSide))
	for _, h := range r.sourceSide {
		inside[h] = struct{}{}
	}

	var cut []Arc
	for _, u := range r.sourceSide {
		for _, v := range r.net.adj[u] {
			if _, ok := inside[v]; ok {
				continue
			}
			if c := r.net.capacity[Arc{u, v}]; float64(c) > r.net.eps {
				cut = append(cut, Arc{u, v})
			}
		}
	}

	return cut
}
