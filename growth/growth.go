// SPDX-License-Identifier: MIT

package growth

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/arenagraph/arena"
	"github.com/katalvlaran/arenagraph/core"
)

// ErrGrowthLimit indicates an insert was still rejected after MaxRounds growths.
var ErrGrowthLimit = errors.New("growth: retry limit reached")

// DefaultMaxRounds bounds the grow-and-retry loop of a single insert.
const DefaultMaxRounds = 8

// VertexTable is the vertex side of a core graph. *core.Graph and *core.DiGraph implement it.
type VertexTable[V comparable] interface {
	InsertVertex(v V) (core.VertexHandle, error)
	GrowVertices() (core.VertexRemap, error)
	VertexCapacity() int
}

// EdgeTable is the edge side of a core graph. *core.Graph and *core.DiGraph implement it.
type EdgeTable[V comparable, W any] interface {
	AddEdge(w W, from, to V) (core.EdgeHandle, error)
	GrowEdges() (core.EdgeRemap, error)
	EdgeCapacity() int
}

var (
	_ VertexTable[string]    = (*core.Graph[string, int])(nil)
	_ EdgeTable[string, int] = (*core.DiGraph[string, int])(nil)
)

// Stats counts what an Orchestrator has done so far.
type Stats struct {
	VertexGrowths int
	EdgeGrowths   int
	Rejections    int
}

// Orchestrator retries rejected inserts after growing the rejecting arena.
// It is not safe for concurrent use; neither are the graphs it drives.
type Orchestrator struct {
	logger    *log.Logger
	maxRounds int
	onVertex  []func(core.VertexRemap)
	onEdge    []func(core.EdgeRemap)
	stats     Stats
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger routes growth events to l at debug level. The default logger discards.
func WithLogger(l *log.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxRounds sets how many times one insert may grow its arena (n >= 1).
func WithMaxRounds(n int) Option {
	return func(o *Orchestrator) {
		if n >= 1 {
			o.maxRounds = n
		}
	}
}

// New returns an Orchestrator with DefaultMaxRounds and a discarding logger.
func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		logger:    log.New(io.Discard),
		maxRounds: DefaultMaxRounds,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	return o
}

// OnVertexRemap registers fn to run after every vertex arena growth.
func (o *Orchestrator) OnVertexRemap(fn func(core.VertexRemap)) {
	if fn != nil {
		o.onVertex = append(o.onVertex, fn)
	}
}

// OnEdgeRemap registers fn to run after every edge arena growth.
func (o *Orchestrator) OnEdgeRemap(fn func(core.EdgeRemap)) {
	if fn != nil {
		o.onEdge = append(o.onEdge, fn)
	}
}

// Stats returns the counters accumulated so far.
func (o *Orchestrator) Stats() Stats { return o.stats }

// MaxRounds returns the per-insert growth budget.
func (o *Orchestrator) MaxRounds() int { return o.maxRounds }

// Vertex inserts v into g, growing the vertex arena and retrying while the
// insert is rejected for capacity. A nil o behaves like New().
//
// Errors:
//   - core.ErrDuplicateVertex and other non-capacity errors, unchanged.
//   - arena.ErrGrowFailed (wrapped) when a growth itself fails.
//   - ErrGrowthLimit (wrapping the last rejection) after MaxRounds growths.
func Vertex[V comparable](o *Orchestrator, g VertexTable[V], v V) (core.VertexHandle, error) {
	if o == nil {
		o = New()
	}
	var round int
	for round = 0; ; round++ {
		h, err := g.InsertVertex(v)
		if err == nil || !errors.Is(err, arena.ErrRejected) {
			return h, err
		}
		o.stats.Rejections++
		if round == o.maxRounds {
			return core.VertexHandle{}, fmt.Errorf("%w: vertex %v after %d growths: %w", ErrGrowthLimit, v, round, err)
		}

		before := g.VertexCapacity()
		remap, gerr := g.GrowVertices()
		if gerr != nil {
			return core.VertexHandle{}, fmt.Errorf("growth: vertex %v: %w", v, gerr)
		}
		o.stats.VertexGrowths++
		o.logger.Debug("grew vertex arena", "from", before, "to", g.VertexCapacity(), "moved", len(remap), "cause", err)
		for _, fn := range o.onVertex {
			fn(remap)
		}
	}
}

// Edge adds an edge from->to of weight w to g, growing the edge arena and
// retrying while the insert is rejected for capacity. A nil o behaves like New().
//
// Errors mirror Vertex; core.ErrMissingEndpoint is returned unchanged.
func Edge[V comparable, W any](o *Orchestrator, g EdgeTable[V, W], w W, from, to V) (core.EdgeHandle, error) {
	if o == nil {
		o = New()
	}
	var round int
	for round = 0; ; round++ {
		h, err := g.AddEdge(w, from, to)
		if err == nil || !errors.Is(err, arena.ErrRejected) {
			return h, err
		}
		o.stats.Rejections++
		if round == o.maxRounds {
			return core.EdgeHandle{}, fmt.Errorf("%w: edge %v-%v after %d growths: %w", ErrGrowthLimit, from, to, round, err)
		}

		before := g.EdgeCapacity()
		remap, gerr := g.GrowEdges()
		if gerr != nil {
			return core.EdgeHandle{}, fmt.Errorf("growth: edge %v-%v: %w", from, to, gerr)
		}
		o.stats.EdgeGrowths++
		o.logger.Debug("grew edge arena", "from", before, "to", g.EdgeCapacity(), "moved", len(remap), "cause", err)
		for _, fn := range o.onEdge {
			fn(remap)
		}
	}
}
