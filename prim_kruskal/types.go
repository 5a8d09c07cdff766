// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/arenagraph/core"
)

var (
	// ErrDisconnected indicates the graph has no spanning tree.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrRootNotFound indicates Prim's root is not a vertex of the graph.
	ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

	// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Weight is the set of edge weight types the MST functions accept.
type Weight interface {
	constraints.Integer | constraints.Float
}

const (
	MethodPrim    = "prim"
	MethodKruskal = "kruskal"
)

// MSTOptions selects the algorithm for Compute. Root is used by Prim only.
type MSTOptions struct {
	Method string
	Root   core.VertexHandle
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod selects MethodPrim or MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) { opts.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(root core.VertexHandle) Option {
	return func(opts *MSTOptions) { opts.Root = root }
}

// DefaultOptions selects Kruskal.
func DefaultOptions() MSTOptions {
	return MSTOptions{Method: MethodKruskal}
}

// Compute dispatches to Kruskal or Prim according to opts.
func Compute[V comparable, W Weight](g *core.Graph[V, W], opts ...Option) ([]core.UnEdge[W], W, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
