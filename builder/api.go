// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/growth"
)

// Target is a graph a Constructor can write to. *core.Graph[string, int64]
// and *core.DiGraph[string, int64] implement it.
type Target interface {
	growth.VertexTable[string]
	growth.EdgeTable[string, int64]
	Directed() bool
}

var (
	_ Target = (*core.Graph[string, int64])(nil)
	_ Target = (*core.DiGraph[string, int64])(nil)
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before the first insert
// and return sentinel errors; they never panic.
type Constructor func(g Target, cfg builderConfig) error

// Build resolves bopts and applies every constructor to g in order. The
// first constructor error is returned wrapped as "Build: %w"; vertices and
// edges inserted before it stay in g.
func Build(g Target, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return fmt.Errorf("Build: %w", cfg.err)
	}
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// Undirected builds a new core.Graph with gopts and applies cons.
func Undirected(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string, int64], error) {
	g := core.NewGraph[string, int64](gopts...)
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Directed builds a new core.DiGraph with gopts and applies cons.
func Directed(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.DiGraph[string, int64], error) {
	g := core.NewDiGraph[string, int64](gopts...)
	if err := Build(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}
