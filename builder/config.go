// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/arenagraph/growth"
)

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	grower   *growth.Orchestrator

	err error
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.grower == nil {
		cfg.grower = growth.New()
	}

	return cfg
}

// addVertices inserts idFn(0..n-1) and returns the ids.
func (c builderConfig) addVertices(method string, g Target, n int) ([]string, error) {
	ids := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		ids[i] = c.idFn(i)
		if err := c.addVertex(method, g, ids[i]); err != nil {
			return nil, err
		}
	}

	return ids, nil
}

func (c builderConfig) addVertex(method string, g Target, id string) error {
	if _, err := growth.Vertex[string](c.grower, g, id); err != nil {
		return fmt.Errorf("%s: InsertVertex(%s): %w", method, id, err)
	}

	return nil
}

// addArc inserts the single edge u->v (or u-v when g is undirected).
func (c builderConfig) addArc(method string, g Target, u, v string) error {
	w := c.weightFn(c.rng)
	if _, err := growth.Edge[string, int64](c.grower, g, w, u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// addLink inserts u-v; on a directed target it inserts u->v and v->u with one weight.
func (c builderConfig) addLink(method string, g Target, u, v string) error {
	w := c.weightFn(c.rng)
	if _, err := growth.Edge[string, int64](c.grower, g, w, u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", method, u, v, w, err)
	}
	if !g.Directed() {
		return nil
	}
	if _, err := growth.Edge[string, int64](c.grower, g, w, v, u); err != nil {
		return fmt.Errorf("%s: AddEdge(%s->%s, w=%d): %w", method, v, u, w, err)
	}

	return nil
}
