// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/arenagraph/growth"
)

// BuilderOption configures a Build call.
// Invalid values are recorded and surfaced by Build as ErrOptionViolation.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index to vertex id mapping.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("%w: nil IDFn", ErrOptionViolation)
			return
		}
		c.idFn = fn
	}
}

// WithRand sets the random source used by RandomSparse and weight functions.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the per-edge weight function.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("%w: nil WeightFn", ErrOptionViolation)
			return
		}
		c.weightFn = fn
	}
}

// WithOrchestrator routes inserts through o, sharing its logger, round budget,
// listeners and counters. The default is a private growth.New().
func WithOrchestrator(o *growth.Orchestrator) BuilderOption {
	return func(c *builderConfig) {
		if o != nil {
			c.grower = o
		}
	}
}
