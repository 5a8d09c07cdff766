// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
)

// DefaultEdgeWeight is the weight every edge gets without WithWeightFn.
const DefaultEdgeWeight int64 = 1

// WeightFn returns the weight of the next edge. rng is nil unless WithSeed or
// WithRand was given; implementations fall back to DefaultEdgeWeight then.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 { return DefaultEdgeWeight }

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn draws uniformly from [lo, hi]. Bounds are swapped when hi < lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if lo == hi {
			return lo
		}
		return lo + rng.Int63n(hi-lo+1)
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight is WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi int64) BuilderOption { return WithWeightFn(UniformWeightFn(lo, hi)) }
