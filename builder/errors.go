// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrOptionViolation indicates an invalid BuilderOption value.
	ErrOptionViolation = errors.New("builder: invalid option value")
)
