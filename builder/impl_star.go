// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4 // the rim is a cycle of n-1 >= 3 vertices

	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"
)

// Star builds S_n: hub CenterVertexID joined to leaves idFn(1..n-1).
//
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.addVertex(methodStar, g, CenterVertexID); err != nil {
			return err
		}
		var i int
		for i = 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := cfg.addVertex(methodStar, g, leaf); err != nil {
				return err
			}
			if err := cfg.addLink(methodStar, g, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a rim Cycle(n-1) over idFn(0..n-2) plus CenterVertexID
// joined to every rim vertex.
//
// Errors: ErrTooFewVertices if n < 4.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, n-1, err)
		}
		if err := cfg.addVertex(methodWheel, g, CenterVertexID); err != nil {
			return err
		}
		var i int
		for i = 0; i < n-1; i++ {
			if err := cfg.addLink(methodWheel, g, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
