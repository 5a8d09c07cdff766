// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path builds P_n: vertices idFn(0..n-1) and edges i-1 -> i.
// On a directed target the edges stay one-way.
//
// Errors: ErrTooFewVertices if n < 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(methodPath, g, n)
		if err != nil {
			return err
		}
		var i int
		for i = 1; i < n; i++ {
			if err = cfg.addArc(methodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n: edges i -> (i+1) mod n. On a directed target this is a
// directed cycle.
//
// Errors: ErrTooFewVertices if n < 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(methodCycle, g, n)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < n; i++ {
			if err = cfg.addArc(methodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
