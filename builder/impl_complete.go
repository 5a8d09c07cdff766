// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

const (
	methodComplete   = "Complete"
	methodGrid       = "Grid"
	minCompleteNodes = 1
	minGridDim       = 1
)

// Complete builds K_n: every pair i < j is linked.
//
// Errors: ErrTooFewVertices if n < 1.
// Complexity: O(n^2).
func Complete(n int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := cfg.addVertices(methodComplete, g, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err = cfg.addLink(methodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// GridID is the vertex id Grid gives to cell (r, c): "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid builds a rows x cols 4-neighborhood lattice with GridID vertex ids.
// The id scheme option does not apply. Vertices are inserted row-major and
// each cell links right, then down.
//
// Errors: ErrTooFewVertices if rows < 1 or cols < 1.
// Complexity: O(rows*cols).
func Grid(rows, cols int) Constructor {
	return func(g Target, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := cfg.addVertex(methodGrid, g, GridID(r, c)); err != nil {
					return err
				}
			}
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := cfg.addLink(methodGrid, g, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.addLink(methodGrid, g, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
