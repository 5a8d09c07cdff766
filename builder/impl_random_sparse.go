// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse builds an Erdős–Rényi G(n, p) graph: each candidate pair gets
// an edge with probability p. Undirected targets consider pairs i < j;
// directed targets consider every ordered pair i != j. Self-loops are never
// generated.
//
// p == 0 and p == 1 are deterministic and need no rng; any other p requires
// WithSeed or WithRand. Candidates are visited i ascending, then j ascending,
// so a fixed seed yields a fixed graph.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(n^2).
func RandomSparse(n int, p float64) Constructor {
	return func(g Target, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := cfg.addVertices(methodRandomSparse, g, n)
		if err != nil {
			return err
		}
		directed := g.Directed()
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		var i, j int
		for i = 0; i < n; i++ {
			j = i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err = cfg.addArc(methodRandomSparse, g, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
