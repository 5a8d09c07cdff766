// SPDX-License-Identifier: MIT

package arena

import (
	"fmt"
	"math"
)

// Grow builds a larger arena holding every element of old and returns it with
// the old->new handle translation.
//
// Implementation:
//   - Stage 1: scale Capacity by GrowthFactor (at least +1 bucket).
//   - Stage 2: reinsert every element in bucket-then-slot order, recording the
//     new handle of each old one.
//   - Stage 3: if a bucket overflows during reinsertion, discard the attempt and
//     scale again; give up with ErrGrowFailed after maxGrowAttempts.
//
// The old arena is left untouched and its handles remain valid against it.
// Handles stored elsewhere must be rewritten with the returned map before they
// are used against the new arena.
//
// Grow is the only way an arena gains capacity; Insert never calls it.
//
// Complexity: O(n) per attempt.
func Grow[T any](old *Arena[T]) (*Arena[T], map[Handle]Handle, error) {
	cfg := old.cfg
	capacity := len(old.buckets)

	var attempt int
	for attempt = 0; attempt < maxGrowAttempts; attempt++ {
		capacity = nextCapacity(capacity, cfg.GrowthFactor)
		cfg.Capacity = capacity

		next := build(cfg, old.hash, old.equal)
		if remap, ok := next.absorb(old); ok {
			return next, remap, nil
		}
	}

	return nil, nil, fmt.Errorf("%w: %d elements did not fit after %d attempts (last capacity %d)",
		ErrGrowFailed, old.size, maxGrowAttempts, capacity)
}

// absorb reinserts every element of old into a; it reports false on the first rejection.
func (a *Arena[T]) absorb(old *Arena[T]) (map[Handle]Handle, bool) {
	remap := make(map[Handle]Handle, old.size)
	var t, s int
	for t = range old.buckets {
		for s = range old.buckets[t] {
			h, err := a.Insert(old.buckets[t][s])
			if err != nil {
				return nil, false
			}
			remap[old.handle(t, s)] = h
		}
	}

	return remap, true
}

// nextCapacity scales c by factor, always adding at least one bucket.
func nextCapacity(c int, factor float64) int {
	n := int(math.Ceil(float64(c) * factor))
	if n <= c {
		n = c + 1
	}

	return n
}
