// SPDX-License-Identifier: MIT

// Package arena provides an addressed hash table: a separately chained table
// that hands out stable, copyable Handles instead of pointers.
//
// Why handles?
//
//	A graph wants vertices that point at edges and edges that point back at
//	vertices. Storing pointers into growing slices breaks as soon as a slice
//	reallocates; storing handles does not. A Handle is just (table, slot) and is
//	resolved through the Arena that issued it.
//
// Layout:
//
//	buckets[0]: [ a, d ]
//	buckets[1]: [ ]
//	buckets[2]: [ b, c, e ]       Handle{table: 2, slot: 1} -> c
//
// Contract:
//
//   - Insert(v) hashes v, appends it to bucket hash(v) mod capacity and returns
//     the Handle of the new slot. Elements never move and are never removed.
//   - Insert never grows the table. When the load Len()/Capacity already
//     exceeds LoadFactor, it returns ErrCapacityExceeded; when the target
//     bucket already holds MaxBucketSize elements, it returns ErrBucketFull. Both
//     match ErrRejected and leave the arena untouched.
//   - Get/Contains scan one bucket; the bucket cap bounds the scan.
//   - At(h) dereferences a handle. Handles from another arena are a programmer
//     error. Build with -tags arenadebug to stamp every handle with the random
//     signature of its arena and panic with ErrInvalidHandle on mismatch.
//   - Grow(a) builds a larger arena and returns an old->new Handle map. Anything
//     that stored handles into a must be rewritten with that map.
//
// Defaults:
//
//	Capacity 32, MaxBucketSize 32, LoadFactor 1.5, GrowthFactor 1.5.
//
// Complexity:
//
//   - Insert, Get, Contains: O(MaxBucketSize) worst case, O(1) expected.
//   - At: O(1).
//   - Grow: O(n).
//
// The arena is not safe for concurrent mutation; readers may share it while no
// writer is active.
package arena
