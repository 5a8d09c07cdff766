// SPDX-License-Identifier: MIT

package arena

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// ComparableHash returns a HashFunc over any comparable type, seeded with a
// fresh random maphash seed. Two calls return differently seeded functions.
func ComparableHash[T comparable]() HashFunc[T] {
	seed := maphash.MakeSeed()

	return func(v T) uint64 { return maphash.Comparable(seed, v) }
}

// StringHash hashes s with xxhash64. Unlike ComparableHash it is stable across
// arenas and processes, which keeps bucket layouts reproducible.
func StringHash(s string) uint64 { return xxhash.Sum64String(s) }

// BytesHash hashes b with xxhash64.
func BytesHash(b []byte) uint64 { return xxhash.Sum64(b) }
