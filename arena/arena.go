// SPDX-License-Identifier: MIT

package arena

import (
	"iter"
)

// HashFunc maps an element to its bucket hash.
type HashFunc[T any] func(v T) uint64

// EqualFunc reports whether two elements are the same entry.
// It must agree with the HashFunc: equal elements hash equally.
type EqualFunc[T any] func(a, b T) bool

// Arena is a separately chained hash table addressed by Handle.
//
// The zero value is not usable; build one with New or NewComparable.
type Arena[T any] struct {
	cfg     Config
	size    int
	buckets [][]T
	hash    HashFunc[T]
	equal   EqualFunc[T]
	sig     signature
}

// New builds an empty arena using hash and equal for element identity.
//
// Complexity: O(Capacity).
func New[T any](hash HashFunc[T], equal EqualFunc[T], opts ...Option) *Arena[T] {
	cfg := DefaultConfig()
	var opt Option
	for _, opt = range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return build(cfg, hash, equal)
}

// NewComparable builds an arena for comparable elements, hashing with a
// per-arena maphash seed and comparing with ==.
func NewComparable[T comparable](opts ...Option) *Arena[T] {
	return New(ComparableHash[T](), func(a, b T) bool { return a == b }, opts...)
}

// build allocates the bucket table; buckets themselves are allocated lazily.
func build[T any](cfg Config, hash HashFunc[T], equal EqualFunc[T]) *Arena[T] {
	return &Arena[T]{
		cfg:     cfg,
		buckets: make([][]T, cfg.Capacity),
		hash:    hash,
		equal:   equal,
		sig:     newSignature(),
	}
}

// bucketOf returns the table index for v.
func (a *Arena[T]) bucketOf(v T) int {
	return int(a.hash(v) % uint64(len(a.buckets)))
}

// handle stamps a (table, slot) pair with this arena's signature.
func (a *Arena[T]) handle(table, slot int) Handle {
	return Handle{table: table, slot: slot, sig: a.sig}
}

// Insert appends v to its bucket and returns the new element's Handle.
//
// Insert does not check for an equal element already present; callers that
// need set semantics call Contains first.
//
// Errors (no mutation on error):
//   - ErrCapacityExceeded: Len()/Cap() already exceeds LoadFactor, i.e. Len() == Limit().
//   - ErrBucketFull: the target bucket holds MaxBucketSize elements.
//
// Complexity: O(1) amortized.
func (a *Arena[T]) Insert(v T) (Handle, error) {
	if float64(a.size) > a.cfg.LoadFactor*float64(len(a.buckets)) {
		return Handle{}, ErrCapacityExceeded
	}
	t := a.bucketOf(v)
	bucket := a.buckets[t]
	if len(bucket) >= a.cfg.MaxBucketSize {
		return Handle{}, ErrBucketFull
	}
	if bucket == nil {
		bucket = make([]T, 0, min(defaultBucketCapacity, a.cfg.MaxBucketSize))
	}
	a.buckets[t] = append(bucket, v)
	a.size++

	return a.handle(t, len(bucket)), nil
}

// Get returns the handle of the element equal to q.
//
// Complexity: O(bucket length).
func (a *Arena[T]) Get(q T) (Handle, bool) {
	t := a.bucketOf(q)
	bucket := a.buckets[t]
	var i int
	for i = range bucket {
		if a.equal(bucket[i], q) {
			return a.handle(t, i), true
		}
	}

	return Handle{}, false
}

// Contains reports whether an element equal to q is stored.
func (a *Arena[T]) Contains(q T) bool {
	_, ok := a.Get(q)

	return ok
}

// At returns a pointer to the element addressed by h.
//
// The pointer is valid until the next Insert into the same bucket; do not
// retain it. Passing a handle issued by another arena is a programmer error:
// under the arenadebug build tag it panics with ErrInvalidHandle, otherwise it
// panics on an out-of-range index or silently addresses a foreign slot.
func (a *Arena[T]) At(h Handle) *T {
	a.check(h)

	return &a.buckets[h.table][h.slot]
}

// Valid reports whether h addresses a live slot of this arena. It never panics.
func (a *Arena[T]) Valid(h Handle) bool {
	if !a.signed(h) {
		return false
	}
	if h.table < 0 || h.table >= len(a.buckets) {
		return false
	}

	return h.slot >= 0 && h.slot < len(a.buckets[h.table])
}

// Len returns the number of stored elements.
func (a *Arena[T]) Len() int { return a.size }

// Cap returns the number of buckets.
func (a *Arena[T]) Cap() int { return len(a.buckets) }

// Limit returns the element count at which Insert starts rejecting.
func (a *Arena[T]) Limit() int { return a.cfg.Limit() }

// Config returns the arena's configuration.
func (a *Arena[T]) Config() Config { return a.cfg }

// All yields every (Handle, element) pair in bucket-then-slot order.
// The order is unrelated to insertion order and changes after Grow.
// The arena must not be mutated while the sequence is being consumed.
func (a *Arena[T]) All() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		var t, s int
		for t = range a.buckets {
			for s = range a.buckets[t] {
				if !yield(a.handle(t, s), a.buckets[t][s]) {
					return
				}
			}
		}
	}
}

// Handles yields every handle in bucket-then-slot order.
func (a *Arena[T]) Handles() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		var t, s int
		for t = range a.buckets {
			for s = range a.buckets[t] {
				if !yield(a.handle(t, s)) {
					return
				}
			}
		}
	}
}

// Drain empties the arena and yields its former contents in bucket-then-slot
// order. The arena is emptied as soon as iteration starts, so elements left
// unconsumed when the loop breaks are dropped. Handles issued before Drain
// become invalid; the arena keeps its configuration and accepts new inserts.
func (a *Arena[T]) Drain() iter.Seq2[Handle, T] {
	return func(yield func(Handle, T) bool) {
		buckets, sig := a.buckets, a.sig
		a.buckets = make([][]T, len(buckets))
		a.size = 0
		a.sig = newSignature()

		var t, s int
		for t = range buckets {
			for s = range buckets[t] {
				if !yield(Handle{table: t, slot: s, sig: sig}, buckets[t][s]) {
					return
				}
			}
		}
	}
}
