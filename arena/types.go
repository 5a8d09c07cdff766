// SPDX-License-Identifier: MIT

package arena

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for arena operations.
var (
	// ErrRejected is matched by every recoverable Insert rejection.
	// Callers that see it are expected to Grow and retry.
	ErrRejected = errors.New("arena: insert rejected")

	// ErrCapacityExceeded indicates the load Len()/Capacity already exceeds LoadFactor.
	ErrCapacityExceeded = fmt.Errorf("%w: capacity exceeded", ErrRejected)

	// ErrBucketFull indicates the target bucket already holds MaxBucketSize elements.
	ErrBucketFull = fmt.Errorf("%w: bucket full", ErrRejected)

	// ErrGrowFailed indicates Grow could not rehash every element within its attempt budget.
	ErrGrowFailed = errors.New("arena: grow failed")

	// ErrInvalidHandle is the panic value used when a handle does not belong to the arena.
	// It is never returned as an error.
	ErrInvalidHandle = errors.New("arena: invalid handle")

	// ErrBadConfig indicates a Config that fails Validate.
	ErrBadConfig = errors.New("arena: bad config")
)

// Defaults inherited by every arena unless overridden by an Option.
const (
	DefaultCapacity      = 32
	DefaultMaxBucketSize = 32
	DefaultLoadFactor    = 1.5
	DefaultGrowthFactor  = 1.5

	// defaultBucketCapacity is the initial slice capacity of a bucket on first insert.
	defaultBucketCapacity = 4

	// maxGrowAttempts bounds how many capacities Grow tries before giving up.
	maxGrowAttempts = 8
)

// Handle addresses one element of an Arena: the bucket index in the table and
// the slot index inside that bucket.
//
// Handles are comparable and may be used as map keys. The zero Handle is a
// valid position (0,0); lookups therefore report presence with a separate bool.
type Handle struct {
	table int
	slot  int
	sig   signature
}

// Table returns the bucket index.
func (h Handle) Table() int { return h.table }

// Slot returns the position inside the bucket.
func (h Handle) Slot() int { return h.slot }

// String renders the handle as "(table,slot)".
func (h Handle) String() string { return fmt.Sprintf("(%d,%d)", h.table, h.slot) }

// Config holds the tunables of an Arena. The toml tags let command-line tools
// load it from a configuration file.
type Config struct {
	// Capacity is the number of buckets.
	Capacity int `toml:"capacity"`

	// MaxBucketSize caps the number of elements chained in one bucket.
	MaxBucketSize int `toml:"max_bucket_size"`

	// LoadFactor is the load Len()/Capacity above which Insert rejects.
	LoadFactor float64 `toml:"load_factor"`

	// GrowthFactor scales Capacity on every Grow; must be > 1.
	GrowthFactor float64 `toml:"growth_factor"`
}

// DefaultConfig returns the configuration used by New when no Option is given.
func DefaultConfig() Config {
	return Config{
		Capacity:      DefaultCapacity,
		MaxBucketSize: DefaultMaxBucketSize,
		LoadFactor:    DefaultLoadFactor,
		GrowthFactor:  DefaultGrowthFactor,
	}
}

// Validate reports the first invalid field wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be >= 1 (got %d)", ErrBadConfig, c.Capacity)
	case c.MaxBucketSize < 1:
		return fmt.Errorf("%w: max_bucket_size must be >= 1 (got %d)", ErrBadConfig, c.MaxBucketSize)
	case !(c.LoadFactor > 0) || math.IsInf(c.LoadFactor, 0):
		return fmt.Errorf("%w: load_factor must be a positive number (got %v)", ErrBadConfig, c.LoadFactor)
	case !(c.GrowthFactor > 1) || math.IsInf(c.GrowthFactor, 0):
		return fmt.Errorf("%w: growth_factor must be > 1 (got %v)", ErrBadConfig, c.GrowthFactor)
	}

	return nil
}

// Limit returns the maximum number of elements an arena with this config accepts.
// Insert checks the load before adding, so the element that first pushes
// Len()/Capacity past LoadFactor is still accepted: floor(LoadFactor*Capacity)+1.
func (c Config) Limit() int {
	return int(math.Floor(c.LoadFactor*float64(c.Capacity))) + 1
}

// Option adjusts a Config before an Arena is built. Out-of-range values are
// ignored and the previous value is kept.
type Option func(*Config)

// WithCapacity sets the number of buckets (n >= 1).
func WithCapacity(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.Capacity = n
		}
	}
}

// WithMaxBucketSize sets the per-bucket element cap (n >= 1).
func WithMaxBucketSize(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.MaxBucketSize = n
		}
	}
}

// WithLoadFactor sets the load factor (f > 0).
func WithLoadFactor(f float64) Option {
	return func(c *Config) {
		if f > 0 && !math.IsInf(f, 0) {
			c.LoadFactor = f
		}
	}
}

// WithGrowthFactor sets the capacity multiplier used by Grow (f > 1).
func WithGrowthFactor(f float64) Option {
	return func(c *Config) {
		if f > 1 && !math.IsInf(f, 0) {
			c.GrowthFactor = f
		}
	}
}

// WithConfig applies every valid field of cfg; zero fields keep their current value.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		WithCapacity(cfg.Capacity)(c)
		WithMaxBucketSize(cfg.MaxBucketSize)(c)
		WithLoadFactor(cfg.LoadFactor)(c)
		WithGrowthFactor(cfg.GrowthFactor)(c)
	}
}

// CapacityFor returns the smallest bucket count whose limit holds n elements
// under loadFactor. Non-positive inputs fall back to the defaults.
func CapacityFor(n int, loadFactor float64) int {
	if !(loadFactor > 0) || math.IsInf(loadFactor, 0) {
		loadFactor = DefaultLoadFactor
	}
	if n < 1 {
		return 1
	}
	capacity := int(math.Ceil(float64(n) / loadFactor))
	if capacity < 1 {
		capacity = 1
	}
	// float rounding can land one off in either direction
	for (Config{Capacity: capacity, LoadFactor: loadFactor}).Limit() < n {
		capacity++
	}
	for capacity > 1 && (Config{Capacity: capacity - 1, LoadFactor: loadFactor}).Limit() >= n {
		capacity--
	}

	return capacity
}
