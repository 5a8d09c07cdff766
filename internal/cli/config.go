// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/arenagraph/arena"
	"github.com/katalvlaran/arenagraph/growth"
)

// ErrConfig wraps every configuration file problem.
var ErrConfig = errors.New("graphwalk: bad config")

// Config is the graphwalk configuration file:
//
//	max_growth_rounds = 8
//
//	[vertices]
//	capacity = 64
//	load_factor = 1.0
//
//	[edges]
//	capacity = 128
//	max_bucket_size = 16
//
// Omitted keys keep their defaults.
type Config struct {
	Vertices        arena.Config `toml:"vertices"`
	Edges           arena.Config `toml:"edges"`
	MaxGrowthRounds int          `toml:"max_growth_rounds"`
}

// DefaultConfig returns the arena defaults and growth.DefaultMaxRounds.
func DefaultConfig() Config {
	return Config{
		Vertices:        arena.DefaultConfig(),
		Edges:           arena.DefaultConfig(),
		MaxGrowthRounds: growth.DefaultMaxRounds,
	}
}

// Validate reports the first invalid section.
func (c Config) Validate() error {
	if err := c.Vertices.Validate(); err != nil {
		return fmt.Errorf("%w: [vertices]: %w", ErrConfig, err)
	}
	if err := c.Edges.Validate(); err != nil {
		return fmt.Errorf("%w: [edges]: %w", ErrConfig, err)
	}
	if c.MaxGrowthRounds < 1 {
		return fmt.Errorf("%w: max_growth_rounds must be >= 1 (got %d)", ErrConfig, c.MaxGrowthRounds)
	}

	return nil
}

// loadConfig decodes path over DefaultConfig. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrConfig, path, undecoded[0].String())
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
