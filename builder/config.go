// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng      = nil            (pure/deterministic unless seeded)
//   • valueFn  = DefaultValueFn (payload = per-dimension cell index)
//   • cellDims = none           (no attribute seeding)

package builder

import (
	"math/rand" // RNG for stochastic builders
	"sort"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Payload generator for seeded attributes.
	valueFn ValueFn
	// Dimensions receiving one attribute per cell, ascending and unique.
	cellDims []int
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts) + k log k) for k seeded dimensions.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		valueFn: DefaultValueFn,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	// Normalize seeded dimensions: sorted, without duplicates.
	sort.Ints(cfg.cellDims)
	uniq := cfg.cellDims[:0]
	for k, i := range cfg.cellDims {
		if k == 0 || i != cfg.cellDims[k-1] {
			uniq = append(uniq, i)
		}
	}
	cfg.cellDims = uniq

	return cfg
}
