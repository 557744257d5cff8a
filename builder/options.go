// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before map construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithValueFn overrides the payload generator of seeded attributes.
// Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}
	return func(c *builderConfig) {
		c.valueFn = fn
	}
}

// WithCellAttributes requests one attribute per i-cell for every listed
// dimension. Repeated options accumulate. Panics on a negative dimension or an
// empty list; whether the map enables the dimension is checked by BuildMap.
// Complexity: O(len(dims)).
func WithCellAttributes(dims ...int) BuilderOption {
	if len(dims) == 0 {
		panic("builder: WithCellAttributes()")
	}
	for _, i := range dims {
		if i < 0 {
			panic(fmt.Sprintf("builder: WithCellAttributes(%d)", i))
		}
	}
	own := append([]int(nil), dims...)
	return func(c *builderConfig) {
		c.cellDims = append(c.cellDims, own...)
	}
}
