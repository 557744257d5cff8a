// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMap(mopts, bopts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go; each one creates its own darts
//     and never links them to darts created by another constructor.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical maps.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// Hints:
//   - Compose several constructors in BuildMap to get a multi-component fixture.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSoup).
//   - WithCellAttributes(dims...) seeds one attribute per cell; the map must
//     have those dimensions enabled through core.WithAttribute.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// Constructor applies a deterministic map mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Seed attributes of their own darts through seedAttributes before any sew,
//     so the sews exercise attribute grouping.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(m *core.Map, cfg builderConfig) error

// BuildMap creates a new core.Map with map options mopts, resolves the builder
// configuration from bopts, and applies all constructors in order. Cells left
// without an attribute by the constructors receive one for every dimension
// named in WithCellAttributes.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; seeding is O(n·dim²) per dimension.
//
// Errors:
//   - core option errors from core.NewMap.
//   - ErrConstructFailed for a nil constructor.
//   - constructor errors wrapped as "BuildMap: %w"; branch with errors.Is
//     against builder sentinels (ErrTooFewDarts, ErrNeedRandSource, ...).
func BuildMap(mopts []core.MapOption, bopts []BuilderOption, cons ...Constructor) (*core.Map, error) {
	m, err := core.NewMap(mopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildMap: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for _, i := range cfg.cellDims {
		if err = m.CheckAttributeDimension(i); err != nil {
			return nil, fmt.Errorf("BuildMap: WithCellAttributes(%d): %w", i, err)
		}
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMap: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMap: %w", err)
		}
	}

	// Darts created by hand-rolled constructors may still lack attributes.
	if err = seedAttributes(m, cfg, allDarts(m)); err != nil {
		return nil, fmt.Errorf("BuildMap: %w", err)
	}

	return m, nil
}
