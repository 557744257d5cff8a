// SPDX-License-Identifier: MIT
// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error via builderErrorf
// when its precondition is violated.

package builder

import "github.com/katalvlaran/cmap/core"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: ErrTooFewDarts" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewDarts, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateDimension ensures that m provides beta_min.
// Complexity: O(1).
func validateDimension(method string, m *core.Map, min int) error {
	if m.Dimension() < min {
		return builderErrorf(method, ErrUnsupportedDimension, "needs dimension ≥ %d, map has %d", min, m.Dimension())
	}

	return nil
}

// validateRand ensures that a stochastic constructor received an RNG.
// Complexity: O(1).
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "rng is required")
	}

	return nil
}
