// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context with builderErrorf, which keeps %w.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewDarts indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewDarts) { /* report invalid size */ }.
var ErrTooFewDarts = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Typical origin: RandomSoup without RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedDimension indicates that the map dimension is too small for
// the constructor (e.g. Edge and Grid need beta_2).
var ErrUnsupportedDimension = errors.New("builder: unsupported map dimension")

// ErrConstructFailed indicates that a construction step failed after
// validation (nil constructor, a sew refused by the map).
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect the wrapped cause */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the method context:
// "<Method>: <formatted message>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewDarts          : size checks first (n, rows, cols).
//    • ErrUnsupportedDimension : then map dimension.
//    • ErrNeedRandSource       : then RNG presence for stochastic builders.
//    • ErrConstructFailed      : only for failures after validation.
//
// 2) Testing guidance:
//    Use table tests asserting errors.Is(err, ErrX). Avoid matching error strings.
