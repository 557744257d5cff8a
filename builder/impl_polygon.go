// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// impl_polygon.go - implementation of Polygon(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewDarts).
//   • Creates n darts in ascending index order and links beta_1(d_k) = d_(k+1 mod n).
//   • Seeds attributes of the new darts (WithCellAttributes).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n·dim) darts + O(n) links.
//   • Space: O(n) for the dart slice.
//
// Determinism:
//   • Dart order and link order are by increasing k.

package builder

import "github.com/katalvlaran/cmap/core"

// Polygon returns a Constructor that builds a closed face of n darts.
func Polygon(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if err := validateMin(MethodPolygon, n, MinPolygonDarts); err != nil {
			return err
		}
		ds, err := newPolygon(MethodPolygon, m, n)
		if err != nil {
			return err
		}
		return seedAttributes(m, cfg, ds)
	}
}
