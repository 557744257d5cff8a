// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// impl_random_soup.go - implementation of RandomSoup(n) constructor.
//
// Canonical model:
//   • Spend a budget of n darts on unconnected pieces. Each piece is, in maps
//     of dimension ≥ 2, a beta_2-linked two-dart edge with probability
//     1/SoupEdgeOneIn, otherwise a polygon of 1..MaxSoupPolygon darts
//     (truncated to the remaining budget).
//   • The soup is the raw material of the stress driver: every beta_i with
//     i ≥ 3 is free and every polygon is an open face.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewDarts).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Seeds attributes piece by piece (WithCellAttributes).
//
// Complexity:
//   • Time: O(n·dim).
//
// Determinism:
//   • Fixed draw order: piece kind, then polygon length; same seed ⇒ same soup.

package builder

import "github.com/katalvlaran/cmap/core"

// RandomSoup returns a Constructor that adds exactly n darts as random pieces.
func RandomSoup(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if err := validateMin(MethodRandomSoup, n, MinSoupDarts); err != nil {
			return err
		}
		if err := validateRand(MethodRandomSoup, cfg); err != nil {
			return err
		}

		edges := m.Dimension() >= MinSewDimension
		for left := n; left > 0; {
			var (
				ds  []core.Dart
				err error
			)
			if edges && left >= 2 && cfg.rng.Intn(SoupEdgeOneIn) == 0 {
				ds, err = newEdge(MethodRandomSoup, m)
			} else {
				size := 1 + cfg.rng.Intn(MaxSoupPolygon)
				if size > left {
					size = left
				}
				ds, err = newPolygon(MethodRandomSoup, m, size)
			}
			if err != nil {
				return err
			}
			if err = seedAttributes(m, cfg, ds); err != nil {
				return err
			}
			left -= len(ds)
		}

		return nil
	}
}
