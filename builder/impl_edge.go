// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// impl_edge.go - implementation of Edge() constructor.
//
// Contract:
//   • The map dimension is ≥ 2 (else ErrUnsupportedDimension).
//   • Creates two darts d, d+1 with beta_2(d) = d+1; every other beta is free.
//   • Seeds attributes of the new darts (WithCellAttributes).
//
// Complexity:
//   • Time: O(dim).

package builder

import "github.com/katalvlaran/cmap/core"

// Edge returns a Constructor that adds one free edge made of two beta_2-linked darts.
func Edge() Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if err := validateDimension(MethodEdge, m, MinSewDimension); err != nil {
			return err
		}
		ds, err := newEdge(MethodEdge, m)
		if err != nil {
			return err
		}
		return seedAttributes(m, cfg, ds)
	}
}
