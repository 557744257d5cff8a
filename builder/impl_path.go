// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewDarts).
//   • Creates n darts and links beta_1(d_k) = d_(k+1) for k < n-1; the first
//     dart keeps a free beta_0 and the last a free beta_1.
//   • Seeds attributes of the new darts (WithCellAttributes).
//
// Complexity:
//   • Time: O(n·dim) darts + O(n) links.
//
// Determinism:
//   • Emit links from 0->1->2->...->(n-1) in stable order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// Path returns a Constructor that builds an open chain of n darts.
func Path(n int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathDarts); err != nil {
			return err
		}

		ds := m.CreateDarts(n)
		for k := 1; k < n; k++ {
			if err := m.BasicLink(1, ds[k-1], ds[k]); err != nil {
				return fmt.Errorf("%s: BasicLink(1, %d, %d): %w", MethodPath, ds[k-1], ds[k], err)
			}
		}

		return seedAttributes(m, cfg, ds)
	}
}
