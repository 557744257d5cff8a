// SPDX-License-Identifier: MIT
// Package: cmap/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols quads in row-major order; quad q owns darts
//     [bottom, right, top, left] linked as a beta_1 cycle (counter-clockwise).
//   • Attributes are seeded per quad BEFORE sewing, so every sew groups them.
//   • Neighbours are glued with sew.Sew(2, ...): first every right/left pair
//     (row-major), then every top/bottom pair (row-major).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewDarts).
//   • Map dimension ≥ 2 (else ErrUnsupportedDimension).
//   • A refused sew surfaces as ErrConstructFailed wrapping the sew error.
//
// Complexity:
//   • Time: O(rows·cols·dim) darts + O(rows·cols) sews.
//   • Space: O(rows·cols) for the dart table.
//
// Result (one component): (rows+1)(cols+1) vertices,
// rows(cols+1) + cols(rows+1) edges, rows·cols faces.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
	"github.com/katalvlaran/cmap/sew"
)

// Quad side indices.
const (
	quadBottom = iota
	quadRight
	quadTop
	quadLeft
	quadSides
)

// Grid returns a Constructor that builds a rows×cols quad mesh.
func Grid(rows, cols int) Constructor {
	return func(m *core.Map, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		if err := validateDimension(MethodGrid, m, MinSewDimension); err != nil {
			return err
		}

		quads := make([][]core.Dart, 0, rows*cols)
		for q := 0; q < rows*cols; q++ {
			ds, err := newPolygon(MethodGrid, m, quadSides)
			if err != nil {
				return err
			}
			if err = seedAttributes(m, cfg, ds); err != nil {
				return err
			}
			quads = append(quads, ds)
		}
		at := func(r, c int) []core.Dart { return quads[r*cols+c] }

		glue := func(d1, d2 core.Dart) error {
			if err := sew.Sew(m, 2, d1, d2); err != nil {
				return fmt.Errorf("%s: Sew(2, %d, %d): %w: %w", MethodGrid, d1, d2, ErrConstructFailed, err)
			}
			return nil
		}
		for r := 0; r < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if err := glue(at(r, c)[quadRight], at(r, c+1)[quadLeft]); err != nil {
					return err
				}
			}
		}
		for r := 0; r+1 < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := glue(at(r, c)[quadTop], at(r+1, c)[quadBottom]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
