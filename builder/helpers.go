// Package builder provides internal helper functions used by Constructor
// implementations.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// newPolygon creates n darts closed into a beta_1 cycle d0 → d1 → ... → d0.
// Complexity: O(n·dim).
func newPolygon(method string, m *core.Map, n int) ([]core.Dart, error) {
	ds := m.CreateDarts(n)
	for k := range ds {
		if err := m.BasicLink(1, ds[k], ds[(k+1)%n]); err != nil {
			return nil, fmt.Errorf("%s: BasicLink(1, %d, %d): %w", method, ds[k], ds[(k+1)%n], err)
		}
	}
	return ds, nil
}

// newEdge creates two darts linked by beta_2.
// Complexity: O(dim).
func newEdge(method string, m *core.Map) ([]core.Dart, error) {
	ds := m.CreateDarts(2)
	if err := m.BasicLink(2, ds[0], ds[1]); err != nil {
		return nil, fmt.Errorf("%s: BasicLink(2, %d, %d): %w", method, ds[0], ds[1], err)
	}
	return ds, nil
}

// seedAttributes gives every cell touching darts, for every dimension of
// cfg.cellDims, a fresh attribute when it has none. Cells are visited in dart
// order; payloads come from cfg.valueFn with a per-dimension running index.
//
// Complexity: O(|darts| + Σ cell sizes) per dimension.
func seedAttributes(m *core.Map, cfg builderConfig, darts []core.Dart) error {
	for _, i := range cfg.cellDims {
		for _, d := range darts {
			if m.Attribute(d, i) != core.NullAttr {
				continue
			}
			a, err := m.CreateAttribute(i, cfg.valueFn(i, m.AttributeCount(i), cfg.rng))
			if err != nil {
				return fmt.Errorf("seedAttributes: CreateAttribute(%d): %w", i, err)
			}
			if err = m.SetCellAttribute(d, i, a); err != nil {
				return fmt.Errorf("seedAttributes: SetCellAttribute(%d, %d): %w", d, i, err)
			}
		}
	}
	return nil
}

// allDarts lists every dart of m in index order.
func allDarts(m *core.Map) []core.Dart {
	out := make([]core.Dart, m.DartCount())
	for k := range out {
		out[k] = core.Dart(k)
	}
	return out
}
