// Package attrib: cell-level degrouping for unsew.

package attrib

import (
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// Degroup separates the i-attribute shared by adart1 and adart2 after the
// beta_j link between them was removed and their i-cells came apart.
//
// Steps:
//  1. No-op if adart1 has no i-attribute a1, or if adart2 already holds a
//     different non-null attribute (a repeated call changes nothing).
//  2. adart1 and adart2 must lie in different i-cells (ErrSameCell).
//  3. a1 is re-rooted on adart1, a copy a2 of a1 is created and written over
//     the whole i-cell of adart2, then OnSplit(a1, a2) runs.
//
// Returns a2, or core.NullAttr when nothing was split. Vertex cases compare
// adart1 and adart2 directly. i == j (including 0, 0), edge/beta_0 and void
// are no-ops.
//
// Errors: ErrNilMap, ErrSameCell, core dart and dimension sentinels,
// core.ErrNoFreeMark.
// Complexity: O(|cell of adart1| + |cell of adart2|).
func Degroup(m *core.Map, i, j int, adart1, adart2 core.Dart) (core.Attr, error) {
	if err := checkOperands("Degroup", m, i, j, adart1, adart2); err != nil {
		return core.NullAttr, err
	}
	if i == j || Classify(m, i, j).IsNoop() {
		return core.NullAttr, nil
	}

	a1 := m.Attribute(adart1, i)
	if a1 == core.NullAttr {
		return core.NullAttr, nil
	}
	if a2 := m.Attribute(adart2, i); a2 != core.NullAttr && a2 != a1 {
		return core.NullAttr, nil
	}

	same, err := m.BelongToSameCell(adart1, adart2, i)
	if err != nil {
		return core.NullAttr, fmt.Errorf("Degroup(%d,%d): %w", i, j, err)
	}
	if same {
		return core.NullAttr, fmt.Errorf("Degroup(%d,%d): darts %d and %d: %w", i, j, adart1, adart2, ErrSameCell)
	}

	m.SetAttributeDart(i, a1, adart1)
	a2, err := m.CopyAttribute(i, a1)
	if err != nil {
		return core.NullAttr, fmt.Errorf("Degroup(%d,%d): %w", i, j, err)
	}
	if err = m.SetCellAttribute(adart2, i, a2); err != nil {
		return core.NullAttr, fmt.Errorf("Degroup(%d,%d): %w", i, j, err)
	}
	callSplit(m, i, j, a1, a2)

	return a2, nil
}

// DegroupAll runs Degroup for every enabled dimension i ≥ 1 in which adart1
// and adart2 no longer share an i-cell. Dimensions where they still do are
// skipped: the unlink did not separate those cells. Vertex attributes are
// left to DetectSplits, since the two darts of one link never start at the
// same vertex.
// Returns the created attribute per dimension (core.NullAttr where none).
func DegroupAll(m *core.Map, j int, adart1, adart2 core.Dart) (map[int]core.Attr, error) {
	if err := checkOperands("DegroupAll", m, 0, j, adart1, adart2); err != nil {
		return nil, err
	}
	out := make(map[int]core.Attr)
	for _, i := range m.EnabledDimensions() {
		if i == 0 || i == j || Classify(m, i, j).IsNoop() {
			continue
		}
		same, err := m.BelongToSameCell(adart1, adart2, i)
		if err != nil {
			return out, fmt.Errorf("DegroupAll: %w", err)
		}
		if same {
			continue
		}
		a, err := Degroup(m, i, j, adart1, adart2)
		if err != nil {
			return out, err
		}
		out[i] = a
	}
	return out, nil
}
