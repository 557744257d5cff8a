// Package attrib: cell-level grouping for sew.

package attrib

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/cmap/core"
)

// Group unifies the i-attributes of the i-cells of adart1 and adart2, which
// are about to be linked so that beta_j(adart1) == adart2.
//
// Survivor rule for a compared pair (x, y) with attributes a1, a2:
//   - a1 == a2: nothing to do;
//   - a1 null: the cell of x is repointed to a2;
//   - both non-null: OnMerge(a1, a2) runs, then the cell of y is repointed to a1;
//   - a2 null: the cell of y is repointed to a1.
//
// The compared pairs follow the dispatch case: (adart1, adart2) for generic,
// (adart1, other(adart2)) for vertex/beta_0, (other(adart1), adart2) for
// vertex/beta_1 and both of these for vertex/beta_j≥2. A pair with a null
// extremity is skipped. The absorbed attribute ends with no holders and is
// left to the map's orphan policy.
//
// Errors: ErrNilMap, core dart and dimension sentinels, core.ErrNoFreeMark.
// Complexity: O(|cell|) per repointed cell.
func Group(m *core.Map, i, j int, adart1, adart2 core.Dart) error {
	if err := checkOperands("Group", m, i, j, adart1, adart2); err != nil {
		return err
	}
	return group(m, i, j, adart1, adart2)
}

// GroupAll runs Group for every enabled attribute dimension.
func GroupAll(m *core.Map, j int, adart1, adart2 core.Dart) error {
	if err := checkOperands("GroupAll", m, 0, j, adart1, adart2); err != nil {
		return err
	}
	for _, i := range m.EnabledDimensions() {
		if err := group(m, i, j, adart1, adart2); err != nil {
			return err
		}
	}
	return nil
}

func group(m *core.Map, i, j int, adart1, adart2 core.Dart) error {
	var err error
	switch Classify(m, i, j) {
	case CaseGeneric:
		err = groupPair(m, i, j, adart1, adart2)
	case CaseVertexBeta0:
		err = groupPair(m, i, j, adart1, m.OtherExtremity(adart2))
	case CaseVertexBeta1:
		err = groupPair(m, i, j, m.OtherExtremity(adart1), adart2)
	case CaseVertexHigh:
		if err = groupPair(m, i, j, adart1, m.OtherExtremity(adart2)); err == nil {
			err = groupPair(m, i, j, m.OtherExtremity(adart1), adart2)
		}
	}
	if err != nil {
		return fmt.Errorf("Group(%d,%d): %w", i, j, err)
	}
	return nil
}

// groupPair applies the survivor rule to the i-cells of x and y.
func groupPair(m *core.Map, i, j int, x, y core.Dart) error {
	if x == core.NullDart || y == core.NullDart {
		return nil
	}
	a1, a2 := m.Attribute(x, i), m.Attribute(y, i)
	if a1 == a2 {
		return nil
	}
	if a1 == core.NullAttr {
		return m.SetCellAttribute(x, i, a2)
	}
	if a2 != core.NullAttr {
		callMerge(m, i, j, a1, a2)
	}
	return m.SetCellAttribute(y, i, a1)
}

// Unify makes the i-cell of d hold a single i-attribute. The survivor is the
// attribute of d, or the first non-null one met when d holds none. Every other
// attribute met in the cell is merged into it with OnMerge, then the whole
// cell is repointed. A cell holding no attribute is left alone.
// Sew runs it over the joined cells once the orbit is linked.
//
// Errors: ErrNilMap, core dart and dimension sentinels, core.ErrNoFreeMark.
// Complexity: O(|cell|).
func Unify(m *core.Map, i int, d core.Dart) (core.Attr, error) {
	if err := checkOperands("Unify", m, i, 0, d); err != nil {
		return core.NullAttr, err
	}
	if !m.AttributeEnabled(i) {
		return core.NullAttr, nil
	}
	return unify(m, i, NoExclusion(m), d)
}

// UnifyAll runs Unify on the cells of d for every enabled attribute
// dimension; j only tags the merge log lines.
func UnifyAll(m *core.Map, j int, d core.Dart) error {
	if err := checkOperands("UnifyAll", m, 0, j, d); err != nil {
		return err
	}
	for _, i := range m.EnabledDimensions() {
		if _, err := unify(m, i, j, d); err != nil {
			return err
		}
	}
	return nil
}

func unify(m *core.Map, i, j int, d core.Dart) (core.Attr, error) {
	survivor := m.Attribute(d, i)
	var absorbed []core.Attr
	holes := false
	err := m.ForEachDartOfCell(d, i, func(x core.Dart) {
		a := m.Attribute(x, i)
		switch {
		case a == survivor:
		case a == core.NullAttr:
			holes = true
		case survivor == core.NullAttr:
			survivor, holes = a, true
		case !slices.Contains(absorbed, a):
			absorbed = append(absorbed, a)
		}
	})
	if err != nil {
		return core.NullAttr, fmt.Errorf("Unify(%d): %w", i, err)
	}
	if survivor == core.NullAttr || (len(absorbed) == 0 && !holes) {
		return survivor, nil
	}
	for _, a := range absorbed {
		callMerge(m, i, j, survivor, a)
	}
	if err = m.SetCellAttribute(d, i, survivor); err != nil {
		return core.NullAttr, fmt.Errorf("Unify(%d): %w", i, err)
	}
	return survivor, nil
}
