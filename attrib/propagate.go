package attrib

import "github.com/katalvlaran/cmap/core"

// Propagate updates the i-attributes of dh1 and dh2, which are about to be
// linked so that beta_j(dh1) == dh2. Only single darts are repointed; other
// darts of their cells are left as they are.
//
// Behavior by case:
//   - generic: equal handles (both null included) → no-op; a null side takes
//     the other side's attribute; both non-null → dh2 takes dh1's.
//   - vertex/beta_0: dh1 takes the attribute of other(dh2) if dh1 has none.
//   - vertex/beta_1: dh2 takes the attribute of other(dh1) when that is non-null.
//   - vertex/beta_j≥2: both rules above, in that order.
//   - same-dimension, edge/beta_0, void: no-op.
//
// Errors: ErrNilMap, core.ErrDimensionOutOfRange, core.ErrNullDart,
// core.ErrDartNotFound.
// Complexity: O(dim).
func Propagate(m *core.Map, i, j int, dh1, dh2 core.Dart) error {
	if err := checkOperands("Propagate", m, i, j, dh1, dh2); err != nil {
		return err
	}
	propagate(m, i, Classify(m, i, j), dh1, dh2)
	return nil
}

// PropagateAll runs Propagate for every enabled attribute dimension.
func PropagateAll(m *core.Map, j int, dh1, dh2 core.Dart) error {
	if err := checkOperands("PropagateAll", m, 0, j, dh1, dh2); err != nil {
		return err
	}
	for _, i := range m.EnabledDimensions() {
		propagate(m, i, Classify(m, i, j), dh1, dh2)
	}
	return nil
}

func propagate(m *core.Map, i int, c Case, dh1, dh2 core.Dart) {
	switch c {
	case CaseGeneric:
		a1, a2 := m.Attribute(dh1, i), m.Attribute(dh2, i)
		if a1 == a2 {
			return
		}
		if a1 == core.NullAttr {
			m.SetDartAttribute(dh1, i, a2)
		} else {
			m.SetDartAttribute(dh2, i, a1)
		}
	case CaseVertexBeta0:
		fillFromExtremity(m, dh1, m.OtherExtremity(dh2))
	case CaseVertexBeta1:
		adoptFromExtremity(m, m.OtherExtremity(dh1), dh2)
	case CaseVertexHigh:
		fillFromExtremity(m, dh1, m.OtherExtremity(dh2))
		adoptFromExtremity(m, m.OtherExtremity(dh1), dh2)
	}
}

// fillFromExtremity gives d the 0-attribute of od when d has none.
func fillFromExtremity(m *core.Map, d, od core.Dart) {
	if od == core.NullDart || m.Attribute(d, 0) != core.NullAttr {
		return
	}
	if a := m.Attribute(od, 0); a != core.NullAttr {
		m.SetDartAttribute(d, 0, a)
	}
}

// adoptFromExtremity gives d the 0-attribute of od when od has one.
func adoptFromExtremity(m *core.Map, od, d core.Dart) {
	if od == core.NullDart {
		return
	}
	if a := m.Attribute(od, 0); a != core.NullAttr {
		m.SetDartAttribute(d, 0, a)
	}
}
