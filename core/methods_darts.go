// SPDX-License-Identifier: MIT
//
// File: methods_darts.go
// Role: Dart creation and basic beta links (no attribute maintenance).
// Policy:
//   - "Basic" operations only edit beta slots. Keeping attributes consistent
//     is the job of the attrib and sew packages built on top of them.

package core

// CreateDart appends a free dart without attributes and returns it.
//
// Behavior highlights:
//   - Every beta is NullDart and every attribute handle is NullAttr.
//   - A mark that is currently negated logically marks the new dart, so its
//     marked counter is incremented to stay consistent with IsMarked.
//
// Complexity: O(dim) amortized.
func (m *Map) CreateDart() Dart {
	d := Dart(len(m.marks))
	for i := 0; i <= m.dim; i++ {
		m.beta = append(m.beta, NullDart)
		m.attr = append(m.attr, NullAttr)
	}
	m.marks = append(m.marks, 0)

	for k := 0; k < NbMarks; k++ {
		if m.mask&(1<<k) != 0 {
			m.marked[k]++
		}
	}

	return d
}

// CreateDarts appends n free darts and returns them in creation order.
// Complexity: O(n·dim).
func (m *Map) CreateDarts(n int) []Dart {
	out := make([]Dart, 0, n)
	for k := 0; k < n; k++ {
		out = append(out, m.CreateDart())
	}
	return out
}

// BasicLink sets beta_i(d1) = d2 and the matching inverse link:
//   - i == 0: beta_0(d1) = d2 and beta_1(d2) = d1;
//   - i == 1: beta_1(d1) = d2 and beta_0(d2) = d1;
//   - i ≥ 2:  beta_i(d1) = d2 and beta_i(d2) = d1.
//
// Errors:
//   - ErrNullDart / ErrDartNotFound / ErrDimensionOutOfRange on bad input.
//   - ErrNotFree if one of the two slots is already linked.
//
// Complexity: O(1).
func (m *Map) BasicLink(i int, d1, d2 Dart) error {
	if err := m.checkLinkOperands(i, d1, d2); err != nil {
		return err
	}
	inv := inverseIndex(i)
	if !m.IsFree(d1, i) || !m.IsFree(d2, inv) {
		return errorf(ErrNotFree, "link beta_%d(%d)=%d", i, d1, d2)
	}
	m.beta[m.slot(d1, i)] = d2
	m.beta[m.slot(d2, inv)] = d1

	return nil
}

// BasicUnlink frees beta_i(d) and the matching inverse slot of its partner.
// It returns the former partner, or NullDart if d was already i-free.
//
// Errors:
//   - ErrNullDart / ErrDartNotFound / ErrDimensionOutOfRange on bad input.
//
// Complexity: O(1).
func (m *Map) BasicUnlink(i int, d Dart) (Dart, error) {
	if err := m.CheckDart(d); err != nil {
		return NullDart, err
	}
	if err := m.CheckDimension(i); err != nil {
		return NullDart, err
	}
	other := m.Beta(d, i)
	if other == NullDart {
		return NullDart, nil
	}
	m.beta[m.slot(d, i)] = NullDart
	m.beta[m.slot(other, inverseIndex(i))] = NullDart

	return other, nil
}

// checkLinkOperands validates both darts and the dimension of a link.
func (m *Map) checkLinkOperands(i int, d1, d2 Dart) error {
	if err := m.CheckDart(d1); err != nil {
		return err
	}
	if err := m.CheckDart(d2); err != nil {
		return err
	}
	return m.CheckDimension(i)
}

// inverseIndex returns the beta index holding the inverse of beta_i:
// 1 for 0, 0 for 1, i itself for the involutions.
func inverseIndex(i int) int {
	switch i {
	case 0:
		return 1
	case 1:
		return 0
	default:
		return i
	}
}
