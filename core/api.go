// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and input validation helpers.
// Policy:
//   - Getters do not validate their dart arguments: callers pass darts obtained
//     from this map (CreateDart, Beta, traversals). Entry points of attrib and
//     sew validate once with CheckDart/CheckDimension.
//   - Beta and Attribute on a disabled or out-of-range dimension return the
//     null handle rather than panicking.

package core

import "log/slog"

// Dimension returns the intrinsic dimension d of the map.
// Complexity: O(1).
func (m *Map) Dimension() int { return m.dim }

// DartCount returns the number of darts in the arena.
// Complexity: O(1).
func (m *Map) DartCount() int { return len(m.marks) }

// Logger returns the logger configured with WithLogger (never nil).
func (m *Map) Logger() *slog.Logger { return m.logger }

// ChecksEnabled reports whether WithChecks was set.
func (m *Map) ChecksEnabled() bool { return m.checks }

// Contains reports whether d indexes a dart of this map.
// Complexity: O(1).
func (m *Map) Contains(d Dart) bool {
	return d >= 0 && int(d) < len(m.marks)
}

// CheckDart returns nil if d is a dart of this map.
//
// Errors:
//   - ErrNullDart if d == NullDart.
//   - ErrDartNotFound if d is outside the arena.
func (m *Map) CheckDart(d Dart) error {
	if d == NullDart {
		return ErrNullDart
	}
	if !m.Contains(d) {
		return errorf(ErrDartNotFound, "dart %d (arena size %d)", d, len(m.marks))
	}
	return nil
}

// CheckDimension returns nil if 0 ≤ i ≤ Dimension().
func (m *Map) CheckDimension(i int) error {
	if i < 0 || i > m.dim {
		return errorf(ErrDimensionOutOfRange, "dimension %d not in [0,%d]", i, m.dim)
	}
	return nil
}

// CheckAttributeDimension returns nil if i-attributes are enabled.
//
// Errors:
//   - ErrDimensionOutOfRange if i is outside [0, Dimension()].
//   - ErrAttributeDisabled if no AttributeKind was registered for i.
func (m *Map) CheckAttributeDimension(i int) error {
	if err := m.CheckDimension(i); err != nil {
		return err
	}
	if m.stores[i] == nil {
		return errorf(ErrAttributeDisabled, "dimension %d", i)
	}
	return nil
}

// AttributeEnabled reports whether i-attributes are enabled.
func (m *Map) AttributeEnabled(i int) bool {
	return i >= 0 && i <= m.dim && m.stores[i] != nil
}

// EnabledDimensions returns the enabled attribute dimensions in ascending order.
// Complexity: O(dim).
func (m *Map) EnabledDimensions() []int {
	out := make([]int, 0, len(m.stores))
	for i, s := range m.stores {
		if s != nil {
			out = append(out, i)
		}
	}
	return out
}

// Kind returns the AttributeKind of dimension i and whether it is enabled.
func (m *Map) Kind(i int) (AttributeKind, bool) {
	if !m.AttributeEnabled(i) {
		return AttributeKind{}, false
	}
	return m.stores[i].kind, true
}

// Beta returns beta_i(d), or NullDart when d is i-free.
// Complexity: O(1).
func (m *Map) Beta(d Dart, i int) Dart {
	if d == NullDart || i < 0 || i > m.dim {
		return NullDart
	}
	return m.beta[m.slot(d, i)]
}

// IsFree reports whether beta_i(d) is NullDart.
func (m *Map) IsFree(d Dart, i int) bool { return m.Beta(d, i) == NullDart }

// OtherExtremity returns a dart starting at the other end of the edge of d:
// the first non-free beta_i(d) for i = 2..d, else beta_1(d), else NullDart.
// Every beta_i with i ≥ 2 reverses orientation, and beta_1(d) starts where d
// ends, so any of them starts at the far vertex.
// Complexity: O(dim).
func (m *Map) OtherExtremity(d Dart) Dart {
	for i := 2; i <= m.dim; i++ {
		if o := m.Beta(d, i); o != NullDart {
			return o
		}
	}
	return m.Beta(d, 1)
}

// Attribute returns the i-attribute handle of d, or NullAttr when d has none
// or i-attributes are disabled.
// Complexity: O(1).
func (m *Map) Attribute(d Dart, i int) Attr {
	if d == NullDart || !m.AttributeEnabled(i) {
		return NullAttr
	}
	return m.attr[m.slot(d, i)]
}

// slot is the flat index of (d, i) in the beta and attr arenas.
func (m *Map) slot(d Dart, i int) int {
	return int(d)*(m.dim+1) + i
}
