// SPDX-License-Identifier: MIT
//
// File: methods_attributes.go
// Role: Attribute arenas: creation, copy-construction, dart assignment,
// payload access and orphan reclamation.
//
// Ownership:
//   - Darts hold attribute handles; an attribute holds one representative
//     dart. Both are indices, so there is no ownership cycle.
//   - holders counts the darts pointing at an attribute. When it reaches zero
//     the attribute is an orphan: its representative is cleared. Orphans are
//     released only by ReclaimOrphans or, with WithAutoReclaim, immediately.

package core

// CreateAttribute allocates a new i-attribute carrying value. The attribute
// has no dart until one is assigned.
//
// Errors:
//   - ErrDimensionOutOfRange / ErrAttributeDisabled for a bad dimension.
//
// Complexity: O(1) amortized.
func (m *Map) CreateAttribute(i int, value any) (Attr, error) {
	if err := m.CheckAttributeDimension(i); err != nil {
		return NullAttr, err
	}
	s := m.stores[i]
	rec := attrRecord{dart: NullDart, value: value, live: true}
	if n := len(s.free); n > 0 {
		a := s.free[n-1]
		s.free = s.free[:n-1]
		s.recs[a] = rec
		return a, nil
	}
	s.recs = append(s.recs, rec)

	return Attr(len(s.recs) - 1), nil
}

// CopyAttribute creates a new i-attribute whose payload is a copy of the
// payload of a (AttributeKind.Clone, or plain assignment without it).
// The copy has no dart and no holders.
//
// Errors:
//   - ErrDimensionOutOfRange / ErrAttributeDisabled for a bad dimension.
//   - ErrAttrNotFound if a is not live.
func (m *Map) CopyAttribute(i int, a Attr) (Attr, error) {
	if err := m.checkAttr(i, a); err != nil {
		return NullAttr, err
	}
	s := m.stores[i]
	v := s.recs[a].value
	if s.kind.Clone != nil {
		v = s.kind.Clone(v)
	}
	return m.CreateAttribute(i, v)
}

// SetDartAttribute points the i-attribute of the single dart d to a (which may
// be NullAttr). Other darts of the cell are left untouched.
//
// Behavior highlights:
//   - The previous attribute loses one holder; if d was its representative the
//     representative is cleared; at zero holders it becomes an orphan.
//   - a gains one holder and takes d as representative if it had none.
//
// Complexity: O(1).
func (m *Map) SetDartAttribute(d Dart, i int, a Attr) {
	s := m.stores[i]
	if s == nil {
		return
	}
	k := m.slot(d, i)
	old := m.attr[k]
	if old == a {
		if a != NullAttr && s.recs[a].dart == NullDart {
			s.recs[a].dart = d
		}
		return
	}
	if old != NullAttr {
		r := &s.recs[old]
		r.holders--
		if r.dart == d {
			r.dart = NullDart
		}
		if r.holders == 0 {
			m.orphan(i, old)
		}
	}
	m.attr[k] = a
	if a != NullAttr {
		r := &s.recs[a]
		r.holders++
		if r.dart == NullDart {
			r.dart = d
		}
	}
}

// SetCellAttribute points every dart of the i-cell of d to a and makes d the
// representative of a. This is the whole-cell repoint used when cells are
// grouped or split; it traverses the cell once.
//
// Errors:
//   - ErrDimensionOutOfRange / ErrAttributeDisabled for a bad dimension.
//   - ErrNoFreeMark if the traversal cannot reserve a mark.
//
// Complexity: O(|cell|).
func (m *Map) SetCellAttribute(d Dart, i int, a Attr) error {
	if err := m.CheckAttributeDimension(i); err != nil {
		return err
	}
	if a != NullAttr {
		m.stores[i].recs[a].dart = d
	}
	return m.ForEachDartOfCell(d, i, func(x Dart) {
		m.SetDartAttribute(x, i, a)
	})
}

// AttributeDart returns the representative dart of the i-attribute a.
func (m *Map) AttributeDart(i int, a Attr) Dart {
	if m.checkAttr(i, a) != nil {
		return NullDart
	}
	return m.stores[i].recs[a].dart
}

// SetAttributeDart re-roots a on dart d. d should hold a.
func (m *Map) SetAttributeDart(i int, a Attr, d Dart) {
	if m.checkAttr(i, a) != nil {
		return
	}
	m.stores[i].recs[a].dart = d
}

// AttributeValue returns the payload of the i-attribute a (nil if not live).
func (m *Map) AttributeValue(i int, a Attr) any {
	if m.checkAttr(i, a) != nil {
		return nil
	}
	return m.stores[i].recs[a].value
}

// SetAttributeValue replaces the payload of the i-attribute a.
//
// Errors:
//   - ErrDimensionOutOfRange / ErrAttributeDisabled / ErrAttrNotFound.
func (m *Map) SetAttributeValue(i int, a Attr, v any) error {
	if err := m.checkAttr(i, a); err != nil {
		return err
	}
	m.stores[i].recs[a].value = v
	return nil
}

// Holders returns the number of darts pointing at the i-attribute a.
func (m *Map) Holders(i int, a Attr) int {
	if m.checkAttr(i, a) != nil {
		return 0
	}
	return m.stores[i].recs[a].holders
}

// IsAttributeLive reports whether a is a live handle of dimension i.
func (m *Map) IsAttributeLive(i int, a Attr) bool {
	return m.checkAttr(i, a) == nil
}

// AttributeCount returns the number of live i-attributes (orphans included).
func (m *Map) AttributeCount(i int) int {
	if !m.AttributeEnabled(i) {
		return 0
	}
	s := m.stores[i]
	return len(s.recs) - len(s.free)
}

// Attributes returns the live i-attribute handles in ascending order.
func (m *Map) Attributes(i int) []Attr {
	if !m.AttributeEnabled(i) {
		return nil
	}
	s := m.stores[i]
	out := make([]Attr, 0, len(s.recs)-len(s.free))
	for a := range s.recs {
		if s.recs[a].live {
			out = append(out, Attr(a))
		}
	}
	return out
}

// ReclaimOrphans releases every live i-attribute without holders and returns
// how many were released. Released handles may be reused by CreateAttribute.
// Complexity: O(number of i-attributes).
func (m *Map) ReclaimOrphans(i int) int {
	if !m.AttributeEnabled(i) {
		return 0
	}
	s := m.stores[i]
	n := 0
	for a := range s.recs {
		if s.recs[a].live && s.recs[a].holders == 0 {
			m.release(i, Attr(a))
			n++
		}
	}
	return n
}

// orphan handles an attribute that just lost its last holder.
func (m *Map) orphan(i int, a Attr) {
	m.stores[i].recs[a].dart = NullDart
	if m.autoReclaim {
		m.release(i, a)
	}
}

// release returns a to the free list of dimension i.
func (m *Map) release(i int, a Attr) {
	s := m.stores[i]
	s.recs[a] = attrRecord{dart: NullDart}
	s.free = append(s.free, a)
}

// checkAttr validates an attribute handle of dimension i.
func (m *Map) checkAttr(i int, a Attr) error {
	if err := m.CheckAttributeDimension(i); err != nil {
		return err
	}
	s := m.stores[i]
	if a < 0 || int(a) >= len(s.recs) || !s.recs[a].live {
		return errorf(ErrAttrNotFound, "%d-attribute %d", i, a)
	}
	return nil
}
