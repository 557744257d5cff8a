package core

// Clone returns a deep copy of the map: betas, attribute arenas (free lists
// included) and configuration. Payloads are copied with AttributeKind.Clone
// when set, by assignment otherwise. Mark state is not copied: the clone starts
// with every mark free.
//
// Complexity: O(n·dim + number of attributes).
func (m *Map) Clone() *Map {
	clone := &Map{
		dim:         m.dim,
		beta:        append([]Dart(nil), m.beta...),
		attr:        append([]Attr(nil), m.attr...),
		marks:       make([]uint32, len(m.marks)),
		stores:      make([]*attrStore, len(m.stores)),
		logger:      m.logger,
		checks:      m.checks,
		autoReclaim: m.autoReclaim,
	}
	for i, s := range m.stores {
		if s == nil {
			continue
		}
		cs := &attrStore{
			kind: s.kind,
			recs: append([]attrRecord(nil), s.recs...),
			free: append([]Attr(nil), s.free...),
		}
		if s.kind.Clone != nil {
			for a := range cs.recs {
				if cs.recs[a].live {
					cs.recs[a].value = s.kind.Clone(cs.recs[a].value)
				}
			}
		}
		clone.stores[i] = cs
	}

	return clone
}

// Clear removes every dart and attribute while preserving configuration.
// Panics with ErrInvariant if a mark is still reserved.
// Complexity: O(dim).
func (m *Map) Clear() {
	if m.reserved != 0 {
		panic(errorf(ErrInvariant, "Clear with %d marks reserved", m.ReservedMarks()))
	}
	m.beta = nil
	m.attr = nil
	m.marks = nil
	m.mask = 0
	m.marked = [NbMarks]int{}
	for i, s := range m.stores {
		if s != nil {
			m.stores[i] = &attrStore{kind: s.kind}
		}
	}
}
