// File: marks.go
// Role: Fixed pool of NbMarks boolean marks over all darts.
//
// Each dart stores one bit per mark. A per-mark mask bit inverts the meaning
// of the stored bits, which makes NegateMark O(1):
//
//	IsMarked(d, k) == storedBit(d, k) XOR maskBit(k)
//
// A mark may be freed only when its stored bits are all zero, i.e. when it is
// logically unmarked everywhere with the mask clear, or logically marked
// everywhere with the mask set. Passes reserve a mark, use it exclusively and
// free it before returning on every path.

package core

import "fmt"

// NewMark reserves a free mark and returns its index.
//
// Errors:
//   - ErrNoFreeMark when all NbMarks marks are reserved.
//
// Complexity: O(NbMarks).
func (m *Map) NewMark() (int, error) {
	for k := 0; k < NbMarks; k++ {
		bit := uint32(1) << k
		if m.reserved&bit == 0 {
			m.reserved |= bit
			m.mask &^= bit
			m.marked[k] = 0
			return k, nil
		}
	}
	return -1, ErrNoFreeMark
}

// FreeMark releases a reserved mark.
//
// Panics with an error wrapping ErrInvariant if the mark is not reserved or if
// darts still carry its stored bit: a leaked mark corrupts every later pass.
//
// Complexity: O(1).
func (m *Map) FreeMark(mark int) {
	m.mustBeReserved(mark)
	bit := uint32(1) << mark
	n := len(m.marks)
	clean := (m.mask&bit == 0 && m.marked[mark] == 0) || (m.mask&bit != 0 && m.marked[mark] == n)
	if !clean {
		panic(fmt.Errorf("%w: FreeMark(%d) with %d of %d darts still carrying the mark",
			ErrInvariant, mark, m.storedCount(mark), n))
	}
	m.reserved &^= bit
	m.mask &^= bit
	m.marked[mark] = 0
}

// WithMark reserves a mark, runs fn with it and frees it afterwards, including
// when fn returns an error. fn must leave the mark clean.
//
// Errors:
//   - ErrNoFreeMark if no mark is available; otherwise whatever fn returns.
func (m *Map) WithMark(fn func(mark int) error) error {
	mark, err := m.NewMark()
	if err != nil {
		return err
	}
	defer m.FreeMark(mark)

	return fn(mark)
}

// IsReserved reports whether mark is currently in use.
func (m *Map) IsReserved(mark int) bool {
	return mark >= 0 && mark < NbMarks && m.reserved&(uint32(1)<<mark) != 0
}

// ReservedMarks returns the number of marks currently in use.
func (m *Map) ReservedMarks() int {
	n := 0
	for k := 0; k < NbMarks; k++ {
		if m.reserved&(uint32(1)<<k) != 0 {
			n++
		}
	}
	return n
}

// IsMarked reports whether d is marked with mark.
// Complexity: O(1).
func (m *Map) IsMarked(d Dart, mark int) bool {
	bit := uint32(1) << mark
	return (m.marks[d]^m.mask)&bit != 0
}

// Mark marks d with mark (no-op if already marked).
// Complexity: O(1).
func (m *Map) Mark(d Dart, mark int) {
	if m.IsMarked(d, mark) {
		return
	}
	m.marks[d] ^= uint32(1) << mark
	m.marked[mark]++
}

// Unmark removes mark from d (no-op if not marked).
// Complexity: O(1).
func (m *Map) Unmark(d Dart, mark int) {
	if !m.IsMarked(d, mark) {
		return
	}
	m.marks[d] ^= uint32(1) << mark
	m.marked[mark]--
}

// NegateMark flips mark on every dart.
// Complexity: O(1).
func (m *Map) NegateMark(mark int) {
	m.mustBeReserved(mark)
	m.mask ^= uint32(1) << mark
	m.marked[mark] = len(m.marks) - m.marked[mark]
}

// MarkedCount returns the number of darts marked with mark.
func (m *Map) MarkedCount(mark int) int { return m.marked[mark] }

// IsWholeMapMarked reports whether every dart is marked with mark.
func (m *Map) IsWholeMapMarked(mark int) bool { return m.marked[mark] == len(m.marks) }

// IsWholeMapUnmarked reports whether no dart is marked with mark.
func (m *Map) IsWholeMapUnmarked(mark int) bool { return m.marked[mark] == 0 }

// MarkBitsClean reports whether no mark is reserved and no dart stores any mark
// bit. It holds between two operations of a well-behaved caller.
// Complexity: O(n).
func (m *Map) MarkBitsClean() bool {
	if m.reserved != 0 || m.mask != 0 {
		return false
	}
	for _, w := range m.marks {
		if w != 0 {
			return false
		}
	}
	return true
}

// storedCount counts darts whose stored bit for mark is set.
func (m *Map) storedCount(mark int) int {
	bit := uint32(1) << mark
	n := 0
	for _, w := range m.marks {
		if w&bit != 0 {
			n++
		}
	}
	return n
}

// mustBeReserved panics if mark is not a reserved mark index.
func (m *Map) mustBeReserved(mark int) {
	if !m.IsReserved(mark) {
		panic(fmt.Errorf("%w: mark %d is not reserved", ErrInvariant, mark))
	}
}
