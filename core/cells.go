// File: cells.go
// Role: Orbit (cell) traversal, breadth-first, with mark-based visited sets.
//
// Cells of an n-map and the beta compositions that generate them:
//
//	0-cell (vertex):    beta_1∘beta_k, beta_k∘beta_0, beta_k∘beta_l   (2 ≤ k ≠ l ≤ n)
//	1-cell (edge):      beta_k                                         (2 ≤ k ≤ n)
//	i-cell (2 ≤ i ≤ n): beta_0, beta_1, beta_k                         (2 ≤ k ≤ n, k ≠ i)
//	(n+1)-cell:         every beta (connected component)
//
// Determinism:
//   - Neighbors are expanded in the fixed generator order above, so a traversal
//     from the same dart on the same map always yields the same sequence.

package core

// cellWalker holds the queue of one breadth-first cell traversal.
type cellWalker struct {
	m     *Map
	i     int
	queue []Dart
}

// MarkCell marks every dart of the i-cell of d that is reachable from d
// through unmarked darts, calling visit (if non-nil) once per newly marked
// dart in breadth-first order. Darts already marked are neither visited nor
// crossed, which lets several passes share one mark.
//
// Inputs:
//   - d: a dart of the map (NullDart is ignored).
//   - i: cell dimension in [0, Dimension()+1].
//   - mark: a reserved mark.
//
// Complexity: O(|cell|·dim²) for i = 0, O(|cell|·dim) otherwise.
func (m *Map) MarkCell(d Dart, i int, mark int, visit func(Dart)) {
	if d == NullDart || m.IsMarked(d, mark) {
		return
	}
	w := &cellWalker{m: m, i: i}
	m.Mark(d, mark)
	w.queue = append(w.queue, d)
	for len(w.queue) > 0 {
		cur := w.dequeue()
		if visit != nil {
			visit(cur)
		}
		m.forEachCellNeighbor(cur, i, func(n Dart) {
			if !m.IsMarked(n, mark) {
				m.Mark(n, mark)
				w.queue = append(w.queue, n)
			}
		})
	}
}

// UnmarkCell is the inverse of MarkCell: it unmarks every dart of the i-cell
// of d reachable through marked darts.
// Complexity: as MarkCell.
func (m *Map) UnmarkCell(d Dart, i int, mark int) {
	if d == NullDart || !m.IsMarked(d, mark) {
		return
	}
	w := &cellWalker{m: m, i: i}
	m.Unmark(d, mark)
	w.queue = append(w.queue, d)
	for len(w.queue) > 0 {
		cur := w.dequeue()
		m.forEachCellNeighbor(cur, i, func(n Dart) {
			if m.IsMarked(n, mark) {
				m.Unmark(n, mark)
				w.queue = append(w.queue, n)
			}
		})
	}
}

// ForEachDartOfCell calls visit once for every dart of the i-cell of d.
// It reserves a private mark for the traversal and releases it before
// returning. visit may change attributes but must not edit betas.
//
// Errors:
//   - ErrNoFreeMark if the mark pool is exhausted.
//
// Complexity: O(|cell|) traversals, twice (mark then unmark).
func (m *Map) ForEachDartOfCell(d Dart, i int, visit func(Dart)) error {
	return m.WithMark(func(mark int) error {
		var seen []Dart
		m.MarkCell(d, i, mark, func(x Dart) {
			seen = append(seen, x)
			visit(x)
		})
		for _, x := range seen {
			m.Unmark(x, mark)
		}
		return nil
	})
}

// CellDarts returns the darts of the i-cell of d in traversal order.
//
// Errors:
//   - ErrNoFreeMark if the mark pool is exhausted.
func (m *Map) CellDarts(d Dart, i int) ([]Dart, error) {
	var out []Dart
	err := m.ForEachDartOfCell(d, i, func(x Dart) { out = append(out, x) })
	return out, err
}

// BelongToSameCell reports whether d1 and d2 lie in the same i-cell.
//
// Errors:
//   - ErrNoFreeMark if the mark pool is exhausted.
//
// Complexity: O(|cell of d1|).
func (m *Map) BelongToSameCell(d1, d2 Dart, i int) (bool, error) {
	if d1 == d2 {
		return true, nil
	}
	found := false
	err := m.ForEachDartOfCell(d1, i, func(x Dart) {
		if x == d2 {
			found = true
		}
	})
	return found, err
}

// CellCount returns the number of i-cells of the map (i in [0, Dimension()+1]).
//
// Errors:
//   - ErrNoFreeMark if the mark pool is exhausted.
//
// Complexity: O(n) cell traversals.
func (m *Map) CellCount(i int) (int, error) {
	count := 0
	err := m.WithMark(func(mark int) error {
		n := Dart(len(m.marks))
		for d := Dart(0); d < n; d++ {
			if !m.IsMarked(d, mark) {
				count++
				m.MarkCell(d, i, mark, nil)
			}
		}
		for d := Dart(0); d < n; d++ {
			m.Unmark(d, mark)
		}
		return nil
	})
	return count, err
}

// dequeue pops the head of the queue.
func (w *cellWalker) dequeue() Dart {
	d := w.queue[0]
	w.queue = w.queue[1:]
	return d
}

// forEachCellNeighbor calls fn for every non-null dart adjacent to d in its
// i-cell, following the generator table in the file header.
func (m *Map) forEachCellNeighbor(d Dart, i int, fn func(Dart)) {
	emit := func(x Dart) {
		if x != NullDart {
			fn(x)
		}
	}
	switch {
	case i == 0:
		b0 := m.Beta(d, 0)
		for k := 2; k <= m.dim; k++ {
			bk := m.Beta(d, k)
			emit(m.Beta(bk, 1)) // beta_1∘beta_k
			emit(m.Beta(b0, k)) // beta_k∘beta_0
			for l := 2; l <= m.dim; l++ {
				if l != k {
					emit(m.Beta(m.Beta(d, l), k)) // beta_k∘beta_l
				}
			}
		}
	case i == 1:
		for k := 2; k <= m.dim; k++ {
			emit(m.Beta(d, k))
		}
	case i <= m.dim:
		emit(m.Beta(d, 0))
		emit(m.Beta(d, 1))
		for k := 2; k <= m.dim; k++ {
			if k != i {
				emit(m.Beta(d, k))
			}
		}
	default:
		for k := 0; k <= m.dim; k++ {
			emit(m.Beta(d, k))
		}
	}
}
