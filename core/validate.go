// Purpose:
//  - Provide one place that checks every structural invariant of a Map.
//  - Used by tests and by the stress driver after each random operation.
//
// Determinism & Performance:
//  - Checks scan darts in index order and report the first violation found.
//  - ValidateAttributes uses its own visited slice, not a mark, so it can run
//    while marks are reserved and never disturbs the mark pool.
//
// Note:
//  - Validate runs ValidateBetas → ValidateAttributes → ValidateMarks.

package core

import "fmt"

// validatorErrorf tags a violation with the validator name and wraps ErrInvalidMap.
func validatorErrorf(tag, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", tag, ErrInvalidMap, fmt.Sprintf(format, args...))
}

// Validate checks betas, attributes and marks (see the individual validators).
//
// Errors: the first violation, wrapping ErrInvalidMap.
// Complexity: O(n·dim²).
func Validate(m *Map) error {
	if err := ValidateBetas(m); err != nil {
		return err
	}
	if err := ValidateAttributes(m); err != nil {
		return err
	}
	return ValidateMarks(m)
}

// ValidateBetas checks the combinatorial map axioms on every dart:
//   - beta_0 and beta_1 are inverse partial permutations;
//   - beta_i (i ≥ 2) are partial involutions without fixed points;
//   - beta_1∘beta_j (j ≥ 3) and beta_i∘beta_j (2 ≤ i, i+2 ≤ j) are involutions
//     wherever both betas are defined.
//
// Complexity: O(n·dim²).
func ValidateBetas(m *Map) error {
	n := Dart(m.DartCount())
	for d := Dart(0); d < n; d++ {
		if b := m.Beta(d, 1); b != NullDart && m.Beta(b, 0) != d {
			return validatorErrorf("ValidateBetas", "beta_0(beta_1(%d)) = %d", d, m.Beta(b, 0))
		}
		if b := m.Beta(d, 0); b != NullDart && m.Beta(b, 1) != d {
			return validatorErrorf("ValidateBetas", "beta_1(beta_0(%d)) = %d", d, m.Beta(b, 1))
		}
		for i := 2; i <= m.dim; i++ {
			b := m.Beta(d, i)
			if b == NullDart {
				continue
			}
			if b == d {
				return validatorErrorf("ValidateBetas", "beta_%d(%d) is a fixed point", i, d)
			}
			if m.Beta(b, i) != d {
				return validatorErrorf("ValidateBetas", "beta_%d is not an involution at %d", i, d)
			}
		}
		for j := 3; j <= m.dim; j++ {
			x, y := m.Beta(d, 1), m.Beta(d, j)
			if x == NullDart || y == NullDart {
				continue
			}
			if m.Beta(m.Beta(x, j), 1) != y {
				return validatorErrorf("ValidateBetas", "beta_1∘beta_%d is not an involution at %d", j, d)
			}
		}
		for i := 2; i <= m.dim; i++ {
			for j := i + 2; j <= m.dim; j++ {
				x, y := m.Beta(d, i), m.Beta(d, j)
				if x == NullDart || y == NullDart {
					continue
				}
				if m.Beta(x, j) != m.Beta(y, i) {
					return validatorErrorf("ValidateBetas", "beta_%d∘beta_%d is not an involution at %d", i, j, d)
				}
			}
		}
	}
	return nil
}

// ValidateAttributes checks, for every enabled dimension i:
//   - every i-cell is uniform: all its darts hold the same handle (or all none);
//   - every handle held by a dart is live;
//   - holder counts match the number of darts holding each attribute;
//   - an attribute with holders has a representative dart that holds it.
//
// Complexity: O(n·dim²) per dimension.
func ValidateAttributes(m *Map) error {
	n := m.DartCount()
	for _, i := range m.EnabledDimensions() {
		s := m.stores[i]
		counts := make([]int, len(s.recs))
		seen := make([]bool, n)
		for d := Dart(0); int(d) < n; d++ {
			a := m.Attribute(d, i)
			if a != NullAttr {
				if int(a) >= len(s.recs) || !s.recs[a].live {
					return validatorErrorf("ValidateAttributes", "dart %d holds dead %d-attribute %d", d, i, a)
				}
				counts[a]++
			}
			if seen[d] {
				continue
			}
			var bad Dart = NullDart
			m.walkCell(d, i, seen, func(x Dart) {
				if bad == NullDart && m.Attribute(x, i) != a {
					bad = x
				}
			})
			if bad != NullDart {
				return validatorErrorf("ValidateAttributes",
					"%d-cell of dart %d is split: dart %d holds %d, dart %d holds %d",
					i, d, d, a, bad, m.Attribute(bad, i))
			}
		}
		for a := range s.recs {
			r := s.recs[a]
			if !r.live {
				continue
			}
			if r.holders != counts[a] {
				return validatorErrorf("ValidateAttributes", "%d-attribute %d records %d holders, found %d",
					i, a, r.holders, counts[a])
			}
			if r.holders > 0 && (r.dart == NullDart || m.Attribute(r.dart, i) != Attr(a)) {
				return validatorErrorf("ValidateAttributes", "%d-attribute %d has representative %d not holding it",
					i, a, r.dart)
			}
		}
	}
	return nil
}

// ValidateMarks checks that no mark is reserved and that no dart stores a
// mark bit, i.e. every pass released its marks cleanly.
// Complexity: O(n).
func ValidateMarks(m *Map) error {
	if m.ReservedMarks() != 0 {
		return validatorErrorf("ValidateMarks", "%d marks still reserved", m.ReservedMarks())
	}
	if !m.MarkBitsClean() {
		return validatorErrorf("ValidateMarks", "dirty mark bits")
	}
	return nil
}

// walkCell visits every dart of the i-cell of d not yet flagged in seen,
// flagging them. It mirrors MarkCell with a slice instead of a mark.
func (m *Map) walkCell(d Dart, i int, seen []bool, visit func(Dart)) {
	if seen[d] {
		return
	}
	seen[d] = true
	queue := []Dart{d}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		visit(cur)
		m.forEachCellNeighbor(cur, i, func(x Dart) {
			if !seen[x] {
				seen[x] = true
				queue = append(queue, x)
			}
		})
	}
}
