// Package sew: Sewable, Sew, Unsew, Link and Unlink.

package sew

import (
	"fmt"

	"github.com/katalvlaran/cmap/attrib"
	"github.com/katalvlaran/cmap/core"
)

// sewPairs returns the orbit pairs of an i-sew of d1 onto d2, with a 0-sew
// expressed as the 1-sew of d2 onto d1.
func sewPairs(m *core.Map, i int, d1, d2 core.Dart) ([]pair, error) {
	if i == 0 {
		return orbitPairs(m, 1, d2, d1)
	}
	return orbitPairs(m, i, d1, d2)
}

// Sewable reports whether d1 can be i-sewn onto d2: both orbits have the same
// shape, do not overlap, and every involved beta is free.
// Complexity: O(|orbit|·dim).
func Sewable(m *core.Map, i int, d1, d2 core.Dart) bool {
	if checkMap("Sewable", m, i, d1, d2) != nil {
		return false
	}
	pairs, err := sewPairs(m, i, d1, d2)
	return err == nil && pairsFree(m, i, pairs) == nil
}

// pairsFree checks that every link of the orbit can be written.
func pairsFree(m *core.Map, i int, pairs []pair) error {
	for _, p := range pairs {
		if i <= 1 {
			if !m.IsFree(p.a, 1) || !m.IsFree(p.b, 0) {
				return fmt.Errorf("%w: beta_1(%d) or beta_0(%d) is linked", ErrNotSewable, p.a, p.b)
			}
			continue
		}
		if !m.IsFree(p.a, i) || !m.IsFree(p.b, i) {
			return fmt.Errorf("%w: beta_%d of %d or %d is linked", ErrNotSewable, i, p.a, p.b)
		}
	}
	return nil
}

// Sew i-sews d1 onto d2: after the call beta_i(d1) == d2 and every pair of the
// sew orbit is linked. Attributes of all enabled dimensions are grouped pair
// by pair before any link is written, so vertex grouping sees the darts'
// extremities as they were. Once linked, each joined cell is unified so it
// ends with a single attribute even when several pairs touched it.
//
// Errors:
//   - ErrNilMap, core dart and dimension sentinels on bad input.
//   - ErrNotSewable when Sewable would return false; the map is unchanged.
//   - errors from attrib.GroupAll and attrib.UnifyAll (mark exhaustion).
func Sew(m *core.Map, i int, d1, d2 core.Dart) error {
	if err := checkMap("Sew", m, i, d1, d2); err != nil {
		return err
	}
	pairs, err := sewPairs(m, i, d1, d2)
	if err == nil {
		err = pairsFree(m, i, pairs)
	}
	if err != nil {
		return fmt.Errorf("Sew(%d, %d, %d): %w", i, d1, d2, err)
	}

	for _, p := range pairs {
		x, y := p.a, p.b
		if i == 0 {
			// beta_0(b) == a once linked.
			x, y = p.b, p.a
		}
		if err = attrib.GroupAll(m, i, x, y); err != nil {
			return fmt.Errorf("Sew(%d, %d, %d): %w", i, d1, d2, err)
		}
	}
	for _, p := range pairs {
		if err = m.BasicLink(linkDim(i), p.a, p.b); err != nil {
			return fmt.Errorf("Sew(%d, %d, %d): %w", i, d1, d2, err)
		}
	}
	// Every cell joined by a link contains one of the pair's darts.
	for _, p := range pairs {
		for _, d := range [...]core.Dart{p.a, p.b} {
			if err = attrib.UnifyAll(m, i, d); err != nil {
				return fmt.Errorf("Sew(%d, %d, %d): %w", i, d1, d2, err)
			}
		}
	}
	m.Logger().Debug("sew: sewn", "dim", i, "d1", d1, "d2", d2, "pairs", len(pairs))

	return nil
}

// Unsew i-unsews d: every pair of the sew orbit of (d, beta_i(d)) is unlinked,
// cells of dimension ≥ 1 that came apart across a pair are degrouped, and
// split detection runs over all modified darts for every enabled dimension.
//
// For i ∈ {0, 1} the darts whose beta_0 changed form the first list of the
// split pass and those whose beta_1 changed the second.
//
// Errors:
//   - ErrNilMap, core dart and dimension sentinels on bad input.
//   - ErrAlreadyFree if beta_i(d) is free.
//   - core.ErrInvalidMap if the orbit is not consistently linked.
//   - core.ErrNoFreeMark and attrib errors from the attribute passes.
func Unsew(m *core.Map, i int, d core.Dart) error {
	if err := checkMap("Unsew", m, i, d); err != nil {
		return err
	}
	other := m.Beta(d, i)
	if other == core.NullDart {
		return fmt.Errorf("Unsew(%d, %d): %w", i, d, ErrAlreadyFree)
	}
	var pairs []pair
	var err error
	if i == 0 {
		pairs, err = orbitPairs(m, 1, other, d)
	} else {
		pairs, err = orbitPairs(m, i, d, other)
	}
	if err != nil {
		return fmt.Errorf("Unsew(%d, %d): %w: %v", i, d, core.ErrInvalidMap, err)
	}
	ld := linkDim(i)
	for _, p := range pairs {
		if m.Beta(p.a, ld) != p.b {
			return fmt.Errorf("Unsew(%d, %d): %w: beta_%d(%d) != %d", i, d, core.ErrInvalidMap, ld, p.a, p.b)
		}
	}

	return m.WithMark(func(mark int) error {
		defer func() {
			for _, p := range pairs {
				m.Unmark(p.a, mark)
				m.Unmark(p.b, mark)
			}
		}()

		var beta0, beta1, modified []core.Dart
		for _, p := range pairs {
			if _, err := m.BasicUnlink(ld, p.a); err != nil {
				return fmt.Errorf("Unsew(%d, %d): %w", i, d, err)
			}
			m.Mark(p.a, mark)
			m.Mark(p.b, mark)
			beta1 = append(beta1, p.a)
			beta0 = append(beta0, p.b)
			modified = append(modified, p.a, p.b)
		}

		for _, p := range pairs {
			if _, err := attrib.DegroupAll(m, i, p.a, p.b); err != nil {
				return fmt.Errorf("Unsew(%d, %d): %w", i, d, err)
			}
		}

		opts := []attrib.SplitOption{attrib.WithCallerMark(mark)}
		if i <= 1 {
			modified = beta0
			opts = append(opts, attrib.WithSecondary(beta1))
		}
		reports, err := attrib.DetectSplitsAll(m, i, modified, opts...)
		if err != nil {
			return fmt.Errorf("Unsew(%d, %d): %w", i, d, err)
		}

		splits := 0
		for _, r := range reports {
			splits += r.Splits()
		}
		m.Logger().Debug("sew: unsewn", "dim", i, "dart", d, "pairs", len(pairs), "splits", splits)
		return nil
	})
}

// Link writes the single link beta_i(d1) = d2 (and its inverse), propagating
// attributes dart by dart with attrib.PropagateAll. It does not walk the sew
// orbit, so it is meant for building maps incrementally.
//
// Errors: ErrNilMap, core dart and dimension sentinels, core.ErrNotFree.
func Link(m *core.Map, i int, d1, d2 core.Dart) error {
	if err := checkMap("Link", m, i, d1, d2); err != nil {
		return err
	}
	inv := i
	switch i {
	case 0:
		inv = 1
	case 1:
		inv = 0
	}
	if !m.IsFree(d1, i) || !m.IsFree(d2, inv) {
		return fmt.Errorf("Link(%d, %d, %d): %w", i, d1, d2, core.ErrNotFree)
	}
	if err := attrib.PropagateAll(m, i, d1, d2); err != nil {
		return fmt.Errorf("Link(%d, %d, %d): %w", i, d1, d2, err)
	}
	return m.BasicLink(i, d1, d2)
}

// Unlink frees beta_i(d) and its inverse without touching attributes and
// returns the former partner.
//
// Errors: ErrNilMap, core dart and dimension sentinels, ErrAlreadyFree.
func Unlink(m *core.Map, i int, d core.Dart) (core.Dart, error) {
	if err := checkMap("Unlink", m, i, d); err != nil {
		return core.NullDart, err
	}
	if m.IsFree(d, i) {
		return core.NullDart, fmt.Errorf("Unlink(%d, %d): %w", i, d, ErrAlreadyFree)
	}
	return m.BasicUnlink(i, d)
}
