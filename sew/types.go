// Package sew: sentinel errors and the dart pairs of a sew orbit.

package sew

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cmap/core"
)

// Sentinel errors for sew operations.
var (
	// ErrNilMap is returned when a nil *core.Map is passed.
	ErrNilMap = errors.New("sew: map is nil")

	// ErrNotSewable is returned when two darts cannot be i-sewn.
	ErrNotSewable = errors.New("sew: darts are not sewable")

	// ErrAlreadyFree is returned when unsewing or unlinking a free beta.
	ErrAlreadyFree = errors.New("sew: beta is already free")
)

// pair is one link of a sew orbit: beta_dim(a) == b once sewn. For 0- and
// 1-sews the link is always stored as a beta_1 link.
type pair struct {
	a, b core.Dart
}

// linkDim returns the beta actually written for an i-sew.
func linkDim(i int) int {
	if i == 0 {
		return 1
	}
	return i
}

// orbitPairs walks the sew orbit of (d1, d2) for dimension i ≥ 1 and returns
// the dart pairs in breadth-first order. The two sides must have the same
// shape and must not share darts. Freeness is not checked here.
func orbitPairs(m *core.Map, i int, d1, d2 core.Dart) ([]pair, error) {
	type item struct {
		x, y core.Dart
		flip bool
	}
	partner := map[core.Dart]core.Dart{d1: d2, d2: d1}
	if d1 == d2 && i != 1 {
		return nil, fmt.Errorf("%w: %d-sew of dart %d onto itself", ErrNotSewable, i, d1)
	}

	var out []pair
	queue := []item{{x: d1, y: d2}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.flip {
			out = append(out, pair{cur.y, cur.x})
		} else {
			out = append(out, pair{cur.x, cur.y})
		}

		var err error
		step := func(nx, ny core.Dart, flip bool) {
			if err != nil {
				return
			}
			if (nx == core.NullDart) != (ny == core.NullDart) {
				err = fmt.Errorf("%w: orbits of %d and %d differ", ErrNotSewable, d1, d2)
				return
			}
			if nx == core.NullDart {
				return
			}
			if p, ok := partner[nx]; ok {
				if p != ny {
					err = fmt.Errorf("%w: dart %d paired twice", ErrNotSewable, nx)
				}
				return
			}
			if _, ok := partner[ny]; ok || (nx == ny && i != 1) {
				err = fmt.Errorf("%w: dart %d paired twice", ErrNotSewable, ny)
				return
			}
			partner[nx], partner[ny] = ny, nx
			queue = append(queue, item{x: nx, y: ny, flip: flip})
		}

		if i == 1 {
			for k := 3; k <= m.Dimension(); k++ {
				step(m.Beta(cur.x, k), m.Beta(cur.y, k), !cur.flip)
			}
		} else {
			if i >= 3 {
				step(m.Beta(cur.x, 1), m.Beta(cur.y, 0), cur.flip)
				step(m.Beta(cur.x, 0), m.Beta(cur.y, 1), cur.flip)
			}
			for k := 2; k <= m.Dimension(); k++ {
				if k <= i-2 || k >= i+2 {
					step(m.Beta(cur.x, k), m.Beta(cur.y, k), cur.flip)
				}
			}
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkMap validates the map, the dimension and the darts.
func checkMap(method string, m *core.Map, i int, darts ...core.Dart) error {
	if m == nil {
		return fmt.Errorf("%s: %w", method, ErrNilMap)
	}
	if err := m.CheckDimension(i); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	for _, d := range darts {
		if err := m.CheckDart(d); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	return nil
}
