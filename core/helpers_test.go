// Package core_test contains fixtures shared by the core tests.
//
// Purpose:
//   - Build small maps by hand with BasicLink so core is tested without sew.
//   - Keep dart layouts documented next to the helper that creates them.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/core"
)

// Dimensions used across core tests.
const (
	Dim0 = 0
	Dim1 = 1
	Dim2 = 2
	Dim3 = 3
)

// plainKind is an attribute kind without hooks.
var plainKind = core.AttributeKind{Name: "plain"}

// newMap builds a map or fails the test.
func newMap(t testing.TB, opts ...core.MapOption) *core.Map {
	t.Helper()
	m, err := core.NewMap(opts...)
	require.NoError(t, err)
	return m
}

// polygon creates n darts closed into a beta_1 cycle: ds[k] → ds[k+1].
func polygon(t testing.TB, m *core.Map, n int) []core.Dart {
	t.Helper()
	ds := m.CreateDarts(n)
	for k := range ds {
		require.NoError(t, m.BasicLink(Dim1, ds[k], ds[(k+1)%n]))
	}
	return ds
}

// twoTriangles builds two triangles a and b with beta_2(a[0]) = b[0].
//
// Vertices: {a0, b1}, {b0, a1}, {a2}, {b2}. Edges: {a0, b0} plus four singles.
func twoTriangles(t testing.TB, m *core.Map) (a, b []core.Dart) {
	t.Helper()
	a = polygon(t, m, 3)
	b = polygon(t, m, 3)
	require.NoError(t, m.BasicLink(Dim2, a[0], b[0]))
	return a, b
}

// attachCells creates one attribute per i-cell, numbering payloads 0, 1, ...
// in dart order.
func attachCells(t testing.TB, m *core.Map, i int) {
	t.Helper()
	next := 0
	for d := core.Dart(0); int(d) < m.DartCount(); d++ {
		if m.Attribute(d, i) != core.NullAttr {
			continue
		}
		a, err := m.CreateAttribute(i, next)
		require.NoError(t, err)
		require.NoError(t, m.SetCellAttribute(d, i, a))
		next++
	}
}
