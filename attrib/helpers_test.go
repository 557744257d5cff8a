// Package attrib_test contains fixtures shared by the attribute tests.

package attrib_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/core"
)

// Dimensions and betas used across attrib tests.
const (
	Dim0 = 0
	Dim1 = 1
	Dim2 = 2
)

// hookCall records one OnMerge or OnSplit invocation.
type hookCall struct {
	Dim  int
	A, B core.Attr
}

// recorder collects hook invocations of every kind it produced.
type recorder struct {
	merges []hookCall
	splits []hookCall
}

// kind returns an AttributeKind that records its hooks and sums int payloads
// on merge.
func (r *recorder) kind(name string) core.AttributeKind {
	return core.AttributeKind{
		Name: name,
		OnMerge: func(m *core.Map, i int, survivor, absorbed core.Attr) {
			r.merges = append(r.merges, hookCall{i, survivor, absorbed})
			sum := m.AttributeValue(i, survivor).(int) + m.AttributeValue(i, absorbed).(int)
			_ = m.SetAttributeValue(i, survivor, sum)
		},
		OnSplit: func(_ *core.Map, i int, original, created core.Attr) {
			r.splits = append(r.splits, hookCall{i, original, created})
		},
	}
}

// newMap builds a 2-map with the given attribute dimensions enabled, all
// recording into r, with postcondition checks on.
func newMap(t testing.TB, r *recorder, dims ...int) *core.Map {
	t.Helper()
	opts := []core.MapOption{core.WithChecks()}
	for _, i := range dims {
		opts = append(opts, core.WithAttribute(i, r.kind("k")))
	}
	m, err := core.NewMap(opts...)
	require.NoError(t, err)
	return m
}

// polygon creates n darts closed into a beta_1 cycle.
func polygon(t testing.TB, m *core.Map, n int) []core.Dart {
	t.Helper()
	ds := m.CreateDarts(n)
	for k := range ds {
		require.NoError(t, m.BasicLink(Dim1, ds[k], ds[(k+1)%n]))
	}
	return ds
}

// edge creates a two-dart edge: x and y = beta_2(x) run in opposite directions.
func edge(t testing.TB, m *core.Map) (x, y core.Dart) {
	t.Helper()
	x, y = m.CreateDart(), m.CreateDart()
	require.NoError(t, m.BasicLink(Dim2, x, y))
	return x, y
}

// give creates an i-attribute with payload v over the i-cell of d.
func give(t testing.TB, m *core.Map, d core.Dart, i int, v int) core.Attr {
	t.Helper()
	a, err := m.CreateAttribute(i, v)
	require.NoError(t, err)
	require.NoError(t, m.SetCellAttribute(d, i, a))
	return a
}

// giveAll gives every i-cell its own attribute.
func giveAll(t testing.TB, m *core.Map, i int) {
	t.Helper()
	for d := core.Dart(0); int(d) < m.DartCount(); d++ {
		if m.Attribute(d, i) == core.NullAttr {
			give(t, m, d, i, int(d))
		}
	}
}
