// Package core_test verifies Map construction, dart creation and basic links.

package core_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/core"
)

// TestNewMap_Options checks defaults and option validation.
func TestNewMap_Options(t *testing.T) {
	m := newMap(t)
	assert.Equal(t, core.DefaultDimension, m.Dimension())
	assert.Empty(t, m.EnabledDimensions())
	assert.NotNil(t, m.Logger())
	assert.False(t, m.ChecksEnabled())

	m = newMap(t, core.WithDimension(Dim3), core.WithAttribute(Dim0, plainKind),
		core.WithAttribute(Dim3, plainKind), core.WithChecks())
	assert.Equal(t, Dim3, m.Dimension())
	assert.Equal(t, []int{Dim0, Dim3}, m.EnabledDimensions())
	assert.True(t, m.ChecksEnabled())
	kind, ok := m.Kind(Dim3)
	assert.True(t, ok)
	assert.Equal(t, "plain", kind.Name)
	_, ok = m.Kind(Dim1)
	assert.False(t, ok)

	cases := []struct {
		name string
		opts []core.MapOption
	}{
		{"dimension zero", []core.MapOption{core.WithDimension(0)}},
		{"dimension too large", []core.MapOption{core.WithDimension(core.MaxDimension + 1)}},
		{"negative attribute", []core.MapOption{core.WithAttribute(-1, plainKind)}},
		{"attribute above dimension", []core.MapOption{core.WithAttribute(Dim3, plainKind)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewMap(tc.opts...)
			require.ErrorIs(t, err, core.ErrOptionViolation)
		})
	}

	require.Panics(t, func() { core.WithLogger(nil) })
	m = newMap(t, core.WithLogger(slog.Default()))
	assert.Same(t, slog.Default(), m.Logger())
}

// TestMap_DartsAndLinks covers CreateDart, BasicLink, BasicUnlink and the
// input sentinels.
func TestMap_DartsAndLinks(t *testing.T) {
	m := newMap(t)
	a, b := m.CreateDart(), m.CreateDart()
	assert.Equal(t, 2, m.DartCount())
	for i := 0; i <= m.Dimension(); i++ {
		assert.True(t, m.IsFree(a, i))
	}

	require.NoError(t, m.BasicLink(Dim1, a, b))
	assert.Equal(t, b, m.Beta(a, Dim1))
	assert.Equal(t, a, m.Beta(b, Dim0))
	require.ErrorIs(t, m.BasicLink(Dim1, a, b), core.ErrNotFree)

	require.NoError(t, m.BasicLink(Dim2, a, b))
	assert.Equal(t, a, m.Beta(b, Dim2))
	assert.Equal(t, b, m.OtherExtremity(a), "beta_2 wins over beta_1")

	other, err := m.BasicUnlink(Dim2, b)
	require.NoError(t, err)
	assert.Equal(t, a, other)
	assert.True(t, m.IsFree(a, Dim2))
	assert.Equal(t, b, m.OtherExtremity(a), "falls back to beta_1")
	assert.Equal(t, core.NullDart, m.OtherExtremity(b))

	other, err = m.BasicUnlink(Dim2, b)
	require.NoError(t, err)
	assert.Equal(t, core.NullDart, other)

	require.ErrorIs(t, m.BasicLink(Dim1, core.NullDart, a), core.ErrNullDart)
	require.ErrorIs(t, m.BasicLink(Dim1, a, core.Dart(7)), core.ErrDartNotFound)
	require.ErrorIs(t, m.BasicLink(Dim3, a, b), core.ErrDimensionOutOfRange)
	_, err = m.BasicUnlink(-1, a)
	require.ErrorIs(t, err, core.ErrDimensionOutOfRange)
	assert.Equal(t, core.NullDart, m.Beta(a, Dim3))
}

// TestMap_CloneAndClear checks that Clone is independent of its source and
// that Clear keeps the configuration.
func TestMap_CloneAndClear(t *testing.T) {
	kind := core.AttributeKind{
		Name:  "slice",
		Clone: func(v any) any { return append([]int(nil), v.([]int)...) },
	}
	m := newMap(t, core.WithAttribute(Dim2, kind))
	a, _ := twoTriangles(t, m)
	fa, err := m.CreateAttribute(Dim2, []int{1})
	require.NoError(t, err)
	require.NoError(t, m.SetCellAttribute(a[0], Dim2, fa))

	c := m.Clone()
	require.NoError(t, core.Validate(c))
	assert.Equal(t, core.Fingerprint(m), core.Fingerprint(c))

	c.AttributeValue(Dim2, fa).([]int)[0] = 9
	assert.Equal(t, []int{1}, m.AttributeValue(Dim2, fa))

	_, err = c.BasicUnlink(Dim2, a[0])
	require.NoError(t, err)
	assert.Equal(t, core.Dart(3), m.Beta(a[0], Dim2))
	assert.NotEqual(t, core.Fingerprint(m), core.Fingerprint(c))

	m.Clear()
	assert.Equal(t, 0, m.DartCount())
	assert.Equal(t, 0, m.AttributeCount(Dim2))
	assert.True(t, m.AttributeEnabled(Dim2))
	require.NoError(t, core.Validate(m))
}
