// Package core_test verifies the mark pool discipline.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmap/core"
)

// TestMarks_Pool exhausts and refills the pool.
func TestMarks_Pool(t *testing.T) {
	m := newMap(t)
	m.CreateDarts(4)

	marks := make([]int, 0, core.NbMarks)
	for k := 0; k < core.NbMarks; k++ {
		mark, err := m.NewMark()
		require.NoError(t, err)
		marks = append(marks, mark)
	}
	assert.Equal(t, core.NbMarks, m.ReservedMarks())
	_, err := m.NewMark()
	require.ErrorIs(t, err, core.ErrNoFreeMark)
	require.ErrorIs(t, m.WithMark(func(int) error { return nil }), core.ErrNoFreeMark)

	for _, mark := range marks {
		m.FreeMark(mark)
	}
	assert.True(t, m.MarkBitsClean())
}

// TestMarks_NegateAndFree covers negation, counters and the clean-free rule.
func TestMarks_NegateAndFree(t *testing.T) {
	m := newMap(t)
	ds := m.CreateDarts(3)

	mark, err := m.NewMark()
	require.NoError(t, err)
	m.Mark(ds[0], mark)
	m.Mark(ds[0], mark)
	assert.Equal(t, 1, m.MarkedCount(mark))

	m.NegateMark(mark)
	assert.False(t, m.IsMarked(ds[0], mark))
	assert.True(t, m.IsMarked(ds[1], mark))
	assert.Equal(t, 2, m.MarkedCount(mark))

	extra := m.CreateDart()
	assert.True(t, m.IsMarked(extra, mark), "new dart under a negated mark reads marked")
	assert.Equal(t, 3, m.MarkedCount(mark))

	require.Panics(t, func() { m.FreeMark(mark) }, "stored bit on ds[0] is dirty")

	m.Mark(ds[0], mark)
	assert.True(t, m.IsWholeMapMarked(mark))
	m.FreeMark(mark)
	assert.True(t, m.MarkBitsClean())

	assert.PanicsWithError(t, "core: invariant violated: mark 5 is not reserved", func() { m.FreeMark(5) })
}

// TestMarks_WithMarkReleasesOnError verifies the scoped helper frees its mark
// when fn fails.
func TestMarks_WithMarkReleasesOnError(t *testing.T) {
	m := newMap(t)
	m.CreateDarts(2)
	boom := errors.New("boom")

	err := m.WithMark(func(mark int) error {
		assert.True(t, m.IsReserved(mark))
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 0, m.ReservedMarks())
	require.NoError(t, core.ValidateMarks(m))
}
