// Package core_test verifies attribute arenas, holder counting and orphans.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cmap/core"
)

// AttributeSuite runs on two triangles sharing edge {a0, b0} with vertex and
// face attributes enabled.
type AttributeSuite struct {
	suite.Suite
	m    *core.Map
	a, b []core.Dart
}

func (s *AttributeSuite) SetupTest() {
	s.m = newMap(s.T(), core.WithAttribute(Dim0, plainKind), core.WithAttribute(Dim2, plainKind))
	s.a, s.b = twoTriangles(s.T(), s.m)
}

// TestDisabledDimension checks the sentinels on a disabled dimension.
func (s *AttributeSuite) TestDisabledDimension() {
	_, err := s.m.CreateAttribute(Dim1, nil)
	s.Require().ErrorIs(err, core.ErrAttributeDisabled)
	_, err = s.m.CreateAttribute(Dim3, nil)
	s.Require().ErrorIs(err, core.ErrDimensionOutOfRange)
	s.Require().ErrorIs(s.m.SetCellAttribute(s.a[0], Dim1, 0), core.ErrAttributeDisabled)
	s.Equal(core.NullAttr, s.m.Attribute(s.a[0], Dim1))
	s.Nil(s.m.Attributes(Dim1))
}

// TestSetCellAttribute checks holders and representative of a whole-cell repoint.
func (s *AttributeSuite) TestSetCellAttribute() {
	v, err := s.m.CreateAttribute(Dim0, "P")
	s.Require().NoError(err)
	s.Equal(core.NullDart, s.m.AttributeDart(Dim0, v))
	s.Equal(0, s.m.Holders(Dim0, v))

	s.Require().NoError(s.m.SetCellAttribute(s.b[1], Dim0, v))
	s.Equal(v, s.m.Attribute(s.a[0], Dim0))
	s.Equal(v, s.m.Attribute(s.b[1], Dim0))
	s.Equal(2, s.m.Holders(Dim0, v))
	s.Equal(s.b[1], s.m.AttributeDart(Dim0, v))
	s.Equal("P", s.m.AttributeValue(Dim0, v))
	s.Require().NoError(core.Validate(s.m))
}

// TestOrphanLifecycle checks that an attribute losing its last dart becomes an
// orphan and that ReclaimOrphans recycles its handle.
func (s *AttributeSuite) TestOrphanLifecycle() {
	f1, err := s.m.CreateAttribute(Dim2, 1)
	s.Require().NoError(err)
	f2, err := s.m.CreateAttribute(Dim2, 2)
	s.Require().NoError(err)
	s.Require().NoError(s.m.SetCellAttribute(s.a[0], Dim2, f1))

	s.m.SetDartAttribute(s.a[0], Dim2, f2)
	s.Equal(core.NullDart, s.m.AttributeDart(Dim2, f1), "representative moved away")
	s.Equal(2, s.m.Holders(Dim2, f1))
	s.Require().ErrorIs(core.Validate(s.m), core.ErrInvalidMap)

	s.Require().NoError(s.m.SetCellAttribute(s.a[0], Dim2, f2))
	s.True(s.m.IsAttributeLive(Dim2, f1))
	s.Equal(0, s.m.Holders(Dim2, f1))
	s.Equal(core.NullDart, s.m.AttributeDart(Dim2, f1))
	s.Require().NoError(core.Validate(s.m))

	s.Equal(1, s.m.ReclaimOrphans(Dim2))
	s.False(s.m.IsAttributeLive(Dim2, f1))
	s.Equal([]core.Attr{f2}, s.m.Attributes(Dim2))

	f3, err := s.m.CreateAttribute(Dim2, 3)
	s.Require().NoError(err)
	s.Equal(f1, f3, "released handle is reused")
	s.Equal(2, s.m.AttributeCount(Dim2))
}

// TestAutoReclaim checks immediate release under WithAutoReclaim.
func (s *AttributeSuite) TestAutoReclaim() {
	m := newMap(s.T(), core.WithAttribute(Dim2, plainKind), core.WithAutoReclaim())
	ds := polygon(s.T(), m, 4)
	f1, _ := m.CreateAttribute(Dim2, 1)
	f2, _ := m.CreateAttribute(Dim2, 2)
	s.Require().NoError(m.SetCellAttribute(ds[2], Dim2, f1))
	s.Require().NoError(m.SetCellAttribute(ds[2], Dim2, f2))
	s.False(m.IsAttributeLive(Dim2, f1))
	s.Equal(0, m.ReclaimOrphans(Dim2))
	s.Require().NoError(core.Validate(m))
}

// TestCopyAttribute checks payload cloning.
func (s *AttributeSuite) TestCopyAttribute() {
	m := newMap(s.T(), core.WithAttribute(Dim2, core.AttributeKind{
		Name:  "map",
		Clone: func(v any) any { return map[string]int{"n": v.(map[string]int)["n"]} },
	}))
	orig, _ := m.CreateAttribute(Dim2, map[string]int{"n": 1})
	cp, err := m.CopyAttribute(Dim2, orig)
	s.Require().NoError(err)
	s.NotEqual(orig, cp)
	m.AttributeValue(Dim2, cp).(map[string]int)["n"] = 2
	s.Equal(1, m.AttributeValue(Dim2, orig).(map[string]int)["n"])

	_, err = m.CopyAttribute(Dim2, core.Attr(42))
	s.Require().ErrorIs(err, core.ErrAttrNotFound)
	s.Require().ErrorIs(m.SetAttributeValue(Dim2, core.NullAttr, 0), core.ErrAttrNotFound)
}

func TestAttributeSuite(t *testing.T) {
	suite.Run(t, new(AttributeSuite))
}
